/*
 * Copyright (c) 2025, CreditDesk Pvt Ltd. (https://www.creditdesk.in).
 *
 * CreditDesk Pvt Ltd. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package service

import (
	"strings"

	bureaumodel "github.com/creditdesk/bureau-data-service/internal/bureau/model"
	reportmodel "github.com/creditdesk/bureau-data-service/internal/report/model"
	"github.com/creditdesk/bureau-data-service/internal/system/constants"
	"github.com/creditdesk/bureau-data-service/internal/system/utils"
)

// CIBIL responses are segment-oriented: everything hangs off a CreditReport
// object whose members mirror the TUEF segment names (NameSegment, IDSegment,
// Account, Enquiry, ...).

var cibilIDTypeLabels = map[string]string{
	"01": "Income Tax ID Number (PAN)",
	"02": "Passport Number",
	"03": "Voter ID Number",
	"04": "Driver's License Number",
	"05": "Ration Card Number",
	"06": "Universal ID Number (UID)",
}

var cibilGenderLabels = map[string]string{
	"1": "Female",
	"2": "Male",
	"3": "Transgender",
}

var cibilPhoneTypeLabels = map[string]string{
	"00": "Not Classified",
	"01": "Mobile",
	"02": "Home",
	"03": "Office",
}

var cibilAddressCategoryLabels = map[string]string{
	"01": "Permanent Address",
	"02": "Residence Address",
	"03": "Office Address",
	"04": "Not Categorized",
}

var cibilResidenceLabels = map[string]string{
	"01": "Owned",
	"02": "Rented",
}

var cibilOccupationLabels = map[string]string{
	"01": "Salaried",
	"02": "Self Employed Professional",
	"03": "Self Employed",
	"04": "Others",
}

// IsCIBILResponse reports whether the payload matches the CIBIL wire schema,
// bare or {data: ...}-wrapped. Returns false, never panics, on non-object
// input.
func IsCIBILResponse(raw interface{}) bool {
	cr := payloadRoot(raw, "CreditReport")
	if cr == nil {
		return false
	}
	_, hasName := cr["NameSegment"]
	_, hasScore := cr["ScoreSegment"]
	_, hasAccounts := cr["Account"]
	return hasName || hasScore || hasAccounts
}

// ParseCIBILResponse transforms a CIBIL payload into the unified report
// shape. All failures are returned as data; the function never panics past
// its own boundary.
func ParseCIBILResponse(raw interface{}, ctx bureaumodel.ParserContext) (result bureaumodel.ParseResult) {
	bureauName := bureaumodel.BureauCIBIL.DisplayName()
	defer func() {
		if r := recover(); r != nil {
			result = failureResult(bureauName, raw, r)
		}
	}()

	cr := payloadRoot(raw, "CreditReport")
	if cr == nil {
		return failureResult(bureauName, raw, "payload does not contain a CreditReport segment")
	}

	report := newEmptyReport(bureauName)

	// Header
	report.Header.ControlNumber = firstNonEmpty(
		stringAt(cr, "Header", "EnquiryControlNumber"),
		stringAt(cr, "Header", "ControlNumber"),
	)
	if report.Header.ControlNumber == "" {
		report.Header.ControlNumber = utils.GenerateControlNumber()
	}
	if d := stringAt(cr, "Header", "DateProcessed"); d != "" {
		report.Header.ReportDate = utils.NormalizeDate(d)
	} else {
		report.Header.ReportDate = utils.Now().Format(constants.ISODateLayout)
	}
	report.Header.CreditScore = scorePtr(firstNonEmpty(
		stringAt(cr, "ScoreSegment", "Score"),
		stringAt(cr, "Score", "Score"),
	))

	// Personal information
	name := mapAt(cr, "NameSegment")
	fullName := composeName(
		stringAt(name, "ConsumerName1"),
		stringAt(name, "ConsumerName2"),
		stringAt(name, "ConsumerName3"),
		stringAt(name, "ConsumerName4"),
		stringAt(name, "ConsumerName5"),
	)
	if fullName != "" {
		report.PersonalInformation.FullName = strings.ToUpper(fullName)
	}
	if dob := stringAt(name, "DateOfBirth"); dob != "" {
		report.PersonalInformation.DateOfBirth = utils.NormalizeDate(dob)
	}
	if g, ok := cibilGenderLabels[stringAt(name, "Gender")]; ok {
		report.PersonalInformation.Gender = g
	}
	for _, item := range sliceAt(cr, "IDSegment") {
		id := asMap(item)
		idType := stringAt(id, "IDType")
		label, known := cibilIDTypeLabels[idType]
		if !known {
			label = utils.SafeString(idType, constants.NotReported)
		}
		report.PersonalInformation.Identifications = append(report.PersonalInformation.Identifications,
			reportmodel.Identification{
				Type:       label,
				Number:     displayText(valueAt(id, "IDNumber"), constants.NotReported),
				IssueDate:  stringAt(id, "IssueDate"),
				ExpiryDate: stringAt(id, "ExpirationDate"),
			})
	}

	// Contact information
	for _, item := range sliceAt(cr, "Address") {
		addr := asMap(item)
		report.ContactInformation.Addresses = append(report.ContactInformation.Addresses,
			reportmodel.Address{
				Address: composeAddress(
					stringAt(addr, "AddressLine1"),
					stringAt(addr, "AddressLine2"),
					stringAt(addr, "AddressLine3"),
					stringAt(addr, "AddressLine4"),
					stringAt(addr, "AddressLine5"),
					stringAt(addr, "StateCode"),
					stringAt(addr, "PinCode"),
				),
				Category:     lookupOr(cibilAddressCategoryLabels, stringAt(addr, "AddressCategory"), constants.NotReported),
				Status:       lookupOr(cibilResidenceLabels, stringAt(addr, "ResidenceCode"), constants.NotReported),
				DateReported: utils.NormalizeDate(stringAt(addr, "DateReported")),
			})
	}
	for _, item := range sliceAt(cr, "TelephoneSegment") {
		phone := asMap(item)
		number := stringAt(phone, "TelephoneNumber")
		if number == "" {
			continue
		}
		report.ContactInformation.PhoneNumbers = append(report.ContactInformation.PhoneNumbers,
			reportmodel.PhoneNumber{
				Type:   lookupOr(cibilPhoneTypeLabels, stringAt(phone, "TelephoneType"), "Phone"),
				Number: number,
			})
	}
	for _, item := range sliceAt(cr, "EmailContactSegment") {
		if email := stringAt(asMap(item), "EmailID"); email != "" {
			report.ContactInformation.Emails = append(report.ContactInformation.Emails, email)
		}
	}

	// Employment
	for _, item := range sliceAt(cr, "EmploymentSegment") {
		emp := asMap(item)
		report.EmploymentInformation = append(report.EmploymentInformation,
			reportmodel.EmploymentRecord{
				AccountType:     displayText(utils.MapAccountType(stringAt(emp, "AccountType")), constants.NotReported),
				DateReported:    utils.NormalizeDate(stringAt(emp, "DateReported")),
				Occupation:      lookupOr(cibilOccupationLabels, stringAt(emp, "OccupationCode"), constants.NotReported),
				Income:          displayAmount(valueAt(emp, "Income"), constants.SentinelAmount),
				IncomeFrequency: displayText(valueAt(emp, "IncomeFrequency"), constants.NotReported),
				IncomeIndicator: displayText(valueAt(emp, "MonthlyAnnualIncomeIndicator"), constants.NotReported),
			})
	}

	// Accounts
	for _, item := range sliceAt(cr, "Account") {
		acc := asMap(item)
		account := newAccount()
		account.LenderName = displayText(valueAt(acc, "ReportingMemberShortName"), constants.NotReported)
		account.AccountType = accountTypeLabel(stringAt(acc, "AccountType"))
		account.AccountNumber = displayText(valueAt(acc, "AccountNumber"), constants.NotReported)
		account.Ownership = ownershipLabel(stringAt(acc, "OwnershipIndicator"))
		account.CreditLimit = displayAmount(valueAt(acc, "CreditLimit"), constants.SentinelAmount)
		account.SanctionedAmount = displayAmount(valueAt(acc, "HighCreditSanctionedAmount"), constants.SentinelAmount)
		account.CurrentBalance = displayAmount(valueAt(acc, "CurrentBalance"), constants.SentinelAmount)
		account.CashLimit = displayAmount(valueAt(acc, "CashLimit"), constants.SentinelAmount)
		account.AmountOverdue = displayAmount(valueAt(acc, "AmountOverdue"), constants.SentinelZeroAmount)
		account.InterestRate = displayAmount(valueAt(acc, "RateOfInterest"), constants.SentinelAmount)
		account.Tenure = displayAmount(valueAt(acc, "RepaymentTenure"), constants.SentinelAmount)
		account.EMIAmount = displayAmount(valueAt(acc, "EmiAmount"), constants.SentinelAmount)
		account.PaymentFrequency = displayText(valueAt(acc, "PaymentFrequency"), constants.NotReported)
		account.ActualPayment = displayAmount(valueAt(acc, "ActualPaymentAmount"), constants.SentinelAmount)
		account.Dates = reportmodel.AccountDates{
			DateOpened:        optionalDate(valueAt(acc, "DateOpened")),
			DateClosed:        optionalDate(valueAt(acc, "DateClosed")),
			DateOfLastPayment: optionalDate(valueAt(acc, "DateOfLastPayment")),
			DateReported:      optionalDate(valueAt(acc, "DateReported")),
		}
		account.PaymentStartDate = utils.NormalizeDate(stringAt(acc, "PaymentHistoryStartDate"))
		account.PaymentEndDate = utils.NormalizeDate(stringAt(acc, "PaymentHistoryEndDate"))
		account.PaymentHistory = parsePaymentHistoryString(
			stringAt(acc, "PaymentHistory1")+stringAt(acc, "PaymentHistory2"),
			account.PaymentStartDate,
		)
		account.Collateral = reportmodel.Collateral{
			Value:               displayAmount(valueAt(acc, "ValueOfCollateral"), constants.SentinelAmount),
			Type:                displayText(valueAt(acc, "TypeOfCollateral"), constants.NotReported),
			SuitFiled:           displayText(valueAt(acc, "SuitFiled"), "No"),
			FacilityStatus:      displayText(valueAt(acc, "CreditFacilityStatus"), constants.NotReported),
			WrittenOffTotal:     displayAmount(valueAt(acc, "WrittenOffAmountTotal"), constants.SentinelAmount),
			WrittenOffPrincipal: displayAmount(valueAt(acc, "WrittenOffAmountPrincipal"), constants.SentinelAmount),
			SettlementAmount:    displayAmount(valueAt(acc, "SettlementAmount"), constants.SentinelAmount),
		}
		report.Accounts = append(report.Accounts, account)
	}

	// Enquiries
	for _, item := range sliceAt(cr, "Enquiry") {
		enq := asMap(item)
		report.Enquiries = append(report.Enquiries, reportmodel.Enquiry{
			MemberName:  displayText(valueAt(enq, "EnquiringMemberShortName"), constants.NotReported),
			EnquiryDate: utils.NormalizeDate(stringAt(enq, "DateOfEnquiry")),
			Purpose:     displayText(valueAt(enq, "EnquiryPurpose"), constants.NotReported),
		})
	}

	// Summary: prefer the vendor segment, derive from accounts otherwise.
	report.Summary = summaryFromSegment(mapAt(cr, "AccountsSummary"), map[string]string{
		"total":      "TotalAccounts",
		"active":     "ActiveAccounts",
		"closed":     "ClosedAccounts",
		"overdue":    "TotalOverdueAmount",
		"sanctioned": "TotalSanctionedAmount",
		"balance":    "TotalBalanceAmount",
	}, report.Accounts)

	applyContextFallbacks(report, ctx)

	return bureaumodel.ParseResult{
		Success:    true,
		Report:     report,
		RawData:    raw,
		BureauName: bureauName,
	}
}

// composeName joins the split consumer-name slots into one display name.
func composeName(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, strings.TrimSpace(p))
		}
	}
	return strings.Join(kept, " ")
}

// lookupOr resolves a code through a label table, falling back to the code
// itself and then to def.
func lookupOr(table map[string]string, code, def string) string {
	if label, ok := table[code]; ok {
		return label
	}
	if strings.TrimSpace(code) != "" {
		return code
	}
	return def
}

// summaryFromSegment reads a vendor summary segment through a field-name
// mapping, deriving any value the segment is missing (or the whole summary
// when the segment is absent) from the parsed account list.
func summaryFromSegment(segment map[string]interface{}, fields map[string]string, accounts []reportmodel.Account) reportmodel.ReportSummary {
	derived := deriveSummary(accounts)
	if segment == nil {
		return derived
	}
	summary := derived
	if f, ok := utils.ToNumber(valueAt(segment, fields["total"])); ok {
		summary.TotalAccounts = int(f)
	}
	if f, ok := utils.ToNumber(valueAt(segment, fields["active"])); ok {
		summary.ActiveAccounts = int(f)
	}
	if f, ok := utils.ToNumber(valueAt(segment, fields["closed"])); ok {
		summary.ClosedAccounts = int(f)
	}
	if f, ok := utils.ToNumber(valueAt(segment, fields["overdue"])); ok {
		summary.TotalOverdueAmount = f
	}
	if f, ok := utils.ToNumber(valueAt(segment, fields["sanctioned"])); ok {
		summary.TotalSanctionedAmount = f
	}
	if f, ok := utils.ToNumber(valueAt(segment, fields["balance"])); ok {
		summary.TotalCurrentBalance = f
	}
	return summary
}
