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

// Equifax wraps the report in CCRResponse.CIRReportDataLst, a list that in
// practice carries a single CIRReportData entry. Identity records arrive
// pre-grouped under IDAndContactInfo and account/ownership types are already
// display text rather than codes.

// equifaxIDLists maps the IdentityInfo member lists to identification type
// labels.
var equifaxIDLists = []struct {
	key   string
	label string
}{
	{"PANId", "Income Tax ID Number (PAN)"},
	{"VoterID", "Voter ID Number"},
	{"PassportID", "Passport Number"},
	{"DriverLicense", "Driver's License Number"},
	{"RationCard", "Ration Card Number"},
	{"NationalIDCard", "Universal ID Number (UID)"},
}

// IsEquifaxResponse reports whether the payload matches the Equifax wire
// schema, bare or {data: ...}-wrapped.
func IsEquifaxResponse(raw interface{}) bool {
	ccr := payloadRoot(raw, "CCRResponse")
	if ccr == nil {
		return false
	}
	return len(sliceAt(ccr, "CIRReportDataLst")) > 0
}

// ParseEquifaxResponse transforms an Equifax payload into the unified report
// shape.
func ParseEquifaxResponse(raw interface{}, ctx bureaumodel.ParserContext) (result bureaumodel.ParseResult) {
	bureauName := bureaumodel.BureauEquifax.DisplayName()
	defer func() {
		if r := recover(); r != nil {
			result = failureResult(bureauName, raw, r)
		}
	}()

	ccr := payloadRoot(raw, "CCRResponse")
	if ccr == nil {
		return failureResult(bureauName, raw, "payload does not contain a CCRResponse block")
	}
	reportList := sliceAt(ccr, "CIRReportDataLst")
	if len(reportList) == 0 {
		return failureResult(bureauName, raw, "CIRReportDataLst is empty")
	}
	cir := mapAt(asMap(reportList[0]), "CIRReportData")
	if cir == nil {
		return failureResult(bureauName, raw, "CIRReportData is missing")
	}

	report := newEmptyReport(bureauName)

	// Header
	header := asMap(valueAt(asMap(reportList[0]), "InquiryResponseHeader"))
	report.Header.ControlNumber = firstNonEmpty(
		stringAt(header, "ReportOrderNO"),
		stringAt(header, "CCRReferenceNumber"),
	)
	if report.Header.ControlNumber == "" {
		report.Header.ControlNumber = utils.GenerateControlNumber()
	}
	if d := stringAt(header, "Date"); d != "" {
		report.Header.ReportDate = utils.NormalizeDate(d)
	} else {
		report.Header.ReportDate = utils.Now().Format(constants.ISODateLayout)
	}
	for _, item := range sliceAt(cir, "ScoreDetails") {
		if score := scorePtr(valueAt(asMap(item), "Value")); score != nil {
			report.Header.CreditScore = score
			break
		}
	}

	// Personal information
	personal := mapAt(cir, "IDAndContactInfo", "PersonalInfo")
	fullName := firstNonEmpty(
		stringAt(personal, "Name", "FullName"),
		composeName(
			stringAt(personal, "Name", "FirstName"),
			stringAt(personal, "Name", "MiddleName"),
			stringAt(personal, "Name", "LastName"),
		),
	)
	if fullName != "" {
		report.PersonalInformation.FullName = strings.ToUpper(fullName)
	}
	if dob := stringAt(personal, "DateOfBirth"); dob != "" {
		report.PersonalInformation.DateOfBirth = utils.NormalizeDate(dob)
	}
	if gender := stringAt(personal, "Gender"); gender != "" {
		report.PersonalInformation.Gender = gender
	}
	identity := mapAt(cir, "IDAndContactInfo", "IdentityInfo")
	for _, group := range equifaxIDLists {
		for _, item := range sliceAt(identity, group.key) {
			if number := stringAt(asMap(item), "IdNumber"); number != "" {
				report.PersonalInformation.Identifications = append(report.PersonalInformation.Identifications,
					reportmodel.Identification{Type: group.label, Number: number})
			}
		}
	}

	// Contact information
	for _, item := range sliceAt(cir, "IDAndContactInfo", "AddressInfo") {
		addr := asMap(item)
		report.ContactInformation.Addresses = append(report.ContactInformation.Addresses,
			reportmodel.Address{
				Address: composeAddress(
					stringAt(addr, "Address"),
					stringAt(addr, "State"),
					stringAt(addr, "Postal"),
				),
				Category:     displayText(valueAt(addr, "Type"), constants.NotReported),
				Status:       constants.NotReported,
				DateReported: utils.NormalizeDate(stringAt(addr, "ReportedDate")),
			})
	}
	for _, item := range sliceAt(cir, "IDAndContactInfo", "PhoneInfo") {
		phone := asMap(item)
		if number := stringAt(phone, "Number"); number != "" {
			report.ContactInformation.PhoneNumbers = append(report.ContactInformation.PhoneNumbers,
				reportmodel.PhoneNumber{
					Type:   displayText(valueAt(phone, "typeCode"), "Phone"),
					Number: number,
				})
		}
	}
	for _, item := range sliceAt(cir, "IDAndContactInfo", "EmailAddressInfo") {
		if email := stringAt(asMap(item), "EmailAddress"); email != "" {
			report.ContactInformation.Emails = append(report.ContactInformation.Emails, email)
		}
	}

	// Employment
	for _, item := range sliceAt(cir, "EmploymentInfo") {
		emp := asMap(item)
		report.EmploymentInformation = append(report.EmploymentInformation,
			reportmodel.EmploymentRecord{
				AccountType:     displayText(valueAt(emp, "AccountType"), constants.NotReported),
				DateReported:    utils.NormalizeDate(stringAt(emp, "DateReported")),
				Occupation:      displayText(valueAt(emp, "Occupation"), constants.NotReported),
				Income:          displayAmount(valueAt(emp, "Income"), constants.SentinelAmount),
				IncomeFrequency: displayText(valueAt(emp, "Frequency"), constants.NotReported),
				IncomeIndicator: displayText(valueAt(emp, "MonthlyIncomeIndicator"), constants.NotReported),
			})
	}

	// Accounts
	for _, item := range sliceAt(cir, "RetailAccountDetails") {
		acc := asMap(item)
		account := newAccount()
		account.LenderName = displayText(valueAt(acc, "Institution"), constants.NotReported)
		account.AccountType = accountTypeLabel(stringAt(acc, "AccountType"))
		account.AccountNumber = displayText(valueAt(acc, "AccountNumber"), constants.NotReported)
		account.Ownership = ownershipLabel(stringAt(acc, "OwnershipType"))
		account.CreditLimit = displayAmount(valueAt(acc, "CreditLimit"), constants.SentinelAmount)
		account.SanctionedAmount = displayAmount(valueAt(acc, "SanctionAmount"), constants.SentinelAmount)
		account.CurrentBalance = displayAmount(valueAt(acc, "Balance"), constants.SentinelAmount)
		account.CashLimit = displayAmount(valueAt(acc, "CashLimit"), constants.SentinelAmount)
		account.AmountOverdue = displayAmount(valueAt(acc, "PastDueAmount"), constants.SentinelZeroAmount)
		account.InterestRate = displayAmount(valueAt(acc, "InterestRate"), constants.SentinelAmount)
		account.Tenure = displayAmount(valueAt(acc, "RepaymentTenure"), constants.SentinelAmount)
		account.EMIAmount = displayAmount(valueAt(acc, "InstallmentAmount"), constants.SentinelAmount)
		account.PaymentFrequency = displayText(valueAt(acc, "TermFrequency"), constants.NotReported)
		account.ActualPayment = displayAmount(valueAt(acc, "ActualPaymentAmount"), constants.SentinelAmount)
		account.Dates = reportmodel.AccountDates{
			DateOpened:        optionalDate(valueAt(acc, "DateOpened")),
			DateClosed:        optionalDate(valueAt(acc, "DateClosed")),
			DateOfLastPayment: optionalDate(valueAt(acc, "DateOfLastPayment")),
			DateReported:      optionalDate(valueAt(acc, "DateReported")),
		}
		account.PaymentHistory = parsePaymentHistoryString(stringAt(acc, "History48Months"), "")
		account.Collateral = reportmodel.Collateral{
			Value:               displayAmount(valueAt(acc, "CollateralValue"), constants.SentinelAmount),
			Type:                displayText(valueAt(acc, "CollateralType"), constants.NotReported),
			SuitFiled:           displayText(valueAt(acc, "SuitFiledStatus"), "No"),
			FacilityStatus:      firstNonEmpty(stringAt(acc, "AssetClassification"), stringAt(acc, "AccountStatus"), constants.NotReported),
			WrittenOffTotal:     displayAmount(valueAt(acc, "WriteOffAmount"), constants.SentinelAmount),
			WrittenOffPrincipal: displayAmount(valueAt(acc, "WriteOffPrincipal"), constants.SentinelAmount),
			SettlementAmount:    displayAmount(valueAt(acc, "SettlementAmount"), constants.SentinelAmount),
		}
		report.Accounts = append(report.Accounts, account)
	}

	// Enquiries
	for _, item := range sliceAt(cir, "Enquiries") {
		enq := asMap(item)
		report.Enquiries = append(report.Enquiries, reportmodel.Enquiry{
			MemberName:  displayText(valueAt(enq, "Institution"), constants.NotReported),
			EnquiryDate: utils.NormalizeDate(stringAt(enq, "Date")),
			Purpose:     displayText(valueAt(enq, "RequestPurpose"), constants.NotReported),
		})
	}

	// Summary
	report.Summary = summaryFromSegment(mapAt(cir, "RetailAccountsSummary"), map[string]string{
		"total":      "NoOfAccounts",
		"active":     "NoOfActiveAccounts",
		"closed":     "NoOfClosedAccounts",
		"overdue":    "TotalPastDue",
		"sanctioned": "TotalSanctionAmount",
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
