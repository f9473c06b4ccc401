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

// CRIF High Mark reports keep the XML heritage of the HM-REPORT format:
// every key is uppercase with hyphen separators. That makes the root key the
// most structurally distinctive of the four vendors, which is why the
// dispatcher tries CRIF first when no format matched outright.

var crifIDTypeLabels = map[string]string{
	"PAN":             "Income Tax ID Number (PAN)",
	"VOTER-ID":        "Voter ID Number",
	"PASSPORT":        "Passport Number",
	"DRIVING-LICENSE": "Driver's License Number",
	"RATION-CARD":     "Ration Card Number",
	"UID":             "Universal ID Number (UID)",
}

// IsCRIFResponse reports whether the payload matches the CRIF High Mark
// wire schema, bare or {data: ...}-wrapped.
func IsCRIFResponse(raw interface{}) bool {
	return payloadRoot(raw, "HM-REPORT") != nil
}

// ParseCRIFResponse transforms a CRIF High Mark payload into the unified
// report shape.
func ParseCRIFResponse(raw interface{}, ctx bureaumodel.ParserContext) (result bureaumodel.ParseResult) {
	bureauName := bureaumodel.BureauCRIF.DisplayName()
	defer func() {
		if r := recover(); r != nil {
			result = failureResult(bureauName, raw, r)
		}
	}()

	hm := payloadRoot(raw, "HM-REPORT")
	if hm == nil {
		return failureResult(bureauName, raw, "payload does not contain an HM-REPORT block")
	}

	report := newEmptyReport(bureauName)

	// Header
	header := mapAt(hm, "HEADER")
	report.Header.ControlNumber = firstNonEmpty(
		stringAt(header, "REPORT-ID"),
		stringAt(header, "INQUIRY-REFERENCE-NUMBER"),
	)
	if report.Header.ControlNumber == "" {
		report.Header.ControlNumber = utils.GenerateControlNumber()
	}
	if d := stringAt(header, "DATE-OF-ISSUE"); d != "" {
		report.Header.ReportDate = utils.NormalizeDate(d)
	} else {
		report.Header.ReportDate = utils.Now().Format(constants.ISODateLayout)
	}
	report.Header.CreditScore = scorePtr(firstNonEmpty(
		stringAt(hm, "SCORE", "VALUE"),
		stringAt(hm, "SCORES", "SCORE", "VALUE"),
	))

	// Personal information
	personal := mapAt(hm, "PERSONAL-INFO")
	fullName := firstNonEmpty(
		stringAt(personal, "FULL-NAME"),
		composeName(
			stringAt(personal, "NAME", "FIRST-NAME"),
			stringAt(personal, "NAME", "MIDDLE-NAME"),
			stringAt(personal, "NAME", "LAST-NAME"),
		),
	)
	if fullName != "" {
		report.PersonalInformation.FullName = strings.ToUpper(fullName)
	}
	if dob := stringAt(personal, "DOB"); dob != "" {
		report.PersonalInformation.DateOfBirth = utils.NormalizeDate(dob)
	}
	if gender := stringAt(personal, "GENDER"); gender != "" {
		report.PersonalInformation.Gender = gender
	}
	for _, item := range sliceAt(personal, "IDS") {
		id := asMap(item)
		number := stringAt(id, "VALUE")
		if number == "" {
			continue
		}
		report.PersonalInformation.Identifications = append(report.PersonalInformation.Identifications,
			reportmodel.Identification{
				Type:   lookupOr(crifIDTypeLabels, strings.ToUpper(stringAt(id, "TYPE")), stringAt(id, "TYPE")),
				Number: number,
			})
	}

	// Contact information
	for _, item := range sliceAt(personal, "ADDRESSES") {
		addr := asMap(item)
		report.ContactInformation.Addresses = append(report.ContactInformation.Addresses,
			reportmodel.Address{
				Address: composeAddress(
					stringAt(addr, "ADDRESS"),
					stringAt(addr, "STATE"),
					stringAt(addr, "PIN"),
				),
				Category:     displayText(valueAt(addr, "TYPE"), constants.NotReported),
				Status:       constants.NotReported,
				DateReported: utils.NormalizeDate(stringAt(addr, "REPORTED-DT")),
			})
	}
	for _, item := range sliceAt(personal, "PHONES") {
		phone := asMap(item)
		if number := stringAt(phone, "NUMBER"); number != "" {
			report.ContactInformation.PhoneNumbers = append(report.ContactInformation.PhoneNumbers,
				reportmodel.PhoneNumber{
					Type:   displayText(valueAt(phone, "TYPE"), "Phone"),
					Number: number,
				})
		}
	}
	for _, item := range sliceAt(personal, "EMAILS") {
		if email := utils.SafeString(item, ""); email != "" {
			report.ContactInformation.Emails = append(report.ContactInformation.Emails, email)
		}
	}

	// Employment
	for _, item := range sliceAt(hm, "EMPLOYMENT-DETAILS") {
		emp := asMap(item)
		report.EmploymentInformation = append(report.EmploymentInformation,
			reportmodel.EmploymentRecord{
				AccountType:     displayText(valueAt(emp, "ACCT-TYPE"), constants.NotReported),
				DateReported:    utils.NormalizeDate(stringAt(emp, "DATE-REPORTED")),
				Occupation:      displayText(valueAt(emp, "OCCUPATION"), constants.NotReported),
				Income:          displayAmount(valueAt(emp, "INCOME"), constants.SentinelAmount),
				IncomeFrequency: displayText(valueAt(emp, "INCOME-FREQUENCY"), constants.NotReported),
				IncomeIndicator: displayText(valueAt(emp, "INCOME-INDICATOR"), constants.NotReported),
			})
	}

	// Accounts
	for _, item := range sliceAt(hm, "ACCOUNTS") {
		acc := asMap(item)
		account := newAccount()
		account.LenderName = displayText(valueAt(acc, "CREDIT-GUARANTOR"), constants.NotReported)
		account.AccountType = accountTypeLabel(stringAt(acc, "ACCT-TYPE"))
		account.AccountNumber = displayText(valueAt(acc, "ACCT-NUMBER"), constants.NotReported)
		account.Ownership = ownershipLabel(stringAt(acc, "OWNERSHIP-IND"))
		account.CreditLimit = displayAmount(valueAt(acc, "CREDIT-LIMIT"), constants.SentinelAmount)
		account.SanctionedAmount = displayAmount(valueAt(acc, "DISBURSED-AMT"), constants.SentinelAmount)
		account.CurrentBalance = displayAmount(valueAt(acc, "CURRENT-BAL"), constants.SentinelAmount)
		account.CashLimit = displayAmount(valueAt(acc, "CASH-LIMIT"), constants.SentinelAmount)
		account.AmountOverdue = displayAmount(valueAt(acc, "OVERDUE-AMT"), constants.SentinelZeroAmount)
		account.InterestRate = displayAmount(valueAt(acc, "INTEREST-RATE"), constants.SentinelAmount)
		account.Tenure = displayAmount(valueAt(acc, "ORIGINAL-TERM"), constants.SentinelAmount)
		account.EMIAmount = displayAmount(valueAt(acc, "INSTALLMENT-AMT"), constants.SentinelAmount)
		account.PaymentFrequency = displayText(valueAt(acc, "FREQ"), constants.NotReported)
		account.ActualPayment = displayAmount(valueAt(acc, "ACTUAL-PAYMENT"), constants.SentinelAmount)
		account.Dates = reportmodel.AccountDates{
			DateOpened:        optionalDate(valueAt(acc, "DISBURSED-DT")),
			DateClosed:        optionalDate(valueAt(acc, "CLOSED-DT")),
			DateOfLastPayment: optionalDate(valueAt(acc, "LAST-PAYMENT-DT")),
			DateReported:      optionalDate(valueAt(acc, "REPORTED-DT")),
		}
		account.PaymentHistory = parsePaymentHistoryString(
			stringAt(acc, "COMBINED-PAYMENT-HISTORY"),
			stringAt(acc, "DISBURSED-DT"),
		)
		account.Collateral = reportmodel.Collateral{
			Value:               displayAmount(valueAt(acc, "SECURITY-DETAILS", "VALUE"), constants.SentinelAmount),
			Type:                displayText(valueAt(acc, "SECURITY-DETAILS", "TYPE"), constants.NotReported),
			SuitFiled:           displayText(valueAt(acc, "SUIT-FILED"), "No"),
			FacilityStatus:      displayText(valueAt(acc, "ACCOUNT-STATUS"), constants.NotReported),
			WrittenOffTotal:     displayAmount(valueAt(acc, "WRITE-OFF-AMT"), constants.SentinelAmount),
			WrittenOffPrincipal: displayAmount(valueAt(acc, "PRINCIPAL-WRITE-OFF-AMT"), constants.SentinelAmount),
			SettlementAmount:    displayAmount(valueAt(acc, "SETTLEMENT-AMT"), constants.SentinelAmount),
		}
		report.Accounts = append(report.Accounts, account)
	}

	// Enquiries
	for _, item := range sliceAt(hm, "ENQUIRIES") {
		enq := asMap(item)
		report.Enquiries = append(report.Enquiries, reportmodel.Enquiry{
			MemberName:  displayText(valueAt(enq, "MEMBER-NAME"), constants.NotReported),
			EnquiryDate: utils.NormalizeDate(stringAt(enq, "ENQUIRY-DT")),
			Purpose:     displayText(valueAt(enq, "PURPOSE"), constants.NotReported),
		})
	}

	// Summary
	report.Summary = summaryFromSegment(mapAt(hm, "SUMMARY"), map[string]string{
		"total":      "TOTAL-ACCOUNTS",
		"active":     "ACTIVE-ACCOUNTS",
		"closed":     "CLOSED-ACCOUNTS",
		"overdue":    "TOTAL-OVERDUE-AMT",
		"sanctioned": "TOTAL-SANCTIONED-AMT",
		"balance":    "TOTAL-CURRENT-BAL",
	}, report.Accounts)

	applyContextFallbacks(report, ctx)

	return bureaumodel.ParseResult{
		Success:    true,
		Report:     report,
		RawData:    raw,
		BureauName: bureauName,
	}
}
