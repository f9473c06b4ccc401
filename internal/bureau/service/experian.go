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

// Experian responses nest everything under INProfileResponse with the CAIS
// block carrying accounts and the CAPS block carrying enquiries. Dates are
// YYYYMMDD throughout.

var experianGenderLabels = map[string]string{
	"1": "Male",
	"2": "Female",
}

// IsExperianResponse reports whether the payload matches the Experian wire
// schema, bare or {data: ...}-wrapped.
func IsExperianResponse(raw interface{}) bool {
	return payloadRoot(raw, "INProfileResponse") != nil
}

// ParseExperianResponse transforms an Experian payload into the unified
// report shape.
func ParseExperianResponse(raw interface{}, ctx bureaumodel.ParserContext) (result bureaumodel.ParseResult) {
	bureauName := bureaumodel.BureauExperian.DisplayName()
	defer func() {
		if r := recover(); r != nil {
			result = failureResult(bureauName, raw, r)
		}
	}()

	prof := payloadRoot(raw, "INProfileResponse")
	if prof == nil {
		return failureResult(bureauName, raw, "payload does not contain an INProfileResponse block")
	}

	report := newEmptyReport(bureauName)

	// Header. CreditProfileHeader is the legacy location for the same
	// fields; some vintages of the vendor API still return it.
	report.Header.ControlNumber = firstNonEmpty(
		stringAt(prof, "Header", "ReportNumber"),
		stringAt(prof, "CreditProfileHeader", "ReportNumber"),
	)
	if report.Header.ControlNumber == "" {
		report.Header.ControlNumber = utils.GenerateControlNumber()
	}
	if d := firstNonEmpty(stringAt(prof, "Header", "ReportDate"), stringAt(prof, "CreditProfileHeader", "ReportDate")); d != "" {
		report.Header.ReportDate = utils.NormalizeDate(d)
	} else {
		report.Header.ReportDate = utils.Now().Format(constants.ISODateLayout)
	}
	report.Header.CreditScore = scorePtr(stringAt(prof, "SCORE", "BureauScore"))

	// Personal information from the current application block.
	applicant := mapAt(prof, "Current_Application", "Current_Application_Details", "Current_Applicant_Details")
	fullName := composeName(
		stringAt(applicant, "First_Name"),
		stringAt(applicant, "Middle_Name1"),
		stringAt(applicant, "Last_Name"),
	)
	if fullName != "" {
		report.PersonalInformation.FullName = strings.ToUpper(fullName)
	}
	if dob := stringAt(applicant, "Date_Of_Birth_Applicant"); dob != "" {
		report.PersonalInformation.DateOfBirth = utils.NormalizeDate(dob)
	}
	if g, ok := experianGenderLabels[stringAt(applicant, "Gender_Code")]; ok {
		report.PersonalInformation.Gender = g
	}
	if pan := stringAt(applicant, "IncomeTaxPan"); pan != "" {
		report.PersonalInformation.Identifications = append(report.PersonalInformation.Identifications,
			reportmodel.Identification{
				Type:   "Income Tax ID Number (PAN)",
				Number: pan,
			})
	}
	if passport := stringAt(applicant, "Passport_Number"); passport != "" {
		report.PersonalInformation.Identifications = append(report.PersonalInformation.Identifications,
			reportmodel.Identification{
				Type:   "Passport Number",
				Number: passport,
			})
	}

	// Contact information.
	address := mapAt(prof, "Current_Application", "Current_Application_Details", "Current_Applicant_Address_Details")
	if address != nil {
		report.ContactInformation.Addresses = append(report.ContactInformation.Addresses,
			reportmodel.Address{
				Address: composeAddress(
					stringAt(address, "FlatNoPlotNoHouseNo"),
					stringAt(address, "BldgNoSocietyName"),
					stringAt(address, "RoadNoNameAreaLocality"),
					stringAt(address, "City"),
					stringAt(address, "State"),
					stringAt(address, "PINCode"),
				),
				Category:     "Current Address",
				Status:       constants.NotReported,
				DateReported: report.Header.ReportDate,
			})
	}
	for _, number := range []string{
		stringAt(applicant, "MobilePhoneNumber"),
		stringAt(applicant, "Telephone_Number_Applicant_1st"),
	} {
		if number == "" {
			continue
		}
		report.ContactInformation.PhoneNumbers = append(report.ContactInformation.PhoneNumbers,
			reportmodel.PhoneNumber{Type: "Mobile", Number: number})
	}
	if email := stringAt(applicant, "EMailId"); email != "" {
		report.ContactInformation.Emails = append(report.ContactInformation.Emails, email)
	}

	// Employment: Experian only reports income attributes on the applicant.
	if income := stringAt(applicant, "Gross_Monthly_Income"); income != "" {
		report.EmploymentInformation = append(report.EmploymentInformation,
			reportmodel.EmploymentRecord{
				AccountType:     constants.NotReported,
				DateReported:    report.Header.ReportDate,
				Occupation:      displayText(valueAt(applicant, "Occupation_Code"), constants.NotReported),
				Income:          displayAmount(income, constants.SentinelAmount),
				IncomeFrequency: "Monthly",
				IncomeIndicator: "Gross",
			})
	}

	// Accounts from the CAIS details list.
	for _, item := range sliceAt(prof, "CAIS_Account", "CAIS_Account_DETAILS") {
		acc := asMap(item)
		account := newAccount()
		account.LenderName = displayText(valueAt(acc, "Subscriber_Name"), constants.NotReported)
		account.AccountType = accountTypeLabel(stringAt(acc, "Account_Type"))
		account.AccountNumber = displayText(valueAt(acc, "Account_Number"), constants.NotReported)
		account.Ownership = ownershipLabel(stringAt(acc, "AccountHoldertypeCode"))
		account.CreditLimit = displayAmount(valueAt(acc, "Credit_Limit_Amount"), constants.SentinelAmount)
		account.SanctionedAmount = displayAmount(valueAt(acc, "Highest_Credit_or_Original_Loan_Amount"), constants.SentinelAmount)
		account.CurrentBalance = displayAmount(valueAt(acc, "Current_Balance"), constants.SentinelAmount)
		account.AmountOverdue = displayAmount(valueAt(acc, "Amount_Past_Due"), constants.SentinelZeroAmount)
		account.InterestRate = displayAmount(valueAt(acc, "Rate_of_Interest"), constants.SentinelAmount)
		account.Tenure = displayAmount(valueAt(acc, "Repayment_Tenure"), constants.SentinelAmount)
		account.EMIAmount = displayAmount(valueAt(acc, "Scheduled_Monthly_Payment_Amount"), constants.SentinelAmount)
		account.PaymentFrequency = displayText(valueAt(acc, "Terms_Frequency"), constants.NotReported)
		account.ActualPayment = displayAmount(valueAt(acc, "Actual_Payment_Amount"), constants.SentinelAmount)
		account.Dates = reportmodel.AccountDates{
			DateOpened:        optionalDate(valueAt(acc, "Open_Date")),
			DateClosed:        optionalDate(valueAt(acc, "Date_Closed")),
			DateOfLastPayment: optionalDate(valueAt(acc, "Date_of_Last_Payment")),
			DateReported:      optionalDate(valueAt(acc, "Date_Reported")),
		}
		account.PaymentHistory = parsePaymentHistoryString(stringAt(acc, "Payment_History_Profile"), "")
		account.Collateral = reportmodel.Collateral{
			Value:               displayAmount(valueAt(acc, "Value_of_Collateral"), constants.SentinelAmount),
			Type:                displayText(valueAt(acc, "Type_of_Collateral"), constants.NotReported),
			SuitFiled:           displayText(valueAt(acc, "SuitFiled_WilfulDefault"), "No"),
			FacilityStatus:      displayText(valueAt(acc, "Account_Status"), constants.NotReported),
			WrittenOffTotal:     displayAmount(valueAt(acc, "Written_Off_Amt_Total"), constants.SentinelAmount),
			WrittenOffPrincipal: displayAmount(valueAt(acc, "Written_Off_Amt_Principal"), constants.SentinelAmount),
			SettlementAmount:    displayAmount(valueAt(acc, "Settlement_Amount"), constants.SentinelAmount),
		}

		// Holder contact details ride along on each CAIS account.
		for _, phoneItem := range sliceAt(acc, "CAIS_Holder_Phone_Details") {
			phone := asMap(phoneItem)
			if number := stringAt(phone, "Telephone_Number"); number != "" {
				report.ContactInformation.PhoneNumbers = append(report.ContactInformation.PhoneNumbers,
					reportmodel.PhoneNumber{
						Type:   displayText(valueAt(phone, "Telephone_Type"), "Phone"),
						Number: number,
					})
			}
		}
		for _, addrItem := range sliceAt(acc, "CAIS_Holder_Address_Details") {
			holderAddr := asMap(addrItem)
			line := composeAddress(
				stringAt(holderAddr, "First_Line_Of_Address_non_normalized"),
				stringAt(holderAddr, "Second_Line_Of_Address_non_normalized"),
				stringAt(holderAddr, "Third_Line_Of_Address_non_normalized"),
				stringAt(holderAddr, "City_non_normalized"),
				stringAt(holderAddr, "State_non_normalized"),
				stringAt(holderAddr, "ZIP_Postal_Code_non_normalized"),
			)
			if line != constants.NotReported {
				report.ContactInformation.Addresses = append(report.ContactInformation.Addresses,
					reportmodel.Address{
						Address:      line,
						Category:     "Account Holder Address",
						Status:       constants.NotReported,
						DateReported: utils.NormalizeDate(stringAt(acc, "Date_Reported")),
					})
			}
		}

		report.Accounts = append(report.Accounts, account)
	}

	// Enquiries from the CAPS block.
	for _, item := range sliceAt(prof, "CAPS", "CAPS_Application_Details") {
		enq := asMap(item)
		report.Enquiries = append(report.Enquiries, reportmodel.Enquiry{
			MemberName:  displayText(valueAt(enq, "Subscriber_Name"), constants.NotReported),
			EnquiryDate: utils.NormalizeDate(stringAt(enq, "Date_of_Request")),
			Purpose:     displayText(valueAt(enq, "Enquiry_Reason"), constants.NotReported),
		})
	}

	// Summary from CAIS_Summary, derived when absent.
	summary := deriveSummary(report.Accounts)
	if creditAccount := mapAt(prof, "CAIS_Account", "CAIS_Summary", "Credit_Account"); creditAccount != nil {
		if f, ok := utils.ToNumber(valueAt(creditAccount, "CreditAccountTotal")); ok {
			summary.TotalAccounts = int(f)
		}
		if f, ok := utils.ToNumber(valueAt(creditAccount, "CreditAccountActive")); ok {
			summary.ActiveAccounts = int(f)
		}
		if f, ok := utils.ToNumber(valueAt(creditAccount, "CreditAccountClosed")); ok {
			summary.ClosedAccounts = int(f)
		}
	}
	if balance := mapAt(prof, "CAIS_Account", "CAIS_Summary", "Total_Outstanding_Balance"); balance != nil {
		if f, ok := utils.ToNumber(valueAt(balance, "Outstanding_Balance_All")); ok {
			summary.TotalCurrentBalance = f
		}
	}
	report.Summary = summary

	applyContextFallbacks(report, ctx)

	return bureaumodel.ParseResult{
		Success:    true,
		Report:     report,
		RawData:    raw,
		BureauName: bureauName,
	}
}
