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
	"fmt"
	"math"
	"strings"

	bureaumodel "github.com/creditdesk/bureau-data-service/internal/bureau/model"
	reportmodel "github.com/creditdesk/bureau-data-service/internal/report/model"
	"github.com/creditdesk/bureau-data-service/internal/system/constants"
	"github.com/creditdesk/bureau-data-service/internal/system/utils"
)

// newEmptyReport returns a structurally complete report with every field at
// its sentinel. Transformers start from this so no consumer ever sees a
// partially shaped object.
func newEmptyReport(bureauName string) *reportmodel.UnifiedCreditReport {
	return &reportmodel.UnifiedCreditReport{
		Header: reportmodel.ReportHeader{
			BureauName:    bureauName,
			ControlNumber: "",
			ReportDate:    constants.SentinelDate,
			CreditScore:   nil,
		},
		PersonalInformation: reportmodel.PersonalInformation{
			FullName:        constants.NotReported,
			DateOfBirth:     constants.SentinelDate,
			Gender:          constants.NotReported,
			Identifications: []reportmodel.Identification{},
		},
		ContactInformation: reportmodel.ContactInformation{
			Addresses:    []reportmodel.Address{},
			PhoneNumbers: []reportmodel.PhoneNumber{},
			Emails:       []string{},
		},
		EmploymentInformation: []reportmodel.EmploymentRecord{},
		Accounts:              []reportmodel.Account{},
		Enquiries:             []reportmodel.Enquiry{},
		Summary:               reportmodel.ReportSummary{},
	}
}

// newAccount returns an account with every field at its sentinel.
func newAccount() reportmodel.Account {
	return reportmodel.Account{
		LenderName:       constants.NotReported,
		AccountType:      constants.NotReported,
		AccountNumber:    constants.NotReported,
		Ownership:        "Individual",
		CreditLimit:      constants.SentinelAmount,
		SanctionedAmount: constants.SentinelAmount,
		CurrentBalance:   constants.SentinelAmount,
		CashLimit:        constants.SentinelAmount,
		AmountOverdue:    constants.SentinelZeroAmount,
		InterestRate:     constants.SentinelAmount,
		Tenure:           constants.SentinelAmount,
		EMIAmount:        constants.SentinelAmount,
		PaymentFrequency: constants.NotReported,
		ActualPayment:    constants.SentinelAmount,
		Dates:            reportmodel.AccountDates{},
		PaymentStartDate: constants.SentinelDate,
		PaymentEndDate:   constants.SentinelDate,
		PaymentHistory:   []reportmodel.PaymentHistoryYear{},
		Collateral: reportmodel.Collateral{
			Value:               constants.SentinelAmount,
			Type:                constants.NotReported,
			SuitFiled:           "No",
			FacilityStatus:      constants.NotReported,
			WrittenOffTotal:     constants.SentinelAmount,
			WrittenOffPrincipal: constants.SentinelAmount,
			SettlementAmount:    constants.SentinelAmount,
		},
	}
}

// displayAmount renders a vendor amount as its display string, keeping the
// vendor's own text (trimmed) when it carries a numeric value and falling
// back to def otherwise.
func displayAmount(v interface{}, def string) string {
	s := utils.SafeString(v, "")
	if s == "" {
		return def
	}
	if _, ok := utils.ToNumber(s); !ok {
		return def
	}
	return s
}

// displayText renders free vendor text with a fallback.
func displayText(v interface{}, def string) string {
	return utils.SafeString(v, def)
}

// accountTypeLabel resolves an account-type code, keeping the sentinel when
// the vendor sent nothing.
func accountTypeLabel(code string) string {
	if label := utils.MapAccountType(code); label != "" {
		return label
	}
	return constants.NotReported
}

// ownershipLabel resolves an ownership indicator, defaulting to Individual.
func ownershipLabel(code string) string {
	if label := utils.MapOwnership(code); label != "" {
		return label
	}
	return "Individual"
}

// optionalDate normalizes a vendor date into a nullable field: nil when the
// vendor sent nothing, a normalized date string otherwise.
func optionalDate(v interface{}) *string {
	s := utils.SafeString(v, "")
	if s == "" {
		return nil
	}
	d := utils.NormalizeDate(s)
	return &d
}

// scorePtr parses a bureau score into a nullable integer. nil means the
// bureau returned no score, which is distinct from zero.
func scorePtr(v interface{}) *int {
	f, ok := utils.ToNumber(v)
	if !ok {
		return nil
	}
	s := int(math.Round(f))
	return &s
}

// deriveSummary recomputes the report summary from the parsed account list.
// Used both when the vendor omits its own summary segment and by the merge
// engine, so counts always satisfy active+closed == total.
func deriveSummary(accounts []reportmodel.Account) reportmodel.ReportSummary {
	summary := reportmodel.ReportSummary{TotalAccounts: len(accounts)}
	for _, account := range accounts {
		if account.Dates.DateClosed == nil {
			summary.ActiveAccounts++
		} else {
			summary.ClosedAccounts++
		}
		if f, ok := utils.ToNumber(account.AmountOverdue); ok {
			summary.TotalOverdueAmount += f
		}
		if f, ok := utils.ToNumber(account.SanctionedAmount); ok {
			summary.TotalSanctionedAmount += f
		}
		if f, ok := utils.ToNumber(account.CurrentBalance); ok {
			summary.TotalCurrentBalance += f
		}
	}
	return summary
}

// ensurePANIdentification guarantees at least one PAN/tax identification is
// present, unshifting a context-derived record when the vendor omitted it.
func ensurePANIdentification(report *reportmodel.UnifiedCreditReport, ctx bureaumodel.ParserContext) {
	for _, id := range report.PersonalInformation.Identifications {
		t := strings.ToUpper(id.Type)
		if strings.Contains(t, "PAN") || strings.Contains(t, "TAX") {
			return
		}
	}
	pan := reportmodel.Identification{
		Type:   "Income Tax ID Number (PAN)",
		Number: utils.SafeString(ctx.PANNumber, constants.NotReported),
	}
	report.PersonalInformation.Identifications = append(
		[]reportmodel.Identification{pan},
		report.PersonalInformation.Identifications...,
	)
}

// ensureMobileNumber guarantees the applicant's mobile number is listed,
// de-duplicated by exact number match.
func ensureMobileNumber(report *reportmodel.UnifiedCreditReport, ctx bureaumodel.ParserContext) {
	mobile := strings.TrimSpace(ctx.MobileNumber)
	if mobile == "" {
		return
	}
	for _, phone := range report.ContactInformation.PhoneNumbers {
		if phone.Number == mobile {
			return
		}
	}
	report.ContactInformation.PhoneNumbers = append(
		[]reportmodel.PhoneNumber{{Type: "Mobile", Number: mobile}},
		report.ContactInformation.PhoneNumbers...,
	)
}

// applyContextFallbacks fills personal information slots the vendor left
// empty from the applicant-supplied context, then applies the PAN and mobile
// guarantees.
func applyContextFallbacks(report *reportmodel.UnifiedCreditReport, ctx bureaumodel.ParserContext) {
	pi := &report.PersonalInformation
	if pi.FullName == constants.NotReported || pi.FullName == "" {
		pi.FullName = strings.ToUpper(utils.SafeString(ctx.FullName, constants.NotReported))
	}
	if pi.DateOfBirth == constants.SentinelDate && strings.TrimSpace(ctx.DateOfBirth) != "" {
		pi.DateOfBirth = utils.NormalizeDate(ctx.DateOfBirth)
	}
	if pi.Gender == constants.NotReported && strings.TrimSpace(ctx.Gender) != "" {
		pi.Gender = strings.TrimSpace(ctx.Gender)
	}
	ensurePANIdentification(report, ctx)
	ensureMobileNumber(report, ctx)
}

// composeAddress joins non-blank address components into one display line.
func composeAddress(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, strings.TrimSpace(p))
		}
	}
	if len(kept) == 0 {
		return constants.NotReported
	}
	return strings.Join(kept, ", ")
}

// failureResult converts a recovered panic or validation problem into the
// uniform failure shape transformers return.
func failureResult(bureauName string, raw interface{}, cause interface{}) bureaumodel.ParseResult {
	return bureaumodel.ParseResult{
		Success:    false,
		Report:     nil,
		RawData:    raw,
		Error:      fmt.Sprintf("%v", cause),
		BureauName: bureauName,
	}
}
