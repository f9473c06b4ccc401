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
	mergemodel "github.com/creditdesk/bureau-data-service/internal/merge/model"
	reportmodel "github.com/creditdesk/bureau-data-service/internal/report/model"
	"github.com/creditdesk/bureau-data-service/internal/system/constants"
	"github.com/creditdesk/bureau-data-service/internal/system/utils"
)

// MergedBureauName labels the merged header so consumers can tell the
// consolidated view apart from any single bureau's report.
const MergedBureauName = "Multi-Bureau"

// MergeMultipleBureauReports combines up to four per-bureau unified reports
// into one consolidated view. Bureaus are visited in a fixed order (CIBIL,
// Experian, Equifax, CRIF) so concatenation is deterministic. The first
// bureau that reported personal information supplies the merged
// personal_information block unchanged; accounts, enquiries, contact and
// employment records are concatenated without de-duplication; the merged
// report date is the latest among the inputs; the merged summary is
// recomputed from the concatenated account list so per-bureau summary
// inconsistencies cannot double-count. Input reports are passed through
// untouched in Individual.
func MergeMultipleBureauReports(reports map[bureaumodel.BureauType]*reportmodel.UnifiedCreditReport) mergemodel.MergedReportSet {
	merged := &reportmodel.UnifiedCreditReport{
		Header: reportmodel.ReportHeader{
			BureauName:    MergedBureauName,
			ControlNumber: utils.GenerateControlNumber(),
			ReportDate:    constants.SentinelDate,
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
	}
	individual := make(map[bureaumodel.BureauType]*reportmodel.UnifiedCreditReport)

	personalTaken := false
	for _, bureau := range bureaumodel.OrderedBureaus {
		report := reports[bureau]
		if report == nil {
			continue
		}
		individual[bureau] = report

		if !personalTaken && hasPersonalInformation(report) {
			merged.PersonalInformation = report.PersonalInformation
			personalTaken = true
		}
		merged.Accounts = append(merged.Accounts, report.Accounts...)
		merged.Enquiries = append(merged.Enquiries, report.Enquiries...)
		merged.ContactInformation.Addresses = append(merged.ContactInformation.Addresses, report.ContactInformation.Addresses...)
		merged.ContactInformation.PhoneNumbers = append(merged.ContactInformation.PhoneNumbers, report.ContactInformation.PhoneNumbers...)
		merged.ContactInformation.Emails = append(merged.ContactInformation.Emails, report.ContactInformation.Emails...)
		merged.EmploymentInformation = append(merged.EmploymentInformation, report.EmploymentInformation...)

		// ISO dates are fixed width, so string comparison orders them.
		if report.Header.ReportDate != constants.SentinelDate &&
			(merged.Header.ReportDate == constants.SentinelDate || report.Header.ReportDate > merged.Header.ReportDate) {
			merged.Header.ReportDate = report.Header.ReportDate
		}
	}

	merged.Summary = recomputeSummary(merged.Accounts)

	return mergemodel.MergedReportSet{Merged: merged, Individual: individual}
}

// hasPersonalInformation reports whether a bureau actually supplied any
// personal data, as opposed to a transformer emitting only sentinels.
func hasPersonalInformation(report *reportmodel.UnifiedCreditReport) bool {
	pi := report.PersonalInformation
	if name := strings.TrimSpace(pi.FullName); name != "" && name != constants.NotReported {
		return true
	}
	if pi.DateOfBirth != constants.SentinelDate {
		return true
	}
	return len(pi.Identifications) > 0
}

// recomputeSummary aggregates the concatenated account list. Amounts that do
// not parse as numbers (sentinels and vendor free text) contribute nothing.
func recomputeSummary(accounts []reportmodel.Account) reportmodel.ReportSummary {
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
