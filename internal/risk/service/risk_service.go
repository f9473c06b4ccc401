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
	"time"

	bureaumodel "github.com/creditdesk/bureau-data-service/internal/bureau/model"
	reportmodel "github.com/creditdesk/bureau-data-service/internal/report/model"
	riskmodel "github.com/creditdesk/bureau-data-service/internal/risk/model"
	"github.com/creditdesk/bureau-data-service/internal/system/config"
	"github.com/creditdesk/bureau-data-service/internal/system/constants"
	"github.com/creditdesk/bureau-data-service/internal/system/utils"
)

// AnalyzeRisk scores a report snapshot with an additive point system. The
// rules run in a fixed order and each contributes both points and a
// human-readable reason, so the reasons list mirrors the rule order. The
// final score is clamped to [0, 100]. The verdict is high-risk when the
// score reaches the threshold or when at least two independent rules fired,
// whichever comes first; a pair of moderate factors disqualifies the same
// way one large factor does.
func AnalyzeRisk(cfg config.RiskConfig, scores []*int, totalOverdue float64, recentEnquiries int, accounts []reportmodel.Account) riskmodel.RiskAnalysis {
	points := 0
	var reasons []string

	if mean, ok := meanScore(scores); ok && mean < float64(cfg.LowScoreCutoff) {
		points += cfg.LowScorePoints
		reasons = append(reasons, fmt.Sprintf("Average bureau score %.0f is below %d", mean, cfg.LowScoreCutoff))
	}

	if totalOverdue > cfg.HighOverdueCutoff {
		points += cfg.HighOverduePoints
		reasons = append(reasons, fmt.Sprintf("Total overdue amount %s exceeds %s",
			utils.FormatNumber(totalOverdue), utils.FormatNumber(cfg.HighOverdueCutoff)))
	}

	if recentEnquiries > cfg.MaxRecentEnquiries {
		points += cfg.EnquiryPoints
		reasons = append(reasons, fmt.Sprintf("%d credit enquiries in the last %d days exceeds %d",
			recentEnquiries, cfg.EnquiryWindowDays, cfg.MaxRecentEnquiries))
	}

	if count := countWriteOffAccounts(accounts); count > 0 {
		points += cfg.WriteOffPoints
		reasons = append(reasons, fmt.Sprintf("%d account(s) reported as NPA, loss or written off", count))
	}

	score := points
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	if reasons == nil {
		reasons = []string{}
	}

	return riskmodel.RiskAnalysis{
		IsHighRisk: score >= cfg.HighRiskThreshold || len(reasons) >= cfg.HighRiskReasonCount,
		Reasons:    reasons,
		RiskScore:  score,
	}
}

// BuildUnifiedReportSummary rolls the per-bureau reports up into one summary
// and attaches the risk verdict. The recent-enquiry window counts back from
// the current clock; enquiry dates that are sentinels or do not parse are
// excluded rather than treated as recent.
func BuildUnifiedReportSummary(cfg config.RiskConfig, reports map[bureaumodel.BureauType]*reportmodel.UnifiedCreditReport) riskmodel.UnifiedReportSummary {
	summary := riskmodel.UnifiedReportSummary{
		BureauScores: make(map[bureaumodel.BureauType]*int),
		Accounts:     []reportmodel.Account{},
	}

	var scores []*int
	cutoff := utils.Now().AddDate(0, 0, -cfg.EnquiryWindowDays)

	for _, bureau := range bureaumodel.OrderedBureaus {
		report := reports[bureau]
		if report == nil {
			continue
		}
		summary.BureauScores[bureau] = report.Header.CreditScore
		scores = append(scores, report.Header.CreditScore)
		summary.Accounts = append(summary.Accounts, report.Accounts...)
		summary.TotalEnquiries += len(report.Enquiries)
		for _, enquiry := range report.Enquiries {
			if isWithinWindow(enquiry.EnquiryDate, cutoff) {
				summary.RecentEnquiries++
			}
		}
	}

	summary.TotalAccounts = len(summary.Accounts)
	for _, account := range summary.Accounts {
		if account.Dates.DateClosed == nil {
			summary.ActiveAccounts++
		} else {
			summary.ClosedAccounts++
		}
		if f, ok := utils.ToNumber(account.AmountOverdue); ok {
			summary.TotalOverdue += f
		}
	}

	if mean, ok := meanScore(scores); ok {
		rounded := int(math.Round(mean))
		summary.AverageScore = &rounded
	}

	summary.Risk = AnalyzeRisk(cfg, scores, summary.TotalOverdue, summary.RecentEnquiries, summary.Accounts)
	return summary
}

// meanScore averages the non-nil scores. ok is false when every score is nil.
func meanScore(scores []*int) (float64, bool) {
	sum, n := 0, 0
	for _, s := range scores {
		if s != nil {
			sum += *s
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

// countWriteOffAccounts counts accounts flagged as NPA, loss or written off,
// either by their facility status text or by a positive written-off total.
func countWriteOffAccounts(accounts []reportmodel.Account) int {
	count := 0
	for _, account := range accounts {
		status := strings.ToLower(account.Collateral.FacilityStatus)
		flagged := strings.Contains(status, "npa") ||
			strings.Contains(status, "loss") ||
			strings.Contains(status, "written")
		if !flagged {
			if f, ok := utils.ToNumber(account.Collateral.WrittenOffTotal); ok && f > 0 {
				flagged = true
			}
		}
		if flagged {
			count++
		}
	}
	return count
}

// isWithinWindow reports whether an ISO enquiry date falls on or after the
// cutoff. Sentinel and malformed dates are never "recent".
func isWithinWindow(date string, cutoff time.Time) bool {
	if date == constants.SentinelDate {
		return false
	}
	parsed, err := time.Parse(constants.ISODateLayout, date)
	if err != nil {
		return false
	}
	return !parsed.Before(cutoff)
}
