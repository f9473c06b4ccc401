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

package model

import (
	bureaumodel "github.com/creditdesk/bureau-data-service/internal/bureau/model"
	reportmodel "github.com/creditdesk/bureau-data-service/internal/report/model"
)

// RiskAnalysis is the scoring verdict. It is derived on demand from a report
// snapshot and never stored as a first-class entity. Reasons appear in the
// order the scoring rules fired.
type RiskAnalysis struct {
	IsHighRisk bool     `json:"isHighRisk" bson:"isHighRisk"`
	Reasons    []string `json:"reasons" bson:"reasons"`
	RiskScore  int      `json:"riskScore" bson:"riskScore"`
}

// UnifiedReportSummary is the cross-bureau rollup served alongside the risk
// verdict. AverageScore is nil when no bureau returned a score.
type UnifiedReportSummary struct {
	AverageScore    *int                            `json:"average_score" bson:"average_score"`
	BureauScores    map[bureaumodel.BureauType]*int `json:"bureau_scores" bson:"bureau_scores"`
	TotalAccounts   int                             `json:"total_accounts" bson:"total_accounts"`
	ActiveAccounts  int                             `json:"active_accounts" bson:"active_accounts"`
	ClosedAccounts  int                             `json:"closed_accounts" bson:"closed_accounts"`
	TotalOverdue    float64                         `json:"total_overdue" bson:"total_overdue"`
	TotalEnquiries  int                             `json:"total_enquiries" bson:"total_enquiries"`
	RecentEnquiries int                             `json:"recent_enquiries" bson:"recent_enquiries"`
	Accounts        []reportmodel.Account           `json:"accounts" bson:"accounts"`
	Risk            RiskAnalysis                    `json:"risk" bson:"risk"`
}
