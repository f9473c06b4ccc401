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

import "time"

// ParseContext mirrors the applicant-supplied fallback fields of a parse
// request. It is ephemeral: constructed per call, never persisted.
type ParseContext struct {
	FullName     string `json:"fullName"`
	PANNumber    string `json:"panNumber"`
	MobileNumber string `json:"mobileNumber"`
	DateOfBirth  string `json:"dateOfBirth,omitempty"`
	Gender       string `json:"gender,omitempty"`
}

// ParseReportRequest is the body of POST /bureau-reports/parse. Bureau is an
// optional hint; when empty the payload shape decides.
type ParseReportRequest struct {
	Bureau  string       `json:"bureau,omitempty"`
	Context ParseContext `json:"context"`
	Payload interface{}  `json:"payload"`
	Persist bool         `json:"persist,omitempty"`
}

// MergeReportsRequest is the body of POST /bureau-reports/merge. Keys are
// bureau codes; null entries mean the bureau was not fetched.
type MergeReportsRequest struct {
	Reports map[string]*UnifiedCreditReport `json:"reports"`
}

// RiskSummaryRequest is the body of POST /bureau-reports/risk-summary.
type RiskSummaryRequest struct {
	Reports map[string]*UnifiedCreditReport `json:"reports"`
}

// StoredReport is a persisted unified report row.
type StoredReport struct {
	ReportID      string               `json:"report_id"`
	BureauName    string               `json:"bureau_name"`
	ControlNumber string               `json:"control_number"`
	ReportDate    string               `json:"report_date"`
	CreditScore   *int                 `json:"credit_score"`
	Report        *UnifiedCreditReport `json:"report"`
}

// ReportPull is one append-only audit row recorded per persisted parse.
type ReportPull struct {
	PullID       string    `json:"pull_id"`
	ReportID     string    `json:"report_id,omitempty"`
	BureauName   string    `json:"bureau_name"`
	Outcome      string    `json:"outcome"`
	CreditScore  *int      `json:"credit_score"`
	ErrorMessage string    `json:"error_message,omitempty"`
	PulledAt     time.Time `json:"pulled_at"`
}
