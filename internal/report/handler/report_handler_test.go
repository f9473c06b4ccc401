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

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bureaumodel "github.com/creditdesk/bureau-data-service/internal/bureau/model"
	mergeservice "github.com/creditdesk/bureau-data-service/internal/merge/service"
	"github.com/creditdesk/bureau-data-service/internal/report/model"
)

const parseRequestBody = `{
	"bureau": "",
	"context": {"fullName": "Rahul Sharma", "panNumber": "ABCPS1234F", "mobileNumber": "9876543210"},
	"payload": {
		"CreditReport": {
			"Header": {"EnquiryControlNumber": "EC-42", "DateProcessed": "15032024"},
			"ScoreSegment": {"Score": "742"},
			"NameSegment": {"ConsumerName1": "Rahul", "ConsumerName2": "Sharma"}
		}
	}
}`

func postJSON(t *testing.T, handle http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handle(rec, req)
	return rec
}

func TestHandleParseReport(t *testing.T) {
	rec := postJSON(t, NewReportHandler().HandleParseReport, "/bureau-reports/parse", parseRequestBody)

	require.Equal(t, http.StatusOK, rec.Code)
	var result bureaumodel.ParseResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, "CIBIL", result.BureauName)
	require.NotNil(t, result.Report)
	assert.Equal(t, "EC-42", result.Report.Header.ControlNumber)
	require.NotNil(t, result.Report.Header.CreditScore)
	assert.Equal(t, 742, *result.Report.Header.CreditScore)
}

func TestHandleParseReportInvalidJSON(t *testing.T) {
	rec := postJSON(t, NewReportHandler().HandleParseReport, "/bureau-reports/parse", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleParseReportMissingPayload(t *testing.T) {
	rec := postJSON(t, NewReportHandler().HandleParseReport, "/bureau-reports/parse", `{"bureau": "cibil"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// An unrecognized payload is still a 200: the failure is data the caller
// reacts to, not a transport error.
func TestHandleParseReportUnknownPayload(t *testing.T) {
	rec := postJSON(t, NewReportHandler().HandleParseReport, "/bureau-reports/parse", `{"payload": {"foo": "bar"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var result bureaumodel.ParseResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.Equal(t, "Unknown", result.BureauName)
	assert.NotEmpty(t, result.Error)
}

func TestHandleMergeReports(t *testing.T) {
	request := map[string]interface{}{
		"reports": map[string]*model.UnifiedCreditReport{
			"cibil": {
				Header: model.ReportHeader{BureauName: "CIBIL", ControlNumber: "CN-1", ReportDate: "2024-03-10"},
				PersonalInformation: model.PersonalInformation{
					FullName: "RAHUL SHARMA", DateOfBirth: "1990-05-12", Gender: "Male",
				},
				Accounts: []model.Account{{LenderName: "HDFC BANK", AmountOverdue: "0"}},
			},
			"equifax": {
				Header:   model.ReportHeader{BureauName: "Equifax", ControlNumber: "CN-2", ReportDate: "2024-03-15"},
				Accounts: []model.Account{{LenderName: "SBI", AmountOverdue: "12000"}},
			},
		},
	}
	body, err := json.Marshal(request)
	require.NoError(t, err)

	rec := postJSON(t, NewReportHandler().HandleMergeReports, "/bureau-reports/merge", string(body))

	require.Equal(t, http.StatusOK, rec.Code)
	var response struct {
		Merged     *model.UnifiedCreditReport            `json:"merged"`
		Individual map[string]*model.UnifiedCreditReport `json:"individual"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.NotNil(t, response.Merged)
	assert.Equal(t, mergeservice.MergedBureauName, response.Merged.Header.BureauName)
	assert.Equal(t, "2024-03-15", response.Merged.Header.ReportDate)
	assert.Equal(t, "RAHUL SHARMA", response.Merged.PersonalInformation.FullName)
	assert.Len(t, response.Merged.Accounts, 2)
	assert.Len(t, response.Individual, 2)
}

func TestHandleRiskSummary(t *testing.T) {
	score := 580
	request := map[string]interface{}{
		"reports": map[string]*model.UnifiedCreditReport{
			"experian": {
				Header:   model.ReportHeader{BureauName: "Experian", ControlNumber: "CN-1", CreditScore: &score},
				Accounts: []model.Account{{LenderName: "SBI", AmountOverdue: "60000"}},
			},
		},
	}
	body, err := json.Marshal(request)
	require.NoError(t, err)

	rec := postJSON(t, NewReportHandler().HandleRiskSummary, "/bureau-reports/risk-summary", string(body))

	require.Equal(t, http.StatusOK, rec.Code)
	var summary struct {
		AverageScore *int `json:"average_score"`
		Risk         struct {
			IsHighRisk bool     `json:"isHighRisk"`
			Reasons    []string `json:"reasons"`
			RiskScore  int      `json:"riskScore"`
		} `json:"risk"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	require.NotNil(t, summary.AverageScore)
	assert.Equal(t, 580, *summary.AverageScore)
	assert.True(t, summary.Risk.IsHighRisk)
	assert.Equal(t, 70, summary.Risk.RiskScore)
	assert.Len(t, summary.Risk.Reasons, 2)
}

// Structural validation fires before any storage access, so a bad report is
// a 400 even with no database configured.
func TestHandleSaveReportInvalid(t *testing.T) {
	rec := postJSON(t, NewReportHandler().HandleSaveReport, "/bureau-reports", `{"header": {"bureau_name": ""}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
