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
	"strings"

	"github.com/creditdesk/bureau-data-service/internal/report/model"
	"github.com/creditdesk/bureau-data-service/internal/report/provider"
	errors2 "github.com/creditdesk/bureau-data-service/internal/system/errors"
	"github.com/creditdesk/bureau-data-service/internal/system/utils"
)

// ReportHandler exposes the bureau report operations over HTTP. Parse
// failures are data, not errors: an unrecognized payload still gets a 200
// with success=false so callers can decide between showing the failure and
// synthesizing a fallback report.
type ReportHandler struct{}

// NewReportHandler creates a new instance of ReportHandler.
func NewReportHandler() *ReportHandler {

	return &ReportHandler{}
}

// HandleParseReport handles POST /bureau-reports/parse requests.
func (rh *ReportHandler) HandleParseReport(w http.ResponseWriter, r *http.Request) {

	var request model.ParseReportRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.HandleError(w, errors2.NewClientError(errors2.ErrInvalidRequestFormat, http.StatusBadRequest))
		return
	}
	if request.Payload == nil {
		utils.HandleError(w, errors2.NewClientError(errors2.ErrMissingPayload, http.StatusBadRequest))
		return
	}

	reportService := provider.NewReportProvider().GetReportService()
	result := reportService.ParseReport(request)
	utils.WriteJSONResponse(w, http.StatusOK, result)
}

// HandleMergeReports handles POST /bureau-reports/merge requests.
func (rh *ReportHandler) HandleMergeReports(w http.ResponseWriter, r *http.Request) {

	var request model.MergeReportsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.HandleError(w, errors2.NewClientError(errors2.ErrInvalidRequestFormat, http.StatusBadRequest))
		return
	}

	reportService := provider.NewReportProvider().GetReportService()
	merged := reportService.MergeReports(request.Reports)
	utils.WriteJSONResponse(w, http.StatusOK, merged)
}

// HandleRiskSummary handles POST /bureau-reports/risk-summary requests.
func (rh *ReportHandler) HandleRiskSummary(w http.ResponseWriter, r *http.Request) {

	var request model.RiskSummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.HandleError(w, errors2.NewClientError(errors2.ErrInvalidRequestFormat, http.StatusBadRequest))
		return
	}

	reportService := provider.NewReportProvider().GetReportService()
	summary := reportService.BuildRiskSummary(request.Reports)
	utils.WriteJSONResponse(w, http.StatusOK, summary)
}

// HandleSaveReport handles POST /bureau-reports requests.
func (rh *ReportHandler) HandleSaveReport(w http.ResponseWriter, r *http.Request) {

	var report model.UnifiedCreditReport
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		utils.HandleError(w, errors2.NewClientError(errors2.ErrInvalidRequestFormat, http.StatusBadRequest))
		return
	}

	reportService := provider.NewReportProvider().GetReportService()
	reportID, err := reportService.SaveReport(&report)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, map[string]string{"report_id": reportID})
}

// HandleGetReport handles GET /bureau-reports/{id} requests.
func (rh *ReportHandler) HandleGetReport(w http.ResponseWriter, r *http.Request) {

	pathParts := strings.Split(strings.TrimSuffix(r.URL.Path, "/"), "/")
	if len(pathParts) < 2 {
		http.Error(w, "Invalid path", http.StatusNotFound)
		return
	}
	reportID := pathParts[len(pathParts)-1]

	reportService := provider.NewReportProvider().GetReportService()
	stored, err := reportService.GetReport(reportID)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, stored)
}
