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

package services

import (
	"net/http"
	"strings"

	"github.com/creditdesk/bureau-data-service/internal/report/handler"
)

// BureauReportService handles routing for the bureau report endpoints.
type BureauReportService struct {
	handler *handler.ReportHandler
}

// NewBureauReportService creates a new BureauReportService instance.
func NewBureauReportService() *BureauReportService {
	return &BureauReportService{
		handler: handler.NewReportHandler(),
	}
}

// Route dispatches bureau report requests.
func (s *BureauReportService) Route(w http.ResponseWriter, r *http.Request) {

	path := strings.TrimSuffix(r.URL.Path, "/")
	method := r.Method

	switch {
	case method == http.MethodPost && path == "/bureau-reports/parse":
		s.handler.HandleParseReport(w, r)

	case method == http.MethodPost && path == "/bureau-reports/merge":
		s.handler.HandleMergeReports(w, r)

	case method == http.MethodPost && path == "/bureau-reports/risk-summary":
		s.handler.HandleRiskSummary(w, r)

	case method == http.MethodPost && path == "/bureau-reports":
		s.handler.HandleSaveReport(w, r)

	case method == http.MethodGet && strings.HasPrefix(path, "/bureau-reports/"):
		s.handler.HandleGetReport(w, r)

	default:
		http.NotFound(w, r)
	}
}
