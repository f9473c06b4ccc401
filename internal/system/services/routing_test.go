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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBureauReportServiceRouting(t *testing.T) {
	service := NewBureauReportService()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{name: "parse", method: http.MethodPost, path: "/bureau-reports/parse", body: `{"payload": {"HM-REPORT": {}}}`, status: http.StatusOK},
		{name: "parse trailing slash", method: http.MethodPost, path: "/bureau-reports/parse/", body: `{"payload": {"HM-REPORT": {}}}`, status: http.StatusOK},
		{name: "merge", method: http.MethodPost, path: "/bureau-reports/merge", body: `{"reports": {}}`, status: http.StatusOK},
		{name: "risk summary", method: http.MethodPost, path: "/bureau-reports/risk-summary", body: `{"reports": {}}`, status: http.StatusOK},
		{name: "save invalid report", method: http.MethodPost, path: "/bureau-reports", body: `{}`, status: http.StatusBadRequest},
		{name: "unknown path", method: http.MethodPost, path: "/bureau-reports/unknown", body: `{}`, status: http.StatusNotFound},
		{name: "wrong method", method: http.MethodDelete, path: "/bureau-reports/parse", body: ``, status: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			service.Route(rec, req)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestHealthServiceRouting(t *testing.T) {
	service := NewHealthService()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	service.Route(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var response map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response["status"])

	// Readiness gates on the report store, which is not connected in tests.
	req = httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec = httptest.NewRecorder()
	service.Route(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/health", nil)
	rec = httptest.NewRecorder()
	service.Route(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
