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

package provider

import (
	"github.com/creditdesk/bureau-data-service/internal/report/service"
)

// ReportProviderInterface defines the interface for the report provider.
type ReportProviderInterface interface {
	GetReportService() service.ReportServiceInterface
}

// ReportProvider is the default implementation of the ReportProviderInterface.
type ReportProvider struct{}

// NewReportProvider creates a new instance of ReportProvider.
func NewReportProvider() ReportProviderInterface {

	return &ReportProvider{}
}

// GetReportService returns the report service instance.
func (rp *ReportProvider) GetReportService() service.ReportServiceInterface {

	return service.GetReportService()
}
