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

// MergedReportSet pairs the cross-bureau merged view with the untouched
// per-bureau inputs so consumers can drill down from the merged picture to
// each bureau's own statement.
type MergedReportSet struct {
	Merged     *reportmodel.UnifiedCreditReport                            `json:"merged" bson:"merged"`
	Individual map[bureaumodel.BureauType]*reportmodel.UnifiedCreditReport `json:"individual" bson:"individual"`
}
