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

import reportmodel "github.com/creditdesk/bureau-data-service/internal/report/model"

// BureauType tags the four supported credit bureaus.
type BureauType string

const (
	BureauCIBIL    BureauType = "cibil"
	BureauExperian BureauType = "experian"
	BureauEquifax  BureauType = "equifax"
	BureauCRIF     BureauType = "crif"

	// BureauUnknown is the zero hint; the dispatcher auto-detects.
	BureauUnknown BureauType = ""
)

// DisplayName returns the human bureau name used in report headers.
func (b BureauType) DisplayName() string {
	switch b {
	case BureauCIBIL:
		return "CIBIL"
	case BureauExperian:
		return "Experian"
	case BureauEquifax:
		return "Equifax"
	case BureauCRIF:
		return "CRIF High Mark"
	default:
		return "Unknown"
	}
}

// OrderedBureaus is the fixed iteration order used wherever per-bureau maps
// are walked (merge, summary building). Go map order is unspecified, so a
// deterministic order has to be explicit.
var OrderedBureaus = []BureauType{BureauCIBIL, BureauExperian, BureauEquifax, BureauCRIF}

// ParserContext carries the applicant-supplied identity fields used as the
// fallback source whenever a vendor payload omits the corresponding field.
// It is built once per parse call and never persisted.
type ParserContext struct {
	FullName     string `json:"fullName"`
	PANNumber    string `json:"panNumber"`
	MobileNumber string `json:"mobileNumber"`
	DateOfBirth  string `json:"dateOfBirth,omitempty"`
	Gender       string `json:"gender,omitempty"`
}

// ParseResult is the outcome of a transformer or dispatcher call. Parse
// failures are returned as data, never as panics or errors to the caller.
type ParseResult struct {
	Success    bool                             `json:"success"`
	Report     *reportmodel.UnifiedCreditReport `json:"unified_report"`
	RawData    interface{}                      `json:"raw_data,omitempty"`
	Error      string                           `json:"error,omitempty"`
	BureauName string                           `json:"bureau_name"`
}
