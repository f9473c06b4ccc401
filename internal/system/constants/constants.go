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

package constants

const (
	// ApiBasePath is the prefix under which all HTTP services are mounted.
	ApiBasePath = "/api/v1"

	// RawPayloadCollection is the Mongo collection holding archived vendor
	// payloads, keyed by control number.
	RawPayloadCollection = "raw_bureau_payloads"
)

// Sentinel values. Downstream consumers branch on these, never on a missing
// field.
const (
	SentinelDate       = "---"
	SentinelAmount     = "-"
	SentinelZeroAmount = "0"
	NotReported        = "Not Reported"
)

// ISODateLayout is the canonical report date format.
const ISODateLayout = "2006-01-02"
