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

package service

import reportmodel "github.com/creditdesk/bureau-data-service/internal/report/model"

// parsePaymentHistoryString decodes a vendor's compact month-per-character
// payment history string into per-year grids.
//
// The per-vendor DPD encodings are not wired up yet, so this always yields
// an empty history. Callers must treat an empty payment_history as "no data
// available", never as "all months on time".
//
// TODO: wire the CIBIL PaymentHistory1/2 and CRIF COMBINED-PAYMENT-HISTORY
// code tables once the vendor encoding documents are confirmed.
func parsePaymentHistoryString(encoded string, startDate string) []reportmodel.PaymentHistoryYear {
	_ = encoded
	_ = startDate
	return []reportmodel.PaymentHistoryYear{}
}
