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

package utils

import "strings"

// accountTypeLabels translates vendor account-type short codes to display
// labels. Numeric codes follow the TUEF convention; alphabetic codes are the
// short names some bureaus report instead.
var accountTypeLabels = map[string]string{
	"01": "Auto Loan",
	"02": "Housing Loan",
	"03": "Property Loan",
	"04": "Loan Against Shares/Securities",
	"05": "Personal Loan",
	"06": "Consumer Loan",
	"07": "Gold Loan",
	"08": "Education Loan",
	"09": "Loan to Professional",
	"10": "Credit Card",
	"13": "Two Wheeler Loan",
	"15": "Commercial Vehicle Loan",
	"35": "Corporate Credit Card",
	"51": "Business Loan",
	"AL": "Auto Loan",
	"HL": "Housing Loan",
	"PL": "Personal Loan",
	"CC": "Credit Card",
	"GL": "Gold Loan",
	"EL": "Education Loan",
	"BL": "Business Loan",
	"TW": "Two Wheeler Loan",
	"CV": "Commercial Vehicle Loan",
	"OD": "Overdraft",
}

// ownershipLabels translates ownership indicator codes to the four canonical
// labels.
var ownershipLabels = map[string]string{
	"1": "Individual",
	"2": "Joint",
	"3": "Authorised User",
	"4": "Guarantor",
	"I": "Individual",
	"J": "Joint",
	"A": "Authorised User",
	"G": "Guarantor",
}

// MapAccountType resolves a vendor account-type code to its display label.
// Unknown codes pass through unchanged so no vendor data is dropped.
func MapAccountType(code string) string {
	c := strings.TrimSpace(code)
	if label, ok := accountTypeLabels[strings.ToUpper(c)]; ok {
		return label
	}
	return c
}

// MapOwnership resolves an ownership indicator to its display label.
// Unknown codes pass through unchanged.
func MapOwnership(code string) string {
	c := strings.TrimSpace(code)
	if label, ok := ownershipLabels[strings.ToUpper(c)]; ok {
		return label
	}
	return c
}
