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

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/creditdesk/bureau-data-service/internal/system/constants"
)

// Now is the clock used for synthesized defaults. Tests override it to get
// deterministic control numbers and report dates.
var Now = time.Now

// NormalizeDate coerces the date encodings seen across bureau payloads to
// YYYY-MM-DD.
//
// Accepted encodings:
// - YYYY-MM-DD (longer ISO timestamps are truncated to 10 characters)
// - DD-MM-YYYY
// - DD/MM/YYYY
// - YYYYMMDD
// - DDMMYYYY
//
// Unrecognized non-empty input is returned unchanged so that the original
// vendor text is never silently discarded. Empty input yields the "---"
// sentinel. Never panics.
func NormalizeDate(input string) string {
	s := strings.TrimSpace(input)
	if s == "" {
		return constants.SentinelDate
	}

	// ISO date or timestamp, e.g. 2021-03-15 or 2021-03-15T00:00:00.
	if len(s) >= 10 && s[4] == '-' && s[7] == '-' && isDigits(s[:4]) {
		return s[:10]
	}

	if len(s) == 10 {
		// DD-MM-YYYY
		if s[2] == '-' && s[5] == '-' && isDigits(s[:2]) && isDigits(s[3:5]) && isDigits(s[6:]) {
			return s[6:] + "-" + s[3:5] + "-" + s[:2]
		}
		// DD/MM/YYYY
		if s[2] == '/' && s[5] == '/' && isDigits(s[:2]) && isDigits(s[3:5]) && isDigits(s[6:]) {
			return s[6:] + "-" + s[3:5] + "-" + s[:2]
		}
	}

	// Eight bare digits: either YYYYMMDD or DDMMYYYY. Year-first is assumed
	// when the leading four digits form a plausible year and a valid month
	// follows; otherwise the day-first reading is tried.
	if len(s) == 8 && isDigits(s) {
		if plausibleYear(s[:4]) && plausibleMonth(s[4:6]) {
			return s[:4] + "-" + s[4:6] + "-" + s[6:]
		}
		if plausibleYear(s[4:]) && plausibleMonth(s[2:4]) {
			return s[4:] + "-" + s[2:4] + "-" + s[:2]
		}
	}

	return s
}

// ToNumber coerces loosely formatted vendor amounts to a float64. The second
// return value is false when the input carries no numeric value at all:
// nil, empty strings, the "-"/"---" sentinels and "NA"/"N/A" markers.
// Thousands-separator commas (Indian or western grouping) are stripped.
// Never panics.
func ToNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		s := strings.TrimSpace(v)
		switch strings.ToLower(s) {
		case "", "-", "---", "na", "n/a":
			return 0, false
		}
		s = strings.ReplaceAll(s, ",", "")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// EnsureArray normalizes the common vendor quirk where a single-item
// collection is serialized as a bare object instead of a one-element list.
// Arrays pass through, a single object becomes a one-element array, and
// anything else (nil, scalars) becomes an empty array.
func EnsureArray(value interface{}) []interface{} {
	switch v := value.(type) {
	case []interface{}:
		return v
	case map[string]interface{}:
		return []interface{}{v}
	default:
		return []interface{}{}
	}
}

// SafeString returns the trimmed string form of value, or fallback when the
// value is nil or blank. Numeric values are formatted without a trailing
// ".0" so integral amounts read naturally.
func SafeString(value interface{}, fallback string) string {
	switch v := value.(type) {
	case nil:
		return fallback
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return fallback
		}
		return s
	case float64:
		return FormatNumber(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		s := strings.TrimSpace(fmt.Sprintf("%v", v))
		if s == "" {
			return fallback
		}
		return s
	}
}

// FormatNumber renders a float without insignificant fraction digits.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// GenerateControlNumber synthesizes a reasonably unique reference for
// reports whose vendor payload carries no control number.
func GenerateControlNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("CR%d%s", Now().UnixMilli(), suffix)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func plausibleYear(s string) bool {
	y, err := strconv.Atoi(s)
	return err == nil && y >= 1900 && y <= 2099
}

func plausibleMonth(s string) bool {
	m, err := strconv.Atoi(s)
	return err == nil && m >= 1 && m <= 12
}
