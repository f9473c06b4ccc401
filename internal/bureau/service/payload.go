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

import (
	"strings"

	"github.com/creditdesk/bureau-data-service/internal/system/utils"
)

// Vendor payloads arrive as JSON-decoded values of unknown shape. The
// helpers below navigate them without ever panicking: a missing or
// wrong-typed step yields nil / "" and the fallback chain in the transformer
// takes over.

// asMap returns v as an object map, or nil when v is anything else.
func asMap(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

// payloadRoot locates the map under rootKey, accepting both the bare shape
// and the {data: ...}-wrapped shape some integrations produce.
func payloadRoot(raw interface{}, rootKey string) map[string]interface{} {
	m := asMap(raw)
	if m == nil {
		return nil
	}
	if root := asMap(m[rootKey]); root != nil {
		return root
	}
	if wrapped := asMap(m["data"]); wrapped != nil {
		return asMap(wrapped[rootKey])
	}
	return nil
}

// valueAt walks nested object keys and returns the value at the end of the
// path, or nil when any step is missing.
func valueAt(m map[string]interface{}, keys ...string) interface{} {
	if m == nil || len(keys) == 0 {
		return nil
	}
	current := m
	for i, key := range keys {
		if i == len(keys)-1 {
			return current[key]
		}
		current = asMap(current[key])
		if current == nil {
			return nil
		}
	}
	return nil
}

// mapAt walks nested object keys and returns the map at the end of the path.
func mapAt(m map[string]interface{}, keys ...string) map[string]interface{} {
	return asMap(valueAt(m, keys...))
}

// sliceAt returns the collection at the end of the path, normalizing the
// scalar-or-array vendor quirk through EnsureArray.
func sliceAt(m map[string]interface{}, keys ...string) []interface{} {
	return utils.EnsureArray(valueAt(m, keys...))
}

// stringAt returns the trimmed string form of the value at the path, or ""
// when it is missing or blank.
func stringAt(m map[string]interface{}, keys ...string) string {
	return utils.SafeString(valueAt(m, keys...), "")
}

// firstNonEmpty returns the first non-blank candidate, or "".
func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return strings.TrimSpace(c)
		}
	}
	return ""
}
