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
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	customerrors "github.com/creditdesk/bureau-data-service/internal/system/errors"
	"github.com/creditdesk/bureau-data-service/internal/system/log"
)

// WriteJSONResponse encodes data as the JSON response body.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// HandleError sends an HTTP error response based on the provided error.
// Client errors keep their status code and error message; everything else is
// reported as an opaque internal error with a trace id for correlation.
func HandleError(w http.ResponseWriter, err error) {
	traceID := uuid.NewString()

	var clientError *customerrors.ClientError
	if errors.As(err, &clientError) {
		msg := clientError.ErrorMessage
		msg.TraceID = traceID
		WriteJSONResponse(w, clientError.StatusCode, msg)
		return
	}

	var serverError *customerrors.ServerError
	if errors.As(err, &serverError) {
		log.GetLogger().Error(serverError.Error(), log.String("trace_id", traceID))
		WriteJSONResponse(w, http.StatusInternalServerError, map[string]string{
			"error":    "Internal server error",
			"trace_id": traceID,
		})
		return
	}

	log.GetLogger().Error(err.Error(), log.String("trace_id", traceID))
	WriteJSONResponse(w, http.StatusInternalServerError, map[string]string{
		"error":    "Internal server error",
		"trace_id": traceID,
	})
}
