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

package errors

const errorPrefix = "BDS-"

var (
	// Server error codes

	ErrWhileSavingReport = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Error while saving unified credit report.",
	}

	ErrWhileFetchingReport = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while fetching unified credit report.",
	}

	ErrWhileRecordingPull = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while recording bureau pull.",
	}

	ErrWhileArchivingPayload = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while archiving raw bureau payload.",
	}

	ErrDBClientInit = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Unable to initialize database client.",
	}

	ErrMarshalJSON = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while marshalling JSON.",
	}

	ErrUnmarshalJSON = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while un-marshalling JSON.",
	}

	// Client error codes

	ErrInvalidRequestFormat = ErrorMessage{
		Code:        errorPrefix + "11001",
		Message:     "Invalid request format.",
		Description: "The request body could not be parsed as JSON.",
	}

	ErrMissingPayload = ErrorMessage{
		Code:        errorPrefix + "11002",
		Message:     "Missing bureau payload.",
		Description: "The request must carry a JSON-decoded bureau response payload.",
	}

	ErrUnknownBureau = ErrorMessage{
		Code:        errorPrefix + "11003",
		Message:     "Unknown bureau.",
		Description: "The bureau name does not match any supported bureau.",
	}

	ErrReportNotFound = ErrorMessage{
		Code:        errorPrefix + "11004",
		Message:     "Report not found.",
		Description: "No unified credit report exists for the given report id.",
	}

	ErrInvalidReportStructure = ErrorMessage{
		Code:        errorPrefix + "11005",
		Message:     "Invalid report structure.",
		Description: "The unified credit report failed structural validation.",
	}
)
