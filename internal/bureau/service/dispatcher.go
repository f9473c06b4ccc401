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

	bureaumodel "github.com/creditdesk/bureau-data-service/internal/bureau/model"
	reportmodel "github.com/creditdesk/bureau-data-service/internal/report/model"
	"github.com/creditdesk/bureau-data-service/internal/system/constants"
	"github.com/creditdesk/bureau-data-service/internal/system/log"
	"github.com/creditdesk/bureau-data-service/internal/system/utils"
)

type transformer func(raw interface{}, ctx bureaumodel.ParserContext) bureaumodel.ParseResult

// DetectBureauFormat inspects a raw payload's structural markers and returns
// the owning bureau. Detection is ordered so that overlapping markers resolve
// the same way on every call.
func DetectBureauFormat(raw interface{}) (bureaumodel.BureauType, bool) {
	switch {
	case IsCIBILResponse(raw):
		return bureaumodel.BureauCIBIL, true
	case IsExperianResponse(raw):
		return bureaumodel.BureauExperian, true
	case IsEquifaxResponse(raw):
		return bureaumodel.BureauEquifax, true
	case IsCRIFResponse(raw):
		return bureaumodel.BureauCRIF, true
	}
	return bureaumodel.BureauUnknown, false
}

func transformerFor(bureau bureaumodel.BureauType) transformer {
	switch bureau {
	case bureaumodel.BureauCIBIL:
		return ParseCIBILResponse
	case bureaumodel.BureauExperian:
		return ParseExperianResponse
	case bureaumodel.BureauEquifax:
		return ParseEquifaxResponse
	case bureaumodel.BureauCRIF:
		return ParseCRIFResponse
	}
	return nil
}

// ParseBureauResponse transforms a raw bureau payload into the unified report
// shape. When hint names a bureau its transformer runs directly; otherwise the
// payload is detected, and if detection fails every transformer is attempted
// in turn. CRIF goes first in the fallback pass since its uppercase-hyphen
// root key is the most structurally distinctive.
func ParseBureauResponse(raw interface{}, ctx bureaumodel.ParserContext, hint bureaumodel.BureauType) bureaumodel.ParseResult {
	logger := log.GetLogger()

	if parse := transformerFor(hint); parse != nil {
		return parse(raw, ctx)
	}

	if bureau, ok := DetectBureauFormat(raw); ok {
		logger.Debug("Detected bureau format", log.String("bureau", string(bureau)))
		return transformerFor(bureau)(raw, ctx)
	}

	logger.Debug("No bureau format detected, attempting every transformer")
	for _, bureau := range []bureaumodel.BureauType{
		bureaumodel.BureauCRIF,
		bureaumodel.BureauCIBIL,
		bureaumodel.BureauExperian,
		bureaumodel.BureauEquifax,
	} {
		if result := transformerFor(bureau)(raw, ctx); result.Success {
			return result
		}
	}

	return failureResult("Unknown", raw, "unable to match payload against any supported bureau format")
}

// ParseByBureauName resolves a free-form bureau name to its transformer and
// runs it. Matching is case-insensitive and tolerant of vendor suffixes such
// as "CRIF High Mark".
func ParseByBureauName(raw interface{}, ctx bureaumodel.ParserContext, bureauName string) bureaumodel.ParseResult {
	name := strings.ToLower(strings.TrimSpace(bureauName))
	switch {
	case strings.Contains(name, "cibil"), strings.Contains(name, "transunion"):
		return ParseCIBILResponse(raw, ctx)
	case strings.Contains(name, "experian"):
		return ParseExperianResponse(raw, ctx)
	case strings.Contains(name, "equifax"):
		return ParseEquifaxResponse(raw, ctx)
	case strings.Contains(name, "crif"), strings.Contains(name, "high mark"), strings.Contains(name, "highmark"):
		return ParseCRIFResponse(raw, ctx)
	}
	return failureResult(bureauName, raw, "unsupported bureau name: "+bureauName)
}

// CreateFallbackReport builds a minimal but structurally complete report from
// applicant context alone, for flows where the bureau payload was unusable
// but a score is known from another channel.
func CreateFallbackReport(ctx bureaumodel.ParserContext, bureauName string, score *int) *reportmodel.UnifiedCreditReport {
	report := newEmptyReport(bureauName)
	report.Header.ControlNumber = utils.GenerateControlNumber()
	report.Header.ReportDate = utils.Now().Format(constants.ISODateLayout)
	report.Header.CreditScore = score
	applyContextFallbacks(report, ctx)
	return report
}

// ValidateUnifiedReport checks the invariants every downstream consumer
// relies on. Returns the list of violated field paths, empty when valid.
func ValidateUnifiedReport(report *reportmodel.UnifiedCreditReport) []string {
	var problems []string
	if report == nil {
		return []string{"report is nil"}
	}
	if strings.TrimSpace(report.Header.BureauName) == "" {
		problems = append(problems, "header.bureau_name is empty")
	}
	if strings.TrimSpace(report.Header.ControlNumber) == "" {
		problems = append(problems, "header.control_number is empty")
	}
	if strings.TrimSpace(report.PersonalInformation.FullName) == "" {
		problems = append(problems, "personal_information.full_name is empty")
	}
	return problems
}
