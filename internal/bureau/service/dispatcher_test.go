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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bureaumodel "github.com/creditdesk/bureau-data-service/internal/bureau/model"
	reportmodel "github.com/creditdesk/bureau-data-service/internal/report/model"
)

func TestDetectBureauFormat(t *testing.T) {
	tests := []struct {
		name     string
		fixture  string
		expected bureaumodel.BureauType
	}{
		{name: "cibil", fixture: cibilFixture, expected: bureaumodel.BureauCIBIL},
		{name: "experian", fixture: experianFixture, expected: bureaumodel.BureauExperian},
		{name: "equifax", fixture: equifaxFixture, expected: bureaumodel.BureauEquifax},
		{name: "crif", fixture: crifFixture, expected: bureaumodel.BureauCRIF},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bureau, ok := DetectBureauFormat(decodePayload(t, tc.fixture))
			require.True(t, ok)
			assert.Equal(t, tc.expected, bureau)
		})
	}
}

// Each fixture must trip exactly one detector, otherwise detection order
// would silently decide which transformer runs.
func TestDetectBureauFormatExclusive(t *testing.T) {
	detectors := map[bureaumodel.BureauType]func(interface{}) bool{
		bureaumodel.BureauCIBIL:    IsCIBILResponse,
		bureaumodel.BureauExperian: IsExperianResponse,
		bureaumodel.BureauEquifax:  IsEquifaxResponse,
		bureaumodel.BureauCRIF:     IsCRIFResponse,
	}
	fixtures := map[bureaumodel.BureauType]string{
		bureaumodel.BureauCIBIL:    cibilFixture,
		bureaumodel.BureauExperian: experianFixture,
		bureaumodel.BureauEquifax:  equifaxFixture,
		bureaumodel.BureauCRIF:     crifFixture,
	}

	for owner, fixture := range fixtures {
		payload := decodePayload(t, fixture)
		for bureau, detect := range detectors {
			assert.Equal(t, owner == bureau, detect(payload),
				"detector %s on %s payload", bureau, owner)
		}
	}
}

func TestDetectBureauFormatUnknown(t *testing.T) {
	bureau, ok := DetectBureauFormat(decodePayload(t, `{"foo": "bar"}`))
	assert.False(t, ok)
	assert.Equal(t, bureaumodel.BureauUnknown, bureau)
}

func TestParseBureauResponseWithHint(t *testing.T) {
	result := ParseBureauResponse(decodePayload(t, crifFixture), testContext(), bureaumodel.BureauCRIF)
	require.True(t, result.Success)
	assert.Equal(t, "CRIF High Mark", result.BureauName)
}

func TestParseBureauResponseAutoDetect(t *testing.T) {
	result := ParseBureauResponse(decodePayload(t, experianFixture), testContext(), bureaumodel.BureauUnknown)
	require.True(t, result.Success)
	assert.Equal(t, "Experian", result.BureauName)
}

// A wrong hint still runs the hinted transformer; the caller asked for it.
func TestParseBureauResponseWrongHint(t *testing.T) {
	result := ParseBureauResponse(decodePayload(t, crifFixture), testContext(), bureaumodel.BureauCIBIL)
	assert.False(t, result.Success)
	assert.Equal(t, "CIBIL", result.BureauName)
}

func TestParseBureauResponseUnknownPayload(t *testing.T) {
	raw := decodePayload(t, `{"foo": "bar"}`)
	result := ParseBureauResponse(raw, testContext(), bureaumodel.BureauUnknown)

	assert.False(t, result.Success)
	assert.Nil(t, result.Report)
	assert.Equal(t, "Unknown", result.BureauName)
	assert.NotEmpty(t, result.Error)
	assert.Equal(t, raw, result.RawData)
}

func TestParseByBureauName(t *testing.T) {
	tests := []struct {
		name       string
		bureauName string
		fixture    string
		expected   string
	}{
		{name: "cibil", bureauName: "CIBIL", fixture: cibilFixture, expected: "CIBIL"},
		{name: "transunion synonym", bureauName: "TransUnion CIBIL", fixture: cibilFixture, expected: "CIBIL"},
		{name: "experian", bureauName: "experian", fixture: experianFixture, expected: "Experian"},
		{name: "equifax", bureauName: "Equifax India", fixture: equifaxFixture, expected: "Equifax"},
		{name: "crif", bureauName: "crif", fixture: crifFixture, expected: "CRIF High Mark"},
		{name: "high mark synonym", bureauName: "High Mark", fixture: crifFixture, expected: "CRIF High Mark"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := ParseByBureauName(decodePayload(t, tc.fixture), testContext(), tc.bureauName)
			require.True(t, result.Success)
			assert.Equal(t, tc.expected, result.BureauName)
		})
	}
}

func TestParseByBureauNameUnsupported(t *testing.T) {
	result := ParseByBureauName(decodePayload(t, cibilFixture), testContext(), "Callcredit")
	assert.False(t, result.Success)
	assert.Equal(t, "Callcredit", result.BureauName)
	assert.Contains(t, result.Error, "unsupported bureau name")
}

func TestCreateFallbackReport(t *testing.T) {
	score := 640
	report := CreateFallbackReport(testContext(), "CIBIL", &score)

	assert.Empty(t, ValidateUnifiedReport(report))
	assert.Equal(t, "CIBIL", report.Header.BureauName)
	require.NotNil(t, report.Header.CreditScore)
	assert.Equal(t, 640, *report.Header.CreditScore)
	assert.Equal(t, "RAHUL SHARMA", report.PersonalInformation.FullName)
	assert.NotEmpty(t, report.Header.ControlNumber)
	assert.NotNil(t, report.Accounts)
	assert.Empty(t, report.Accounts)
}

func TestValidateUnifiedReport(t *testing.T) {
	assert.Equal(t, []string{"report is nil"}, ValidateUnifiedReport(nil))

	empty := &reportmodel.UnifiedCreditReport{}
	problems := ValidateUnifiedReport(empty)
	assert.Len(t, problems, 3)
	assert.Contains(t, problems, "header.bureau_name is empty")
	assert.Contains(t, problems, "header.control_number is empty")
	assert.Contains(t, problems, "personal_information.full_name is empty")

	valid := CreateFallbackReport(testContext(), "Equifax", nil)
	assert.Empty(t, ValidateUnifiedReport(valid))
}
