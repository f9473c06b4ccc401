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

package integration

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creditdesk/bureau-data-service/internal/report/model"
	"github.com/creditdesk/bureau-data-service/internal/report/store"
	"github.com/creditdesk/bureau-data-service/test/setup"
)

func storedReport(controlNumber string, score *int) model.StoredReport {
	return model.StoredReport{
		ReportID:      uuid.NewString(),
		BureauName:    "CIBIL",
		ControlNumber: controlNumber,
		ReportDate:    "2024-03-15",
		CreditScore:   score,
		Report: &model.UnifiedCreditReport{
			Header: model.ReportHeader{
				BureauName:    "CIBIL",
				ControlNumber: controlNumber,
				ReportDate:    "2024-03-15",
				CreditScore:   score,
			},
			PersonalInformation: model.PersonalInformation{
				FullName:    "RAHUL SHARMA",
				DateOfBirth: "1990-05-12",
				Gender:      "Male",
				Identifications: []model.Identification{
					{Type: "Income Tax ID Number (PAN)", Number: "ABCPS1234F"},
				},
			},
			Accounts: []model.Account{
				{LenderName: "HDFC BANK", AmountOverdue: "0", CurrentBalance: "250000"},
			},
			Summary: model.ReportSummary{TotalAccounts: 1, ActiveAccounts: 1, TotalCurrentBalance: 250000},
		},
	}
}

func TestReportRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	pg, err := setup.SetupTestPostgres(ctx)
	require.NoError(t, err)
	defer pg.Teardown(ctx)

	repo := store.NewReportRepository(pg.DB)
	require.NoError(t, repo.EnsureSchema())
	// EnsureSchema is idempotent.
	require.NoError(t, repo.EnsureSchema())

	score := 742
	stored := storedReport("CN-INT-1", &score)

	t.Run("insert and get round-trip", func(t *testing.T) {
		require.NoError(t, repo.InsertReport(stored))

		got, err := repo.GetReport(stored.ReportID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, stored.ReportID, got.ReportID)
		assert.Equal(t, "CIBIL", got.BureauName)
		assert.Equal(t, "CN-INT-1", got.ControlNumber)
		require.NotNil(t, got.CreditScore)
		assert.Equal(t, 742, *got.CreditScore)

		// The JSONB report round-trips verbatim.
		require.NotNil(t, got.Report)
		assert.Equal(t, "RAHUL SHARMA", got.Report.PersonalInformation.FullName)
		require.Len(t, got.Report.Accounts, 1)
		assert.Equal(t, "HDFC BANK", got.Report.Accounts[0].LenderName)
		assert.Equal(t, 1, got.Report.Summary.TotalAccounts)
	})

	t.Run("duplicate insert is a no-op", func(t *testing.T) {
		require.NoError(t, repo.InsertReport(stored))

		reports, err := repo.GetReportsByControlNumber("CN-INT-1")
		require.NoError(t, err)
		assert.Len(t, reports, 1)
	})

	t.Run("get missing report yields nil", func(t *testing.T) {
		got, err := repo.GetReport(uuid.NewString())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("reports by control number", func(t *testing.T) {
		second := storedReport("CN-INT-1", nil)
		require.NoError(t, repo.InsertReport(second))

		reports, err := repo.GetReportsByControlNumber("CN-INT-1")
		require.NoError(t, err)
		assert.Len(t, reports, 2)
	})

	t.Run("null credit score round-trips", func(t *testing.T) {
		noScore := storedReport("CN-INT-2", nil)
		require.NoError(t, repo.InsertReport(noScore))

		got, err := repo.GetReport(noScore.ReportID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Nil(t, got.CreditScore)
	})

	t.Run("pull audit trail", func(t *testing.T) {
		success := model.ReportPull{
			PullID:      uuid.NewString(),
			ReportID:    stored.ReportID,
			BureauName:  "Experian",
			Outcome:     "success",
			CreditScore: &score,
		}
		failure := model.ReportPull{
			PullID:       uuid.NewString(),
			BureauName:   "Experian",
			Outcome:      "failure",
			ErrorMessage: "payload does not contain an INProfileResponse block",
		}
		require.NoError(t, repo.InsertPull(success))
		require.NoError(t, repo.InsertPull(failure))

		pulls, err := repo.GetPullsByBureau("Experian")
		require.NoError(t, err)
		require.Len(t, pulls, 2)

		outcomes := map[string]model.ReportPull{}
		for _, pull := range pulls {
			outcomes[pull.Outcome] = pull
			assert.False(t, pull.PulledAt.IsZero())
		}
		assert.Equal(t, stored.ReportID, outcomes["success"].ReportID)
		assert.Empty(t, outcomes["failure"].ReportID)
		assert.Contains(t, outcomes["failure"].ErrorMessage, "INProfileResponse")
	})
}
