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
	"github.com/creditdesk/bureau-data-service/internal/system/constants"
)

func testReport(bureauName, controlNumber, reportDate, fullName string, accounts ...reportmodel.Account) *reportmodel.UnifiedCreditReport {
	return &reportmodel.UnifiedCreditReport{
		Header: reportmodel.ReportHeader{
			BureauName:    bureauName,
			ControlNumber: controlNumber,
			ReportDate:    reportDate,
		},
		PersonalInformation: reportmodel.PersonalInformation{
			FullName:        fullName,
			DateOfBirth:     constants.SentinelDate,
			Gender:          constants.NotReported,
			Identifications: []reportmodel.Identification{},
		},
		ContactInformation: reportmodel.ContactInformation{
			Addresses:    []reportmodel.Address{},
			PhoneNumbers: []reportmodel.PhoneNumber{},
			Emails:       []string{},
		},
		EmploymentInformation: []reportmodel.EmploymentRecord{},
		Accounts:              accounts,
		Enquiries:             []reportmodel.Enquiry{},
	}
}

func testAccount(lender, sanctioned, balance, overdue string, closed *string) reportmodel.Account {
	return reportmodel.Account{
		LenderName:       lender,
		AccountType:      "Personal Loan",
		AccountNumber:    "XXXX0000",
		Ownership:        "Individual",
		CreditLimit:      constants.SentinelAmount,
		SanctionedAmount: sanctioned,
		CurrentBalance:   balance,
		AmountOverdue:    overdue,
		Dates:            reportmodel.AccountDates{DateClosed: closed},
	}
}

func TestMergeMultipleBureauReports(t *testing.T) {
	closedDate := "2023-12-20"
	cibil := testReport("CIBIL", "CN-CIBIL", "2024-03-10", "RAHUL SHARMA",
		testAccount("HDFC BANK", "500000", "250000", "0", nil),
		testAccount("ICICI BANK", "-", "40000", "12000", &closedDate),
	)
	equifax := testReport("Equifax", "CN-EQ", "2024-03-15", "RAHUL SHARMA",
		testAccount("SBI", "200000", "100000", "0", nil),
	)

	set := MergeMultipleBureauReports(map[bureaumodel.BureauType]*reportmodel.UnifiedCreditReport{
		bureaumodel.BureauCIBIL:   cibil,
		bureaumodel.BureauEquifax: equifax,
	})

	require.NotNil(t, set.Merged)
	merged := set.Merged
	assert.Equal(t, MergedBureauName, merged.Header.BureauName)
	assert.NotEmpty(t, merged.Header.ControlNumber)
	assert.Equal(t, "2024-03-15", merged.Header.ReportDate)

	// Accounts concatenate in bureau order, never de-duplicated.
	require.Len(t, merged.Accounts, 3)
	assert.Equal(t, "HDFC BANK", merged.Accounts[0].LenderName)
	assert.Equal(t, "ICICI BANK", merged.Accounts[1].LenderName)
	assert.Equal(t, "SBI", merged.Accounts[2].LenderName)

	assert.Equal(t, 3, merged.Summary.TotalAccounts)
	assert.Equal(t, 2, merged.Summary.ActiveAccounts)
	assert.Equal(t, 1, merged.Summary.ClosedAccounts)
	assert.Equal(t, float64(12000), merged.Summary.TotalOverdueAmount)
	assert.Equal(t, float64(700000), merged.Summary.TotalSanctionedAmount)
	assert.Equal(t, float64(390000), merged.Summary.TotalCurrentBalance)

	// Individual carries the untouched inputs, nothing else.
	require.Len(t, set.Individual, 2)
	assert.Same(t, cibil, set.Individual[bureaumodel.BureauCIBIL])
	assert.Same(t, equifax, set.Individual[bureaumodel.BureauEquifax])
}

func TestMergeFirstBureauWithPersonalInfoWins(t *testing.T) {
	cibil := testReport("CIBIL", "CN-1", "2024-01-01", constants.NotReported)
	experian := testReport("Experian", "CN-2", "2024-01-02", "RAHUL SHARMA")
	crif := testReport("CRIF High Mark", "CN-3", "2024-01-03", "R SHARMA")

	set := MergeMultipleBureauReports(map[bureaumodel.BureauType]*reportmodel.UnifiedCreditReport{
		bureaumodel.BureauCIBIL:    cibil,
		bureaumodel.BureauExperian: experian,
		bureaumodel.BureauCRIF:     crif,
	})

	// CIBIL only has sentinels, so Experian is the first bureau that actually
	// reported personal data.
	assert.Equal(t, "RAHUL SHARMA", set.Merged.PersonalInformation.FullName)
}

func TestMergeSkipsNilAndMissingBureaus(t *testing.T) {
	experian := testReport("Experian", "CN-1", "2024-01-02", "RAHUL SHARMA",
		testAccount("SBI", "200000", "100000", "0", nil),
	)

	set := MergeMultipleBureauReports(map[bureaumodel.BureauType]*reportmodel.UnifiedCreditReport{
		bureaumodel.BureauCIBIL:    nil,
		bureaumodel.BureauExperian: experian,
	})

	require.Len(t, set.Individual, 1)
	assert.Same(t, experian, set.Individual[bureaumodel.BureauExperian])
	assert.Len(t, set.Merged.Accounts, 1)
}

func TestMergeEmptyInput(t *testing.T) {
	set := MergeMultipleBureauReports(map[bureaumodel.BureauType]*reportmodel.UnifiedCreditReport{})

	require.NotNil(t, set.Merged)
	assert.Equal(t, MergedBureauName, set.Merged.Header.BureauName)
	assert.Equal(t, constants.SentinelDate, set.Merged.Header.ReportDate)
	assert.Equal(t, constants.NotReported, set.Merged.PersonalInformation.FullName)
	assert.Empty(t, set.Merged.Accounts)
	assert.NotNil(t, set.Merged.Accounts)
	assert.Equal(t, 0, set.Merged.Summary.TotalAccounts)
	assert.Empty(t, set.Individual)
}

func TestMergeIgnoresSentinelReportDates(t *testing.T) {
	cibil := testReport("CIBIL", "CN-1", constants.SentinelDate, "RAHUL SHARMA")
	crif := testReport("CRIF High Mark", "CN-2", "2023-11-30", "RAHUL SHARMA")

	set := MergeMultipleBureauReports(map[bureaumodel.BureauType]*reportmodel.UnifiedCreditReport{
		bureaumodel.BureauCIBIL: cibil,
		bureaumodel.BureauCRIF:  crif,
	})

	assert.Equal(t, "2023-11-30", set.Merged.Header.ReportDate)
}
