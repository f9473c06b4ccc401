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

package model

// UnifiedCreditReport is the canonical, bureau-agnostic representation of a
// consumer credit report. Every bureau transformer emits this shape and the
// persistence layer round-trips it verbatim, so the JSON field names here are
// the storage wire format.
//
// Consumers must never branch on a missing field: unavailable values are
// emitted as sentinels ("---" for dates, "-" or "0" for amounts,
// "Not Reported" for free text), never omitted.
type UnifiedCreditReport struct {
	Header                ReportHeader        `json:"header" bson:"header"`
	PersonalInformation   PersonalInformation `json:"personal_information" bson:"personal_information"`
	ContactInformation    ContactInformation  `json:"contact_information" bson:"contact_information"`
	EmploymentInformation []EmploymentRecord  `json:"employment_information" bson:"employment_information"`
	Accounts              []Account           `json:"accounts" bson:"accounts"`
	Enquiries             []Enquiry           `json:"enquiries" bson:"enquiries"`
	Summary               ReportSummary       `json:"summary" bson:"summary"`
}

// ReportHeader identifies the report. CreditScore is nil when the bureau
// returned no score, which is distinct from a score of zero.
type ReportHeader struct {
	BureauName    string `json:"bureau_name" bson:"bureau_name"`
	ControlNumber string `json:"control_number" bson:"control_number"`
	ReportDate    string `json:"report_date" bson:"report_date"`
	CreditScore   *int   `json:"credit_score" bson:"credit_score"`
}

type PersonalInformation struct {
	FullName        string           `json:"full_name" bson:"full_name"`
	DateOfBirth     string           `json:"date_of_birth" bson:"date_of_birth"`
	Gender          string           `json:"gender" bson:"gender"`
	Identifications []Identification `json:"identifications" bson:"identifications"`
}

type Identification struct {
	Type       string `json:"type" bson:"type"`
	Number     string `json:"number" bson:"number"`
	IssueDate  string `json:"issue_date,omitempty" bson:"issue_date,omitempty"`
	ExpiryDate string `json:"expiry_date,omitempty" bson:"expiry_date,omitempty"`
}

type ContactInformation struct {
	Addresses    []Address     `json:"addresses" bson:"addresses"`
	PhoneNumbers []PhoneNumber `json:"phone_numbers" bson:"phone_numbers"`
	Emails       []string      `json:"emails" bson:"emails"`
}

type Address struct {
	Address      string `json:"address" bson:"address"`
	Category     string `json:"category" bson:"category"`
	Status       string `json:"status" bson:"status"`
	DateReported string `json:"date_reported" bson:"date_reported"`
}

type PhoneNumber struct {
	Type   string `json:"type" bson:"type"`
	Number string `json:"number" bson:"number"`
}

type EmploymentRecord struct {
	AccountType     string `json:"account_type" bson:"account_type"`
	DateReported    string `json:"date_reported" bson:"date_reported"`
	Occupation      string `json:"occupation" bson:"occupation"`
	Income          string `json:"income" bson:"income"`
	IncomeFrequency string `json:"income_frequency" bson:"income_frequency"`
	IncomeIndicator string `json:"income_indicator" bson:"income_indicator"`
}

// Account is the richest entity of the report. Monetary fields hold display
// strings with "-" meaning "not applicable" ("0" for amount_overdue).
type Account struct {
	LenderName       string               `json:"lender_name" bson:"lender_name"`
	AccountType      string               `json:"account_type" bson:"account_type"`
	AccountNumber    string               `json:"account_number" bson:"account_number"`
	Ownership        string               `json:"ownership" bson:"ownership"`
	CreditLimit      string               `json:"credit_limit" bson:"credit_limit"`
	SanctionedAmount string               `json:"sanctioned_amount" bson:"sanctioned_amount"`
	CurrentBalance   string               `json:"current_balance" bson:"current_balance"`
	CashLimit        string               `json:"cash_limit" bson:"cash_limit"`
	AmountOverdue    string               `json:"amount_overdue" bson:"amount_overdue"`
	InterestRate     string               `json:"interest_rate" bson:"interest_rate"`
	Tenure           string               `json:"tenure" bson:"tenure"`
	EMIAmount        string               `json:"emi_amount" bson:"emi_amount"`
	PaymentFrequency string               `json:"payment_frequency" bson:"payment_frequency"`
	ActualPayment    string               `json:"actual_payment_amount" bson:"actual_payment_amount"`
	Dates            AccountDates         `json:"dates" bson:"dates"`
	PaymentStartDate string               `json:"payment_start_date" bson:"payment_start_date"`
	PaymentEndDate   string               `json:"payment_end_date" bson:"payment_end_date"`
	PaymentHistory   []PaymentHistoryYear `json:"payment_history" bson:"payment_history"`
	Collateral       Collateral           `json:"collateral" bson:"collateral"`
}

// AccountDates holds the account lifecycle dates. Each is independently
// nullable; DateClosed must be nil for open accounts.
type AccountDates struct {
	DateOpened        *string `json:"date_opened" bson:"date_opened"`
	DateClosed        *string `json:"date_closed" bson:"date_closed"`
	DateOfLastPayment *string `json:"date_of_last_payment" bson:"date_of_last_payment"`
	DateReported      *string `json:"date_reported" bson:"date_reported"`
}

// PaymentHistoryYear is one year of the month-keyed payment status grid.
// Each month slot holds a days-past-due number as a string, a three-letter
// asset classification code (STD/SUB/DBT/LSS), or "" when the bureau has no
// data for that month.
type PaymentHistoryYear struct {
	Year string `json:"year" bson:"year"`
	Jan  string `json:"jan" bson:"jan"`
	Feb  string `json:"feb" bson:"feb"`
	Mar  string `json:"mar" bson:"mar"`
	Apr  string `json:"apr" bson:"apr"`
	May  string `json:"may" bson:"may"`
	Jun  string `json:"jun" bson:"jun"`
	Jul  string `json:"jul" bson:"jul"`
	Aug  string `json:"aug" bson:"aug"`
	Sep  string `json:"sep" bson:"sep"`
	Oct  string `json:"oct" bson:"oct"`
	Nov  string `json:"nov" bson:"nov"`
	Dec  string `json:"dec" bson:"dec"`
}

type Collateral struct {
	Value               string `json:"value" bson:"value"`
	Type                string `json:"type" bson:"type"`
	SuitFiled           string `json:"suit_filed" bson:"suit_filed"`
	FacilityStatus      string `json:"facility_status" bson:"facility_status"`
	WrittenOffTotal     string `json:"written_off_total" bson:"written_off_total"`
	WrittenOffPrincipal string `json:"written_off_principal" bson:"written_off_principal"`
	SettlementAmount    string `json:"settlement_amount" bson:"settlement_amount"`
}

type Enquiry struct {
	MemberName  string `json:"member_name" bson:"member_name"`
	EnquiryDate string `json:"enquiry_date" bson:"enquiry_date"`
	Purpose     string `json:"purpose" bson:"purpose"`
}

// ReportSummary aggregates the account list. ActiveAccounts+ClosedAccounts
// always equals TotalAccounts; an account is closed when dates.date_closed is
// non-null.
type ReportSummary struct {
	TotalAccounts         int     `json:"total_accounts" bson:"total_accounts"`
	ActiveAccounts        int     `json:"active_accounts" bson:"active_accounts"`
	ClosedAccounts        int     `json:"closed_accounts" bson:"closed_accounts"`
	TotalOverdueAmount    float64 `json:"total_overdue_amount" bson:"total_overdue_amount"`
	TotalSanctionedAmount float64 `json:"total_sanctioned_amount" bson:"total_sanctioned_amount"`
	TotalCurrentBalance   float64 `json:"total_current_balance" bson:"total_current_balance"`
}
