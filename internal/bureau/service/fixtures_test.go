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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	bureaumodel "github.com/creditdesk/bureau-data-service/internal/bureau/model"
)

// decodePayload round-trips a fixture through encoding/json so the
// transformers see exactly what a decoded vendor response body looks like.
func decodePayload(t *testing.T, fixture string) interface{} {
	t.Helper()
	var raw interface{}
	require.NoError(t, json.Unmarshal([]byte(fixture), &raw))
	return raw
}

func testContext() bureaumodel.ParserContext {
	return bureaumodel.ParserContext{
		FullName:     "Rahul Sharma",
		PANNumber:    "ABCPS1234F",
		MobileNumber: "9876543210",
		DateOfBirth:  "1990-05-12",
		Gender:       "Male",
	}
}

const cibilFixture = `{
	"CreditReport": {
		"Header": {
			"EnquiryControlNumber": "EC-001122334455",
			"DateProcessed": "15032024"
		},
		"ScoreSegment": {"Score": "742"},
		"NameSegment": {
			"ConsumerName1": "Rahul",
			"ConsumerName2": "Sharma",
			"DateOfBirth": "12051990",
			"Gender": "2"
		},
		"IDSegment": [
			{"IDType": "01", "IDNumber": "ABCPS1234F"},
			{"IDType": "03", "IDNumber": "XYZ1234567"}
		],
		"TelephoneSegment": [
			{"TelephoneType": "01", "TelephoneNumber": "9876543210"}
		],
		"EmailContactSegment": [{"EmailID": "rahul@example.in"}],
		"Address": [
			{
				"AddressLine1": "12 MG Road",
				"AddressLine2": "Indiranagar",
				"StateCode": "KA",
				"PinCode": "560038",
				"AddressCategory": "02",
				"ResidenceCode": "01",
				"DateReported": "01012024"
			}
		],
		"Account": [
			{
				"ReportingMemberShortName": "HDFC BANK",
				"AccountType": "05",
				"AccountNumber": "XXXX1234",
				"OwnershipIndicator": "1",
				"HighCreditSanctionedAmount": "500000",
				"CurrentBalance": "2,50,000",
				"AmountOverdue": "0",
				"EmiAmount": "11500",
				"DateOpened": "15062021",
				"DateReported": "01032024",
				"PaymentHistory1": "000000000000",
				"CreditFacilityStatus": "Standard"
			},
			{
				"ReportingMemberShortName": "ICICI BANK",
				"AccountType": "10",
				"AccountNumber": "XXXX9876",
				"OwnershipIndicator": "1",
				"CreditLimit": "150000",
				"CurrentBalance": "40000",
				"AmountOverdue": "12000",
				"DateOpened": "10012019",
				"DateClosed": "20122023",
				"DateReported": "01032024"
			}
		],
		"Enquiry": [
			{
				"EnquiringMemberShortName": "AXIS BANK",
				"DateOfEnquiry": "10022024",
				"EnquiryPurpose": "Personal Loan"
			}
		]
	}
}`

const experianFixture = `{
	"INProfileResponse": {
		"Header": {"ReportNumber": "EXP-556677", "ReportDate": "20240315"},
		"SCORE": {"BureauScore": "715"},
		"Current_Application": {
			"Current_Application_Details": {
				"Current_Applicant_Details": {
					"First_Name": "Rahul",
					"Last_Name": "Sharma",
					"Date_Of_Birth_Applicant": "19900512",
					"Gender_Code": "1",
					"IncomeTaxPan": "ABCPS1234F",
					"MobilePhoneNumber": "9876543210",
					"EMailId": "rahul@example.in",
					"Gross_Monthly_Income": "85000"
				},
				"Current_Applicant_Address_Details": {
					"FlatNoPlotNoHouseNo": "12",
					"BldgNoSocietyName": "Green Apartments",
					"City": "Bengaluru",
					"State": "KA",
					"PINCode": "560038"
				}
			}
		},
		"CAIS_Account": {
			"CAIS_Summary": {
				"Credit_Account": {
					"CreditAccountTotal": "2",
					"CreditAccountActive": "1",
					"CreditAccountClosed": "1"
				},
				"Total_Outstanding_Balance": {"Outstanding_Balance_All": "290000"}
			},
			"CAIS_Account_DETAILS": [
				{
					"Subscriber_Name": "HDFC BANK",
					"Account_Type": "05",
					"Account_Number": "XXXX1234",
					"AccountHoldertypeCode": "1",
					"Highest_Credit_or_Original_Loan_Amount": "500000",
					"Current_Balance": "250000",
					"Amount_Past_Due": "0",
					"Open_Date": "20210615",
					"Date_Reported": "20240301"
				},
				{
					"Subscriber_Name": "ICICI BANK",
					"Account_Type": "10",
					"Account_Number": "XXXX9876",
					"AccountHoldertypeCode": "1",
					"Credit_Limit_Amount": "150000",
					"Current_Balance": "40000",
					"Amount_Past_Due": "12000",
					"Open_Date": "20190110",
					"Date_Closed": "20231220",
					"Date_Reported": "20240301"
				}
			]
		},
		"CAPS": {
			"CAPS_Application_Details": [
				{
					"Subscriber_Name": "AXIS BANK",
					"Date_of_Request": "20240210",
					"Enquiry_Reason": "Personal Loan"
				}
			]
		}
	}
}`

const equifaxFixture = `{
	"CCRResponse": {
		"CIRReportDataLst": [
			{
				"InquiryResponseHeader": {"ReportOrderNO": "EQ-889900", "Date": "2024-03-15"},
				"CIRReportData": {
					"ScoreDetails": [{"Name": "ERS", "Value": "728"}],
					"IDAndContactInfo": {
						"PersonalInfo": {
							"Name": {"FullName": "Rahul Sharma"},
							"DateOfBirth": "1990-05-12",
							"Gender": "Male"
						},
						"IdentityInfo": {
							"PANId": [{"IdNumber": "ABCPS1234F"}]
						},
						"AddressInfo": [
							{
								"Address": "12 MG Road Indiranagar",
								"State": "KA",
								"Postal": "560038",
								"Type": "Home",
								"ReportedDate": "2024-01-01"
							}
						],
						"PhoneInfo": [{"typeCode": "Mobile", "Number": "9876543210"}],
						"EmailAddressInfo": [{"EmailAddress": "rahul@example.in"}]
					},
					"RetailAccountsSummary": {
						"NoOfAccounts": "2",
						"NoOfActiveAccounts": "1",
						"TotalBalanceAmount": "290000",
						"TotalPastDue": "12000",
						"TotalSanctionAmount": "650000"
					},
					"RetailAccountDetails": [
						{
							"Institution": "HDFC BANK",
							"AccountType": "Personal Loan",
							"AccountNumber": "XXXX1234",
							"OwnershipType": "Individual",
							"SanctionAmount": "500000",
							"Balance": "250000",
							"PastDueAmount": "0",
							"DateOpened": "2021-06-15",
							"DateReported": "2024-03-01",
							"AccountStatus": "Active"
						},
						{
							"Institution": "ICICI BANK",
							"AccountType": "Credit Card",
							"AccountNumber": "XXXX9876",
							"OwnershipType": "Individual",
							"CreditLimit": "150000",
							"Balance": "40000",
							"PastDueAmount": "12000",
							"DateOpened": "2019-01-10",
							"DateClosed": "2023-12-20",
							"DateReported": "2024-03-01",
							"AccountStatus": "Closed"
						}
					],
					"Enquiries": [
						{
							"Institution": "AXIS BANK",
							"Date": "2024-02-10",
							"RequestPurpose": "Personal Loan"
						}
					]
				}
			}
		]
	}
}`

const crifFixture = `{
	"HM-REPORT": {
		"HEADER": {"REPORT-ID": "HM-334455", "DATE-OF-ISSUE": "15-03-2024"},
		"SCORE": {"VALUE": "705"},
		"PERSONAL-INFO": {
			"FULL-NAME": "Rahul Sharma",
			"DOB": "12-05-1990",
			"GENDER": "Male",
			"IDS": [{"TYPE": "PAN", "VALUE": "ABCPS1234F"}],
			"ADDRESSES": [
				{
					"ADDRESS": "12 MG Road Indiranagar",
					"STATE": "KA",
					"PIN": "560038",
					"TYPE": "Permanent",
					"REPORTED-DT": "01-01-2024"
				}
			],
			"PHONES": [{"TYPE": "Mobile", "NUMBER": "9876543210"}],
			"EMAILS": ["rahul@example.in"]
		},
		"ACCOUNTS": [
			{
				"CREDIT-GUARANTOR": "HDFC BANK",
				"ACCT-TYPE": "PL",
				"ACCT-NUMBER": "XXXX1234",
				"OWNERSHIP-IND": "Individual",
				"DISBURSED-AMT": "500000",
				"CURRENT-BAL": "250000",
				"OVERDUE-AMT": "0",
				"DISBURSED-DT": "15-06-2021",
				"REPORTED-DT": "01-03-2024",
				"ACCOUNT-STATUS": "Active"
			},
			{
				"CREDIT-GUARANTOR": "ICICI BANK",
				"ACCT-TYPE": "CC",
				"ACCT-NUMBER": "XXXX9876",
				"OWNERSHIP-IND": "Individual",
				"CREDIT-LIMIT": "150000",
				"CURRENT-BAL": "40000",
				"OVERDUE-AMT": "12000",
				"DISBURSED-DT": "10-01-2019",
				"CLOSED-DT": "20-12-2023",
				"REPORTED-DT": "01-03-2024",
				"ACCOUNT-STATUS": "Closed"
			}
		],
		"ENQUIRIES": [
			{
				"MEMBER-NAME": "AXIS BANK",
				"ENQUIRY-DT": "10-02-2024",
				"PURPOSE": "Personal Loan"
			}
		],
		"SUMMARY": {
			"TOTAL-ACCOUNTS": "2",
			"ACTIVE-ACCOUNTS": "1",
			"CLOSED-ACCOUNTS": "1",
			"TOTAL-OVERDUE-AMT": "12000",
			"TOTAL-SANCTIONED-AMT": "650000",
			"TOTAL-CURRENT-BAL": "290000"
		}
	}
}`
