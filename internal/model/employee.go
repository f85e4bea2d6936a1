package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a single employee record as served by the collaborator API.
// The server assigns ID on creation; aadhaar and UAN are unique across the
// full record set and immutable once the record exists. "id" is the one
// canonical identifier key; the legacy "_id" key from an earlier API
// revision is not supported.
type Employee struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Age               int    `json:"age"`
	MobileNumber      string `json:"mobile_number"`
	AadhaarNumber     string `json:"aadhaar_number"`
	UANNumber         string `json:"uan_number"`
	BankAccountNumber string `json:"bank_account_number"`
	BankIFSC          string `json:"bank_ifsc"`
	BankName          string `json:"bank_name"`
	// Amounts default to zero when the server omits them.
	SalaryAmount  decimal.Decimal `json:"salary_amount"`
	AdvanceAmount decimal.Decimal `json:"advance_amount"`
	Status        Status          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}
