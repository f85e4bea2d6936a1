package dto

import (
	"github.com/shopspring/decimal"

	"github.com/adrsh79086/adarsh-contractor-frontend/internal/model"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// EmployeeRequest is the payload for both create and update. The same shape
// serves both; on update the server ignores attempts to change aadhaar/UAN
// and the form layer refuses to set them in the first place.
type EmployeeRequest struct {
	Name              string          `json:"name"                validate:"required,min=1"`
	Age               int             `json:"age"                 validate:"required,min=1"`
	MobileNumber      string          `json:"mobile_number"       validate:"required,min=1"`
	AadhaarNumber     string          `json:"aadhaar_number"      validate:"required,min=1"`
	UANNumber         string          `json:"uan_number"          validate:"required,min=1"`
	BankAccountNumber string          `json:"bank_account_number" validate:"omitempty"`
	BankIFSC          string          `json:"bank_ifsc"           validate:"omitempty"`
	BankName          string          `json:"bank_name"           validate:"omitempty"`
	SalaryAmount      decimal.Decimal `json:"salary_amount"       validate:"min=0"`
	AdvanceAmount     decimal.Decimal `json:"advance_amount"      validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type EmployeeListResponse struct {
	Employees []model.Employee `json:"employees"`
}

type EmployeeResponse struct {
	Employee model.Employee `json:"employee"`
}

type StatsResponse struct {
	Stats model.DashboardStats `json:"stats"`
}
