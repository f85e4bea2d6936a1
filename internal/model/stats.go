package model

import "github.com/shopspring/decimal"

// DashboardStats is the server-computed aggregate over the current record
// set. The client only displays it and re-fetches after every mutation,
// it never derives these numbers itself.
type DashboardStats struct {
	TotalEmployees   int             `json:"totalEmployees"`
	PendingApprovals int             `json:"pendingApprovals"`
	TotalSalary      decimal.Decimal `json:"totalSalary"`
	TotalAdvances    decimal.Decimal `json:"totalAdvances"`
}
