package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum for salary history entries
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// SalaryHistoryEntry is the permanent record of one committed payroll run for
// one employee for one month. Entries are append-only and unique per
// (employee_id, month); values are frozen at commit time and never recomputed
// when attendance or leave records are edited later.
type SalaryHistoryEntry struct {
	ID              string
	EmployeeID      string
	Month           string // "YYYY-MM"
	BasicSalary     decimal.Decimal
	TotalAllowances decimal.Decimal
	FixedDeductions decimal.Decimal
	LeaveDeductions decimal.Decimal
	HoldPercent     decimal.Decimal
	HoldAmount      decimal.Decimal
	NetSalary       decimal.Decimal
	PaidDate        time.Time
	PaymentMode     string
	Status          Status
	Notes           *string
	CreatedAt       time.Time
}

// RetentionEntry is one event in the append-only retention ledger. The
// employee's held balance is always derived as the sum of their entries;
// there is no stored counter that can drift from the ledger.
type RetentionEntry struct {
	ID         string
	EmployeeID string
	Month      string
	Amount     decimal.Decimal
	CreatedAt  time.Time
}
