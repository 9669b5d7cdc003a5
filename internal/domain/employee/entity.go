package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	Phone        *string
	Address      *string
	Designation  *string
	JoinDate     time.Time
	Status       Status

	// Compensation snapshot. Allowances and Deductions are named category
	// maps ("housing", "transport", "pf", "insurance", ...) stored as JSONB.
	BasicSalary decimal.Decimal
	Allowances  map[string]decimal.Decimal
	Deductions  map[string]decimal.Decimal
	// HoldPercent is the retention percentage withheld from each net payout.
	// Nil means the company default applies.
	HoldPercent *decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

type Status string

const (
	StatusActive     Status = "active"
	StatusResigned   Status = "resigned"
	StatusTerminated Status = "terminated"
)

// TotalAllowances sums all allowance categories.
func (e *Employee) TotalAllowances() decimal.Decimal {
	total := decimal.Zero
	for _, v := range e.Allowances {
		total = total.Add(v)
	}
	return total
}

// TotalDeductions sums all fixed deduction categories.
func (e *Employee) TotalDeductions() decimal.Decimal {
	total := decimal.Zero
	for _, v := range e.Deductions {
		total = total.Add(v)
	}
	return total
}
