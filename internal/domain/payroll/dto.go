package payroll

import (
	"github.com/hydroseal/erp-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CommitSalaryRequest struct {
	EmployeeID  string  `json:"-"`
	Month       string  `json:"month"`
	PaymentMode string  `json:"payment_mode"`
	Notes       *string `json:"notes,omitempty"`
}

func (r *CommitSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
	}
	if validator.IsEmpty(r.PaymentMode) {
		errs = append(errs, validator.ValidationError{Field: "payment_mode", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BreakdownResponse struct {
	Month           string          `json:"month"`
	GrossSalary     decimal.Decimal `json:"gross_salary"`
	TotalAllowances decimal.Decimal `json:"total_allowances"`
	FixedDeductions decimal.Decimal `json:"fixed_deductions"`
	LeaveDeductions decimal.Decimal `json:"leave_deductions"`
	HoldPercent     decimal.Decimal `json:"hold_percent"`
	HoldAmount      decimal.Decimal `json:"hold_amount"`
	PayableNet      decimal.Decimal `json:"payable_net"`
}

type SalaryHistoryResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	Month           string          `json:"month"`
	BasicSalary     decimal.Decimal `json:"basic_salary"`
	TotalAllowances decimal.Decimal `json:"total_allowances"`
	FixedDeductions decimal.Decimal `json:"fixed_deductions"`
	LeaveDeductions decimal.Decimal `json:"leave_deductions"`
	HoldPercent     decimal.Decimal `json:"hold_percent"`
	HoldAmount      decimal.Decimal `json:"hold_amount"`
	NetSalary       decimal.Decimal `json:"net_salary"`
	PaidDate        string          `json:"paid_date"`
	PaymentMode     string          `json:"payment_mode"`
	Status          string          `json:"status"`
	Notes           *string         `json:"notes,omitempty"`
}

type CommitSalaryResponse struct {
	Breakdown BreakdownResponse     `json:"breakdown"`
	Entry     SalaryHistoryResponse `json:"entry"`
}

type RetentionEntryResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	Month      string          `json:"month"`
	Amount     decimal.Decimal `json:"amount"`
	CreatedAt  string          `json:"created_at"`
}

type RetentionLedgerResponse struct {
	Entries []RetentionEntryResponse `json:"entries"`
	Balance decimal.Decimal          `json:"balance"`
}
