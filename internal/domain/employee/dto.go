package employee

import (
	"github.com/hydroseal/erp-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	EmployeeCode string                     `json:"employee_code"`
	FullName     string                     `json:"full_name"`
	Phone        *string                    `json:"phone,omitempty"`
	Address      *string                    `json:"address,omitempty"`
	Designation  *string                    `json:"designation,omitempty"`
	JoinDate     string                     `json:"join_date"`
	BasicSalary  decimal.Decimal            `json:"basic_salary"`
	Allowances   map[string]decimal.Decimal `json:"allowances,omitempty"`
	Deductions   map[string]decimal.Decimal `json:"deductions,omitempty"`
	HoldPercent  *decimal.Decimal           `json:"hold_percent,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "is required"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "join_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}
	for name, amount := range r.Allowances {
		if amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "allowances." + name, Message: "must be non-negative"})
		}
	}
	for name, amount := range r.Deductions {
		if amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "deductions." + name, Message: "must be non-negative"})
		}
	}
	if r.HoldPercent != nil && (r.HoldPercent.IsNegative() || r.HoldPercent.GreaterThan(decimal.NewFromInt(100))) {
		errs = append(errs, validator.ValidationError{Field: "hold_percent", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID          string
	FullName    *string                    `json:"full_name,omitempty"`
	Phone       *string                    `json:"phone,omitempty"`
	Address     *string                    `json:"address,omitempty"`
	Designation *string                    `json:"designation,omitempty"`
	Status      *string                    `json:"status,omitempty"`
	BasicSalary *decimal.Decimal           `json:"basic_salary,omitempty"`
	Allowances  map[string]decimal.Decimal `json:"allowances,omitempty"`
	Deductions  map[string]decimal.Decimal `json:"deductions,omitempty"`
	HoldPercent *decimal.Decimal           `json:"hold_percent,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{"active", "resigned", "terminated"}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'active', 'resigned' or 'terminated'"})
	}
	if r.BasicSalary != nil && r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}
	if r.HoldPercent != nil && (r.HoldPercent.IsNegative() || r.HoldPercent.GreaterThan(decimal.NewFromInt(100))) {
		errs = append(errs, validator.ValidationError{Field: "hold_percent", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID           string                     `json:"id"`
	EmployeeCode string                     `json:"employee_code"`
	FullName     string                     `json:"full_name"`
	Phone        *string                    `json:"phone,omitempty"`
	Address      *string                    `json:"address,omitempty"`
	Designation  *string                    `json:"designation,omitempty"`
	JoinDate     string                     `json:"join_date"`
	Status       string                     `json:"status"`
	BasicSalary  decimal.Decimal            `json:"basic_salary"`
	Allowances   map[string]decimal.Decimal `json:"allowances,omitempty"`
	Deductions   map[string]decimal.Decimal `json:"deductions,omitempty"`
	// Category sums, derived server-side.
	TotalAllowances decimal.Decimal            `json:"total_allowances"`
	TotalDeductions decimal.Decimal            `json:"total_deductions"`
	HoldPercent     *decimal.Decimal           `json:"hold_percent,omitempty"`
}

type ListEmployeeFilter struct {
	Status *string
	Search *string
	Page   int
	Limit  int
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}
