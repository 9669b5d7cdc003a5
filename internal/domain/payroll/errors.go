package payroll

import "errors"

var (
	ErrInvalidMonth        = errors.New("month must be in YYYY-MM format")
	ErrInvalidBasicSalary  = errors.New("basic salary must be non-negative")
	ErrAlreadyProcessed    = errors.New("salary already processed for this month")
	ErrSalaryEntryNotFound = errors.New("salary history entry not found")
	ErrEmployeeNotFound    = errors.New("employee not found")
)
