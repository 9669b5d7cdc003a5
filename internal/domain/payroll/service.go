package payroll

import "context"

type PayrollService interface {
	// Preview runs the calculation without persisting anything.
	Preview(ctx context.Context, employeeID, month string) (BreakdownResponse, error)
	// Commit runs the same calculation and freezes the result into the
	// salary history plus the retention ledger, atomically.
	Commit(ctx context.Context, req CommitSalaryRequest) (CommitSalaryResponse, error)
	History(ctx context.Context, employeeID string) ([]SalaryHistoryResponse, error)
	RetentionLedger(ctx context.Context, employeeID string) (RetentionLedgerResponse, error)
}
