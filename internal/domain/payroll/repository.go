package payroll

import (
	"context"

	"github.com/shopspring/decimal"
)

// PayrollRepository persists salary history and the retention ledger. Both
// tables carry a unique index on (employee_id, month); CreateHistoryEntry and
// AppendRetention surface ErrAlreadyProcessed when the index is violated so a
// race between two concurrent commits resolves to exactly one success.
type PayrollRepository interface {
	CreateHistoryEntry(ctx context.Context, entry SalaryHistoryEntry) (SalaryHistoryEntry, error)
	GetHistoryEntryByMonth(ctx context.Context, employeeID, month string) (SalaryHistoryEntry, error)
	ListHistory(ctx context.Context, employeeID string) ([]SalaryHistoryEntry, error)

	AppendRetention(ctx context.Context, entry RetentionEntry) (RetentionEntry, error)
	ListRetention(ctx context.Context, employeeID string) ([]RetentionEntry, error)
	// RetainedBalance derives the held balance as SUM(amount) over the ledger.
	RetainedBalance(ctx context.Context, employeeID string) (decimal.Decimal, error)
}
