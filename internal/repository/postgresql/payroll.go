package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hydroseal/erp-backend-go/internal/domain/payroll"
	"github.com/hydroseal/erp-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// ========== SALARY HISTORY ==========

func (r *payrollRepository) CreateHistoryEntry(ctx context.Context, entry payroll.SalaryHistoryEntry) (payroll.SalaryHistoryEntry, error) {
	q := GetQuerier(ctx, r.db)

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	query := `
		INSERT INTO salary_history (
			id, employee_id, month, basic_salary, total_allowances, fixed_deductions,
			leave_deductions, hold_percent, hold_amount, net_salary,
			paid_date, payment_mode, status, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, employee_id, month, basic_salary, total_allowances, fixed_deductions,
			leave_deductions, hold_percent, hold_amount, net_salary,
			paid_date, payment_mode, status, notes, created_at
	`

	var e payroll.SalaryHistoryEntry
	err := q.QueryRow(ctx, query,
		entry.ID, entry.EmployeeID, entry.Month, entry.BasicSalary, entry.TotalAllowances, entry.FixedDeductions,
		entry.LeaveDeductions, entry.HoldPercent, entry.HoldAmount, entry.NetSalary,
		entry.PaidDate, entry.PaymentMode, entry.Status, entry.Notes,
	).Scan(
		&e.ID, &e.EmployeeID, &e.Month, &e.BasicSalary, &e.TotalAllowances, &e.FixedDeductions,
		&e.LeaveDeductions, &e.HoldPercent, &e.HoldAmount, &e.NetSalary,
		&e.PaidDate, &e.PaymentMode, &e.Status, &e.Notes, &e.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_salary_history_employee_month") {
			return payroll.SalaryHistoryEntry{}, payroll.ErrAlreadyProcessed
		}
		return payroll.SalaryHistoryEntry{}, fmt.Errorf("failed to create salary history entry: %w", err)
	}

	return e, nil
}

func (r *payrollRepository) GetHistoryEntryByMonth(ctx context.Context, employeeID, month string) (payroll.SalaryHistoryEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, month, basic_salary, total_allowances, fixed_deductions,
			   leave_deductions, hold_percent, hold_amount, net_salary,
			   paid_date, payment_mode, status, notes, created_at
		FROM salary_history
		WHERE employee_id = $1 AND month = $2
	`

	var e payroll.SalaryHistoryEntry
	err := q.QueryRow(ctx, query, employeeID, month).Scan(
		&e.ID, &e.EmployeeID, &e.Month, &e.BasicSalary, &e.TotalAllowances, &e.FixedDeductions,
		&e.LeaveDeductions, &e.HoldPercent, &e.HoldAmount, &e.NetSalary,
		&e.PaidDate, &e.PaymentMode, &e.Status, &e.Notes, &e.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.SalaryHistoryEntry{}, payroll.ErrSalaryEntryNotFound
		}
		return payroll.SalaryHistoryEntry{}, fmt.Errorf("failed to get salary history entry: %w", err)
	}

	return e, nil
}

func (r *payrollRepository) ListHistory(ctx context.Context, employeeID string) ([]payroll.SalaryHistoryEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, month, basic_salary, total_allowances, fixed_deductions,
			   leave_deductions, hold_percent, hold_amount, net_salary,
			   paid_date, payment_mode, status, notes, created_at
		FROM salary_history
		WHERE employee_id = $1
		ORDER BY month DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary history: %w", err)
	}
	defer rows.Close()

	var entries []payroll.SalaryHistoryEntry
	for rows.Next() {
		var e payroll.SalaryHistoryEntry
		if err := rows.Scan(
			&e.ID, &e.EmployeeID, &e.Month, &e.BasicSalary, &e.TotalAllowances, &e.FixedDeductions,
			&e.LeaveDeductions, &e.HoldPercent, &e.HoldAmount, &e.NetSalary,
			&e.PaidDate, &e.PaymentMode, &e.Status, &e.Notes, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan salary history entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate salary history: %w", err)
	}

	return entries, nil
}

// ========== RETENTION LEDGER ==========

func (r *payrollRepository) AppendRetention(ctx context.Context, entry payroll.RetentionEntry) (payroll.RetentionEntry, error) {
	q := GetQuerier(ctx, r.db)

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	query := `
		INSERT INTO retention_ledger (id, employee_id, month, amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id, employee_id, month, amount, created_at
	`

	var e payroll.RetentionEntry
	err := q.QueryRow(ctx, query, entry.ID, entry.EmployeeID, entry.Month, entry.Amount).Scan(
		&e.ID, &e.EmployeeID, &e.Month, &e.Amount, &e.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_retention_ledger_employee_month") {
			return payroll.RetentionEntry{}, payroll.ErrAlreadyProcessed
		}
		return payroll.RetentionEntry{}, fmt.Errorf("failed to append retention entry: %w", err)
	}

	return e, nil
}

func (r *payrollRepository) ListRetention(ctx context.Context, employeeID string) ([]payroll.RetentionEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, month, amount, created_at
		FROM retention_ledger
		WHERE employee_id = $1
		ORDER BY month ASC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list retention ledger: %w", err)
	}
	defer rows.Close()

	var entries []payroll.RetentionEntry
	for rows.Next() {
		var e payroll.RetentionEntry
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.Month, &e.Amount, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan retention entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate retention ledger: %w", err)
	}

	return entries, nil
}

func (r *payrollRepository) RetainedBalance(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM retention_ledger
		WHERE employee_id = $1
	`

	var balance decimal.Decimal
	if err := q.QueryRow(ctx, query, employeeID).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("failed to derive retained balance: %w", err)
	}

	return balance, nil
}
