package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hydroseal/erp-backend-go/internal/domain/employee"
	"github.com/hydroseal/erp-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	allowancesJSON, err := json.Marshal(emp.Allowances)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to marshal allowances: %w", err)
	}
	deductionsJSON, err := json.Marshal(emp.Deductions)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to marshal deductions: %w", err)
	}

	query := `
		INSERT INTO employees (
			employee_code, full_name, phone, address, designation, join_date, status,
			basic_salary, allowances, deductions, hold_percent
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	created := emp
	err = q.QueryRow(ctx, query,
		emp.EmployeeCode, emp.FullName, emp.Phone, emp.Address, emp.Designation,
		emp.JoinDate, emp.Status, emp.BasicSalary, allowancesJSON, deductionsJSON, emp.HoldPercent,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uk_employees_code") {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_code, full_name, phone, address, designation, join_date, status,
			   basic_salary, allowances, deductions, hold_percent,
			   created_at, updated_at, deleted_at
		FROM employees
		WHERE id = $1 AND deleted_at IS NULL
	`

	return r.scanEmployee(q.QueryRow(ctx, query, id))
}

func (r *employeeRepository) List(ctx context.Context, filter employee.ListEmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"deleted_at IS NULL"}
	args := []any{}
	argIdx := 1

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Search != nil {
		conditions = append(conditions, fmt.Sprintf("(full_name ILIKE $%d OR employee_code ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	where := strings.Join(conditions, " AND ")

	countQuery := "SELECT COUNT(*) FROM employees WHERE " + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, employee_code, full_name, phone, address, designation, join_date, status,
			   basic_salary, allowances, deductions, hold_percent,
			   created_at, updated_at, deleted_at
		FROM employees
		WHERE %s
		ORDER BY employee_code ASC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := r.scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, total, nil
}

func (r *employeeRepository) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []any{}
	argIdx := 1

	addSet := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.FullName != nil {
		addSet("full_name", *req.FullName)
	}
	if req.Phone != nil {
		addSet("phone", *req.Phone)
	}
	if req.Address != nil {
		addSet("address", *req.Address)
	}
	if req.Designation != nil {
		addSet("designation", *req.Designation)
	}
	if req.Status != nil {
		addSet("status", *req.Status)
	}
	if req.BasicSalary != nil {
		addSet("basic_salary", *req.BasicSalary)
	}
	if req.Allowances != nil {
		allowancesJSON, err := json.Marshal(req.Allowances)
		if err != nil {
			return fmt.Errorf("failed to marshal allowances: %w", err)
		}
		addSet("allowances", allowancesJSON)
	}
	if req.Deductions != nil {
		deductionsJSON, err := json.Marshal(req.Deductions)
		if err != nil {
			return fmt.Errorf("failed to marshal deductions: %w", err)
		}
		addSet("deductions", deductionsJSON)
	}
	if req.HoldPercent != nil {
		addSet("hold_percent", *req.HoldPercent)
	}

	if len(setClauses) == 0 {
		return nil
	}
	setClauses = append(setClauses, "updated_at = NOW()")

	query := fmt.Sprintf(`
		UPDATE employees SET %s
		WHERE id = $%d AND deleted_at IS NULL
	`, strings.Join(setClauses, ", "), argIdx)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepository) scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	var allowancesJSON, deductionsJSON []byte
	var holdPercent *decimal.Decimal

	err := row.Scan(
		&emp.ID, &emp.EmployeeCode, &emp.FullName, &emp.Phone, &emp.Address, &emp.Designation,
		&emp.JoinDate, &emp.Status, &emp.BasicSalary, &allowancesJSON, &deductionsJSON,
		&holdPercent, &emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to scan employee: %w", err)
	}

	if len(allowancesJSON) > 0 {
		if err := json.Unmarshal(allowancesJSON, &emp.Allowances); err != nil {
			return employee.Employee{}, fmt.Errorf("failed to unmarshal allowances: %w", err)
		}
	}
	if len(deductionsJSON) > 0 {
		if err := json.Unmarshal(deductionsJSON, &emp.Deductions); err != nil {
			return employee.Employee{}, fmt.Errorf("failed to unmarshal deductions: %w", err)
		}
	}
	emp.HoldPercent = holdPercent

	return emp, nil
}
