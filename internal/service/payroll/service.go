package payroll

import (
	"context"
	"errors"
	"time"

	"github.com/hydroseal/erp-backend-go/internal/domain/attendance"
	"github.com/hydroseal/erp-backend-go/internal/domain/employee"
	"github.com/hydroseal/erp-backend-go/internal/domain/leave"
	"github.com/hydroseal/erp-backend-go/internal/domain/payroll"
	"github.com/hydroseal/erp-backend-go/internal/pkg/database"
	"github.com/hydroseal/erp-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	db             *database.DB
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
	withTx         func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:             db,
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		withTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// calculate loads the employee aggregate for the month and runs the
// calculation. Preview and Commit both go through it, so a committed entry
// always matches what the preview showed for the same data.
func (s *PayrollServiceImpl) calculate(ctx context.Context, employeeID, month string) (employee.Employee, payroll.Breakdown, error) {
	monthStart, monthEnd, err := payroll.MonthWindow(month)
	if err != nil {
		return employee.Employee{}, payroll.Breakdown{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, payroll.Breakdown{}, payroll.ErrEmployeeNotFound
		}
		return employee.Employee{}, payroll.Breakdown{}, err
	}

	records, err := s.attendanceRepo.GetByEmployeeAndRange(ctx, employeeID, monthStart, monthEnd)
	if err != nil {
		return employee.Employee{}, payroll.Breakdown{}, err
	}
	leaves, err := s.leaveRepo.GetApprovedOverlapping(ctx, employeeID, monthStart, monthEnd)
	if err != nil {
		return employee.Employee{}, payroll.Breakdown{}, err
	}

	breakdown, err := payroll.Compute(payroll.CalculationInput{
		BasicSalary: emp.BasicSalary,
		Allowances:  emp.Allowances,
		Deductions:  emp.Deductions,
		HoldPercent: emp.HoldPercent,
		Attendance:  records,
		Leaves:      leaves,
	}, month)
	if err != nil {
		return employee.Employee{}, payroll.Breakdown{}, err
	}

	return emp, breakdown, nil
}

func (s *PayrollServiceImpl) Preview(ctx context.Context, employeeID, month string) (payroll.BreakdownResponse, error) {
	_, breakdown, err := s.calculate(ctx, employeeID, month)
	if err != nil {
		return payroll.BreakdownResponse{}, err
	}
	return toBreakdownResponse(breakdown), nil
}

func (s *PayrollServiceImpl) Commit(ctx context.Context, req payroll.CommitSalaryRequest) (payroll.CommitSalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.CommitSalaryResponse{}, err
	}

	var resp payroll.CommitSalaryResponse
	err := s.withTx(ctx, func(txCtx context.Context) error {
		// Existence check inside the transaction; the unique index on
		// (employee_id, month) backstops concurrent commits.
		_, err := s.payrollRepo.GetHistoryEntryByMonth(txCtx, req.EmployeeID, req.Month)
		if err == nil {
			return payroll.ErrAlreadyProcessed
		}
		if !errors.Is(err, payroll.ErrSalaryEntryNotFound) {
			return err
		}

		emp, breakdown, err := s.calculate(txCtx, req.EmployeeID, req.Month)
		if err != nil {
			return err
		}

		entry, err := s.payrollRepo.CreateHistoryEntry(txCtx, payroll.SalaryHistoryEntry{
			EmployeeID:      req.EmployeeID,
			Month:           req.Month,
			BasicSalary:     emp.BasicSalary,
			TotalAllowances: breakdown.TotalAllowances,
			FixedDeductions: breakdown.FixedDeductions,
			LeaveDeductions: breakdown.LeaveDeductions,
			HoldPercent:     breakdown.HoldPercent,
			HoldAmount:      breakdown.HoldAmount,
			NetSalary:       breakdown.PayableNet,
			PaidDate:        time.Now(),
			PaymentMode:     req.PaymentMode,
			Status:          payroll.StatusPaid,
			Notes:           req.Notes,
		})
		if err != nil {
			return err
		}

		// Every commit appends to the ledger, zero amounts included, so
		// the ledger is a complete month-by-month record.
		if _, err := s.payrollRepo.AppendRetention(txCtx, payroll.RetentionEntry{
			EmployeeID: req.EmployeeID,
			Month:      req.Month,
			Amount:     breakdown.HoldAmount,
		}); err != nil {
			return err
		}

		resp = payroll.CommitSalaryResponse{
			Breakdown: toBreakdownResponse(breakdown),
			Entry:     toHistoryResponse(entry),
		}
		return nil
	})
	if err != nil {
		return payroll.CommitSalaryResponse{}, err
	}

	return resp, nil
}

func (s *PayrollServiceImpl) History(ctx context.Context, employeeID string) ([]payroll.SalaryHistoryResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, payroll.ErrEmployeeNotFound
		}
		return nil, err
	}

	entries, err := s.payrollRepo.ListHistory(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.SalaryHistoryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, toHistoryResponse(e))
	}
	return responses, nil
}

func (s *PayrollServiceImpl) RetentionLedger(ctx context.Context, employeeID string) (payroll.RetentionLedgerResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return payroll.RetentionLedgerResponse{}, payroll.ErrEmployeeNotFound
		}
		return payroll.RetentionLedgerResponse{}, err
	}

	entries, err := s.payrollRepo.ListRetention(ctx, employeeID)
	if err != nil {
		return payroll.RetentionLedgerResponse{}, err
	}
	balance, err := s.payrollRepo.RetainedBalance(ctx, employeeID)
	if err != nil {
		return payroll.RetentionLedgerResponse{}, err
	}

	resp := payroll.RetentionLedgerResponse{
		Entries: make([]payroll.RetentionEntryResponse, 0, len(entries)),
		Balance: balance,
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, payroll.RetentionEntryResponse{
			ID:         e.ID,
			EmployeeID: e.EmployeeID,
			Month:      e.Month,
			Amount:     e.Amount,
			CreatedAt:  e.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp, nil
}

func toBreakdownResponse(b payroll.Breakdown) payroll.BreakdownResponse {
	return payroll.BreakdownResponse{
		Month:           b.Month,
		GrossSalary:     b.GrossSalary,
		TotalAllowances: b.TotalAllowances,
		FixedDeductions: b.FixedDeductions,
		LeaveDeductions: b.LeaveDeductions,
		HoldPercent:     b.HoldPercent,
		HoldAmount:      b.HoldAmount,
		PayableNet:      b.PayableNet,
	}
}

func toHistoryResponse(e payroll.SalaryHistoryEntry) payroll.SalaryHistoryResponse {
	return payroll.SalaryHistoryResponse{
		ID:              e.ID,
		EmployeeID:      e.EmployeeID,
		Month:           e.Month,
		BasicSalary:     e.BasicSalary,
		TotalAllowances: e.TotalAllowances,
		FixedDeductions: e.FixedDeductions,
		LeaveDeductions: e.LeaveDeductions,
		HoldPercent:     e.HoldPercent,
		HoldAmount:      e.HoldAmount,
		NetSalary:       e.NetSalary,
		PaidDate:        e.PaidDate.Format("2006-01-02"),
		PaymentMode:     e.PaymentMode,
		Status:          string(e.Status),
		Notes:           e.Notes,
	}
}
