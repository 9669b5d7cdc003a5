package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hydroseal/erp-backend-go/internal/domain/attendance"
	"github.com/hydroseal/erp-backend-go/internal/domain/employee"
	"github.com/hydroseal/erp-backend-go/internal/domain/leave"
	"github.com/hydroseal/erp-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePayrollRepo struct {
	histories map[string]payroll.SalaryHistoryEntry
	retention []payroll.RetentionEntry
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{histories: make(map[string]payroll.SalaryHistoryEntry)}
}

func (f *fakePayrollRepo) CreateHistoryEntry(_ context.Context, entry payroll.SalaryHistoryEntry) (payroll.SalaryHistoryEntry, error) {
	key := entry.EmployeeID + "|" + entry.Month
	if _, exists := f.histories[key]; exists {
		return payroll.SalaryHistoryEntry{}, payroll.ErrAlreadyProcessed
	}
	entry.ID = uuid.NewString()
	entry.CreatedAt = time.Now()
	f.histories[key] = entry
	return entry, nil
}

func (f *fakePayrollRepo) GetHistoryEntryByMonth(_ context.Context, employeeID, month string) (payroll.SalaryHistoryEntry, error) {
	entry, ok := f.histories[employeeID+"|"+month]
	if !ok {
		return payroll.SalaryHistoryEntry{}, payroll.ErrSalaryEntryNotFound
	}
	return entry, nil
}

func (f *fakePayrollRepo) ListHistory(_ context.Context, employeeID string) ([]payroll.SalaryHistoryEntry, error) {
	var entries []payroll.SalaryHistoryEntry
	for _, e := range f.histories {
		if e.EmployeeID == employeeID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (f *fakePayrollRepo) AppendRetention(_ context.Context, entry payroll.RetentionEntry) (payroll.RetentionEntry, error) {
	for _, e := range f.retention {
		if e.EmployeeID == entry.EmployeeID && e.Month == entry.Month {
			return payroll.RetentionEntry{}, payroll.ErrAlreadyProcessed
		}
	}
	entry.ID = uuid.NewString()
	entry.CreatedAt = time.Now()
	f.retention = append(f.retention, entry)
	return entry, nil
}

func (f *fakePayrollRepo) ListRetention(_ context.Context, employeeID string) ([]payroll.RetentionEntry, error) {
	var entries []payroll.RetentionEntry
	for _, e := range f.retention {
		if e.EmployeeID == employeeID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (f *fakePayrollRepo) RetainedBalance(_ context.Context, employeeID string) (decimal.Decimal, error) {
	balance := decimal.Zero
	for _, e := range f.retention {
		if e.EmployeeID == employeeID {
			balance = balance.Add(e.Amount)
		}
	}
	return balance, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ employee.ListEmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, _ employee.UpdateEmployeeRequest) error { return nil }
func (f *fakeEmployeeRepo) Delete(_ context.Context, _ string) error                         { return nil }

type fakeAttendanceRepo struct {
	records []attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(_ context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	f.records = append(f.records, record)
	return record, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndRange(_ context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, r := range f.records {
		if r.EmployeeID == employeeID && !r.Date.Before(from) && !r.Date.After(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) Delete(_ context.Context, _ string) error { return nil }

type fakeLeaveRepo struct {
	leaves []leave.LeaveRequest
}

func (f *fakeLeaveRepo) Create(_ context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.leaves = append(f.leaves, req)
	return req, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, _ string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepo) GetByEmployee(_ context.Context, _ string) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) GetApprovedOverlapping(_ context.Context, employeeID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, l := range f.leaves {
		if l.EmployeeID == employeeID && l.Status == leave.StatusApproved &&
			!l.StartDate.After(to) && !l.EndDate.Before(from) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) Decide(_ context.Context, _ leave.DecideLeaveRequest) error { return nil }

type fixture struct {
	svc            *PayrollServiceImpl
	payrollRepo    *fakePayrollRepo
	attendanceRepo *fakeAttendanceRepo
	leaveRepo      *fakeLeaveRepo
	employeeID     string
}

func newFixture() *fixture {
	employeeID := uuid.NewString()
	payrollRepo := newFakePayrollRepo()
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		employeeID: {
			ID:           employeeID,
			EmployeeCode: "EMP-001",
			FullName:     "Ravi Kumar",
			Status:       employee.StatusActive,
			BasicSalary:  decimal.NewFromInt(20000),
			Allowances:   map[string]decimal.Decimal{"site": decimal.NewFromInt(2000)},
			Deductions:   map[string]decimal.Decimal{"pf": decimal.NewFromInt(500)},
		},
	}}
	attendanceRepo := &fakeAttendanceRepo{}
	leaveRepo := &fakeLeaveRepo{}

	svc := &PayrollServiceImpl{
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		withTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}

	return &fixture{
		svc:            svc,
		payrollRepo:    payrollRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		employeeID:     employeeID,
	}
}

func TestCommit_PersistsHistoryAndRetention(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	resp, err := f.svc.Commit(ctx, payroll.CommitSalaryRequest{
		EmployeeID:  f.employeeID,
		Month:       "2024-03",
		PaymentMode: "bank_transfer",
	})
	require.NoError(t, err)

	assert.Equal(t, "1075", resp.Entry.HoldAmount.String())
	assert.Equal(t, "20425", resp.Entry.NetSalary.String())
	assert.Equal(t, "paid", resp.Entry.Status)

	ledger, err := f.svc.RetentionLedger(ctx, f.employeeID)
	require.NoError(t, err)
	require.Len(t, ledger.Entries, 1)
	assert.Equal(t, "2024-03", ledger.Entries[0].Month)
	assert.Equal(t, "1075", ledger.Balance.String())
}

func TestCommit_SecondCommitForSameMonthRejected(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	req := payroll.CommitSalaryRequest{
		EmployeeID:  f.employeeID,
		Month:       "2024-03",
		PaymentMode: "cash",
	}

	_, err := f.svc.Commit(ctx, req)
	require.NoError(t, err)

	_, err = f.svc.Commit(ctx, req)
	assert.ErrorIs(t, err, payroll.ErrAlreadyProcessed)

	history, err := f.svc.History(ctx, f.employeeID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
	assert.Len(t, f.payrollRepo.retention, 1)
}

func TestCommit_DifferentMonthsAccumulateRetention(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	for _, month := range []string{"2024-03", "2024-04"} {
		_, err := f.svc.Commit(ctx, payroll.CommitSalaryRequest{
			EmployeeID:  f.employeeID,
			Month:       month,
			PaymentMode: "bank_transfer",
		})
		require.NoError(t, err)
	}

	ledger, err := f.svc.RetentionLedger(ctx, f.employeeID)
	require.NoError(t, err)
	assert.Len(t, ledger.Entries, 2)
	assert.Equal(t, "2150", ledger.Balance.String())
}

func TestCommit_UnknownEmployee(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Commit(context.Background(), payroll.CommitSalaryRequest{
		EmployeeID:  uuid.NewString(),
		Month:       "2024-03",
		PaymentMode: "cash",
	})
	assert.ErrorIs(t, err, payroll.ErrEmployeeNotFound)
}

func TestCommit_InvalidMonthRejected(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Commit(context.Background(), payroll.CommitSalaryRequest{
		EmployeeID:  f.employeeID,
		Month:       "03-2024",
		PaymentMode: "cash",
	})
	assert.Error(t, err)
	assert.Empty(t, f.payrollRepo.histories)
}

func TestPreview_DoesNotPersist(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	preview, err := f.svc.Preview(ctx, f.employeeID, "2024-03")
	require.NoError(t, err)
	assert.Equal(t, "20425", preview.PayableNet.String())

	assert.Empty(t, f.payrollRepo.histories)
	assert.Empty(t, f.payrollRepo.retention)
}

func TestCommit_FreezesValuesAgainstLaterEdits(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	resp, err := f.svc.Commit(ctx, payroll.CommitSalaryRequest{
		EmployeeID:  f.employeeID,
		Month:       "2024-03",
		PaymentMode: "bank_transfer",
	})
	require.NoError(t, err)

	// Attendance recorded after the commit must not rewrite history.
	f.attendanceRepo.records = append(f.attendanceRepo.records, attendance.Attendance{
		EmployeeID: f.employeeID,
		Date:       time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		Status:     attendance.StatusAbsent,
	})

	history, err := f.svc.History(ctx, f.employeeID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.True(t, history[0].NetSalary.Equal(resp.Entry.NetSalary))

	preview, err := f.svc.Preview(ctx, f.employeeID, "2024-03")
	require.NoError(t, err)
	assert.True(t, preview.PayableNet.LessThan(resp.Entry.NetSalary))
}

func TestCommit_MatchesPreviewForSameData(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.leaveRepo.leaves = append(f.leaveRepo.leaves, leave.LeaveRequest{
		EmployeeID: f.employeeID,
		LeaveType:  leave.TypeCasual,
		StartDate:  time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC),
		Status:     leave.StatusApproved,
	})

	preview, err := f.svc.Preview(ctx, f.employeeID, "2024-03")
	require.NoError(t, err)

	resp, err := f.svc.Commit(ctx, payroll.CommitSalaryRequest{
		EmployeeID:  f.employeeID,
		Month:       "2024-03",
		PaymentMode: "bank_transfer",
	})
	require.NoError(t, err)

	assert.Equal(t, preview, resp.Breakdown)
}
