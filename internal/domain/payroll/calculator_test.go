package payroll

import (
	"testing"
	"time"

	"github.com/hydroseal/erp-backend-go/internal/domain/attendance"
	"github.com/hydroseal/erp-backend-go/internal/domain/leave"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func baseInput() CalculationInput {
	return CalculationInput{
		BasicSalary: decimal.NewFromInt(20000),
		Allowances:  map[string]decimal.Decimal{"hra": decimal.NewFromInt(2000)},
		Deductions:  map[string]decimal.Decimal{"pf": decimal.NewFromInt(500)},
	}
}

func TestMonthWindow(t *testing.T) {
	start, end, err := MonthWindow("2024-02")
	require.NoError(t, err)
	assert.Equal(t, day(2024, time.February, 1), start)
	// 2024 is a leap year
	assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, 999000000, time.UTC), end)

	_, _, err = MonthWindow("2024-13")
	assert.ErrorIs(t, err, ErrInvalidMonth)
	_, _, err = MonthWindow("2024-3")
	assert.ErrorIs(t, err, ErrInvalidMonth)
	_, _, err = MonthWindow("march")
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestCompute_NoAbsences(t *testing.T) {
	got, err := Compute(baseInput(), "2024-03")
	require.NoError(t, err)

	assert.True(t, got.GrossSalary.Equal(decimal.NewFromInt(22000)), "gross = %s", got.GrossSalary)
	assert.True(t, got.FixedDeductions.Equal(decimal.NewFromInt(500)))
	assert.True(t, got.LeaveDeductions.IsZero())
	assert.True(t, got.HoldPercent.Equal(decimal.NewFromInt(5)))
	assert.True(t, got.HoldAmount.Equal(decimal.NewFromInt(1075)), "hold = %s", got.HoldAmount)
	assert.True(t, got.PayableNet.Equal(decimal.NewFromInt(20425)), "net = %s", got.PayableNet)
}

func TestCompute_AbsencesAndHalfDays(t *testing.T) {
	in := baseInput()
	in.Attendance = []attendance.Attendance{
		{Date: day(2024, time.March, 4), Status: attendance.StatusAbsent},
		{Date: day(2024, time.March, 5), Status: attendance.StatusAbsent},
		{Date: day(2024, time.March, 6), Status: attendance.StatusHalfDay},
		{Date: day(2024, time.March, 7), Status: attendance.StatusPresent},
		{Date: day(2024, time.March, 8), Status: attendance.StatusHoliday},
	}

	got, err := Compute(in, "2024-03")
	require.NoError(t, err)

	// dailyRate = 21500/26; 2 absents + 1 half day
	assert.Equal(t, "2067.31", got.LeaveDeductions.StringFixed(2))
	assert.Equal(t, "971.63", got.HoldAmount.StringFixed(2))
	assert.Equal(t, "18461.06", got.PayableNet.StringFixed(2))
}

func TestCompute_IgnoresRecordsOutsideMonth(t *testing.T) {
	in := baseInput()
	in.Attendance = []attendance.Attendance{
		{Date: day(2024, time.February, 28), Status: attendance.StatusAbsent},
		{Date: day(2024, time.April, 1), Status: attendance.StatusAbsent},
	}

	got, err := Compute(in, "2024-03")
	require.NoError(t, err)
	assert.True(t, got.LeaveDeductions.IsZero())
}

func TestCompute_SickLeaveExemption(t *testing.T) {
	in := baseInput()
	in.Leaves = []leave.LeaveRequest{
		{
			LeaveType: leave.TypeSick,
			StartDate: day(2024, time.March, 10),
			EndDate:   day(2024, time.March, 12),
			Status:    leave.StatusApproved,
		},
	}

	got, err := Compute(in, "2024-03")
	require.NoError(t, err)

	// 3 approved sick days, first one exempt: 2 * 21500/26
	assert.Equal(t, "1653.85", got.LeaveDeductions.StringFixed(2))
}

func TestCompute_SingleSickDayFullyExempt(t *testing.T) {
	in := baseInput()
	in.Leaves = []leave.LeaveRequest{
		{
			LeaveType: leave.TypeSick,
			StartDate: day(2024, time.March, 10),
			EndDate:   day(2024, time.March, 10),
			Status:    leave.StatusApproved,
		},
	}

	got, err := Compute(in, "2024-03")
	require.NoError(t, err)
	assert.True(t, got.LeaveDeductions.IsZero())
}

func TestCompute_PendingAndRejectedLeavesIgnored(t *testing.T) {
	in := baseInput()
	in.Leaves = []leave.LeaveRequest{
		{
			LeaveType: leave.TypeCasual,
			StartDate: day(2024, time.March, 4),
			EndDate:   day(2024, time.March, 8),
			Status:    leave.StatusPending,
		},
		{
			LeaveType: leave.TypeUnpaid,
			StartDate: day(2024, time.March, 11),
			EndDate:   day(2024, time.March, 15),
			Status:    leave.StatusRejected,
		},
	}

	got, err := Compute(in, "2024-03")
	require.NoError(t, err)
	assert.True(t, got.LeaveDeductions.IsZero())
}

func TestCompute_LeaveClippedToMonthWindow(t *testing.T) {
	in := baseInput()
	in.Leaves = []leave.LeaveRequest{
		{
			LeaveType: leave.TypeCasual,
			StartDate: day(2024, time.March, 30),
			EndDate:   day(2024, time.April, 2),
			Status:    leave.StatusApproved,
		},
	}

	got, err := Compute(in, "2024-03")
	require.NoError(t, err)

	// Charged only for the in-month part of the range, counted with the
	// inclusive ceil-plus-one convention: 3 * 21500/26.
	assert.Equal(t, "2480.77", got.LeaveDeductions.StringFixed(2))
}

func TestCompute_AbsentDayInsideApprovedLeaveChargedFromBothSources(t *testing.T) {
	in := baseInput()
	in.Attendance = []attendance.Attendance{
		{Date: day(2024, time.March, 11), Status: attendance.StatusAbsent},
	}
	in.Leaves = []leave.LeaveRequest{
		{
			LeaveType: leave.TypeCasual,
			StartDate: day(2024, time.March, 11),
			EndDate:   day(2024, time.March, 12),
			Status:    leave.StatusApproved,
		},
	}

	got, err := Compute(in, "2024-03")
	require.NoError(t, err)

	// March 11 is covered by both the absent record and the approved
	// leave; the sources are not deduplicated, so the day is charged
	// twice: (2 leave days + 1 absent) * 21500/26.
	assert.Equal(t, "2480.77", got.LeaveDeductions.StringFixed(2))
}

func TestCompute_NeverNegativePayout(t *testing.T) {
	in := CalculationInput{
		BasicSalary: decimal.NewFromInt(1000),
		Deductions:  map[string]decimal.Decimal{"loan": decimal.NewFromInt(5000)},
	}

	got, err := Compute(in, "2024-03")
	require.NoError(t, err)

	assert.True(t, got.HoldAmount.IsZero(), "hold = %s", got.HoldAmount)
	assert.True(t, got.PayableNet.IsZero(), "net = %s", got.PayableNet)
}

func TestCompute_CustomHoldPercent(t *testing.T) {
	in := baseInput()
	ten := decimal.NewFromInt(10)
	in.HoldPercent = &ten

	got, err := Compute(in, "2024-03")
	require.NoError(t, err)

	assert.True(t, got.HoldAmount.Equal(decimal.NewFromInt(2150)), "hold = %s", got.HoldAmount)
	assert.True(t, got.PayableNet.Equal(decimal.NewFromInt(19350)), "net = %s", got.PayableNet)
}

func TestCompute_NegativeBasicSalaryRejected(t *testing.T) {
	in := baseInput()
	in.BasicSalary = decimal.NewFromInt(-1)

	_, err := Compute(in, "2024-03")
	assert.ErrorIs(t, err, ErrInvalidBasicSalary)
}

func TestCompute_Deterministic(t *testing.T) {
	in := baseInput()
	in.Attendance = []attendance.Attendance{
		{Date: day(2024, time.March, 4), Status: attendance.StatusAbsent},
		{Date: day(2024, time.March, 6), Status: attendance.StatusHalfDay},
	}
	in.Leaves = []leave.LeaveRequest{
		{
			LeaveType: leave.TypeSick,
			StartDate: day(2024, time.March, 18),
			EndDate:   day(2024, time.March, 20),
			Status:    leave.StatusApproved,
		},
	}

	first, err := Compute(in, "2024-03")
	require.NoError(t, err)
	second, err := Compute(in, "2024-03")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCompute_RoundingStability(t *testing.T) {
	in := CalculationInput{
		BasicSalary: decimal.RequireFromString("13333.33"),
		Allowances:  map[string]decimal.Decimal{"site": decimal.RequireFromString("777.77")},
		Deductions:  map[string]decimal.Decimal{"tax": decimal.RequireFromString("99.99")},
		Attendance: []attendance.Attendance{
			{Date: day(2024, time.March, 4), Status: attendance.StatusAbsent},
			{Date: day(2024, time.March, 6), Status: attendance.StatusHalfDay},
		},
	}

	got, err := Compute(in, "2024-03")
	require.NoError(t, err)

	for name, v := range map[string]decimal.Decimal{
		"gross_salary":     got.GrossSalary,
		"total_allowances": got.TotalAllowances,
		"fixed_deductions": got.FixedDeductions,
		"leave_deductions": got.LeaveDeductions,
		"hold_amount":      got.HoldAmount,
		"payable_net":      got.PayableNet,
	} {
		assert.GreaterOrEqual(t, v.Exponent(), int32(-2), "%s has more than 2 decimal places: %s", name, v)
	}
}
