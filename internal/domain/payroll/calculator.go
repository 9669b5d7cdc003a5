package payroll

import (
	"math"
	"time"

	"github.com/hydroseal/erp-backend-go/internal/domain/attendance"
	"github.com/hydroseal/erp-backend-go/internal/domain/leave"
	"github.com/shopspring/decimal"
)

// WorkingDaysPerMonth is the fixed divisor used to derive the daily rate.
// It is a payroll policy constant, not a calendar-accurate value.
const WorkingDaysPerMonth = 26

// DefaultHoldPercent applies when an employee has no explicit retention
// percentage configured.
var DefaultHoldPercent = decimal.NewFromInt(5)

// CalculationInput is the employee aggregate the calculator operates on.
// Attendance and leave records may span any date range; only entries that
// fall inside the target month are considered.
type CalculationInput struct {
	BasicSalary decimal.Decimal
	Allowances  map[string]decimal.Decimal
	Deductions  map[string]decimal.Decimal
	HoldPercent *decimal.Decimal
	Attendance  []attendance.Attendance
	Leaves      []leave.LeaveRequest
}

// Breakdown is the result of one payroll calculation. It is ephemeral for
// previews and becomes a SalaryHistoryEntry plus a RetentionEntry on commit.
type Breakdown struct {
	Month           string
	GrossSalary     decimal.Decimal
	TotalAllowances decimal.Decimal
	FixedDeductions decimal.Decimal
	LeaveDeductions decimal.Decimal
	HoldPercent     decimal.Decimal
	HoldAmount      decimal.Decimal
	PayableNet      decimal.Decimal
}

// MonthWindow returns the inclusive bounds of a "YYYY-MM" month key:
// midnight on the first day through 23:59:59.999 on the last day.
func MonthWindow(month string) (start, end time.Time, err error) {
	start, parseErr := time.Parse("2006-01", month)
	if parseErr != nil {
		return time.Time{}, time.Time{}, ErrInvalidMonth
	}
	end = start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end, nil
}

// Compute runs the attendance-aware payroll calculation for one employee and
// one target month. It is pure: no I/O, no side effects, and identical inputs
// always produce an identical Breakdown.
//
// Deduction rules:
//   - absent days and approved non-sick leave days are charged at the daily
//     rate, half days at half the daily rate;
//   - the first approved sick day per month is exempt, the rest are charged;
//   - a leave spanning a month boundary is only charged for the days inside
//     the target month;
//   - an absent attendance record and an approved leave covering the same day
//     are both charged; the two sources are intentionally not deduplicated.
func Compute(in CalculationInput, month string) (Breakdown, error) {
	monthStart, monthEnd, err := MonthWindow(month)
	if err != nil {
		return Breakdown{}, err
	}
	if in.BasicSalary.IsNegative() {
		return Breakdown{}, ErrInvalidBasicSalary
	}

	totalAllowances := decimal.Zero
	for _, v := range in.Allowances {
		totalAllowances = totalAllowances.Add(v)
	}
	fixedDeductions := decimal.Zero
	for _, v := range in.Deductions {
		fixedDeductions = fixedDeductions.Add(v)
	}
	grossSalary := in.BasicSalary.Add(totalAllowances)

	var absents, halfDays int64
	for _, rec := range in.Attendance {
		if rec.Date.Before(monthStart) || rec.Date.After(monthEnd) {
			continue
		}
		switch rec.Status {
		case attendance.StatusAbsent:
			absents++
		case attendance.StatusHalfDay:
			halfDays++
		}
	}

	var sickApprovedDays, otherApprovedLeaveDays int64
	for _, lv := range in.Leaves {
		if lv.Status != leave.StatusApproved {
			continue
		}
		overlapStart := lv.StartDate
		if overlapStart.Before(monthStart) {
			overlapStart = monthStart
		}
		overlapEnd := lv.EndDate
		if overlapEnd.After(monthEnd) {
			overlapEnd = monthEnd
		}
		if overlapStart.After(overlapEnd) {
			continue
		}
		// Inclusive day count over the clipped range.
		days := int64(math.Ceil(overlapEnd.Sub(overlapStart).Hours()/24)) + 1
		if lv.LeaveType == leave.TypeSick {
			sickApprovedDays += days
		} else {
			otherApprovedLeaveDays += days
		}
	}

	// First approved sick day each month carries no deduction.
	unpaidSickDays := sickApprovedDays - 1
	if unpaidSickDays < 0 {
		unpaidSickDays = 0
	}

	dailyRate := in.BasicSalary.Add(totalAllowances).Sub(fixedDeductions).
		Div(decimal.NewFromInt(WorkingDaysPerMonth))

	fullDays := decimal.NewFromInt(unpaidSickDays + otherApprovedLeaveDays + absents)
	leaveDeductions := round2(fullDays.Mul(dailyRate).
		Add(decimal.NewFromInt(halfDays).Mul(dailyRate.Div(decimal.NewFromInt(2)))))
	if leaveDeductions.IsNegative() {
		leaveDeductions = decimal.Zero
	}

	holdPercent := DefaultHoldPercent
	if in.HoldPercent != nil {
		holdPercent = *in.HoldPercent
	}

	prelimNet := grossSalary.Sub(fixedDeductions).Sub(leaveDeductions)

	holdAmount := decimal.Zero
	if prelimNet.IsPositive() {
		holdAmount = round2(prelimNet.Mul(holdPercent).Div(decimal.NewFromInt(100)))
	}

	payableNet := prelimNet.Sub(holdAmount)
	if payableNet.IsNegative() {
		payableNet = decimal.Zero
	}

	return Breakdown{
		Month:           month,
		GrossSalary:     round2(grossSalary),
		TotalAllowances: round2(totalAllowances),
		FixedDeductions: round2(fixedDeductions),
		LeaveDeductions: leaveDeductions,
		HoldPercent:     holdPercent,
		HoldAmount:      holdAmount,
		PayableNet:      round2(payableNet),
	}, nil
}

// round2 rounds to 2 decimal places, half away from zero. All monetary
// outputs of the calculator go through it.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
