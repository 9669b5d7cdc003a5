package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	// GetApprovedOverlapping returns approved requests whose [start, end]
	// range intersects [from, to].
	GetApprovedOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]LeaveRequest, error)
	Decide(ctx context.Context, req DecideLeaveRequest) error
}
