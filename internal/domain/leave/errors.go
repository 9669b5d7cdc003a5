package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrInvalidLeaveType             = errors.New("invalid leave type")
	ErrInvalidDateRange             = errors.New("start date must be before or equal to end date")
)
