package attendance

import "context"

type AttendanceService interface {
	Record(ctx context.Context, req RecordAttendanceRequest) (AttendanceResponse, error)
	ListForMonth(ctx context.Context, employeeID, month string) ([]AttendanceResponse, error)
	Delete(ctx context.Context, id string) error
}
