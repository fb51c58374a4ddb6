package primary

import "context"

// AttendanceService defines the primary port for attendance queries.
// All reads are point-in-time snapshots with no consistency guarantee
// across calls.
type AttendanceService interface {
	// GetAttendance retrieves an attendance by ID.
	GetAttendance(ctx context.Context, attendanceID int64) (*Attendance, error)

	// ListAttendances lists attendances with optional filters.
	ListAttendances(ctx context.Context, filters AttendanceFilters) ([]*Attendance, error)
}

// AttendanceFilters contains filter options for querying attendances.
type AttendanceFilters struct {
	Team   string
	Status string
}
