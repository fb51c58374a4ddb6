package models

import "time"

// AttendanceStatus represents the lifecycle state of an attendance.
// The only transitions are WAITING → ASSIGNED → COMPLETED.
type AttendanceStatus string

const (
	// StatusWaiting means the attendance sits in its team's backlog.
	StatusWaiting AttendanceStatus = "WAITING"
	// StatusAssigned means an agent is actively handling the attendance.
	StatusAssigned AttendanceStatus = "ASSIGNED"
	// StatusCompleted is terminal.
	StatusCompleted AttendanceStatus = "COMPLETED"
)

// Attendance represents a single client service request routed to one
// team. IDs are monotonic and never reused.
type Attendance struct {
	ID          int64
	Team        Team
	Subject     string
	ClientName  string
	Status      AttendanceStatus
	AgentID     string
	CreatedAt   time.Time
	AssignedAt  *time.Time
	CompletedAt *time.Time
}

// Active reports whether the attendance currently holds agent capacity.
func (a *Attendance) Active() bool {
	return a.Status == StatusAssigned
}
