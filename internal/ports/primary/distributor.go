// Package primary defines the primary ports (driving adapters) for the
// application. Presentation layers (CLI, HTTP API) depend only on these
// interfaces and never mutate agent capacity or backlogs directly.
package primary

import (
	"context"
	"time"
)

// DistributorService defines the primary port for attendance
// distribution. It is the single authority connecting the attendance
// lifecycle to agent capacity.
type DistributorService interface {
	// Submit creates a new attendance and either assigns it to an
	// available agent of its team immediately or enqueues it in the
	// team's backlog.
	Submit(ctx context.Context, req SubmitAttendanceRequest) (*Attendance, error)

	// Complete finalizes an assigned attendance, releases the agent's
	// capacity and drains the team's backlog onto freed capacity. The
	// response lists every attendance assigned by the drain, in queue
	// order. If the drain fails after the completion committed, the
	// response is still returned alongside the error.
	Complete(ctx context.Context, attendanceID int64) (*CompleteResponse, error)
}

// SubmitAttendanceRequest contains parameters for submitting an
// attendance.
type SubmitAttendanceRequest struct {
	Team       string
	ClientName string
	Subject    string
}

// CompleteResponse contains the result of completing an attendance.
type CompleteResponse struct {
	Attendance *Attendance
	Drained    []*Attendance
}

// Attendance is the attendance representation exposed to presentation
// layers.
type Attendance struct {
	ID          int64
	Team        string
	Subject     string
	ClientName  string
	Status      string
	AgentID     string
	CreatedAt   time.Time
	AssignedAt  *time.Time
	CompletedAt *time.Time
}
