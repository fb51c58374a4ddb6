package app

import (
	"context"
	"fmt"

	"github.com/AlvaroPrates/flowpay/internal/models"
	"github.com/AlvaroPrates/flowpay/internal/ports/primary"
	"github.com/AlvaroPrates/flowpay/internal/ports/secondary"
)

// AttendanceServiceImpl implements the AttendanceService interface.
// Reads are point-in-time snapshots; no consistency is guaranteed
// between successive calls.
type AttendanceServiceImpl struct {
	attendanceRepo secondary.AttendanceRepository
}

// NewAttendanceService creates a new AttendanceService with injected
// dependencies.
func NewAttendanceService(attendanceRepo secondary.AttendanceRepository) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{attendanceRepo: attendanceRepo}
}

// GetAttendance retrieves an attendance by ID.
func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, attendanceID int64) (*primary.Attendance, error) {
	attendance, err := s.attendanceRepo.GetByID(ctx, attendanceID)
	if err != nil {
		return nil, err
	}
	return attendanceToDTO(attendance), nil
}

// ListAttendances lists attendances with optional team/status filters.
func (s *AttendanceServiceImpl) ListAttendances(ctx context.Context, filters primary.AttendanceFilters) ([]*primary.Attendance, error) {
	repoFilters := secondary.AttendanceFilters{}

	if filters.Team != "" {
		team, err := models.ParseTeam(filters.Team)
		if err != nil {
			return nil, err
		}
		repoFilters.Team = team
	}
	if filters.Status != "" {
		status := models.AttendanceStatus(filters.Status)
		switch status {
		case models.StatusWaiting, models.StatusAssigned, models.StatusCompleted:
			repoFilters.Status = status
		default:
			return nil, fmt.Errorf("%w: unknown status %q", models.ErrValidation, filters.Status)
		}
	}

	attendances, err := s.attendanceRepo.List(ctx, repoFilters)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}

	result := make([]*primary.Attendance, len(attendances))
	for i, attendance := range attendances {
		result[i] = attendanceToDTO(attendance)
	}
	return result, nil
}

// Ensure AttendanceServiceImpl implements the interface
var _ primary.AttendanceService = (*AttendanceServiceImpl)(nil)
