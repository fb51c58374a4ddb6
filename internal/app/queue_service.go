package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/AlvaroPrates/flowpay/internal/models"
	"github.com/AlvaroPrates/flowpay/internal/ports/primary"
	"github.com/AlvaroPrates/flowpay/internal/ports/secondary"
)

// QueueServiceImpl implements the QueueService interface.
type QueueServiceImpl struct {
	queueRepo      secondary.QueueRepository
	attendanceRepo secondary.AttendanceRepository
}

// NewQueueService creates a new QueueService with injected dependencies.
func NewQueueService(
	queueRepo secondary.QueueRepository,
	attendanceRepo secondary.AttendanceRepository,
) *QueueServiceImpl {
	return &QueueServiceImpl{
		queueRepo:      queueRepo,
		attendanceRepo: attendanceRepo,
	}
}

// ListQueue returns the waiting attendances of a team in queue order.
func (s *QueueServiceImpl) ListQueue(ctx context.Context, team string) ([]*primary.Attendance, error) {
	parsed, err := models.ParseTeam(team)
	if err != nil {
		return nil, err
	}

	ids, err := s.queueRepo.List(ctx, parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to list queue: %w", err)
	}

	var result []*primary.Attendance
	for _, id := range ids {
		attendance, err := s.attendanceRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				slog.Warn("queue references missing attendance", "id", id, "team", parsed)
				continue
			}
			return nil, err
		}
		result = append(result, attendanceToDTO(attendance))
	}
	return result, nil
}

// QueueSize returns the number of queued attendances for a team.
func (s *QueueServiceImpl) QueueSize(ctx context.Context, team string) (int, error) {
	parsed, err := models.ParseTeam(team)
	if err != nil {
		return 0, err
	}
	return s.queueRepo.Size(ctx, parsed)
}

// ClearQueue empties a team's backlog. Administrative escape hatch; the
// cleared attendances keep their waiting status.
func (s *QueueServiceImpl) ClearQueue(ctx context.Context, team string) (int, error) {
	parsed, err := models.ParseTeam(team)
	if err != nil {
		return 0, err
	}

	removed, err := s.queueRepo.Clear(ctx, parsed)
	if err != nil {
		return 0, fmt.Errorf("failed to clear queue: %w", err)
	}

	slog.Info("queue cleared", "team", parsed, "removed", removed)
	return removed, nil
}

// Ensure QueueServiceImpl implements the interface
var _ primary.QueueService = (*QueueServiceImpl)(nil)
