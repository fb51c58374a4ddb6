// Package app implements the primary ports by composing the secondary
// ports. The distributor owns the only critical sections in the system:
// one mutex per team serializes {find available → increment} on submit
// and {decrement → drain} on complete, so different teams never contend.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/AlvaroPrates/flowpay/internal/core/dispatch"
	"github.com/AlvaroPrates/flowpay/internal/models"
	"github.com/AlvaroPrates/flowpay/internal/ports/primary"
	"github.com/AlvaroPrates/flowpay/internal/ports/secondary"
)

// DistributorServiceImpl implements the DistributorService interface.
type DistributorServiceImpl struct {
	attendanceRepo secondary.AttendanceRepository
	agentRepo      secondary.AgentRepository
	queueRepo      secondary.QueueRepository
	notifier       secondary.ChangeNotifier

	// teamLocks holds one mutex per team; the team set is closed so the
	// map is never mutated after construction.
	teamLocks map[models.Team]*sync.Mutex

	now func() time.Time
}

// NewDistributorService creates a new DistributorService with injected
// dependencies. The notifier may be nil, in which case change events are
// dropped.
func NewDistributorService(
	attendanceRepo secondary.AttendanceRepository,
	agentRepo secondary.AgentRepository,
	queueRepo secondary.QueueRepository,
	notifier secondary.ChangeNotifier,
) *DistributorServiceImpl {
	locks := make(map[models.Team]*sync.Mutex, len(models.AllTeams()))
	for _, team := range models.AllTeams() {
		locks[team] = &sync.Mutex{}
	}

	return &DistributorServiceImpl{
		attendanceRepo: attendanceRepo,
		agentRepo:      agentRepo,
		queueRepo:      queueRepo,
		notifier:       notifier,
		teamLocks:      locks,
		now:            time.Now,
	}
}

// Submit creates a new attendance and either assigns it immediately or
// enqueues it in its team's backlog.
func (s *DistributorServiceImpl) Submit(ctx context.Context, req primary.SubmitAttendanceRequest) (*primary.Attendance, error) {
	team := models.Team(req.Team)
	if result := dispatch.CanSubmit(dispatch.SubmitContext{
		Team:       team,
		ClientName: req.ClientName,
		Subject:    req.Subject,
	}); !result.Allowed {
		return nil, result.Error()
	}

	lock := s.teamLocks[team]
	lock.Lock()
	defer lock.Unlock()

	attendance := &models.Attendance{
		Team:       team,
		Subject:    req.Subject,
		ClientName: req.ClientName,
		Status:     dispatch.InitialStatus(),
		CreatedAt:  s.now(),
	}
	if err := s.attendanceRepo.Create(ctx, attendance); err != nil {
		return nil, fmt.Errorf("failed to create attendance: %w", err)
	}

	slog.Info("attendance submitted",
		"id", attendance.ID, "team", team, "client", attendance.ClientName)

	agent, err := s.agentRepo.FindAvailable(ctx, team)
	if err != nil {
		return nil, fmt.Errorf("failed to find available agent: %w", err)
	}

	if agent != nil {
		if err := s.assign(ctx, attendance, agent.ID); err != nil {
			if !errors.Is(err, models.ErrCapacityExceeded) {
				return nil, err
			}
			// The store refused the capacity charge even though the
			// directory reported availability. Never corrupt the ledger:
			// leave the attendance waiting and queue it instead.
			slog.Error("capacity invariant defense tripped, queueing instead",
				"attendance", attendance.ID, "agent", agent.ID)
		} else {
			s.publish(secondary.ChangeEvent{
				Kind:         secondary.ChangeAssigned,
				Team:         team,
				AttendanceID: attendance.ID,
				AgentID:      agent.ID,
			})
			return attendanceToDTO(attendance), nil
		}
	}

	if err := s.queueRepo.Enqueue(ctx, team, attendance.ID); err != nil {
		return nil, fmt.Errorf("failed to enqueue attendance: %w", err)
	}

	slog.Info("attendance queued", "id", attendance.ID, "team", team)
	s.publish(secondary.ChangeEvent{
		Kind:         secondary.ChangeQueued,
		Team:         team,
		AttendanceID: attendance.ID,
	})

	return attendanceToDTO(attendance), nil
}

// Complete finalizes an assigned attendance, releases its agent's
// capacity and drains the team's backlog onto the freed capacity.
func (s *DistributorServiceImpl) Complete(ctx context.Context, attendanceID int64) (*primary.CompleteResponse, error) {
	// Read outside the lock just to learn the team; the authoritative
	// state check happens again under the lock.
	peek, err := s.attendanceRepo.GetByID(ctx, attendanceID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			if result := dispatch.CanComplete(dispatch.CompleteContext{
				AttendanceID: attendanceID,
				Exists:       false,
			}); !result.Allowed {
				return nil, result.Error()
			}
		}
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}

	lock := s.teamLocks[peek.Team]
	lock.Lock()
	defer lock.Unlock()

	attendance, err := s.attendanceRepo.GetByID(ctx, attendanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}

	if result := dispatch.CanComplete(dispatch.CompleteContext{
		AttendanceID: attendanceID,
		Exists:       true,
		Status:       attendance.Status,
	}); !result.Allowed {
		return nil, result.Error()
	}

	completion := dispatch.ApplyCompletion(s.now())
	attendance.Status = completion.NewStatus
	attendance.CompletedAt = &completion.CompletedAt
	if err := s.attendanceRepo.Update(ctx, attendance); err != nil {
		return nil, fmt.Errorf("failed to update attendance: %w", err)
	}

	if err := s.agentRepo.DecrementActive(ctx, attendance.AgentID); err != nil {
		return nil, fmt.Errorf("failed to release agent capacity: %w", err)
	}

	slog.Info("attendance completed",
		"id", attendance.ID, "team", attendance.Team, "agent", attendance.AgentID)
	s.publish(secondary.ChangeEvent{
		Kind:         secondary.ChangeCompleted,
		Team:         attendance.Team,
		AttendanceID: attendance.ID,
		AgentID:      attendance.AgentID,
	})

	// The completion and the capacity release are committed at this
	// point. A drain failure must not hide that from the caller, so the
	// response carries the completed attendance and whatever drained
	// before the failure alongside the error.
	drained, err := s.drain(ctx, attendance.Team)
	resp := &primary.CompleteResponse{
		Attendance: attendanceToDTO(attendance),
		Drained:    drained,
	}
	if err != nil {
		return resp, fmt.Errorf("attendance %d completed but backlog drain was interrupted: %w", attendance.ID, err)
	}

	return resp, nil
}

// drain assigns queued attendances to available agents until the
// backlog is empty or the team has no spare capacity. Caller must hold
// the team lock.
func (s *DistributorServiceImpl) drain(ctx context.Context, team models.Team) ([]*primary.Attendance, error) {
	var drained []*primary.Attendance

	for {
		agent, err := s.agentRepo.FindAvailable(ctx, team)
		if err != nil {
			return drained, fmt.Errorf("failed to find available agent: %w", err)
		}
		if agent == nil {
			return drained, nil
		}

		attendanceID, ok, err := s.queueRepo.Dequeue(ctx, team)
		if err != nil {
			return drained, fmt.Errorf("failed to dequeue attendance: %w", err)
		}
		if !ok {
			return drained, nil
		}

		attendance, err := s.attendanceRepo.GetByID(ctx, attendanceID)
		if err != nil {
			return drained, fmt.Errorf("failed to load queued attendance: %w", err)
		}
		if attendance.Status != models.StatusWaiting {
			// Queue membership invariant broken upstream; drop the stale
			// entry rather than double-assigning.
			slog.Warn("skipping stale queue entry",
				"attendance", attendance.ID, "status", attendance.Status)
			continue
		}

		if err := s.assign(ctx, attendance, agent.ID); err != nil {
			if errors.Is(err, models.ErrCapacityExceeded) {
				slog.Error("capacity invariant defense tripped during drain, re-queueing",
					"attendance", attendance.ID, "agent", agent.ID)
				if qerr := s.queueRepo.Enqueue(ctx, team, attendance.ID); qerr != nil {
					return drained, fmt.Errorf("failed to re-queue attendance: %w", qerr)
				}
				return drained, nil
			}
			return drained, err
		}

		slog.Info("attendance drained from backlog",
			"id", attendance.ID, "team", team, "agent", agent.ID)
		s.publish(secondary.ChangeEvent{
			Kind:         secondary.ChangeDrained,
			Team:         team,
			AttendanceID: attendance.ID,
			AgentID:      agent.ID,
		})
		drained = append(drained, attendanceToDTO(attendance))
	}
}

// assign charges one capacity unit to the agent and records the
// assignment on the attendance. Caller must hold the team lock.
func (s *DistributorServiceImpl) assign(ctx context.Context, attendance *models.Attendance, agentID string) error {
	if err := s.agentRepo.IncrementActive(ctx, agentID); err != nil {
		return fmt.Errorf("failed to charge agent capacity: %w", err)
	}

	result := dispatch.ApplyAssignment(agentID, s.now())
	attendance.Status = result.NewStatus
	attendance.AgentID = result.AgentID
	attendance.AssignedAt = &result.AssignedAt

	if err := s.attendanceRepo.Update(ctx, attendance); err != nil {
		// Roll the charge back so capacity is not leaked on a store
		// failure between the two writes.
		if derr := s.agentRepo.DecrementActive(ctx, agentID); derr != nil {
			slog.Error("failed to roll back capacity charge", "agent", agentID, "error", derr)
		}
		return fmt.Errorf("failed to record assignment: %w", err)
	}

	slog.Info("attendance assigned",
		"id", attendance.ID, "team", attendance.Team, "agent", agentID)
	return nil
}

func (s *DistributorServiceImpl) publish(event secondary.ChangeEvent) {
	if s.notifier != nil {
		s.notifier.Publish(event)
	}
}

// Ensure DistributorServiceImpl implements the interface
var _ primary.DistributorService = (*DistributorServiceImpl)(nil)
