// Package dispatch contains the pure business logic for attendance
// distribution. No I/O, only pure functions over contexts assembled by
// the application layer.
package dispatch

import (
	"fmt"
	"strings"

	"github.com/AlvaroPrates/flowpay/internal/models"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Kind    error  // sentinel from models, set when not allowed
	Reason  string // human-readable reason, set when not allowed
}

// Error returns the guard result as a wrapped sentinel error if not
// allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%w: %s", r.Kind, r.Reason)
}

// SubmitContext provides the input for attendance submission guards.
type SubmitContext struct {
	Team       models.Team
	ClientName string
	Subject    string
}

// CanSubmit evaluates whether an attendance submission is well formed.
// Rule: the team must be one of the known teams and the client name must
// not be blank. The subject may be empty.
func CanSubmit(ctx SubmitContext) GuardResult {
	if !ctx.Team.Valid() {
		return GuardResult{
			Kind:   models.ErrValidation,
			Reason: fmt.Sprintf("unknown team %q", string(ctx.Team)),
		}
	}
	if strings.TrimSpace(ctx.ClientName) == "" {
		return GuardResult{
			Kind:   models.ErrValidation,
			Reason: "client name is required",
		}
	}
	return GuardResult{Allowed: true}
}

// RegisterAgentContext provides the input for agent registration guards.
type RegisterAgentContext struct {
	Team models.Team
	Name string
}

// CanRegisterAgent evaluates whether an agent registration is well
// formed.
func CanRegisterAgent(ctx RegisterAgentContext) GuardResult {
	if !ctx.Team.Valid() {
		return GuardResult{
			Kind:   models.ErrValidation,
			Reason: fmt.Sprintf("unknown team %q", string(ctx.Team)),
		}
	}
	if strings.TrimSpace(ctx.Name) == "" {
		return GuardResult{
			Kind:   models.ErrValidation,
			Reason: "agent name is required",
		}
	}
	return GuardResult{Allowed: true}
}

// CompleteContext provides the input for completion guards. Populated by
// the caller with the pre-fetched attendance state.
type CompleteContext struct {
	AttendanceID int64
	Exists       bool
	Status       models.AttendanceStatus
}

// CanComplete evaluates whether an attendance can be completed.
// Rule: only an existing attendance in ASSIGNED state can complete.
// Completion is not idempotent, a second attempt is a state conflict.
func CanComplete(ctx CompleteContext) GuardResult {
	if !ctx.Exists {
		return GuardResult{
			Kind:   models.ErrNotFound,
			Reason: fmt.Sprintf("attendance %d not found", ctx.AttendanceID),
		}
	}
	if ctx.Status != models.StatusAssigned {
		return GuardResult{
			Kind:   models.ErrInvalidState,
			Reason: fmt.Sprintf("attendance %d is %s, only ASSIGNED attendances can be completed", ctx.AttendanceID, ctx.Status),
		}
	}
	return GuardResult{Allowed: true}
}

// CanAssign evaluates whether an agent with the given active count can
// accept another attendance.
func CanAssign(activeCount int) GuardResult {
	if activeCount >= models.MaxActiveAttendances {
		return GuardResult{
			Kind:   models.ErrCapacityExceeded,
			Reason: fmt.Sprintf("agent already holds %d attendances", activeCount),
		}
	}
	return GuardResult{Allowed: true}
}
