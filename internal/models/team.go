// Package models contains the domain entities shared by all layers.
// Pure data and invariant helpers only, no I/O.
package models

import "fmt"

// Team identifies one of the fixed specialized teams. The set is closed:
// adding a team is a code change, not a runtime operation.
type Team string

const (
	// TeamCards handles card-related attendances.
	TeamCards Team = "CARDS"
	// TeamLoans handles loan-related attendances.
	TeamLoans Team = "LOANS"
	// TeamOther handles everything else.
	TeamOther Team = "OTHER"
)

// AllTeams returns the closed set of teams in a stable order.
func AllTeams() []Team {
	return []Team{TeamCards, TeamLoans, TeamOther}
}

// Valid reports whether the team is one of the known teams.
func (t Team) Valid() bool {
	switch t {
	case TeamCards, TeamLoans, TeamOther:
		return true
	}
	return false
}

// ParseTeam validates a raw team string coming from a presentation
// layer. Unknown values yield ErrValidation.
func ParseTeam(raw string) (Team, error) {
	team := Team(raw)
	if !team.Valid() {
		return "", fmt.Errorf("%w: unknown team %q", ErrValidation, raw)
	}
	return team, nil
}
