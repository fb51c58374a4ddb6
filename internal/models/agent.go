package models

// MaxActiveAttendances is the hard limit of concurrent attendances a
// single agent may hold. The limit is global, not per team.
const MaxActiveAttendances = 3

// Agent represents a service agent belonging to exactly one team.
type Agent struct {
	ID          string
	Name        string
	Team        Team
	ActiveCount int
}

// Available reports whether the agent has spare capacity for another
// attendance.
func (a *Agent) Available() bool {
	return a.ActiveCount < MaxActiveAttendances
}
