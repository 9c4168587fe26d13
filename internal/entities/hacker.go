// Package entities contains core business entities.
package entities

// HackerStatus enumerates the application lifecycle of a hacker.
type HackerStatus string

const (
	// StatusApplied marks a hacker who submitted an application.
	StatusApplied HackerStatus = "Applied"
	// StatusAccepted marks an accepted hacker.
	StatusAccepted HackerStatus = "Accepted"
	// StatusConfirmed marks a hacker who confirmed attendance.
	StatusConfirmed HackerStatus = "Confirmed"
	// StatusCheckedIn marks a hacker present at the event.
	StatusCheckedIn HackerStatus = "Checked-in"
)

// Hacker is a participant with an account identity and optional team affiliation.
// TeamID is empty while the hacker is unaffiliated and is mutated only through
// team membership operations.
type Hacker struct {
	ID        string
	AccountID string
	TeamID    string
	School    string
	Status    HackerStatus
}

// OnTeam reports whether the hacker currently belongs to a team.
func (h Hacker) OnTeam() bool { return h.TeamID != "" }
