// Package entities contains core business entities.
package entities

// Team groups hackers under a unique name. Members holds hacker ids, no
// duplicates, and every listed hacker's TeamID must point back at this team.
// A team with zero members is a tombstone and is deleted, never persisted.
type Team struct {
	ID          string
	Name        string
	Members     []string
	ProjectName string
	DevpostURL  string
}

// HasMember reports whether the hacker id is in the member set.
func (t Team) HasMember(hackerID string) bool {
	for _, m := range t.Members {
		if m == hackerID {
			return true
		}
	}
	return false
}

// Size returns the member count.
func (t Team) Size() int { return len(t.Members) }
