// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrHackerNotFound is returned when a hacker does not exist.
	ErrHackerNotFound = errors.New("hacker not found")
	// ErrTeamNotFound signals missing team.
	ErrTeamNotFound = errors.New("team not found")
	// ErrRoleNotFound signals missing role.
	ErrRoleNotFound = errors.New("role not found")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTeamExists signals team name conflict.
	ErrTeamExists = errors.New("team exists")
	// ErrHackerExists signals duplicate hacker account.
	ErrHackerExists = errors.New("hacker exists")
	// ErrRoleExists signals role name conflict.
	ErrRoleExists = errors.New("role exists")
	// ErrDuplicateMember signals the same hacker id listed twice in a create request.
	ErrDuplicateMember = errors.New("duplicate member")
	// ErrMemberOnTeam signals a candidate member already belongs to another team.
	ErrMemberOnTeam = errors.New("member already on a team")
	// ErrTeamFull signals the team is at capacity.
	ErrTeamFull = errors.New("team full")
	// ErrMembershipUpdate signals the reciprocal hacker update failed for an
	// entity that was just resolved. Store inconsistency, not bad input.
	ErrMembershipUpdate = errors.New("membership update failed")
	// ErrUnauthorized signals a missing or invalid credential.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden signals the caller lacks the required role.
	ErrForbidden = errors.New("forbidden")
)

// MemberConflictError reports the offending hacker id for duplicate-member and
// already-on-team violations. Unwraps to ErrDuplicateMember or ErrMemberOnTeam.
type MemberConflictError struct {
	HackerID string
	Err      error
}

func (e *MemberConflictError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.HackerID)
}

func (e *MemberConflictError) Unwrap() error { return e.Err }

// TeamFullError carries the team size observed at check or write time.
// Unwraps to ErrTeamFull.
type TeamFullError struct {
	Size int
}

func (e *TeamFullError) Error() string {
	return fmt.Sprintf("%v: size %d", ErrTeamFull, e.Size)
}

func (e *TeamFullError) Unwrap() error { return ErrTeamFull }
