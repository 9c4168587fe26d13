// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"hacker-api/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// HackerInterface exposes hacker directory operations.
type HackerInterface interface {
	CreateHacker(ctx context.Context, hacker entities.Hacker) (*entities.Hacker, error)
	FindHackerByAccountID(ctx context.Context, accountID string) (*entities.Hacker, error)
	FindHackerByID(ctx context.Context, id string) (*entities.Hacker, error)
	UpdateHackerStatus(ctx context.Context, id string, status entities.HackerStatus) (*entities.Hacker, error)
}

// TeamInterface exposes team directory operations.
//
// AddMember is the single mutation that attaches a hacker: it re-checks
// capacity against maxSize at write time and updates the hacker's TeamID
// reciprocally within the same call, so both sides of the membership stay
// consistent. It returns *entities.TeamFullError when the team is already at
// capacity and entities.ErrMembershipUpdate when the hacker record cannot be
// located for the reciprocal update.
type TeamInterface interface {
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	FindTeamByID(ctx context.Context, id string) (*entities.Team, error)
	FindTeamByName(ctx context.Context, name string) (*entities.Team, error)
	FindTeamByHackerID(ctx context.Context, hackerID string) (*entities.Team, error)
	TeamSizeByName(ctx context.Context, name string) (int, error)
	AddMember(ctx context.Context, teamID, hackerID string, maxSize int) (*entities.Team, error)
	RemoveMember(ctx context.Context, teamID, hackerID string) error
	RemoveTeam(ctx context.Context, teamID string) error
}

// RoleInterface exposes role directory operations.
type RoleInterface interface {
	CreateRole(ctx context.Context, role entities.Role) (*entities.Role, error)
	RoleByName(ctx context.Context, name string) (*entities.Role, error)
	Roles(ctx context.Context) ([]entities.Role, error)
	AddRoutes(ctx context.Context, name string, routes []entities.Route) (*entities.Role, error)
	RemoveRoutes(ctx context.Context, name string, routes []entities.Route) (*entities.Role, error)
}
