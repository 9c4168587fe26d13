package usecase

import (
	"context"

	"hacker-api/internal/entities"
)

// HackerUsecaseInterface abstracts hacker-related operations for delivery layer.
type HackerUsecaseInterface interface {
	RegisterHacker(ctx context.Context, hacker entities.Hacker) (*entities.Hacker, error)
	Hacker(ctx context.Context, accountID string) (*entities.Hacker, error)
	SetHackerStatus(ctx context.Context, id string, status entities.HackerStatus) (*entities.Hacker, error)
}

// TeamUsecaseInterface abstracts team-related operations, including the
// membership transfer path.
type TeamUsecaseInterface interface {
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	Team(ctx context.Context, name string) (*entities.Team, error)
	TeamByID(ctx context.Context, id string) (*entities.Team, error)
	EnsureUniqueHackerIDs(ctx context.Context, memberIDs []string) error
	EnsureSpace(ctx context.Context, teamName string) error
	JoinTeam(ctx context.Context, accountID, teamName string) (*entities.Team, error)
}

// RoleUsecaseInterface abstracts role-related operations.
type RoleUsecaseInterface interface {
	CreateRole(ctx context.Context, role entities.Role) (*entities.Role, error)
	Role(ctx context.Context, name string) (*entities.Role, error)
	Roles(ctx context.Context) ([]entities.Role, error)
	UpdateRoleRoutes(ctx context.Context, name string, add, remove []entities.Route) (*entities.Role, error)
}
