// Package domain contains application Usecases orchestrating domain logic by team.
package domain

import (
	"context"
	"fmt"

	"hacker-api/internal/entities"

	"github.com/google/uuid"
)

// CreateTeam validates the initial member list and persists a new team.
func (u *Usecase) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if team.Name == "" {
		u.log.Errorw("failed to create team: missing team_name")
		return nil, fmt.Errorf("%w: team_name is required", entities.ErrInvalidArgument)
	}
	if len(team.Members) == 0 {
		return nil, fmt.Errorf("%w: a team needs at least one member", entities.ErrInvalidArgument)
	}
	if len(team.Members) > u.maxTeamSize {
		return nil, &entities.TeamFullError{Size: len(team.Members)}
	}

	if err := u.EnsureUniqueHackerIDs(ctx, team.Members); err != nil {
		return nil, err
	}

	if team.ID == "" {
		team.ID = uuid.NewString()
	}

	created, err := u.repo.CreateTeam(ctx, team)
	if err != nil {
		return nil, err
	}

	u.log.Infow("team created", "team", created.Name, "members", len(created.Members))
	return created, nil
}

// Team returns team by name.
func (u *Usecase) Team(ctx context.Context, name string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if name == "" {
		u.log.Errorw("failed to get team: missing team_name")
		return nil, fmt.Errorf("%w: team_name is required", entities.ErrInvalidArgument)
	}
	return u.repo.FindTeamByName(ctx, name)
}

// TeamByID returns team by id.
func (u *Usecase) TeamByID(ctx context.Context, id string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: team id is required", entities.ErrInvalidArgument)
	}
	return u.repo.FindTeamByID(ctx, id)
}
