// Package domain contains application Usecases orchestrating domain logic by membership.
package domain

import (
	"context"
	"errors"
	"fmt"

	"hacker-api/internal/entities"
)

// EnsureUniqueHackerIDs verifies a candidate member list for team creation:
// no id appears twice and no id already belongs to a team. Scans in list
// order and stops at the first violation; ids after it are never looked up.
func (u *Usecase) EnsureUniqueHackerIDs(ctx context.Context, memberIDs []string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	seen := make(map[string]struct{}, len(memberIDs))
	for _, id := range memberIDs {
		if _, ok := seen[id]; ok {
			return &entities.MemberConflictError{HackerID: id, Err: entities.ErrDuplicateMember}
		}
		seen[id] = struct{}{}

		_, err := u.repo.FindTeamByHackerID(ctx, id)
		if err == nil {
			return &entities.MemberConflictError{HackerID: id, Err: entities.ErrMemberOnTeam}
		}
		if !errors.Is(err, entities.ErrTeamNotFound) {
			return err
		}
	}

	return nil
}

// EnsureSpace verifies the named team exists and is below capacity. Advisory:
// JoinTeam re-checks capacity at write time, so a team filling up between this
// check and the join is still rejected there.
func (u *Usecase) EnsureSpace(ctx context.Context, teamName string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamName == "" {
		return fmt.Errorf("%w: team_name is required", entities.ErrInvalidArgument)
	}

	size, err := u.repo.TeamSizeByName(ctx, teamName)
	if err != nil {
		return err
	}
	if size >= u.maxTeamSize {
		return &entities.TeamFullError{Size: size}
	}

	return nil
}

// JoinTeam moves the hacker behind accountID into the named team, evicting
// them from any previous team. Joining the team the hacker is already on is a
// no-op success.
//
// The attach runs before the detach: if the receiving team rejects the hacker
// (full, or the reciprocal update fails) the previous membership is untouched,
// so the hacker is never left detached from both teams. A previous team whose
// sole member was the moved hacker is deleted rather than left empty.
func (u *Usecase) JoinTeam(ctx context.Context, accountID, teamName string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if accountID == "" || teamName == "" {
		return nil, fmt.Errorf("%w: account_id and team_name are required", entities.ErrInvalidArgument)
	}

	hacker, err := u.repo.FindHackerByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	receiving, err := u.repo.FindTeamByName(ctx, teamName)
	if err != nil {
		return nil, err
	}

	previous, err := u.repo.FindTeamByHackerID(ctx, hacker.ID)
	if err != nil && !errors.Is(err, entities.ErrTeamNotFound) {
		return nil, err
	}

	if previous != nil && previous.ID == receiving.ID {
		u.log.Infow("join is a no-op, hacker already on team", "hacker_id", hacker.ID, "team", teamName)
		return receiving, nil
	}

	updated, err := u.repo.AddMember(ctx, receiving.ID, hacker.ID, u.maxTeamSize)
	if err != nil {
		return nil, err
	}

	if previous != nil {
		if previous.Size() == 1 {
			err = u.repo.RemoveTeam(ctx, previous.ID)
		} else {
			err = u.repo.RemoveMember(ctx, previous.ID, hacker.ID)
		}
		if err != nil {
			u.log.Errorw("failed to detach hacker from previous team",
				"error", err, "hacker_id", hacker.ID, "previous_team_id", previous.ID)
			return nil, fmt.Errorf("%w: hacker %s", entities.ErrMembershipUpdate, hacker.ID)
		}
	}

	u.log.Infow("hacker joined team", "hacker_id", hacker.ID, "team", teamName)
	u.notifier.Notify(ctx, accountID, "Team joined", fmt.Sprintf("You are now on team %s.", teamName))
	return updated, nil
}
