package domain

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"hacker-api/internal/entities"
	"hacker-api/internal/repository"

	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory directory pair mirroring the backend semantics:
// membership lives on the team's member list, the hacker's TeamID mirrors it,
// and AddMember enforces the capacity guard at write time.
type fakeRepo struct {
	hackers map[string]*entities.Hacker
	teams   map[string]*entities.Team
}

var _ repository.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		hackers: make(map[string]*entities.Hacker),
		teams:   make(map[string]*entities.Team),
	}
}

func (f *fakeRepo) OnStart(_ context.Context) error { return nil }
func (f *fakeRepo) OnStop(_ context.Context) error  { return nil }

func (f *fakeRepo) CreateHacker(_ context.Context, hacker entities.Hacker) (*entities.Hacker, error) {
	h := hacker
	f.hackers[h.ID] = &h
	return &h, nil
}

func (f *fakeRepo) FindHackerByAccountID(_ context.Context, accountID string) (*entities.Hacker, error) {
	for _, h := range f.hackers {
		if h.AccountID == accountID {
			cp := *h
			return &cp, nil
		}
	}
	return nil, entities.ErrHackerNotFound
}

func (f *fakeRepo) FindHackerByID(_ context.Context, id string) (*entities.Hacker, error) {
	h, ok := f.hackers[id]
	if !ok {
		return nil, entities.ErrHackerNotFound
	}
	cp := *h
	return &cp, nil
}

func (f *fakeRepo) UpdateHackerStatus(_ context.Context, id string, status entities.HackerStatus) (*entities.Hacker, error) {
	h, ok := f.hackers[id]
	if !ok {
		return nil, entities.ErrHackerNotFound
	}
	h.Status = status
	cp := *h
	return &cp, nil
}

func (f *fakeRepo) CreateTeam(_ context.Context, team entities.Team) (*entities.Team, error) {
	for _, t := range f.teams {
		if t.Name == team.Name {
			return nil, entities.ErrTeamExists
		}
	}
	cp := team
	cp.Members = append([]string(nil), team.Members...)
	f.teams[cp.ID] = &cp
	for _, m := range cp.Members {
		h, ok := f.hackers[m]
		if !ok {
			return nil, fmt.Errorf("%w: hacker %s", entities.ErrMembershipUpdate, m)
		}
		h.TeamID = cp.ID
	}
	out := cp
	return &out, nil
}

func (f *fakeRepo) FindTeamByID(_ context.Context, id string) (*entities.Team, error) {
	t, ok := f.teams[id]
	if !ok {
		return nil, entities.ErrTeamNotFound
	}
	cp := *t
	cp.Members = append([]string(nil), t.Members...)
	return &cp, nil
}

func (f *fakeRepo) FindTeamByName(_ context.Context, name string) (*entities.Team, error) {
	for id, t := range f.teams {
		if t.Name == name {
			return f.FindTeamByID(context.Background(), id)
		}
	}
	return nil, entities.ErrTeamNotFound
}

func (f *fakeRepo) FindTeamByHackerID(_ context.Context, hackerID string) (*entities.Team, error) {
	for id, t := range f.teams {
		for _, m := range t.Members {
			if m == hackerID {
				return f.FindTeamByID(context.Background(), id)
			}
		}
	}
	return nil, entities.ErrTeamNotFound
}

func (f *fakeRepo) TeamSizeByName(_ context.Context, name string) (int, error) {
	for _, t := range f.teams {
		if t.Name == name {
			return len(t.Members), nil
		}
	}
	return 0, entities.ErrTeamNotFound
}

func (f *fakeRepo) AddMember(_ context.Context, teamID, hackerID string, maxSize int) (*entities.Team, error) {
	t, ok := f.teams[teamID]
	if !ok {
		return nil, entities.ErrTeamNotFound
	}
	if len(t.Members) >= maxSize {
		return nil, &entities.TeamFullError{Size: len(t.Members)}
	}
	h, ok := f.hackers[hackerID]
	if !ok {
		return nil, fmt.Errorf("%w: hacker %s", entities.ErrMembershipUpdate, hackerID)
	}
	for _, m := range t.Members {
		if m == hackerID {
			return f.FindTeamByID(context.Background(), teamID)
		}
	}
	t.Members = append(t.Members, hackerID)
	h.TeamID = teamID
	return f.FindTeamByID(context.Background(), teamID)
}

func (f *fakeRepo) RemoveMember(_ context.Context, teamID, hackerID string) error {
	t, ok := f.teams[teamID]
	if !ok {
		return entities.ErrTeamNotFound
	}
	kept := t.Members[:0]
	for _, m := range t.Members {
		if m != hackerID {
			kept = append(kept, m)
		}
	}
	t.Members = kept
	if h, ok := f.hackers[hackerID]; ok && h.TeamID == teamID {
		h.TeamID = ""
	}
	return nil
}

func (f *fakeRepo) RemoveTeam(_ context.Context, teamID string) error {
	t, ok := f.teams[teamID]
	if !ok {
		return entities.ErrTeamNotFound
	}
	for _, m := range t.Members {
		if h, ok := f.hackers[m]; ok && h.TeamID == teamID {
			h.TeamID = ""
		}
	}
	delete(f.teams, teamID)
	return nil
}

func (f *fakeRepo) CreateRole(_ context.Context, role entities.Role) (*entities.Role, error) {
	return &role, nil
}

func (f *fakeRepo) RoleByName(_ context.Context, _ string) (*entities.Role, error) {
	return nil, entities.ErrRoleNotFound
}

func (f *fakeRepo) Roles(_ context.Context) ([]entities.Role, error) { return nil, nil }

func (f *fakeRepo) AddRoutes(_ context.Context, _ string, _ []entities.Route) (*entities.Role, error) {
	return nil, entities.ErrRoleNotFound
}

func (f *fakeRepo) RemoveRoutes(_ context.Context, _ string, _ []entities.Route) (*entities.Role, error) {
	return nil, entities.ErrRoleNotFound
}

// checkGlobalConsistency asserts the cross-entity invariants: unique member
// lists, bidirectional hacker/team references, and no empty teams.
func checkGlobalConsistency(t *testing.T, repo *fakeRepo) {
	t.Helper()

	for id, team := range repo.teams {
		require.NotEmpty(t, team.Members, "team %s persisted with no members", team.Name)
		require.LessOrEqual(t, len(team.Members), testMaxTeamSize, "team %s over capacity", team.Name)

		seen := make(map[string]struct{}, len(team.Members))
		for _, m := range team.Members {
			_, dup := seen[m]
			require.False(t, dup, "team %s lists member %s twice", team.Name, m)
			seen[m] = struct{}{}

			h, ok := repo.hackers[m]
			require.True(t, ok, "team %s lists unknown hacker %s", team.Name, m)
			require.Equal(t, id, h.TeamID, "hacker %s team reference diverged", m)
		}
	}

	for id, h := range repo.hackers {
		if !h.OnTeam() {
			continue
		}
		team, ok := repo.teams[h.TeamID]
		require.True(t, ok, "hacker %s references deleted team %s", id, h.TeamID)
		require.True(t, team.HasMember(id), "team %s does not list hacker %s back", team.Name, id)
	}
}

func TestJoinTeam_RandomizedTransfersKeepConsistency(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUsecase(repo)
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))

	hackerIDs := make([]string, 0, 10)
	accountIDs := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		id := fmt.Sprintf("h%d", i)
		acc := fmt.Sprintf("acc-%d", i)
		_, err := repo.CreateHacker(ctx, entities.Hacker{ID: id, AccountID: acc, Status: entities.StatusAccepted})
		require.NoError(t, err)
		hackerIDs = append(hackerIDs, id)
		accountIDs = append(accountIDs, acc)
	}

	teamNames := []string{"alpha", "beta", "gamma"}
	for i, name := range teamNames {
		_, err := uc.CreateTeam(ctx, entities.Team{
			ID:      fmt.Sprintf("t%d", i),
			Name:    name,
			Members: []string{hackerIDs[i]},
		})
		require.NoError(t, err)
	}

	for i := 0; i < 300; i++ {
		acc := accountIDs[rng.Intn(len(accountIDs))]
		name := teamNames[rng.Intn(len(teamNames))]

		_, err := uc.JoinTeam(ctx, acc, name)
		if err != nil {
			// Teams fill up and sole-member teams vanish as transfers run;
			// both are expected outcomes, anything else is a bug.
			ok := errors.Is(err, entities.ErrTeamFull) || errors.Is(err, entities.ErrTeamNotFound)
			require.True(t, ok, "unexpected transfer error: %v", err)
		}

		checkGlobalConsistency(t, repo)
	}
}
