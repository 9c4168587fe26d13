package domain

import (
	"context"
	"testing"

	"hacker-api/internal/entities"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEnsureUniqueHackerIDs_DuplicateShortCircuits(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("FindTeamByHackerID", mock.Anything, "h1").Return(nil, entities.ErrTeamNotFound)
	repo.On("FindTeamByHackerID", mock.Anything, "h2").Return(nil, entities.ErrTeamNotFound)

	err := uc.EnsureUniqueHackerIDs(context.Background(), []string{"h1", "h2", "h1", "h3"})

	var conflict *entities.MemberConflictError
	require.ErrorAs(t, err, &conflict)
	require.ErrorIs(t, err, entities.ErrDuplicateMember)
	require.Equal(t, "h1", conflict.HackerID)

	// The duplicate is caught before its directory lookup, and nothing after
	// it is scanned.
	repo.AssertNumberOfCalls(t, "FindTeamByHackerID", 2)
	repo.AssertNotCalled(t, "FindTeamByHackerID", mock.Anything, "h3")
}

func TestEnsureUniqueHackerIDs_MemberOnTeam(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("FindTeamByHackerID", mock.Anything, "h1").Return(nil, entities.ErrTeamNotFound)
	repo.On("FindTeamByHackerID", mock.Anything, "h2").
		Return(&entities.Team{ID: "t9", Name: "occupied", Members: []string{"h2"}}, nil)

	err := uc.EnsureUniqueHackerIDs(context.Background(), []string{"h1", "h2", "h3"})

	var conflict *entities.MemberConflictError
	require.ErrorAs(t, err, &conflict)
	require.ErrorIs(t, err, entities.ErrMemberOnTeam)
	require.Equal(t, "h2", conflict.HackerID)
	repo.AssertNotCalled(t, "FindTeamByHackerID", mock.Anything, "h3")
}

func TestEnsureUniqueHackerIDs_AllClear(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	for _, id := range []string{"h1", "h2", "h3"} {
		repo.On("FindTeamByHackerID", mock.Anything, id).Return(nil, entities.ErrTeamNotFound)
	}

	require.NoError(t, uc.EnsureUniqueHackerIDs(context.Background(), []string{"h1", "h2", "h3"}))
	repo.AssertExpectations(t)
}

func TestEnsureSpace_GhostTeam(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("TeamSizeByName", mock.Anything, "ghost-team").Return(0, entities.ErrTeamNotFound)

	err := uc.EnsureSpace(context.Background(), "ghost-team")
	require.ErrorIs(t, err, entities.ErrTeamNotFound)
}

func TestEnsureSpace_FullTeam(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("TeamSizeByName", mock.Anything, "full-team").Return(testMaxTeamSize, nil)

	err := uc.EnsureSpace(context.Background(), "full-team")

	var fullErr *entities.TeamFullError
	require.ErrorAs(t, err, &fullErr)
	require.Equal(t, testMaxTeamSize, fullErr.Size)
}

func TestEnsureSpace_HasRoom(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("TeamSizeByName", mock.Anything, "team-a").Return(2, nil)

	require.NoError(t, uc.EnsureSpace(context.Background(), "team-a"))
}

func TestJoinTeam_UnaffiliatedHacker(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("FindHackerByAccountID", mock.Anything, "acc-h").
		Return(&entities.Hacker{ID: "H", AccountID: "acc-h"}, nil)
	repo.On("FindTeamByName", mock.Anything, "team-t").
		Return(&entities.Team{ID: "T", Name: "team-t", Members: []string{"A", "B"}}, nil)
	repo.On("FindTeamByHackerID", mock.Anything, "H").Return(nil, entities.ErrTeamNotFound)
	repo.On("AddMember", mock.Anything, "T", "H", testMaxTeamSize).
		Return(&entities.Team{ID: "T", Name: "team-t", Members: []string{"A", "B", "H"}}, nil)

	team, err := uc.JoinTeam(context.Background(), "acc-h", "team-t")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "H"}, team.Members)

	repo.AssertNotCalled(t, "RemoveTeam", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "RemoveMember", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestJoinTeam_SoleMemberPreviousTeamDeleted(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("FindHackerByAccountID", mock.Anything, "acc-h").
		Return(&entities.Hacker{ID: "H", AccountID: "acc-h", TeamID: "P"}, nil)
	repo.On("FindTeamByName", mock.Anything, "team-t").
		Return(&entities.Team{ID: "T", Name: "team-t", Members: []string{"A"}}, nil)
	repo.On("FindTeamByHackerID", mock.Anything, "H").
		Return(&entities.Team{ID: "P", Name: "team-p", Members: []string{"H"}}, nil)
	repo.On("AddMember", mock.Anything, "T", "H", testMaxTeamSize).
		Return(&entities.Team{ID: "T", Name: "team-t", Members: []string{"A", "H"}}, nil)
	repo.On("RemoveTeam", mock.Anything, "P").Return(nil)

	team, err := uc.JoinTeam(context.Background(), "acc-h", "team-t")
	require.NoError(t, err)
	require.Contains(t, team.Members, "H")

	repo.AssertCalled(t, "RemoveTeam", mock.Anything, "P")
	repo.AssertNotCalled(t, "RemoveMember", mock.Anything, mock.Anything, mock.Anything)
}

func TestJoinTeam_PreviousTeamShrinks(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("FindHackerByAccountID", mock.Anything, "acc-h").
		Return(&entities.Hacker{ID: "H", AccountID: "acc-h", TeamID: "P"}, nil)
	repo.On("FindTeamByName", mock.Anything, "team-t").
		Return(&entities.Team{ID: "T", Name: "team-t", Members: []string{"A"}}, nil)
	repo.On("FindTeamByHackerID", mock.Anything, "H").
		Return(&entities.Team{ID: "P", Name: "team-p", Members: []string{"H", "X"}}, nil)
	repo.On("AddMember", mock.Anything, "T", "H", testMaxTeamSize).
		Return(&entities.Team{ID: "T", Name: "team-t", Members: []string{"A", "H"}}, nil)
	repo.On("RemoveMember", mock.Anything, "P", "H").Return(nil)

	_, err := uc.JoinTeam(context.Background(), "acc-h", "team-t")
	require.NoError(t, err)

	repo.AssertCalled(t, "RemoveMember", mock.Anything, "P", "H")
	repo.AssertNotCalled(t, "RemoveTeam", mock.Anything, mock.Anything)
}

func TestJoinTeam_RejoinOwnTeamIsNoop(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	current := &entities.Team{ID: "T", Name: "team-t", Members: []string{"H", "X"}}
	repo.On("FindHackerByAccountID", mock.Anything, "acc-h").
		Return(&entities.Hacker{ID: "H", AccountID: "acc-h", TeamID: "T"}, nil)
	repo.On("FindTeamByName", mock.Anything, "team-t").Return(current, nil)
	repo.On("FindTeamByHackerID", mock.Anything, "H").Return(current, nil)

	team, err := uc.JoinTeam(context.Background(), "acc-h", "team-t")
	require.NoError(t, err)
	require.Equal(t, current, team)

	repo.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "RemoveMember", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "RemoveTeam", mock.Anything, mock.Anything)
}

func TestJoinTeam_HackerNotFound(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("FindHackerByAccountID", mock.Anything, "acc-h").Return(nil, entities.ErrHackerNotFound)

	_, err := uc.JoinTeam(context.Background(), "acc-h", "team-t")
	require.ErrorIs(t, err, entities.ErrHackerNotFound)
	repo.AssertNotCalled(t, "FindTeamByName", mock.Anything, mock.Anything)
}

func TestJoinTeam_ReceivingTeamNotFound(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("FindHackerByAccountID", mock.Anything, "acc-h").
		Return(&entities.Hacker{ID: "H", AccountID: "acc-h"}, nil)
	repo.On("FindTeamByName", mock.Anything, "ghost-team").Return(nil, entities.ErrTeamNotFound)

	_, err := uc.JoinTeam(context.Background(), "acc-h", "ghost-team")
	require.ErrorIs(t, err, entities.ErrTeamNotFound)
	repo.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestJoinTeam_AttachFailureLeavesPreviousTeamIntact(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("FindHackerByAccountID", mock.Anything, "acc-h").
		Return(&entities.Hacker{ID: "H", AccountID: "acc-h", TeamID: "P"}, nil)
	repo.On("FindTeamByName", mock.Anything, "team-t").
		Return(&entities.Team{ID: "T", Name: "team-t", Members: []string{"A", "B", "C", "D"}}, nil)
	repo.On("FindTeamByHackerID", mock.Anything, "H").
		Return(&entities.Team{ID: "P", Name: "team-p", Members: []string{"H"}}, nil)
	repo.On("AddMember", mock.Anything, "T", "H", testMaxTeamSize).
		Return(nil, &entities.TeamFullError{Size: 4})

	_, err := uc.JoinTeam(context.Background(), "acc-h", "team-t")

	var fullErr *entities.TeamFullError
	require.ErrorAs(t, err, &fullErr)
	require.Equal(t, 4, fullErr.Size)

	// The hacker stays on their previous team when the attach is rejected.
	repo.AssertNotCalled(t, "RemoveTeam", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "RemoveMember", mock.Anything, mock.Anything, mock.Anything)
}

func TestJoinTeam_DetachFailureIsInternal(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("FindHackerByAccountID", mock.Anything, "acc-h").
		Return(&entities.Hacker{ID: "H", AccountID: "acc-h", TeamID: "P"}, nil)
	repo.On("FindTeamByName", mock.Anything, "team-t").
		Return(&entities.Team{ID: "T", Name: "team-t", Members: []string{"A"}}, nil)
	repo.On("FindTeamByHackerID", mock.Anything, "H").
		Return(&entities.Team{ID: "P", Name: "team-p", Members: []string{"H"}}, nil)
	repo.On("AddMember", mock.Anything, "T", "H", testMaxTeamSize).
		Return(&entities.Team{ID: "T", Name: "team-t", Members: []string{"A", "H"}}, nil)
	repo.On("RemoveTeam", mock.Anything, "P").Return(entities.ErrTeamNotFound)

	_, err := uc.JoinTeam(context.Background(), "acc-h", "team-t")
	require.ErrorIs(t, err, entities.ErrMembershipUpdate)
}
