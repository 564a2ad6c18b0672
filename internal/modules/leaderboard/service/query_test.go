package leaderboard

import (
	"context"
	"testing"
	"time"

	"anoa.com/communityhub/internal/entity"
	"anoa.com/communityhub/pkg/apperror"
	"anoa.com/communityhub/pkg/period"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedSnapshot(n int) *entity.Leaderboard {
	entries := make([]entity.LeaderboardEntry, n)
	for i := range entries {
		entries[i] = entity.LeaderboardEntry{
			UserID: uuid.New(),
			Points: (n - i) * 10,
			Rank:   i + 1,
		}
	}
	return &entity.Leaderboard{
		ID:                uuid.New(),
		Scope:             entity.ScopeOverall,
		Period:            period.AllTime,
		Entries:           entries,
		TotalParticipants: n,
		IsActive:          true,
		GeneratedAt:       time.Now(),
	}
}

func TestGetCurrentGeneratesOnFirstAccess(t *testing.T) {
	users := &fakeUserRepo{users: []entity.User{activeUser(40), activeUser(10)}}
	repo, svc := newTestService(users, nil)

	snapshot, err := svc.GetCurrent(context.Background(), entity.ScopeOverall, period.Weekly)
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Len(t, snapshot.Entries, 2)
	assert.Equal(t, 1, repo.upserts, "a miss must materialize a snapshot")
	assert.Equal(t, 1, users.calls)
}

func TestGetCurrentReusesExistingSnapshot(t *testing.T) {
	users := &fakeUserRepo{users: []entity.User{activeUser(40)}}
	repo, svc := newTestService(users, nil)

	seeded := rankedSnapshot(3)
	require.NoError(t, repo.UpsertSnapshot(context.Background(), seeded))
	repo.upserts = 0

	snapshot, err := svc.GetCurrent(context.Background(), entity.ScopeOverall, period.AllTime)
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, seeded.ID, snapshot.ID)
	assert.Zero(t, repo.upserts, "an existing snapshot must not be regenerated")
	assert.Zero(t, users.calls)
}

func TestGetCurrentValidatesInput(t *testing.T) {
	_, svc := newTestService(&fakeUserRepo{}, nil)
	ctx := context.Background()

	_, err := svc.GetCurrent(ctx, "popularity", period.AllTime)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	_, err = svc.GetCurrent(ctx, entity.ScopeOverall, "fortnightly")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestGetUserRank(t *testing.T) {
	_, svc := newTestService(&fakeUserRepo{}, nil)
	snapshot := rankedSnapshot(5)

	rank, ok := svc.GetUserRank(snapshot, snapshot.Entries[2].UserID)
	assert.True(t, ok)
	assert.Equal(t, 3, rank)

	_, ok = svc.GetUserRank(snapshot, uuid.New())
	assert.False(t, ok, "a user absent from the snapshot has no rank")

	_, ok = svc.GetUserRank(nil, uuid.New())
	assert.False(t, ok)
}

func TestGetUsersAroundRank(t *testing.T) {
	_, svc := newTestService(&fakeUserRepo{}, nil)
	snapshot := rankedSnapshot(10)

	ranksOf := func(entries []entity.LeaderboardEntry) []int {
		out := make([]int, len(entries))
		for i, e := range entries {
			out[i] = e.Rank
		}
		return out
	}

	// Middle of the board: full window either side.
	assert.Equal(t, []int{3, 4, 5, 6, 7}, ranksOf(svc.GetUsersAroundRank(snapshot, 5, 2)))

	// Clamped at the top and at the bottom.
	assert.Equal(t, []int{1, 2, 3}, ranksOf(svc.GetUsersAroundRank(snapshot, 1, 2)))
	assert.Equal(t, []int{8, 9, 10}, ranksOf(svc.GetUsersAroundRank(snapshot, 10, 2)))

	// Radius zero is just the rank itself.
	assert.Equal(t, []int{4}, ranksOf(svc.GetUsersAroundRank(snapshot, 4, 0)))

	assert.Nil(t, svc.GetUsersAroundRank(nil, 5, 2))
	assert.Nil(t, svc.GetUsersAroundRank(snapshot, 5, -1))
	assert.Nil(t, svc.GetUsersAroundRank(snapshot, 42, 2))
}
