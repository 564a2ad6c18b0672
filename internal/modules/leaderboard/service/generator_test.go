package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"anoa.com/communityhub/internal/entity"
	"anoa.com/communityhub/pkg/apperror"
	"anoa.com/communityhub/pkg/period"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLeaderboardRepo mirrors the upsert semantics of the real repository:
// one snapshot per (scope, period, start, end) key, one active per
// (scope, period).
type fakeLeaderboardRepo struct {
	snapshots []*entity.Leaderboard
	upserts   int
}

func (r *fakeLeaderboardRepo) UpsertSnapshot(ctx context.Context, snapshot *entity.Leaderboard) error {
	r.upserts++
	if snapshot.ID == uuid.Nil {
		snapshot.ID = uuid.New()
	}
	snapshot.IsActive = true

	kept := r.snapshots[:0]
	for _, s := range r.snapshots {
		if s.Scope == snapshot.Scope && s.Period == snapshot.Period {
			if s.PeriodStart.Equal(snapshot.PeriodStart) && s.PeriodEnd.Equal(snapshot.PeriodEnd) {
				continue // replaced wholesale
			}
			s.IsActive = false
		}
		kept = append(kept, s)
	}
	copied := *snapshot
	r.snapshots = append(kept, &copied)
	return nil
}

func (r *fakeLeaderboardRepo) FindActive(ctx context.Context, scope entity.Scope, p period.Period) (*entity.Leaderboard, error) {
	var latest *entity.Leaderboard
	for _, s := range r.snapshots {
		if s.Scope != scope || s.Period != p || !s.IsActive {
			continue
		}
		if latest == nil || s.GeneratedAt.After(latest.GeneratedAt) {
			latest = s
		}
	}
	if latest == nil {
		return nil, nil
	}
	copied := *latest
	return &copied, nil
}

type fakeUserRepo struct {
	users []entity.User
	calls int
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	for i := range r.users {
		if r.users[i].ID.String() == id {
			return &r.users[i], nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", id, apperror.ErrNotFound)
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	for i := range r.users {
		if r.users[i].Username == username {
			return &r.users[i], nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", username, apperror.ErrNotFound)
}

func (r *fakeUserRepo) FindAllActive(ctx context.Context) ([]entity.User, error) {
	r.calls++
	var out []entity.User
	for _, u := range r.users {
		if u.IsActive {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

// statsCounter serves a fixed per-user activity breakdown.
type statsCounter struct {
	stats map[uuid.UUID]entity.EntryStats
	err   error
}

func (c *statsCounter) Count(ctx context.Context, userID uuid.UUID, metric entity.MetricType, timeframe period.Period) (int, error) {
	return c.CountInRange(ctx, userID, metric, time.Time{}, time.Time{})
}

func (c *statsCounter) CountInRange(ctx context.Context, userID uuid.UUID, metric entity.MetricType, start, end time.Time) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	s := c.stats[userID]
	switch metric {
	case entity.MetricArticleCount:
		return s.Articles, nil
	case entity.MetricForumPosts:
		return s.ForumPosts, nil
	case entity.MetricForumReplies:
		return s.ForumReplies, nil
	case entity.MetricEventAttendance:
		return s.EventsAttended, nil
	case entity.MetricEventCreation:
		return s.EventsCreated, nil
	case entity.MetricLikesReceived:
		return s.LikesReceived, nil
	}
	return 0, nil
}

func activeUser(points int) entity.User {
	return entity.User{
		ID:       uuid.New(),
		Points:   points,
		Level:    1,
		IsActive: true,
	}
}

func newTestService(users *fakeUserRepo, counter *statsCounter) (*fakeLeaderboardRepo, LeaderboardService) {
	repo := &fakeLeaderboardRepo{}
	if counter == nil {
		counter = &statsCounter{}
	}
	return repo, NewLeaderboardService(repo, users, counter, nil, time.Minute)
}

func TestGenerateRanksByPointsWithStableTieBreak(t *testing.T) {
	low := activeUser(50)
	tiedA := activeUser(150)
	tiedB := activeUser(150)
	users := &fakeUserRepo{users: []entity.User{low, tiedA, tiedB}}
	_, svc := newTestService(users, nil)

	snapshot, err := svc.Generate(context.Background(), entity.ScopeOverall, period.AllTime)
	require.NoError(t, err)
	require.Len(t, snapshot.Entries, 3)
	assert.Equal(t, 3, snapshot.TotalParticipants)

	// Dense ranks 1..3 even with a tie; the tie resolves by user id.
	tied := []uuid.UUID{tiedA.ID, tiedB.ID}
	sort.Slice(tied, func(i, j int) bool { return tied[i].String() < tied[j].String() })

	assert.Equal(t, 1, snapshot.Entries[0].Rank)
	assert.Equal(t, tied[0], snapshot.Entries[0].UserID)
	assert.Equal(t, 2, snapshot.Entries[1].Rank)
	assert.Equal(t, tied[1], snapshot.Entries[1].UserID)
	assert.Equal(t, 3, snapshot.Entries[2].Rank)
	assert.Equal(t, low.ID, snapshot.Entries[2].UserID)
}

func TestGenerateOverallKeepsZeroPointUsers(t *testing.T) {
	scored := activeUser(10)
	idle := activeUser(0)
	users := &fakeUserRepo{users: []entity.User{scored, idle}}
	_, svc := newTestService(users, nil)

	snapshot, err := svc.Generate(context.Background(), entity.ScopeOverall, period.AllTime)
	require.NoError(t, err)
	require.Len(t, snapshot.Entries, 2)
	assert.Equal(t, idle.ID, snapshot.Entries[1].UserID)
	assert.Zero(t, snapshot.Entries[1].Points)
}

func TestGenerateScopedBoardsDropZeroScores(t *testing.T) {
	author := activeUser(100)
	lurker := activeUser(100)
	users := &fakeUserRepo{users: []entity.User{author, lurker}}
	counter := &statsCounter{stats: map[uuid.UUID]entity.EntryStats{
		author.ID: {Articles: 3},
	}}
	_, svc := newTestService(users, counter)

	snapshot, err := svc.Generate(context.Background(), entity.ScopeArticles, period.Monthly)
	require.NoError(t, err)
	require.Len(t, snapshot.Entries, 1)
	assert.Equal(t, author.ID, snapshot.Entries[0].UserID)
	assert.Equal(t, WeightArticle*3, snapshot.Entries[0].Points)
	assert.Equal(t, 1, snapshot.TotalParticipants)
}

func TestGenerateScopeWeights(t *testing.T) {
	user := activeUser(999)
	stats := entity.EntryStats{
		Articles: 3, ForumPosts: 2, ForumReplies: 3,
		EventsAttended: 1, EventsCreated: 1, LikesReceived: 5,
	}
	users := &fakeUserRepo{users: []entity.User{user}}
	counter := &statsCounter{stats: map[uuid.UUID]entity.EntryStats{user.ID: stats}}
	_, svc := newTestService(users, counter)
	ctx := context.Background()

	cases := []struct {
		scope entity.Scope
		want  int
	}{
		{entity.ScopeArticles, WeightArticle * 3},
		{entity.ScopeForums, WeightForumPost*2 + WeightForumReply*3},
		{entity.ScopeEvents, WeightEventAttend*1 + WeightEventCreate*1},
		{entity.ScopeEngagement, WeightEngagementLike * 5},
		{entity.ScopeOverall, 999},
	}
	for _, tc := range cases {
		snapshot, err := svc.Generate(ctx, tc.scope, period.Monthly)
		require.NoError(t, err, "scope %s", tc.scope)
		require.Len(t, snapshot.Entries, 1, "scope %s", tc.scope)
		assert.Equal(t, tc.want, snapshot.Entries[0].Points, "scope %s", tc.scope)
		assert.Equal(t, stats, snapshot.Entries[0].Stats, "scope %s", tc.scope)
	}
}

func TestGenerateRejectsCustomAndUnknownScopes(t *testing.T) {
	users := &fakeUserRepo{}
	_, svc := newTestService(users, nil)
	ctx := context.Background()

	_, err := svc.Generate(ctx, entity.ScopeCustom, period.AllTime)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	_, err = svc.Generate(ctx, "popularity", period.AllTime)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	assert.Zero(t, users.calls, "invalid scopes must fail before touching users")
}

func TestGenerateIsDeterministicOverUnchangedData(t *testing.T) {
	users := &fakeUserRepo{users: []entity.User{activeUser(30), activeUser(20), activeUser(30)}}
	repo, svc := newTestService(users, nil)
	ctx := context.Background()

	first, err := svc.Generate(ctx, entity.ScopeOverall, period.AllTime)
	require.NoError(t, err)
	second, err := svc.Generate(ctx, entity.ScopeOverall, period.AllTime)
	require.NoError(t, err)

	require.Equal(t, len(first.Entries), len(second.Entries))
	for i := range first.Entries {
		assert.Equal(t, first.Entries[i].UserID, second.Entries[i].UserID, "entry %d", i)
		assert.Equal(t, first.Entries[i].Rank, second.Entries[i].Rank, "entry %d", i)
	}
	assert.Equal(t, 2, repo.upserts)

	active, err := repo.FindActive(ctx, entity.ScopeOverall, period.AllTime)
	require.NoError(t, err)
	require.NotNil(t, active)
}

func TestGenerateAbortsWhenCountingFails(t *testing.T) {
	users := &fakeUserRepo{users: []entity.User{activeUser(10)}}
	repo, svc := newTestService(users, &statsCounter{err: errors.New("store unavailable")})

	_, err := svc.Generate(context.Background(), entity.ScopeOverall, period.AllTime)
	require.Error(t, err)
	assert.Zero(t, repo.upserts, "a failed generation must not persist a partial snapshot")
}
