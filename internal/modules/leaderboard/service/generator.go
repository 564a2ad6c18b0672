package leaderboard

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"anoa.com/communityhub/internal/entity"
	"anoa.com/communityhub/pkg/apperror"
	"anoa.com/communityhub/pkg/period"
	"github.com/google/uuid"
)

func (s *leaderboardService) Generate(ctx context.Context, scope entity.Scope, p period.Period) (*entity.Leaderboard, error) {
	if !scope.Valid() {
		return nil, fmt.Errorf("%w: unknown scope %q", apperror.ErrInvalidInput, scope)
	}
	if scope == entity.ScopeCustom {
		// No custom scorer is registered.
		return nil, fmt.Errorf("%w: scope %q has no scorer", apperror.ErrInvalidInput, scope)
	}

	now := time.Now()
	start, end, err := p.Range(now)
	if err != nil {
		return nil, err
	}

	users, err := s.users.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]entity.LeaderboardEntry, 0, len(users))
	for i := range users {
		user := users[i]

		stats, err := s.gatherStats(ctx, user.ID, start, end)
		if err != nil {
			// A wrong zero would silently misrank the user; abort instead.
			return nil, fmt.Errorf("stats for user %s: %w", user.ID, err)
		}

		score := scoreFor(scope, &user, stats)
		if score <= 0 && scope != entity.ScopeOverall {
			continue
		}

		badges := user.Badges
		if badges == nil {
			badges = []string{}
		}
		entries = append(entries, entity.LeaderboardEntry{
			UserID: user.ID,
			Points: score,
			Level:  user.Level,
			Stats:  *stats,
			Badges: badges,
		})
	}

	// Score descending; equal scores ordered by user id ascending so that
	// repeated generations over unchanged data rank identically.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].UserID.String() < entries[j].UserID.String()
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	snapshot := &entity.Leaderboard{
		Scope:             scope,
		Period:            p,
		PeriodStart:       start,
		PeriodEnd:         end,
		Entries:           entries,
		TotalParticipants: len(entries),
		IsActive:          true,
		GeneratedAt:       now,
	}

	if err := s.repo.UpsertSnapshot(ctx, snapshot); err != nil {
		return nil, err
	}

	// Reload so entries carry their user rows, then refresh the cache.
	stored, err := s.repo.FindActive(ctx, scope, p)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, stored)

	log.Printf("leaderboard %s/%s generated: %d participants", scope, p, snapshot.TotalParticipants)
	return stored, nil
}

// gatherStats computes the per-metric breakdown for one user. All metrics use
// the period window except likes, which aggregate over the user's published
// articles regardless of window.
func (s *leaderboardService) gatherStats(ctx context.Context, userID uuid.UUID, start, end time.Time) (*entity.EntryStats, error) {
	var stats entity.EntryStats

	for _, m := range []struct {
		metric entity.MetricType
		target *int
	}{
		{entity.MetricArticleCount, &stats.Articles},
		{entity.MetricForumPosts, &stats.ForumPosts},
		{entity.MetricForumReplies, &stats.ForumReplies},
		{entity.MetricEventAttendance, &stats.EventsAttended},
		{entity.MetricEventCreation, &stats.EventsCreated},
		{entity.MetricLikesReceived, &stats.LikesReceived},
	} {
		n, err := s.counter.CountInRange(ctx, userID, m.metric, start, end)
		if err != nil {
			return nil, err
		}
		*m.target = n
	}

	return &stats, nil
}

func scoreFor(scope entity.Scope, user *entity.User, stats *entity.EntryStats) int {
	switch scope {
	case entity.ScopeOverall:
		// Cumulative all-time points, whatever the period argument.
		return user.Points
	case entity.ScopeArticles:
		return WeightArticle * stats.Articles
	case entity.ScopeForums:
		return WeightForumPost*stats.ForumPosts + WeightForumReply*stats.ForumReplies
	case entity.ScopeEvents:
		return WeightEventAttend*stats.EventsAttended + WeightEventCreate*stats.EventsCreated
	case entity.ScopeEngagement:
		return WeightEngagementLike * stats.LikesReceived
	}
	return 0
}
