package leaderboard

import (
	"context"
	"fmt"

	"anoa.com/communityhub/internal/entity"
	"anoa.com/communityhub/pkg/apperror"
	"anoa.com/communityhub/pkg/period"
	"github.com/google/uuid"
)

func (s *leaderboardService) GetCurrent(ctx context.Context, scope entity.Scope, p period.Period) (*entity.Leaderboard, error) {
	if !scope.Valid() {
		return nil, fmt.Errorf("%w: unknown scope %q", apperror.ErrInvalidInput, scope)
	}
	if !p.Valid() {
		return nil, fmt.Errorf("%w: unknown period %q", apperror.ErrInvalidInput, p)
	}

	if cached := s.cache.Get(ctx, scope, p); cached != nil {
		return cached, nil
	}

	snapshot, err := s.repo.FindActive(ctx, scope, p)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		// Lazy materialization on first access.
		return s.Generate(ctx, scope, p)
	}

	s.cache.Set(ctx, snapshot)
	return snapshot, nil
}

func (s *leaderboardService) GetUserRank(snapshot *entity.Leaderboard, userID uuid.UUID) (int, bool) {
	if snapshot == nil {
		return 0, false
	}
	for _, e := range snapshot.Entries {
		if e.UserID == userID {
			return e.Rank, true
		}
	}
	return 0, false
}

func (s *leaderboardService) GetUsersAroundRank(snapshot *entity.Leaderboard, rank, radius int) []entity.LeaderboardEntry {
	if snapshot == nil || len(snapshot.Entries) == 0 || radius < 0 {
		return nil
	}

	lo := rank - radius - 1
	if lo < 0 {
		lo = 0
	}
	hi := rank + radius
	if hi > len(snapshot.Entries) {
		hi = len(snapshot.Entries)
	}
	if lo >= hi {
		return nil
	}

	return snapshot.Entries[lo:hi]
}
