package leaderboard

import (
	"context"
	"time"

	"anoa.com/communityhub/internal/entity"
	activity "anoa.com/communityhub/internal/modules/activity/service"
	"anoa.com/communityhub/internal/modules/leaderboard/repository"
	userRepo "anoa.com/communityhub/internal/modules/user/repository"
	"anoa.com/communityhub/pkg/period"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Scope score weights. A content action is worth the same here as on the
// points ledger so the two surfaces agree.
const (
	WeightArticle        = 10
	WeightForumPost      = 5
	WeightForumReply     = 3
	WeightEventAttend    = 8
	WeightEventCreate    = 15
	WeightEngagementLike = 2
)

type LeaderboardService interface {
	// Generate recomputes the snapshot for the pair from live user and
	// content state. O(users x content); callers with large user bases run
	// it from the background scheduler, not a request path.
	Generate(ctx context.Context, scope entity.Scope, p period.Period) (*entity.Leaderboard, error)
	// GetCurrent returns the active snapshot for the pair, generating one on
	// first access if none exists.
	GetCurrent(ctx context.Context, scope entity.Scope, p period.Period) (*entity.Leaderboard, error)
	// GetUserRank looks the user up in the snapshot; ok is false when absent.
	GetUserRank(snapshot *entity.Leaderboard, userID uuid.UUID) (int, bool)
	// GetUsersAroundRank returns the entries in the window
	// [rank-radius-1, rank+radius) clamped to the snapshot bounds.
	GetUsersAroundRank(snapshot *entity.Leaderboard, rank, radius int) []entity.LeaderboardEntry

	StartRefreshScheduler(interval time.Duration) error
}

type leaderboardService struct {
	repo    repository.LeaderboardRepository
	users   userRepo.UserRepository
	counter activity.Counter
	cache   *snapshotCache
}

func NewLeaderboardService(repo repository.LeaderboardRepository, users userRepo.UserRepository, counter activity.Counter, redisClient *redis.Client, cacheTTL time.Duration) LeaderboardService {
	return &leaderboardService{
		repo:    repo,
		users:   users,
		counter: counter,
		cache:   newSnapshotCache(redisClient, cacheTTL),
	}
}
