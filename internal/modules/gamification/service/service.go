package gamification

import (
	"context"
	"fmt"
	"log"
	"time"

	"anoa.com/communityhub/internal/entity"
	"anoa.com/communityhub/internal/modules/gamification/dto"
	"anoa.com/communityhub/internal/modules/gamification/level"
	"anoa.com/communityhub/internal/modules/gamification/repository"
	"anoa.com/communityhub/pkg/apperror"
	"github.com/google/uuid"
)

// ActionKind is a symbolic content action that earns points.
type ActionKind string

const (
	ActionArticleCreate ActionKind = "article_create"
	ActionArticleLike   ActionKind = "article_like"
	ActionForumPost     ActionKind = "forum_post"
	ActionForumReply    ActionKind = "forum_reply"
	ActionEventAttend   ActionKind = "event_attend"
	ActionEventCreate   ActionKind = "event_create"
)

// DefaultActionRewards mirrors the leaderboard scope weights so a single
// content action is worth the same on both surfaces.
var DefaultActionRewards = map[ActionKind]int{
	ActionArticleCreate: 10,
	ActionArticleLike:   2,
	ActionForumPost:     5,
	ActionForumReply:    3,
	ActionEventAttend:   8,
	ActionEventCreate:   15,
}

// AchievementChecker is what the ledger triggers after a successful award.
// The achievement module provides the implementation; the indirection keeps
// the award path free of a package cycle.
type AchievementChecker interface {
	CheckAndAwardAchievements(ctx context.Context, userID uuid.UUID) ([]entity.Achievement, error)
}

type GamificationService interface {
	AwardPoints(ctx context.Context, userID uuid.UUID, action ActionKind, referenceID, referenceTable string) (*dto.AwardResult, error)
	AwardBonusPoints(ctx context.Context, userID uuid.UUID, reason string, amount int) (*dto.AwardResult, error)
	ResetUserGamification(ctx context.Context, userID uuid.UUID) error
	GetUserStats(ctx context.Context, userID uuid.UUID) (*dto.UserGamificationStats, error)
}

type gamificationService struct {
	repo    repository.GamificationRepository
	checker AchievementChecker
	rewards map[ActionKind]int
}

// NewGamificationService builds the points ledger. checker may be nil when no
// achievement evaluation should follow awards; rewards nil means defaults.
func NewGamificationService(repo repository.GamificationRepository, checker AchievementChecker, rewards map[ActionKind]int) GamificationService {
	if rewards == nil {
		rewards = DefaultActionRewards
	}
	return &gamificationService{
		repo:    repo,
		checker: checker,
		rewards: rewards,
	}
}

func (s *gamificationService) AwardPoints(ctx context.Context, userID uuid.UUID, action ActionKind, referenceID, referenceTable string) (*dto.AwardResult, error) {
	reward := s.rewards[action]
	if reward < 0 {
		return nil, fmt.Errorf("%w: negative reward configured for action %q", apperror.ErrInvalidInput, action)
	}

	// Unconfigured actions are a successful no-op, but the user must exist.
	if reward == 0 {
		user, err := s.repo.FindUserByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &dto.AwardResult{TotalPoints: user.Points, Level: user.Level}, nil
	}

	user, err := s.repo.AddPoints(ctx, userID, reward)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreatePointLog(ctx, &entity.PointLog{
		UserID:         userID,
		Action:         string(action),
		Points:         reward,
		ReferenceID:    referenceID,
		ReferenceTable: referenceTable,
		CreatedAt:      time.Now(),
	}); err != nil {
		// The award itself is persisted; a missing audit row is not worth
		// failing the caller over.
		log.Printf("failed to write point log for user %s: %v", userID, err)
	}

	result := &dto.AwardResult{
		PointsAwarded: reward,
		TotalPoints:   user.Points,
		Level:         user.Level,
	}

	if s.checker != nil {
		granted, err := s.checker.CheckAndAwardAchievements(ctx, userID)
		if err != nil {
			log.Printf("achievement evaluation failed for user %s: %v", userID, err)
		}
		for _, a := range granted {
			result.NewAchievements = append(result.NewAchievements, a.Name)
		}
	}

	return result, nil
}

// AwardBonusPoints credits a manual grant. It does not trigger achievement
// evaluation; administrative grants are not activity.
func (s *gamificationService) AwardBonusPoints(ctx context.Context, userID uuid.UUID, reason string, amount int) (*dto.AwardResult, error) {
	if amount < 0 {
		return nil, fmt.Errorf("%w: bonus amount must be >= 0", apperror.ErrInvalidInput)
	}

	if amount == 0 {
		user, err := s.repo.FindUserByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &dto.AwardResult{TotalPoints: user.Points, Level: user.Level}, nil
	}

	user, err := s.repo.AddPoints(ctx, userID, amount)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreatePointLog(ctx, &entity.PointLog{
		UserID:    userID,
		Action:    "bonus",
		Points:    amount,
		Note:      reason,
		CreatedAt: time.Now(),
	}); err != nil {
		log.Printf("failed to write point log for user %s: %v", userID, err)
	}

	return &dto.AwardResult{
		PointsAwarded: amount,
		TotalPoints:   user.Points,
		Level:         user.Level,
	}, nil
}

func (s *gamificationService) ResetUserGamification(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.ResetGamification(ctx, userID); err != nil {
		return err
	}
	log.Printf("gamification state reset for user %s", userID)
	return nil
}

func (s *gamificationService) GetUserStats(ctx context.Context, userID uuid.UUID) (*dto.UserGamificationStats, error) {
	user, err := s.repo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	earned, err := s.repo.ListUserAchievements(ctx, userID)
	if err != nil {
		return nil, err
	}

	achievements := make([]dto.EarnedAchievement, 0, len(earned))
	for _, ua := range earned {
		achievements = append(achievements, dto.EarnedAchievement{
			ID:       ua.AchievementID,
			Name:     ua.Achievement.Name,
			Icon:     ua.Achievement.Icon,
			Category: ua.Achievement.Category,
			Rarity:   ua.Achievement.Rarity,
			Points:   ua.Achievement.Points,
			EarnedAt: ua.EarnedAt,
		})
	}

	badges := user.Badges
	if badges == nil {
		badges = []string{}
	}

	return &dto.UserGamificationStats{
		UserID:            user.ID,
		Points:            user.Points,
		Level:             user.Level,
		PointsToNextLevel: level.PointsToNext(user.Points),
		LevelProgress:     level.Progress(user.Points),
		Badges:            badges,
		Achievements:      achievements,
	}, nil
}
