package achievement

import (
	"context"
	"fmt"
	"log"
	"time"

	"anoa.com/communityhub/internal/entity"
	"anoa.com/communityhub/internal/modules/achievement/dto"
	"anoa.com/communityhub/internal/modules/achievement/repository"
	activity "anoa.com/communityhub/internal/modules/activity/service"
	gamRepo "anoa.com/communityhub/internal/modules/gamification/repository"
	"anoa.com/communityhub/pkg/apperror"
	"anoa.com/communityhub/pkg/period"
	"github.com/google/uuid"
)

type AchievementService interface {
	// CheckCriteria reports whether the user currently satisfies the
	// achievement's (metric, threshold, timeframe) triple.
	CheckCriteria(ctx context.Context, achievement *entity.Achievement, userID uuid.UUID) (bool, error)
	// CheckAndAwardAchievements grants every active, non-hidden achievement
	// the user newly qualifies for and returns exactly that set. Safe to call
	// repeatedly; already-held achievements are never granted twice.
	CheckAndAwardAchievements(ctx context.Context, userID uuid.UUID) ([]entity.Achievement, error)

	ListVisible(ctx context.Context) ([]entity.Achievement, error)
	ListAll(ctx context.Context) ([]entity.Achievement, error)
	Create(ctx context.Context, req dto.CreateAchievementRequest) (*entity.Achievement, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateAchievementRequest) (*entity.Achievement, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type achievementService struct {
	repo    repository.AchievementRepository
	counter activity.Counter
	store   gamRepo.GamificationRepository
}

func NewAchievementService(repo repository.AchievementRepository, counter activity.Counter, store gamRepo.GamificationRepository) AchievementService {
	return &achievementService{
		repo:    repo,
		counter: counter,
		store:   store,
	}
}

func (s *achievementService) CheckCriteria(ctx context.Context, achievement *entity.Achievement, userID uuid.UUID) (bool, error) {
	criteria := achievement.Criteria
	if !criteria.MetricType.Valid() {
		return false, fmt.Errorf("%w: unknown metric %q", apperror.ErrInvalidInput, criteria.MetricType)
	}
	if !criteria.Timeframe.Valid() {
		return false, fmt.Errorf("%w: unknown timeframe %q", apperror.ErrInvalidInput, criteria.Timeframe)
	}

	var value int
	switch criteria.MetricType {
	case entity.MetricPointsEarned:
		user, err := s.store.FindUserByID(ctx, userID)
		if err != nil {
			return false, err
		}
		value = user.Points
	case entity.MetricLevelReached:
		user, err := s.store.FindUserByID(ctx, userID)
		if err != nil {
			return false, err
		}
		value = user.Level
	case entity.MetricCustom:
		// No custom metric handler is registered; never satisfied.
		return false, nil
	default:
		v, err := s.counter.Count(ctx, userID, criteria.MetricType, criteria.Timeframe)
		if err != nil {
			return false, err
		}
		value = v
	}

	return value >= criteria.Threshold, nil
}

func (s *achievementService) CheckAndAwardAchievements(ctx context.Context, userID uuid.UUID) ([]entity.Achievement, error) {
	achievements, err := s.repo.ListActive(ctx, false)
	if err != nil {
		return nil, err
	}

	earnedIDs, err := s.store.ListAchievementIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	earned := make(map[uuid.UUID]bool, len(earnedIDs))
	for _, id := range earnedIDs {
		earned[id] = true
	}

	now := time.Now()
	var granted []entity.Achievement

	for i := range achievements {
		a := achievements[i]
		if earned[a.ID] {
			continue
		}

		// One broken criteria must not abort evaluation of the rest.
		ok, err := s.CheckCriteria(ctx, &a, userID)
		if err != nil {
			log.Printf("criteria check failed for achievement %q, user %s: %v", a.Name, userID, err)
			continue
		}
		if !ok {
			continue
		}

		added, err := s.store.GrantAchievement(ctx, userID, &a, now)
		if err != nil {
			log.Printf("failed to grant achievement %q to user %s: %v", a.Name, userID, err)
			continue
		}
		if added {
			granted = append(granted, a)
			log.Printf("🏅 achievement %q granted to user %s", a.Name, userID)
		}
	}

	return granted, nil
}

func (s *achievementService) ListVisible(ctx context.Context) ([]entity.Achievement, error) {
	return s.repo.ListActive(ctx, false)
}

func (s *achievementService) ListAll(ctx context.Context) ([]entity.Achievement, error) {
	return s.repo.ListAll(ctx)
}

func (s *achievementService) Create(ctx context.Context, req dto.CreateAchievementRequest) (*entity.Achievement, error) {
	criteria, err := buildCriteria(req.Criteria)
	if err != nil {
		return nil, err
	}

	achievement := &entity.Achievement{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Category:    req.Category,
		Rarity:      req.Rarity,
		Points:      req.Points,
		IsActive:    true,
		IsHidden:    req.IsHidden,
		Criteria:    *criteria,
	}

	if err := s.repo.Create(ctx, achievement); err != nil {
		return nil, err
	}
	return achievement, nil
}

func (s *achievementService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateAchievementRequest) (*entity.Achievement, error) {
	achievement, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		achievement.Name = *req.Name
	}
	if req.Description != nil {
		achievement.Description = *req.Description
	}
	if req.Icon != nil {
		achievement.Icon = *req.Icon
	}
	if req.Category != nil {
		achievement.Category = *req.Category
	}
	if req.Rarity != nil {
		achievement.Rarity = *req.Rarity
	}
	if req.Points != nil {
		if *req.Points < 0 {
			return nil, fmt.Errorf("%w: points must be >= 0", apperror.ErrInvalidInput)
		}
		achievement.Points = *req.Points
	}
	if req.IsActive != nil {
		achievement.IsActive = *req.IsActive
	}
	if req.IsHidden != nil {
		achievement.IsHidden = *req.IsHidden
	}
	if req.Criteria != nil {
		criteria, err := buildCriteria(*req.Criteria)
		if err != nil {
			return nil, err
		}
		achievement.Criteria = *criteria
	}

	if err := s.repo.Update(ctx, achievement); err != nil {
		return nil, err
	}
	return achievement, nil
}

func (s *achievementService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func buildCriteria(req dto.CriteriaRequest) (*entity.AchievementCriteria, error) {
	metric := entity.MetricType(req.MetricType)
	if !metric.Valid() {
		return nil, fmt.Errorf("%w: unknown metric %q", apperror.ErrInvalidInput, req.MetricType)
	}
	timeframe, err := period.Parse(req.Timeframe)
	if err != nil {
		return nil, err
	}
	if req.Threshold < 1 {
		return nil, fmt.Errorf("%w: threshold must be >= 1", apperror.ErrInvalidInput)
	}

	return &entity.AchievementCriteria{
		MetricType: metric,
		Threshold:  req.Threshold,
		Timeframe:  timeframe,
	}, nil
}
