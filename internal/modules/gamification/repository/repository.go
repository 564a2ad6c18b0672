package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"anoa.com/communityhub/internal/entity"
	"anoa.com/communityhub/internal/modules/gamification/level"
	"anoa.com/communityhub/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GamificationRepository interface {
	FindUserByID(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	// AddPoints atomically increments the user's points and raises the level
	// to match; it never lowers either. Returns the user as persisted.
	AddPoints(ctx context.Context, userID uuid.UUID, points int) (*entity.User, error)
	ResetGamification(ctx context.Context, userID uuid.UUID) error
	// GrantAchievement inserts the earned row, appends the badge and credits
	// the reward in one transaction. Returns false when the user already
	// holds the achievement (a concurrent grant lost the race).
	GrantAchievement(ctx context.Context, userID uuid.UUID, ach *entity.Achievement, earnedAt time.Time) (bool, error)
	ListAchievementIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	ListUserAchievements(ctx context.Context, userID uuid.UUID) ([]entity.UserAchievement, error)
	CreatePointLog(ctx context.Context, log *entity.PointLog) error
}

type gamificationRepository struct {
	db *gorm.DB
}

func NewGamificationRepository(db *gorm.DB) GamificationRepository {
	return &gamificationRepository{db: db}
}

func (r *gamificationRepository) FindUserByID(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", userID, apperror.ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

func (r *gamificationRepository) AddPoints(ctx context.Context, userID uuid.UUID, points int) (*entity.User, error) {
	var user entity.User

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.User{}).
			Where("id = ?", userID).
			UpdateColumn("points", gorm.Expr("points + ?", points))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("user %s: %w", userID, apperror.ErrNotFound)
		}

		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			return err
		}

		// Level is derived from points; GREATEST keeps it monotonic under
		// concurrent awards.
		newLevel := level.ForPoints(user.Points)
		if err := tx.Model(&entity.User{}).
			Where("id = ?", userID).
			UpdateColumn("level", gorm.Expr("GREATEST(level, ?)", newLevel)).Error; err != nil {
			return err
		}
		if newLevel > user.Level {
			user.Level = newLevel
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *gamificationRepository) ResetGamification(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.User{}).
			Where("id = ?", userID).
			Select("points", "level", "badges").
			Updates(entity.User{Points: 0, Level: 1, Badges: []string{}})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("user %s: %w", userID, apperror.ErrNotFound)
		}

		return tx.Where("user_id = ?", userID).Delete(&entity.UserAchievement{}).Error
	})
}

func (r *gamificationRepository) GrantAchievement(ctx context.Context, userID uuid.UUID, ach *entity.Achievement, earnedAt time.Time) (bool, error) {
	granted := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user entity.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("user %s: %w", userID, apperror.ErrNotFound)
			}
			return err
		}

		// Unique (user_id, achievement_id) index makes the grant idempotent
		// even if two evaluations race past the membership check.
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&entity.UserAchievement{
			UserID:        userID,
			AchievementID: ach.ID,
			EarnedAt:      earnedAt,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		granted = true

		badges := append(user.Badges, ach.ID.String())
		if err := tx.Model(&entity.User{}).
			Where("id = ?", userID).
			Select("badges").
			Updates(entity.User{Badges: badges}).Error; err != nil {
			return err
		}

		if ach.Points > 0 {
			newLevel := level.ForPoints(user.Points + ach.Points)
			if err := tx.Model(&entity.User{}).
				Where("id = ?", userID).
				UpdateColumns(map[string]interface{}{
					"points": gorm.Expr("points + ?", ach.Points),
					"level":  gorm.Expr("GREATEST(level, ?)", newLevel),
				}).Error; err != nil {
				return err
			}

			return tx.Create(&entity.PointLog{
				UserID:         userID,
				Action:         "achievement_bonus",
				Points:         ach.Points,
				ReferenceID:    ach.ID.String(),
				ReferenceTable: "achievements",
				CreatedAt:      earnedAt,
			}).Error
		}

		return nil
	})
	if err != nil {
		return false, err
	}

	return granted, nil
}

func (r *gamificationRepository) ListAchievementIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&entity.UserAchievement{}).
		Where("user_id = ?", userID).
		Pluck("achievement_id", &ids).Error
	return ids, err
}

func (r *gamificationRepository) ListUserAchievements(ctx context.Context, userID uuid.UUID) ([]entity.UserAchievement, error) {
	var earned []entity.UserAchievement
	err := r.db.WithContext(ctx).
		Preload("Achievement").
		Where("user_id = ?", userID).
		Order("earned_at ASC").
		Find(&earned).Error
	return earned, err
}

func (r *gamificationRepository) CreatePointLog(ctx context.Context, log *entity.PointLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}
