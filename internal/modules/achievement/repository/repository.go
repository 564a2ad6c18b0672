package repository

import (
	"context"
	"errors"
	"fmt"

	"anoa.com/communityhub/internal/entity"
	"anoa.com/communityhub/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AchievementRepository interface {
	ListActive(ctx context.Context, includeHidden bool) ([]entity.Achievement, error)
	ListAll(ctx context.Context) ([]entity.Achievement, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Achievement, error)
	Create(ctx context.Context, achievement *entity.Achievement) error
	Update(ctx context.Context, achievement *entity.Achievement) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type achievementRepository struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) ListActive(ctx context.Context, includeHidden bool) ([]entity.Achievement, error) {
	query := r.db.WithContext(ctx).Where("is_active = ?", true)
	if !includeHidden {
		query = query.Where("is_hidden = ?", false)
	}

	var achievements []entity.Achievement
	if err := query.Order("created_at ASC").Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}

func (r *achievementRepository) ListAll(ctx context.Context) ([]entity.Achievement, error) {
	var achievements []entity.Achievement
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}

func (r *achievementRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Achievement, error) {
	var achievement entity.Achievement
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&achievement).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("achievement %s: %w", id, apperror.ErrNotFound)
		}
		return nil, err
	}
	return &achievement, nil
}

func (r *achievementRepository) Create(ctx context.Context, achievement *entity.Achievement) error {
	return r.db.WithContext(ctx).Create(achievement).Error
}

func (r *achievementRepository) Update(ctx context.Context, achievement *entity.Achievement) error {
	return r.db.WithContext(ctx).Save(achievement).Error
}

func (r *achievementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Achievement{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("achievement %s: %w", id, apperror.ErrNotFound)
	}
	return nil
}
