package repository

import (
	"context"
	"errors"

	"anoa.com/communityhub/internal/entity"
	"anoa.com/communityhub/pkg/period"
	"gorm.io/gorm"
)

type LeaderboardRepository interface {
	// UpsertSnapshot persists the snapshot under its
	// (scope, period, periodStart, periodEnd) key, replacing any prior
	// snapshot with the same key, and deactivates every other snapshot for
	// the (scope, period) pair.
	UpsertSnapshot(ctx context.Context, snapshot *entity.Leaderboard) error
	// FindActive returns the latest active snapshot for the pair, entries
	// ordered by rank, or nil when none has been generated yet.
	FindActive(ctx context.Context, scope entity.Scope, p period.Period) (*entity.Leaderboard, error)
}

type leaderboardRepository struct {
	db *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

func (r *leaderboardRepository) UpsertSnapshot(ctx context.Context, snapshot *entity.Leaderboard) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing entity.Leaderboard
		err := tx.Where("scope = ? AND period = ? AND period_start = ? AND period_end = ?",
			snapshot.Scope, snapshot.Period, snapshot.PeriodStart, snapshot.PeriodEnd).
			First(&existing).Error
		switch {
		case err == nil:
			// Same key: full replacement of the prior entries.
			if err := tx.Where("leaderboard_id = ?", existing.ID).
				Delete(&entity.LeaderboardEntry{}).Error; err != nil {
				return err
			}
			snapshot.ID = existing.ID
			for i := range snapshot.Entries {
				snapshot.Entries[i].LeaderboardID = existing.ID
			}
			if err := tx.Model(&entity.Leaderboard{}).
				Where("id = ?", existing.ID).
				Updates(map[string]interface{}{
					"total_participants": snapshot.TotalParticipants,
					"is_active":          true,
					"generated_at":       snapshot.GeneratedAt,
				}).Error; err != nil {
				return err
			}
			if len(snapshot.Entries) > 0 {
				if err := tx.Create(&snapshot.Entries).Error; err != nil {
					return err
				}
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			snapshot.IsActive = true
			if err := tx.Create(snapshot).Error; err != nil {
				return err
			}
		default:
			return err
		}

		// Exactly one active snapshot per (scope, period).
		return tx.Model(&entity.Leaderboard{}).
			Where("scope = ? AND period = ? AND id <> ?", snapshot.Scope, snapshot.Period, snapshot.ID).
			Update("is_active", false).Error
	})
}

func (r *leaderboardRepository) FindActive(ctx context.Context, scope entity.Scope, p period.Period) (*entity.Leaderboard, error) {
	var snapshot entity.Leaderboard
	err := r.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("rank ASC")
		}).
		Preload("Entries.User").
		Where("scope = ? AND period = ? AND is_active = ?", scope, p, true).
		Order("generated_at DESC").
		First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &snapshot, nil
}
