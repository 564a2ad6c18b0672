package dto

import (
	"time"

	"github.com/google/uuid"
)

type AwardResult struct {
	PointsAwarded   int      `json:"points_awarded"`
	TotalPoints     int      `json:"total_points"`
	Level           int      `json:"level"`
	NewAchievements []string `json:"new_achievements,omitempty"`
}

type BonusRequest struct {
	Reason string `json:"reason" binding:"required,max=255"`
	Amount int    `json:"amount" binding:"gte=0"`
}

type EarnedAchievement struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Icon     string    `json:"icon"`
	Category string    `json:"category"`
	Rarity   string    `json:"rarity"`
	Points   int       `json:"points"`
	EarnedAt time.Time `json:"earned_at"`
}

type UserGamificationStats struct {
	UserID            uuid.UUID           `json:"user_id"`
	Points            int                 `json:"points"`
	Level             int                 `json:"level"`
	PointsToNextLevel int                 `json:"points_to_next_level"`
	LevelProgress     float64             `json:"level_progress"`
	Badges            []string            `json:"badges"`
	Achievements      []EarnedAchievement `json:"achievements"`
}
