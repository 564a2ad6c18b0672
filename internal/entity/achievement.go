package entity

import (
	"time"

	"anoa.com/communityhub/pkg/period"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MetricType identifies which activity metric an achievement criteria is
// evaluated against. Adding a metric means adding a case to every switch
// over this type; the compiler-checked default returns ErrInvalidInput.
type MetricType string

const (
	MetricArticleCount    MetricType = "article_count"
	MetricForumPosts      MetricType = "forum_posts"
	MetricForumReplies    MetricType = "forum_replies"
	MetricEventAttendance MetricType = "event_attendance"
	MetricEventCreation   MetricType = "event_creation"
	MetricLikesReceived   MetricType = "likes_received"
	MetricPointsEarned    MetricType = "points_earned"
	MetricLevelReached    MetricType = "level_reached"
	MetricDaysActive      MetricType = "days_active"
	MetricCustom          MetricType = "custom"
)

func (m MetricType) Valid() bool {
	switch m {
	case MetricArticleCount, MetricForumPosts, MetricForumReplies,
		MetricEventAttendance, MetricEventCreation, MetricLikesReceived,
		MetricPointsEarned, MetricLevelReached, MetricDaysActive, MetricCustom:
		return true
	}
	return false
}

// AchievementCriteria is the (metric, threshold, timeframe) triple that
// decides when an achievement is earned.
type AchievementCriteria struct {
	MetricType MetricType    `gorm:"size:50;not null" json:"metric_type"`
	Threshold  int           `gorm:"not null" json:"threshold"`
	Timeframe  period.Period `gorm:"size:20;not null" json:"timeframe"`
}

type Achievement struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Icon        string    `gorm:"size:100" json:"icon"`
	Category    string    `gorm:"size:50;index" json:"category"`
	Rarity      string    `gorm:"size:20" json:"rarity"`
	Points      int       `gorm:"default:0;not null" json:"points"`
	IsActive    bool      `gorm:"default:true;index" json:"is_active"`
	IsHidden    bool      `gorm:"default:false" json:"is_hidden"`

	Criteria AchievementCriteria `gorm:"embedded;embeddedPrefix:criteria_" json:"criteria"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (a *Achievement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// UserAchievement records an earned achievement. The composite unique index
// is what makes granting idempotent at the database level.
type UserAchievement struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	UserID        uuid.UUID   `gorm:"type:uuid;uniqueIndex:idx_user_achievement;not null" json:"user_id"`
	AchievementID uuid.UUID   `gorm:"type:uuid;uniqueIndex:idx_user_achievement;not null" json:"achievement_id"`
	Achievement   Achievement `gorm:"foreignKey:AchievementID" json:"achievement,omitempty"`
	EarnedAt      time.Time   `gorm:"not null;index" json:"earned_at"`
}
