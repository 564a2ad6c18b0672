package entity

import (
	"time"

	"anoa.com/communityhub/pkg/period"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Scope is the leaderboard category.
type Scope string

const (
	ScopeOverall    Scope = "overall"
	ScopeArticles   Scope = "articles"
	ScopeForums     Scope = "forums"
	ScopeEvents     Scope = "events"
	ScopeEngagement Scope = "engagement"
	ScopeCustom     Scope = "custom"
)

func (s Scope) Valid() bool {
	switch s {
	case ScopeOverall, ScopeArticles, ScopeForums, ScopeEvents, ScopeEngagement, ScopeCustom:
		return true
	}
	return false
}

// Leaderboard is an immutable ranking snapshot for one (scope, period,
// periodStart, periodEnd) key. Regeneration replaces the snapshot wholesale
// and supersedes the previously active one for the same (scope, period).
type Leaderboard struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Scope       Scope         `gorm:"size:20;uniqueIndex:idx_lb_key,priority:1;not null" json:"scope"`
	Period      period.Period `gorm:"size:20;uniqueIndex:idx_lb_key,priority:2;not null" json:"period"`
	PeriodStart time.Time     `gorm:"uniqueIndex:idx_lb_key,priority:3;not null" json:"period_start"`
	PeriodEnd   time.Time     `gorm:"uniqueIndex:idx_lb_key,priority:4;not null" json:"period_end"`

	Entries           []LeaderboardEntry `gorm:"constraint:OnDelete:CASCADE" json:"entries"`
	TotalParticipants int                `gorm:"default:0;not null" json:"total_participants"`
	IsActive          bool               `gorm:"default:true;index" json:"is_active"`
	GeneratedAt       time.Time          `gorm:"not null" json:"generated_at"`
}

func (l *Leaderboard) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// EntryStats is the denormalized per-metric breakdown stored with each entry.
type EntryStats struct {
	Articles       int `gorm:"default:0" json:"articles"`
	ForumPosts     int `gorm:"default:0" json:"forum_posts"`
	ForumReplies   int `gorm:"default:0" json:"forum_replies"`
	EventsAttended int `gorm:"default:0" json:"events_attended"`
	EventsCreated  int `gorm:"default:0" json:"events_created"`
	LikesReceived  int `gorm:"default:0" json:"likes_received"`
}

type LeaderboardEntry struct {
	ID            uint       `gorm:"primaryKey" json:"-"`
	LeaderboardID uuid.UUID  `gorm:"type:uuid;index;not null" json:"-"`
	UserID        uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`
	User          User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Points        int        `gorm:"not null" json:"points"`
	Level         int        `gorm:"not null" json:"level"`
	Rank          int        `gorm:"not null" json:"rank"`
	Stats         EntryStats `gorm:"embedded;embeddedPrefix:stat_" json:"stats"`
	Badges        []string   `gorm:"serializer:json" json:"badges"`
}
