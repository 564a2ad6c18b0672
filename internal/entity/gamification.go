package entity

import (
	"time"

	"github.com/google/uuid"
)

// PointLog is the append-only audit trail of point awards. Besides auditing,
// it backs the days_active metric (distinct days with at least one entry).
type PointLog struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;index:idx_user_date,priority:1;not null" json:"user_id"`
	User           User      `gorm:"foreignKey:UserID" json:"-"`
	Action         string    `gorm:"size:50;not null" json:"action"` // 'article_create', 'forum_post', 'bonus', ...
	Points         int       `gorm:"not null" json:"points"`
	ReferenceID    string    `gorm:"size:36" json:"reference_id"`    // UUID string of the article/post/event
	ReferenceTable string    `gorm:"size:50" json:"reference_table"` // 'articles', 'forum_posts', 'achievements'
	Note           string    `gorm:"size:255" json:"note,omitempty"` // free-form reason for manual grants
	CreatedAt      time.Time `gorm:"index:idx_user_date,priority:2;index:idx_date" json:"created_at"`
}
