package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Content entities backing the activity counters. Their write paths (CRUD,
// moderation, approval workflows) live in the surrounding application; the
// gamification core only reads them.

const (
	ArticleStatusDraft     = "draft"
	ArticleStatusPublished = "published"

	AttendanceStatusRegistered = "registered"
	AttendanceStatusAttended   = "attended"
)

type Article struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	AuthorID    uuid.UUID  `gorm:"type:uuid;index:idx_article_author;not null" json:"author_id"`
	Author      User       `gorm:"foreignKey:AuthorID" json:"-"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Status      string     `gorm:"size:20;index;not null" json:"status"`
	LikeCount   int        `gorm:"default:0;not null" json:"like_count"`
	PublishedAt *time.Time `gorm:"index:idx_article_author" json:"published_at,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

type ForumPost struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AuthorID  uuid.UUID `gorm:"type:uuid;index:idx_post_author_date,priority:1;not null" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"-"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_post_author_date,priority:2" json:"created_at"`
}

func (p *ForumPost) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type ForumReply struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PostID    uuid.UUID `gorm:"type:uuid;index;not null" json:"post_id"`
	Post      ForumPost `gorm:"foreignKey:PostID" json:"-"`
	AuthorID  uuid.UUID `gorm:"type:uuid;index:idx_reply_author_date,priority:1;not null" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_reply_author_date,priority:2" json:"created_at"`
}

func (r *ForumReply) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

type Event struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatorID uuid.UUID `gorm:"type:uuid;index:idx_event_creator_date,priority:1;not null" json:"creator_id"`
	Creator   User      `gorm:"foreignKey:CreatorID" json:"-"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	StartsAt  time.Time `gorm:"not null" json:"starts_at"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_event_creator_date,priority:2" json:"created_at"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

type EventAttendance struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_event_user;not null" json:"event_id"`
	Event     Event     `gorm:"foreignKey:EventID" json:"-"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_event_user;index:idx_attendance_user_date,priority:1;not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Status    string    `gorm:"size:20;index;not null" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_attendance_user_date,priority:2" json:"created_at"`
}
