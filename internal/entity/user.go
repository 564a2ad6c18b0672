package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	RoleID       *uint     `json:"role_id"`
	Role         Role      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"role"`
	AvatarURL    *string   `gorm:"type:text" json:"avatar_url,omitempty"`
	IsActive     bool      `gorm:"default:true;index" json:"is_active"`

	// Gamification state. Points and Level are mutated only through the
	// gamification repository; Level is always floor(points/100)+1.
	// Badges is a denormalized view of the user's earned achievement IDs.
	Points int      `gorm:"default:0;not null" json:"points"`
	Level  int      `gorm:"default:1;not null" json:"level"`
	Badges []string `gorm:"serializer:json" json:"badges"`

	Achievements []UserAchievement `gorm:"constraint:OnDelete:CASCADE" json:"achievements,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	Profile   *Profile  `gorm:"constraint:OnDelete:CASCADE" json:"profile,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

type Profile struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	FullName   string    `gorm:"size:100;not null" json:"full_name"`
	Department *string   `gorm:"size:100" json:"department,omitempty"`
	JobTitle   *string   `gorm:"size:100" json:"job_title,omitempty"`
	Bio        *string   `gorm:"type:text" json:"bio,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
