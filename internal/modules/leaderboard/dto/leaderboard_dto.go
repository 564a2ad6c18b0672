package dto

import (
	"time"

	"anoa.com/communityhub/internal/entity"
	"github.com/google/uuid"
)

type EntryResponse struct {
	UserID    uuid.UUID         `json:"user_id"`
	Username  string            `json:"username"`
	AvatarURL *string           `json:"avatar_url,omitempty"`
	Rank      int               `json:"rank"`
	Points    int               `json:"points"`
	Level     int               `json:"level"`
	Stats     entity.EntryStats `json:"stats"`
	Badges    []string          `json:"badges"`
}

type SnapshotResponse struct {
	Scope             string          `json:"scope"`
	Period            string          `json:"period"`
	PeriodStart       time.Time       `json:"period_start"`
	PeriodEnd         time.Time       `json:"period_end"`
	TotalParticipants int             `json:"total_participants"`
	GeneratedAt       time.Time       `json:"generated_at"`
	Entries           []EntryResponse `json:"entries"`
}

type RankResponse struct {
	Scope  string `json:"scope"`
	Period string `json:"period"`
	UserID string `json:"user_id"`
	Rank   *int   `json:"rank"` // null when the user is not on the board
}

type GenerateRequest struct {
	Scope  string `json:"scope" binding:"required,oneof=overall articles forums events engagement"`
	Period string `json:"period" binding:"required,oneof=daily weekly monthly yearly all_time"`
}

// FromSnapshot maps a persisted snapshot onto the response shape.
func FromSnapshot(snapshot *entity.Leaderboard) *SnapshotResponse {
	entries := make([]EntryResponse, 0, len(snapshot.Entries))
	for _, e := range snapshot.Entries {
		badges := e.Badges
		if badges == nil {
			badges = []string{}
		}
		entries = append(entries, EntryResponse{
			UserID:    e.UserID,
			Username:  e.User.Username,
			AvatarURL: e.User.AvatarURL,
			Rank:      e.Rank,
			Points:    e.Points,
			Level:     e.Level,
			Stats:     e.Stats,
			Badges:    badges,
		})
	}

	return &SnapshotResponse{
		Scope:             string(snapshot.Scope),
		Period:            string(snapshot.Period),
		PeriodStart:       snapshot.PeriodStart,
		PeriodEnd:         snapshot.PeriodEnd,
		TotalParticipants: snapshot.TotalParticipants,
		GeneratedAt:       snapshot.GeneratedAt,
		Entries:           entries,
	}
}
