package repository

import (
	"context"
	"time"

	"anoa.com/communityhub/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContentRepository is the read-only view over the content stores the
// activity counters aggregate. All ranges are [start, end).
type ContentRepository interface {
	CountPublishedArticles(ctx context.Context, authorID uuid.UUID, start, end time.Time) (int64, error)
	CountForumPosts(ctx context.Context, authorID uuid.UUID, start, end time.Time) (int64, error)
	CountForumReplies(ctx context.Context, authorID uuid.UUID, start, end time.Time) (int64, error)
	CountEventAttendance(ctx context.Context, userID uuid.UUID, start, end time.Time) (int64, error)
	CountEventsCreated(ctx context.Context, creatorID uuid.UUID, start, end time.Time) (int64, error)
	SumArticleLikes(ctx context.Context, authorID uuid.UUID) (int64, error)
	CountActiveDays(ctx context.Context, userID uuid.UUID, start, end time.Time) (int64, error)
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) CountPublishedArticles(ctx context.Context, authorID uuid.UUID, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Article{}).
		Where("author_id = ? AND status = ? AND published_at >= ? AND published_at < ?",
			authorID, entity.ArticleStatusPublished, start, end).
		Count(&count).Error
	return count, err
}

func (r *contentRepository) CountForumPosts(ctx context.Context, authorID uuid.UUID, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.ForumPost{}).
		Where("author_id = ? AND created_at >= ? AND created_at < ?", authorID, start, end).
		Count(&count).Error
	return count, err
}

func (r *contentRepository) CountForumReplies(ctx context.Context, authorID uuid.UUID, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.ForumReply{}).
		Where("author_id = ? AND created_at >= ? AND created_at < ?", authorID, start, end).
		Count(&count).Error
	return count, err
}

func (r *contentRepository) CountEventAttendance(ctx context.Context, userID uuid.UUID, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.EventAttendance{}).
		Where("user_id = ? AND status = ? AND created_at >= ? AND created_at < ?",
			userID, entity.AttendanceStatusAttended, start, end).
		Count(&count).Error
	return count, err
}

func (r *contentRepository) CountEventsCreated(ctx context.Context, creatorID uuid.UUID, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Event{}).
		Where("creator_id = ? AND created_at >= ? AND created_at < ?", creatorID, start, end).
		Count(&count).Error
	return count, err
}

// SumArticleLikes aggregates likes over the author's published articles. The
// window is the articles' lifetime, not a period: likes carry no timestamp of
// their own on the denormalized counter.
func (r *contentRepository) SumArticleLikes(ctx context.Context, authorID uuid.UUID) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).Model(&entity.Article{}).
		Select("COALESCE(SUM(like_count), 0)").
		Where("author_id = ? AND status = ?", authorID, entity.ArticleStatusPublished).
		Scan(&sum).Error
	return sum, err
}

func (r *contentRepository) CountActiveDays(ctx context.Context, userID uuid.UUID, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.PointLog{}).
		Select("COUNT(DISTINCT DATE(created_at))").
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Scan(&count).Error
	return count, err
}
