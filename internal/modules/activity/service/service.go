package activity

import (
	"context"
	"fmt"
	"time"

	"anoa.com/communityhub/internal/entity"
	"anoa.com/communityhub/internal/modules/activity/repository"
	"anoa.com/communityhub/pkg/apperror"
	"anoa.com/communityhub/pkg/period"
	"github.com/google/uuid"
)

// Counter aggregates a user's activity for one metric over a timeframe.
// It is a pure read; a user with no activity counts as zero.
type Counter interface {
	Count(ctx context.Context, userID uuid.UUID, metric entity.MetricType, timeframe period.Period) (int, error)
	CountInRange(ctx context.Context, userID uuid.UUID, metric entity.MetricType, start, end time.Time) (int, error)
}

type counter struct {
	content repository.ContentRepository
}

func NewCounter(content repository.ContentRepository) Counter {
	return &counter{content: content}
}

func (c *counter) Count(ctx context.Context, userID uuid.UUID, metric entity.MetricType, timeframe period.Period) (int, error) {
	start, end, err := timeframe.Range(time.Now())
	if err != nil {
		return 0, err
	}
	return c.CountInRange(ctx, userID, metric, start, end)
}

func (c *counter) CountInRange(ctx context.Context, userID uuid.UUID, metric entity.MetricType, start, end time.Time) (int, error) {
	var (
		n   int64
		err error
	)

	switch metric {
	case entity.MetricArticleCount:
		n, err = c.content.CountPublishedArticles(ctx, userID, start, end)
	case entity.MetricForumPosts:
		n, err = c.content.CountForumPosts(ctx, userID, start, end)
	case entity.MetricForumReplies:
		n, err = c.content.CountForumReplies(ctx, userID, start, end)
	case entity.MetricEventAttendance:
		n, err = c.content.CountEventAttendance(ctx, userID, start, end)
	case entity.MetricEventCreation:
		n, err = c.content.CountEventsCreated(ctx, userID, start, end)
	case entity.MetricLikesReceived:
		// Likes aggregate over the user's published articles regardless of
		// the requested window.
		n, err = c.content.SumArticleLikes(ctx, userID)
	case entity.MetricDaysActive:
		n, err = c.content.CountActiveDays(ctx, userID, start, end)
	case entity.MetricCustom:
		// Reserved for externally computed metrics; counts nothing here.
		return 0, nil
	case entity.MetricPointsEarned, entity.MetricLevelReached:
		// These read ledger state, not content activity.
		return 0, fmt.Errorf("%w: metric %q is not an activity metric", apperror.ErrInvalidInput, metric)
	default:
		return 0, fmt.Errorf("%w: unknown metric %q", apperror.ErrInvalidInput, metric)
	}

	if err != nil {
		return 0, err
	}
	return int(n), nil
}
