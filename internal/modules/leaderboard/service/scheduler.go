package leaderboard

import (
	"context"
	"log"
	"time"

	"anoa.com/communityhub/internal/entity"
	"anoa.com/communityhub/pkg/period"
	"github.com/go-co-op/gocron/v2"
)

// refreshTargets are the (scope, period) pairs the background job keeps warm.
// Everything else materializes lazily on first read.
var refreshTargets = []struct {
	Scope  entity.Scope
	Period period.Period
}{
	{entity.ScopeOverall, period.AllTime},
	{entity.ScopeArticles, period.Weekly},
	{entity.ScopeArticles, period.Monthly},
	{entity.ScopeForums, period.Weekly},
	{entity.ScopeForums, period.Monthly},
	{entity.ScopeEvents, period.Monthly},
	{entity.ScopeEngagement, period.AllTime},
}

func (s *leaderboardService) StartRefreshScheduler(interval time.Duration) error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	sched.Start()

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx := context.Background()
			for _, target := range refreshTargets {
				if _, err := s.Generate(ctx, target.Scope, target.Period); err != nil {
					log.Printf("[Scheduler] failed to refresh leaderboard %s/%s: %v", target.Scope, target.Period, err)
				}
			}
			log.Println("✅ Leaderboard refresh completed.")
		}),
	)
	return err
}
