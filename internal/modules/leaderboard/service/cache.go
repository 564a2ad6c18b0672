package leaderboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"anoa.com/communityhub/internal/entity"
	"anoa.com/communityhub/pkg/period"
	"github.com/redis/go-redis/v9"
)

// snapshotCache keeps the active snapshot per (scope, period) in Redis so
// read traffic stays off the entries table between regenerations. A nil
// client disables caching entirely.
type snapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func newSnapshotCache(client *redis.Client, ttl time.Duration) *snapshotCache {
	return &snapshotCache{client: client, ttl: ttl}
}

func cacheKey(scope entity.Scope, p period.Period) string {
	return fmt.Sprintf("leaderboard:%s:%s", scope, p)
}

func (c *snapshotCache) Get(ctx context.Context, scope entity.Scope, p period.Period) *entity.Leaderboard {
	if c.client == nil {
		return nil
	}

	raw, err := c.client.Get(ctx, cacheKey(scope, p)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("leaderboard cache read failed: %v", err)
		}
		return nil
	}

	var snapshot entity.Leaderboard
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		log.Printf("leaderboard cache entry corrupt, dropping: %v", err)
		c.Invalidate(ctx, scope, p)
		return nil
	}

	return &snapshot
}

func (c *snapshotCache) Set(ctx context.Context, snapshot *entity.Leaderboard) {
	if c.client == nil || snapshot == nil {
		return
	}

	raw, err := json.Marshal(snapshot)
	if err != nil {
		log.Printf("failed to marshal leaderboard snapshot for cache: %v", err)
		return
	}

	if err := c.client.Set(ctx, cacheKey(snapshot.Scope, snapshot.Period), raw, c.ttl).Err(); err != nil {
		log.Printf("leaderboard cache write failed: %v", err)
	}
}

func (c *snapshotCache) Invalidate(ctx context.Context, scope entity.Scope, p period.Period) {
	if c.client == nil {
		return
	}

	if err := c.client.Del(ctx, cacheKey(scope, p)).Err(); err != nil {
		log.Printf("leaderboard cache invalidation failed: %v", err)
	}
}
