package repositories

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"shopBack/internal/models"
)

const dashboardCacheKey = "dashboard:summary"

// DashboardCache keeps the dashboard snapshot in Redis for a short TTL.
// A nil client turns every lookup into a miss, so the service degrades to
// querying the store directly.
type DashboardCache struct {
	RDB *redis.Client
	TTL time.Duration
}

func (c *DashboardCache) Get(ctx context.Context) (models.DashboardSummary, bool) {
	if c == nil || c.RDB == nil {
		return models.DashboardSummary{}, false
	}

	raw, err := c.RDB.Get(ctx, dashboardCacheKey).Result()
	if err == redis.Nil {
		return models.DashboardSummary{}, false
	}
	if err != nil {
		log.Printf("dashboard cache get: %v", err)
		return models.DashboardSummary{}, false
	}

	var summary models.DashboardSummary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		return models.DashboardSummary{}, false
	}
	return summary, true
}

func (c *DashboardCache) Set(ctx context.Context, summary models.DashboardSummary) {
	if c == nil || c.RDB == nil {
		return
	}

	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	ttl := c.TTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	if err := c.RDB.Set(ctx, dashboardCacheKey, raw, ttl).Err(); err != nil {
		log.Printf("dashboard cache set: %v", err)
	}
}
