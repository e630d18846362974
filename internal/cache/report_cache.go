package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"balneario/internal/entities"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a Redis client from REDIS_ADDR, REDIS_PASSWORD and
// REDIS_DB. Returns nil when the server cannot be reached; callers degrade
// gracefully by running without a cache.
func NewRedisClient() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	dbNum := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if n, err := strconv.Atoi(dbStr); err == nil {
			dbNum = n
		}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       dbNum,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unavailable at %s, report caching disabled: %v", addr, err)
		return nil
	}
	return client
}

// ReportCache holds recently computed occupancy reports. Entries live for
// a short TTL only; booking writes do not invalidate them, so the TTL is
// the staleness bound.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache wraps a Redis client. A nil client yields a cache whose
// lookups always miss.
func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &ReportCache{client: client, ttl: ttl}
}

func OccupancyKey(establishmentID int, from, to, serviceFilter string) string {
	return fmt.Sprintf("occupancy:%d:%s:%s:%s", establishmentID, from, to, serviceFilter)
}

func (c *ReportCache) GetOccupancy(ctx context.Context, key string) (*entities.OccupancyReport, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var report entities.OccupancyReport
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, false
	}
	return &report, true
}

func (c *ReportCache) SetOccupancy(ctx context.Context, key string, report *entities.OccupancyReport) {
	if c == nil || c.client == nil {
		return
	}
	payload, err := json.Marshal(report)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		log.Printf("Error caching occupancy report %s: %v", key, err)
	}
}
