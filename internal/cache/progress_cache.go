package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"novelhub/internal/http-api/models"
)

// progress entries expire after 90 days of inactivity
const progressTTL = 90 * 24 * time.Hour

// ProgressCache keeps the most recent reading progress in redis, one
// hash per (user, novel). It is a read accelerator in front of
// postgres, never the source of truth, so every method is a no-op on a
// nil receiver and errors are safe to ignore for writes.
type ProgressCache struct {
	client *redis.Client
}

func NewProgressCache(redisAddr, password string) (*ProgressCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         redisAddr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &ProgressCache{client: rdb}, nil
}

func progressKey(userID string, novelID int64) string {
	return fmt.Sprintf("progress:user:%s:novel:%d", userID, novelID)
}

// Save upserts the hash and refreshes the TTL.
func (c *ProgressCache) Save(ctx context.Context, p *models.UserProgress) error {
	if c == nil || c.client == nil {
		return nil
	}
	key := progressKey(p.UserID, p.NovelID)

	fields := map[string]any{
		"user_id":         p.UserID,
		"novel_id":        p.NovelID,
		"current_chapter": p.CurrentChapter,
		"status":          p.Status,
		"updated_at":      p.UpdatedAt.Format(time.RFC3339Nano),
	}

	if err := c.client.HSet(ctx, key, fields).Err(); err != nil {
		return err
	}
	return c.client.Expire(ctx, key, progressTTL).Err()
}

// Get returns the cached progress, or (nil, nil) on a cache miss.
func (c *ProgressCache) Get(ctx context.Context, userID string, novelID int64) (*models.UserProgress, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	key := progressKey(userID, novelID)

	fields, err := c.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}

	p := &models.UserProgress{
		UserID:  userID,
		NovelID: novelID,
		Status:  fields["status"],
	}
	if ch, ok := fields["current_chapter"]; ok {
		p.CurrentChapter, _ = strconv.Atoi(ch)
	}
	if ts, ok := fields["updated_at"]; ok {
		p.UpdatedAt, _ = time.Parse(time.RFC3339Nano, ts)
	}

	return p, nil
}

// Delete drops the cached entry, e.g. when a novel is removed.
func (c *ProgressCache) Delete(ctx context.Context, userID string, novelID int64) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, progressKey(userID, novelID)).Err()
}

func (c *ProgressCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
