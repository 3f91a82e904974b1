package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/DeValentRT/Horario-Prototipo/config"
)

// Client wraps the Redis connection.
// Used for the derived course-groups cache and request rate limiting.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient connects to Redis and pings it once.
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	logger.Info("redis connected", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── course-groups cache ──

const courseGroupsKey = "planner:course_groups"

// CacheCourseGroups stores the serialized derived group map.
// The entry is a cache of state reconstructible from courses + visibility;
// it is refreshed on every mutation and never read back as source of truth.
func (c *Client) CacheCourseGroups(ctx context.Context, payload []byte) error {
	return c.rdb.Set(ctx, courseGroupsKey, payload, 0).Err()
}

// CachedCourseGroups returns the last serialized group map, or redis.Nil.
func (c *Client) CachedCourseGroups(ctx context.Context) ([]byte, error) {
	return c.rdb.Get(ctx, courseGroupsKey).Bytes()
}

// ── rate limiting ──

// CheckRateLimit implements a sliding-window counter over a sorted set.
// Returns false when the window already holds `limit` entries.
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	now := time.Now()
	windowStart := now.Add(-window)

	pipe := c.rdb.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart.UnixNano()))
	count := pipe.ZCard(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	if count.Val() >= int64(limit) {
		return false, nil
	}

	pipe = c.rdb.TxPipeline()
	pipe.ZAdd(ctx, key, goredis.Z{
		Score:  float64(now.UnixNano()),
		Member: now.UnixNano(),
	})
	pipe.Expire(ctx, key, window)
	_, err := pipe.Exec(ctx)
	return true, err
}

// Close closes the Redis connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}
