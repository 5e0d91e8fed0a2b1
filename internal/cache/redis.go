package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps Redis for view-count deduplication. The previous incarnation
// of this feature was a process-global map with an ambient timer; a shared
// store with TTL-based eviction replaces it.
type Client struct {
	rdb     *redis.Client
	viewTTL time.Duration
}

type Config struct {
	Addr     string
	Password string
	ViewTTL  time.Duration
}

func New(cfg Config) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           0,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		DialTimeout:  5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ttl := cfg.ViewTTL
	if ttl == 0 {
		ttl = 30 * time.Minute
	}

	return &Client{rdb: rdb, viewTTL: ttl}, nil
}

// MarkViewed records that viewer has seen the article and reports whether
// this is the first view within the dedup window. SETNX with a TTL gives
// both the check and the eviction in one round trip.
func (c *Client) MarkViewed(ctx context.Context, newsID int64, viewer string) (bool, error) {
	key := fmt.Sprintf("news:viewed:%d:%s", newsID, viewer)
	first, err := c.rdb.SetNX(ctx, key, 1, c.viewTTL).Result()
	if err != nil {
		return false, fmt.Errorf("view dedup lookup failed: %w", err)
	}
	return first, nil
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
