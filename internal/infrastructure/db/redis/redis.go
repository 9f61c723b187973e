package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultDialTimeout = 5 * time.Second

// Config holds the session cache connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
	// DialTimeout bounds the start-up ping as well as each new connection.
	DialTimeout time.Duration
}

// Connect opens the session cache client and pings it once. Start-up fails
// when the cache is unreachable because login cannot work without it.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	dial := cfg.DialTimeout
	if dial <= 0 {
		dial = defaultDialTimeout
	}

	opts := &redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: dial,
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, dial)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("session cache %s: %w", cfg.Addr, err)
	}

	return client, nil
}
