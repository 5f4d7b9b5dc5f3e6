package config

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
)

// NewRedis returns nil, nil when no address is configured.
func NewRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	val := strings.TrimSpace(cfg.Addr)
	if val == "" {
		return nil, nil
	}

	var client *redis.Client
	if strings.HasPrefix(val, "redis://") || strings.HasPrefix(val, "rediss://") {
		opt, err := redis.ParseURL(val)
		if err != nil {
			return nil, err
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: val})
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
