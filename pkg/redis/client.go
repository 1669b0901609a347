package redis

import (
	"context"

	"github.com/inklore/backend/config"
	"github.com/redis/go-redis/v9"
)

// NewClient connects to redis with the configured pool and timeout settings
// and fails fast when the server is unreachable, so a misconfigured presence
// store surfaces at startup instead of degrading silently.
func NewClient(ctx context.Context, cfg config.RedisConfigs) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout.Std(),
		ReadTimeout:  cfg.ReadTimeout.Std(),
		WriteTimeout: cfg.WriteTimeout.Std(),
		PoolSize:     cfg.PoolSize,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return client, nil
}
