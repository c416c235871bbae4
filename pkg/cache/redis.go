package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/schedule-assistant/soc-api/pkg/config"
)

// NewRedis returns a configured Redis client. The cache is best-effort by
// contract, so an unreachable server is logged and the client is returned
// anyway; every subsequent operation on it fails soft.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *redis.Client {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, cache degraded", zap.String("addr", addr), zap.Error(err))
	}

	return client
}
