package database

import (
	"context"
	"fmt"

	"truth_buddy_backend/internal/config"
	"truth_buddy_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
)

// InitRedis connects to redis for the session cache. Like the database it is
// optional; the session cache works from memory alone without it.
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     50,
		MinIdleConns: 5,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	logger.Log.Info("redis connection established")
	return rdb, nil
}
