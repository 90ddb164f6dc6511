package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stai-tuned/gcf-flood-backend/config"
)

type StoreOptions struct {
	Redis  config.Redis
	PingTO time.Duration
}

// OpenStore connects to the key-value store and verifies it answers.
func OpenStore(ctx context.Context, opt StoreOptions) (*redis.Client, error) {
	if opt.Redis.Addr == "" {
		return nil, fmt.Errorf("REDIS_ADDR is not set")
	}
	if opt.PingTO == 0 {
		opt.PingTO = 2 * time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opt.Redis.Addr,
		Password: opt.Redis.Password,
		DB:       opt.Redis.DB,
	})

	pctx, cancel := context.WithTimeout(ctx, opt.PingTO)
	defer cancel()

	if err := client.Ping(pctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("store ping: %w", err)
	}

	return client, nil
}
