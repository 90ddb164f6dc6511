package bootstrap

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/stai-tuned/gcf-flood-backend/internal/auth/repository"
)

// StartSessionJanitor prunes expired session records on a fixed
// schedule. Sessions carry no store-level TTL, so without the janitor
// expired blobs would accumulate until read.
func StartSessionJanitor(sessions *repository.SessionRepo, log *zap.Logger) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("@every 15m", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		n, err := sessions.PruneExpired(ctx, time.Now())
		if err != nil {
			log.Warn("session prune failed", zap.Error(err))
			return
		}
		if n > 0 {
			log.Info("pruned expired sessions", zap.Int("count", n))
		}
	})
	if err != nil {
		log.Error("janitor schedule rejected", zap.Error(err))
		return c
	}
	c.Start()
	return c
}
