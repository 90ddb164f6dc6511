package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/stai-tuned/gcf-flood-backend/config"
	"github.com/stai-tuned/gcf-flood-backend/internal/bootstrap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := bootstrap.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
	defer log.Sync()

	bootstrap.SetGinMode(cfg.App.Environment)

	store, err := bootstrap.OpenStore(context.Background(), bootstrap.StoreOptions{Redis: cfg.Redis})
	if err != nil {
		log.Fatal("store connect failed", zap.Error(err))
	}
	defer store.Close()

	wiring := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:      "gcf-flood-backend",
		Version:          cfg.App.Version,
		CORS:             cfg.Server.CORSOrigins,
		SessionTTL:       cfg.App.SessionTTL,
		StrictCategories: cfg.App.StrictCategories,
		OpenAI:           cfg.OpenAI,
		Store:            store,
		Log:              log,
	})

	janitor := bootstrap.StartSessionJanitor(wiring.Sessions, log)
	defer janitor.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wiring.Engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
}
