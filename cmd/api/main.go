package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sitetrack-backend/bootstrap"
	"sitetrack-backend/internal/config"
	"sitetrack-backend/internal/interfaces/router"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load")
	}
	bootstrap.SetupLogging(cfg)

	app, deps, err := router.CreateApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("app create")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := deps.Store.Ping(ctx); err != nil {
		cancel()
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("store connection failed")
	}
	log.Info().Str("driver", cfg.StoreDriver).Msg("store connected")
	if deps.Rdb != nil {
		if err := deps.Rdb.Ping(ctx).Err(); err != nil {
			cancel()
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		log.Info().Msg("redis connected")
	}
	cancel()

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("port", cfg.Port).Msgf("health check: http://localhost:%s/health/json", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("listen")
	}
}
