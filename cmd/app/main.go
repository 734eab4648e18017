package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"vetclinic/config"
	"vetclinic/di"
	"vetclinic/helper"
	"vetclinic/shared/logger"
)

// @title						Vet Clinic Scheduling API
// @version					1.0
// @description				Visit booking, finalization and availability for a veterinary clinic.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @securityDefinitions.apikey	ApiKeyAuth
// @in							header
// @name						X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply database migrations")
		}
	}

	app := di.InitializeApp()

	ctx, cancel := context.WithCancel(context.Background())

	if cfg.Scheduler.Enable {
		go app.Expiration.Run(ctx)
	} else {
		log.Warn().Msg("Scheduler disabled, elapsed visits are only expired on demand")
	}

	app.HTTP.OnShutdown(func(_ context.Context) error {
		cancel()

		return nil
	})
	app.HTTP.OnShutdown(func(_ context.Context) error {
		return app.Kafka.Close()
	})
	app.HTTP.OnShutdown(func(_ context.Context) error {
		return app.DB.Close()
	})
	app.HTTP.OnShutdown(app.Otel.Shutdown)

	app.HTTP.Serve()
}
