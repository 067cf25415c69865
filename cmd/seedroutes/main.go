// Command seedroutes reconciles the seed hubs, settlement routes and the
// demo admin against the configured database, then exits. Useful for fresh
// environments and CI fixtures without starting the API.
package main

import (
	"context"
	"os"
	"time"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/config"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/infra"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/repository"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}

	hubService := service.NewHubService(repository.NewHubRepository(db))
	seed := service.NewSeedService(hubService, repository.NewLiquidacionRepository(db), repository.NewUserRepository(db))

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := seed.EnsureDemoAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("demo admin seed failed")
	}
	created, err := seed.SeedRoutes(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("route seed failed")
	}
	log.Info().Int("routes_created", created).Msg("seed completed")
}
