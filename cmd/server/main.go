package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/config"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/handler"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/infra"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/repository"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/router"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title AreaTrans Hub API
// @version 1.0
// @description Back office de plazas: asistencias, liquidaciones, flota, kilos/litros, compras, contactos y reparto.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	if cfg.Env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}

	redisClient, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		// The cache is an optimization; the API runs without it.
		log.Warn().Err(err).Msg("redis unavailable, geocode cache disabled")
		redisClient = nil
	}

	geocoder := infra.NewNominatimClient(
		cfg.GeocoderURL,
		cfg.GeocoderUserAgent,
		time.Duration(cfg.GeocoderTimeoutSeconds)*time.Second,
		redisClient,
	)

	userRepo := repository.NewUserRepository(db)
	hubRepo := repository.NewHubRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	liquidacionRepo := repository.NewLiquidacionRepository(db)
	flotaRepo := repository.NewFlotaRepository(db)
	kilosLitrosRepo := repository.NewKilosLitrosRepository(db)
	compraRepo := repository.NewCompraRepository(db)
	contactoRepo := repository.NewContactoRepository(db)
	repartoRepo := repository.NewRepartoRepository(db)

	hubService := service.NewHubService(hubRepo)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpirationHours)
	employeeService := service.NewEmployeeService(hubService, employeeRepo)
	asistenciasService := service.NewAsistenciasService(hubService, employeeService, attendanceRepo, employeeRepo)
	liquidacionesService := service.NewLiquidacionesService(hubService, liquidacionRepo)
	flotaService := service.NewFlotaService(hubService, flotaRepo)
	kilosLitrosService := service.NewKilosLitrosService(hubService, kilosLitrosRepo)
	comprasService := service.NewComprasService(hubService, compraRepo)
	contactosService := service.NewContactosService(hubService, contactoRepo)
	repartoService := service.NewRepartoService(hubService, repartoRepo, liquidacionRepo, geocoder)
	seedService := service.NewSeedService(hubService, liquidacionRepo, userRepo)

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	if err := seedService.EnsureDemoAdmin(seedCtx); err != nil {
		log.Warn().Err(err).Msg("demo admin seed failed")
	}
	if created, err := seedService.SeedRoutes(seedCtx); err != nil {
		log.Warn().Err(err).Msg("route seed failed")
	} else if created > 0 {
		log.Info().Int("routes", created).Msg("seed routes reconciled")
	}
	cancelSeed()

	engine := router.Setup(cfg, router.Handlers{
		Health:        handler.NewHealthHandler(db),
		Auth:          handler.NewAuthHandler(authService),
		Admin:         handler.NewAdminHandler(seedService),
		Asistencias:   handler.NewAsistenciasHandler(asistenciasService, employeeService),
		Employees:     handler.NewEmployeesHandler(employeeService),
		Liquidaciones: handler.NewLiquidacionesHandler(liquidacionesService),
		Flota:         handler.NewFlotaHandler(flotaService),
		KilosLitros:   handler.NewKilosLitrosHandler(kilosLitrosService),
		Compras:       handler.NewComprasHandler(comprasService),
		Contactos:     handler.NewContactosHandler(contactosService),
		Reparto:       handler.NewRepartoHandler(repartoService),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}
