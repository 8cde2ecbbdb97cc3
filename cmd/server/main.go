// Command server runs the Bilacert intake and catalog API.
//
//	@title						Bilacert API
//	@version					1.0
//	@description				Compliance service intake, catalog and content API.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/bilacert/bilacert-api/internal/config"
	httpapi "github.com/bilacert/bilacert-api/internal/http"
	"github.com/bilacert/bilacert-api/internal/observability"
	"github.com/bilacert/bilacert-api/internal/repo"
	"github.com/bilacert/bilacert-api/internal/sysutil"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const purgeInterval = time.Hour

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		sysutil.SetupLogger(os.Stderr, "info", false)
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	sysutil.SetupLogger(os.Stdout, cfg.LogLevel, cfg.LogPretty)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := observability.Setup(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}

	db, err := repo.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	r := gin.New()
	httpapi.RegisterRoutes(r, db, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go purgeIdempotency(ctx, db)

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("version", version).
			Bool("postgres", cfg.Database.IsPostgres()).
			Bool("sessions", cfg.Auth.Enabled()).
			Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		log.Error().Err(err).Msg("http server failed")
	}

	shCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if err := shutdownOTel(shCtx); err != nil {
		log.Error().Err(err).Msg("otel shutdown")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("server stopped")
}

// purgeIdempotency drops expired Idempotency-Key records until ctx ends.
func purgeIdempotency(ctx context.Context, db *gorm.DB) {
	t := time.NewTicker(purgeInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			n, err := repo.PurgeExpiredIdempotency(ctx, db, now.UTC())
			if err != nil {
				log.Warn().Err(err).Msg("idempotency purge failed")
				continue
			}
			if n > 0 {
				log.Debug().Int64("rows", n).Msg("idempotency records purged")
			}
		}
	}
}
