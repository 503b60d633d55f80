package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Apurva9997/planning-poker/internal/auth"
	"github.com/Apurva9997/planning-poker/internal/config"
	"github.com/Apurva9997/planning-poker/internal/engine"
	"github.com/Apurva9997/planning-poker/internal/httpapi"
	"github.com/Apurva9997/planning-poker/internal/notify"
	"github.com/Apurva9997/planning-poker/internal/service"
	"github.com/Apurva9997/planning-poker/internal/store"
	"github.com/Apurva9997/planning-poker/internal/sweeper"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize zerolog global logger early so config.Load can use it.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	// Human-friendly output for terminal; in production you may want JSON only.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.Mode == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	st, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Store).Msg("failed to open store")
	}
	defer st.Close()

	hub := notify.NewHub()
	svc := service.New(st, engine.New(), hub)
	verifier := auth.NewVerifier(cfg.AdminSecret, cfg.AdminUIDs)

	sweep := sweeper.New(st, cfg.RoomTTL)
	if err := sweep.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start room expiry sweep")
	}
	defer sweep.Stop()

	handlers := httpapi.NewHandlers(svc, hub, verifier, cfg.PingPeriod)
	r := httpapi.SetupRouter(cfg, handlers)
	addr := fmt.Sprintf(":%d", cfg.Port)

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", addr).Str("store", cfg.Store).Msg("planning poker server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited gracefully")
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.Store {
	case "", "memory":
		return store.NewMemory(), nil
	case "sqlite":
		return store.OpenSQLite(cfg.SQLitePath)
	case "redis":
		return store.OpenRedis(ctx, cfg.RedisAddr)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store)
	}
}
