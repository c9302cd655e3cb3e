package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moodlog/internal/config"
	"moodlog/internal/handlers"
	"moodlog/internal/logging"
	"moodlog/internal/storage"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logging.Init(logging.DefaultConfig())

	cfg := config.New()
	if err := cfg.Validate(); err != nil {
		logging.Fatal().Err(err).Msg("invalid configuration")
	}

	moodStorage := storage.NewMoodStorage()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handlers.NewRouter(moodStorage, cfg.DocumentRoot),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logging.Info().Msgf("server running at http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("listen and serve failed")
		}
	}()

	<-ctx.Done()
	logging.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("graceful shutdown failed")
	}
}
