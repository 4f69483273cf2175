package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"PassKeeper/internal/cli/bootstrap"
	"PassKeeper/internal/config"
	"PassKeeper/internal/handlers"
	"PassKeeper/internal/middleware"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	if cfg.DefaultAuthSecret() {
		sugar.Warnw("AUTH_SECRET is not set, API tokens are signed with the public default secret; set AUTH_SECRET or -auth-secret")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	svc, closeStore, err := bootstrap.OpenCredentialService(ctx, cfg, sugar)
	if err != nil {
		sugar.Fatalw("failed to open passwords db", "path", cfg.DBPath, "error", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			sugar.Errorw("failed to close passwords db", "error", err)
		}
	}()

	h := handlers.NewHandler(svc, sugar, cfg)

	srv := &http.Server{
		Addr:              cfg.BaseURL,
		Handler:           h.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	sugar.Infow(
		"Starting server",
		"addr", cfg.BaseURL,
	)
	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"DBPath", cfg.DBPath,
		"GenLength", cfg.GenLength,
	)

	go func() {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sugar.Errorw("Shutdown failed", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		sugar.Errorw("Server failed", "error", err)
	}
	sugar.Infow("Server stopped")
}
