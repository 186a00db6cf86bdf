package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blogapi/internal/api"
	"blogapi/internal/auth"
	"blogapi/internal/config"
	"blogapi/internal/db"
	"blogapi/internal/logger"
	"blogapi/internal/metrics"
	"blogapi/internal/middleware"
	"blogapi/internal/repository/postgres"
	"blogapi/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Migrate {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	repos := postgres.NewRepositories(pool)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	userSvc := services.NewUserService(repos.Users, tokens)
	postSvc := services.NewPostService(repos.Posts, repos.Comments)
	resolver := middleware.NewSessionResolver(tokens, repos.Users)

	metrics.Init()
	r := api.NewRouter(cfg, resolver, userSvc, postSvc)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
