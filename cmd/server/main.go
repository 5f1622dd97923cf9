package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/loadouthq/setups/internal/config"
	"github.com/loadouthq/setups/internal/database"
	"github.com/loadouthq/setups/internal/handler"
	"github.com/loadouthq/setups/internal/middleware"
	"github.com/loadouthq/setups/internal/repository"
	"github.com/loadouthq/setups/internal/service"
	"github.com/loadouthq/setups/pkg/jwt"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	jwtService, err := jwt.NewService(jwt.Config{
		PrivateKeyPath: cfg.JWT.PrivateKeyPath,
		PublicKeyPath:  cfg.JWT.PublicKeyPath,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	setupRepo := repository.NewSetupRepository(db)
	setupService := service.NewSetupService(setupRepo)
	setupHandler := handler.NewSetupHandler(setupService, logger)
	healthHandler := handler.NewHealthHandler(db)

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Limit:    120,
		Interval: time.Minute,
	})
	defer rateLimiter.Stop()

	authMiddleware := middleware.Auth(jwtService)
	optionalAuth := middleware.OptionalAuth(jwtService)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", healthHandler.Health)

	// Listing is public; everything else requires a bearer token. The list
	// route still resolves an identity when one is presented so rate limiting
	// and logs key on the user rather than the remote address.
	mux.Handle("GET /setups", optionalAuth(http.HandlerFunc(setupHandler.List)))
	mux.Handle("GET /setups/{setupId}", authMiddleware(http.HandlerFunc(setupHandler.Get)))
	mux.Handle("POST /setups", authMiddleware(http.HandlerFunc(setupHandler.Create)))
	mux.Handle("PATCH /setups/{setupId}", authMiddleware(http.HandlerFunc(setupHandler.Update)))
	mux.Handle("DELETE /setups/{setupId}", authMiddleware(http.HandlerFunc(setupHandler.Delete)))

	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.RateLimit(rateLimiter),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
