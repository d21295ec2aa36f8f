package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/avashisht/deardiary-backend/internal/adapter/postgres"
	moodrepo "github.com/avashisht/deardiary-backend/internal/adapter/postgres/mood"
	noterepo "github.com/avashisht/deardiary-backend/internal/adapter/postgres/note"
	tokenrepo "github.com/avashisht/deardiary-backend/internal/adapter/postgres/token"
	userrepo "github.com/avashisht/deardiary-backend/internal/adapter/postgres/user"
	authpkg "github.com/avashisht/deardiary-backend/internal/auth"
	"github.com/avashisht/deardiary-backend/internal/config"
	authsvc "github.com/avashisht/deardiary-backend/internal/service/auth"
	journalsvc "github.com/avashisht/deardiary-backend/internal/service/journal"
	moodsvc "github.com/avashisht/deardiary-backend/internal/service/mood"
	"github.com/avashisht/deardiary-backend/internal/transport/middleware"
	"github.com/avashisht/deardiary-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, runs migrations, wires repositories, services, and the HTTP
// transport, and serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	txm := postgres.NewTxManager(pool)

	userRepo := userrepo.New(pool)
	noteRepo := noterepo.New(pool)
	moodRepo := moodrepo.New(pool)
	tokenRepo := tokenrepo.New(pool)

	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, userRepo, tokenRepo, txm, jwtMgr, cfg.Auth)
	journalService := journalsvc.NewService(logger, noteRepo, cfg.Journal)
	moodService := moodsvc.NewService(logger, moodRepo)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Logger:  logger,
		Auth:    rest.NewAuthHandler(authService, logger),
		Notes:   rest.NewNoteHandler(journalService, logger),
		Moods:   rest.NewMoodHandler(moodService, logger),
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
		AuthSvc: authService,
		Limiter: limiter,
		CORS:    cfg.CORS,
		AuthCfg: cfg.Auth,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
