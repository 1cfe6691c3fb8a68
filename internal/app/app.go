// Package app assembles and runs the service.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for goose migrations
	"github.com/pressly/goose/v3"

	jwtauth "github.com/avolkovx/coursehub/internal/auth"
	"github.com/avolkovx/coursehub/internal/config"

	"github.com/avolkovx/coursehub/internal/adapter/postgres"
	courserepo "github.com/avolkovx/coursehub/internal/adapter/postgres/course"
	reviewrepo "github.com/avolkovx/coursehub/internal/adapter/postgres/review"
	rolerepo "github.com/avolkovx/coursehub/internal/adapter/postgres/role"
	userrepo "github.com/avolkovx/coursehub/internal/adapter/postgres/user"
	visitrepo "github.com/avolkovx/coursehub/internal/adapter/postgres/visit"

	authsvc "github.com/avolkovx/coursehub/internal/service/auth"
	coursesvc "github.com/avolkovx/coursehub/internal/service/course"
	reviewsvc "github.com/avolkovx/coursehub/internal/service/review"
	usersvc "github.com/avolkovx/coursehub/internal/service/user"
	visitlogsvc "github.com/avolkovx/coursehub/internal/service/visitlog"

	"github.com/avolkovx/coursehub/internal/transport/middleware"
	"github.com/avolkovx/coursehub/internal/transport/rest"
)

// Run is the application entry point: it loads configuration, connects
// to PostgreSQL, optionally applies migrations, wires services and
// handlers, and serves HTTP until the context is cancelled or a
// termination signal arrives.
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

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Database.Migrate {
		if err := runMigrations(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// Repositories.
	roles := rolerepo.New(pool)
	users := userrepo.New(pool)
	visits := visitrepo.New(pool)
	courses := courserepo.New(pool)
	reviews := reviewrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	// Services.
	jwt := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL)
	authService := authsvc.NewService(logger, users, jwt)
	userService := usersvc.NewService(logger, users, roles, cfg.Reports)
	visitService := visitlogsvc.NewService(logger, visits, cfg.Reports)
	courseService := coursesvc.NewService(logger, courses, cfg.Reports)
	reviewService := reviewsvc.NewService(logger, reviews, courses, txm, cfg.Reports)

	// HTTP.
	handlers := rest.Handlers{
		Auth:    rest.NewAuthHandler(authService, cfg.Auth, logger),
		Users:   rest.NewUserHandler(userService, logger),
		Courses: rest.NewCourseHandler(courseService, logger),
		Reviews: rest.NewReviewHandler(reviewService, logger),
		Reports: rest.NewReportsHandler(visitService, logger),
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	base := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RatePerMinute),
		middleware.Auth(jwt, cfg.Auth.CookieName),
	}

	router := rest.NewRouter(handlers, base, middleware.VisitLog(visitService))

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}

// runMigrations applies pending goose migrations. goose needs
// database/sql, so it gets its own short-lived connection.
func runMigrations(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS("migrations"))
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
