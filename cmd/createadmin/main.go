// Command createadmin bootstraps the first administrator account.
// Accounts can only be created by admins through the API, so a fresh
// deployment needs one seeded out of band.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/avolkovx/coursehub/internal/adapter/postgres"
	rolerepo "github.com/avolkovx/coursehub/internal/adapter/postgres/role"
	userrepo "github.com/avolkovx/coursehub/internal/adapter/postgres/user"
	"github.com/avolkovx/coursehub/internal/app"
	"github.com/avolkovx/coursehub/internal/config"
	"github.com/avolkovx/coursehub/internal/domain"
	usersvc "github.com/avolkovx/coursehub/internal/service/user"
)

func main() {
	login := flag.String("login", "admin", "login for the new administrator")
	password := flag.String("password", "", "password for the new administrator (required)")
	firstName := flag.String("first-name", "Admin", "first name")
	lastName := flag.String("last-name", "Admin", "last name")
	flag.Parse()

	if *password == "" {
		log.Fatal("the -password flag is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	roles := rolerepo.New(pool)
	svc := usersvc.NewService(logger, users, roles, cfg.Reports)

	// The service only lets admins create accounts; bootstrap with a
	// synthetic admin identity.
	bootstrap := domain.Identity{UserID: uuid.New(), Role: domain.RoleAdmin}

	created, err := svc.Create(ctx, bootstrap, usersvc.CreateInput{
		Login:     *login,
		Password:  *password,
		FirstName: *firstName,
		LastName:  *lastName,
		Role:      domain.RoleAdmin,
	})
	if err != nil {
		logger.Error("create admin", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("administrator created",
		slog.String("user_id", created.ID.String()),
		slog.String("login", created.Login),
	)
}
