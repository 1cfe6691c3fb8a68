package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/avolkovx/coursehub/internal/domain"
)

// Login authenticates a user with login + password and issues a session
// token. Returns ErrUnauthorized for unknown logins and wrong passwords
// alike, so callers cannot probe which logins exist.
func (s *Service) Login(ctx context.Context, input LoginInput) (LoginResult, error) {
	input.Login = strings.TrimSpace(input.Login)

	if err := input.Validate(); err != nil {
		return LoginResult{}, err
	}

	user, err := s.users.GetByLogin(ctx, input.Login)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return LoginResult{}, domain.ErrUnauthorized
		}
		return LoginResult{}, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return LoginResult{}, domain.ErrUnauthorized
	}

	token, err := s.jwt.Issue(domain.Identity{UserID: user.ID, Role: user.Role})
	if err != nil {
		return LoginResult{}, fmt.Errorf("auth.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()),
		slog.String("role", string(user.Role)))

	return LoginResult{Token: token, User: user}, nil
}
