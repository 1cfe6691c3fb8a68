// Package role implements the Role repository using PostgreSQL.
// Roles are immutable reference data; the repository is read-only.
package role

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/avolkovx/coursehub/internal/adapter/postgres"
	"github.com/avolkovx/coursehub/internal/domain"
)

const table = "roles"

var columns = []string{"id", "name", "description"}

// Repo provides role lookups backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new role repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByName returns the role with the given name.
func (r *Repo) GetByName(ctx context.Context, name domain.RoleName) (domain.Role, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"name": string(name)}).
		ToSql()
	if err != nil {
		return domain.Role{}, fmt.Errorf("build role query: %w", err)
	}

	var role domain.Role
	err = q.QueryRow(ctx, sql, args...).Scan(&role.ID, &role.Name, &role.Description)
	if err != nil {
		return domain.Role{}, postgres.MapError(err, "role", name)
	}

	return role, nil
}

// List returns all roles ordered by id.
func (r *Repo) List(ctx context.Context) ([]domain.Role, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build roles query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "roles", "all")
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Description); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "roles", "all")
	}

	return roles, nil
}
