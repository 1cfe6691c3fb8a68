// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/avolkovx/coursehub/internal/adapter/postgres"
	"github.com/avolkovx/coursehub/internal/domain"
)

const table = "users"

// selectColumns joins users with roles so every loaded user carries its role name.
var selectColumns = []string{
	"u.id", "u.login", "u.password_hash", "u.first_name", "u.last_name",
	"u.middle_name", "u.role_id", "r.name AS role", "u.created_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func selectBuilder() squirrel.SelectBuilder {
	return postgres.Builder().
		Select(selectColumns...).
		From(table + " AS u").
		Join("roles AS r ON r.id = u.role_id")
}

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Login, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.MiddleName, &u.RoleID, &u.Role, &u.CreatedAt,
	)
	return u, err
}

// Create inserts a new user row.
func (r *Repo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "login", "password_hash", "first_name", "last_name", "middle_name", "role_id", "created_at").
		Values(u.ID, u.Login, u.PasswordHash, u.FirstName, u.LastName, u.MiddleName, u.RoleID, u.CreatedAt).
		ToSql()
	if err != nil {
		return domain.User{}, fmt.Errorf("build user insert: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return domain.User{}, postgres.MapError(err, "user", u.Login)
	}

	return r.GetByID(ctx, u.ID)
}

// GetByID returns the user with the given id, including its role name.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := selectBuilder().Where(squirrel.Eq{"u.id": id}).ToSql()
	if err != nil {
		return domain.User{}, fmt.Errorf("build user query: %w", err)
	}

	u, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByLogin returns the user with the given login, including its role name.
func (r *Repo) GetByLogin(ctx context.Context, login string) (domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := selectBuilder().Where(squirrel.Eq{"u.login": login}).ToSql()
	if err != nil {
		return domain.User{}, fmt.Errorf("build user query: %w", err)
	}

	u, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", login)
	}
	return u, nil
}

// List returns users ordered by created_at ascending with the total count.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := selectBuilder().
		OrderBy("u.created_at ASC", "u.id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build users query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "users", "list")
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, postgres.MapError(err, "users", "list")
	}

	total, err := r.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// Count returns the total number of users.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("COUNT(*)").
		From(table).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build users count: %w", err)
	}

	var total int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, postgres.MapError(err, "users", "count")
	}
	return total, nil
}

// UpdateProfile updates a user's name fields and, when roleID is non-nil,
// its role. The role pointer distinguishes the admin edit (may reassign
// roles) from the self edit (may not).
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, firstName, lastName string, middleName *string, roleID *int) (domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := postgres.Builder().
		Update(table).
		Set("first_name", firstName).
		Set("last_name", lastName).
		Set("middle_name", middleName).
		Where(squirrel.Eq{"id": id})
	if roleID != nil {
		update = update.Set("role_id", *roleID)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return domain.User{}, fmt.Errorf("build user update: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return domain.User{}, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	return r.GetByID(ctx, id)
}

// UpdatePassword replaces the stored password hash.
func (r *Repo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("password_hash", passwordHash).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build password update: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a user row.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build user delete: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
