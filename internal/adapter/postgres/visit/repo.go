// Package visit implements the VisitRecord repository using PostgreSQL.
// Visit records are append-only: the repository exposes Create plus
// read-side listings and grouped counts, never update or delete.
package visit

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/avolkovx/coursehub/internal/adapter/postgres"
	"github.com/avolkovx/coursehub/internal/domain"
)

const table = "visit_log"

// Repo provides visit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new visit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create appends one visit record and returns it with its assigned id.
func (r *Repo) Create(ctx context.Context, rec domain.VisitRecord) (domain.VisitRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("path", "user_id", "created_at").
		Values(rec.Path, rec.UserID, rec.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return domain.VisitRecord{}, fmt.Errorf("build visit insert: %w", err)
	}

	if err := q.QueryRow(ctx, sql, args...).Scan(&rec.ID); err != nil {
		return domain.VisitRecord{}, postgres.MapError(err, "visit_record", rec.Path)
	}

	return rec, nil
}

// ListAll returns visit records ordered by created_at descending with the
// total count. Used for the admin visit history.
func (r *Repo) ListAll(ctx context.Context, limit, offset int) ([]domain.VisitRecord, int64, error) {
	return r.list(ctx, squirrel.Sqlizer(nil), limit, offset)
}

// ListByUser returns one user's visit records ordered by created_at
// descending with the total count for that user.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.VisitRecord, int64, error) {
	return r.list(ctx, squirrel.Eq{"user_id": userID}, limit, offset)
}

func (r *Repo) list(ctx context.Context, where squirrel.Sqlizer, limit, offset int) ([]domain.VisitRecord, int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sel := postgres.Builder().
		Select("id", "path", "user_id", "created_at").
		From(table).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))
	count := postgres.Builder().Select("COUNT(*)").From(table)
	if where != nil {
		sel = sel.Where(where)
		count = count.Where(where)
	}

	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build visits query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "visit_records", "list")
	}
	defer rows.Close()

	var records []domain.VisitRecord
	for rows.Next() {
		var rec domain.VisitRecord
		if err := rows.Scan(&rec.ID, &rec.Path, &rec.UserID, &rec.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan visit record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, postgres.MapError(err, "visit_records", "list")
	}

	sql, args, err = count.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build visits count: %w", err)
	}
	var total int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "visit_records", "count")
	}

	return records, total, nil
}

// CountByPath groups visit records by path and counts rows per group,
// ordered by count descending with path ascending as the tie-break.
// limit <= 0 disables windowing (used by the CSV projection, which must
// agree with the paginated report on ordering by construction).
func (r *Repo) CountByPath(ctx context.Context, limit, offset int) ([]domain.PathVisits, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sel := postgres.Builder().
		Select("path", "COUNT(*) AS visits").
		From(table).
		GroupBy("path").
		OrderBy("visits DESC", "path ASC")
	if limit > 0 {
		sel = sel.Limit(uint64(limit)).Offset(uint64(offset))
	}

	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build by-path query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "visit_records", "by-path")
	}
	defer rows.Close()

	var result []domain.PathVisits
	for rows.Next() {
		var pv domain.PathVisits
		if err := rows.Scan(&pv.Path, &pv.Visits); err != nil {
			return nil, fmt.Errorf("scan path visits: %w", err)
		}
		result = append(result, pv)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "visit_records", "by-path")
	}

	return result, nil
}

// CountDistinctPaths returns the number of groups in the by-path report.
func (r *Repo) CountDistinctPaths(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("COUNT(DISTINCT path)").
		From(table).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build distinct-paths count: %w", err)
	}

	var total int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, postgres.MapError(err, "visit_records", "distinct-paths")
	}
	return total, nil
}

// CountByUser left-joins users to visit records so users with zero visits
// appear with count 0, ordered by count descending then by the display
// name ascending (id as the final tie-break). limit <= 0 disables
// windowing for the CSV projection.
func (r *Repo) CountByUser(ctx context.Context, limit, offset int) ([]domain.UserVisits, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sel := postgres.Builder().
		Select(
			"u.id",
			"CONCAT_WS(' ', u.last_name, u.first_name, u.middle_name) AS full_name",
			"COUNT(v.id) AS visits",
		).
		From("users AS u").
		LeftJoin(table + " AS v ON v.user_id = u.id").
		GroupBy("u.id", "u.last_name", "u.first_name", "u.middle_name").
		OrderBy("visits DESC", "u.last_name ASC", "u.first_name ASC", "u.id ASC")
	if limit > 0 {
		sel = sel.Limit(uint64(limit)).Offset(uint64(offset))
	}

	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build by-user query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "visit_records", "by-user")
	}
	defer rows.Close()

	var result []domain.UserVisits
	for rows.Next() {
		var uv domain.UserVisits
		if err := rows.Scan(&uv.UserID, &uv.FullName, &uv.Visits); err != nil {
			return nil, fmt.Errorf("scan user visits: %w", err)
		}
		result = append(result, uv)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "visit_records", "by-user")
	}

	return result, nil
}

// CountUsers returns the number of groups in the by-user report
// (every user is a group, visits or not).
func (r *Repo) CountUsers(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("COUNT(*)").
		From("users").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build users count: %w", err)
	}

	var total int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, postgres.MapError(err, "visit_records", "users-count")
	}
	return total, nil
}
