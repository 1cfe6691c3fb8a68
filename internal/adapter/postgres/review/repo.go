// Package review implements the Review repository using PostgreSQL.
// Reviews are append-only; the unique index on (course_id, user_id) is
// the final authority on the one-review-per-user invariant.
package review

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

const table = "reviews"

var columns = []string{"id", "course_id", "user_id", "rating", "text", "created_at"}

// Repo provides review persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new review repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func scanReview(row pgx.Row) (domain.Review, error) {
	var rv domain.Review
	err := row.Scan(&rv.ID, &rv.CourseID, &rv.UserID, &rv.Rating, &rv.Text, &rv.CreatedAt)
	return rv, err
}

// Create inserts a new review row. A concurrent duplicate surfaces as
// domain.ErrAlreadyExists via the unique-violation mapping.
func (r *Repo) Create(ctx context.Context, rv domain.Review) (domain.Review, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(rv.ID, rv.CourseID, rv.UserID, rv.Rating, rv.Text, rv.CreatedAt).
		ToSql()
	if err != nil {
		return domain.Review{}, fmt.Errorf("build review insert: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return domain.Review{}, postgres.MapError(err, "review", rv.ID)
	}

	return rv, nil
}

// GetByCourseAndUser returns the user's review of a course, if any.
func (r *Repo) GetByCourseAndUser(ctx context.Context, courseID, userID uuid.UUID) (domain.Review, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"course_id": courseID, "user_id": userID}).
		ToSql()
	if err != nil {
		return domain.Review{}, fmt.Errorf("build review query: %w", err)
	}

	rv, err := scanReview(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Review{}, postgres.MapError(err, "review", courseID)
	}
	return rv, nil
}

// ListByCourse returns one course's reviews in the requested sort order
// with the total count for that course.
func (r *Repo) ListByCourse(ctx context.Context, courseID uuid.UUID, sort domain.ReviewSort, limit, offset int) ([]domain.Review, int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var order []string
	switch sort {
	case domain.ReviewSortPositive:
		order = []string{"rating DESC", "created_at DESC", "id ASC"}
	case domain.ReviewSortNegative:
		order = []string{"rating ASC", "created_at DESC", "id ASC"}
	default:
		order = []string{"created_at DESC", "id ASC"}
	}

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy(order...).
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build reviews query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "reviews", courseID)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, postgres.MapError(err, "reviews", courseID)
	}

	total, err := r.CountByCourse(ctx, courseID)
	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// CountByCourse returns the number of reviews for a course.
func (r *Repo) CountByCourse(ctx context.Context, courseID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"course_id": courseID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build reviews count: %w", err)
	}

	var total int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, postgres.MapError(err, "reviews", courseID)
	}
	return total, nil
}
