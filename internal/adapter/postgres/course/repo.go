// Package course implements the Course repository using PostgreSQL.
package course

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

const table = "courses"

var columns = []string{"id", "name", "category_id", "author_id", "rating_sum", "rating_count", "created_at"}

// Repo provides course persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new course repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func scanCourse(row pgx.Row) (domain.Course, error) {
	var c domain.Course
	err := row.Scan(&c.ID, &c.Name, &c.CategoryID, &c.AuthorID, &c.RatingSum, &c.RatingCount, &c.CreatedAt)
	return c, err
}

// Create inserts a new course row with zeroed rating aggregates.
func (r *Repo) Create(ctx context.Context, c domain.Course) (domain.Course, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "name", "category_id", "author_id", "created_at").
		Values(c.ID, c.Name, c.CategoryID, c.AuthorID, c.CreatedAt).
		ToSql()
	if err != nil {
		return domain.Course{}, fmt.Errorf("build course insert: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return domain.Course{}, postgres.MapError(err, "course", c.Name)
	}

	return r.GetByID(ctx, c.ID)
}

// GetByID returns the course with the given id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Course, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Course{}, fmt.Errorf("build course query: %w", err)
	}

	c, err := scanCourse(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Course{}, postgres.MapError(err, "course", id)
	}
	return c, nil
}

// List returns courses ordered by created_at descending with the total count.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.Course, int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build courses query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "courses", "list")
	}
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, postgres.MapError(err, "courses", "list")
	}

	countSQL, countArgs, err := postgres.Builder().Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build courses count: %w", err)
	}
	var total int64
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "courses", "count")
	}

	return courses, total, nil
}

// ApplyReview advances the rating rollup for one new review:
// rating_sum += rating, rating_count += 1 in a single UPDATE. It must be
// called inside the same transaction as the review insert so the rollup
// and the review commit or roll back together.
func (r *Repo) ApplyReview(ctx context.Context, courseID uuid.UUID, rating int) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("rating_sum", squirrel.Expr("rating_sum + ?", rating)).
		Set("rating_count", squirrel.Expr("rating_count + 1")).
		Where(squirrel.Eq{"id": courseID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build rating update: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "course", courseID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("course %s: %w", courseID, domain.ErrNotFound)
	}
	return nil
}

// ListCategories returns all course categories ordered by name.
func (r *Repo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("id", "name").
		From("categories").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build categories query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "categories", "all")
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "categories", "all")
	}

	return categories, nil
}
