package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avolkovx/coursehub/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// RoleID looks up the id of a seeded role by name.
func RoleID(t *testing.T, pool *pgxpool.Pool, name domain.RoleName) int {
	t.Helper()

	var id int
	err := pool.QueryRow(context.Background(),
		`SELECT id FROM roles WHERE name = $1`, string(name),
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: RoleID(%s): %v", name, err)
	}
	return id
}

// SeedUser creates a user with the given role. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool, roleName domain.RoleName) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Login:        "testuser-" + suffix,
		PasswordHash: "x",
		FirstName:    "Test",
		LastName:     "User " + suffix,
		RoleID:       RoleID(t, pool, roleName),
		Role:         roleName,
		CreatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, login, password_hash, first_name, last_name, middle_name, role_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Login, user.PasswordHash, user.FirstName, user.LastName, user.MiddleName, user.RoleID, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedCategory creates a category with a unique name and returns its id.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) int {
	t.Helper()

	var id int
	err := pool.QueryRow(context.Background(),
		`INSERT INTO categories (name) VALUES ($1) RETURNING id`,
		"category-"+uniqueSuffix(),
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory insert: %v", err)
	}
	return id
}

// SeedCourse creates a course authored by the given user.
func SeedCourse(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID) domain.Course {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	course := domain.Course{
		ID:         uuid.New(),
		Name:       "course-" + uniqueSuffix(),
		CategoryID: SeedCategory(t, pool),
		AuthorID:   authorID,
		CreatedAt:  now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO courses (id, name, category_id, author_id, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		course.ID, course.Name, course.CategoryID, course.AuthorID, course.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCourse insert: %v", err)
	}

	return course
}

// SeedVisit appends a visit record directly.
func SeedVisit(t *testing.T, pool *pgxpool.Pool, path string, userID *uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO visit_log (path, user_id, created_at) VALUES ($1, $2, now())`,
		path, userID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVisit insert: %v", err)
	}
}
