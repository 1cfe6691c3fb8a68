package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// RoleName identifies one of the fixed application roles.
type RoleName string

const (
	RoleAdmin RoleName = "admin"
	RoleUser  RoleName = "user"
)

// Valid reports whether the role name is one of the known roles.
func (r RoleName) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Role is immutable reference data describing a permission class.
type Role struct {
	ID          int
	Name        RoleName
	Description string
}

// User represents an application user account.
type User struct {
	ID           uuid.UUID
	Login        string
	PasswordHash string
	FirstName    string
	LastName     string
	MiddleName   *string
	RoleID       int
	Role         RoleName
	CreatedAt    time.Time
}

// FullName returns "last first middle" with the middle name omitted when absent.
// This is the display key used by the by-user visit report and its CSV export.
func (u User) FullName() string {
	parts := []string{u.LastName, u.FirstName}
	if u.MiddleName != nil && strings.TrimSpace(*u.MiddleName) != "" {
		parts = append(parts, *u.MiddleName)
	}
	return strings.Join(parts, " ")
}

// Identity is the resolved caller of a single request.
// The zero value is the anonymous identity.
type Identity struct {
	UserID uuid.UUID
	Role   RoleName
}

// Anonymous reports whether the identity belongs to an unauthenticated caller.
func (i Identity) Anonymous() bool {
	return i.UserID == uuid.Nil
}

// IsAdmin reports whether the identity holds the admin role.
func (i Identity) IsAdmin() bool {
	return !i.Anonymous() && i.Role == RoleAdmin
}
