package domain

import (
	"time"

	"github.com/google/uuid"
)

// VisitRecord is an immutable audit entry for one handled request.
// UserID is nil for anonymous callers. Records are never updated or deleted.
type VisitRecord struct {
	ID        int64
	Path      string
	UserID    *uuid.UUID
	CreatedAt time.Time
}

// PathVisits is one row of the by-page report: a path and how many
// visits it received.
type PathVisits struct {
	Path   string
	Visits int64
}

// UserVisits is one row of the by-user report. Users with zero visits
// still appear (the report left-joins visits onto users).
type UserVisits struct {
	UserID   uuid.UUID
	FullName string
	Visits   int64
}
