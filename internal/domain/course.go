package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review rating bounds, inclusive.
const (
	MinRating = 0
	MaxRating = 5
)

// Category is reference data for grouping courses.
type Category struct {
	ID   int
	Name string
}

// Course is a reviewable course with a running rating rollup.
// RatingSum and RatingCount are derived fields mutated only by the
// review service, always in lockstep with a review insert.
type Course struct {
	ID          uuid.UUID
	Name        string
	CategoryID  int
	AuthorID    uuid.UUID
	RatingSum   int64
	RatingCount int64
	CreatedAt   time.Time
}

// AverageRating returns the mean rating, or 0 when the course has no reviews.
func (c Course) AverageRating() float64 {
	if c.RatingCount == 0 {
		return 0
	}
	return float64(c.RatingSum) / float64(c.RatingCount)
}

// Review is a single user's review of a course. Reviews are append-only:
// at most one per (course, user), never edited or deleted by this service.
type Review struct {
	ID        uuid.UUID
	CourseID  uuid.UUID
	UserID    uuid.UUID
	Rating    int
	Text      string
	CreatedAt time.Time
}

// ReviewSort selects the ordering of a review listing.
type ReviewSort string

const (
	// ReviewSortNewest orders by created_at descending (default).
	ReviewSortNewest ReviewSort = "newest"
	// ReviewSortPositive orders by rating descending, then created_at descending.
	ReviewSortPositive ReviewSort = "positive"
	// ReviewSortNegative orders by rating ascending, then created_at descending.
	ReviewSortNegative ReviewSort = "negative"
)

// ParseReviewSort maps a request parameter to a ReviewSort,
// falling back to newest for unknown values.
func ParseReviewSort(s string) ReviewSort {
	switch ReviewSort(s) {
	case ReviewSortPositive:
		return ReviewSortPositive
	case ReviewSortNegative:
		return ReviewSortNegative
	default:
		return ReviewSortNewest
	}
}
