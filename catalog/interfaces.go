package catalog

import (
	"context"

	"github.com/poiesic/chatalogue/core"
	"github.com/poiesic/chatalogue/plan"
)

// CourseRepository provides read access to the course catalog.
// Implementations must be safe for concurrent use.
type CourseRepository interface {
	// Query executes a built plan and returns the matching rows in plan
	// order. An empty result is not an error.
	Query(ctx context.Context, q *plan.Query) ([]core.CourseRow, error)

	// FuzzyFindCourses resolves a free-text course title to course numbers.
	// Exact (case-insensitive) title matches are tried first; when none
	// exist, partial LIKE matches are returned in catalog order.
	FuzzyFindCourses(ctx context.Context, name string) ([]string, error)

	// Close closes the repository and releases resources.
	Close() error
}
