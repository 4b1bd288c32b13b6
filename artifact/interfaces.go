package artifact

import (
	"context"

	"github.com/poiesic/chatalogue/core"
)

// CentroidRepository stores trained intent classifier artifacts: one mean
// embedding vector per (model, label) tuple. Implementations must be
// thread-safe.
type CentroidRepository interface {
	// PutCentroids stores centroids, replacing existing ones with the same
	// (model, label) tuple. Assigns content-based IDs and timestamps.
	// Returns the centroids with IDs and timestamps populated.
	PutCentroids(ctx context.Context, centroids ...*core.Centroid) ([]*core.Centroid, error)

	// GetCentroid retrieves the centroid for a (model, label) tuple.
	// Returns ErrNotFound if it doesn't exist.
	GetCentroid(ctx context.Context, model, label string) (*core.Centroid, error)

	// ListCentroids retrieves every centroid stored for a model, ordered
	// by label.
	ListCentroids(ctx context.Context, model string) ([]*core.Centroid, error)

	// DeleteCentroids removes the centroids for the given labels of a model.
	// Returns ErrNotFound if any doesn't exist.
	DeleteCentroids(ctx context.Context, model string, labels ...string) error

	// Close closes the repository and releases resources.
	Close() error
}
