package intent

import "errors"

var (
	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrModelRequired is returned when no embedding model identifier is provided.
	ErrModelRequired = errors.New("embedding model identifier required")

	// ErrNoCentroids is returned when a classifier is built without centroids.
	ErrNoCentroids = errors.New("no centroids provided")

	// ErrModelMismatch is returned when centroids were produced by different
	// embedding models.
	ErrModelMismatch = errors.New("centroid embedding models do not match")

	// ErrNoExamples is returned when a training set is empty.
	ErrNoExamples = errors.New("no training examples")
)
