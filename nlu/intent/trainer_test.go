package intent

import (
	"context"
	"math"
	"testing"

	"github.com/poiesic/chatalogue/nlu/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrainer(t *testing.T) {
	t.Run("nil embedder", func(t *testing.T) {
		_, err := NewTrainer(nil, "test-model")
		assert.Equal(t, ErrEmbedderRequired, err)
	})

	t.Run("empty model", func(t *testing.T) {
		_, err := NewTrainer(mock.NewMockEmbedder(), "")
		assert.Equal(t, ErrModelRequired, err)
	})
}

func TestTrain(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		switch text {
		case "hello", "hi there":
			return []float32{1, 0}, nil
		default:
			return []float32{0, 1}, nil
		}
	}

	trainer, err := NewTrainer(embedder, "test-model", WithPoolSize(2))
	require.NoError(t, err)
	defer trainer.Release()

	centroids, err := trainer.Train(context.Background(), []Example{
		{Text: "hello", Label: "chitchat"},
		{Text: "hi there", Label: "chitchat"},
		{Text: "who teaches CS 575", Label: "instructor_lookup"},
	})
	require.NoError(t, err)
	require.Len(t, centroids, 2)

	// Labels come back sorted.
	assert.Equal(t, "chitchat", centroids[0].Label)
	assert.Equal(t, "instructor_lookup", centroids[1].Label)

	assert.Equal(t, "test-model", centroids[0].Model)
	assert.Equal(t, 2, centroids[0].Examples)
	assert.Equal(t, 1, centroids[1].Examples)
	assert.NotZero(t, centroids[0].Id)
	assert.NotEqual(t, centroids[0].Id, centroids[1].Id)

	// Identical examples average to the same unit vector.
	assert.InDelta(t, 1.0, float64(centroids[0].Vector[0]), 0.0001)
	assert.InDelta(t, 0.0, float64(centroids[0].Vector[1]), 0.0001)
}

func TestTrain_CentroidsAreUnitVectors(t *testing.T) {
	trainer, err := NewTrainer(mock.NewMockEmbedder(), "test-model", WithPoolSize(2))
	require.NoError(t, err)
	defer trainer.Release()

	centroids, err := trainer.Train(context.Background(), []Example{
		{Text: "tell me about CS 575", Label: "course_info"},
		{Text: "what is CS 669 about", Label: "course_info"},
		{Text: "describe CS 546", Label: "course_info"},
	})
	require.NoError(t, err)
	require.Len(t, centroids, 1)

	var sumSquares float64
	for _, x := range centroids[0].Vector {
		sumSquares += float64(x) * float64(x)
	}
	assert.InDelta(t, 1.0, math.Sqrt(sumSquares), 0.0001)
}

func TestTrain_Deterministic(t *testing.T) {
	examples := []Example{
		{Text: "hello", Label: "chitchat"},
		{Text: "who teaches CS 575", Label: "instructor_lookup"},
		{Text: "where does CS 669 meet", Label: "course_location"},
	}

	train := func() [][]float32 {
		trainer, err := NewTrainer(mock.NewMockEmbedder(), "test-model", WithPoolSize(3))
		require.NoError(t, err)
		defer trainer.Release()

		centroids, err := trainer.Train(context.Background(), examples)
		require.NoError(t, err)

		vectors := make([][]float32, len(centroids))
		for i, centroid := range centroids {
			vectors[i] = centroid.Vector
		}
		return vectors
	}

	assert.Equal(t, train(), train())
}

func TestTrain_NoExamples(t *testing.T) {
	trainer, err := NewTrainer(mock.NewMockEmbedder(), "test-model")
	require.NoError(t, err)
	defer trainer.Release()

	_, err = trainer.Train(context.Background(), nil)
	assert.Equal(t, ErrNoExamples, err)
}

func TestTrain_EmbedError(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, context.DeadlineExceeded
	}

	trainer, err := NewTrainer(embedder, "test-model")
	require.NoError(t, err)
	defer trainer.Release()

	_, err = trainer.Train(context.Background(), []Example{
		{Text: "hello", Label: "chitchat"},
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
