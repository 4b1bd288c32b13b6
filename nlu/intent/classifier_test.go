package intent

import (
	"context"
	"testing"

	"github.com/poiesic/chatalogue/core"
	"github.com/poiesic/chatalogue/nlu/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// axisEmbedder maps known utterances to fixed axis-aligned vectors so the
// nearest centroid is unambiguous.
func axisEmbedder(vectors map[string][]float32) *mock.MockEmbedder {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		if v, ok := vectors[text]; ok {
			return v, nil
		}
		return []float32{1, 1, 1}, nil
	}
	return embedder
}

func testCentroids() []*core.Centroid {
	return []*core.Centroid{
		{Model: "test-model", Label: "course_info", Vector: []float32{1, 0, 0}, Examples: 3},
		{Model: "test-model", Label: "instructor_lookup", Vector: []float32{0, 1, 0}, Examples: 3},
		{Model: "test-model", Label: "chitchat", Vector: []float32{0, 0, 1}, Examples: 3},
	}
}

func TestNewClassifier(t *testing.T) {
	t.Run("nil embedder", func(t *testing.T) {
		_, err := NewClassifier(nil, testCentroids())
		assert.Equal(t, ErrEmbedderRequired, err)
	})

	t.Run("no centroids", func(t *testing.T) {
		_, err := NewClassifier(mock.NewMockEmbedder(), nil)
		assert.Equal(t, ErrNoCentroids, err)
	})

	t.Run("model mismatch", func(t *testing.T) {
		centroids := testCentroids()
		centroids[1].Model = "other-model"

		_, err := NewClassifier(mock.NewMockEmbedder(), centroids)
		assert.Equal(t, ErrModelMismatch, err)
	})

	t.Run("invalid centroid", func(t *testing.T) {
		centroids := testCentroids()
		centroids[0].Vector = nil

		_, err := NewClassifier(mock.NewMockEmbedder(), centroids)
		assert.ErrorIs(t, err, core.ErrInvalidCentroid)
	})
}

func TestClassifyIntent(t *testing.T) {
	embedder := axisEmbedder(map[string][]float32{
		"tell me about CS 575": {0.9, 0.1, 0.0},
		"who teaches CS 575":   {0.1, 0.9, 0.0},
		"hello there":          {0.0, 0.1, 0.9},
	})

	classifier, err := NewClassifier(embedder, testCentroids())
	require.NoError(t, err)

	tests := []struct {
		text string
		want string
	}{
		{"tell me about CS 575", "course_info"},
		{"who teaches CS 575", "instructor_lookup"},
		{"hello there", "chitchat"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			result, err := classifier.ClassifyIntent(context.Background(), tt.text)
			require.NoError(t, err)

			assert.Equal(t, tt.want, result.Primary)
			assert.Greater(t, result.Confidence, 0.33)
			assert.LessOrEqual(t, result.Confidence, 1.0)
		})
	}
}

func TestClassifyIntent_TopK(t *testing.T) {
	embedder := axisEmbedder(map[string][]float32{
		"who teaches CS 575": {0.1, 0.9, 0.0},
	})

	classifier, err := NewClassifier(embedder, testCentroids())
	require.NoError(t, err)

	result, err := classifier.ClassifyIntent(context.Background(), "who teaches CS 575")
	require.NoError(t, err)

	require.Len(t, result.TopK, 3)
	assert.Equal(t, result.Primary, result.TopK[0].Label)
	assert.GreaterOrEqual(t, result.TopK[0].Score, result.TopK[1].Score)
	assert.GreaterOrEqual(t, result.TopK[1].Score, result.TopK[2].Score)

	var total float64
	for _, score := range result.TopK {
		total += score.Score
	}
	assert.InDelta(t, 1.0, total, 0.0001)
}

func TestClassifyIntent_EmptyInput(t *testing.T) {
	classifier, err := NewClassifier(mock.NewMockEmbedder(), testCentroids())
	require.NoError(t, err)

	result, err := classifier.ClassifyIntent(context.Background(), "   ")
	require.NoError(t, err)

	assert.Equal(t, string(core.IntentChitchat), result.Primary)
	assert.Zero(t, result.Confidence)
	assert.Empty(t, result.TopK)
}

func TestClassifyIntent_EmbedError(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, context.DeadlineExceeded
	}

	classifier, err := NewClassifier(embedder, testCentroids())
	require.NoError(t, err)

	_, err = classifier.ClassifyIntent(context.Background(), "who teaches CS 575")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
