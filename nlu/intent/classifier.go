// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package intent

import (
	"context"
	"log/slog"
	"math"
	"slices"
	"strings"

	"github.com/poiesic/chatalogue/core"
	"github.com/poiesic/chatalogue/nlu"
)

// softmax sharpness applied to cosine similarities when converting scores
// to a probability-like confidence.
const scoreScale = 10.0

// Classifier implements nlu.IntentClassifier by comparing the utterance
// embedding against per-label centroid vectors. Centroids are model
// artifacts produced by the Trainer and persisted in the artifact store.
type Classifier struct {
	embedder  nlu.Embedder
	model     string
	labels    []string
	centroids [][]float32 // unit vectors, parallel to labels
	logger    *slog.Logger
}

// Option configures a Classifier.
type Option func(*Classifier) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Classifier) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// NewClassifier creates a classifier from trained centroids.
// All centroids must carry the same embedding model identifier; classifying
// with a different embedder than the one that produced them gives garbage.
//
// Returns nlu.IntentClassifier interface to enforce abstraction.
func NewClassifier(embedder nlu.Embedder, centroids []*core.Centroid, opts ...Option) (nlu.IntentClassifier, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if len(centroids) == 0 {
		return nil, ErrNoCentroids
	}

	c := &Classifier{
		embedder: embedder,
		model:    centroids[0].Model,
		logger:   slog.Default().With("component", "intent-classifier"),
	}

	for _, centroid := range centroids {
		if err := core.ValidateCentroid(centroid); err != nil {
			return nil, err
		}
		if centroid.Model != c.model {
			return nil, ErrModelMismatch
		}
		c.labels = append(c.labels, centroid.Label)
		c.centroids = append(c.centroids, normalize(centroid.Vector))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// ClassifyIntent classifies a single utterance.
// Empty input classifies as chitchat with zero confidence.
func (c *Classifier) ClassifyIntent(ctx context.Context, text string) (*nlu.IntentResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return &nlu.IntentResult{
			Primary:    string(core.IntentChitchat),
			Confidence: 0.0,
			TopK:       []nlu.LabelScore{},
		}, nil
	}

	vector, err := c.embedder.EmbedText(ctx, text)
	if err != nil {
		c.logger.Error("failed to embed utterance", "err", err)
		return nil, err
	}
	vector = normalize(vector)

	// Softmax over scaled cosine similarities.
	scores := make([]float64, len(c.labels))
	var total float64
	for i, centroid := range c.centroids {
		scores[i] = math.Exp(float64(dotProduct(vector, centroid)) * scoreScale)
		total += scores[i]
	}

	ranked := make([]nlu.LabelScore, len(c.labels))
	for i, label := range c.labels {
		ranked[i] = nlu.LabelScore{Label: label, Score: scores[i] / total}
	}
	slices.SortFunc(ranked, func(a, b nlu.LabelScore) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return 0
	})

	topK := ranked
	if len(topK) > 3 {
		topK = topK[:3]
	}

	result := &nlu.IntentResult{
		Primary:    ranked[0].Label,
		Confidence: ranked[0].Score,
		TopK:       topK,
	}

	c.logger.Debug("classified utterance",
		"intent", result.Primary,
		"confidence", result.Confidence)

	return result, nil
}
