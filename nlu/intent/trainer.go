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
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/chatalogue/core"
	"github.com/poiesic/chatalogue/nlu"
)

// Trainer builds per-label centroid vectors from labeled example
// utterances. Examples are embedded concurrently through a worker pool and
// averaged per label.
type Trainer struct {
	embedder nlu.Embedder
	model    string
	pool     *ants.Pool
	logger   *slog.Logger
}

// TrainerOption configures a Trainer.
type TrainerOption func(*Trainer) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) TrainerOption {
	return func(t *Trainer) error {
		if size < 1 {
			size = 1
		}
		if t.pool != nil {
			t.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		t.pool = pool
		return nil
	}
}

// WithTrainerLogger sets a custom logger.
// Default is slog.Default().
func WithTrainerLogger(logger *slog.Logger) TrainerOption {
	return func(t *Trainer) error {
		if logger == nil {
			logger = slog.Default()
		}
		t.logger = logger
		return nil
	}
}

// NewTrainer creates a trainer that embeds examples with the given embedder.
// The model identifier is recorded on the produced centroids so mismatched
// embedders can be rejected at load time.
func NewTrainer(embedder nlu.Embedder, model string, opts ...TrainerOption) (*Trainer, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if model == "" {
		return nil, ErrModelRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	t := &Trainer{
		embedder: embedder,
		model:    model,
		pool:     pool,
		logger:   slog.Default().With("component", "intent-trainer"),
	}

	for _, opt := range opts {
		if optErr := opt(t); optErr != nil {
			t.Release()
			return nil, optErr
		}
	}

	return t, nil
}

// Release frees the worker pool. The trainer must not be used afterwards.
func (t *Trainer) Release() {
	if t.pool != nil {
		t.pool.Release()
	}
}

// Train embeds every example and returns one centroid per label, in label
// order. Returns the first embedding error encountered.
func (t *Trainer) Train(ctx context.Context, examples []Example) ([]*core.Centroid, error) {
	if len(examples) == 0 {
		return nil, ErrNoExamples
	}

	start := time.Now()
	t.logger.Info("training intent centroids",
		"examples", len(examples),
		"model", t.model)

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
		sums     = make(map[string][]float64)
		counts   = make(map[string]int)
	)

	for _, example := range examples {
		example := example
		wg.Add(1)
		err := t.pool.Submit(func() {
			defer wg.Done()

			vector, embedErr := t.embedder.EmbedText(ctx, example.Text)

			mu.Lock()
			defer mu.Unlock()

			if embedErr != nil {
				if firstErr == nil {
					firstErr = embedErr
				}
				return
			}

			sum := sums[example.Label]
			if sum == nil {
				sum = make([]float64, len(vector))
				sums[example.Label] = sum
			}
			for i, x := range vector {
				if i < len(sum) {
					sum[i] += float64(x)
				}
			}
			counts[example.Label]++
		})
		if err != nil {
			wg.Done()
			return nil, err
		}
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}

	labels := make([]string, 0, len(sums))
	for label := range sums {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	centroids := make([]*core.Centroid, 0, len(labels))
	for _, label := range labels {
		sum := sums[label]
		count := counts[label]

		mean := make([]float32, len(sum))
		for i, x := range sum {
			mean[i] = float32(x / float64(count))
		}

		centroid := &core.Centroid{
			Model:    t.model,
			Label:    label,
			Vector:   normalize(mean),
			Examples: count,
		}
		centroid.Id = core.IDFromContent(centroid.Tuple())
		centroids = append(centroids, centroid)
	}

	t.logger.Info("trained intent centroids",
		"labels", len(centroids),
		"elapsed", time.Since(start))

	return centroids, nil
}
