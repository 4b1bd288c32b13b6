package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/chatalogue/artifact"
	"github.com/poiesic/chatalogue/core"
)

// CentroidRepository implements artifact.CentroidRepository for BadgerDB.
type CentroidRepository struct {
	backend *Backend
}

var _ artifact.CentroidRepository = (*CentroidRepository)(nil)

// NewCentroidRepository creates a new CentroidRepository.
func NewCentroidRepository(backend *Backend) (*CentroidRepository, error) {
	return &CentroidRepository{
		backend: backend,
	}, nil
}

// Close releases resources. CentroidRepository has no resources to release.
func (r *CentroidRepository) Close() error {
	return nil
}

// PutCentroids stores centroids, replacing existing (model, label) tuples.
func (r *CentroidRepository) PutCentroids(ctx context.Context, centroids ...*core.Centroid) ([]*core.Centroid, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, centroid := range centroids {
			if err := core.ValidateCentroid(centroid); err != nil {
				return err
			}

			// Use content-based ID if not set
			if centroid.Id == 0 {
				centroid.Id = core.IDFromContent(centroid.Tuple())
			}

			now := time.Now().UTC()
			if centroid.InsertedAt.IsZero() {
				centroid.InsertedAt = now
			}
			centroid.UpdatedAt = now

			// Store primary record
			key := makeCentroidKey(centroid.Id)
			if err := tx.Set(key, artifact.MarshalCentroid(centroid)); err != nil {
				return err
			}

			// Store tuple index
			tupleKey := makeCentroidTupleKey(centroid.Model, centroid.Label)
			if err := tx.Set(tupleKey, artifact.MarshalID(centroid.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return centroids, err
}

// GetCentroid retrieves the centroid for a (model, label) tuple.
func (r *CentroidRepository) GetCentroid(ctx context.Context, model, label string) (*core.Centroid, error) {
	var result *core.Centroid
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readCentroidByTuple(tx, model, label)
		return err
	}, false)
	return result, err
}

// ListCentroids retrieves every centroid of a model, ordered by label.
func (r *CentroidRepository) ListCentroids(ctx context.Context, model string) ([]*core.Centroid, error) {
	var results []*core.Centroid
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeCentroidModelPrefix(model)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()

			var id core.ID
			err := item.Value(func(val []byte) error {
				var err error
				id, err = artifact.UnmarshalID(val)
				return err
			})
			if err != nil {
				return err
			}

			centroid, err := readCentroid(tx, makeCentroidKey(id))
			if err != nil {
				return err
			}
			if centroid != nil {
				results = append(results, centroid)
			}
		}
		return nil
	}, false)

	return results, err
}

// DeleteCentroids removes the centroids for the given labels of a model.
func (r *CentroidRepository) DeleteCentroids(ctx context.Context, model string, labels ...string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, label := range labels {
			centroid, err := readCentroidByTuple(tx, model, label)
			if err != nil {
				return err
			}

			if err := tx.Delete(makeCentroidTupleKey(model, label)); err != nil {
				return err
			}
			if err := tx.Delete(makeCentroidKey(centroid.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// readCentroidByTuple resolves the tuple index and reads the record.
// Returns artifact.ErrNotFound when either is missing.
func readCentroidByTuple(tx *badger.Txn, model, label string) (*core.Centroid, error) {
	item, err := tx.Get(makeCentroidTupleKey(model, label))
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, artifact.ErrNotFound
		}
		return nil, err
	}

	var id core.ID
	err = item.Value(func(val []byte) error {
		var err error
		id, err = artifact.UnmarshalID(val)
		return err
	})
	if err != nil {
		return nil, err
	}

	centroid, err := readCentroid(tx, makeCentroidKey(id))
	if err != nil {
		return nil, err
	}
	if centroid == nil {
		return nil, artifact.ErrNotFound
	}
	return centroid, nil
}

// readCentroid reads a centroid from the transaction.
func readCentroid(tx *badger.Txn, key []byte) (*core.Centroid, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var centroid *core.Centroid
	err = item.Value(func(val []byte) error {
		var err error
		centroid, err = artifact.UnmarshalCentroid(val)
		return err
	})
	return centroid, err
}
