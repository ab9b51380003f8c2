package local

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/silvanic/handbook/core"
	"github.com/silvanic/handbook/index"
)

// Index is a BadgerDB-backed similarity index. Queries scan every stored
// vector and score it by dot product, which is cosine similarity for the
// unit-length vectors the embedders produce. A scan is plenty for a
// knowledge base of hundreds of entries.
type Index struct {
	backend *Backend
	logger  *slog.Logger
}

var _ index.Index = (*Index)(nil)

// New creates a local index on top of an open backend.
func New(backend *Backend) *Index {
	return &Index{
		backend: backend,
		logger:  slog.Default().With("component", "local-index"),
	}
}

// Open opens (or creates) a local index at the given directory.
func Open(path string) (*Index, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, err
	}
	return New(backend), nil
}

// Close closes the underlying database.
func (x *Index) Close() error {
	return x.backend.Close()
}

// Upsert stores or replaces the given records.
func (x *Index) Upsert(ctx context.Context, records ...index.Record) error {
	for _, record := range records {
		if len(record.Vector) == 0 {
			return index.ErrEmptyVector
		}
	}

	return x.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			key := makeVectorKey(record.ID)
			if err := tx.Set(key, marshalRecord(record)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// Query returns up to topK matches ordered by descending score.
// Records that fail to decode are skipped, not fatal: one corrupt value
// should not take down every search.
func (x *Index) Query(ctx context.Context, vector []float32, topK int) ([]core.Match, error) {
	if len(vector) == 0 {
		return nil, index.ErrEmptyVector
	}

	var matches []core.Match
	err := x.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(vectorRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()

			var record index.Record
			err := item.Value(func(val []byte) error {
				var err error
				record, err = unmarshalRecord(val)
				return err
			})
			if err != nil {
				x.logger.Warn("skipping undecodable vector record",
					"key", string(item.Key()), "err", err)
				continue
			}

			matches = append(matches, core.Match{
				SourceTag: record.SourceTag,
				Score:     dotProduct(vector, record.Vector),
			})
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(matches, func(a, b core.Match) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return 0
	})

	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}

// Count returns the number of stored vectors.
func (x *Index) Count() (int, error) {
	var n int
	err := x.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(vectorRecordPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if strings.HasPrefix(string(iter.Item().Key()), vectorRecordPrefix+":") {
				n++
			}
		}
		return nil
	}, false)
	return n, err
}

// dotProduct calculates the dot product of two vectors.
func dotProduct(a, b []float32) float32 {
	var sum float32
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}
	for i := 0; i < minLen; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
