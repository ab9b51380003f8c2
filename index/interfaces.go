package index

import (
	"context"

	"github.com/silvanic/handbook/core"
)

// Record is a stored vector: the embedding of one knowledge-base entry,
// identified by the entry's uniqueId and tagged with the sourceTag that
// encodes where in the knowledge base the entry lives.
type Record struct {
	ID        string
	Vector    []float32
	SourceTag string
}

// Index is a nearest-neighbor search service over embedding vectors.
// Implementations must be thread-safe for concurrent use.
type Index interface {
	// Query returns up to topK matches for the given vector, ordered by
	// descending similarity score. Vectors are expected to be unit-length;
	// scores are cosine similarities.
	Query(ctx context.Context, vector []float32, topK int) ([]core.Match, error)

	// Upsert stores or replaces the given records.
	Upsert(ctx context.Context, records ...Record) error

	// Close releases resources held by the index.
	Close() error
}
