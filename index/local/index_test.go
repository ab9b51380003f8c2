package local

import (
	"context"
	"testing"

	"github.com/silvanic/handbook/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := NewMemoryIndex()
	require.NoError(t, err)
	t.Cleanup(func() { idx.Close() })
	return idx
}

func TestUpsertAndQuery(t *testing.T) {
	idx := newTestIndex(t)
	ctx := context.Background()

	require.NoError(t, idx.Upsert(ctx,
		index.Record{ID: "Engine-0", Vector: []float32{1, 0, 0}, SourceTag: "Engine > 0"},
		index.Record{ID: "Engine-1", Vector: []float32{0.8, 0.6, 0}, SourceTag: "Engine > 1"},
		index.Record{ID: "idle_speed", Vector: []float32{0, 0, 1}, SourceTag: "Specs > idle_speed"},
	))

	matches, err := idx.Query(ctx, []float32{1, 0, 0}, 10)
	require.NoError(t, err)
	require.Len(t, matches, 3)

	assert.Equal(t, "Engine > 0", matches[0].SourceTag)
	assert.InDelta(t, 1.0, matches[0].Score, 1e-6)
	assert.Equal(t, "Engine > 1", matches[1].SourceTag)
	assert.InDelta(t, 0.8, matches[1].Score, 1e-6)
	assert.Equal(t, "Specs > idle_speed", matches[2].SourceTag)

	for i := 0; i < len(matches)-1; i++ {
		assert.GreaterOrEqual(t, matches[i].Score, matches[i+1].Score)
	}
}

func TestQueryTopKTruncation(t *testing.T) {
	idx := newTestIndex(t)
	ctx := context.Background()

	for i := 0; i < 30; i++ {
		require.NoError(t, idx.Upsert(ctx, index.Record{
			ID:        string(rune('a' + i)),
			Vector:    []float32{1, float32(i) / 30, 0},
			SourceTag: "Engine > 0",
		}))
	}

	matches, err := idx.Query(ctx, []float32{1, 0, 0}, 15)
	require.NoError(t, err)
	assert.Len(t, matches, 15)
}

func TestUpsertReplacesRecord(t *testing.T) {
	idx := newTestIndex(t)
	ctx := context.Background()

	require.NoError(t, idx.Upsert(ctx,
		index.Record{ID: "a", Vector: []float32{1, 0}, SourceTag: "Engine > 0"}))
	require.NoError(t, idx.Upsert(ctx,
		index.Record{ID: "a", Vector: []float32{0, 1}, SourceTag: "Engine > 1"}))

	matches, err := idx.Query(ctx, []float32{0, 1}, 10)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Engine > 1", matches[0].SourceTag)

	count, err := idx.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestQueryEmptyIndex(t *testing.T) {
	idx := newTestIndex(t)

	matches, err := idx.Query(context.Background(), []float32{1, 0}, 10)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestEmptyVectorRejected(t *testing.T) {
	idx := newTestIndex(t)
	ctx := context.Background()

	_, err := idx.Query(ctx, nil, 10)
	assert.ErrorIs(t, err, index.ErrEmptyVector)

	err = idx.Upsert(ctx, index.Record{ID: "a", SourceTag: "Engine > 0"})
	assert.ErrorIs(t, err, index.ErrEmptyVector)
}

func TestRecordRoundTrip(t *testing.T) {
	original := index.Record{
		SourceTag: "Engine > idle_speed",
		Vector:    []float32{0.25, -1.5, 0, 3.75},
	}

	decoded, err := unmarshalRecord(marshalRecord(original))
	require.NoError(t, err)
	assert.Equal(t, original.SourceTag, decoded.SourceTag)
	assert.Equal(t, original.Vector, decoded.Vector)
}

func TestUnmarshalTruncatedRecord(t *testing.T) {
	data := marshalRecord(index.Record{SourceTag: "Engine > 0", Vector: []float32{1, 2}})

	for _, n := range []int{0, 2, 4, len(data) - 1} {
		_, err := unmarshalRecord(data[:n])
		assert.ErrorIs(t, err, index.ErrTruncatedRecord, "prefix length %d", n)
	}
}
