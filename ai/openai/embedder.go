package openai

import (
	"context"
	"encoding/hex"
	"log/slog"
	"math"
	"sync"

	"github.com/go-crypt/x/blake2b"
	"github.com/silvanic/handbook/ai"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

// Embedder implements ai.Embedder using OpenAI-compatible embedding APIs.
// Query embeddings are cached in memory; the handful of distinct query
// strings a small deployment sees makes repeat embedding calls common.
type Embedder struct {
	embedder embeddings.Embedder
	model    string
	logger   *slog.Logger

	mu       sync.RWMutex
	memCache map[string][]float32
}

// NewEmbedder creates a new embedder using the provided configuration.
//
// Returns ai.Embedder interface to enforce abstraction.
func NewEmbedder(config *ai.Config) (ai.Embedder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(config.APIKey),
		openai.WithEmbeddingModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	embedder, err := embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, err
	}

	return &Embedder{
		embedder: embedder,
		model:    config.Model,
		logger:   slog.Default().With("component", "openai-embedder"),
		memCache: make(map[string][]float32),
	}, nil
}

// EmbedText generates a unit-length vector embedding for a single text string.
func (e *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	key := e.cacheKey(text)
	if vec := e.getFromCache(key); vec != nil {
		return vec, nil
	}

	e.logger.Debug("generating embedding for single text", "length", len(text))

	vectors, err := e.embedder.EmbedDocuments(ctx, []string{text})
	if err != nil {
		e.logger.Error("failed to generate embedding", "err", err)
		return nil, err
	}

	if len(vectors) == 0 {
		e.logger.Error("embedder returned empty result", "length", len(text))
		return nil, ai.ErrNoEmbedding
	}

	vec := l2Normalize(vectors[0])
	e.storeInCache(key, vec)
	return cloneVector(vec), nil
}

// EmbedTexts generates unit-length vector embeddings for multiple texts
// in a batch. Batch results are not cached; batches come from ingestion,
// which embeds each entry exactly once.
func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	e.logger.Debug("generating embeddings for texts", "count", len(texts))

	vectors, err := e.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		e.logger.Error("failed to generate embeddings", "count", len(texts), "err", err)
		return nil, err
	}

	for i := range vectors {
		vectors[i] = l2Normalize(vectors[i])
	}
	return vectors, nil
}

// cacheKey derives a cache key from the model and text with BLAKE2b.
func (e *Embedder) cacheKey(text string) string {
	h, _ := blake2b.New(16, nil)
	h.Write([]byte(e.model))
	h.Write([]byte{'|'})
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}

func (e *Embedder) getFromCache(key string) []float32 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if vec, ok := e.memCache[key]; ok {
		return cloneVector(vec)
	}
	return nil
}

func (e *Embedder) storeInCache(key string, vec []float32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.memCache[key] = vec
}

// l2Normalize scales a vector to unit length. Vectors that are already
// normalized by the service pass through unchanged apart from rounding.
func l2Normalize(vec []float32) []float32 {
	var sumSquares float64
	for _, v := range vec {
		sumSquares += float64(v) * float64(v)
	}
	if sumSquares == 0 {
		return vec
	}
	norm := float32(1.0 / math.Sqrt(sumSquares))
	for i := range vec {
		vec[i] *= norm
	}
	return vec
}

func cloneVector(vec []float32) []float32 {
	out := make([]float32, len(vec))
	copy(out, vec)
	return out
}
