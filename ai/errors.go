package ai

import "errors"

// ErrNoEmbedding is returned when the embedding service responds
// successfully but produces no vector for the given text.
var ErrNoEmbedding = errors.New("embedding service returned no vectors")
