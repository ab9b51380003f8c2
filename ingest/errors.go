package ingest

import "errors"

var (
	// ErrKnowledgeBaseRequired is returned when a knowledge base is not provided.
	ErrKnowledgeBaseRequired = errors.New("knowledge base required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrIndexRequired is returned when a similarity index is not provided.
	ErrIndexRequired = errors.New("similarity index required")
)
