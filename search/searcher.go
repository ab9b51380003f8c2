package search

import (
	"context"
	"log/slog"

	"github.com/silvanic/handbook/ai"
	"github.com/silvanic/handbook/core"
	"github.com/silvanic/handbook/index"
	"github.com/silvanic/handbook/kb"
)

// Searcher answers free-text queries against the knowledge base by
// combining embedding similarity search with reconciliation back to the
// structured source entries.
type Searcher struct {
	knowledge *kb.KnowledgeBase
	embedder  ai.Embedder
	index     index.Index
	logger    *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	knowledge *kb.KnowledgeBase,
	embedder ai.Embedder,
	idx index.Index,
	opts ...Option,
) (*Searcher, error) {
	if knowledge == nil {
		return nil, ErrKnowledgeBaseRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if idx == nil {
		return nil, ErrIndexRequired
	}

	s := &Searcher{
		knowledge: knowledge,
		embedder:  embedder,
		index:     idx,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search answers a free-text query with up to MaxResults knowledge-base
// entries, ranked by descending similarity score.
func (s *Searcher) Search(ctx context.Context, query string) ([]core.RetrievedResult, error) {
	return s.SearchWithMonitor(ctx, query, nil)
}

// SearchWithMonitor answers a query with monitoring. The monitor receives
// callbacks at each stage of the retrieval process.
//
// The query is validated before any external call: a blank query is
// rejected with core.ErrInvalidQuery and costs neither an embedding nor an
// index round trip.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query string, monitor RetrievalMonitor) ([]core.RetrievedResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	if err := core.ValidateQuery(query); err != nil {
		return nil, err
	}

	monitor.Start(query)

	vector, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		s.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}
	monitor.AfterEmbedding(len(vector))

	matches, err := s.index.Query(ctx, vector, OverfetchLimit)
	if err != nil {
		s.logger.Error("error querying similarity index", "err", err)
		return nil, err
	}
	monitor.AfterIndexQuery(matches)

	results := Reconcile(s.knowledge, matches, monitor)
	monitor.Finish(results)

	s.logger.Debug("search completed",
		"matches", len(matches), "results", len(results))
	return results, nil
}
