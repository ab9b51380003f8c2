// Copyright 2026 Silvanic Systems
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

package handbook

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/silvanic/handbook/ai"
	"github.com/silvanic/handbook/ai/openai"
	"github.com/silvanic/handbook/config"
	"github.com/silvanic/handbook/core"
	"github.com/silvanic/handbook/index"
	"github.com/silvanic/handbook/index/local"
	"github.com/silvanic/handbook/index/remote"
	"github.com/silvanic/handbook/kb"
	"github.com/silvanic/handbook/search"
)

// Service is the assembled application: the loaded knowledge base plus
// the retrieval stack. It is immutable after Bootstrap; readiness is a
// property of the handle, not of mutable process state.
type Service struct {
	cfg       *config.Config
	knowledge *kb.KnowledgeBase
	index     index.Index
	searcher  *search.Searcher
	logger    *slog.Logger
}

// Status reports which parts of the service came up.
type Status struct {
	DataLoaded  bool
	SearchReady bool
}

// Bootstrap runs the one-shot startup sequence: load the knowledge base,
// connect the embedder and the similarity index, assemble the searcher.
//
// On failure the returned Service is still usable in a degraded state
// alongside the error: handlers backed by the missing piece report not
// ready instead of crashing. The caller decides whether the error is
// fatal.
func Bootstrap(cfg *config.Config, opts ...Option) (*Service, error) {
	s := &Service{
		cfg:    cfg,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := cfg.Validate(); err != nil {
		return s, err
	}

	knowledge, err := kb.Load(cfg.Data.Path)
	if err != nil {
		return s, fmt.Errorf("loading knowledge base: %w", err)
	}
	s.knowledge = knowledge

	embedder, err := openai.NewEmbedder(ai.NewConfig(
		ai.WithHost(cfg.Embedding.Host),
		ai.WithModel(cfg.Embedding.Model),
		ai.WithAPIKey(cfg.Embedding.APIKey),
	))
	if err != nil {
		return s, fmt.Errorf("creating embedder: %w", err)
	}

	idx, err := openIndex(cfg.Index)
	if err != nil {
		return s, fmt.Errorf("opening similarity index: %w", err)
	}
	s.index = idx

	searcher, err := search.NewSearcher(knowledge, embedder, idx,
		search.WithLogger(s.logger))
	if err != nil {
		return s, err
	}
	s.searcher = searcher

	s.logger.Info("service ready",
		"entries", knowledge.EntryCount(), "index", cfg.Index.Driver)
	return s, nil
}

// Option configures a Service during Bootstrap.
type Option func(*Service)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

func openIndex(cfg config.IndexConfig) (index.Index, error) {
	switch cfg.Driver {
	case config.IndexDriverLocal:
		return local.Open(cfg.Path)
	case config.IndexDriverRemote:
		return remote.NewClient(remote.Config{
			BaseURL:   cfg.URL,
			APIKey:    cfg.APIKey,
			Namespace: cfg.Namespace,
		})
	default:
		return nil, fmt.Errorf("%w: unknown index driver %q", config.ErrInvalidConfig, cfg.Driver)
	}
}

// Status reports the handle's readiness.
func (s *Service) Status() Status {
	return Status{
		DataLoaded:  s.knowledge != nil,
		SearchReady: s.searcher != nil,
	}
}

// Search answers a free-text query. A degraded handle returns
// core.ErrDataNotLoaded or core.ErrSearchNotReady instead of searching.
func (s *Service) Search(ctx context.Context, query string) ([]core.RetrievedResult, error) {
	if s.knowledge == nil {
		return nil, core.ErrDataNotLoaded
	}
	if s.searcher == nil {
		return nil, core.ErrSearchNotReady
	}
	return s.searcher.Search(ctx, query)
}

// KnowledgeBase returns the loaded knowledge base, or
// core.ErrDataNotLoaded on a degraded handle.
func (s *Service) KnowledgeBase() (*kb.KnowledgeBase, error) {
	if s.knowledge == nil {
		return nil, core.ErrDataNotLoaded
	}
	return s.knowledge, nil
}

// Close releases the similarity index.
// The service should not be used after calling Close.
func (s *Service) Close() error {
	if s.index == nil {
		return nil
	}
	if err := s.index.Close(); err != nil {
		s.logger.Error("error closing similarity index", "err", err)
		return err
	}
	return nil
}
