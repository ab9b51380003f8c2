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

package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/silvanic/handbook/ai"
	"github.com/silvanic/handbook/index"
	"github.com/silvanic/handbook/kb"
)

const defaultBatchSize = 16

// Pipeline seeds a similarity index from a knowledge base.
// Batches of entries are embedded and upserted concurrently.
type Pipeline struct {
	knowledge *kb.KnowledgeBase
	embedder  ai.Embedder
	index     index.Index
	pool      *ants.Pool
	batchSize int
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent batch processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		p.pool = pool
		return nil
	}
}

// WithBatchSize sets how many entries are embedded per request to the
// embedding service. Default is 16.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.batchSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new seeding pipeline.
func NewPipeline(
	knowledge *kb.KnowledgeBase,
	embedder ai.Embedder,
	idx index.Index,
	opts ...Option,
) (*Pipeline, error) {
	if knowledge == nil {
		return nil, ErrKnowledgeBaseRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if idx == nil {
		return nil, ErrIndexRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		knowledge: knowledge,
		embedder:  embedder,
		index:     idx,
		pool:      pool,
		batchSize: defaultBatchSize,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Stats summarizes a seeding run.
type Stats struct {
	Entries int // entries embedded and upserted
	Batches int // embedding batches submitted
}

// item is one knowledge-base entry queued for embedding.
type item struct {
	id   string
	tag  string
	text string
}

// Run embeds every knowledge-base entry and upserts the resulting
// records into the similarity index. Batches run concurrently; the
// first batch error aborts the run's result, though in-flight batches
// still drain.
func (p *Pipeline) Run(ctx context.Context) (Stats, error) {
	items := p.collect()
	p.logger.Info("seeding similarity index",
		"entries", len(items), "batch_size", p.batchSize)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		batches  int
	)

	for start := 0; start < len(items); start += p.batchSize {
		end := min(start+p.batchSize, len(items))
		batch := items[start:end]
		batches++

		wg.Add(1)
		if err := p.pool.Submit(func() {
			defer wg.Done()
			if err := p.processBatch(ctx, batch); err != nil {
				p.logger.Error("error processing batch", "err", err)
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}); err != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
		}
	}

	wg.Wait()

	if firstErr != nil {
		return Stats{}, firstErr
	}
	return Stats{Entries: len(items), Batches: batches}, nil
}

// collect walks the knowledge base in document order and prepares one
// item per entry.
func (p *Pipeline) collect() []item {
	var items []item
	for tag, entry := range p.knowledge.Entries() {
		resolution, ok := p.knowledge.Resolve(tag)
		if !ok {
			// Entries() only yields resolvable tags.
			continue
		}
		items = append(items, item{
			id:   resolution.UniqueID,
			tag:  tag,
			text: EntryText(entry),
		})
	}
	return items
}

func (p *Pipeline) processBatch(ctx context.Context, batch []item) error {
	texts := make([]string, len(batch))
	for i, it := range batch {
		texts[i] = it.text
	}

	vectors, err := p.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return err
	}
	if len(vectors) != len(batch) {
		return fmt.Errorf("embedding result mismatch. expected %d, received %d", len(batch), len(vectors))
	}

	records := make([]index.Record, len(batch))
	for i, it := range batch {
		records[i] = index.Record{
			ID:        it.id,
			Vector:    vectors[i],
			SourceTag: it.tag,
		}
	}

	return p.index.Upsert(ctx, records...)
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
