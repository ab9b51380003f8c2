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

// Seeder builds a local similarity index from a knowledge-base file.
// Every entry is embedded and upserted; rerunning replaces existing
// records in place.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/silvanic/handbook/ai"
	"github.com/silvanic/handbook/ai/openai"
	"github.com/silvanic/handbook/index/local"
	"github.com/silvanic/handbook/ingest"
	"github.com/silvanic/handbook/kb"
)

var (
	srcFileName    = flag.String("src", "handbook.json", "knowledge-base JSON file")
	indexPath      = flag.String("index", "handbook.index", "local index directory")
	embeddingHost  = flag.String("embedding-host", "http://localhost:11434/v1", "embedding service host URL")
	embeddingModel = flag.String("embedding-model", "nomic-embed-text", "embedding model name")
	batchSize      = flag.Int("batch-size", 16, "entries per embedding request")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

func main() {
	knowledge, err := kb.Load(*srcFileName)
	if err != nil {
		slog.Error("error loading knowledge base", "src", *srcFileName, "err", err)
		os.Exit(1)
	}

	embedder, err := openai.NewEmbedder(ai.NewConfig(
		ai.WithHost(*embeddingHost),
		ai.WithModel(*embeddingModel),
		ai.WithAPIKey(os.Getenv("EMBEDDING_API_KEY")),
	))
	if err != nil {
		slog.Error("error creating embedder", "err", err)
		os.Exit(1)
	}

	idx, err := local.Open(*indexPath)
	if err != nil {
		slog.Error("error opening index", "path", *indexPath, "err", err)
		os.Exit(1)
	}
	defer idx.Close()

	pipeline, err := ingest.NewPipeline(knowledge, embedder, idx,
		ingest.WithBatchSize(*batchSize))
	if err != nil {
		slog.Error("error creating pipeline", "err", err)
		os.Exit(1)
	}
	defer pipeline.Release()

	stats, err := pipeline.Run(context.Background())
	if err != nil {
		slog.Error("seeding failed", "err", err)
		os.Exit(1)
	}

	slog.Info("seeding complete",
		"entries", stats.Entries, "batches", stats.Batches, "index", *indexPath)
}
