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

// Package ingest seeds the similarity index from a knowledge base.
//
// The Pipeline type walks every entry in the knowledge base, flattens it
// to embeddable text, generates embeddings in batches, and upserts one
// index record per entry. Each record carries the entry's sourceTag so
// that search results can be resolved back to the structured source.
//
// Batches are embedded concurrently using a worker pool to maximize
// throughput against the embedding service.
package ingest
