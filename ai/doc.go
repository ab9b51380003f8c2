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


// Package ai abstracts the embedding service used for semantic search.
//
// The Embedder interface is the only thing the rest of the system knows
// about embeddings: text in, unit-length float32 vector out. Two
// implementations ship with the repository:
//
//   - ai/openai: production implementation against OpenAI-compatible APIs
//   - ai/mock: deterministic test double with behavior injection
//
// Production constructors return the ai.Embedder interface to keep callers
// decoupled from the concrete client; the mock constructor returns the
// concrete type so tests can inject behavior and assert on call counts.
package ai
