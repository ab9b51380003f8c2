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

// Package search implements the retrieval and reconciliation engine.
//
// A query flows through three stages:
//
//  1. Validation and embedding: the query text is rejected if blank,
//     otherwise turned into a unit-length vector.
//  2. Index query: the similarity index is asked for the top
//     OverfetchLimit neighbors; matches pass through unmodified.
//  3. Reconciliation and ranking: each match's sourceTag is resolved back
//     to its knowledge-base entry, duplicates are collapsed to their
//     highest-scoring match, the survivors are re-sorted by descending
//     score, and the list is truncated to MaxResults.
//
// Unresolvable matches are dropped silently: a stale or corrupt index
// record degrades one result, not the whole request.
package search
