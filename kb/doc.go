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


// Package kb holds the knowledge base: a read-only, hierarchically
// structured document of categories, each either an ordered sequence or a
// keyed mapping of entries.
//
// The variant of each category is decided once, at load time, from the
// JSON shape of the source document (array vs object) and stored as an
// explicit tag. Lookups switch on the tag instead of probing the structure.
//
// The package also owns sourceTag resolution: decoding an index match's
// "<category> > <keyOrIndex>" tag back into the entry it was built from,
// together with the canonical uniqueId used for deduplication. Resolution
// is a pure function over the loaded document; malformed tags are reported
// with a boolean, never an error.
//
// A KnowledgeBase is immutable after Load returns and may be shared freely
// across concurrent requests without locking.
package kb
