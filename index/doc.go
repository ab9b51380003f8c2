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


// Package index abstracts the vector similarity index.
//
// The Index interface treats the index as an opaque nearest-neighbor
// service: vectors go in with an identifier and a sourceTag, scored matches
// come out. Nothing above this package knows or cares how neighbors are
// found.
//
// Two implementations ship with the repository:
//
//   - index/local: a BadgerDB-backed index that scans stored vectors and
//     scores them by dot product. Suitable for small knowledge bases and
//     for running the whole system without external services.
//   - index/remote: an HTTP client for an API-key-authenticated vector
//     search service.
package index
