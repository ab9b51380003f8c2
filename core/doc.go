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


// Package core defines the domain model shared by every Handbook package.
//
// The model is intentionally small:
//
//   - Entry: a raw knowledge-base record (arbitrary JSON object)
//   - Match: a scored hit from a similarity index, tagged with the
//     knowledge-base path it was built from
//   - RetrievedResult: an Entry reconciled from a Match, carrying the
//     canonical uniqueId and the winning similarity score
//
// It also holds the error taxonomy sentinels (validation and readiness
// errors) that the HTTP layer maps onto response codes. Packages higher in
// the stack depend on core; core depends on nothing.
package core
