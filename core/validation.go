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


package core

import "strings"

// ValidateQuery validates a free-text search query.
//
// Validation rules:
//   - the query must not be empty after trimming whitespace
//
// Returns ErrInvalidQuery on failure. Validation happens before any
// external service is called, so an invalid query never costs an
// embedding or index round trip.
func ValidateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return ErrInvalidQuery
	}
	return nil
}
