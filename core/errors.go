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

import "errors"

// Domain errors. The HTTP layer maps these onto status codes, so their
// messages are the user-visible wording.
var (
	// ErrInvalidQuery indicates a missing, non-textual, or blank query.
	ErrInvalidQuery = errors.New("valid query string is required")

	// ErrDataNotLoaded indicates the knowledge base has not been loaded.
	ErrDataNotLoaded = errors.New("knowledge base data not loaded")

	// ErrSearchNotReady indicates the embedding or index services have
	// not been initialized.
	ErrSearchNotReady = errors.New("search services not initialized")
)
