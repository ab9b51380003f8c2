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


package index

import "errors"

var (
	// ErrAPIKeyRequired is returned when a remote index is configured
	// without a credential.
	ErrAPIKeyRequired = errors.New("index API key required")

	// ErrBaseURLRequired is returned when a remote index is configured
	// without a service URL.
	ErrBaseURLRequired = errors.New("index base URL required")

	// ErrEmptyVector is returned when a query or record carries no vector.
	ErrEmptyVector = errors.New("vector must not be empty")

	// ErrTruncatedRecord indicates a stored record could not be decoded.
	ErrTruncatedRecord = errors.New("truncated vector record")
)
