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


package kb

import "errors"

var (
	// ErrInvalidData indicates the knowledge base document is malformed:
	// not a JSON object, a category that is neither an array nor an
	// object, or an entry that is not an object.
	ErrInvalidData = errors.New("invalid knowledge base data")

	// ErrNoCategories indicates the knowledge base document contains no
	// categories at all.
	ErrNoCategories = errors.New("knowledge base contains no categories")
)
