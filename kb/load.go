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

import (
	"fmt"
	"log/slog"
	"os"
)

// Parse builds a knowledge base from a JSON document.
// The document must be an object with at least one category.
func Parse(data []byte) (*KnowledgeBase, error) {
	kb := &KnowledgeBase{}
	if err := kb.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	if len(kb.names) == 0 {
		return nil, ErrNoCategories
	}
	return kb, nil
}

// Load reads and parses the knowledge base file at path.
func Load(path string) (*KnowledgeBase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading knowledge base: %w", err)
	}

	kb, err := Parse(data)
	if err != nil {
		return nil, err
	}

	slog.Default().Info("knowledge base loaded",
		"path", path,
		"categories", len(kb.names),
		"entries", kb.EntryCount())
	return kb, nil
}
