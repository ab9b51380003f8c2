package kb

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"strconv"

	"github.com/silvanic/handbook/core"
)

// Kind identifies the shape of a category. The kind is decided once when
// the knowledge base is loaded and never changes afterwards.
type Kind int

const (
	// KindOrdered is a category stored as an ordered sequence of entries,
	// addressed by integer index.
	KindOrdered Kind = iota + 1
	// KindKeyed is a category stored as a mapping from string key to
	// entry, addressed by key.
	KindKeyed
)

// Category is one knowledge-base category: either an ordered sequence or a
// keyed mapping of entries. Categories are immutable after load.
type Category struct {
	kind    Kind
	items   []core.Entry
	entries map[string]core.Entry
	keys    []string // key order as it appeared in the source document
}

// Kind returns the category's shape.
func (c *Category) Kind() Kind {
	return c.kind
}

// Len returns the number of entries in the category.
func (c *Category) Len() int {
	if c.kind == KindOrdered {
		return len(c.items)
	}
	return len(c.entries)
}

// At returns the entry at index i of an ordered category.
// Returns false for keyed categories and out-of-bounds indices.
func (c *Category) At(i int) (core.Entry, bool) {
	if c.kind != KindOrdered || i < 0 || i >= len(c.items) {
		return nil, false
	}
	return c.items[i], true
}

// Get returns the entry stored under key in a keyed category.
// Returns false for ordered categories and absent keys.
func (c *Category) Get(key string) (core.Entry, bool) {
	if c.kind != KindKeyed {
		return nil, false
	}
	entry, ok := c.entries[key]
	return entry, ok
}

// Keys returns the keys of a keyed category in document order.
// Returns nil for ordered categories.
func (c *Category) Keys() []string {
	if c.kind != KindKeyed {
		return nil
	}
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// UnmarshalJSON decides the category variant from the document shape:
// a JSON array becomes KindOrdered, a JSON object becomes KindKeyed.
// Any other shape, and any entry that is not an object, is invalid.
func (c *Category) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return fmt.Errorf("%w: empty category document", ErrInvalidData)
	}

	switch trimmed[0] {
	case '[':
		var items []core.Entry
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidData, err)
		}
		for i, entry := range items {
			if entry == nil {
				return fmt.Errorf("%w: entry %d is null", ErrInvalidData, i)
			}
		}
		c.kind = KindOrdered
		c.items = items
		return nil

	case '{':
		dec := json.NewDecoder(bytes.NewReader(data))
		if _, err := dec.Token(); err != nil { // opening brace
			return fmt.Errorf("%w: %v", ErrInvalidData, err)
		}
		c.kind = KindKeyed
		c.entries = make(map[string]core.Entry)
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidData, err)
			}
			key := tok.(string)

			var entry core.Entry
			if err := dec.Decode(&entry); err != nil {
				return fmt.Errorf("%w: entry %q: %v", ErrInvalidData, key, err)
			}
			if entry == nil {
				return fmt.Errorf("%w: entry %q is null", ErrInvalidData, key)
			}
			c.entries[key] = entry
			c.keys = append(c.keys, key)
		}
		return nil

	default:
		return fmt.Errorf("%w: category must be an array or an object", ErrInvalidData)
	}
}

// MarshalJSON writes the category back in its source shape: ordered
// categories as arrays, keyed categories as objects in document key order.
func (c *Category) MarshalJSON() ([]byte, error) {
	if c.kind == KindOrdered {
		if c.items == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(c.items)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(c.entries[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// KnowledgeBase is the in-memory knowledge base: a mapping from category
// name to category, loaded once at startup and read-only afterwards.
// It is safe for concurrent use by any number of requests.
type KnowledgeBase struct {
	categories map[string]*Category
	names      []string // category order as it appeared in the source document
}

// Category returns the named category.
func (kb *KnowledgeBase) Category(name string) (*Category, bool) {
	c, ok := kb.categories[name]
	return c, ok
}

// Categories returns the category names in document order.
func (kb *KnowledgeBase) Categories() []string {
	names := make([]string, len(kb.names))
	copy(names, kb.names)
	return names
}

// EntryCount returns the total number of entries across all categories.
func (kb *KnowledgeBase) EntryCount() int {
	var n int
	for _, c := range kb.categories {
		n += c.Len()
	}
	return n
}

// Entries yields every entry in the knowledge base together with its
// sourceTag, categories in document order. Ordered categories yield by
// ascending index, keyed categories by document key order.
func (kb *KnowledgeBase) Entries() iter.Seq2[string, core.Entry] {
	return func(yield func(string, core.Entry) bool) {
		for _, name := range kb.names {
			c := kb.categories[name]
			if c.kind == KindOrdered {
				for i, entry := range c.items {
					if !yield(SourceTag(name, strconv.Itoa(i)), entry) {
						return
					}
				}
				continue
			}
			for _, key := range c.keys {
				if !yield(SourceTag(name, key), c.entries[key]) {
					return
				}
			}
		}
	}
}

// UnmarshalJSON reads the knowledge base document: a JSON object mapping
// category names to category documents, preserving category order.
// A repeated category name is invalid data.
func (kb *KnowledgeBase) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("%w: document must be a JSON object", ErrInvalidData)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidData, err)
	}

	kb.categories = make(map[string]*Category)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidData, err)
		}
		name := tok.(string)
		if _, exists := kb.categories[name]; exists {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalidData, name)
		}

		category := &Category{}
		if err := dec.Decode(category); err != nil {
			return fmt.Errorf("category %q: %w", name, err)
		}
		kb.categories[name] = category
		kb.names = append(kb.names, name)
	}
	return nil
}

// MarshalJSON writes the knowledge base back as a JSON object in document
// category order.
func (kb *KnowledgeBase) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range kb.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(kb.categories[name])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
