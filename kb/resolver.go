package kb

import (
	"strconv"
	"strings"

	"github.com/silvanic/handbook/core"
)

// Delimiter separates the category name from the key or index in a
// sourceTag, e.g. "Engine > idle_speed".
const Delimiter = " > "

// SourceTag builds the tag that encodes an entry's knowledge-base path.
func SourceTag(category, keyOrIndex string) string {
	return category + Delimiter + keyOrIndex
}

// Resolution is a successfully resolved sourceTag: the source entry plus
// the canonical identifier used for deduplication. For ordered categories
// the identifier is "<category>-<index>"; for keyed categories it is the
// key itself.
type Resolution struct {
	Entry    core.Entry
	UniqueID string
}

// Resolve decodes a sourceTag and fetches the entry it points at.
//
// Malformed tags never produce an error: a missing delimiter, an unknown
// category, a non-integer or out-of-bounds index, or an absent key all
// report ok=false and the match is dropped by the caller. Dropping bad
// tags silently keeps one corrupt index record from failing a whole
// request; it is relied upon by the reconciliation engine.
func (kb *KnowledgeBase) Resolve(sourceTag string) (Resolution, bool) {
	parts := strings.Split(sourceTag, Delimiter)
	if len(parts) < 2 {
		return Resolution{}, false
	}
	category, keyOrIndex := parts[0], parts[1]

	c, ok := kb.categories[category]
	if !ok {
		return Resolution{}, false
	}

	switch c.kind {
	case KindOrdered:
		index, err := strconv.Atoi(keyOrIndex)
		if err != nil || index < 0 {
			return Resolution{}, false
		}
		entry, ok := c.At(index)
		if !ok {
			return Resolution{}, false
		}
		return Resolution{
			Entry:    entry,
			UniqueID: category + "-" + strconv.Itoa(index),
		}, true

	case KindKeyed:
		entry, ok := c.Get(keyOrIndex)
		if !ok {
			return Resolution{}, false
		}
		return Resolution{Entry: entry, UniqueID: keyOrIndex}, true

	default:
		return Resolution{}, false
	}
}
