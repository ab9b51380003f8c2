package ingest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/silvanic/handbook/core"
)

// EntryText flattens a knowledge-base entry into a single string suitable
// for embedding. Fields are emitted as "key: value" lines in sorted key
// order so the same entry always embeds to the same vector.
func EntryText(entry core.Entry) string {
	keys := make([]string, 0, len(entry))
	for key := range entry {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, key := range keys {
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(key)
		sb.WriteString(": ")
		switch v := entry[key].(type) {
		case string:
			sb.WriteString(v)
		default:
			fmt.Fprintf(&sb, "%v", v)
		}
	}
	return sb.String()
}
