package core

import "encoding/json"

// Entry is a single knowledge-base record. Entries are arbitrary JSON
// objects (title, description, interval, ...); the service never interprets
// individual fields, it only carries them through to responses.
type Entry map[string]any

// Match is a single hit returned by a similarity index.
type Match struct {
	// SourceTag encodes the knowledge-base path of the stored vector,
	// in the form "<category> > <keyOrIndex>".
	SourceTag string

	// Score is the similarity score reported by the index.
	// Higher means more similar.
	Score float32
}

// RetrievedResult is an Entry reconciled from a Match: the full source
// record enriched with its canonical identifier and the similarity score
// of the match that resolved to it.
type RetrievedResult struct {
	ID    string
	Score float32
	Entry Entry
}

// MarshalJSON flattens the entry fields into the top-level object and adds
// the "id" and "score" fields. Entry fields named "id" or "score" are
// overwritten by the derived values.
func (r RetrievedResult) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(r.Entry)+2)
	for k, v := range r.Entry {
		flat[k] = v
	}
	flat["id"] = r.ID
	flat["score"] = r.Score
	return json.Marshal(flat)
}
