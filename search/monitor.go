package search

import "github.com/silvanic/handbook/core"

// RetrievalMonitor provides hooks to observe the retrieval process.
// Implement this interface to track intermediate steps during a search.
type RetrievalMonitor interface {
	Start(query string)
	AfterEmbedding(dimensions int)
	AfterIndexQuery(matches []core.Match)
	Resolved(match core.Match, uniqueID string)
	DroppedUnresolvable(match core.Match)
	DroppedDuplicate(match core.Match, uniqueID string)
	Finish(results []core.RetrievedResult)
}

// noopMonitor is a no-op implementation of RetrievalMonitor.
type noopMonitor struct{}

var _ RetrievalMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                          {}
func (n *noopMonitor) AfterEmbedding(_ int)                    {}
func (n *noopMonitor) AfterIndexQuery(_ []core.Match)          {}
func (n *noopMonitor) Resolved(_ core.Match, _ string)         {}
func (n *noopMonitor) DroppedUnresolvable(_ core.Match)        {}
func (n *noopMonitor) DroppedDuplicate(_ core.Match, _ string) {}
func (n *noopMonitor) Finish(_ []core.RetrievedResult)         {}
