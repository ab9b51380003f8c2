package search

import (
	"sort"

	"github.com/silvanic/handbook/core"
	"github.com/silvanic/handbook/kb"
)

const (
	// OverfetchLimit is how many neighbors are requested from the index
	// per query. Several neighbors may collapse to the same entry or
	// carry tags that no longer resolve, so the index is over-fetched to
	// compensate for that attrition without a second round trip.
	OverfetchLimit = 15

	// MaxResults caps the reconciled result list.
	MaxResults = 5
)

// Reconcile turns raw index matches into the final result list:
//
//  1. Matches are visited in received order; each sourceTag is resolved
//     against the knowledge base, and unresolvable matches are dropped.
//  2. The first match resolving to a given uniqueId wins; later matches
//     for the same uniqueId are discarded.
//  3. The surviving results are stably sorted by descending score. With
//     score-descending input this changes nothing, but it keeps the
//     final order correct even if the index violates its ordering
//     contract; ties keep first-seen order.
//  4. The list is truncated to MaxResults.
//
// Zero resolvable matches yield an empty, non-nil list, never an error.
func Reconcile(knowledge *kb.KnowledgeBase, matches []core.Match, monitor RetrievalMonitor) []core.RetrievedResult {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	results := make([]core.RetrievedResult, 0, len(matches))
	seen := make(map[string]bool, len(matches))

	for _, match := range matches {
		res, ok := knowledge.Resolve(match.SourceTag)
		if !ok {
			monitor.DroppedUnresolvable(match)
			continue
		}
		if seen[res.UniqueID] {
			monitor.DroppedDuplicate(match, res.UniqueID)
			continue
		}
		seen[res.UniqueID] = true
		monitor.Resolved(match, res.UniqueID)

		results = append(results, core.RetrievedResult{
			ID:    res.UniqueID,
			Score: match.Score,
			Entry: res.Entry,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results
}
