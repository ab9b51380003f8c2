package search

import (
	"testing"

	"github.com/silvanic/handbook/core"
	"github.com/silvanic/handbook/kb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHandbook = `{
	"Engine": {
		"idle_speed": {"title": "Idle speed"},
		"oil_grade": {"title": "Oil grade"},
		"coolant": {"title": "Coolant"},
		"belt": {"title": "Belt"}
	},
	"Maintenance": [
		{"title": "Oil change"},
		{"title": "Brake fluid"},
		{"title": "Timing belt"}
	]
}`

func testKB(t *testing.T) *kb.KnowledgeBase {
	t.Helper()
	knowledge, err := kb.Parse([]byte(testHandbook))
	require.NoError(t, err)
	return knowledge
}

func resultIDs(results []core.RetrievedResult) []string {
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	return ids
}

func TestReconcileDeduplication(t *testing.T) {
	knowledge := testKB(t)

	// 15 matches, 10 of which resolve, collapsing to 4 distinct entries.
	// The highest score per entry: A=0.9, B=0.8, C=0.7, D=0.5.
	matches := []core.Match{
		{SourceTag: "Engine > idle_speed", Score: 0.9}, // A
		{SourceTag: "Engine > missing", Score: 0.88},
		{SourceTag: "Engine > idle_speed", Score: 0.85}, // dup A
		{SourceTag: "Engine > oil_grade", Score: 0.8},   // B
		{SourceTag: "Gearbox > 0", Score: 0.75},
		{SourceTag: "Maintenance > 0", Score: 0.7}, // C
		{SourceTag: "Maintenance > 9", Score: 0.65},
		{SourceTag: "Engine > oil_grade", Score: 0.6}, // dup B
		{SourceTag: "Engine > coolant", Score: 0.5},   // D
		{SourceTag: "no-delimiter", Score: 0.45},
		{SourceTag: "Maintenance > 0", Score: 0.4}, // dup C
		{SourceTag: "Engine > coolant", Score: 0.3}, // dup D
		{SourceTag: "Maintenance > x", Score: 0.2},
		{SourceTag: "Engine > idle_speed", Score: 0.1}, // dup A
		{SourceTag: "", Score: 0.05},
	}

	results := Reconcile(knowledge, matches, nil)

	require.Len(t, results, 4)
	assert.Equal(t, []string{"idle_speed", "oil_grade", "Maintenance-0", "coolant"}, resultIDs(results))
	assert.InDelta(t, 0.9, results[0].Score, 1e-6)
	assert.InDelta(t, 0.8, results[1].Score, 1e-6)
	assert.InDelta(t, 0.7, results[2].Score, 1e-6)
	assert.InDelta(t, 0.5, results[3].Score, 1e-6)
}

func TestReconcileResortsUnorderedInput(t *testing.T) {
	knowledge := testKB(t)

	// The index's score-descending contract is violated here; the final
	// order must still be descending.
	matches := []core.Match{
		{SourceTag: "Maintenance > 2", Score: 0.3},
		{SourceTag: "Engine > idle_speed", Score: 0.9},
		{SourceTag: "Maintenance > 0", Score: 0.6},
	}

	results := Reconcile(knowledge, matches, nil)

	require.Len(t, results, 3)
	assert.Equal(t, []string{"idle_speed", "Maintenance-0", "Maintenance-2"}, resultIDs(results))
	for i := 0; i < len(results)-1; i++ {
		assert.GreaterOrEqual(t, results[i].Score, results[i+1].Score)
	}
}

func TestReconcileFirstSeenWinsOnUnorderedDuplicates(t *testing.T) {
	knowledge := testKB(t)

	// With unordered input, first-seen is no longer highest-score: the
	// first occurrence still wins the dedup, and the kept score is the
	// first occurrence's score.
	matches := []core.Match{
		{SourceTag: "Engine > idle_speed", Score: 0.4},
		{SourceTag: "Engine > idle_speed", Score: 0.9},
	}

	results := Reconcile(knowledge, matches, nil)

	require.Len(t, results, 1)
	assert.InDelta(t, 0.4, results[0].Score, 1e-6)
}

func TestReconcileTiesKeepFirstSeenOrder(t *testing.T) {
	knowledge := testKB(t)

	matches := []core.Match{
		{SourceTag: "Engine > belt", Score: 0.5},
		{SourceTag: "Engine > coolant", Score: 0.5},
		{SourceTag: "Maintenance > 1", Score: 0.5},
	}

	results := Reconcile(knowledge, matches, nil)
	assert.Equal(t, []string{"belt", "coolant", "Maintenance-1"}, resultIDs(results))
}

func TestReconcileTruncatesToMaxResults(t *testing.T) {
	knowledge := testKB(t)

	matches := []core.Match{
		{SourceTag: "Engine > idle_speed", Score: 0.9},
		{SourceTag: "Engine > oil_grade", Score: 0.8},
		{SourceTag: "Engine > coolant", Score: 0.7},
		{SourceTag: "Engine > belt", Score: 0.6},
		{SourceTag: "Maintenance > 0", Score: 0.5},
		{SourceTag: "Maintenance > 1", Score: 0.4},
		{SourceTag: "Maintenance > 2", Score: 0.3},
	}

	results := Reconcile(knowledge, matches, nil)
	require.Len(t, results, MaxResults)
	assert.Equal(t, []string{"idle_speed", "oil_grade", "coolant", "belt", "Maintenance-0"}, resultIDs(results))
}

func TestReconcileNothingResolves(t *testing.T) {
	knowledge := testKB(t)

	matches := []core.Match{
		{SourceTag: "Gearbox > 1", Score: 0.9},
		{SourceTag: "bogus", Score: 0.8},
	}

	results := Reconcile(knowledge, matches, nil)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestReconcileEmptyInput(t *testing.T) {
	results := Reconcile(testKB(t), nil, nil)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}
