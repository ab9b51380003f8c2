package kb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// orderedEngineKB has Engine as an ordered sequence.
const orderedEngineKB = `{
	"Engine": [
		{"title": "Air filter"},
		{"title": "Spark plugs"},
		{"title": "Drive belt"}
	]
}`

// keyedEngineKB has Engine as a keyed mapping.
const keyedEngineKB = `{
	"Engine": {
		"idle_speed": {"title": "Idle speed", "value": "750 rpm"},
		"oil_grade": {"title": "Oil grade", "value": "5W-30"}
	}
}`

func TestResolveOrderedCategory(t *testing.T) {
	kb, err := Parse([]byte(orderedEngineKB))
	require.NoError(t, err)

	t.Run("index within bounds", func(t *testing.T) {
		res, ok := kb.Resolve("Engine > 2")
		require.True(t, ok)
		assert.Equal(t, "Engine-2", res.UniqueID)
		assert.Equal(t, "Drive belt", res.Entry["title"])
	})

	t.Run("first element", func(t *testing.T) {
		res, ok := kb.Resolve("Engine > 0")
		require.True(t, ok)
		assert.Equal(t, "Engine-0", res.UniqueID)
	})

	t.Run("index normalized in uniqueId", func(t *testing.T) {
		res, ok := kb.Resolve("Engine > 02")
		require.True(t, ok)
		assert.Equal(t, "Engine-2", res.UniqueID)
	})

	t.Run("out of bounds", func(t *testing.T) {
		_, ok := kb.Resolve("Engine > 3")
		assert.False(t, ok)
	})

	t.Run("negative index", func(t *testing.T) {
		_, ok := kb.Resolve("Engine > -1")
		assert.False(t, ok)
	})

	t.Run("non-integer index", func(t *testing.T) {
		_, ok := kb.Resolve("Engine > idle_speed")
		assert.False(t, ok)
	})

	t.Run("fractional index", func(t *testing.T) {
		_, ok := kb.Resolve("Engine > 1.5")
		assert.False(t, ok)
	})
}

func TestResolveKeyedCategory(t *testing.T) {
	kb, err := Parse([]byte(keyedEngineKB))
	require.NoError(t, err)

	t.Run("existing key", func(t *testing.T) {
		res, ok := kb.Resolve("Engine > idle_speed")
		require.True(t, ok)
		assert.Equal(t, "idle_speed", res.UniqueID)
		assert.Equal(t, "750 rpm", res.Entry["value"])
	})

	t.Run("absent key", func(t *testing.T) {
		_, ok := kb.Resolve("Engine > redline")
		assert.False(t, ok)
	})

	t.Run("numeric key against keyed category", func(t *testing.T) {
		_, ok := kb.Resolve("Engine > 0")
		assert.False(t, ok)
	})
}

func TestResolveMalformedTags(t *testing.T) {
	kb, err := Parse([]byte(keyedEngineKB))
	require.NoError(t, err)

	tags := []struct {
		name string
		tag  string
	}{
		{"no delimiter", "Engine"},
		{"wrong delimiter", "Engine>idle_speed"},
		{"empty tag", ""},
		{"unknown category", "Gearbox > idle_speed"},
		{"delimiter only", " > "},
	}

	for _, tt := range tags {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := kb.Resolve(tt.tag)
			assert.False(t, ok)
		})
	}

	t.Run("extra delimiter parts use the first two", func(t *testing.T) {
		res, ok := kb.Resolve("Engine > idle_speed > trailing")
		require.True(t, ok)
		assert.Equal(t, "idle_speed", res.UniqueID)
	})
}

func TestSourceTag(t *testing.T) {
	assert.Equal(t, "Engine > idle_speed", SourceTag("Engine", "idle_speed"))
	assert.Equal(t, "Maintenance > 3", SourceTag("Maintenance", "3"))
}
