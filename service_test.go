package handbook

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/silvanic/handbook/config"
	"github.com/silvanic/handbook/core"
	"github.com/silvanic/handbook/kb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHandbook = `{
	"Engine": {
		"idle_speed": {"title": "Idle speed", "value": "750 rpm"}
	},
	"Maintenance": [
		{"title": "Oil change", "interval_km": 10000}
	]
}`

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	dataPath := filepath.Join(dir, "handbook.json")
	require.NoError(t, os.WriteFile(dataPath, []byte(testHandbook), 0o644))

	cfg := config.Default()
	cfg.Data.Path = dataPath
	cfg.Index.Path = filepath.Join(dir, "handbook.index")
	return cfg
}

func TestBootstrap(t *testing.T) {
	svc, err := Bootstrap(testConfig(t))
	require.NoError(t, err)
	defer svc.Close()

	status := svc.Status()
	assert.True(t, status.DataLoaded)
	assert.True(t, status.SearchReady)

	knowledge, err := svc.KnowledgeBase()
	require.NoError(t, err)
	assert.Equal(t, 2, knowledge.EntryCount())
}

func TestBootstrapInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Index.Driver = "s3"

	svc, err := Bootstrap(cfg)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	// The degraded handle is still safe to use.
	require.NotNil(t, svc)
	status := svc.Status()
	assert.False(t, status.DataLoaded)
	assert.False(t, status.SearchReady)

	_, err = svc.Search(context.Background(), "idle speed")
	assert.ErrorIs(t, err, core.ErrDataNotLoaded)

	_, err = svc.KnowledgeBase()
	assert.ErrorIs(t, err, core.ErrDataNotLoaded)

	assert.NoError(t, svc.Close())
}

func TestBootstrapMissingDataFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.Data.Path = filepath.Join(t.TempDir(), "nope.json")

	svc, err := Bootstrap(cfg)
	assert.Error(t, err)

	status := svc.Status()
	assert.False(t, status.DataLoaded)
	assert.False(t, status.SearchReady)
}

func TestBootstrapMalformedData(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.Data.Path, []byte(`{"Engine": 42}`), 0o644))

	_, err := Bootstrap(cfg)
	assert.ErrorIs(t, err, kb.ErrInvalidData)
}

func TestSearchNotReady(t *testing.T) {
	knowledge, err := kb.Parse([]byte(testHandbook))
	require.NoError(t, err)

	// Data loaded but the retrieval stack never came up.
	svc := &Service{knowledge: knowledge}

	status := svc.Status()
	assert.True(t, status.DataLoaded)
	assert.False(t, status.SearchReady)

	_, err = svc.Search(context.Background(), "idle speed")
	assert.ErrorIs(t, err, core.ErrSearchNotReady)
}
