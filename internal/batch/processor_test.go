package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mol2obj/internal/generator"
)

func testConfig(dir string) Config {
	opts := generator.DefaultOptions()
	opts.SphereSegments = 8
	opts.CylinderSegments = 6
	return Config{
		OutputDir: dir,
		Options:   opts,
		Workers:   2,
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	results := Run(testConfig(dir), []string{"H2O", "CH4", "bogus!", "CO2"})

	require.Len(t, results, 4)

	// Results stay in input order regardless of worker scheduling.
	assert.Equal(t, "H2O", results[0].Formula)
	assert.Equal(t, "bogus!", results[2].Formula)

	assert.True(t, results[0].Success)
	assert.Equal(t, 3, results[0].AtomCount)
	assert.True(t, results[1].Success)
	assert.False(t, results[2].Success)
	assert.NotEmpty(t, results[2].Error)
	assert.True(t, results[3].Success)

	for _, formula := range []string{"H2O", "CH4", "CO2"} {
		assert.FileExists(t, filepath.Join(dir, formula, "model.obj"))
		assert.FileExists(t, filepath.Join(dir, formula, "model.mtl"))
	}
	assert.NoFileExists(t, filepath.Join(dir, "bogus!", "model.obj"))
	assert.NoFileExists(t, filepath.Join(dir, "H2O", "preview.webp"))
}

func TestRunPreview(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.Preview = true
	cfg.RenderSize = 32
	cfg.Supersample = 2

	results := Run(cfg, []string{"O2"})
	require.Len(t, results, 1)
	require.True(t, results[0].Success, "error: %s", results[0].Error)

	info, err := os.Stat(filepath.Join(dir, "O2", "preview.webp"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.json")

	results := []Result{
		{Formula: "H2O", AtomCount: 3, BondCount: 2, Success: true},
		{Formula: "bad", Error: "no chemistry molecule"},
	}
	require.NoError(t, WriteManifest(path, results, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []ManifestEntry
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 1)

	assert.Equal(t, "H2O", entries[0].Formula)
	assert.Equal(t, "H2O/model.obj", entries[0].Model)
	assert.Equal(t, "H2O/model.mtl", entries[0].Material)
	assert.Empty(t, entries[0].Preview)
}
