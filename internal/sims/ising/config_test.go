package ising

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, 256, c.Width)
	assert.Equal(t, 256, c.Height)
	assert.Equal(t, int64(1337), c.Seed)
	assert.Equal(t, 0.4, c.Params.Beta)
	assert.Equal(t, 1, c.Params.SweepsPerFrame)
	assert.Equal(t, StartHot, c.Params.Start)
}

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"w":                "64",
		"h":                "48",
		"seed":             "-5",
		"beta":             "0.55",
		"sweeps_per_frame": "4",
		"start":            "cold",
	})
	want := Config{
		Width:  64,
		Height: 48,
		Seed:   -5,
		Params: Params{Beta: 0.55, SweepsPerFrame: 4, Start: StartCold},
	}
	assert.Equal(t, want, c)
}

func TestFromMapRejectsInvalidValues(t *testing.T) {
	c := FromMap(map[string]string{
		"w":     "0",
		"h":     "nope",
		"beta":  "-1",
		"start": "lukewarm",
	})
	assert.Equal(t, DefaultConfig(), c)
}

func TestFromMapNil(t *testing.T) {
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ising.yaml")
	doc := []byte("width: 128\nheight: 96\nseed: 7\nparams:\n  beta: 0.44\n  sweeps_per_frame: 2\n  start: cold\n")
	require.NoError(t, os.WriteFile(path, doc, 0o644))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	want := Config{
		Width:  128,
		Height: 96,
		Seed:   7,
		Params: Params{Beta: 0.44, SweepsPerFrame: 2, Start: StartCold},
	}
	assert.Equal(t, want, c)
}

func TestLoadConfigFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ising.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 32\n"), 0o644))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 32, c.Width)
	assert.Equal(t, DefaultConfig().Height, c.Height)
	assert.Equal(t, DefaultConfig().Params, c.Params)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: [\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
