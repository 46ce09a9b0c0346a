package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "npchunk.cli")
	defer teardown()
	//
	t.Setenv("NPCHUNK_CONFIG", "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Grammar.Path)
	assert.Equal(t, "S", cfg.Grammar.Start)
	assert.Equal(t, 1000, cfg.Parser.MaxTrees)
	assert.Equal(t, 2, cfg.Mining.MinN)
	assert.Equal(t, 5, cfg.Mining.MaxN)
	assert.Equal(t, 10, cfg.Mining.Top)
	assert.Equal(t, "?", cfg.Mining.Unknown)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 10, cfg.Server.MaxNgram)
	assert.Equal(t, "Error", cfg.Trace.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "npchunk.cli")
	defer teardown()
	//
	t.Setenv("NPCHUNK_CONFIG", "")
	t.Setenv("NPCHUNK_MAX_TREES", "7")
	t.Setenv("NPCHUNK_ALLOWED_ORIGINS", "http://a.example,http://b.example")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Parser.MaxTrees)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.Server.AllowedOrigins)
}

func TestLoadYAML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "npchunk.cli")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "npchunk.yaml")
	yaml := `
grammar:
  path: grammars/holmes.cfg
mining:
  min_n: 3
  max_n: 4
trace:
  level: Debug
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "grammars/holmes.cfg", cfg.Grammar.Path)
	assert.Equal(t, "S", cfg.Grammar.Start)
	assert.Equal(t, 3, cfg.Mining.MinN)
	assert.Equal(t, 4, cfg.Mining.MaxN)
	assert.Equal(t, "Debug", cfg.Trace.Level)
}

func TestLoadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "npchunk.cli")
	defer teardown()
	//
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	//
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mining:\n  min_n: 4\n  max_n: 2\n"), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "mining.max_n")
}

func TestValidateTraceLevel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "npchunk.cli")
	defer teardown()
	//
	for _, level := range []string{"Debug", "info", "ERROR"} {
		if _, err := ParseTraceLevel(level); err != nil {
			t.Errorf("expected %q to be a valid trace level, error is %v", level, err)
		}
	}
	if _, err := ParseTraceLevel("verbose"); err == nil {
		t.Errorf("expected 'verbose' to be rejected")
	}
}

func TestInitTracing(t *testing.T) {
	defer tracing.SetTraceSelector(nil)
	//
	tracing.SetTraceSelector(nil)
	require.Equal(t, tracing.NoOpTrace(), tracing.Select("npchunk.parse"))
	InitTracing()
	for _, key := range TraceKeys {
		tr := tracing.Select(key)
		assert.NotEqual(t, tracing.NoOpTrace(), tr, "tracer %s", key)
		assert.Equal(t, tracing.LevelError, tr.GetTraceLevel(), "tracer %s", key)
	}
	SetTraceLevel(tracing.LevelDebug)
	tr := tracing.Select("npchunk.cli")
	assert.Equal(t, tracing.LevelDebug, tr.GetTraceLevel())
	var buf bytes.Buffer
	tr.SetOutput(&buf)
	defer tr.SetOutput(os.Stderr)
	tr.Infof("grammar loaded")
	assert.Contains(t, buf.String(), "grammar loaded")
}
