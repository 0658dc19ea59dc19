package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EnvDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 12, cfg.Enrich.BatchSize)
	assert.Equal(t, 4, cfg.Enrich.Parallelism)
	assert.Equal(t, 20*time.Second, cfg.Enrich.CallTimeout)
	assert.Equal(t, "fast", cfg.Lesson.Mode)
	assert.Equal(t, 50, cfg.Lesson.VocabCap())
	assert.Equal(t, "cache", cfg.Cache.Dir)
	assert.True(t, cfg.Lesson.DetectLanguage)
}

func TestLoad_YAMLFileWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 9090
log:
  level: debug
  format: text
lesson:
  mode: thorough
enrich:
  batch_size: 8
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "7070")

	cfg, err := Load()
	require.NoError(t, err)

	// ENV beats YAML, YAML beats defaults.
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 8, cfg.Enrich.BatchSize)
	assert.Equal(t, 150, cfg.Lesson.VocabCap())
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	require.Error(t, err)
}

func TestValidate_Rejections(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Chdir(t.TempDir())

	base, err := Load()
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }},
		{"bad mode", func(c *Config) { c.Lesson.Mode = "exhaustive" }},
		{"zero batch size", func(c *Config) { c.Enrich.BatchSize = 0 }},
		{"huge batch size", func(c *Config) { c.Enrich.BatchSize = 500 }},
		{"zero parallelism", func(c *Config) { c.Enrich.Parallelism = 0 }},
		{"zero timeout", func(c *Config) { c.Enrich.CallTimeout = 0 }},
		{"zero split depth", func(c *Config) { c.Enrich.MaxSplitDepth = 0 }},
		{"empty cache dir", func(c *Config) { c.Cache.Dir = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := *base
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
