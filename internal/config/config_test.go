package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rerrors "github.com/retriva/retriva/internal/errors"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, 1.2, cfg.Search.K1)
	assert.Equal(t, 0.75, cfg.Search.B)
	assert.Equal(t, 0.5, cfg.Search.Delta)
	assert.Equal(t, 2, cfg.Search.HistoryWindow)
	assert.Equal(t, 0.9, cfg.Search.HistoryDecay)
	assert.Equal(t, "http://localhost:11434", cfg.Embeddings.Host)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, NewConfig().Search, cfg.Search)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
corpus:
  path: /data/docs.jsonl
search:
  k1: 1.5
  history_window: 4
reranker:
  endpoint: http://localhost:9659
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/docs.jsonl", cfg.Corpus.Path)
	assert.Equal(t, 1.5, cfg.Search.K1)
	assert.Equal(t, 4, cfg.Search.HistoryWindow)
	assert.Equal(t, "http://localhost:9659", cfg.Reranker.Endpoint)
	// Untouched fields keep their defaults.
	assert.Equal(t, 0.75, cfg.Search.B)
}

func TestDiscover(t *testing.T) {
	t.Run("no file anywhere", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("HOME", t.TempDir())
		assert.Empty(t, Discover())
	})

	t.Run("project file wins", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigName), []byte("search:\n  k1: 2.0\n"), 0o644))
		t.Chdir(dir)

		assert.Equal(t, DefaultConfigName, Discover())

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 2.0, cfg.Search.K1)
	})
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, rerrors.CodeConfigNotFound, rerrors.GetCode(err))
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("RETRIVA_CORPUS_PATH", "/env/corpus.jsonl")
	t.Setenv("RETRIVA_HISTORY_DECAY", "0.8")
	t.Setenv("RETRIVA_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/env/corpus.jsonl", cfg.Corpus.Path)
	assert.Equal(t, 0.8, cfg.Search.HistoryDecay)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty corpus path", func(c *Config) { c.Corpus.Path = "" }},
		{"non-positive k1", func(c *Config) { c.Search.K1 = 0 }},
		{"b out of range", func(c *Config) { c.Search.B = 1.5 }},
		{"negative delta", func(c *Config) { c.Search.Delta = -0.1 }},
		{"zero history window", func(c *Config) { c.Search.HistoryWindow = 0 }},
		{"decay above one", func(c *Config) { c.Search.HistoryDecay = 1.1 }},
		{"missing embeddings host", func(c *Config) { c.Embeddings.Host = "" }},
		{"zero dimensions", func(c *Config) { c.Embeddings.Dimensions = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Equal(t, rerrors.CodeInvalidConfig, rerrors.GetCode(err))
		})
	}
}
