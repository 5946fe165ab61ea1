// Package config loads the Retriva configuration from YAML with
// environment-variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	rerrors "github.com/retriva/retriva/internal/errors"
)

// Config is the complete Retriva configuration.
type Config struct {
	Corpus     CorpusConfig     `yaml:"corpus"`
	Search     SearchConfig     `yaml:"search"`
	Embeddings EmbeddingsConfig `yaml:"embeddings"`
	Reranker   RerankerConfig   `yaml:"reranker"`
	Generation GenerationConfig `yaml:"generation"`
	Feedback   FeedbackConfig   `yaml:"feedback"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// CorpusConfig locates the document corpus.
type CorpusConfig struct {
	// Path is the corpus file: .jsonl with {"text": ...} lines, or
	// plain text split on blank lines.
	Path string `yaml:"path"`
}

// SearchConfig holds the lexical scoring and history parameters.
type SearchConfig struct {
	// K1, B, and Delta are the BM25L constants.
	K1    float64 `yaml:"k1"`
	B     float64 `yaml:"b"`
	Delta float64 `yaml:"delta"`

	// HistoryWindow is the number of trailing turns used for query
	// augmentation; HistoryDecay the per-turn weight decay.
	HistoryWindow int     `yaml:"history_window"`
	HistoryDecay  float64 `yaml:"history_decay"`
}

// EmbeddingsConfig configures the embedding provider.
type EmbeddingsConfig struct {
	Host       string        `yaml:"host"`
	Model      string        `yaml:"model"`
	Dimensions int           `yaml:"dimensions"`
	BatchSize  int           `yaml:"batch_size"`
	Timeout    time.Duration `yaml:"timeout"`
	CacheSize  int           `yaml:"cache_size"`
}

// RerankerConfig configures the cross-encoder endpoint. An empty
// endpoint disables reranking.
type RerankerConfig struct {
	Endpoint string        `yaml:"endpoint"`
	Model    string        `yaml:"model"`
	Timeout  time.Duration `yaml:"timeout"`
}

// GenerationConfig configures the answer-generation model.
type GenerationConfig struct {
	BaseURL     string  `yaml:"base_url"`
	Token       string  `yaml:"token"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
}

// FeedbackConfig locates the feedback log.
type FeedbackConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig controls structured logging.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Path: "corpus.jsonl",
		},
		Search: SearchConfig{
			K1:            1.2,
			B:             0.75,
			Delta:         0.5,
			HistoryWindow: 2,
			HistoryDecay:  0.9,
		},
		Embeddings: EmbeddingsConfig{
			Host:       "http://localhost:11434",
			Model:      "embeddinggemma",
			Dimensions: 768,
			BatchSize:  32,
			Timeout:    60 * time.Second,
			CacheSize:  1000,
		},
		Reranker: RerankerConfig{
			Endpoint: "",
			Model:    "reranker-small",
			Timeout:  30 * time.Second,
		},
		Generation: GenerationConfig{
			BaseURL:     "http://localhost:11434/v1",
			Token:       "none",
			Model:       "llama3.2",
			Temperature: 0.2,
		},
		Feedback: FeedbackConfig{
			Path: "feedback.jsonl",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultConfigName is the per-project config file discovered when no
// explicit path is given.
const DefaultConfigName = "retriva.yaml"

// Discover returns the first config file found: ./retriva.yaml, then
// ~/.retriva/config.yaml. Empty string when neither exists.
func Discover() string {
	if _, err := os.Stat(DefaultConfigName); err == nil {
		return DefaultConfigName
	}
	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, ".retriva", "config.yaml")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Load reads the config file at path, applies RETRIVA_* environment
// overrides, and validates the result. An empty path falls back to
// Discover; when nothing is found the defaults apply.
func Load(path string) (*Config, error) {
	cfg := NewConfig()

	if path == "" {
		path = Discover()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, rerrors.Wrap(err, rerrors.CodeConfigNotFound, "config file not found: "+path)
			}
			return nil, rerrors.Wrap(err, rerrors.CodeInvalidConfig, "failed to read config file")
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, rerrors.Wrap(err, rerrors.CodeInvalidConfig, "failed to parse config file")
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies RETRIVA_* environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("RETRIVA_CORPUS_PATH"); v != "" {
		c.Corpus.Path = v
	}
	if v := os.Getenv("RETRIVA_EMBEDDINGS_HOST"); v != "" {
		c.Embeddings.Host = v
	}
	if v := os.Getenv("RETRIVA_EMBEDDINGS_MODEL"); v != "" {
		c.Embeddings.Model = v
	}
	if v := os.Getenv("RETRIVA_RERANKER_ENDPOINT"); v != "" {
		c.Reranker.Endpoint = v
	}
	if v := os.Getenv("RETRIVA_GENERATION_BASE_URL"); v != "" {
		c.Generation.BaseURL = v
	}
	if v := os.Getenv("RETRIVA_GENERATION_MODEL"); v != "" {
		c.Generation.Model = v
	}
	if v := os.Getenv("RETRIVA_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("RETRIVA_HISTORY_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Search.HistoryWindow = n
		}
	}
	if v := os.Getenv("RETRIVA_HISTORY_DECAY"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Search.HistoryDecay = f
		}
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Corpus.Path == "" {
		return rerrors.New(rerrors.CodeInvalidConfig, "corpus path is required")
	}
	if c.Search.K1 <= 0 {
		return rerrors.New(rerrors.CodeInvalidConfig, "search.k1 must be positive")
	}
	if c.Search.B < 0 || c.Search.B > 1 {
		return rerrors.New(rerrors.CodeInvalidConfig, "search.b must be in [0, 1]")
	}
	if c.Search.Delta < 0 {
		return rerrors.New(rerrors.CodeInvalidConfig, "search.delta must be non-negative")
	}
	if c.Search.HistoryWindow <= 0 {
		return rerrors.New(rerrors.CodeInvalidConfig, "search.history_window must be positive")
	}
	if c.Search.HistoryDecay <= 0 || c.Search.HistoryDecay > 1 {
		return rerrors.New(rerrors.CodeInvalidConfig, "search.history_decay must be in (0, 1]")
	}
	if c.Embeddings.Host == "" {
		return rerrors.New(rerrors.CodeInvalidConfig, "embeddings.host is required")
	}
	if c.Embeddings.Model == "" {
		return rerrors.New(rerrors.CodeInvalidConfig, "embeddings.model is required")
	}
	if c.Embeddings.Dimensions <= 0 {
		return rerrors.New(rerrors.CodeInvalidConfig, "embeddings.dimensions must be positive")
	}
	return nil
}
