package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the text intelligence service.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Workers   WorkersConfig   `yaml:"workers"`
	Search    SearchConfig    `yaml:"search"`
	Analyze   AnalyzeConfig   `yaml:"analyze"`
	Summarize SummarizeConfig `yaml:"summarize"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// EmbeddingConfig holds embedding configuration.
type EmbeddingConfig struct {
	Provider    string `yaml:"provider"`    // "hash", "openai", "ollama"
	Model       string `yaml:"model"`       // e.g., "text-embedding-3-small"
	APIKeyEnv   string `yaml:"api_key_env"` // Environment variable for API key
	BaseURL     string `yaml:"base_url"`
	Dimension   int    `yaml:"dimension"`
	BatchSize   int    `yaml:"batch_size"`
	TimeoutSecs int    `yaml:"timeout_secs"`
	CachePath   string `yaml:"cache_path"` // Empty disables the embedding cache
}

// WorkersConfig bounds the pool running blocking model calls.
type WorkersConfig struct {
	Size int `yaml:"size"`
}

// SearchConfig holds semantic search configuration.
type SearchConfig struct {
	DefaultTopK int `yaml:"default_top_k"`
	MaxTopK     int `yaml:"max_top_k"`
}

// AnalyzeConfig holds analysis configuration.
type AnalyzeConfig struct {
	MaxKeywords int `yaml:"max_keywords"`
}

// SummarizeConfig holds summarization configuration.
type SummarizeConfig struct {
	MaxSentences int `yaml:"max_sentences"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr: ":8080",
		},
		Embedding: EmbeddingConfig{
			Provider:    "hash",
			Model:       "text-embedding-3-small",
			APIKeyEnv:   "OPENAI_API_KEY",
			Dimension:   256,
			BatchSize:   100,
			TimeoutSecs: 60,
		},
		Workers: WorkersConfig{
			Size: 8,
		},
		Search: SearchConfig{
			DefaultTopK: 3,
			MaxTopK:     100,
		},
		Analyze: AnalyzeConfig{
			MaxKeywords: 10,
		},
		Summarize: SummarizeConfig{
			MaxSentences: 3,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for textintel.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "textintel.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".textintel", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
