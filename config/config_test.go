package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.ListenAddr != ":8080" {
		t.Errorf("expected ListenAddr=:8080, got %s", cfg.Server.ListenAddr)
	}
	if cfg.Embedding.Provider != "hash" {
		t.Errorf("expected Provider=hash, got %s", cfg.Embedding.Provider)
	}
	if cfg.Search.DefaultTopK != 3 {
		t.Errorf("expected DefaultTopK=3, got %d", cfg.Search.DefaultTopK)
	}
	if cfg.Search.MaxTopK != 100 {
		t.Errorf("expected MaxTopK=100, got %d", cfg.Search.MaxTopK)
	}
	if cfg.Workers.Size != 8 {
		t.Errorf("expected Workers.Size=8, got %d", cfg.Workers.Size)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "textintel.yaml")

	content := `
server:
  listen_addr: ":9000"
embedding:
  provider: openai
  model: text-embedding-3-large
search:
  default_top_k: 5
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.ListenAddr != ":9000" {
		t.Errorf("expected ListenAddr=:9000, got %s", cfg.Server.ListenAddr)
	}
	if cfg.Embedding.Provider != "openai" {
		t.Errorf("expected Provider=openai, got %s", cfg.Embedding.Provider)
	}
	if cfg.Search.DefaultTopK != 5 {
		t.Errorf("expected DefaultTopK=5, got %d", cfg.Search.DefaultTopK)
	}
	// Untouched sections keep their defaults.
	if cfg.Search.MaxTopK != 100 {
		t.Errorf("expected MaxTopK default 100, got %d", cfg.Search.MaxTopK)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "textintel.yaml")

	if err := os.WriteFile(configPath, []byte("{not yaml: ["), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(configPath); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "textintel.yaml")

	cfg := DefaultConfig()
	cfg.Server.ListenAddr = ":7070"
	if err := cfg.Save(configPath); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Server.ListenAddr != ":7070" {
		t.Errorf("expected ListenAddr=:7070 after round trip, got %s", loaded.Server.ListenAddr)
	}
}
