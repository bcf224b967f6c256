package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		t.Setenv(EnvAPIKey, "")
		config := DefaultConfig()

		if config.Database.Path != "./tubestuff.db" {
			t.Errorf("expected database path ./tubestuff.db, got %s", config.Database.Path)
		}
		if config.Server.Port != 3000 {
			t.Errorf("expected server port 3000, got %d", config.Server.Port)
		}
		if config.Lookup.BaseURL != "https://www.youtube.com" {
			t.Errorf("expected lookup base URL https://www.youtube.com, got %s", config.Lookup.BaseURL)
		}
		if config.Lookup.Timeout.Duration != 10*time.Second {
			t.Errorf("expected lookup timeout 10s, got %v", config.Lookup.Timeout)
		}
		if config.Lookup.RequestsPerSecond != 2 {
			t.Errorf("expected 2 requests per second, got %v", config.Lookup.RequestsPerSecond)
		}
		if config.Credentials.YouTube.APIKey != "" {
			t.Errorf("expected empty api key, got %s", config.Credentials.YouTube.APIKey)
		}
	})

	t.Run("environment supplies api key", func(t *testing.T) {
		t.Setenv(EnvAPIKey, "env-key")
		if config := DefaultConfig(); config.Credentials.YouTube.APIKey != "env-key" {
			t.Errorf("expected api key from environment, got %q", config.Credentials.YouTube.APIKey)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		if config.Database.Path != DefaultConfig().Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		t.Setenv(EnvAPIKey, "")
		configPath := filepath.Join(t.TempDir(), "config.toml")
		testConfig := `[credentials.youtube]
api_key = "test_api_key"

[lookup]
timeout = "3s"
requests_per_second = 0.5

[server]
port = 8080
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Credentials.YouTube.APIKey != "test_api_key" {
			t.Errorf("expected api key test_api_key, got %s", config.Credentials.YouTube.APIKey)
		}
		if config.Lookup.Timeout.Duration != 3*time.Second {
			t.Errorf("expected timeout 3s, got %v", config.Lookup.Timeout)
		}
		if config.Server.Port != 8080 {
			t.Errorf("expected server port 8080, got %d", config.Server.Port)
		}
		if config.Server.Host != "127.0.0.1" {
			t.Errorf("expected default host to survive, got %s", config.Server.Host)
		}
		if config.Server.Addr() != "127.0.0.1:8080" {
			t.Errorf("unexpected addr %s", config.Server.Addr())
		}
	})

	t.Run("LoadConfig rejects bad duration", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("[lookup]\ntimeout = \"soon\"\n"), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}
