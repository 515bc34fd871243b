package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadExplicitFile(t *testing.T) {
	path := writeConfig(t, `
[tmdb]
api_key = "from-file"
base_url = "https://tmdb.test/3"

[covers]
max_width = 600

[content]
sections = ["Overview", " info "]

[logging]
level = "debug"
format = "json"
`)

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved = %q exists=%v", resolved, exists)
	}
	if cfg.TMDB.APIKey != "from-file" {
		t.Errorf("api key = %q", cfg.TMDB.APIKey)
	}
	if cfg.TMDB.BaseURL != "https://tmdb.test/3" {
		t.Errorf("base url = %q", cfg.TMDB.BaseURL)
	}
	if cfg.TMDB.ImageBaseURL != defaultTMDBImageBaseURL {
		t.Errorf("image base url = %q", cfg.TMDB.ImageBaseURL)
	}
	if cfg.Covers.MaxWidth != 600 {
		t.Errorf("max width = %d", cfg.Covers.MaxWidth)
	}
	if len(cfg.Content.Sections) != 2 || cfg.Content.Sections[0] != "overview" || cfg.Content.Sections[1] != "info" {
		t.Errorf("sections = %v", cfg.Content.Sections)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestLoadMissingFileUsesEnvKey(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TMDB_API_KEY", "from-env")

	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("file should not exist")
	}
	if cfg.TMDB.APIKey != "from-env" {
		t.Errorf("api key = %q", cfg.TMDB.APIKey)
	}
	if cfg.Covers.MaxWidth != defaultCoverMaxWidth {
		t.Errorf("max width = %d", cfg.Covers.MaxWidth)
	}
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TMDB_API_KEY", "")

	_, _, _, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil || !strings.Contains(err.Error(), "tmdb.api_key is required") {
		t.Fatalf("err = %v", err)
	}
}

func TestLoadRejectsUnknownSection(t *testing.T) {
	path := writeConfig(t, `
[tmdb]
api_key = "k"

[content]
sections = ["overview", "cast"]
`)
	_, _, _, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "unknown section") {
		t.Fatalf("err = %v", err)
	}
}

func TestNormalizeLoggingFallsBackToConsole(t *testing.T) {
	cfg := Default()
	cfg.TMDB.APIKey = "k"
	cfg.Logging.Format = "XML"
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("format = %q", cfg.Logging.Format)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "from-env")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("sample should exist")
	}
	if cfg.Covers.MaxWidth != 1000 {
		t.Errorf("max width = %d", cfg.Covers.MaxWidth)
	}
}
