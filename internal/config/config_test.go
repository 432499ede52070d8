package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/campuswell/pulse/internal/config"
)

const baseConfig = `
shutdown_timeout = "30s"
version = "0.1.0"

[server]
host = "0.0.0.0"
port = 8080
read_timeout = "1m"
write_timeout = "1m"
shutdown_timeout = "30s"

[database]
host = "localhost"
port = 5432
name = "pulse"
user = "pulse"
password = "pulse"
ssl_mode = "disable"

[model]
source = "file"
path = "model.json"

[api]
base_path = "/api"
max_request_size = "2MB"
max_recommendations = 10

[api.cors]
enabled = false

[api.pagination]
default_per_page = 25
max_per_page = 50
`

const overlayConfig = `
[server]
port = 9090

[database]
host = "prodhost"
`

func writeConfig(t *testing.T, dir, filename, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", filename, err)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(orig) })
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server port: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Host != "localhost" {
		t.Errorf("db host: got %s, want localhost", cfg.Database.Host)
	}
	if cfg.Model.Source != config.ModelSourceFile {
		t.Errorf("model source: got %s, want file", cfg.Model.Source)
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("api base_path: got %s, want /api", cfg.API.BasePath)
	}
	if cfg.API.MaxRecommendations != 10 {
		t.Errorf("max_recommendations: got %d, want 10", cfg.API.MaxRecommendations)
	}
	if cfg.API.Pagination.DefaultPerPage != 25 {
		t.Errorf("pagination default_per_page: got %d, want 25", cfg.API.Pagination.DefaultPerPage)
	}
	if got := cfg.API.MaxRequestSizeBytes(); got != 2*1024*1024 {
		t.Errorf("max request size: got %d, want 2MB", got)
	}
}

func TestLoadWithOverlay(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	writeConfig(t, dir, "config.staging.toml", overlayConfig)
	chdir(t, dir)

	t.Setenv("PULSE_ENV", "staging")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("server port: got %d, want 9090 (from overlay)", cfg.Server.Port)
	}
	if cfg.Database.Host != "prodhost" {
		t.Errorf("db host: got %s, want prodhost (from overlay)", cfg.Database.Host)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("db port: got %d, want 5432 (from base)", cfg.Database.Port)
	}
}

func TestLoadEnvVarOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	t.Setenv("PULSE_VERSION", "2.0.0")
	t.Setenv("PULSE_SERVER_PORT", "3000")
	t.Setenv("PULSE_MODEL_PATH", "/var/lib/pulse/model.json")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Version != "2.0.0" {
		t.Errorf("version: got %s, want 2.0.0", cfg.Version)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("server port: got %d, want 3000", cfg.Server.Port)
	}
	if cfg.Model.Path != "/var/lib/pulse/model.json" {
		t.Errorf("model path: got %s", cfg.Model.Path)
	}
}

func TestLoadNoConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	t.Setenv("PULSE_DB_NAME", "testdb")
	t.Setenv("PULSE_DB_USER", "testuser")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load without config.toml failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server port default: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Name != "testdb" {
		t.Errorf("db name from env: got %s, want testdb", cfg.Database.Name)
	}
	if cfg.Model.Source != config.ModelSourceFile {
		t.Errorf("model source default: got %s, want file", cfg.Model.Source)
	}
	if cfg.API.MaxRecommendations != 15 {
		t.Errorf("max_recommendations default: got %d, want 15", cfg.API.MaxRecommendations)
	}
}

func TestLoadBlobSourceRequiresStorage(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	t.Setenv("PULSE_DB_NAME", "testdb")
	t.Setenv("PULSE_DB_USER", "testuser")
	t.Setenv("PULSE_MODEL_SOURCE", "blob")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error when blob source has no storage connection string")
	}

	t.Setenv("PULSE_STORAGE_CONNECTION_STRING", "conn")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Storage.ConnectionString != "conn" {
		t.Errorf("storage conn from env: got %s", cfg.Storage.ConnectionString)
	}
	if cfg.Storage.ContainerName != "models" {
		t.Errorf("container default: got %s, want models", cfg.Storage.ContainerName)
	}
}

func TestLoadInvalidModelSource(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	t.Setenv("PULSE_DB_NAME", "testdb")
	t.Setenv("PULSE_DB_USER", "testuser")
	t.Setenv("PULSE_MODEL_SOURCE", "s3")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for unknown model source")
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", "shutdown_timeout = [broken")
	chdir(t, dir)

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}
