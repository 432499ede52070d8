package database_test

import (
	"testing"

	"github.com/campuswell/pulse/pkg/database"
)

func TestFinalizeDefaults(t *testing.T) {
	cfg := database.Config{Name: "pulse", User: "pulse"}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.Host != "localhost" {
		t.Errorf("host: got %s, want localhost", cfg.Host)
	}
	if cfg.Port != 5432 {
		t.Errorf("port: got %d, want 5432", cfg.Port)
	}
	if cfg.SSLMode != "disable" {
		t.Errorf("ssl_mode: got %s, want disable", cfg.SSLMode)
	}
	if cfg.MaxOpenConns != 25 {
		t.Errorf("max_open_conns: got %d, want 25", cfg.MaxOpenConns)
	}
}

func TestFinalizeRequiresNameAndUser(t *testing.T) {
	tests := []struct {
		name string
		cfg  database.Config
	}{
		{"missing name", database.Config{User: "pulse"}},
		{"missing user", database.Config{Name: "pulse"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(nil); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestFinalizeEnvOverrides(t *testing.T) {
	t.Setenv("TEST_DB_HOST", "db.internal")
	t.Setenv("TEST_DB_PORT", "5433")

	env := &database.Env{
		Host: "TEST_DB_HOST",
		Port: "TEST_DB_PORT",
	}

	cfg := database.Config{Name: "pulse", User: "pulse"}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.Host != "db.internal" {
		t.Errorf("host: got %s, want db.internal", cfg.Host)
	}
	if cfg.Port != 5433 {
		t.Errorf("port: got %d, want 5433", cfg.Port)
	}
}

func TestDsn(t *testing.T) {
	cfg := database.Config{
		Host:     "localhost",
		Port:     5432,
		Name:     "pulse",
		User:     "pulse",
		Password: "secret",
		SSLMode:  "disable",
	}

	want := "host=localhost port=5432 dbname=pulse user=pulse password=secret sslmode=disable"
	if got := cfg.Dsn(); got != want {
		t.Errorf("dsn: got %q, want %q", got, want)
	}
}
