package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	chdir(t, t.TempDir())
	t.Setenv("HOME", home)
	t.Setenv("LIFELOG_HOME", "")
	t.Setenv("LIFELOG_BACKEND", "")
	t.Setenv("LIFELOG_LOG_LEVEL", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != BackendFile {
		t.Fatalf("Backend = %q, want %q", cfg.Backend, BackendFile)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if want := filepath.Join(home, ".lifelog"); cfg.Home != want {
		t.Fatalf("Home = %q, want %q", cfg.Home, want)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	dir := t.TempDir()
	t.Setenv("LIFELOG_HOME", dir)
	t.Setenv("LIFELOG_BACKEND", "SQLite")
	t.Setenv("LIFELOG_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Home != dir || cfg.Backend != BackendSQLite || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadFromConfigFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("LIFELOG_HOME", "")
	t.Setenv("LIFELOG_BACKEND", "")
	t.Setenv("LIFELOG_LOG_LEVEL", "")
	dir := t.TempDir()
	path := filepath.Join(dir, "lifelog.yaml")
	content := "backend: sqlite\nlog_level: info\nhome: " + dir + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != BackendSQLite || cfg.LogLevel != "info" || cfg.Home != dir {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("LIFELOG_BACKEND", "postgres")

	_, err := Load("")
	if err == nil {
		t.Fatalf("Load expected error, got nil")
	}
	if !strings.Contains(err.Error(), "invalid backend") {
		t.Fatalf("Load error = %v", err)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("LIFELOG_LOG_LEVEL", "")
	os.Unsetenv("LIFELOG_LOG_LEVEL")
	t.Setenv("LIFELOG_BACKEND", "")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("LIFELOG_LOG_LEVEL=error\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "error" {
		t.Fatalf("LogLevel = %q, want error", cfg.LogLevel)
	}
}
