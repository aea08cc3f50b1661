package files

import (
	"os"
	"path/filepath"
	"testing"
)

func TestKeyPath(t *testing.T) {
	tmp := t.TempDir()

	mgr, err := NewManager(tmp)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	want := filepath.Join(tmp, "JOURNAL.txt")
	if got := mgr.KeyPath("JOURNAL"); got != want {
		t.Fatalf("KeyPath() = %q, want %q", got, want)
	}
	if got := mgr.DatabasePath(); got != filepath.Join(tmp, DatabaseName) {
		t.Fatalf("DatabasePath() = %q", got)
	}
}

func TestEnsureBaseDirCreatesDirectory(t *testing.T) {
	tmp := t.TempDir()
	base := filepath.Join(tmp, "nested", "lifelog")

	mgr, err := NewManager(base)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if err := mgr.EnsureBaseDir(); err != nil {
		t.Fatalf("EnsureBaseDir: %v", err)
	}
	info, err := os.Stat(base)
	if err != nil {
		t.Fatalf("expected directory %q to exist: %v", base, err)
	}
	if !info.IsDir() {
		t.Fatalf("%q is not a directory", base)
	}

	// Second call is a no-op.
	if err := mgr.EnsureBaseDir(); err != nil {
		t.Fatalf("EnsureBaseDir second call: %v", err)
	}
}

func TestNewManagerExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	mgr, err := NewManager("~/data")
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if want := filepath.Join(home, "data"); mgr.BasePath() != want {
		t.Fatalf("BasePath() = %q, want %q", mgr.BasePath(), want)
	}
}
