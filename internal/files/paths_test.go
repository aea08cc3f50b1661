package files

import (
	"path/filepath"
	"testing"
)

func TestDefaultBasePathUsesHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := DefaultBasePath()
	if err != nil {
		t.Fatalf("DefaultBasePath() error = %v", err)
	}
	if want := filepath.Join(home, DefaultDirName); got != want {
		t.Fatalf("DefaultBasePath() = %q, want %q", got, want)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LIFELOG_TEST_ROOT", "/srv/data")

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/journal-data", filepath.Join(home, "journal-data")},
		{"  ~/padded ", filepath.Join(home, "padded")},
		{"$LIFELOG_TEST_ROOT/lifelog", "/srv/data/lifelog"},
		{"~other/data", "~other/data"},
		{"/abs/path", "/abs/path"},
	}
	for _, tt := range tests {
		got, err := ExpandPath(tt.in)
		if err != nil {
			t.Fatalf("ExpandPath(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
