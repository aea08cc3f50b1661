package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirPermissions = 0o755

	// DatabaseName is the SQLite file used by the sqlite backend.
	DatabaseName = "lifelog.db"
)

// Manager centralizes where lifelog keeps its data on disk and how files are named.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to ~/.lifelog.
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = DefaultBasePath()
		if err != nil {
			return nil, err
		}
	}
	basePath, err = ExpandPath(basePath)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the root directory storing all data.
func (m *Manager) BasePath() string {
	return m.basePath
}

// KeyPath resolves the file holding the value stored under key.
func (m *Manager) KeyPath(key string) string {
	return filepath.Join(m.basePath, key+".txt")
}

// DatabasePath resolves the SQLite database location.
func (m *Manager) DatabasePath() string {
	return filepath.Join(m.basePath, DatabaseName)
}

// EnsureBaseDir creates the base directory when it is missing.
func (m *Manager) EnsureBaseDir() error {
	if m == nil {
		return errors.New("files.Manager is nil")
	}
	if err := os.MkdirAll(m.basePath, dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	return nil
}
