package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/faizmokh/lifelog/internal/files"
)

// FileBackend stores each key in its own text file under the base directory.
type FileBackend struct {
	manager *files.Manager
}

// NewFileBackend wires a file backend using the shared files.Manager.
func NewFileBackend(manager *files.Manager) *FileBackend {
	return &FileBackend{manager: manager}
}

func (b *FileBackend) Get(ctx context.Context, key string) (string, bool, error) {
	if b == nil || b.manager == nil {
		return "", false, errors.New("file backend not initialized with file manager")
	}
	data, err := os.ReadFile(b.manager.KeyPath(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return string(data), true, nil
}

func (b *FileBackend) Set(ctx context.Context, key, value string) error {
	if b == nil || b.manager == nil {
		return errors.New("file backend not initialized with file manager")
	}
	if err := b.manager.EnsureBaseDir(); err != nil {
		return err
	}
	if err := writeFileAtomic(b.manager.KeyPath(key), value); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (b *FileBackend) Remove(ctx context.Context, key string) error {
	if b == nil || b.manager == nil {
		return errors.New("file backend not initialized with file manager")
	}
	err := os.Remove(b.manager.KeyPath(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

func (b *FileBackend) Close() error { return nil }

func writeFileAtomic(path, content string) error {
	dir := filepath.Dir(path)
	temp, err := os.CreateTemp(dir, "lifelog-*")
	if err != nil {
		return err
	}
	defer os.Remove(temp.Name())

	if _, err := temp.WriteString(content); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err == nil {
		if err := os.Chmod(temp.Name(), info.Mode()); err != nil {
			return err
		}
	}

	return os.Rename(temp.Name(), path)
}
