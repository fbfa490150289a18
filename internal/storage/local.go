package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore writes files under a base directory and hands out paths
// relative to it, which is what gets persisted and returned to clients.
type LocalStore struct {
	base string
}

func NewLocalStore(base string) (*LocalStore, error) {
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, fmt.Errorf("create upload base dir: %w", err)
	}
	return &LocalStore{base: base}, nil
}

func (s *LocalStore) Save(dir, name string, data []byte) (string, error) {
	relPath := filepath.Join(dir, name)
	absPath, err := s.resolve(relPath)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(absPath, data, 0o644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return relPath, nil
}

func (s *LocalStore) Remove(relPath string) error {
	absPath, err := s.resolve(relPath)
	if err != nil {
		return err
	}
	return os.Remove(absPath)
}

func (s *LocalStore) Path(relPath string) (string, error) {
	return s.resolve(relPath)
}

// resolve rejects paths escaping the base directory.
func (s *LocalStore) resolve(relPath string) (string, error) {
	cleaned := filepath.Clean(relPath)
	if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid path %q", relPath)
	}
	return filepath.Join(s.base, cleaned), nil
}
