package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/barangay-directory/internal/colors"
	"github.com/cristianoliveira/barangay-directory/internal/config"
	"github.com/cristianoliveira/barangay-directory/internal/storage/sqlite"
)

const residentsDBFileName = "residents.db"

var _ Storage = (*sqlite.Store)(nil)

// NewFromConfig opens the store at the configured db_path.
func NewFromConfig() (Storage, error) {
	config.Load()
	return Open(DBPath())
}

// DBPath returns the configured database path, defaulting to state_dir.
func DBPath() string {
	if p := strings.TrimSpace(config.Get("db_path", "")); p != "" {
		return p
	}
	return filepath.Join(config.Get("state_dir", "."), residentsDBFileName)
}

// Open opens the SQLite store at path.
func Open(path string) (Storage, error) {
	colors.Debug("opening resident store:", path)
	s, err := sqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open resident store: %w", err)
	}
	return s, nil
}
