// Package storage selects and opens the resident store.
package storage

import (
	"context"

	"github.com/cristianoliveira/barangay-directory/internal/directory"
)

// Storage is the full surface the commands need from a backend.
type Storage interface {
	directory.Repository
	directory.RecordLookup
	Count(ctx context.Context) (int, error)
	Close() error
}
