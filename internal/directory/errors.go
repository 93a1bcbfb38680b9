package directory

import (
	"errors"
	"fmt"

	"github.com/cristianoliveira/barangay-directory/internal/paging"
)

var (
	// ErrNotFound is wrapped by RecordLookup implementations for unknown ids.
	ErrNotFound = errors.New("resident not found")
	// ErrNoSelection is returned by Delete when nothing is selected.
	ErrNoSelection = errors.New("no resident selected")
	// ErrOutOfRange reports an invalid page request. A correctly wired
	// controller never produces it.
	ErrOutOfRange = paging.ErrOutOfRange
)

// PersistenceError reports a failed repository call. The in-memory state is
// left as it was before the call.
type PersistenceError struct {
	Op  string // create, update, archive or list
	ID  string
	Err error
}

func (e *PersistenceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("persistence %s %s: %v", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
