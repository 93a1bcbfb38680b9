package directory

import (
	"context"

	"github.com/cristianoliveira/barangay-directory/internal/paging"
	"github.com/cristianoliveira/barangay-directory/internal/resident"
	"github.com/cristianoliveira/barangay-directory/internal/search"
)

// Repository owns the persisted roster.
type Repository interface {
	// ListIDsAndNames returns the active roster as parallel slices.
	ListIDsAndNames(ctx context.Context) (ids, names []string, err error)

	// CreateRecord persists a resident and returns its new id.
	CreateRecord(ctx context.Context, r resident.Resident) (string, error)

	// UpdateRecord replaces the stored fields of an active resident.
	// Unknown or archived ids return an error wrapping ErrNotFound.
	UpdateRecord(ctx context.Context, id string, r resident.Resident) error

	// ArchiveRecord removes a resident from the active roster.
	ArchiveRecord(ctx context.Context, id string) error
}

// RecordLookup resolves an id to the full record.
// Unknown ids return an error wrapping ErrNotFound.
type RecordLookup interface {
	GetRecord(ctx context.Context, id string) (resident.Resident, error)
}

// Snapshot is what the presenter shows after a transition.
type Snapshot struct {
	Page      paging.Page
	Keywords  search.Keywords
	Total     int // entries in the full roster
	Matches   int // entries in the current view
	Selection Selection
	Record    *resident.Resident // nil when nothing is selected
}

// Presenter receives a snapshot after every completed transition.
type Presenter interface {
	Present(Snapshot)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(Snapshot)

// Present calls f(s).
func (f PresenterFunc) Present(s Snapshot) {
	f(s)
}

type discardPresenter struct{}

func (discardPresenter) Present(Snapshot) {}
