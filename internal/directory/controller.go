package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/cristianoliveira/barangay-directory/internal/logging"
	"github.com/cristianoliveira/barangay-directory/internal/paging"
	"github.com/cristianoliveira/barangay-directory/internal/resident"
	"github.com/cristianoliveira/barangay-directory/internal/roster"
	"github.com/cristianoliveira/barangay-directory/internal/search"
)

// Controller runs transitions against the repository and pushes the result
// to the presenter. It is not safe for concurrent use; callers serialize
// transitions (the TUI does so through its update loop).
type Controller struct {
	repo      Repository
	lookup    RecordLookup
	presenter Presenter
	provider  search.Provider
	log       logging.Logger

	state  State
	record *resident.Resident
}

// Option configures a Controller.
type Option func(*Controller)

// WithPresenter sets the presenter notified after every transition.
func WithPresenter(p Presenter) Option {
	return func(c *Controller) {
		if p != nil {
			c.presenter = p
		}
	}
}

// WithProvider sets the search scoring strategy.
func WithProvider(p search.Provider) Option {
	return func(c *Controller) {
		if p != nil {
			c.provider = p
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// NewController loads the roster from repo and presents page 1.
func NewController(ctx context.Context, repo Repository, lookup RecordLookup, opts ...Option) (*Controller, error) {
	if repo == nil {
		return nil, errors.New("directory: repository cannot be nil")
	}
	if lookup == nil {
		return nil, errors.New("directory: record lookup cannot be nil")
	}
	c := &Controller{
		repo:      repo,
		lookup:    lookup,
		presenter: discardPresenter{},
		provider:  search.NewSubstringProvider(),
		log:       logging.Component("directory"),
	}
	for _, opt := range opts {
		opt(c)
	}

	base, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.commit(NewState(base), nil); err != nil {
		return nil, err
	}
	c.log.Info("roster loaded", "residents", base.Len())
	return c, nil
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Selected returns the record of the selected resident, or nil.
func (c *Controller) Selected() *resident.Resident {
	return c.record
}

// Snapshot returns what the presenter was last shown.
func (c *Controller) Snapshot() Snapshot {
	snap, _ := c.snapshot(c.state, c.record)
	return snap
}

// Search replaces the view with the roster ranked by text.
func (c *Controller) Search(text string) error {
	next := Search(c.state, text, c.provider)
	c.log.Debug("search", "keywords", next.Keywords.String(), "matches", next.View.Len())
	return c.commit(next, nil)
}

// NavigatePage moves one page in d. Moving past either end is a no-op.
func (c *Controller) NavigatePage(d Direction) error {
	next, moved := Navigate(c.state, d)
	if !moved {
		return nil
	}
	c.log.Debug("navigate", "direction", d.String(), "page", next.Page)
	return c.commit(next, nil)
}

// GoToPage shows page directly. Unlike NavigatePage an invalid page is an
// error wrapping ErrOutOfRange.
func (c *Controller) GoToPage(page int) error {
	next, err := JumpTo(c.state, page)
	if err != nil {
		return err
	}
	return c.commit(next, nil)
}

// SelectSlot toggles the selection of slot on the current page.
// Clicking an empty slot is a no-op. When the record cannot be resolved the
// selection reverts to none and the lookup error is returned.
func (c *Controller) SelectSlot(ctx context.Context, slot int) error {
	next, action := Select(c.state, slot)
	switch action {
	case SelectIgnored:
		return nil
	case SelectCleared:
		return c.commit(next, nil)
	}

	entry, _ := next.SelectedEntry()
	rec, err := c.lookup.GetRecord(ctx, entry.ID)
	if err != nil {
		next.Selection = NoSelection
		if cerr := c.commit(next, nil); cerr != nil {
			return cerr
		}
		c.log.Warn("select failed", "id", entry.ID, "error", err)
		return fmt.Errorf("select %s: %w", entry.ID, err)
	}
	return c.commit(next, &rec)
}

// SelectID shows the page of the current view holding id and selects it.
// An id outside the view returns an error wrapping ErrNotFound.
func (c *Controller) SelectID(ctx context.Context, id string) error {
	i := c.state.View.IndexOf(id)
	if i < 0 {
		return fmt.Errorf("select %s: %w", id, ErrNotFound)
	}
	page := paging.PageOf(i, paging.PageSize)
	if err := c.GoToPage(page); err != nil {
		return err
	}
	return c.SelectSlot(ctx, i-paging.Absolute(0, page, paging.PageSize))
}

// Insert persists r, shows the full roster on the page holding the new
// entry and selects it. On a repository failure nothing changes.
func (c *Controller) Insert(ctx context.Context, r resident.Resident) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	id, err := c.repo.CreateRecord(ctx, r)
	if err != nil {
		c.log.Error("create failed", "error", err)
		return "", &PersistenceError{Op: "create", Err: err}
	}

	next := Inserted(c.state, roster.Entry{ID: id, DisplayName: r.DisplayName()})
	rec, err := c.lookup.GetRecord(ctx, id)
	if err != nil {
		next.Selection = NoSelection
		if cerr := c.commit(next, nil); cerr != nil {
			return id, cerr
		}
		return id, fmt.Errorf("select %s: %w", id, err)
	}
	if err := c.commit(next, &rec); err != nil {
		return id, err
	}
	c.log.Info("resident created", "id", id, "page", next.Page, "slot", next.Selection.Slot)
	return id, nil
}

// Update saves r over the resident with id. The full roster is shown with
// the entry moved to where its name now sorts, on its page, selected. On a
// repository failure nothing changes.
func (c *Controller) Update(ctx context.Context, id string, r resident.Resident) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if err := c.repo.UpdateRecord(ctx, id, r); err != nil {
		c.log.Error("update failed", "id", id, "error", err)
		return &PersistenceError{Op: "update", ID: id, Err: err}
	}

	next := Updated(c.state, id, roster.Entry{ID: id, DisplayName: r.DisplayName()})
	rec, err := c.lookup.GetRecord(ctx, id)
	if err != nil {
		next.Selection = NoSelection
		if cerr := c.commit(next, nil); cerr != nil {
			return cerr
		}
		return fmt.Errorf("select %s: %w", id, err)
	}
	if err := c.commit(next, &rec); err != nil {
		return err
	}
	c.log.Info("resident updated", "id", id, "page", next.Page, "slot", next.Selection.Slot)
	return nil
}

// Delete archives the selected resident and shows the full roster without
// it. On a repository failure nothing changes.
func (c *Controller) Delete(ctx context.Context) error {
	entry, ok := c.state.SelectedEntry()
	if !ok {
		return ErrNoSelection
	}
	if err := c.repo.ArchiveRecord(ctx, entry.ID); err != nil {
		c.log.Error("archive failed", "id", entry.ID, "error", err)
		return &PersistenceError{Op: "archive", ID: entry.ID, Err: err}
	}

	next := Removed(c.state, entry.ID)
	if err := c.commit(next, nil); err != nil {
		return err
	}
	c.log.Info("resident archived", "id", entry.ID, "page", next.Page)
	return nil
}

// Reload replaces the roster with a fresh copy from the repository and
// re-applies the active keywords.
func (c *Controller) Reload(ctx context.Context) error {
	base, err := c.load(ctx)
	if err != nil {
		return err
	}
	return c.commit(Replaced(c.state, base, c.provider), nil)
}

func (c *Controller) load(ctx context.Context) (roster.Roster, error) {
	ids, names, err := c.repo.ListIDsAndNames(ctx)
	if err != nil {
		return roster.Roster{}, &PersistenceError{Op: "list", Err: err}
	}
	base, err := roster.New(ids, names)
	if err != nil {
		return roster.Roster{}, &PersistenceError{Op: "list", Err: err}
	}
	return base, nil
}

// commit installs next only if its page renders, then presents it.
func (c *Controller) commit(next State, rec *resident.Resident) error {
	snap, err := c.snapshot(next, rec)
	if err != nil {
		return err
	}
	c.state = next
	c.record = rec
	c.presenter.Present(snap)
	return nil
}

func (c *Controller) snapshot(s State, rec *resident.Resident) (Snapshot, error) {
	page, err := s.CurrentPage()
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Page:      page,
		Keywords:  s.Keywords,
		Total:     s.Base.Len(),
		Matches:   s.View.Len(),
		Selection: s.Selection,
		Record:    rec,
	}, nil
}
