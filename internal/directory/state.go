// Package directory implements the browse state machine: the current view
// (full or searched roster), the current page and the selected slot.
//
// State is a plain value. The transition functions in this file take a State
// and return the next one without touching collaborators, so they can be
// tested without a repository or a UI. Controller wires them to the
// repository, the record lookup and the presenter.
package directory

import (
	"fmt"

	"github.com/cristianoliveira/barangay-directory/internal/paging"
	"github.com/cristianoliveira/barangay-directory/internal/roster"
	"github.com/cristianoliveira/barangay-directory/internal/search"
)

// Direction is a page navigation request.
type Direction int

const (
	Prev Direction = iota
	Next
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Prev {
		return "prev"
	}
	return "next"
}

// Selection identifies the selected slot on the current page and its index
// in the current view. Both are -1 when nothing is selected.
type Selection struct {
	Slot     int
	Absolute int
}

// NoSelection is the empty selection.
var NoSelection = Selection{Slot: -1, Absolute: -1}

// Active reports whether something is selected.
func (s Selection) Active() bool {
	return s.Slot >= 0 && s.Absolute >= 0
}

// State is the composite browse state.
type State struct {
	Base      roster.Roster // full roster from the repository
	View      roster.Roster // Base, or Base ranked by Keywords
	Keywords  search.Keywords
	Page      int
	Selection Selection
}

// NewState returns the initial state for base: no keywords, page 1,
// nothing selected.
func NewState(base roster.Roster) State {
	return State{
		Base:      base,
		View:      base,
		Page:      1,
		Selection: NoSelection,
	}
}

// PageCount returns the number of pages of the current view.
func (s State) PageCount() int {
	return paging.PageCount(s.View.Len(), paging.PageSize)
}

// CurrentPage paginates the current view at the current page.
func (s State) CurrentPage() (paging.Page, error) {
	return paging.Paginate(s.View, paging.PageSize, s.Page)
}

// SelectedEntry returns the entry under the selection.
func (s State) SelectedEntry() (roster.Entry, bool) {
	if !s.Selection.Active() {
		return roster.Entry{}, false
	}
	return s.View.Entry(s.Selection.Absolute)
}

// Search ranks the full roster against the keywords parsed from text and
// starts over on page 1 with nothing selected.
func Search(s State, text string, p search.Provider) State {
	kw := search.ParseKeywords(text)
	s.Keywords = kw
	s.View = search.Rank(s.Base, kw, p)
	s.Page = 1
	s.Selection = NoSelection
	return s
}

// Navigate moves one page in d. At a boundary it returns s unchanged and
// false.
func Navigate(s State, d Direction) (State, bool) {
	switch {
	case d == Prev && s.Page > 1:
		s.Page--
	case d == Next && s.Page < s.PageCount():
		s.Page++
	default:
		return s, false
	}
	s.Selection = NoSelection
	return s, true
}

// JumpTo moves straight to page and clears the selection. A page outside
// [1, PageCount] is rejected with ErrOutOfRange and s is returned as is.
func JumpTo(s State, page int) (State, error) {
	if count := s.PageCount(); page < 1 || page > count {
		return s, fmt.Errorf("%w: page %d of %d", ErrOutOfRange, page, count)
	}
	s.Page = page
	s.Selection = NoSelection
	return s, nil
}

// SelectAction is the outcome of a slot click.
type SelectAction int

const (
	SelectIgnored SelectAction = iota
	SelectSet
	SelectCleared
	SelectMoved
)

// selectKey is the decision table key for slot clicks.
type selectKey struct {
	hasPrior bool
	isSame   bool
	isValid  bool
}

// Select applies a click on slot of the current page.
func Select(s State, slot int) (State, SelectAction) {
	abs := paging.Absolute(slot, s.Page, paging.PageSize)
	key := selectKey{
		hasPrior: s.Selection.Active(),
		isSame:   s.Selection.Active() && s.Selection.Slot == slot,
		isValid:  slot >= 0 && slot < paging.PageSize && abs < s.View.Len(),
	}

	switch key {
	case selectKey{hasPrior: false, isSame: false, isValid: true}:
		s.Selection = Selection{Slot: slot, Absolute: abs}
		return s, SelectSet
	case selectKey{hasPrior: true, isSame: true, isValid: true}:
		s.Selection = NoSelection
		return s, SelectCleared
	case selectKey{hasPrior: true, isSame: false, isValid: true}:
		s.Selection = Selection{Slot: slot, Absolute: abs}
		return s, SelectMoved
	default:
		return s, SelectIgnored
	}
}

// Inserted returns the state after e was persisted: the view drops any
// search and shows the full roster with e in name order, on the page that
// holds it, with its slot selected.
func Inserted(s State, e roster.Entry) State {
	base, idx := s.Base.Insert(e)
	s.Base = base
	s.View = base
	s.Keywords = nil
	s.Page = paging.PageOf(idx, paging.PageSize)
	s.Selection = Selection{Slot: idx % paging.PageSize, Absolute: idx}
	return s
}

// Updated returns the state after the entry with id was saved as e. Like
// Inserted it drops any search and selects e where its name now sorts.
// An id missing from the roster is inserted.
func Updated(s State, id string, e roster.Entry) State {
	if i := s.Base.IndexOf(id); i >= 0 {
		if base, err := s.Base.RemoveAt(i); err == nil {
			s.Base = base
		}
	}
	return Inserted(s, e)
}

// Removed returns the state after the entry with id was archived: the view
// drops any search and shows the full roster without it, the page is
// clamped and nothing is selected.
func Removed(s State, id string) State {
	if i := s.Base.IndexOf(id); i >= 0 {
		if base, err := s.Base.RemoveAt(i); err == nil {
			s.Base = base
		}
	}
	s.View = s.Base
	s.Keywords = nil
	s.Page = paging.Clamp(s.Page, s.PageCount())
	s.Selection = NoSelection
	return s
}

// Replaced swaps in a freshly loaded roster, re-ranking the active keywords.
func Replaced(s State, base roster.Roster, p search.Provider) State {
	s.Base = base
	s.View = search.Rank(base, s.Keywords, p)
	s.Page = paging.Clamp(s.Page, s.PageCount())
	s.Selection = NoSelection
	return s
}
