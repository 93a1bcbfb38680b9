// Package roster holds the ordered resident roster shared by search, paging
// and the directory state.
//
// A Roster is two parallel slices (ids and display names) aligned by index.
// Rosters are treated as immutable snapshots: every derived operation returns
// a new Roster and leaves the receiver untouched.
package roster

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrMisaligned is returned when ids and names have different lengths.
	ErrMisaligned = errors.New("roster ids and names are misaligned")
	// ErrIndexOutOfRange is returned when an index does not address an entry.
	ErrIndexOutOfRange = errors.New("roster index out of range")
)

// Entry is a single roster row.
type Entry struct {
	ID          string
	DisplayName string
}

// Roster is an ordered, read-only sequence of entries.
type Roster struct {
	ids   []string
	names []string
}

// New builds a roster from parallel id and name slices.
// The slices are copied so later changes by the caller do not leak in.
func New(ids, names []string) (Roster, error) {
	if len(ids) != len(names) {
		return Roster{}, fmt.Errorf("%w: %d ids, %d names", ErrMisaligned, len(ids), len(names))
	}
	return Roster{ids: slices.Clone(ids), names: slices.Clone(names)}, nil
}

// FromEntries builds a roster from entries.
func FromEntries(entries []Entry) Roster {
	r := Roster{
		ids:   make([]string, 0, len(entries)),
		names: make([]string, 0, len(entries)),
	}
	for _, e := range entries {
		r.ids = append(r.ids, e.ID)
		r.names = append(r.names, e.DisplayName)
	}
	return r
}

// Len returns the number of entries.
func (r Roster) Len() int {
	return len(r.ids)
}

// IsEmpty reports whether the roster has no entries.
func (r Roster) IsEmpty() bool {
	return len(r.ids) == 0
}

// Entry returns the entry at index i.
func (r Roster) Entry(i int) (Entry, bool) {
	if i < 0 || i >= len(r.ids) {
		return Entry{}, false
	}
	return Entry{ID: r.ids[i], DisplayName: r.names[i]}, true
}

// Entries returns a copy of all entries in order.
func (r Roster) Entries() []Entry {
	out := make([]Entry, len(r.ids))
	for i := range r.ids {
		out[i] = Entry{ID: r.ids[i], DisplayName: r.names[i]}
	}
	return out
}

// IDs returns a copy of the id sequence.
func (r Roster) IDs() []string {
	return slices.Clone(r.ids)
}

// Names returns a copy of the display name sequence.
func (r Roster) Names() []string {
	return slices.Clone(r.names)
}

// IndexOf returns the index of the entry with the given id, or -1.
func (r Roster) IndexOf(id string) int {
	return slices.Index(r.ids, id)
}

// Insert returns a new roster with e placed in case-insensitive name order,
// after any existing names that compare equal, and the index it landed at.
// The id goes to the same index so both sequences stay aligned.
func (r Roster) Insert(e Entry) (Roster, int) {
	idx := slices.IndexFunc(r.names, func(name string) bool {
		return CompareNames(name, e.DisplayName) > 0
	})
	if idx < 0 {
		idx = len(r.names)
	}
	return Roster{
		ids:   slices.Insert(slices.Clone(r.ids), idx, e.ID),
		names: slices.Insert(slices.Clone(r.names), idx, e.DisplayName),
	}, idx
}

// RemoveAt returns a new roster without the entry at index i.
func (r Roster) RemoveAt(i int) (Roster, error) {
	if i < 0 || i >= len(r.ids) {
		return r, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(r.ids))
	}
	return Roster{
		ids:   slices.Delete(slices.Clone(r.ids), i, i+1),
		names: slices.Delete(slices.Clone(r.names), i, i+1),
	}, nil
}

// CompareNames orders display names case-insensitively.
func CompareNames(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// SortEntries sorts entries by CompareNames, keeping the input order of
// names that compare equal.
func SortEntries(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return CompareNames(a.DisplayName, b.DisplayName)
	})
}
