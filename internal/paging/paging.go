// Package paging splits a roster view into fixed-size pages of slots.
package paging

import (
	"errors"
	"fmt"

	"github.com/cristianoliveira/barangay-directory/internal/roster"
)

// PageSize is the number of slots on a page (two columns of twenty).
const PageSize = 40

// ErrOutOfRange is returned for a page number or size the caller should
// never have passed.
var ErrOutOfRange = errors.New("page out of range")

// Slot is one position on a page. Empty slots have no backing entry.
type Slot struct {
	Entry  roster.Entry
	Filled bool
}

// Page is the window of a view shown at once.
type Page struct {
	Number int // 1-based
	Count  int
	Slots  []Slot
}

// Filled returns the number of populated slots.
func (p Page) Filled() int {
	n := 0
	for _, s := range p.Slots {
		if s.Filled {
			n++
		}
	}
	return n
}

// Entries returns the populated entries in slot order.
func (p Page) Entries() []roster.Entry {
	out := make([]roster.Entry, 0, len(p.Slots))
	for _, s := range p.Slots {
		if s.Filled {
			out = append(out, s.Entry)
		}
	}
	return out
}

// PageCount returns ceil(n/size), never less than one.
func PageCount(n, size int) int {
	if size <= 0 || n <= 0 {
		return 1
	}
	return (n + size - 1) / size
}

// Clamp moves page into [1, count].
func Clamp(page, count int) int {
	if count < 1 {
		count = 1
	}
	return max(1, min(page, count))
}

// PageOf returns the 1-based page holding absolute index i.
func PageOf(i, size int) int {
	if i < 0 || size <= 0 {
		return 1
	}
	return i/size + 1
}

// Absolute converts a slot on a page to an index into the view.
func Absolute(slot, page, size int) int {
	return slot + size*(page-1)
}

// Paginate returns page number of view. The page must already be in
// [1, PageCount(view.Len(), size)].
func Paginate(view roster.Roster, size, page int) (Page, error) {
	if size <= 0 {
		return Page{}, fmt.Errorf("%w: page size %d", ErrOutOfRange, size)
	}
	count := PageCount(view.Len(), size)
	if page < 1 || page > count {
		return Page{}, fmt.Errorf("%w: page %d of %d", ErrOutOfRange, page, count)
	}

	slots := make([]Slot, size)
	first := (page - 1) * size
	for i := range slots {
		if e, ok := view.Entry(first + i); ok {
			slots[i] = Slot{Entry: e, Filled: true}
		}
	}
	return Page{Number: page, Count: count, Slots: slots}, nil
}
