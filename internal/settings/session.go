package settings

import (
	"errors"

	"github.com/cristianoliveira/barangay-directory/internal/directory"
	"github.com/cristianoliveira/barangay-directory/internal/paging"
)

// Session is the part of the directory controller a session is restored
// into and captured from.
type Session interface {
	Search(text string) error
	GoToPage(page int) error
	State() directory.State
}

// FromState captures the keywords and page of s.
func FromState(s directory.State) *Settings {
	page := s.Page
	if page < 1 {
		page = 1
	}
	return &Settings{Keywords: s.Keywords.String(), Page: page}
}

// Restore replays the saved search and page on c. A page past the end of the
// restored view falls back to the last page.
func (s *Settings) Restore(c Session) error {
	if s.Keywords != "" {
		if err := c.Search(s.Keywords); err != nil {
			return err
		}
	}

	page := s.Page
	if last := c.State().PageCount(); page > last {
		page = last
	}
	if page <= 1 {
		return nil
	}
	if err := c.GoToPage(page); err != nil && !errors.Is(err, paging.ErrOutOfRange) {
		return err
	}
	return nil
}
