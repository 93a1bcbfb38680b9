// Package format provides output formatting functionality for CLI commands.
// It renders roster pages and resident records to a writer.
package format

import (
	"io"

	"github.com/cristianoliveira/barangay-directory/internal/directory"
	"github.com/cristianoliveira/barangay-directory/internal/paging"
)

// Listing is one rendered page plus the counts shown in its header.
type Listing struct {
	Page     paging.Page
	Total    int
	Matches  int
	Keywords string
}

// ListingFromSnapshot takes the page and counts from a directory snapshot.
func ListingFromSnapshot(s directory.Snapshot) Listing {
	return Listing{
		Page:     s.Page,
		Total:    s.Total,
		Matches:  s.Matches,
		Keywords: s.Keywords.String(),
	}
}

// Formatter defines the interface for output formatters.
type Formatter interface {
	// FormatListing writes one page of the roster.
	FormatListing(l Listing, writer io.Writer) error
}

// FormatterType represents the type of formatter to use.
type FormatterType string

const (
	// FormatterTypeGrid lays a page out in two columns of twenty slots.
	FormatterTypeGrid FormatterType = "grid"

	// FormatterTypeList prints one numbered resident per line with its id.
	FormatterTypeList FormatterType = "list"

	// FormatterTypeJSON prints the page as a JSON document.
	FormatterTypeJSON FormatterType = "json"
)

// NewFormatter creates a new formatter of the specified type.
func NewFormatter(formatterType FormatterType) Formatter {
	switch formatterType {
	case FormatterTypeList:
		return NewListFormatter()
	case FormatterTypeJSON:
		return NewJSONFormatter()
	default:
		return NewGridFormatter()
	}
}
