package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cristianoliveira/barangay-directory/internal/colors"
	"github.com/cristianoliveira/barangay-directory/internal/paging"
)

const (
	gridRows      = paging.PageSize / 2
	gridCellWidth = 34
	numberWidth   = 4
)

// writeHeader writes the page line shared by the text formatters.
func writeHeader(l Listing, writer io.Writer) error {
	var err error
	if l.Keywords != "" {
		_, err = fmt.Fprintf(writer, "%sPage %d/%d%s  %d of %d residents match %q\n",
			colors.Blue, l.Page.Number, l.Page.Count, colors.Reset, l.Matches, l.Total, l.Keywords)
	} else {
		_, err = fmt.Fprintf(writer, "%sPage %d/%d%s  %d residents\n",
			colors.Blue, l.Page.Number, l.Page.Count, colors.Reset, l.Total)
	}
	return err
}

// number is the 1-based position of a slot in the whole view.
func number(l Listing, slot int) int {
	return paging.Absolute(slot, l.Page.Number, len(l.Page.Slots)) + 1
}

// GridFormatter lays a page out like the browse window: slots 1-20 in the
// left column and 21-40 in the right.
type GridFormatter struct{}

// NewGridFormatter creates a new GridFormatter.
func NewGridFormatter() *GridFormatter {
	return &GridFormatter{}
}

// FormatListing formats a page as a two-column grid.
func (f *GridFormatter) FormatListing(l Listing, writer io.Writer) error {
	if err := writeHeader(l, writer); err != nil {
		return err
	}
	if l.Page.Filled() == 0 {
		_, err := fmt.Fprintln(writer, "No residents found.")
		return err
	}

	rows := min(gridRows, len(l.Page.Slots))
	for row := 0; row < rows; row++ {
		left := f.cell(l, row)
		right := ""
		if row+gridRows < len(l.Page.Slots) {
			right = f.cell(l, row+gridRows)
		}
		if left == "" && right == "" {
			continue
		}
		line := formatString(left, gridCellWidth, "left")
		if right != "" {
			line += "  " + right
		}
		if _, err := fmt.Fprintln(writer, trimRight(line)); err != nil {
			return err
		}
	}
	return nil
}

func (f *GridFormatter) cell(l Listing, slot int) string {
	s := l.Page.Slots[slot]
	if !s.Filled {
		return ""
	}
	n := formatIntToString(number(l, slot), numberWidth, "right")
	return truncateString(n+". "+s.Entry.DisplayName, gridCellWidth)
}

// ListFormatter prints one resident per line with its id.
type ListFormatter struct{}

// NewListFormatter creates a new ListFormatter.
func NewListFormatter() *ListFormatter {
	return &ListFormatter{}
}

// FormatListing formats the filled slots as a list.
func (f *ListFormatter) FormatListing(l Listing, writer io.Writer) error {
	if err := writeHeader(l, writer); err != nil {
		return err
	}
	if l.Page.Filled() == 0 {
		_, err := fmt.Fprintln(writer, "No residents found.")
		return err
	}
	for i, s := range l.Page.Slots {
		if !s.Filled {
			continue
		}
		_, err := fmt.Fprintf(writer, "%s  %s  %s\n",
			formatIntToString(number(l, i), numberWidth, "right"),
			formatString(s.Entry.DisplayName, gridCellWidth, "left"),
			s.Entry.ID)
		if err != nil {
			return err
		}
	}
	return nil
}

// JSONFormatter prints the page as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

type jsonEntry struct {
	Number int    `json:"number"`
	Slot   int    `json:"slot"`
	ID     string `json:"id"`
	Name   string `json:"name"`
}

type jsonListing struct {
	Page     int         `json:"page"`
	Pages    int         `json:"pages"`
	Total    int         `json:"total"`
	Matches  int         `json:"matches"`
	Keywords string      `json:"keywords,omitempty"`
	Entries  []jsonEntry `json:"entries"`
}

// FormatListing formats a page as indented JSON.
func (f *JSONFormatter) FormatListing(l Listing, writer io.Writer) error {
	out := jsonListing{
		Page:     l.Page.Number,
		Pages:    l.Page.Count,
		Total:    l.Total,
		Matches:  l.Matches,
		Keywords: l.Keywords,
		Entries:  make([]jsonEntry, 0, l.Page.Filled()),
	}
	for i, s := range l.Page.Slots {
		if !s.Filled {
			continue
		}
		out.Entries = append(out.Entries, jsonEntry{
			Number: number(l, i),
			Slot:   i,
			ID:     s.Entry.ID,
			Name:   s.Entry.DisplayName,
		})
	}
	enc := json.NewEncoder(writer)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
