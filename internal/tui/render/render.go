package render

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/barangay-directory/internal/colors"
	"github.com/cristianoliveira/barangay-directory/internal/errors"
	"github.com/cristianoliveira/barangay-directory/internal/format"
	"github.com/cristianoliveira/barangay-directory/internal/paging"
	"github.com/cristianoliveira/barangay-directory/internal/resident"
)

const (
	// GridRows is the height of one grid column; slot i sits in column
	// i/GridRows, row i%GridRows.
	GridRows      = paging.PageSize / 2
	cellWidth     = 34
	numberWidth   = 4
	detailWidth   = 52
	cursorMarker  = "›"
	emptyCellText = "·"
)

// HeaderState defines the inputs needed to render the title line.
type HeaderState struct {
	Page     int
	Count    int
	Total    int
	Matches  int
	Keywords string
}

// GridState defines the inputs needed to render one page of slots.
type GridState struct {
	Page     paging.Page
	Cursor   int // slot under the cursor
	Selected int // selected slot, -1 for none
}

// FooterState defines the inputs needed to render footer help text.
type FooterState struct {
	Editing     bool
	SearchMode  bool
	SearchView  string // rendered text input
	Confirming  bool
	HasSelected bool
	Filtered    bool
}

// Header renders the page position and roster size.
func Header(state HeaderState) string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ansiColorNumber(colors.Blue)))

	text := fmt.Sprintf("Page %d/%d  %d residents", state.Page, state.Count, state.Total)
	if state.Keywords != "" {
		text = fmt.Sprintf("Page %d/%d  %d of %d residents match %q",
			state.Page, state.Count, state.Matches, state.Total, state.Keywords)
	}
	return headerStyle.Render(text)
}

// Grid renders the page as two columns of GridRows slots.
func Grid(state GridState) string {
	slots := state.Page.Slots
	if len(slots) == 0 {
		return ""
	}

	rows := make([]string, 0, GridRows)
	for row := 0; row < GridRows && row < len(slots); row++ {
		left := Cell(state, row)
		right := ""
		if row+GridRows < len(slots) {
			right = Cell(state, row+GridRows)
		}
		rows = append(rows, left+"  "+right)
	}
	return strings.Join(rows, "\n")
}

// Cell renders a single slot with its absolute number.
func Cell(state GridState, slot int) string {
	s := state.Page.Slots[slot]
	abs := paging.Absolute(slot, state.Page.Number, len(state.Page.Slots)) + 1

	marker := " "
	if slot == state.Cursor {
		marker = cursorMarker
	}

	name := emptyCellText
	if s.Filled {
		name = s.Entry.DisplayName
	}
	label := fmt.Sprintf("%s%*d %s", marker, numberWidth, abs, name)
	label = truncate(label, cellWidth)

	style := lipgloss.NewStyle().Width(cellWidth)
	switch {
	case !s.Filled:
		style = style.Foreground(lipgloss.Color("241"))
	case slot == state.Selected:
		style = style.Bold(true).
			Background(lipgloss.Color(ansiColorNumber(colors.Blue))).
			Foreground(lipgloss.Color("0"))
	case slot == state.Cursor:
		style = style.Underline(true)
	}
	return style.Render(label)
}

// Detail renders the selected resident in a bordered pane.
func Detail(r *resident.Resident, now time.Time) string {
	if r == nil {
		return ""
	}
	var b strings.Builder
	if err := format.FormatResident(*r, now, &b); err != nil {
		return ""
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ansiColorNumber(colors.Blue))).
		Padding(0, 1).
		Width(detailWidth).
		Render(strings.TrimRight(b.String(), "\n"))
}

// Body places the detail pane beside the grid when there is room, below it otherwise.
func Body(grid, detail string, width int) string {
	if detail == "" {
		return grid
	}
	if width == 0 || width >= lipgloss.Width(grid)+lipgloss.Width(detail)+2 {
		return lipgloss.JoinHorizontal(lipgloss.Top, grid, "  ", detail)
	}
	return lipgloss.JoinVertical(lipgloss.Left, grid, detail)
}

// Status renders a status line message colored by its type.
func Status(msg errors.Message) string {
	style := lipgloss.NewStyle()
	prefix := ""
	switch msg.Type {
	case errors.MessageTypeError:
		style = style.Foreground(lipgloss.Color(ansiColorNumber(colors.Red)))
		prefix = "Error: "
	case errors.MessageTypeWarning:
		style = style.Foreground(lipgloss.Color(ansiColorNumber(colors.Yellow)))
		prefix = "Warning: "
	case errors.MessageTypeSuccess:
		style = style.Foreground(lipgloss.Color(ansiColorNumber(colors.Green)))
		prefix = "✓ "
	default:
		style = style.Foreground(lipgloss.Color(ansiColorNumber(colors.Blue)))
	}
	return style.Render(prefix + msg.Text)
}

// Footer renders the footer with help text.
func Footer(state FooterState) string {
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	if state.Editing {
		return helpStyle.Render(strings.Join([]string{"tab/↓: next field", "shift+tab/↑: previous", "Enter: save", "ESC: cancel"}, "  |  "))
	}
	if state.SearchMode {
		help := []string{"Enter: search", "ESC: cancel"}
		return state.SearchView + "\n" + helpStyle.Render(strings.Join(help, "  |  "))
	}
	if state.Confirming {
		return helpStyle.Render("y: archive  |  any other key: cancel")
	}

	help := []string{"j/k: move", "tab: column", "h/l: page", "/: search"}
	if state.Filtered {
		help = append(help, "ESC: clear search")
	}
	help = append(help, "Space: select")
	if state.HasSelected {
		help = append(help, "e: edit", "d: archive")
	}
	help = append(help, "r: reload", "q: quit")
	return helpStyle.Render(strings.Join(help, "  |  "))
}

func truncate(value string, width int) string {
	if width <= 0 || utf8.RuneCountInString(value) <= width {
		return value
	}
	if width <= 3 {
		return string([]rune(value)[:width])
	}
	return string([]rune(value)[:width-3]) + "..."
}

// ansiColorNumber extracts the color number from an ANSI escape sequence.
// Example: "\033[0;34m" -> "34"
func ansiColorNumber(ansi string) string {
	if len(ansi) < 2 {
		return ""
	}
	lastSemicolon := strings.LastIndex(ansi, ";")
	if lastSemicolon == -1 {
		return ""
	}
	return ansi[lastSemicolon+1 : len(ansi)-1]
}
