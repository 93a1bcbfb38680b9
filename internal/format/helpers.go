package format

import (
	"strconv"
	"strings"
)

// formatIntToString formats an integer to a string with the specified width and alignment.
func formatIntToString(i int, width int, alignment string) string {
	return formatString(strconv.Itoa(i), width, alignment)
}

// formatString pads or cuts s to width runes with the given alignment.
func formatString(s string, width int, alignment string) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}

	pad := width - len(r)
	switch alignment {
	case "right":
		return strings.Repeat(" ", pad) + s
	case "center":
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default: // left
		return s + strings.Repeat(" ", pad)
	}
}

// truncateString cuts s to width runes, ending with "..." when shortened.
func truncateString(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width < 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}

func trimRight(s string) string {
	return strings.TrimRight(s, " ")
}
