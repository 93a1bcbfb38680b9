package format

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/cristianoliveira/barangay-directory/internal/resident"
)

const labelWidth = 16

// FormatResident writes the detail block shown for a selected resident.
func FormatResident(r resident.Resident, now time.Time, writer io.Writer) error {
	lines := [][2]string{
		{"Name", r.DisplayName()},
		{"ID", r.ID},
		{"Birth date", r.FormatBirthDate() + " (age " + strconv.Itoa(r.Age(now)) + ")"},
		{"Resident since", r.ResidentSince()},
		{"Address", r.Address1},
	}
	if r.Address2 != "" {
		lines = append(lines, [2]string{"", r.Address2})
	}
	if r.Archived {
		lines = append(lines, [2]string{"Status", "archived"})
	}

	for _, kv := range lines {
		label := ""
		if kv[0] != "" {
			label = kv[0] + ":"
		}
		if _, err := fmt.Fprintf(writer, "%s%s\n", formatString(label, labelWidth, "left"), kv[1]); err != nil {
			return err
		}
	}
	return nil
}
