// Package seed imports resident lists from YAML or TOML files.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cristianoliveira/barangay-directory/internal/dedup"
	"github.com/cristianoliveira/barangay-directory/internal/logging"
	"github.com/cristianoliveira/barangay-directory/internal/resident"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	FormatYAML = "yaml"
	FormatTOML = "toml"

	dateLayout = "2006-01-02"
)

// ErrUnsupportedFormat is returned for files that are neither YAML nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported seed format")

// Inserter adds one resident to the directory and returns its id.
// *directory.Controller satisfies it.
type Inserter interface {
	Insert(ctx context.Context, r resident.Resident) (string, error)
}

// Options configures an import run.
type Options struct {
	// DryRun validates every row without inserting.
	DryRun bool
	// Index, when set, rejects rows matching a resident already indexed.
	// Imported rows are added to it, so repeats within the file are caught too.
	Index *dedup.Index
}

// RowError describes a rejected row. Row is 1-based.
type RowError struct {
	Row  int
	Name string
	Err  error
}

func (e RowError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("row %d (%s): %v", e.Row, e.Name, e.Err)
	}
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// Stats summarizes an import run.
type Stats struct {
	Total    int
	Imported int
	Skipped  int
	IDs      []string
	Errors   []RowError
	// Warnings lists rows that were saved but whose insert still reported
	// an error, such as the new record failing to load for selection.
	Warnings []RowError
}

// file is the on-disk layout shared by both formats.
type file struct {
	Residents []record `yaml:"residents" toml:"residents"`
}

type record struct {
	FirstName        string `yaml:"first_name" toml:"first_name"`
	MiddleName       string `yaml:"middle_name" toml:"middle_name"`
	LastName         string `yaml:"last_name" toml:"last_name"`
	BirthDate        any    `yaml:"birth_date" toml:"birth_date"`
	YearOfResidency  int    `yaml:"year_of_residency" toml:"year_of_residency"`
	MonthOfResidency int    `yaml:"month_of_residency" toml:"month_of_residency"`
	Address1         string `yaml:"address1" toml:"address1"`
	Address2         string `yaml:"address2" toml:"address2"`
	PhotoPath        string `yaml:"photo_path" toml:"photo_path"`
}

// FormatFor picks the decoder from the file extension.
func FormatFor(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// row is a valid resident with its 1-based position in the file.
type row struct {
	num      int
	resident resident.Resident
}

// Decode parses data and converts each row. Rows that fail conversion or
// validation are returned as RowErrors; the rest keep their file order.
func Decode(data []byte, format string) ([]resident.Resident, []RowError, error) {
	rows, rowErrs, err := decodeRows(data, format)
	if err != nil {
		return nil, nil, err
	}
	residents := make([]resident.Resident, len(rows))
	for i, r := range rows {
		residents[i] = r.resident
	}
	return residents, rowErrs, nil
}

func decodeRows(data []byte, format string) ([]row, []RowError, error) {
	var f file
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	case FormatTOML:
		err = toml.Unmarshal(data, &f)
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("decode %s seed: %w", format, err)
	}

	rows := make([]row, 0, len(f.Residents))
	var rowErrs []RowError
	for i, rec := range f.Residents {
		r, err := rec.toResident()
		if err == nil {
			err = r.Validate()
		}
		if err != nil {
			rowErrs = append(rowErrs, RowError{Row: i + 1, Name: rec.name(), Err: err})
			continue
		}
		rows = append(rows, row{num: i + 1, resident: r})
	}
	return rows, rowErrs, nil
}

// Import reads path and inserts every valid row through ins. An insert that
// returns an id counts as imported even when it also returns an error; that
// error becomes a warning. An insert failing without an id stops the run and
// the returned Stats cover the rows handled so far.
func Import(ctx context.Context, ins Inserter, path string, opts Options) (Stats, error) {
	log := logging.Component("seed").With("file", filepath.Base(path))

	format, err := FormatFor(path)
	if err != nil {
		return Stats{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Stats{}, fmt.Errorf("read seed file: %w", err)
	}
	rows, rowErrs, err := decodeRows(data, format)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{Total: len(rows) + len(rowErrs)}
	reject := func(re RowError) {
		log.Warn("seed row rejected", "row", re.Row, "error", re.Err.Error())
		stats.Skipped++
		stats.Errors = append(stats.Errors, re)
	}
	for _, re := range rowErrs {
		reject(re)
	}

	for _, rw := range rows {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		r := rw.resident
		if opts.Index != nil {
			if id, dup := opts.Index.Find(r); dup {
				reject(RowError{Row: rw.num, Name: r.DisplayName(), Err: fmt.Errorf("%w (matches %s)", dedup.ErrDuplicate, id)})
				continue
			}
		}
		if opts.DryRun {
			if opts.Index != nil {
				opts.Index.Add(fmt.Sprintf("row %d", rw.num), r)
			}
			continue
		}

		id, err := ins.Insert(ctx, r)
		if err != nil && id != "" {
			log.Warn("seed row saved with error", "row", rw.num, "resident_id", id, "error", err.Error())
			stats.Warnings = append(stats.Warnings, RowError{Row: rw.num, Name: r.DisplayName(), Err: err})
			err = nil
		}
		if err != nil {
			log.Error("seed insert failed", "imported", stats.Imported, "error", err.Error())
			return stats, fmt.Errorf("import %s: %w", r.DisplayName(), err)
		}
		stats.Imported++
		stats.IDs = append(stats.IDs, id)
		if opts.Index != nil {
			opts.Index.Add(id, r)
		}
	}

	if opts.DryRun {
		log.Info("seed dry run", "valid", stats.Total-stats.Skipped, "rejected", stats.Skipped)
		return stats, nil
	}
	log.Info("seed imported", "imported", stats.Imported, "rejected", stats.Skipped)
	return stats, nil
}

func (rec record) name() string {
	if strings.TrimSpace(rec.LastName) == "" && strings.TrimSpace(rec.FirstName) == "" {
		return ""
	}
	return resident.Resident{FirstName: rec.FirstName, MiddleName: rec.MiddleName, LastName: rec.LastName}.DisplayName()
}

func (rec record) toResident() (resident.Resident, error) {
	birth, err := parseDate(rec.BirthDate)
	if err != nil {
		return resident.Resident{}, err
	}
	year := rec.YearOfResidency
	if year == 0 {
		year = resident.SinceBirth
	}
	return resident.Resident{
		FirstName:        strings.TrimSpace(rec.FirstName),
		MiddleName:       strings.TrimSpace(rec.MiddleName),
		LastName:         strings.TrimSpace(rec.LastName),
		BirthDate:        birth,
		YearOfResidency:  year,
		MonthOfResidency: rec.MonthOfResidency,
		Address1:         strings.TrimSpace(rec.Address1),
		Address2:         strings.TrimSpace(rec.Address2),
		PhotoPath:        rec.PhotoPath,
	}, nil
}

// parseDate accepts the shapes both decoders produce for a date: a quoted
// string, a YAML timestamp or a TOML local date.
func parseDate(v any) (time.Time, error) {
	switch d := v.(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
	case toml.LocalDate:
		return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC), nil
	case toml.LocalDateTime:
		return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC), nil
	case string:
		t, err := time.Parse(dateLayout, strings.TrimSpace(d))
		if err != nil {
			return time.Time{}, fmt.Errorf("birth date %q: want YYYY-MM-DD", d)
		}
		return t, nil
	default:
		return time.Time{}, fmt.Errorf("birth date: unsupported value %v", v)
	}
}
