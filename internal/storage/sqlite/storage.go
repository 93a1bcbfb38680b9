// Package sqlite provides the SQLite-backed resident store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cristianoliveira/barangay-directory/internal/directory"
	"github.com/cristianoliveira/barangay-directory/internal/resident"
	"github.com/cristianoliveira/barangay-directory/internal/roster"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const birthDateLayout = "2006-01-02"

var (
	_ directory.Repository   = (*Store)(nil)
	_ directory.RecordLookup = (*Store)(nil)
)

// Store persists residents in a single SQLite database file.
type Store struct {
	db    *sql.DB
	now   func() time.Time
	newID func() string
}

// Open creates or opens the database at dbPath and ensures the schema exists.
func Open(dbPath string) (*Store, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("sqlite storage: db path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite storage: create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: open db: %w", err)
	}

	s := &Store{db: db, now: time.Now, newID: uuid.NewString}
	if err := s.init(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) init() error {
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("sqlite storage: set busy timeout: %w", err)
	}

	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("sqlite storage: create schema: %w", err)
	}

	return nil
}

// ListIDsAndNames returns the non-archived residents in roster order.
func (s *Store) ListIDsAndNames(ctx context.Context) ([]string, []string, error) {
	rows, err := s.db.QueryContext(ctx, listActiveNamesSQL)
	if err != nil {
		return nil, nil, fmt.Errorf("sqlite storage: list residents: %w", err)
	}
	defer rows.Close()

	var entries []roster.Entry
	for rows.Next() {
		var r resident.Resident
		if err := rows.Scan(&r.ID, &r.FirstName, &r.MiddleName, &r.LastName); err != nil {
			return nil, nil, fmt.Errorf("sqlite storage: scan resident: %w", err)
		}
		entries = append(entries, roster.Entry{ID: r.ID, DisplayName: r.DisplayName()})
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("sqlite storage: list residents: %w", err)
	}

	roster.SortEntries(entries)
	ids := make([]string, len(entries))
	names := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
		names[i] = e.DisplayName
	}
	return ids, names, nil
}

// CreateRecord stores r under a new id and returns it.
func (s *Store) CreateRecord(ctx context.Context, r resident.Resident) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}

	id := s.newID()
	now := s.timestamp()
	_, err := s.db.ExecContext(ctx, createResidentSQL,
		id,
		strings.TrimSpace(r.FirstName),
		strings.TrimSpace(r.MiddleName),
		strings.TrimSpace(r.LastName),
		r.BirthDate.Format(birthDateLayout),
		r.YearOfResidency,
		r.MonthOfResidency,
		r.Address1,
		r.Address2,
		r.PhotoPath,
		now,
		now,
	)
	if err != nil {
		return "", fmt.Errorf("sqlite storage: create resident: %w", err)
	}
	return id, nil
}

// UpdateRecord overwrites the fields of an active resident. Unknown,
// malformed and archived ids are reported as not found.
func (s *Store) UpdateRecord(ctx context.Context, id string, r resident.Resident) error {
	if err := parseID(id); err != nil {
		return fmt.Errorf("%w: %w", err, directory.ErrNotFound)
	}
	if err := r.Validate(); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, updateResidentSQL,
		strings.TrimSpace(r.FirstName),
		strings.TrimSpace(r.MiddleName),
		strings.TrimSpace(r.LastName),
		r.BirthDate.Format(birthDateLayout),
		r.YearOfResidency,
		r.MonthOfResidency,
		r.Address1,
		r.Address2,
		r.PhotoPath,
		s.timestamp(),
		id,
	)
	if err != nil {
		return fmt.Errorf("sqlite storage: update resident: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite storage: update resident: %w", err)
	}
	if n > 0 {
		return nil
	}

	current, err := s.GetRecord(ctx, id)
	if err != nil {
		return err
	}
	if current.Archived {
		return fmt.Errorf("sqlite storage: update resident: %w: id %s is archived", directory.ErrNotFound, id)
	}
	return fmt.Errorf("sqlite storage: update resident: no rows updated for id %s", id)
}

// ArchiveRecord hides a resident from the roster. The row is kept.
func (s *Store) ArchiveRecord(ctx context.Context, id string) error {
	if err := parseID(id); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, archiveResidentSQL, s.timestamp(), id)
	if err != nil {
		return fmt.Errorf("sqlite storage: archive resident: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite storage: archive resident: %w", err)
	}
	if n > 0 {
		return nil
	}

	// Nothing changed: tell a missing id from a repeated archive.
	r, err := s.GetRecord(ctx, id)
	if err != nil {
		return err
	}
	if r.Archived {
		return fmt.Errorf("sqlite storage: archive resident: %w: id %s", ErrResidentAlreadyArchived, id)
	}
	return fmt.Errorf("sqlite storage: archive resident: no rows updated for id %s", id)
}

// GetRecord returns the full record for id, archived or not. A malformed id
// is reported as not found as well.
func (s *Store) GetRecord(ctx context.Context, id string) (resident.Resident, error) {
	if err := parseID(id); err != nil {
		return resident.Resident{}, fmt.Errorf("%w: %w", err, directory.ErrNotFound)
	}

	var (
		r         resident.Resident
		birthDate string
		archived  int
	)
	err := s.db.QueryRowContext(ctx, getResidentSQL, id).Scan(
		&r.ID,
		&r.FirstName,
		&r.MiddleName,
		&r.LastName,
		&birthDate,
		&r.YearOfResidency,
		&r.MonthOfResidency,
		&r.Address1,
		&r.Address2,
		&r.PhotoPath,
		&archived,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return resident.Resident{}, fmt.Errorf("sqlite storage: get resident: %w: id %s", directory.ErrNotFound, id)
		}
		return resident.Resident{}, fmt.Errorf("sqlite storage: get resident: %w", err)
	}

	r.BirthDate, err = time.Parse(birthDateLayout, birthDate)
	if err != nil {
		return resident.Resident{}, fmt.Errorf("sqlite storage: get resident: bad birth date %q: %w", birthDate, err)
	}
	r.Archived = archived != 0
	return r, nil
}

// Count returns the number of non-archived residents.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, countActiveSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("sqlite storage: count residents: %w", err)
	}
	return n, nil
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

func parseID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("sqlite storage: %w: %q", ErrInvalidResidentID, id)
	}
	return nil
}
