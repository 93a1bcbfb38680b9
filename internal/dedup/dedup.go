// Package dedup detects residents that are already in the directory.
package dedup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cristianoliveira/barangay-directory/internal/config"
	"github.com/cristianoliveira/barangay-directory/internal/directory"
	"github.com/cristianoliveira/barangay-directory/internal/resident"
)

// Criteria defines how resident duplicates are detected.
type Criteria string

const (
	CriteriaName      Criteria = "name"
	CriteriaNameBirth Criteria = "name_birth"
	CriteriaOff       Criteria = "off"

	birthLayout = "2006-01-02"
)

// ErrDuplicate marks a resident that matches one already in the directory.
var ErrDuplicate = errors.New("duplicate resident")

// ParseCriteria converts user-provided strings into a Criteria value.
func ParseCriteria(value string) Criteria {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(CriteriaName):
		return CriteriaName
	case string(CriteriaOff):
		return CriteriaOff
	default:
		return CriteriaNameBirth
	}
}

// String returns the string value for Criteria.
func (c Criteria) String() string {
	return string(c)
}

// Load returns the criteria set by import_dedup.
func Load() Criteria {
	return ParseCriteria(config.Get("import_dedup", string(CriteriaNameBirth)))
}

// Key returns the duplicate key of r, or "" when c is off. Names compare
// without case and with runs of spaces collapsed.
func Key(r resident.Resident, c Criteria) string {
	name := strings.ToLower(strings.Join(strings.Fields(r.DisplayName()), " "))
	switch c {
	case CriteriaOff:
		return ""
	case CriteriaName:
		return name
	default:
		return joinParts(name, r.BirthDate.Format(birthLayout))
	}
}

func joinParts(parts ...string) string {
	return strings.Join(parts, "\x00")
}

// Index remembers the key of every resident added to it.
type Index struct {
	criteria Criteria
	ids      map[string]string
}

// NewIndex creates an empty index.
func NewIndex(c Criteria) *Index {
	return &Index{criteria: c, ids: make(map[string]string)}
}

// Criteria returns the criteria the index was built with.
func (x *Index) Criteria() Criteria {
	return x.criteria
}

// Len returns the number of distinct keys.
func (x *Index) Len() int {
	return len(x.ids)
}

// Add records r under id. The first id added for a key is kept.
func (x *Index) Add(id string, r resident.Resident) {
	key := Key(r, x.criteria)
	if key == "" {
		return
	}
	if _, ok := x.ids[key]; !ok {
		x.ids[key] = id
	}
}

// Find returns the id of a resident matching r.
func (x *Index) Find(r resident.Resident) (string, bool) {
	key := Key(r, x.criteria)
	if key == "" {
		return "", false
	}
	id, ok := x.ids[key]
	return id, ok
}

// Build indexes the residents listed by repo, reading each record through
// lookup. An off criteria returns an empty index without touching either.
func Build(ctx context.Context, c Criteria, repo directory.Repository, lookup directory.RecordLookup) (*Index, error) {
	x := NewIndex(c)
	if c == CriteriaOff {
		return x, nil
	}

	ids, _, err := repo.ListIDsAndNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("dedup: list residents: %w", err)
	}
	for _, id := range ids {
		rec, err := lookup.GetRecord(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("dedup: load %s: %w", id, err)
		}
		x.Add(id, rec)
	}
	return x, nil
}
