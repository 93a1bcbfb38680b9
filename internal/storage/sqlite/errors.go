package sqlite

import "errors"

var (
	// ErrInvalidResidentID indicates an empty or malformed resident ID.
	ErrInvalidResidentID = errors.New("invalid resident ID")
	// ErrResidentAlreadyArchived indicates the resident was archived earlier.
	ErrResidentAlreadyArchived = errors.New("resident already archived")
)
