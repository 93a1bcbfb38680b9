// Package resident defines the full resident record behind a roster entry.
package resident

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// SinceBirth marks a resident who has lived in the barangay since birth.
const SinceBirth = -1

// ErrInvalidResident is returned by Validate.
var ErrInvalidResident = errors.New("invalid resident")

// Resident is a full directory record.
type Resident struct {
	ID               string    `yaml:"id,omitempty" toml:"id,omitempty"`
	FirstName        string    `yaml:"first_name" toml:"first_name"`
	MiddleName       string    `yaml:"middle_name" toml:"middle_name"`
	LastName         string    `yaml:"last_name" toml:"last_name"`
	BirthDate        time.Time `yaml:"birth_date" toml:"birth_date"`
	YearOfResidency  int       `yaml:"year_of_residency" toml:"year_of_residency"`
	MonthOfResidency int       `yaml:"month_of_residency" toml:"month_of_residency"`
	Address1         string    `yaml:"address1" toml:"address1"`
	Address2         string    `yaml:"address2,omitempty" toml:"address2,omitempty"`
	PhotoPath        string    `yaml:"photo_path,omitempty" toml:"photo_path,omitempty"`
	Archived         bool      `yaml:"-" toml:"-"`
}

// DisplayName formats the roster name as "Last, First M.".
func (r Resident) DisplayName() string {
	last := strings.TrimSpace(r.LastName)
	first := strings.TrimSpace(r.FirstName)
	middle := []rune(strings.TrimSpace(r.MiddleName))
	if len(middle) == 0 {
		return fmt.Sprintf("%s, %s", last, first)
	}
	return fmt.Sprintf("%s, %s %c.", last, first, unicode.ToUpper(middle[0]))
}

// Age returns the completed years between the birth date and now.
func (r Resident) Age(now time.Time) int {
	if r.BirthDate.IsZero() {
		return 0
	}
	age := now.Year() - r.BirthDate.Year()
	if now.Month() < r.BirthDate.Month() ||
		(now.Month() == r.BirthDate.Month() && now.Day() < r.BirthDate.Day()) {
		age--
	}
	return max(0, age)
}

// FormatBirthDate renders the birth date as "January 2, 2006".
func (r Resident) FormatBirthDate() string {
	if r.BirthDate.IsZero() {
		return ""
	}
	return r.BirthDate.Format("January 2, 2006")
}

// ResidentSince renders the residency start, or "Birth".
func (r Resident) ResidentSince() string {
	if r.YearOfResidency == SinceBirth {
		return "Birth"
	}
	if r.MonthOfResidency < 1 || r.MonthOfResidency > 12 {
		return fmt.Sprintf("%d", r.YearOfResidency)
	}
	return fmt.Sprintf("%s %d", time.Month(r.MonthOfResidency), r.YearOfResidency)
}

// Validate checks the fields a record needs before it is persisted.
func (r Resident) Validate() error {
	var problems []string
	if strings.TrimSpace(r.FirstName) == "" {
		problems = append(problems, "first name is required")
	}
	if strings.TrimSpace(r.LastName) == "" {
		problems = append(problems, "last name is required")
	}
	if r.BirthDate.IsZero() {
		problems = append(problems, "birth date is required")
	}
	if strings.TrimSpace(r.Address1) == "" {
		problems = append(problems, "address is required")
	}
	if r.YearOfResidency != SinceBirth {
		if r.YearOfResidency <= 0 {
			problems = append(problems, "year of residency must be positive or -1 for birth")
		}
		if r.MonthOfResidency < 1 || r.MonthOfResidency > 12 {
			problems = append(problems, "month of residency must be between 1 and 12")
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidResident, strings.Join(problems, "; "))
	}
	return nil
}
