package entity

import (
	"fmt"
	"regexp"
	"time"
)

// SavedLayout is a named, persisted layout document.
type SavedLayout struct {
	Name         string
	Version      string
	Document     []byte
	Arrangements int
	Keys         int
	SavedAt      time.Time
}

var layoutNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,63}$`)

// ValidateLayoutName checks that name is usable as a storage key and file name.
func ValidateLayoutName(name string) error {
	if !layoutNamePattern.MatchString(name) {
		return fmt.Errorf("%w: invalid layout name %q", ErrInvalidArgument, name)
	}
	return nil
}
