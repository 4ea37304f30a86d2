package pathnavigator

import (
	"errors"
	"fmt"
)

// Sentinel errors. Wrapped errors carry the offending name or path; use
// errors.Is to classify.
var (
	// ErrReservedPrefix rejects names that start with the internal
	// bookkeeping prefix. Such names are never auto-corrected.
	ErrReservedPrefix = errors.New("name uses reserved prefix")

	// ErrCollision marks an add that would overwrite a different,
	// existing entry without the overwrite flag.
	ErrCollision = errors.New("entry collision")

	// ErrNotFound marks a key that does not resolve to a tracked folder
	// or file, even after a refresh attempt.
	ErrNotFound = errors.New("entry not found")

	// ErrNotDirectory marks a walk or bulk-import target that is not a
	// directory.
	ErrNotDirectory = errors.New("not a directory")
)

// CollisionError reports the conflicting registration behind an
// ErrCollision, so callers can show both sides of the clash.
type CollisionError struct {
	Name     string // name as supplied by the caller
	Key      string // canonical key the name mapped to
	Existing string // path currently registered under the key
	Proposed string // path the caller tried to register
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("shortcut %q already maps to %s (proposed %s)", e.Name, e.Existing, e.Proposed)
}

func (e *CollisionError) Unwrap() error { return ErrCollision }
