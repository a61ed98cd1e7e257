package displaymap

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange reports a coordinate outside the current extent, usually
	// one captured before an edit.
	ErrOutOfRange = errors.New("displaymap: position out of range")
	// ErrOverlap reports a fold that intersects an existing fold.
	ErrOverlap = errors.New("displaymap: fold overlaps an existing fold")
	// ErrNotFound reports an unfold with no exactly matching fold.
	ErrNotFound = errors.New("displaymap: fold not found")
	// ErrInvalidRange reports an empty or inverted range.
	ErrInvalidRange = errors.New("displaymap: invalid range")
)

// OverlapError is returned by Fold when the new range intersects Existing.
type OverlapError struct {
	Fold     FoldRange
	Existing FoldRange
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("displaymap: fold %v overlaps existing fold %v", e.Fold, e.Existing)
}

func (e *OverlapError) Unwrap() error { return ErrOverlap }

func outOfRange(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrOutOfRange, fmt.Sprintf(format, args...))
}
