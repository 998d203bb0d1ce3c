package intervals

import "errors"

var (
	// ErrInvalidInterval signals an interval whose upper bound lies before its
	// lower bound.
	ErrInvalidInterval = errors.New("intervals: upper bound before lower bound")
	// ErrInvariantViolation signals a corrupted tree structure detected by Check.
	ErrInvariantViolation = errors.New("intervals: tree invariant violated")
)
