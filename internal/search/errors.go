package search

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrPlaceholderMissing is returned when the template contains no
	// placeholder at all.
	ErrPlaceholderMissing = errors.New("template has no placeholder")

	// ErrPlaceholderAmbiguous is returned when the template contains the
	// placeholder more than once. Later occurrences are not treated as
	// literals; the template is rejected outright.
	ErrPlaceholderAmbiguous = errors.New("template has more than one placeholder")
)

// SpaceTooLargeError means the requested digit count implies a search space
// that exceeds either the counting range or the configured policy ceiling.
// It is always detected before any worker is spawned.
type SpaceTooLargeError struct {
	Digits int
	Limit  int
}

func (e *SpaceTooLargeError) Error() string {
	return fmt.Sprintf("search space for %d hex digits exceeds the %d-digit limit", e.Digits, e.Limit)
}
