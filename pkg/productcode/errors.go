package productcode

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is returned when raw input fails the format regex or the
	// checksum verification for the targeted code variant.
	ErrMalformed = errors.New("malformed product code")

	// ErrNoMatchingFormat is returned when dispatch-based parsing exhausted
	// every known concrete format without a match.
	ErrNoMatchingFormat = errors.New("no matching product code format")
)

// malformed builds an ErrMalformed naming the variant being constructed and
// the rule that was violated.
func malformed(variant, raw, reason string) error {
	return fmt.Errorf("%w: %s %q: %s", ErrMalformed, variant, raw, reason)
}
