package productcode

import (
	"fmt"

	"github.com/dmitrymomot/valuekit/pkg/gs1"
)

// Code is the closed union of all product code variants. It is sealed: only
// the ten types declared in this package implement it.
type Code interface {
	fmt.Stringer

	// Digits returns the canonical digit string with no separator space and,
	// for ISBN, no hyphens.
	Digits() string

	// Countries resolves the code's GS1 prefix to the issuing countries.
	// UPC codes always resolve to United States and Canada; an unassigned
	// prefix resolves to nil.
	Countries() []gs1.Country

	isCode()
}

// verifyCheckDigit reports whether the trailing digit of code equals the
// check digit computed over the preceding payload.
func verifyCheckDigit(code string, compute func(string) (byte, error)) bool {
	last := len(code) - 1
	digit, err := compute(code[:last])
	return err == nil && digit == code[last]
}

// must panics on a constructor error. Each variant exposes a MustX wrapper
// for inputs known valid at compile time.
func must[T Code](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Parse sniffs raw against every known format, EAN family first, then UPC,
// and returns the first variant that accepts it. ISBN is never produced by
// Parse; construct it explicitly with NewISBN.
func Parse(raw string) (Code, error) {
	if c, err := ParseEAN(raw); err == nil {
		return c, nil
	}
	if c, err := ParseUPC(raw); err == nil {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNoMatchingFormat, raw)
}

// ParseEAN tries the EAN formats in declared order: EAN-13, EAN-8, EAN-8+2,
// EAN-8+5, EAN-13+2, EAN-13+5, EAN-14. First match wins.
func ParseEAN(raw string) (Code, error) {
	if v, err := NewEAN13(raw); err == nil {
		return v, nil
	}
	if v, err := NewEAN8(raw); err == nil {
		return v, nil
	}
	if v, err := NewEAN8P2(raw); err == nil {
		return v, nil
	}
	if v, err := NewEAN8P5(raw); err == nil {
		return v, nil
	}
	if v, err := NewEAN13P2(raw); err == nil {
		return v, nil
	}
	if v, err := NewEAN13P5(raw); err == nil {
		return v, nil
	}
	if v, err := NewEAN14(raw); err == nil {
		return v, nil
	}
	return nil, fmt.Errorf("%w: %q is not a valid EAN code", ErrNoMatchingFormat, raw)
}

// ParseUPC tries UPC-A then UPC-E.
func ParseUPC(raw string) (Code, error) {
	if v, err := NewUPCA(raw); err == nil {
		return v, nil
	}
	if v, err := NewUPCE(raw); err == nil {
		return v, nil
	}
	return nil, fmt.Errorf("%w: %q is not a valid UPC code", ErrNoMatchingFormat, raw)
}
