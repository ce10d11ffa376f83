package productcode

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/valuekit/pkg/gs1"
)

var (
	ean8Re  = regexp.MustCompile(`^[0-9]{8}$`)
	ean13Re = regexp.MustCompile(`^[0-9]{13}$`)
	ean14Re = regexp.MustCompile(`^(?:\(01\))?[0-9]{14}$`)
)

// EAN8 is an 8-digit EAN code with a valid trailing check digit.
type EAN8 struct {
	value string
}

// NewEAN8 validates raw as an EAN-8 code. Leading and trailing whitespace is
// trimmed before validation.
func NewEAN8(raw string) (EAN8, error) {
	raw = strings.TrimSpace(raw)
	if !ean8Re.MatchString(raw) {
		return EAN8{}, malformed("EAN-8", raw, "must be exactly 8 digits")
	}
	if !verifyCheckDigit(raw, gs1.CheckDigitEAN8) {
		return EAN8{}, malformed("EAN-8", raw, "check digit mismatch")
	}
	return EAN8{value: raw}, nil
}

// MustEAN8 is like NewEAN8 but panics on invalid input.
func MustEAN8(raw string) EAN8 { return must(NewEAN8(raw)) }

func (e EAN8) String() string { return e.value }

func (e EAN8) Digits() string { return e.value }

func (e EAN8) Countries() []gs1.Country { return gs1.Countries(e.value[:3]) }

func (EAN8) isCode() {}

// EAN13 is a 13-digit EAN code with a valid trailing check digit.
type EAN13 struct {
	value string
}

// NewEAN13 validates raw as an EAN-13 code. Leading and trailing whitespace
// is trimmed before validation.
func NewEAN13(raw string) (EAN13, error) {
	raw = strings.TrimSpace(raw)
	if !ean13Re.MatchString(raw) {
		return EAN13{}, malformed("EAN-13", raw, "must be exactly 13 digits")
	}
	if !verifyCheckDigit(raw, gs1.CheckDigitEAN13) {
		return EAN13{}, malformed("EAN-13", raw, "check digit mismatch")
	}
	return EAN13{value: raw}, nil
}

// MustEAN13 is like NewEAN13 but panics on invalid input.
func MustEAN13(raw string) EAN13 { return must(NewEAN13(raw)) }

func (e EAN13) String() string { return e.value }

func (e EAN13) Digits() string { return e.value }

func (e EAN13) Countries() []gs1.Country { return gs1.Countries(e.value[:3]) }

func (EAN13) isCode() {}

// EAN14 is a 14-digit GTIN-14 code. The raw input may carry the GS1
// application identifier prefix "(01)", which is stripped before length
// validation and not stored.
type EAN14 struct {
	value string
}

// NewEAN14 validates raw as a GTIN-14 code, with or without a leading "(01)"
// application identifier.
func NewEAN14(raw string) (EAN14, error) {
	raw = strings.TrimSpace(raw)
	if !ean14Re.MatchString(raw) {
		return EAN14{}, malformed("EAN-14", raw, "must be exactly 14 digits with an optional (01) prefix")
	}
	digits := strings.TrimPrefix(raw, "(01)")
	if !verifyCheckDigit(digits, gs1.CheckDigitEAN14) {
		return EAN14{}, malformed("EAN-14", raw, "check digit mismatch")
	}
	return EAN14{value: digits}, nil
}

// MustEAN14 is like NewEAN14 but panics on invalid input.
func MustEAN14(raw string) EAN14 { return must(NewEAN14(raw)) }

func (e EAN14) String() string { return e.value }

func (e EAN14) Digits() string { return e.value }

func (e EAN14) Countries() []gs1.Country { return gs1.Countries(e.value[:3]) }

func (EAN14) isCode() {}
