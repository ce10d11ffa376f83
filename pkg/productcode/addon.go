package productcode

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/valuekit/pkg/gs1"
)

// Add-on variants are a base EAN-8 or EAN-13, with its own valid check
// digit, followed by a 2- or 5-digit supplement. The supplement carries no
// checksum. Raw input may separate base and supplement by a single space;
// the stored form is digits only, and String re-inserts the space at the
// boundary.
var (
	ean8p2Re  = regexp.MustCompile(`^[0-9]{8} ?[0-9]{2}$`)
	ean8p5Re  = regexp.MustCompile(`^[0-9]{8} ?[0-9]{5}$`)
	ean13p2Re = regexp.MustCompile(`^[0-9]{13} ?[0-9]{2}$`)
	ean13p5Re = regexp.MustCompile(`^[0-9]{13} ?[0-9]{5}$`)
)

func newAddOn(variant, raw string, re *regexp.Regexp, baseLen int, compute func(string) (byte, error)) (string, error) {
	raw = strings.TrimSpace(raw)
	if !re.MatchString(raw) {
		return "", malformed(variant, raw, "does not match the base+add-on format")
	}
	digits := strings.ReplaceAll(raw, " ", "")
	if !verifyCheckDigit(digits[:baseLen], compute) {
		return "", malformed(variant, raw, "base code check digit mismatch")
	}
	return digits, nil
}

// EAN8P2 is an EAN-8 code carrying a 2-digit add-on.
type EAN8P2 struct {
	value string
}

// NewEAN8P2 validates raw as an EAN-8 with a 2-digit add-on, e.g.
// "96385074 12" or "9638507412".
func NewEAN8P2(raw string) (EAN8P2, error) {
	digits, err := newAddOn("EAN-8+2", raw, ean8p2Re, 8, gs1.CheckDigitEAN8)
	if err != nil {
		return EAN8P2{}, err
	}
	return EAN8P2{value: digits}, nil
}

// MustEAN8P2 is like NewEAN8P2 but panics on invalid input.
func MustEAN8P2(raw string) EAN8P2 { return must(NewEAN8P2(raw)) }

func (e EAN8P2) String() string { return e.value[:8] + " " + e.value[8:] }

func (e EAN8P2) Digits() string { return e.value }

// Base returns the contained EAN-8 without its add-on.
func (e EAN8P2) Base() EAN8 { return EAN8{value: e.value[:8]} }

// AddOn returns the 2-digit supplement.
func (e EAN8P2) AddOn() string { return e.value[8:] }

func (e EAN8P2) Countries() []gs1.Country { return gs1.Countries(e.value[:3]) }

func (EAN8P2) isCode() {}

// EAN8P5 is an EAN-8 code carrying a 5-digit add-on.
type EAN8P5 struct {
	value string
}

// NewEAN8P5 validates raw as an EAN-8 with a 5-digit add-on.
func NewEAN8P5(raw string) (EAN8P5, error) {
	digits, err := newAddOn("EAN-8+5", raw, ean8p5Re, 8, gs1.CheckDigitEAN8)
	if err != nil {
		return EAN8P5{}, err
	}
	return EAN8P5{value: digits}, nil
}

// MustEAN8P5 is like NewEAN8P5 but panics on invalid input.
func MustEAN8P5(raw string) EAN8P5 { return must(NewEAN8P5(raw)) }

func (e EAN8P5) String() string { return e.value[:8] + " " + e.value[8:] }

func (e EAN8P5) Digits() string { return e.value }

// Base returns the contained EAN-8 without its add-on.
func (e EAN8P5) Base() EAN8 { return EAN8{value: e.value[:8]} }

// AddOn returns the 5-digit supplement.
func (e EAN8P5) AddOn() string { return e.value[8:] }

func (e EAN8P5) Countries() []gs1.Country { return gs1.Countries(e.value[:3]) }

func (EAN8P5) isCode() {}

// EAN13P2 is an EAN-13 code carrying a 2-digit add-on.
type EAN13P2 struct {
	value string
}

// NewEAN13P2 validates raw as an EAN-13 with a 2-digit add-on, e.g.
// "4006381333931 12".
func NewEAN13P2(raw string) (EAN13P2, error) {
	digits, err := newAddOn("EAN-13+2", raw, ean13p2Re, 13, gs1.CheckDigitEAN13)
	if err != nil {
		return EAN13P2{}, err
	}
	return EAN13P2{value: digits}, nil
}

// MustEAN13P2 is like NewEAN13P2 but panics on invalid input.
func MustEAN13P2(raw string) EAN13P2 { return must(NewEAN13P2(raw)) }

func (e EAN13P2) String() string { return e.value[:13] + " " + e.value[13:] }

func (e EAN13P2) Digits() string { return e.value }

// Base returns the contained EAN-13 without its add-on.
func (e EAN13P2) Base() EAN13 { return EAN13{value: e.value[:13]} }

// AddOn returns the 2-digit supplement.
func (e EAN13P2) AddOn() string { return e.value[13:] }

func (e EAN13P2) Countries() []gs1.Country { return gs1.Countries(e.value[:3]) }

func (EAN13P2) isCode() {}

// EAN13P5 is an EAN-13 code carrying a 5-digit add-on.
type EAN13P5 struct {
	value string
}

// NewEAN13P5 validates raw as an EAN-13 with a 5-digit add-on, e.g.
// "9780134685991 54999" as used for book pricing.
func NewEAN13P5(raw string) (EAN13P5, error) {
	digits, err := newAddOn("EAN-13+5", raw, ean13p5Re, 13, gs1.CheckDigitEAN13)
	if err != nil {
		return EAN13P5{}, err
	}
	return EAN13P5{value: digits}, nil
}

// MustEAN13P5 is like NewEAN13P5 but panics on invalid input.
func MustEAN13P5(raw string) EAN13P5 { return must(NewEAN13P5(raw)) }

func (e EAN13P5) String() string { return e.value[:13] + " " + e.value[13:] }

func (e EAN13P5) Digits() string { return e.value }

// Base returns the contained EAN-13 without its add-on.
func (e EAN13P5) Base() EAN13 { return EAN13{value: e.value[:13]} }

// AddOn returns the 5-digit supplement.
func (e EAN13P5) AddOn() string { return e.value[13:] }

func (e EAN13P5) Countries() []gs1.Country { return gs1.Countries(e.value[:3]) }

func (EAN13P5) isCode() {}
