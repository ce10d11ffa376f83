package productcode

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/valuekit/pkg/gs1"
)

var (
	upcaRe = regexp.MustCompile(`^[0-9]{12}$`)
	upceRe = regexp.MustCompile(`^[0-9]{8}$`)
)

// upcCountries is the unconditional resolution for every UPC code.
var upcCountries = []gs1.Country{gs1.UnitedStates, gs1.Canada}

// UPCA is a 12-digit UPC-A code with a valid trailing check digit.
type UPCA struct {
	value string
}

// NewUPCA validates raw as a UPC-A code. Leading and trailing whitespace is
// trimmed before validation.
func NewUPCA(raw string) (UPCA, error) {
	raw = strings.TrimSpace(raw)
	if !upcaRe.MatchString(raw) {
		return UPCA{}, malformed("UPC-A", raw, "must be exactly 12 digits")
	}
	if !verifyCheckDigit(raw, gs1.CheckDigitUPC) {
		return UPCA{}, malformed("UPC-A", raw, "check digit mismatch")
	}
	return UPCA{value: raw}, nil
}

// MustUPCA is like NewUPCA but panics on invalid input.
func MustUPCA(raw string) UPCA { return must(NewUPCA(raw)) }

func (u UPCA) String() string { return u.value }

func (u UPCA) Digits() string { return u.value }

func (u UPCA) Countries() []gs1.Country { return upcCountries }

func (UPCA) isCode() {}

// UPCE is the 8-digit compact UPC form.
//
// The check digit is verified with the UPC-A weighted sum applied directly
// to the 7 leading digits of the compact form, which coincides with the
// EAN-8 weighting. Zero-suppression expansion to the underlying UPC-A is
// deliberately not performed; see the package documentation.
type UPCE struct {
	value string
}

// NewUPCE validates raw as an 8-digit compact UPC code.
func NewUPCE(raw string) (UPCE, error) {
	raw = strings.TrimSpace(raw)
	if !upceRe.MatchString(raw) {
		return UPCE{}, malformed("UPC-E", raw, "must be exactly 8 digits")
	}
	if !verifyCheckDigit(raw, gs1.CheckDigitEAN8) {
		return UPCE{}, malformed("UPC-E", raw, "check digit mismatch")
	}
	return UPCE{value: raw}, nil
}

// MustUPCE is like NewUPCE but panics on invalid input.
func MustUPCE(raw string) UPCE { return must(NewUPCE(raw)) }

func (u UPCE) String() string { return u.value }

func (u UPCE) Digits() string { return u.value }

func (u UPCE) Countries() []gs1.Country { return upcCountries }

func (UPCE) isCode() {}
