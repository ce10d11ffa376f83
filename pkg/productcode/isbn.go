package productcode

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/valuekit/pkg/gs1"
)

var isbnRe = regexp.MustCompile(`^97[89]-?[0-9]{1,5}-?[0-9]{2,7}-?[0-9]{1,6}-?[0-9]$`)

// ISBN is a 13-digit, EAN-13 compatible book number. The stored value keeps
// the hyphen segmentation of the raw input; internal spaces are stripped,
// hyphens are not.
type ISBN struct {
	value string
}

// NewISBN validates raw as an ISBN-13. The code must start with the 978 or
// 979 Bookland prefix, contain exactly 13 digits, and carry a valid EAN-13
// check digit over the digits with hyphens stripped.
func NewISBN(raw string) (ISBN, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.ReplaceAll(raw, " ", "")
	if !isbnRe.MatchString(raw) {
		return ISBN{}, malformed("ISBN", raw, "does not match the ISBN-13 format")
	}
	digits := strings.ReplaceAll(raw, "-", "")
	if len(digits) != 13 {
		return ISBN{}, malformed("ISBN", raw, "must contain exactly 13 digits")
	}
	if !verifyCheckDigit(digits, gs1.CheckDigitEAN13) {
		return ISBN{}, malformed("ISBN", raw, "check digit mismatch")
	}
	return ISBN{value: raw}, nil
}

// MustISBN is like NewISBN but panics on invalid input.
func MustISBN(raw string) ISBN { return must(NewISBN(raw)) }

func (i ISBN) String() string { return i.value }

// Digits returns the 13 digits with hyphens stripped.
func (i ISBN) Digits() string { return strings.ReplaceAll(i.value, "-", "") }

// EAN13 returns the same number as a plain EAN-13 code.
func (i ISBN) EAN13() EAN13 { return EAN13{value: i.Digits()} }

// segments are only available when the stored value is segmented into
// exactly 5 hyphen-separated parts: prefix, registration group, publisher,
// title, check digit. Any other hyphenation reports ok == false rather than
// attempting a best-effort split.

// Group returns the registration group segment.
func (i ISBN) Group() (string, bool) { return i.segment(1) }

// Publisher returns the publisher segment.
func (i ISBN) Publisher() (string, bool) { return i.segment(2) }

// Title returns the title segment.
func (i ISBN) Title() (string, bool) { return i.segment(3) }

func (i ISBN) segment(idx int) (string, bool) {
	parts := strings.Split(i.value, "-")
	if len(parts) != 5 {
		return "", false
	}
	return parts[idx], true
}

func (i ISBN) Countries() []gs1.Country { return gs1.Countries(i.Digits()[:3]) }

func (ISBN) isCode() {}
