// Package gs1 implements the modulo-10 check digit algorithms used by the
// GS1 barcode families (EAN-8, EAN-13, GTIN-14, UPC-A) and the GS1 company
// prefix registry that maps the first three digits of a code to the issuing
// country or countries.
//
// # Architecture
//
// All check digit functions are pure: they take the payload digits that
// precede the check digit and return the single digit that makes the full
// code valid. They share one weighted-sum routine and differ only in payload
// length and in which position carries weight 3:
//
//   - CheckDigitEAN13 – 12 digits, weight 1 on even 0-based positions.
//   - CheckDigitEAN8  – 7 digits, weight 3 on even positions.
//   - CheckDigitEAN14 – 13 digits, weight 3 on even positions.
//   - CheckDigitUPC   – 11 digits, weight 3 on even positions.
//
// A weighted sum that is already a multiple of 10 always yields the check
// digit '0', never "10".
//
// The prefix registry is an ordered table of disjoint numeric ranges copied
// from the GS1 company prefix list. Countries reports the countries assigned
// to a three-digit prefix; prefixes reserved for restricted circulation,
// coupons, ISSN and ISBN are not country assignments and resolve to nil.
//
// # Usage
//
//	digit, err := gs1.CheckDigitEAN13("400638133393")
//	if err != nil {
//		// handle error
//	}
//	// digit == '1'
//
//	countries := gs1.Countries("300") // [France Monaco]
//
// # Error Handling
//
// ErrInvalidPayload is returned when the payload has the wrong length or
// contains a non-digit character. Compare with errors.Is.
package gs1
