package gs1

import (
	"errors"
	"fmt"
)

// ErrInvalidPayload is returned when a check digit payload has the wrong
// length or contains a character outside '0'-'9'.
var ErrInvalidPayload = errors.New("invalid check digit payload")

// checkDigit computes the modulo-10 check digit over payload, where
// weightAtZero (1 or 3) is applied to even 0-based positions and the other
// weight to odd positions.
func checkDigit(payload string, length int, weightAtZero int) (byte, error) {
	if len(payload) != length {
		return 0, fmt.Errorf("%w: expected %d digits, got %d", ErrInvalidPayload, length, len(payload))
	}

	otherWeight := 4 - weightAtZero
	sum := 0
	for i := 0; i < len(payload); i++ {
		c := payload[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: non-digit character %q at position %d", ErrInvalidPayload, c, i)
		}
		d := int(c - '0')
		if i%2 == 0 {
			sum += d * weightAtZero
		} else {
			sum += d * otherWeight
		}
	}

	rem := sum % 10
	if rem == 0 {
		return '0', nil
	}
	return byte('0' + 10 - rem), nil
}

// CheckDigitEAN13 computes the trailing check digit of an EAN-13 code from
// its 12 payload digits. Weight 1 is applied to even 0-based positions,
// weight 3 to odd positions. The same algorithm covers ISBN-13 payloads with
// hyphens stripped.
func CheckDigitEAN13(payload string) (byte, error) {
	return checkDigit(payload, 12, 1)
}

// CheckDigitEAN8 computes the trailing check digit of an EAN-8 code from its
// 7 payload digits. The weighting is inverted relative to EAN-13: weight 3
// on even 0-based positions, weight 1 on odd.
func CheckDigitEAN8(payload string) (byte, error) {
	return checkDigit(payload, 7, 3)
}

// CheckDigitEAN14 computes the trailing check digit of a GTIN-14 code from
// its 13 payload digits, weight 3 on even 0-based positions.
func CheckDigitEAN14(payload string) (byte, error) {
	return checkDigit(payload, 13, 3)
}

// CheckDigitUPC computes the trailing check digit of a UPC-A code from its
// 11 payload digits, weight 3 on even 0-based positions.
func CheckDigitUPC(payload string) (byte, error) {
	return checkDigit(payload, 11, 3)
}
