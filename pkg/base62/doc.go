// Package base62 encodes arbitrary byte sequences into compact alphanumeric
// strings using the 62-character alphabet 0-9A-Za-z, digits first, then
// uppercase, then lowercase.
//
// The input bytes are treated as one unsigned big-endian integer and
// converted with arbitrary-precision arithmetic, so inputs of any length are
// supported. Because the conversion works on the numeric magnitude, leading
// zero bytes of the input are not preserved by a decode/encode round trip;
// only the integer value is.
//
// # Usage
//
//	s := base62.Encode([]byte{0x01, 0x00}, 0) // "48"
//	b, err := base62.Decode("48")             // [1 0]
//
// Encode can left-pad the result with '0' to a minimum length, which keeps
// encodings of fixed-size inputs aligned:
//
//	base62.Encode(nil, 5) // "00000"
//
// # Error Handling
//
// Decode returns ErrInvalidCharacter when the input contains a character
// outside the 62-symbol alphabet. Compare with errors.Is.
package base62
