package base62

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Alphabet is the 62-symbol digit set, ordered so that the encoded text
// sorts the same way as the underlying magnitude for equal-length strings.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// ErrInvalidCharacter is returned by Decode for characters outside Alphabet.
var ErrInvalidCharacter = errors.New("invalid base62 character")

var base = big.NewInt(62)

// Encode converts data, read as an unsigned big-endian integer, into its
// base62 representation. The result is left-padded with '0' until it is at
// least minLength characters long. A nil, empty or all-zero input encodes to
// the empty string before padding, so with minLength 5 it yields "00000".
func Encode(data []byte, minLength int) string {
	n := new(big.Int).SetBytes(data)

	var b strings.Builder
	rem := new(big.Int)
	for n.Sign() > 0 {
		n.DivMod(n, base, rem)
		b.WriteByte(Alphabet[rem.Int64()])
	}

	// Digits were accumulated least significant first.
	encoded := b.String()
	out := make([]byte, 0, max(len(encoded), minLength))
	for i := len(encoded) - 1; i >= 0; i-- {
		out = append(out, encoded[i])
	}

	for len(out) < minLength {
		out = append([]byte{'0'}, out...)
	}
	return string(out)
}

// Decode converts a base62 string back into the big-endian byte form of its
// magnitude. Leading '0' characters contribute nothing to the value, so
// Decode(Encode(b, n)) reproduces the magnitude of b regardless of padding.
// The empty string decodes to an empty byte slice.
func Decode(s string) ([]byte, error) {
	n := new(big.Int)
	for i := 0; i < len(s); i++ {
		idx := strings.IndexByte(Alphabet, s[i])
		if idx < 0 {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, s[i], i)
		}
		n.Mul(n, base)
		n.Add(n, big.NewInt(int64(idx)))
	}
	return n.Bytes(), nil
}
