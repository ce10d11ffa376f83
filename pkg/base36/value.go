package base36

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrMalformed is returned when a string form is not purely
	// alphanumeric, or when a digit pair exceeds byte range in Bytes.
	ErrMalformed = errors.New("malformed base36 value")

	// ErrNegative is returned when a constructor or arithmetic operation
	// would produce a negative value.
	ErrNegative = errors.New("base36 values cannot be negative")

	// ErrOutOfRange is returned when a conversion target is too narrow.
	ErrOutOfRange = errors.New("base36 value out of range")

	// ErrDivisionByZero is returned by Div and Mod with a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
)

var valueRe = regexp.MustCompile(`^[0-9A-Za-z]+$`)

// Value is a non-negative number carried as a radix-36 digit string. The
// zero Value is empty and invalid; obtain instances through the
// constructors.
type Value struct {
	s string
}

// New validates s as a radix-36 digit string. Case is preserved; value
// semantics are case-insensitive.
func New(s string) (Value, error) {
	if !valueRe.MatchString(s) {
		return Value{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	return Value{s: s}, nil
}

// MustNew is like New but panics on invalid input.
func MustNew(s string) Value {
	v, err := New(s)
	if err != nil {
		panic(err)
	}
	return v
}

// FromInt64 renders n in base-36 with uppercase digits. Negative numbers
// are rejected with ErrNegative.
func FromInt64(n int64) (Value, error) {
	if n < 0 {
		return Value{}, fmt.Errorf("%w: %d", ErrNegative, n)
	}
	return Value{s: strings.ToUpper(strconv.FormatInt(n, 36))}, nil
}

// FromInt renders n in base-36 with uppercase digits, rejecting negatives.
func FromInt(n int) (Value, error) {
	return FromInt64(int64(n))
}

// FromUint64 renders n in base-36 with uppercase digits.
func FromUint64(n uint64) Value {
	return Value{s: strings.ToUpper(strconv.FormatUint(n, 36))}
}

// FromBytes renders each byte as a fixed-width pair of base-36 digits, so
// the result always has even length and Bytes inverts it exactly.
func FromBytes(b []byte) Value {
	var sb strings.Builder
	sb.Grow(len(b) * 2)
	for _, c := range b {
		pair := strings.ToUpper(strconv.FormatUint(uint64(c), 36))
		if len(pair) < 2 {
			sb.WriteByte('0')
		}
		sb.WriteString(pair)
	}
	if sb.Len() == 0 {
		return Value{s: "0"}
	}
	return Value{s: sb.String()}
}

// String returns the digit string as constructed, case preserved.
func (v Value) String() string { return v.s }

// Upper returns a new Value with uppercase digits.
func (v Value) Upper() Value { return Value{s: strings.ToUpper(v.s)} }

// Lower returns a new Value with lowercase digits.
func (v Value) Lower() Value { return Value{s: strings.ToLower(v.s)} }

// Uint64 parses the value as an unsigned 64-bit integer.
func (v Value) Uint64() (uint64, error) {
	n, err := strconv.ParseUint(v.s, 36, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q does not fit in 64 bits", ErrOutOfRange, v.s)
	}
	return n, nil
}

// Int64 parses the value as a signed 64-bit integer.
func (v Value) Int64() (int64, error) {
	n, err := v.Uint64()
	if err != nil {
		return 0, err
	}
	if n > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %q does not fit in int64", ErrOutOfRange, v.s)
	}
	return int64(n), nil
}

// Int parses the value as an int.
func (v Value) Int() (int, error) {
	n, err := v.Int64()
	if err != nil {
		return 0, err
	}
	if n > math.MaxInt {
		return 0, fmt.Errorf("%w: %q does not fit in int", ErrOutOfRange, v.s)
	}
	return int(n), nil
}

// Uint32 parses the value as an unsigned 32-bit integer.
func (v Value) Uint32() (uint32, error) { return narrowUint[uint32](v, math.MaxUint32) }

// Uint16 parses the value as an unsigned 16-bit integer.
func (v Value) Uint16() (uint16, error) { return narrowUint[uint16](v, math.MaxUint16) }

// Uint8 parses the value as an unsigned 8-bit integer.
func (v Value) Uint8() (uint8, error) { return narrowUint[uint8](v, math.MaxUint8) }

// Int32 parses the value as a signed 32-bit integer.
func (v Value) Int32() (int32, error) { return narrowInt[int32](v, math.MaxInt32) }

// Int16 parses the value as a signed 16-bit integer.
func (v Value) Int16() (int16, error) { return narrowInt[int16](v, math.MaxInt16) }

// Int8 parses the value as a signed 8-bit integer.
func (v Value) Int8() (int8, error) { return narrowInt[int8](v, math.MaxInt8) }

func narrowUint[T uint8 | uint16 | uint32](v Value, maxVal uint64) (T, error) {
	n, err := v.Uint64()
	if err != nil {
		return 0, err
	}
	if n > maxVal {
		return 0, fmt.Errorf("%w: %q overflows the target type", ErrOutOfRange, v.s)
	}
	return T(n), nil
}

func narrowInt[T int8 | int16 | int32](v Value, maxVal uint64) (T, error) {
	n, err := v.Uint64()
	if err != nil {
		return 0, err
	}
	if n > maxVal {
		return 0, fmt.Errorf("%w: %q overflows the target type", ErrOutOfRange, v.s)
	}
	return T(n), nil
}

// Bytes inverts FromBytes: the digit string is left-padded with '0' to even
// length and every pair is decoded as one byte. Pairs whose radix-36 value
// exceeds 255 are rejected with ErrMalformed.
func (v Value) Bytes() ([]byte, error) {
	s := v.s
	if len(s)%2 != 0 {
		s = "0" + s
	}
	out := make([]byte, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		n, err := strconv.ParseUint(s[i:i+2], 36, 16)
		if err != nil {
			return nil, fmt.Errorf("%w: bad digit pair %q", ErrMalformed, s[i:i+2])
		}
		if n > math.MaxUint8 {
			return nil, fmt.Errorf("%w: digit pair %q exceeds byte range", ErrMalformed, s[i:i+2])
		}
		out = append(out, byte(n))
	}
	return out, nil
}

// Cmp compares two values numerically, returning -1, 0 or 1. Comparison is
// by 64-bit value, not lexicographic on the string form.
func (v Value) Cmp(o Value) (int, error) {
	a, err := v.Uint64()
	if err != nil {
		return 0, err
	}
	b, err := o.Uint64()
	if err != nil {
		return 0, err
	}
	switch {
	case a < b:
		return -1, nil
	case a > b:
		return 1, nil
	default:
		return 0, nil
	}
}
