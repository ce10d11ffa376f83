// Package base36 provides a non-negative numeric value type carried as a
// radix-36 digit string (0-9 plus letters, case-insensitive in value,
// case-preserving in form).
//
// # Architecture
//
// A Value wraps the alphanumeric string it was constructed from. Unlike the
// product code types there is no checksum; construction from a string only
// validates the character set, and construction from a number renders the
// base-36 form with uppercase digits. Negative numbers are rejected with
// ErrNegative.
//
// All numeric conversions and all arithmetic round-trip through 64-bit
// integers. This is a documented precision limit: a Value whose magnitude
// exceeds 64 bits can be held and re-encoded but not converted or used in
// arithmetic, and operation results silently truncate to 64-bit semantics
// before being re-wrapped. Sub and Dec reject results that would be
// mathematically negative.
//
// Comparison with Cmp is numeric, not lexicographic: "Z" and "z" are equal,
// and "10" sorts above "Z".
//
// # Usage
//
//	v, _ := base36.FromInt64(35)    // "Z"
//	n, _ := base36.MustNew("Z").Int64() // 35
//
//	sum, err := v.Add(base36.MustNew("1")) // "10" == 36
//
// # Error Handling
//
//   - ErrMalformed      – the string form contains a non-alphanumeric
//     character, or a digit pair is out of byte range in Bytes.
//   - ErrNegative       – a constructor or Sub/Dec would produce a negative
//     value.
//   - ErrOutOfRange     – a conversion target is too narrow for the value.
//   - ErrDivisionByZero – Div or Mod with a zero divisor.
//
// Compare with errors.Is.
package base36
