package base36

import "fmt"

// Arithmetic round-trips through int64: both operands are converted, the
// operation is performed with 64-bit semantics, and the result is re-wrapped
// with uppercase digits. Any result that would be negative, including a
// signed overflow wrapping below zero, is rejected by FromInt64.

func (v Value) apply(o Value, op func(a, b int64) (int64, error)) (Value, error) {
	a, err := v.Int64()
	if err != nil {
		return Value{}, err
	}
	b, err := o.Int64()
	if err != nil {
		return Value{}, err
	}
	r, err := op(a, b)
	if err != nil {
		return Value{}, err
	}
	return FromInt64(r)
}

// Add returns v + o.
func (v Value) Add(o Value) (Value, error) {
	return v.apply(o, func(a, b int64) (int64, error) { return a + b, nil })
}

// Sub returns v - o, rejecting negative results with ErrNegative.
func (v Value) Sub(o Value) (Value, error) {
	return v.apply(o, func(a, b int64) (int64, error) { return a - b, nil })
}

// Mul returns v * o.
func (v Value) Mul(o Value) (Value, error) {
	return v.apply(o, func(a, b int64) (int64, error) { return a * b, nil })
}

// Div returns v / o, truncated, rejecting a zero divisor.
func (v Value) Div(o Value) (Value, error) {
	return v.apply(o, func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, fmt.Errorf("%w: %s / %s", ErrDivisionByZero, v, o)
		}
		return a / b, nil
	})
}

// Mod returns v % o, rejecting a zero divisor.
func (v Value) Mod(o Value) (Value, error) {
	return v.apply(o, func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, fmt.Errorf("%w: %s %% %s", ErrDivisionByZero, v, o)
		}
		return a % b, nil
	})
}

var one = Value{s: "1"}

// Inc returns v + 1.
func (v Value) Inc() (Value, error) { return v.Add(one) }

// Dec returns v - 1, rejecting a negative result with ErrNegative.
func (v Value) Dec() (Value, error) { return v.Sub(one) }
