// Package ranges provides generic inclusive ranges over ordered types with
// containment, overlap, and exclusion operations.
//
// A Range carries inclusive lower and upper bounds. Exclusion carves values
// or sub-ranges out of a Range and yields a Set, which answers containment
// questions against the remaining sub-ranges.
//
// # Usage
//
//	r, err := ranges.New(1, 100)
//	if err != nil {
//		return err
//	}
//	r.Contains(50)          // true
//	set := r.Exclude(ranges.Must(40, 60))
//	set.Contains(50)        // false
//	set.Contains(39)        // true
//
// # Error Handling
//
// New returns ErrInvertedBounds when the lower bound exceeds the upper
// bound. Must panics on the same condition and is intended for static
// range literals.
package ranges
