package ranges

import (
	"cmp"
	"errors"
	"fmt"
)

// ErrInvertedBounds is returned when a range's lower bound exceeds its
// upper bound.
var ErrInvertedBounds = errors.New("ranges: lower bound exceeds upper bound")

// Range is an inclusive interval over an ordered type.
type Range[T cmp.Ordered] struct {
	lo, hi T
}

// New creates a Range with inclusive bounds [lo, hi].
func New[T cmp.Ordered](lo, hi T) (Range[T], error) {
	if lo > hi {
		return Range[T]{}, fmt.Errorf("%w: [%v, %v]", ErrInvertedBounds, lo, hi)
	}
	return Range[T]{lo: lo, hi: hi}, nil
}

// Must creates a Range and panics when the bounds are inverted. Intended
// for range literals known valid at compile time.
func Must[T cmp.Ordered](lo, hi T) Range[T] {
	r, err := New(lo, hi)
	if err != nil {
		panic(err)
	}
	return r
}

// Single creates a Range covering exactly one value.
func Single[T cmp.Ordered](v T) Range[T] {
	return Range[T]{lo: v, hi: v}
}

// Lo returns the inclusive lower bound.
func (r Range[T]) Lo() T { return r.lo }

// Hi returns the inclusive upper bound.
func (r Range[T]) Hi() T { return r.hi }

// Contains reports whether v lies within the range, bounds included.
func (r Range[T]) Contains(v T) bool {
	return v >= r.lo && v <= r.hi
}

// Overlaps reports whether r and other share at least one value.
func (r Range[T]) Overlaps(other Range[T]) bool {
	return r.lo <= other.hi && other.lo <= r.hi
}

// ContainsRange reports whether other lies entirely within r.
func (r Range[T]) ContainsRange(other Range[T]) bool {
	return other.lo >= r.lo && other.hi <= r.hi
}

func (r Range[T]) String() string {
	return fmt.Sprintf("[%v, %v]", r.lo, r.hi)
}

// Exclude carves the given sub-ranges out of r and returns the resulting
// Set. Excluded ranges that do not overlap r are ignored.
func (r Range[T]) Exclude(excluded ...Range[T]) Set[T] {
	s := Set[T]{intervals: []interval[T]{{lo: r.lo, hi: r.hi}}}
	return s.Exclude(excluded...)
}

// ExcludeValues carves individual values out of r.
func (r Range[T]) ExcludeValues(values ...T) Set[T] {
	excluded := make([]Range[T], 0, len(values))
	for _, v := range values {
		excluded = append(excluded, Single(v))
	}
	return r.Exclude(excluded...)
}

// interval is a possibly half-open piece left over after exclusion. Open
// sides exclude the bound value itself, which keeps subtraction exact for
// any ordered type without needing a predecessor or successor.
type interval[T cmp.Ordered] struct {
	lo, hi         T
	loOpen, hiOpen bool
}

func (iv interval[T]) contains(v T) bool {
	if v < iv.lo || (iv.loOpen && v == iv.lo) {
		return false
	}
	if v > iv.hi || (iv.hiOpen && v == iv.hi) {
		return false
	}
	return true
}

// Set is a collection of disjoint intervals produced by exclusion. The
// zero value is an empty set containing nothing.
type Set[T cmp.Ordered] struct {
	intervals []interval[T]
}

// NewSet creates a Set covering the given ranges.
func NewSet[T cmp.Ordered](rs ...Range[T]) Set[T] {
	ivs := make([]interval[T], 0, len(rs))
	for _, r := range rs {
		ivs = append(ivs, interval[T]{lo: r.lo, hi: r.hi})
	}
	return Set[T]{intervals: ivs}
}

// Contains reports whether v lies within any interval of the set.
func (s Set[T]) Contains(v T) bool {
	for _, iv := range s.intervals {
		if iv.contains(v) {
			return true
		}
	}
	return false
}

// Len returns the number of disjoint intervals in the set.
func (s Set[T]) Len() int {
	return len(s.intervals)
}

// IsEmpty reports whether the set contains no values.
func (s Set[T]) IsEmpty() bool {
	return len(s.intervals) == 0
}

// Exclude carves the given ranges out of every interval in the set.
func (s Set[T]) Exclude(excluded ...Range[T]) Set[T] {
	out := s.intervals
	for _, ex := range excluded {
		var next []interval[T]
		for _, iv := range out {
			next = append(next, subtract(iv, ex)...)
		}
		out = next
	}
	return Set[T]{intervals: out}
}

// subtract removes the closed range ex from iv, returning the zero, one,
// or two remaining pieces.
func subtract[T cmp.Ordered](iv interval[T], ex Range[T]) []interval[T] {
	if ex.hi < iv.lo || ex.lo > iv.hi {
		return []interval[T]{iv}
	}
	var out []interval[T]
	if ex.lo >= iv.lo {
		left := interval[T]{lo: iv.lo, loOpen: iv.loOpen, hi: ex.lo, hiOpen: true}
		if left.lo < left.hi || (left.lo == left.hi && !left.loOpen && !left.hiOpen) {
			out = append(out, left)
		}
	}
	if ex.hi <= iv.hi {
		right := interval[T]{lo: ex.hi, loOpen: true, hi: iv.hi, hiOpen: iv.hiOpen}
		if right.lo < right.hi || (right.lo == right.hi && !right.loOpen && !right.hiOpen) {
			out = append(out, right)
		}
	}
	return out
}
