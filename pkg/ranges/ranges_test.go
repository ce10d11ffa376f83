package ranges_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valuekit/pkg/ranges"
)

func TestNew(t *testing.T) {
	t.Run("valid bounds", func(t *testing.T) {
		r, err := ranges.New(1, 100)
		require.NoError(t, err)
		assert.Equal(t, 1, r.Lo())
		assert.Equal(t, 100, r.Hi())
	})

	t.Run("equal bounds", func(t *testing.T) {
		r, err := ranges.New(5, 5)
		require.NoError(t, err)
		assert.True(t, r.Contains(5))
	})

	t.Run("inverted bounds", func(t *testing.T) {
		_, err := ranges.New(10, 1)
		require.ErrorIs(t, err, ranges.ErrInvertedBounds)
	})

	t.Run("must panics on inverted bounds", func(t *testing.T) {
		assert.Panics(t, func() { ranges.Must(10, 1) })
	})
}

func TestRangeContains(t *testing.T) {
	r := ranges.Must(10, 20)

	tests := []struct {
		name string
		v    int
		want bool
	}{
		{name: "below", v: 9, want: false},
		{name: "lower bound", v: 10, want: true},
		{name: "inside", v: 15, want: true},
		{name: "upper bound", v: 20, want: true},
		{name: "above", v: 21, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.v))
		})
	}
}

func TestRangeOverlaps(t *testing.T) {
	r := ranges.Must(10, 20)

	tests := []struct {
		name  string
		other ranges.Range[int]
		want  bool
	}{
		{name: "disjoint below", other: ranges.Must(1, 9), want: false},
		{name: "touching at lower bound", other: ranges.Must(1, 10), want: true},
		{name: "partial overlap", other: ranges.Must(15, 30), want: true},
		{name: "contained", other: ranges.Must(12, 18), want: true},
		{name: "containing", other: ranges.Must(0, 100), want: true},
		{name: "touching at upper bound", other: ranges.Must(20, 25), want: true},
		{name: "disjoint above", other: ranges.Must(21, 30), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(r))
		})
	}
}

func TestRangeContainsRange(t *testing.T) {
	r := ranges.Must(10, 20)

	assert.True(t, r.ContainsRange(ranges.Must(10, 20)))
	assert.True(t, r.ContainsRange(ranges.Must(12, 18)))
	assert.False(t, r.ContainsRange(ranges.Must(9, 15)))
	assert.False(t, r.ContainsRange(ranges.Must(15, 21)))
}

func TestExclude(t *testing.T) {
	t.Run("middle carve", func(t *testing.T) {
		set := ranges.Must(1, 100).Exclude(ranges.Must(40, 60))

		assert.True(t, set.Contains(1))
		assert.True(t, set.Contains(39))
		assert.False(t, set.Contains(40))
		assert.False(t, set.Contains(50))
		assert.False(t, set.Contains(60))
		assert.True(t, set.Contains(61))
		assert.True(t, set.Contains(100))
		assert.Equal(t, 2, set.Len())
	})

	t.Run("carve at lower bound", func(t *testing.T) {
		set := ranges.Must(10, 20).Exclude(ranges.Must(10, 12))

		assert.False(t, set.Contains(10))
		assert.False(t, set.Contains(12))
		assert.True(t, set.Contains(13))
		assert.Equal(t, 1, set.Len())
	})

	t.Run("carve overhanging both sides empties the set", func(t *testing.T) {
		set := ranges.Must(10, 20).Exclude(ranges.Must(0, 30))

		assert.True(t, set.IsEmpty())
		assert.False(t, set.Contains(15))
	})

	t.Run("non overlapping exclusion is ignored", func(t *testing.T) {
		set := ranges.Must(10, 20).Exclude(ranges.Must(30, 40))

		assert.Equal(t, 1, set.Len())
		assert.True(t, set.Contains(15))
	})

	t.Run("multiple exclusions", func(t *testing.T) {
		set := ranges.Must(0, 100).Exclude(ranges.Must(10, 20), ranges.Must(50, 60))

		assert.True(t, set.Contains(5))
		assert.False(t, set.Contains(15))
		assert.True(t, set.Contains(30))
		assert.False(t, set.Contains(55))
		assert.True(t, set.Contains(70))
		assert.Equal(t, 3, set.Len())
	})

	t.Run("exclude values", func(t *testing.T) {
		set := ranges.Must(1, 10).ExcludeValues(3, 7)

		assert.True(t, set.Contains(2))
		assert.False(t, set.Contains(3))
		assert.True(t, set.Contains(4))
		assert.False(t, set.Contains(7))
		assert.True(t, set.Contains(8))
	})

	t.Run("chained exclusion on a set", func(t *testing.T) {
		set := ranges.Must(0, 50).
			Exclude(ranges.Must(10, 20)).
			Exclude(ranges.Must(30, 40))

		assert.True(t, set.Contains(25))
		assert.False(t, set.Contains(35))
	})

	t.Run("string ranges", func(t *testing.T) {
		set := ranges.Must("a", "z").Exclude(ranges.Must("m", "p"))

		assert.True(t, set.Contains("b"))
		assert.False(t, set.Contains("n"))
		assert.True(t, set.Contains("q"))
		// Values strictly between the bound and its neighbors stay in.
		assert.True(t, set.Contains("lz"))
		assert.False(t, set.Contains("ma"))
	})

	t.Run("float ranges keep boundary neighborhood", func(t *testing.T) {
		set := ranges.Must(0.0, 1.0).Exclude(ranges.Must(0.4, 0.6))

		assert.True(t, set.Contains(0.39))
		assert.False(t, set.Contains(0.4))
		assert.False(t, set.Contains(0.6))
		assert.True(t, set.Contains(0.61))
	})
}

func TestNewSet(t *testing.T) {
	set := ranges.NewSet(ranges.Must(1, 5), ranges.Must(10, 15))

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains(3))
	assert.False(t, set.Contains(7))
	assert.True(t, set.Contains(12))
}

func TestZeroSet(t *testing.T) {
	var set ranges.Set[int]

	assert.True(t, set.IsEmpty())
	assert.False(t, set.Contains(0))
}

func TestRangeString(t *testing.T) {
	assert.Equal(t, "[1, 9]", ranges.Must(1, 9).String())
}
