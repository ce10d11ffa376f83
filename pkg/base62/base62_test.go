package base62_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valuekit/pkg/base62"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name      string
		data      []byte
		minLength int
		want      string
	}{
		{
			name: "nil input",
			data: nil,
			want: "",
		},
		{
			name:      "empty input with padding",
			data:      []byte{},
			minLength: 5,
			want:      "00000",
		},
		{
			name: "all zero buffer without padding",
			data: []byte{0, 0, 0},
			want: "",
		},
		{
			name:      "single byte padded",
			data:      []byte{1},
			minLength: 4,
			want:      "0001",
		},
		{
			name: "single digit boundary",
			data: []byte{61},
			want: "z",
		},
		{
			name: "first two digit value",
			data: []byte{62},
			want: "10",
		},
		{
			name: "two byte value",
			data: []byte{0x01, 0x00},
			want: "48",
		},
		{
			name: "leading zero bytes do not change the value",
			data: []byte{0, 0, 62},
			want: "10",
		},
		{
			name:      "padding shorter than result is ignored",
			data:      []byte{62},
			minLength: 1,
			want:      "10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base62.Encode(tt.data, tt.minLength))
		})
	}
}

func TestDecode(t *testing.T) {
	t.Run("known values", func(t *testing.T) {
		b, err := base62.Decode("z")
		require.NoError(t, err)
		assert.Equal(t, []byte{61}, b)

		b, err = base62.Decode("10")
		require.NoError(t, err)
		assert.Equal(t, []byte{62}, b)
	})

	t.Run("empty string", func(t *testing.T) {
		b, err := base62.Decode("")
		require.NoError(t, err)
		assert.Empty(t, b)
	})

	t.Run("padding decodes to the same magnitude", func(t *testing.T) {
		b, err := base62.Decode("0001")
		require.NoError(t, err)
		assert.Equal(t, []byte{1}, b)
	})

	t.Run("invalid character", func(t *testing.T) {
		for _, s := range []string{"ab!", "-1", "a b", "é"} {
			_, err := base62.Decode(s)
			require.Error(t, err, s)
			assert.True(t, errors.Is(err, base62.ErrInvalidCharacter), s)
		}
	})
}

func TestRoundTripPreservesMagnitude(t *testing.T) {
	inputs := [][]byte{
		nil,
		{0},
		{1},
		{0, 0, 0},
		{0xff},
		{0xff, 0xff, 0xff, 0xff},
		{0, 0x01, 0x02},
		{0xde, 0xad, 0xbe, 0xef, 0xca, 0xfe, 0xba, 0xbe},
		[]byte("the quick brown fox jumps over the lazy dog"),
	}

	for _, in := range inputs {
		encoded := base62.Encode(in, 0)
		decoded, err := base62.Decode(encoded)
		require.NoError(t, err)

		want := new(big.Int).SetBytes(in)
		got := new(big.Int).SetBytes(decoded)
		assert.Zero(t, want.Cmp(got), "input %v encoded %q", in, encoded)
	}
}

func TestAlphabetOrder(t *testing.T) {
	assert.Len(t, base62.Alphabet, 62)
	assert.Equal(t, byte('0'), base62.Alphabet[0])
	assert.Equal(t, byte('A'), base62.Alphabet[10])
	assert.Equal(t, byte('a'), base62.Alphabet[36])
	assert.Equal(t, byte('z'), base62.Alphabet[61])
}
