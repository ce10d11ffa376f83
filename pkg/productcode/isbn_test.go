package productcode_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valuekit/pkg/productcode"
)

func TestNewISBN(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "fully hyphenated",
			raw:  "978-0-13-468599-1",
			want: "978-0-13-468599-1",
		},
		{
			name: "no hyphens",
			raw:  "9780134685991",
			want: "9780134685991",
		},
		{
			name: "partially hyphenated",
			raw:  "978-013468599-1",
			want: "978-013468599-1",
		},
		{
			name: "979 prefix",
			raw:  "979-10-90636-07-1",
			want: "979-10-90636-07-1",
		},
		{
			name: "internal spaces stripped",
			raw:  "978 0 13 468599 1",
			want: "9780134685991",
		},
		{
			name:    "wrong check digit",
			raw:     "978-0-13-468599-2",
			wantErr: true,
		},
		{
			name:    "non bookland prefix",
			raw:     "400-6-38-133393-1",
			wantErr: true,
		},
		{
			name:    "isbn-10 rejected",
			raw:     "0-13-468599-7",
			wantErr: true,
		},
		{
			name:    "too many digits",
			raw:     "97801346859911",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := productcode.NewISBN(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, productcode.ErrMalformed))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, code.String())
			assert.Len(t, code.Digits(), 13)
		})
	}
}

func TestISBNSegments(t *testing.T) {
	t.Run("available with exactly four hyphens", func(t *testing.T) {
		code := productcode.MustISBN("978-0-13-468599-1")

		group, ok := code.Group()
		require.True(t, ok)
		assert.Equal(t, "0", group)

		publisher, ok := code.Publisher()
		require.True(t, ok)
		assert.Equal(t, "13", publisher)

		title, ok := code.Title()
		require.True(t, ok)
		assert.Equal(t, "468599", title)
	})

	t.Run("unavailable without full hyphenation", func(t *testing.T) {
		for _, raw := range []string{"9780134685991", "978-013468599-1"} {
			code := productcode.MustISBN(raw)

			_, ok := code.Group()
			assert.False(t, ok, raw)
			_, ok = code.Publisher()
			assert.False(t, ok, raw)
			_, ok = code.Title()
			assert.False(t, ok, raw)
		}
	})
}

func TestISBNToEAN13(t *testing.T) {
	code := productcode.MustISBN("978-0-13-468599-1")
	assert.Equal(t, productcode.MustEAN13("9780134685991"), code.EAN13())
}

func TestISBNCountries(t *testing.T) {
	// Bookland prefixes carry no country assignment.
	assert.Nil(t, productcode.MustISBN("978-0-13-468599-1").Countries())
}
