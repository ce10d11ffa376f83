package base36_test

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/valuekit/pkg/base36"
)

func TestMarshaling(t *testing.T) {
	t.Run("json bare string", func(t *testing.T) {
		data, err := json.Marshal(base36.MustNew("A1Z"))
		require.NoError(t, err)
		assert.Equal(t, `"A1Z"`, string(data))

		var v base36.Value
		require.NoError(t, json.Unmarshal(data, &v))
		assert.Equal(t, base36.MustNew("A1Z"), v)
	})

	t.Run("json rejects invalid characters", func(t *testing.T) {
		var v base36.Value
		err := json.Unmarshal([]byte(`"A-1"`), &v)
		require.Error(t, err)
		assert.True(t, errors.Is(err, base36.ErrMalformed))
	})

	t.Run("yaml round trip", func(t *testing.T) {
		in := base36.MustNew("Zz09")
		data, err := yaml.Marshal(in)
		require.NoError(t, err)

		var out base36.Value
		require.NoError(t, yaml.Unmarshal(data, &out))
		assert.Equal(t, in, out)
	})

	t.Run("sql value", func(t *testing.T) {
		v, err := base36.MustNew("Z").Value()
		require.NoError(t, err)
		assert.Equal(t, driver.Value("Z"), v)
	})

	t.Run("sql scan string and bytes", func(t *testing.T) {
		var v base36.Value
		require.NoError(t, v.Scan("Z"))
		assert.Equal(t, base36.MustNew("Z"), v)

		require.NoError(t, v.Scan([]byte("10")))
		assert.Equal(t, base36.MustNew("10"), v)
	})

	t.Run("sql scan integer column", func(t *testing.T) {
		var v base36.Value
		require.NoError(t, v.Scan(int64(35)))
		assert.Equal(t, "Z", v.String())

		err := v.Scan(int64(-1))
		require.Error(t, err)
		assert.True(t, errors.Is(err, base36.ErrNegative))
	})

	t.Run("sql scan unsupported type", func(t *testing.T) {
		var v base36.Value
		err := v.Scan(3.14)
		require.Error(t, err)
		assert.True(t, errors.Is(err, base36.ErrMalformed))
	})
}
