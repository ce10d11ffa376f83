package base36

import (
	"database/sql/driver"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Value serializes as its bare digit string and re-validates on the way
// back in, the same contract as the product code types.

func (v Value) MarshalText() ([]byte, error) { return []byte(v.s), nil }

func (v *Value) UnmarshalText(text []byte) error {
	parsed, err := New(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (v Value) MarshalYAML() (any, error) { return v.s, nil }

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return v.UnmarshalText([]byte(s))
}

// Value implements driver.Valuer.
func (v Value) Value() (driver.Value, error) { return v.s, nil }

// Scan implements sql.Scanner.
func (v *Value) Scan(src any) error {
	switch s := src.(type) {
	case string:
		return v.UnmarshalText([]byte(s))
	case []byte:
		return v.UnmarshalText(s)
	case int64:
		parsed, err := FromInt64(s)
		if err != nil {
			return err
		}
		*v = parsed
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrMalformed, src)
	}
}
