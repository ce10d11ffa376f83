package productcode

import (
	"database/sql/driver"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Serialization adapters. Every variant marshals as a bare string equal to
// its String() form: JSON flows through encoding.TextMarshaler, YAML through
// yaml.Marshaler, database columns through driver.Valuer. Unmarshaling and
// scanning re-validate through the variant's constructor, so corrupted
// persisted data fails with the same ErrMalformed as direct construction.
// Nullable columns should use a pointer to the code type; scanning SQL NULL
// into a value is an error.

// scanString coerces a database column value into a string.
func scanString(src any) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("%w: cannot scan %T into a product code", ErrMalformed, src)
	}
}

// decodeYAML decodes a YAML scalar node into a string for re-validation.
func decodeYAML(node *yaml.Node) (string, error) {
	var s string
	if err := node.Decode(&s); err != nil {
		return "", err
	}
	return s, nil
}

func (e EAN8) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

func (e *EAN8) UnmarshalText(text []byte) error {
	v, err := NewEAN8(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

func (e EAN8) MarshalYAML() (any, error) { return e.String(), nil }

func (e *EAN8) UnmarshalYAML(node *yaml.Node) error {
	s, err := decodeYAML(node)
	if err != nil {
		return err
	}
	return e.UnmarshalText([]byte(s))
}

// Value implements driver.Valuer.
func (e EAN8) Value() (driver.Value, error) { return e.String(), nil }

// Scan implements sql.Scanner.
func (e *EAN8) Scan(src any) error {
	s, err := scanString(src)
	if err != nil {
		return err
	}
	return e.UnmarshalText([]byte(s))
}

func (e EAN13) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

func (e *EAN13) UnmarshalText(text []byte) error {
	v, err := NewEAN13(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

func (e EAN13) MarshalYAML() (any, error) { return e.String(), nil }

func (e *EAN13) UnmarshalYAML(node *yaml.Node) error {
	s, err := decodeYAML(node)
	if err != nil {
		return err
	}
	return e.UnmarshalText([]byte(s))
}

// Value implements driver.Valuer.
func (e EAN13) Value() (driver.Value, error) { return e.String(), nil }

// Scan implements sql.Scanner.
func (e *EAN13) Scan(src any) error {
	s, err := scanString(src)
	if err != nil {
		return err
	}
	return e.UnmarshalText([]byte(s))
}

func (e EAN14) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

func (e *EAN14) UnmarshalText(text []byte) error {
	v, err := NewEAN14(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

func (e EAN14) MarshalYAML() (any, error) { return e.String(), nil }

func (e *EAN14) UnmarshalYAML(node *yaml.Node) error {
	s, err := decodeYAML(node)
	if err != nil {
		return err
	}
	return e.UnmarshalText([]byte(s))
}

// Value implements driver.Valuer.
func (e EAN14) Value() (driver.Value, error) { return e.String(), nil }

// Scan implements sql.Scanner.
func (e *EAN14) Scan(src any) error {
	s, err := scanString(src)
	if err != nil {
		return err
	}
	return e.UnmarshalText([]byte(s))
}

func (e EAN8P2) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

func (e *EAN8P2) UnmarshalText(text []byte) error {
	v, err := NewEAN8P2(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

func (e EAN8P2) MarshalYAML() (any, error) { return e.String(), nil }

func (e *EAN8P2) UnmarshalYAML(node *yaml.Node) error {
	s, err := decodeYAML(node)
	if err != nil {
		return err
	}
	return e.UnmarshalText([]byte(s))
}

// Value implements driver.Valuer.
func (e EAN8P2) Value() (driver.Value, error) { return e.String(), nil }

// Scan implements sql.Scanner.
func (e *EAN8P2) Scan(src any) error {
	s, err := scanString(src)
	if err != nil {
		return err
	}
	return e.UnmarshalText([]byte(s))
}

func (e EAN8P5) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

func (e *EAN8P5) UnmarshalText(text []byte) error {
	v, err := NewEAN8P5(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

func (e EAN8P5) MarshalYAML() (any, error) { return e.String(), nil }

func (e *EAN8P5) UnmarshalYAML(node *yaml.Node) error {
	s, err := decodeYAML(node)
	if err != nil {
		return err
	}
	return e.UnmarshalText([]byte(s))
}

// Value implements driver.Valuer.
func (e EAN8P5) Value() (driver.Value, error) { return e.String(), nil }

// Scan implements sql.Scanner.
func (e *EAN8P5) Scan(src any) error {
	s, err := scanString(src)
	if err != nil {
		return err
	}
	return e.UnmarshalText([]byte(s))
}

func (e EAN13P2) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

func (e *EAN13P2) UnmarshalText(text []byte) error {
	v, err := NewEAN13P2(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

func (e EAN13P2) MarshalYAML() (any, error) { return e.String(), nil }

func (e *EAN13P2) UnmarshalYAML(node *yaml.Node) error {
	s, err := decodeYAML(node)
	if err != nil {
		return err
	}
	return e.UnmarshalText([]byte(s))
}

// Value implements driver.Valuer.
func (e EAN13P2) Value() (driver.Value, error) { return e.String(), nil }

// Scan implements sql.Scanner.
func (e *EAN13P2) Scan(src any) error {
	s, err := scanString(src)
	if err != nil {
		return err
	}
	return e.UnmarshalText([]byte(s))
}

func (e EAN13P5) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

func (e *EAN13P5) UnmarshalText(text []byte) error {
	v, err := NewEAN13P5(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

func (e EAN13P5) MarshalYAML() (any, error) { return e.String(), nil }

func (e *EAN13P5) UnmarshalYAML(node *yaml.Node) error {
	s, err := decodeYAML(node)
	if err != nil {
		return err
	}
	return e.UnmarshalText([]byte(s))
}

// Value implements driver.Valuer.
func (e EAN13P5) Value() (driver.Value, error) { return e.String(), nil }

// Scan implements sql.Scanner.
func (e *EAN13P5) Scan(src any) error {
	s, err := scanString(src)
	if err != nil {
		return err
	}
	return e.UnmarshalText([]byte(s))
}

func (u UPCA) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

func (u *UPCA) UnmarshalText(text []byte) error {
	v, err := NewUPCA(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u UPCA) MarshalYAML() (any, error) { return u.String(), nil }

func (u *UPCA) UnmarshalYAML(node *yaml.Node) error {
	s, err := decodeYAML(node)
	if err != nil {
		return err
	}
	return u.UnmarshalText([]byte(s))
}

// Value implements driver.Valuer.
func (u UPCA) Value() (driver.Value, error) { return u.String(), nil }

// Scan implements sql.Scanner.
func (u *UPCA) Scan(src any) error {
	s, err := scanString(src)
	if err != nil {
		return err
	}
	return u.UnmarshalText([]byte(s))
}

func (u UPCE) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

func (u *UPCE) UnmarshalText(text []byte) error {
	v, err := NewUPCE(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u UPCE) MarshalYAML() (any, error) { return u.String(), nil }

func (u *UPCE) UnmarshalYAML(node *yaml.Node) error {
	s, err := decodeYAML(node)
	if err != nil {
		return err
	}
	return u.UnmarshalText([]byte(s))
}

// Value implements driver.Valuer.
func (u UPCE) Value() (driver.Value, error) { return u.String(), nil }

// Scan implements sql.Scanner.
func (u *UPCE) Scan(src any) error {
	s, err := scanString(src)
	if err != nil {
		return err
	}
	return u.UnmarshalText([]byte(s))
}

func (i ISBN) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

func (i *ISBN) UnmarshalText(text []byte) error {
	v, err := NewISBN(string(text))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i ISBN) MarshalYAML() (any, error) { return i.String(), nil }

func (i *ISBN) UnmarshalYAML(node *yaml.Node) error {
	s, err := decodeYAML(node)
	if err != nil {
		return err
	}
	return i.UnmarshalText([]byte(s))
}

// Value implements driver.Valuer.
func (i ISBN) Value() (driver.Value, error) { return i.String(), nil }

// Scan implements sql.Scanner.
func (i *ISBN) Scan(src any) error {
	s, err := scanString(src)
	if err != nil {
		return err
	}
	return i.UnmarshalText([]byte(s))
}
