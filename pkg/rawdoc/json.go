package rawdoc

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformed is returned when input does not parse as the expected
// document format.
var ErrMalformed = errors.New("rawdoc: malformed document")

// JSON holds a validated, compacted JSON document. The zero value is not
// a valid document; create values with NewJSON.
type JSON struct {
	raw string
}

// NewJSON validates and compacts src. Insignificant whitespace is
// stripped so equal documents compare equal as values.
func NewJSON(src string) (JSON, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(src)); err != nil {
		return JSON{}, fmt.Errorf("%w: %s", ErrMalformed, err)
	}
	return JSON{raw: buf.String()}, nil
}

// MustJSON is like NewJSON but panics on malformed input. Intended for
// document literals known valid at compile time.
func MustJSON(src string) JSON {
	d, err := NewJSON(src)
	if err != nil {
		panic(err)
	}
	return d
}

// String returns the compacted document text.
func (d JSON) String() string {
	return d.raw
}

// IsZero reports whether d holds no document.
func (d JSON) IsZero() bool {
	return d.raw == ""
}

// Decode unmarshals the document into out.
func (d JSON) Decode(out any) error {
	return json.Unmarshal([]byte(d.raw), out)
}

// MarshalJSON embeds the document verbatim into the surrounding output.
func (d JSON) MarshalJSON() ([]byte, error) {
	if d.raw == "" {
		return []byte("null"), nil
	}
	return []byte(d.raw), nil
}

// UnmarshalJSON captures the raw document, re-validating through NewJSON.
func (d *JSON) UnmarshalJSON(data []byte) error {
	parsed, err := NewJSON(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer for storage in JSON/JSONB columns.
func (d JSON) Value() (driver.Value, error) {
	if d.raw == "" {
		return nil, fmt.Errorf("%w: empty document", ErrMalformed)
	}
	return d.raw, nil
}

// Scan implements sql.Scanner. It accepts string and []byte column
// values and re-validates them.
func (d *JSON) Scan(src any) error {
	switch v := src.(type) {
	case string:
		parsed, err := NewJSON(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := NewJSON(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("rawdoc: cannot scan %T into JSON", src)
	}
}
