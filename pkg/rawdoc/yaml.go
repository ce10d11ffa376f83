package rawdoc

import (
	"database/sql/driver"
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAML holds a validated YAML document as its source text. The zero
// value is not a valid document; create values with NewYAML.
type YAML struct {
	raw string
}

// NewYAML validates src as a single YAML document. Empty input and
// comment-only input are rejected.
func NewYAML(src string) (YAML, error) {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(src), &node); err != nil {
		return YAML{}, fmt.Errorf("%w: %s", ErrMalformed, err)
	}
	if node.Kind == 0 {
		return YAML{}, fmt.Errorf("%w: empty document", ErrMalformed)
	}
	return YAML{raw: src}, nil
}

// MustYAML is like NewYAML but panics on malformed input. Intended for
// document literals known valid at compile time.
func MustYAML(src string) YAML {
	d, err := NewYAML(src)
	if err != nil {
		panic(err)
	}
	return d
}

// String returns the document source text.
func (d YAML) String() string {
	return d.raw
}

// IsZero reports whether d holds no document.
func (d YAML) IsZero() bool {
	return d.raw == ""
}

// Decode unmarshals the document into out.
func (d YAML) Decode(out any) error {
	return yaml.Unmarshal([]byte(d.raw), out)
}

// MarshalYAML embeds the document's node tree into the surrounding
// output, so the document nests structurally rather than as a string.
func (d YAML) MarshalYAML() (any, error) {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(d.raw), &node); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformed, err)
	}
	// Unwrap the document node so the content nests cleanly inside a
	// surrounding document.
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		return node.Content[0], nil
	}
	return &node, nil
}

// UnmarshalYAML captures the node subtree as a standalone document.
func (d *YAML) UnmarshalYAML(value *yaml.Node) error {
	out, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrMalformed, err)
	}
	parsed, err := NewYAML(string(out))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer, storing the document source text.
func (d YAML) Value() (driver.Value, error) {
	if d.raw == "" {
		return nil, fmt.Errorf("%w: empty document", ErrMalformed)
	}
	return d.raw, nil
}

// Scan implements sql.Scanner. It accepts string and []byte column
// values and re-validates them.
func (d *YAML) Scan(src any) error {
	switch v := src.(type) {
	case string:
		parsed, err := NewYAML(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := NewYAML(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("rawdoc: cannot scan %T into YAML", src)
	}
}
