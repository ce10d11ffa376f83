// Package rawdoc wraps raw JSON and YAML documents in validated value
// types.
//
// A JSON or YAML value holds the normalized text of a document that is
// guaranteed to parse. Construction fails on malformed input, so code
// that receives one of these values can embed, store, or forward the
// document without re-checking it.
//
// # Usage
//
//	doc, err := rawdoc.NewJSON(`{"name": "widget", "qty": 3}`)
//	if err != nil {
//		return err
//	}
//
//	var item struct {
//		Name string `json:"name"`
//		Qty  int    `json:"qty"`
//	}
//	if err := doc.Decode(&item); err != nil {
//		return err
//	}
//
// Both types marshal as their raw document text: JSON embeds verbatim
// into a surrounding JSON document via json.RawMessage semantics, and
// YAML re-emits its parsed node tree.
//
// # Error Handling
//
// Constructors return ErrMalformed wrapped with the parser's diagnostic
// when the input does not parse. Decode surfaces the underlying
// json/yaml unmarshal error unchanged.
package rawdoc
