// Package productcode provides immutable, checksum-validated value types for
// the GS1/ISBN product code families: EAN-8, EAN-13, EAN-14 (GTIN-14), the
// EAN add-on variants (+2 and +5 digit supplements), UPC-A, UPC-E and
// ISBN-13.
//
// # Architecture
//
// Every code is a small struct wrapping one canonical digit string. The
// string is validated exactly once, at construction time: the raw input is
// trimmed, matched against the variant's format, and the embedded check
// digit is re-computed via package gs1 and compared. A value that exists is
// therefore guaranteed well-formed for its entire lifetime; there is no
// update operation, and no constructor ever returns a partially valid code.
//
// The ten variants form a closed union behind the Code interface, which is
// sealed with an unexported method. Parse sniffs an arbitrary string against
// the known formats in a fixed order (EAN-13, EAN-8, the four add-on
// variants, EAN-14, then UPC-A and UPC-E) and returns the first variant that
// accepts it.
//
// Checksum arithmetic and the country prefix registry live in package gs1 as
// free functions; the types here only compose them.
//
// UPC-E is validated as an 8-digit string with the same weighted sum as
// UPC-A applied to its 7 leading digits. It is not expanded through the
// zero-suppression scheme to the underlying UPC-A, so codes whose compact
// form carries a check digit of the expanded number are rejected. This
// keeps compatibility with data validated by earlier versions of this
// library.
//
// # Usage
//
//	code, err := productcode.NewEAN13("4006381333931")
//	if err != nil {
//		// handle error
//	}
//	code.Countries() // [Germany]
//
//	any, err := productcode.Parse("036000291452") // dispatches to UPCA
//
// # Serialization
//
// Every variant marshals to a bare string equal to its String() form: in
// JSON via encoding.TextMarshaler, in YAML via yaml.Marshaler, and to a
// database column via driver.Valuer. Unmarshaling and scanning re-validate
// through the same constructor path, so a corrupted persisted string fails
// with the same ErrMalformed as direct construction. Nullable columns should
// use a pointer to the code type; scanning SQL NULL into a value is an
// error.
//
// # Error Handling
//
//   - ErrMalformed        – input failed the format or checksum check for
//     the targeted variant; the message names the variant.
//   - ErrNoMatchingFormat – Parse, ParseEAN or ParseUPC exhausted every
//     known format.
//
// Compare with errors.Is.
package productcode
