// Package barcode renders product codes as scannable barcode images, either
// as image.Image values, raw PNG bytes, or data-URI strings that can be
// embedded directly into HTML pages.
//
// The package is a thin wrapper around github.com/boombuler/barcode that
// maps each product code variant to the symbology the upstream library
// supports, adds sensible default dimensions, and provides convenient
// helpers for web applications.
//
// EAN-8, EAN-13 and ISBN render natively; UPC-A renders as its EAN-13
// equivalent with a leading zero; the add-on variants render their base
// code, since add-on symbols are not supported upstream. EAN-14 and UPC-E
// have no supported symbology and return ErrUnsupportedSymbology.
//
// # Usage
//
//	import "github.com/dmitrymomot/valuekit/pkg/barcode"
//
//	img, err := barcode.Render(productcode.MustEAN13("4006381333931"), 0, 0)
//	if err != nil {
//		// handle error
//	}
//
//	// Create base64 data URI for an <img> tag
//	dataURI, err := barcode.Base64Image(code, 285, 120)
//
// # Error Handling
//
// The functions return well-defined sentinel errors:
//
//   - ErrUnsupportedSymbology – the code variant has no renderable
//     symbology.
//   - ErrRenderFailed         – the underlying library could not encode or
//     scale the barcode.
//
// Wrap your error handling with errors.Is for robust comparisons.
package barcode
