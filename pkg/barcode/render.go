package barcode

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"

	boombuler "github.com/boombuler/barcode"
	"github.com/boombuler/barcode/ean"

	"github.com/dmitrymomot/valuekit/pkg/productcode"
)

// Error variables for barcode rendering
var (
	// ErrUnsupportedSymbology is returned for code variants that have no
	// renderable symbology (EAN-14, UPC-E).
	ErrUnsupportedSymbology = errors.New("no barcode symbology for this code type")
	// ErrRenderFailed is returned when the underlying library cannot encode
	// or scale the barcode.
	ErrRenderFailed = errors.New("failed to render barcode")
)

// Default pixel dimensions of a rendered EAN symbol.
const (
	defaultWidth  = 285
	defaultHeight = 120
)

// symbologyDigits maps a product code to the digit string handed to the EAN
// encoder. UPC-A is the EAN-13 with a leading zero; add-on variants render
// their base code.
func symbologyDigits(code productcode.Code) (string, error) {
	switch c := code.(type) {
	case productcode.EAN8:
		return c.Digits(), nil
	case productcode.EAN13:
		return c.Digits(), nil
	case productcode.ISBN:
		return c.Digits(), nil
	case productcode.UPCA:
		return "0" + c.Digits(), nil
	case productcode.EAN8P2:
		return c.Base().Digits(), nil
	case productcode.EAN8P5:
		return c.Base().Digits(), nil
	case productcode.EAN13P2:
		return c.Base().Digits(), nil
	case productcode.EAN13P5:
		return c.Base().Digits(), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedSymbology, code)
	}
}

// Render draws code as a barcode image scaled to width x height pixels.
// Non-positive dimensions fall back to the 285x120 default.
func Render(code productcode.Code, width, height int) (image.Image, error) {
	digits, err := symbologyDigits(code)
	if err != nil {
		return nil, err
	}
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	symbol, err := ean.Encode(digits)
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}
	scaled, err := boombuler.Scale(symbol, width, height)
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}
	return scaled, nil
}

// PNG renders code and returns the image as PNG bytes.
func PNG(code productcode.Code, width, height int) ([]byte, error) {
	img, err := Render(code, width, height)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}
	return buf.Bytes(), nil
}

// Base64Image renders code and returns a base64 encoded PNG data URI.
//
// Usage:
//
//	dataURI, err := barcode.Base64Image(code, 285, 120)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// And then use the string in an HTML template like this:
//
//	<img src="{{.Barcode}}">
func Base64Image(code productcode.Code, width, height int) (string, error) {
	data, err := PNG(code, width, height)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(data)), nil
}
