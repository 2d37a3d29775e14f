// Package barcode renders bin identifiers as Code128 PNG images for
// the printed labels.
package barcode

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"

	bc "github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
)

// Default label image dimensions in pixels.
const (
	Width  = 360
	Height = 120
)

// PNG encodes text as a Code128 barcode scaled to width x height.
func PNG(text string, width, height int) ([]byte, error) {
	if text == "" {
		return nil, errors.New("empty barcode text")
	}
	code, err := code128.Encode(text)
	if err != nil {
		return nil, fmt.Errorf("encode %q: %w", text, err)
	}
	scaled, err := bc.Scale(code, width, height)
	if err != nil {
		return nil, fmt.Errorf("scale: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("png encode: %w", err)
	}
	return buf.Bytes(), nil
}
