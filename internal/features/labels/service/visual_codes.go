package service

import (
	"bytes"
	"fmt"
	"html/template"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"net/url"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	qrcode "github.com/skip2/go-qrcode"
)

// Visual code dimensions. The barcode scales at a fixed multiple of its
// module count so the human-readable text below it stays legible at
// 100x150mm print size.
const (
	locationCodeSizePx  = 160
	barcodeModuleScale  = 3
	barcodeHeightPx     = 64
	checkboxSizePx      = 24
	checkboxBorderPx    = 2
	checkboxInsetPx     = 6
	mapsSearchURLPrefix = "https://www.google.com/maps/search/?api=1&query="
)

// locationCode encodes a maps-search URL for the delivery address as a QR
// square. Deterministic for the same query string.
func locationCode(query string) (template.URL, error) {
	if query == "" {
		return "", fmt.Errorf("empty location query")
	}
	target := mapsSearchURLPrefix + url.QueryEscape(query)
	data, err := qrcode.Encode(target, qrcode.Medium, locationCodeSizePx)
	if err != nil {
		return "", fmt.Errorf("encoding location code: %w", err)
	}
	return pngDataURI(data), nil
}

// orderCode encodes the date-prefixed order id as a Code 128 barcode,
// scaled proportionally to its module count.
func orderCode(payload string) (template.URL, error) {
	bc, err := code128.Encode(payload)
	if err != nil {
		return "", fmt.Errorf("encoding order code: %w", err)
	}

	scaled, err := barcode.Scale(bc, bc.Bounds().Dx()*barcodeModuleScale, barcodeHeightPx)
	if err != nil {
		return "", fmt.Errorf("scaling order code: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return "", fmt.Errorf("rasterizing order code: %w", err)
	}
	return pngDataURI(buf.Bytes()), nil
}

// checkboxGlyphs renders the checked and unchecked square bitmaps. They are
// computed once per render call and reused for every boolean field on the
// label.
func checkboxGlyphs() (checked, unchecked template.URL, err error) {
	checked, err = checkboxGlyph(true)
	if err != nil {
		return "", "", err
	}
	unchecked, err = checkboxGlyph(false)
	if err != nil {
		return "", "", err
	}
	return checked, unchecked, nil
}

func checkboxGlyph(filled bool) (template.URL, error) {
	img := image.NewRGBA(image.Rect(0, 0, checkboxSizePx, checkboxSizePx))

	black := image.NewUniform(color.Black)
	draw.Draw(img, img.Bounds(), black, image.Point{}, draw.Src)

	inner := image.Rect(
		checkboxBorderPx, checkboxBorderPx,
		checkboxSizePx-checkboxBorderPx, checkboxSizePx-checkboxBorderPx,
	)
	draw.Draw(img, inner, image.NewUniform(color.White), image.Point{}, draw.Src)

	if filled {
		mark := image.Rect(
			checkboxInsetPx, checkboxInsetPx,
			checkboxSizePx-checkboxInsetPx, checkboxSizePx-checkboxInsetPx,
		)
		draw.Draw(img, mark, black, image.Point{}, draw.Src)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("rasterizing checkbox glyph: %w", err)
	}
	return pngDataURI(buf.Bytes()), nil
}
