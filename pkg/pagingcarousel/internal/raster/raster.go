// Package raster draws the vector shapes of the navigation bar into RGBA
// images that the renderer uploads as textures.
package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// ErrEmptySize is returned when asked to rasterize into a zero-area image.
var ErrEmptySize = errors.New("raster: empty size")

// SVG rasterizes SVG source scaled to fill a w by h image.
func SVG(data []byte, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptySize
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.StrictErrorMode)
	if err != nil {
		return nil, fmt.Errorf("raster: parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)

	return img, nil
}

// TintedSVG rasterizes an icon and recolors every opaque pixel with c,
// keeping the icon's coverage as alpha.
func TintedSVG(data []byte, w, h int, c color.RGBA) (*image.RGBA, error) {
	img, err := SVG(data, w, h)
	if err != nil {
		return nil, err
	}

	for i := 0; i < len(img.Pix); i += 4 {
		a := uint32(img.Pix[i+3])
		img.Pix[i+0] = uint8(uint32(c.R) * a / 0xff)
		img.Pix[i+1] = uint8(uint32(c.G) * a / 0xff)
		img.Pix[i+2] = uint8(uint32(c.B) * a / 0xff)
	}
	return img, nil
}

// Pill draws a horizontal capsule: a rectangle whose short ends are
// semicircles. Narrow pills degrade to a circle.
func Pill(w, h int, fill color.RGBA) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptySize
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	filler := rasterx.NewFiller(w, h, scanner)
	filler.SetColor(fill)

	r := float64(min(w, h)) / 2
	rasterx.AddRoundRect(0, 0, float64(w), float64(h), r, r, 0, rasterx.RoundGap, filler)
	filler.Draw()

	return img, nil
}

// PillSVG returns SVG source for the same capsule Pill draws.
func PillSVG(w, h float64, fill color.RGBA) []byte {
	r := min(w, h) / 2
	return []byte(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+
			`<rect x="0" y="0" width="%g" height="%g" rx="%g" ry="%g" fill="#%02x%02x%02x" fill-opacity="%.3f"/>`+
			`</svg>`,
		w, h, w, h, w, h, r, r, fill.R, fill.G, fill.B, float64(fill.A)/255,
	))
}
