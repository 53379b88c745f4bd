package config

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// HexColor is an opaque color written as "#rrggbb" or "#rgb".
type HexColor struct {
	color.RGBA
}

// ParseHex parses a hex color string.
func ParseHex(s string) (HexColor, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return HexColor{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.Clamped().RGB255()
	return HexColor{color.RGBA{R: r, G: g, B: b, A: 0xff}}, nil
}

func mustHex(s string) HexColor {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (h *HexColor) UnmarshalText(text []byte) error {
	c, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*h = c
	return nil
}

func (h HexColor) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// String formats the color as "#rrggbb".
func (h HexColor) String() string {
	return colorful.Color{
		R: float64(h.R) / 255,
		G: float64(h.G) / 255,
		B: float64(h.B) / 255,
	}.Hex()
}

// WithAlpha returns the color with alpha a in [0, 1].
func (h HexColor) WithAlpha(a float64) color.RGBA {
	c := h.RGBA
	c.A = uint8(min(max(a, 0), 1)*255 + 0.5)
	return c
}
