package internal

import (
	"image/color"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/config"
)

// Theme defines the visual appearance of the carousel.
type Theme struct {
	BackgroundColor      sdl.Color // Behind the panes
	NavigationBarColor   sdl.Color // Navigation bar fill
	TitleColor           sdl.Color // Default title color for items without their own
	BadgeBackgroundColor sdl.Color // Default badge pill color
	BadgeTextColor       sdl.Color // Default badge text color
	BorderColor          sdl.Color // Navigation bar bottom border, alpha included
	FontPath             string    // Path to the UI font
	TitleFontSize        int
	BadgeFontSize        int
	BackgroundImagePath  string // Optional image drawn behind the panes
}

var currentTheme = ThemeFromConfig(config.Default().Theme)

// SetTheme sets the active theme for the framework.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// ThemeFromConfig builds a theme from the [theme] configuration section.
func ThemeFromConfig(tc config.ThemeConfig) Theme {
	return Theme{
		BackgroundColor:      ToSDLColor(tc.Background.RGBA),
		NavigationBarColor:   ToSDLColor(tc.NavigationBar.RGBA),
		TitleColor:           ToSDLColor(tc.Title.RGBA),
		BadgeBackgroundColor: ToSDLColor(tc.BadgeBackground.RGBA),
		BadgeTextColor:       ToSDLColor(tc.BadgeText.RGBA),
		BorderColor:          ToSDLColor(tc.Border.WithAlpha(tc.BorderAlpha)),
		FontPath:             tc.FontPath,
		TitleFontSize:        tc.TitleFontSize,
		BadgeFontSize:        tc.BadgeFontSize,
	}
}

// HexToColor converts a 0xRRGGBB value into an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 0xff,
	}
}

func ToSDLColor(c color.RGBA) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func ToRGBA(c sdl.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// IsZeroColor reports whether c is the zero value, which items use to mean
// "theme default".
func IsZeroColor(c color.RGBA) bool {
	return c == color.RGBA{}
}
