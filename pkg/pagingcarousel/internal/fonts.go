package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/ttf"
)

// ErrNoFont is returned when neither the theme font nor any fallback opens.
var ErrNoFont = errors.New("no usable font")

// fallbackFontPaths are tried in order when the theme has no font or it fails to open.
var fallbackFontPaths = []string{
	"/mnt/SDCARD/System/fonts/Cannoli.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
}

type fontsByRole struct {
	TitleFont *ttf.Font
	BadgeFont *ttf.Font
	path      string
}

// Fonts holds the fonts loaded by Init.
var Fonts fontsByRole

func initFonts(theme Theme) error {
	candidates := fallbackFontPaths
	if theme.FontPath != "" {
		candidates = append([]string{theme.FontPath}, fallbackFontPaths...)
	}

	var errs []error
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		title, err := ttf.OpenFont(path, theme.TitleFontSize)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		badge, err := ttf.OpenFont(path, theme.BadgeFontSize)
		if err != nil {
			title.Close()
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}

		if path != theme.FontPath {
			GetInternalLogger().Info("Using fallback font", "path", path, "requested", theme.FontPath)
		}
		Fonts = fontsByRole{TitleFont: title, BadgeFont: badge, path: path}
		return nil
	}

	if len(errs) == 0 {
		return fmt.Errorf("%w: none of %v exist", ErrNoFont, candidates)
	}
	return fmt.Errorf("%w: %w", ErrNoFont, errors.Join(errs...))
}

func closeFonts() {
	if Fonts.TitleFont != nil {
		Fonts.TitleFont.Close()
	}
	if Fonts.BadgeFont != nil {
		Fonts.BadgeFont.Close()
	}
	Fonts = fontsByRole{}
}

// FontMeasurer measures text with an SDL_ttf font.
type FontMeasurer struct {
	Font *ttf.Font
}

// MeasureText returns the rendered size of text in pixels.
func (m FontMeasurer) MeasureText(text string) (float64, float64) {
	if m.Font == nil || text == "" {
		if m.Font != nil {
			return 0, float64(m.Font.Height())
		}
		return 0, 0
	}
	w, h, err := m.Font.SizeUTF8(text)
	if err != nil {
		GetInternalLogger().Warn("Failed to measure text", "text", text, "error", err)
		return 0, float64(m.Font.Height())
	}
	return float64(w), float64(h)
}
