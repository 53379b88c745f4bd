// Package cannoli provides theming support for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/internal"
)

// DefaultFontPath is where Cannoli installs its UI font.
const DefaultFontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

// InitCannoliTheme creates a carousel theme in Cannoli's teal and white
// palette using the specified font.
func InitCannoliTheme(fontPath string) internal.Theme {
	border := internal.HexToColor(0x000000)
	border.A = 0x40

	return internal.Theme{
		BackgroundColor:      internal.HexToColor(0xFFFFFF),
		NavigationBarColor:   internal.HexToColor(0xFFFFFF),
		TitleColor:           internal.HexToColor(0x000000),
		BadgeBackgroundColor: internal.HexToColor(0x008080),
		BadgeTextColor:       internal.HexToColor(0xFFFFFF),
		BorderColor:          border,
		FontPath:             fontPath,
		TitleFontSize:        22,
		BadgeFontSize:        16,
	}
}
