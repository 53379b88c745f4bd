// Package pagingcarousel provides a horizontally paged container with a
// synchronized carousel navigation bar, rendered with SDL for embedded Linux
// handhelds and desktops alike.
//
// The navigation bar shows one title per page. As the pages scroll, titles
// slide between their per-page positions and fade with distance from the
// center; tapping a title scrolls to its page. Titles can carry numeric
// badges.
package pagingcarousel

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/config"
	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/constants"
	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/internal"
	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/platform/cannoli"
)

// Options configures framework initialization.
type Options struct {
	WindowTitle     string                 // Window title displayed in windowed mode
	WindowOptions   internal.WindowOptions // SDL window flags and size; zero uses the config or defaults
	Config          *config.Config         // Theme, window and input settings; nil uses config.Default
	IsCannoli       bool                   // Use the Cannoli theme instead of the configured one
	LogPath         string                 // Full path for the log file including filename
	FlipFaceButtons bool                   // Use direct face button mapping (A=A, B=B)
}

// Init initializes SDL, the theme, fonts, input and, when configured, the
// evdev touchscreen. It must be called before running a Container.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if raw := os.Getenv(constants.LogLevelEnvVar); raw != "" {
		level, ok := internal.ParseLevel(raw)
		if !ok {
			internal.GetInternalLogger().Warn("Unknown log level", "value", raw)
		}
		internal.SetInternalLogLevel(level)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	cfg := config.Default()
	if options.Config != nil {
		cfg = *options.Config
	}

	internal.SetFlipFaceButtons(options.FlipFaceButtons)

	if options.IsCannoli {
		internal.SetTheme(cannoli.InitCannoliTheme(cannoli.DefaultFontPath))
	} else {
		internal.SetTheme(internal.ThemeFromConfig(cfg.Theme))
	}

	title := options.WindowTitle
	if title == "" {
		title = cfg.Window.Title
	}

	winOpts := options.WindowOptions
	if winOpts.IsZero() {
		winOpts = internal.WindowOptionsFromConfig(cfg.Window)
	}

	if err := internal.Init(title, winOpts); err != nil {
		return NewInfrastructureError("init", err)
	}

	touchDevice := cfg.Input.TouchDevice
	if env := os.Getenv(constants.TouchDeviceEnvVar); env != "" {
		touchDevice = env
	}
	if touchDevice != "" {
		if err := internal.InitTouch(touchDevice); err != nil {
			internal.GetInternalLogger().Warn("Touchscreen unavailable", "device", touchDevice, "error", err)
		}
	}

	return nil
}

// Close releases all SDL resources and shuts down the framework.
func Close() {
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetInternalLogLevel sets the level of the framework's own logger.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}

// WindowOptions re-exports the window configuration type.
type WindowOptions = internal.WindowOptions

func mustInitialized(op string) (*internal.Window, error) {
	window := internal.GetWindow()
	if window == nil {
		return nil, NewInfrastructureError(op, fmt.Errorf("framework not initialized; call Init first"))
	}
	return window, nil
}
