// Package config loads the carousel's TOML configuration: navigation layout
// knobs, theme colors and fonts, localization and input devices.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/navigation"
)

// FileName is the configuration file looked up by LoadDefault.
const FileName = "config.toml"

var (
	// ErrInvalidConfig is wrapped by every validation failure.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrUnknownKey is wrapped when the file contains keys that map to nothing.
	ErrUnknownKey = errors.New("unknown configuration key")
)

type Config struct {
	Window     WindowConfig     `toml:"window"`
	Navigation NavigationConfig `toml:"navigation"`
	Theme      ThemeConfig      `toml:"theme"`
	Locale     LocaleConfig     `toml:"locale"`
	Input      InputConfig      `toml:"input"`
}

type WindowConfig struct {
	Title      string `toml:"title"`
	Width      int32  `toml:"width"`  // 0 uses the display width
	Height     int32  `toml:"height"` // 0 uses the display height
	Fullscreen bool   `toml:"fullscreen"`
	Resizable  bool   `toml:"resizable"`
}

// NavigationConfig mirrors navigation.Settings.
type NavigationConfig struct {
	MinimumInterItemPadding float64 `toml:"minimum_inter_item_padding"`
	MaximumEdgePadding      float64 `toml:"maximum_edge_padding"`
	MinimumOpacity          float64 `toml:"minimum_opacity"`
	MaxTitleCharacters      int     `toml:"max_title_characters"`
	TruncatedCharacterCount int     `toml:"truncated_character_count"`
	BadgeHeight             float64 `toml:"badge_height"`
	MinimumBadgeWidth       float64 `toml:"minimum_badge_width"`
	Height                  float64 `toml:"height"`
	BorderHeight            float64 `toml:"border_height"`
	BadgeTopOffset          float64 `toml:"badge_top_offset"`
	VerticalHitSlop         float64 `toml:"vertical_hit_slop"`
	BadgeOverflowText       string  `toml:"badge_overflow_text"`
}

type ThemeConfig struct {
	Background      HexColor `toml:"background"`
	NavigationBar   HexColor `toml:"navigation_bar"`
	Title           HexColor `toml:"title"`
	BadgeBackground HexColor `toml:"badge_background"`
	BadgeText       HexColor `toml:"badge_text"`
	Border          HexColor `toml:"border"`
	BorderAlpha     float64  `toml:"border_alpha"` // 0..1
	FontPath        string   `toml:"font_path"`
	TitleFontSize   int      `toml:"title_font_size"`
	BadgeFontSize   int      `toml:"badge_font_size"`
}

type LocaleConfig struct {
	Language     string   `toml:"language"` // BCP 47 tag, e.g. "en-US"
	MessageFiles []string `toml:"message_files"`
}

type InputConfig struct {
	TouchDevice    string        `toml:"touch_device"` // evdev node, e.g. /dev/input/event1
	RepeatDelay    time.Duration `toml:"repeat_delay"`
	RepeatInterval time.Duration `toml:"repeat_interval"`
}

// Default returns the built-in configuration.
func Default() Config {
	s := navigation.DefaultSettings()
	return Config{
		Window: WindowConfig{
			Title: "Paging Carousel",
		},
		Navigation: FromSettings(s),
		Theme: ThemeConfig{
			Background:      mustHex("#000000"),
			NavigationBar:   mustHex("#000000"),
			Title:           mustHex("#ffffff"),
			BadgeBackground: mustHex("#ff3b30"),
			BadgeText:       mustHex("#ffffff"),
			Border:          mustHex("#ffffff"),
			BorderAlpha:     0.25,
			TitleFontSize:   17,
			BadgeFontSize:   13,
		},
		Locale: LocaleConfig{
			Language: "en",
		},
		Input: InputConfig{
			RepeatDelay:    400 * time.Millisecond,
			RepeatInterval: 120 * time.Millisecond,
		},
	}
}

// FromSettings converts navigation settings into their file form.
func FromSettings(s navigation.Settings) NavigationConfig {
	return NavigationConfig{
		MinimumInterItemPadding: s.MinimumInterItemPadding,
		MaximumEdgePadding:      s.MaximumEdgePadding,
		MinimumOpacity:          s.MinimumOpacity,
		MaxTitleCharacters:      s.MaxTitleCharacters,
		TruncatedCharacterCount: s.TruncatedCharacterCount,
		BadgeHeight:             s.BadgeHeight,
		MinimumBadgeWidth:       s.MinimumBadgeWidth,
		Height:                  s.Height,
		BorderHeight:            s.BorderHeight,
		BadgeTopOffset:          s.BadgeTopOffset,
		VerticalHitSlop:         s.VerticalHitSlop,
		BadgeOverflowText:       s.BadgeOverflowText,
	}
}

// Settings converts the section into navigation settings.
func (c NavigationConfig) Settings() navigation.Settings {
	return navigation.Settings{
		MinimumInterItemPadding: c.MinimumInterItemPadding,
		MaximumEdgePadding:      c.MaximumEdgePadding,
		MinimumOpacity:          c.MinimumOpacity,
		MaxTitleCharacters:      c.MaxTitleCharacters,
		TruncatedCharacterCount: c.TruncatedCharacterCount,
		BadgeHeight:             c.BadgeHeight,
		MinimumBadgeWidth:       c.MinimumBadgeWidth,
		Height:                  c.Height,
		BorderHeight:            c.BorderHeight,
		BadgeTopOffset:          c.BadgeTopOffset,
		VerticalHitSlop:         c.VerticalHitSlop,
		BadgeOverflowText:       c.BadgeOverflowText,
	}
}

// Parse decodes TOML over the defaults, so a file only needs the keys it
// changes, and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}

	cfg.Theme.FontPath = expandPath(cfg.Theme.FontPath)
	for i, f := range cfg.Locale.MessageFiles {
		cfg.Locale.MessageFiles[i] = expandPath(f)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the first existing file among Paths, or returns Default
// when there is none. The returned path is empty in the latter case.
func LoadDefault() (Config, string, error) {
	for _, path := range Paths() {
		if _, err := os.Stat(path); err == nil {
			cfg, err := Load(path)
			return cfg, path, err
		}
	}
	return Default(), "", nil
}

// Paths lists candidate configuration files, highest priority first: the
// working directory, then the user configuration directory.
func Paths() []string {
	paths := []string{FileName}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "pagingcarousel", FileName))
	}
	return paths
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Navigation.Settings().Validate(); err != nil {
		return fmt.Errorf("%w: navigation: %w", ErrInvalidConfig, err)
	}

	switch {
	case c.Window.Width < 0 || c.Window.Height < 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Theme.BorderAlpha < 0 || c.Theme.BorderAlpha > 1:
		return fmt.Errorf("%w: theme border_alpha %v outside [0, 1]", ErrInvalidConfig, c.Theme.BorderAlpha)
	case c.Theme.TitleFontSize <= 0 || c.Theme.BadgeFontSize <= 0:
		return fmt.Errorf("%w: font sizes must be positive", ErrInvalidConfig)
	case c.Input.RepeatDelay < 0 || c.Input.RepeatInterval < 0:
		return fmt.Errorf("%w: negative input repeat timing", ErrInvalidConfig)
	}
	return nil
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
