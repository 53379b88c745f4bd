package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/navigation"
)

func TestDefault_MatchesNavigationDefaults(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, navigation.DefaultSettings(), cfg.Navigation.Settings())
	assert.Equal(t, "en", cfg.Locale.Language)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x3b, B: 0x30, A: 0xff}, cfg.Theme.BadgeBackground.RGBA)
}

func TestParse_OverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
[window]
title = "Inbox"
width = 640
height = 480

[navigation]
minimum_opacity = 0.4
max_title_characters = 12
truncated_character_count = 5

[theme]
title = "#0af"
badge_background = "#336699"
font_path = "/mnt/SDCARD/font.ttf"

[locale]
language = "fr"

[input]
touch_device = "/dev/input/event1"
repeat_delay = "250ms"
`))
	require.NoError(t, err)

	assert.Equal(t, "Inbox", cfg.Window.Title)
	assert.Equal(t, int32(640), cfg.Window.Width)
	assert.Equal(t, 0.4, cfg.Navigation.MinimumOpacity)
	assert.Equal(t, 12, cfg.Navigation.MaxTitleCharacters)
	assert.Equal(t, 14.0, cfg.Navigation.MaximumEdgePadding, "unset keys keep their defaults")
	assert.Equal(t, color.RGBA{R: 0x00, G: 0xaa, B: 0xff, A: 0xff}, cfg.Theme.Title.RGBA)
	assert.Equal(t, "#336699", cfg.Theme.BadgeBackground.String())
	assert.Equal(t, "/mnt/SDCARD/font.ttf", cfg.Theme.FontPath)
	assert.Equal(t, "fr", cfg.Locale.Language)
	assert.Equal(t, "/dev/input/event1", cfg.Input.TouchDevice)
	assert.Equal(t, 250*time.Millisecond, cfg.Input.RepeatDelay)
	assert.Equal(t, 120*time.Millisecond, cfg.Input.RepeatInterval)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		target error
	}{
		{name: "opacity out of range", input: "[navigation]\nminimum_opacity = 1.5", target: ErrInvalidConfig},
		{name: "truncation longer than limit", input: "[navigation]\ntruncated_character_count = 40", target: navigation.ErrInvalidSettings},
		{name: "zero badge height", input: "[navigation]\nbadge_height = 0", target: ErrInvalidConfig},
		{name: "unknown key", input: "[navigation]\nbounce = true", target: ErrUnknownKey},
		{name: "negative font size", input: "[theme]\ntitle_font_size = -1", target: ErrInvalidConfig},
		{name: "border alpha", input: "[theme]\nborder_alpha = 2.0", target: ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestParse_BadColorAndSyntax(t *testing.T) {
	_, err := Parse([]byte("[theme]\ntitle = \"chartreuse\""))
	assert.ErrorContains(t, err, "chartreuse")

	_, err = Parse([]byte("[navigation\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("[navigation]\nheight = 50\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50.0, cfg.Navigation.Settings().Height)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestHexColor(t *testing.T) {
	c, err := ParseHex("#FF8000")
	require.NoError(t, err)
	assert.Equal(t, "#ff8000", c.String())

	text, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#ff8000", string(text))

	assert.Equal(t, uint8(64), c.WithAlpha(0.25).A)
	assert.Equal(t, uint8(255), c.WithAlpha(3).A)

	_, err = ParseHex("ff8000")
	assert.Error(t, err)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	assert.Equal(t, filepath.Join(home, "fonts", "ui.ttf"), expandPath("~/fonts/ui.ttf"))
	assert.Equal(t, "/abs/font.ttf", expandPath("/abs/font.ttf"))
	assert.Equal(t, "", expandPath(""))
}
