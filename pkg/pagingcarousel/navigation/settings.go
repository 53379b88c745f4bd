package navigation

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/button"
)

// ErrInvalidSettings is wrapped by every Settings.Validate failure.
var ErrInvalidSettings = errors.New("invalid navigation settings")

// Settings are the layout knobs of the navigation bar.
type Settings struct {
	MinimumInterItemPadding float64 // Minimum gap between the centered item and its neighbours
	MaximumEdgePadding      float64 // Edge padding used when there is room beyond the minimum gap
	MinimumOpacity          float64 // Opacity of an item half a view width from center
	MaxTitleCharacters      int     // Titles longer than this are truncated
	TruncatedCharacterCount int     // Characters kept before the ellipsis
	BadgeHeight             float64
	MinimumBadgeWidth       float64
	Height                  float64 // Intrinsic height of the bar
	BorderHeight            float64 // Bottom border thickness
	BadgeTopOffset          float64 // Badge top relative to the title's top
	VerticalHitSlop         float64 // Extra touch area above and below each title
	BadgeOverflowText       string  // Text shown for counts above 99
}

// DefaultSettings returns the stock configuration.
func DefaultSettings() Settings {
	return Settings{
		MinimumInterItemPadding: 12,
		MaximumEdgePadding:      14,
		MinimumOpacity:          0.25,
		MaxTitleCharacters:      15,
		TruncatedCharacterCount: 7,
		BadgeHeight:             18,
		MinimumBadgeWidth:       20,
		Height:                  44,
		BorderHeight:            1,
		BadgeTopOffset:          6.5,
		VerticalHitSlop:         20,
		BadgeOverflowText:       button.DefaultOverflowText,
	}
}

// Validate checks the settings for values the layout cannot honor.
func (s Settings) Validate() error {
	switch {
	case s.MinimumOpacity < 0 || s.MinimumOpacity > 1:
		return fmt.Errorf("%w: minimum opacity %v outside [0, 1]", ErrInvalidSettings, s.MinimumOpacity)
	case s.MinimumInterItemPadding < 0:
		return fmt.Errorf("%w: negative inter-item padding %v", ErrInvalidSettings, s.MinimumInterItemPadding)
	case s.MaximumEdgePadding < 0:
		return fmt.Errorf("%w: negative edge padding %v", ErrInvalidSettings, s.MaximumEdgePadding)
	case s.MaxTitleCharacters < 1:
		return fmt.Errorf("%w: max title characters must be positive, got %d", ErrInvalidSettings, s.MaxTitleCharacters)
	case s.TruncatedCharacterCount < 0 || s.TruncatedCharacterCount > s.MaxTitleCharacters:
		return fmt.Errorf("%w: truncated character count %d not in [0, %d]",
			ErrInvalidSettings, s.TruncatedCharacterCount, s.MaxTitleCharacters)
	case s.BadgeHeight <= 0:
		return fmt.Errorf("%w: badge height must be positive, got %v", ErrInvalidSettings, s.BadgeHeight)
	case s.MinimumBadgeWidth <= 0:
		return fmt.Errorf("%w: minimum badge width must be positive, got %v", ErrInvalidSettings, s.MinimumBadgeWidth)
	case s.Height <= 0:
		return fmt.Errorf("%w: height must be positive, got %v", ErrInvalidSettings, s.Height)
	}
	return nil
}

func (s Settings) badgeStyle(item Item) button.BadgeStyle {
	return button.BadgeStyle{
		Height:       s.BadgeHeight,
		MinimumWidth: s.MinimumBadgeWidth,
		EdgeOffset:   item.BadgeOffsetFromEdge,
		TopOffset:    s.BadgeTopOffset,
		OverflowText: s.BadgeOverflowText,
	}
}
