package navigation

import (
	"image/color"

	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/button"
)

// Item describes one navigation entry. Items are values: to change the tab
// set, build a new slice and pass it to View.SetNavigationItems.
type Item struct {
	Title                string
	TitleColor           color.RGBA
	BadgeAlignment       button.Alignment
	BadgeOffsetFromEdge  float64
	BadgeBackgroundColor color.RGBA
	BadgeTextColor       color.RGBA
	IsHidden             bool
	BadgeCount           int // Must be >= 0
}

// WithBadgeCount returns a copy of the item carrying count.
func (i Item) WithBadgeCount(count int) Item {
	i.BadgeCount = count
	return i
}

// Titles returns the item titles in order.
func Titles(items []Item) []string {
	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = item.Title
	}
	return titles
}

func sameTitles(a, b []Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Title != b[i].Title {
			return false
		}
	}
	return true
}
