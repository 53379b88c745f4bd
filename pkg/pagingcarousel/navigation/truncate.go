package navigation

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Ellipsis is appended to truncated titles.
const Ellipsis = "…"

// TruncateTitle shortens titles longer than maxChars to their first keep
// characters followed by an ellipsis. Characters are grapheme clusters, so
// emoji and combining sequences count once and are never split.
func TruncateTitle(title string, maxChars, keep int) string {
	if uniseg.GraphemeClusterCount(title) <= maxChars {
		return title
	}

	var b strings.Builder
	gr := uniseg.NewGraphemes(title)
	for i := 0; i < keep && gr.Next(); i++ {
		b.WriteString(gr.Str())
	}
	b.WriteString(Ellipsis)
	return b.String()
}
