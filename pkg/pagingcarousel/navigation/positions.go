package navigation

import "math"

// offscreenFactor pushes non-neighbouring items this many of their own widths past the edge.
const offscreenFactor = 1.5

// ComputePositions builds the position table for items of the given widths
// laid out in a bar viewWidth wide. The result is indexed [item][page]: for
// each page i, item i is centered, its direct neighbours sit beside it, and
// every other item is parked off-screen. The table is always len(widths)
// squared and fully populated.
func ComputePositions(widths []float64, viewWidth float64, s Settings) [][]float64 {
	n := len(widths)
	table := make([][]float64, n)
	for k := range table {
		table[k] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		centerX := (viewWidth - widths[i]) / 2
		centerMaxX := centerX + widths[i]

		for k := 0; k < n; k++ {
			switch {
			case k < i-1:
				table[k][i] = -(widths[k] * offscreenFactor)
			case k == i-1:
				table[k][i] = math.Min(s.MaximumEdgePadding,
					centerX-widths[k]-s.MinimumInterItemPadding)
			case k == i:
				table[k][i] = centerX
			case k == i+1:
				table[k][i] = math.Max(viewWidth-widths[k]-s.MaximumEdgePadding,
					centerMaxX+s.MinimumInterItemPadding)
			default:
				table[k][i] = viewWidth + widths[i]*offscreenFactor
			}
		}
	}

	return table
}

// PageSpan resolves a scroll offset into the two pages it lies between and
// the fraction travelled past the left one. Both pages are clamped into
// [0, count-1]. A zero count or viewport yields (0, 0, 0).
func PageSpan(offset, viewportWidth float64, count int) (left, right int, fraction float64) {
	if count <= 0 || viewportWidth <= 0 {
		return 0, 0, 0
	}

	page := math.Min(math.Max(0, offset/viewportWidth), float64(count-1))
	left = int(math.Floor(page))
	right = int(math.Ceil(page))

	past := offset - math.Floor(offset/viewportWidth)*viewportWidth
	fraction = past / viewportWidth
	return left, right, fraction
}

// Opacity fades an item by its distance from the bar's center: full opacity
// at the center, minOpacity at maxDistance, clamped into [0, 1].
func Opacity(distance, maxDistance, minOpacity float64) float64 {
	if maxDistance <= 0 {
		return 1
	}
	o := 1 - (1-minOpacity)*(distance/maxDistance)
	return math.Min(1, math.Max(0, o))
}
