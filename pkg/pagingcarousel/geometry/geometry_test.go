package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_InsetNegativeGrows(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 40, H: 20}
	grown := r.Inset(Insets{Top: -20, Bottom: -20, Left: -6, Right: -6})

	assert.Equal(t, Rect{X: 4, Y: -10, W: 52, H: 60}, grown)
	assert.True(t, grown.Contains(Point{X: 5, Y: -5}))
	assert.False(t, r.Contains(Point{X: 5, Y: -5}))
}

func TestRect_InsetNeverNegativeSize(t *testing.T) {
	r := Rect{W: 10, H: 10}.Inset(UniformInsets(8))
	assert.Equal(t, 0.0, r.W)
	assert.Equal(t, 0.0, r.H)
}

func TestRect_ContainsEdges(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, r.Contains(Point{X: 0, Y: 0}))
	assert.False(t, r.Contains(Point{X: 10, Y: 5}))
	assert.False(t, r.Contains(Point{X: 5, Y: 10}))
}

func TestRect_ScaledAboutCenter(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 100, H: 40}.ScaledAboutCenter(0.9)
	assert.InDelta(t, 5.0, r.X, 1e-9)
	assert.InDelta(t, 2.0, r.Y, 1e-9)
	assert.InDelta(t, 90.0, r.W, 1e-9)
	assert.InDelta(t, 36.0, r.H, 1e-9)
}

func TestSize_IsEmpty(t *testing.T) {
	assert.True(t, Size{}.IsEmpty())
	assert.True(t, Size{Width: 320}.IsEmpty())
	assert.False(t, Size{Width: 320, Height: 480}.IsEmpty())
}
