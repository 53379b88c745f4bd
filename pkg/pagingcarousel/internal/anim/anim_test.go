package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTween_ReachesTarget(t *testing.T) {
	tw := NewTween(0)
	tw.Animate(1, 250*time.Millisecond, EaseIn)

	assert.True(t, tw.Running())
	assert.False(t, tw.Step(100*time.Millisecond))
	assert.Greater(t, tw.Value(), 0.0)
	assert.Less(t, tw.Value(), 1.0)

	assert.True(t, tw.Step(200*time.Millisecond))
	assert.Equal(t, 1.0, tw.Value())
	assert.False(t, tw.Running())
	assert.False(t, tw.Step(16*time.Millisecond))
}

func TestTween_ZeroDurationIsImmediate(t *testing.T) {
	tw := NewTween(0.2)
	tw.Animate(1, 0, EaseOut)
	assert.Equal(t, 1.0, tw.Value())
	assert.False(t, tw.Running())
}

func TestTween_RetargetStartsFromCurrentValue(t *testing.T) {
	tw := NewTween(0)
	tw.Animate(100, 100*time.Millisecond, Linear)
	tw.Step(50 * time.Millisecond)
	assert.InDelta(t, 50.0, tw.Value(), 1e-9)

	tw.Animate(0, 100*time.Millisecond, Linear)
	tw.Step(50 * time.Millisecond)
	assert.InDelta(t, 25.0, tw.Value(), 1e-9)
}

func TestTween_Stop(t *testing.T) {
	tw := NewTween(0)
	tw.Animate(10, time.Second, Linear)
	tw.Step(500 * time.Millisecond)
	tw.Stop()
	assert.False(t, tw.Running())
	assert.InDelta(t, 5.0, tw.Value(), 1e-9)
	assert.InDelta(t, 5.0, tw.Target(), 1e-9)
}

func TestEasingEndpoints(t *testing.T) {
	for name, ease := range map[string]Easing{
		"linear":    Linear,
		"easeIn":    EaseIn,
		"easeOut":   EaseOut,
		"easeInOut": EaseInOut,
	} {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 0.0, ease(0), 1e-9)
			assert.InDelta(t, 1.0, ease(1), 1e-9)
		})
	}
}

func TestSpring_ConvergesToTarget(t *testing.T) {
	s := NewSpring(1, 0.55, 400*time.Millisecond)
	s.SetTarget(0.9)

	for range 200 {
		s.Step(16 * time.Millisecond)
	}

	assert.True(t, s.Settled())
	assert.Equal(t, 0.9, s.Value)
}

func TestSpring_Overshoots(t *testing.T) {
	s := NewSpring(1, 0.55, 400*time.Millisecond)
	s.SetTarget(0.9)

	lowest := s.Value
	for range 60 {
		s.Step(16 * time.Millisecond)
		lowest = min(lowest, s.Value)
	}

	assert.Less(t, lowest, 0.9)
}
