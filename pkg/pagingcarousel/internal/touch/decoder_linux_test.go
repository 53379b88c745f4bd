package touch

import (
	"syscall"
	"testing"

	"github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abs(code evdev.EvCode, v int32) *evdev.InputEvent {
	return &evdev.InputEvent{Type: evdev.EV_ABS, Code: code, Value: v}
}

func key(code evdev.EvCode, v int32) *evdev.InputEvent {
	return &evdev.InputEvent{Type: evdev.EV_KEY, Code: code, Value: v}
}

func syn(usec int) *evdev.InputEvent {
	return &evdev.InputEvent{
		Time: syscall.NsecToTimeval(1700000000*1e9 + int64(usec)*1000),
		Type: evdev.EV_SYN,
		Code: evdev.SYN_REPORT,
	}
}

func feed(d *Decoder, events ...*evdev.InputEvent) []Event {
	var out []Event
	for _, ev := range events {
		if e, ok := d.Feed(ev); ok {
			out = append(out, e)
		}
	}
	return out
}

func TestDecoder_MultiTouchProtocol(t *testing.T) {
	d := NewDecoder(Calibration{MaxX: 1000, MaxY: 1000}, 640, 480)

	got := feed(d,
		abs(evdev.ABS_MT_TRACKING_ID, 7),
		abs(evdev.ABS_MT_POSITION_X, 500),
		abs(evdev.ABS_MT_POSITION_Y, 250),
		syn(0),
		abs(evdev.ABS_MT_POSITION_X, 600),
		syn(16000),
		syn(32000),
		abs(evdev.ABS_MT_TRACKING_ID, -1),
		syn(48000),
	)

	require.Len(t, got, 3)

	assert.Equal(t, Down, got[0].Phase)
	assert.Equal(t, 320.0, got[0].X)
	assert.Equal(t, 120.0, got[0].Y)

	assert.Equal(t, Move, got[1].Phase)
	assert.Equal(t, 384.0, got[1].X)
	assert.Equal(t, int64(16), got[1].At.Sub(got[0].At).Milliseconds())

	assert.Equal(t, Up, got[2].Phase)
	assert.Equal(t, 384.0, got[2].X, "lift reports the last position")
}

func TestDecoder_SingleTouchProtocol(t *testing.T) {
	d := NewDecoder(Calibration{MaxX: 100, MaxY: 100}, 100, 100)

	got := feed(d,
		key(evdev.BTN_TOUCH, 1),
		abs(evdev.ABS_X, 10),
		abs(evdev.ABS_Y, 20),
		syn(0),
		key(evdev.BTN_TOUCH, 0),
		syn(1000),
	)

	require.Len(t, got, 2)
	assert.Equal(t, Down, got[0].Phase)
	assert.Equal(t, 10.0, got[0].X)
	assert.Equal(t, 20.0, got[0].Y)
	assert.Equal(t, Up, got[1].Phase)
}

func TestDecoder_IgnoresSecondarySlots(t *testing.T) {
	d := NewDecoder(Calibration{MaxX: 100, MaxY: 100}, 100, 100)

	got := feed(d,
		abs(evdev.ABS_MT_TRACKING_ID, 1),
		abs(evdev.ABS_MT_POSITION_X, 40),
		syn(0),
		abs(evdev.ABS_MT_SLOT, 1),
		abs(evdev.ABS_MT_TRACKING_ID, 2),
		abs(evdev.ABS_MT_POSITION_X, 90),
		syn(1000),
	)

	require.Len(t, got, 1)
	assert.Equal(t, 40.0, got[0].X)
}
