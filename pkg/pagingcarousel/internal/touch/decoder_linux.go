package touch

import (
	"time"

	"github.com/holoplot/go-evdev"
)

// Decoder folds raw evdev events into touch Events. It tracks one contact;
// multi-touch slots beyond the first are ignored.
type Decoder struct {
	Calibration Calibration
	Width       float64
	Height      float64

	rawX, rawY  int32
	touching    bool
	wasTouching bool
	moved       bool
	slot        int32
}

// NewDecoder creates a decoder for a width by height window.
func NewDecoder(cal Calibration, width, height float64) *Decoder {
	return &Decoder{Calibration: cal, Width: width, Height: height}
}

// Feed consumes one event. It returns an Event when a SYN_REPORT completes
// a frame that changed the contact.
func (d *Decoder) Feed(ev *evdev.InputEvent) (Event, bool) {
	switch ev.Type {
	case evdev.EV_ABS:
		d.feedAbs(ev.Code, ev.Value)
	case evdev.EV_KEY:
		if ev.Code == evdev.BTN_TOUCH {
			d.touching = ev.Value != 0
		}
	case evdev.EV_SYN:
		if ev.Code == evdev.SYN_REPORT {
			return d.flush(timestamp(ev))
		}
	}
	return Event{}, false
}

func (d *Decoder) feedAbs(code evdev.EvCode, value int32) {
	switch code {
	case evdev.ABS_MT_SLOT:
		d.slot = value
	case evdev.ABS_MT_TRACKING_ID:
		if d.slot == 0 {
			d.touching = value >= 0
		}
	case evdev.ABS_MT_POSITION_X:
		if d.slot == 0 {
			d.rawX, d.moved = value, true
		}
	case evdev.ABS_MT_POSITION_Y:
		if d.slot == 0 {
			d.rawY, d.moved = value, true
		}
	case evdev.ABS_X:
		d.rawX, d.moved = value, true
	case evdev.ABS_Y:
		d.rawY, d.moved = value, true
	}
}

func (d *Decoder) flush(at time.Time) (Event, bool) {
	defer func() {
		d.wasTouching = d.touching
		d.moved = false
	}()

	x, y := d.Calibration.Map(d.rawX, d.rawY, d.Width, d.Height)
	ev := Event{X: x, Y: y, At: at}

	switch {
	case d.touching && !d.wasTouching:
		ev.Phase = Down
	case d.touching && d.moved:
		ev.Phase = Move
	case !d.touching && d.wasTouching:
		ev.Phase = Up
	default:
		return Event{}, false
	}
	return ev, true
}

func timestamp(ev *evdev.InputEvent) time.Time {
	return time.Unix(int64(ev.Time.Sec), int64(ev.Time.Usec)*int64(time.Microsecond))
}
