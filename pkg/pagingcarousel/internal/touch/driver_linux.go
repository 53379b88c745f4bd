package touch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

const eventBuffer = 64

// Driver pumps a touchscreen device into a channel from its own goroutine.
type Driver struct {
	dev     *evdev.InputDevice
	decoder *Decoder
	events  chan Event
	running *atomic.Bool
	dropped *atomic.Int64
	logger  *slog.Logger
}

// Open opens the evdev node at path and calibrates it from the device's
// absolute axis ranges.
func Open(path string, width, height float64, logger *slog.Logger) (*Driver, error) {
	if logger == nil {
		logger = slog.Default()
	}

	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("touch: open %s: %w", path, err)
	}

	cal, err := calibrate(dev)
	if err != nil {
		_ = dev.Close()
		return nil, fmt.Errorf("touch: %s: %w", path, err)
	}

	name, _ := dev.Name()
	logger.Debug("Opened touch device", "path", path, "name", name,
		"x_range", []int32{cal.MinX, cal.MaxX}, "y_range", []int32{cal.MinY, cal.MaxY})

	return &Driver{
		dev:     dev,
		decoder: NewDecoder(cal, width, height),
		events:  make(chan Event, eventBuffer),
		running: atomic.NewBool(false),
		dropped: atomic.NewInt64(0),
		logger:  logger,
	}, nil
}

func calibrate(dev *evdev.InputDevice) (Calibration, error) {
	infos, err := dev.AbsInfos()
	if err != nil {
		return Calibration{}, fmt.Errorf("read axis ranges: %w", err)
	}

	if x, ok := infos[evdev.ABS_MT_POSITION_X]; ok {
		y := infos[evdev.ABS_MT_POSITION_Y]
		return Calibration{MinX: x.Minimum, MaxX: x.Maximum, MinY: y.Minimum, MaxY: y.Maximum}, nil
	}
	if x, ok := infos[evdev.ABS_X]; ok {
		y := infos[evdev.ABS_Y]
		return Calibration{MinX: x.Minimum, MaxX: x.Maximum, MinY: y.Minimum, MaxY: y.Maximum}, nil
	}
	return Calibration{}, errors.New("device reports no absolute axes")
}

// Calibrate overrides the axis mapping, e.g. for rotated panels.
func (d *Driver) Calibrate(cal Calibration) {
	d.decoder.Calibration = cal
}

// Events delivers decoded touches. It is closed when the reader stops.
func (d *Driver) Events() <-chan Event { return d.events }

// Running reports whether the reader goroutine is active.
func (d *Driver) Running() bool { return d.running.Load() }

// Dropped returns how many move events were discarded because the consumer
// fell behind.
func (d *Driver) Dropped() int64 { return d.dropped.Load() }

// Start launches the reader. It stops when ctx is cancelled or the device
// is closed. Calling Start twice is a no-op.
func (d *Driver) Start(ctx context.Context) {
	if !d.running.CompareAndSwap(false, true) {
		return
	}

	go func() {
		<-ctx.Done()
		_ = d.dev.Close()
	}()

	go func() {
		defer close(d.events)
		defer d.running.Store(false)

		for {
			raw, err := d.dev.ReadOne()
			if err != nil {
				if ctx.Err() == nil {
					d.logger.Warn("Touch device read failed", "error", err)
				}
				return
			}

			ev, ok := d.decoder.Feed(raw)
			if !ok {
				continue
			}

			if ev.Phase == Move {
				select {
				case d.events <- ev:
				default:
					d.dropped.Inc()
				}
				continue
			}

			select {
			case d.events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Close releases the device. The reader goroutine exits on its next read.
func (d *Driver) Close() error {
	return d.dev.Close()
}
