package internal

import (
	"context"

	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/internal/touch"
)

var (
	touchDriver *touch.Driver
	touchCancel context.CancelFunc
)

// InitTouch starts reading the evdev touchscreen at path, mapping it onto
// the current window size.
func InitTouch(path string) error {
	closeTouch()

	w, h := window.Size()
	driver, err := touch.Open(path, float64(w), float64(h), GetInternalLogger())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	driver.Start(ctx)

	touchDriver, touchCancel = driver, cancel
	return nil
}

// TouchEvents returns the touchscreen channel, or nil without a device.
func TouchEvents() <-chan touch.Event {
	if touchDriver == nil {
		return nil
	}
	return touchDriver.Events()
}

func closeTouch() {
	if touchCancel != nil {
		touchCancel()
		touchCancel = nil
	}
	if touchDriver != nil {
		_ = touchDriver.Close()
		touchDriver = nil
	}
}
