//go:build !linux

package touch

import (
	"context"
	"log/slog"
)

// Driver is unavailable off linux.
type Driver struct{}

func Open(string, float64, float64, *slog.Logger) (*Driver, error) { return nil, ErrUnsupported }

func (*Driver) Calibrate(Calibration) {}
func (*Driver) Events() <-chan Event  { return nil }
func (*Driver) Running() bool         { return false }
func (*Driver) Dropped() int64        { return 0 }
func (*Driver) Start(context.Context) {}
func (*Driver) Close() error          { return nil }
