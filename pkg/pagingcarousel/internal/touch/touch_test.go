package touch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalibration_Map(t *testing.T) {
	cal := Calibration{MinX: 0, MaxX: 4095, MinY: 0, MaxY: 4095}

	x, y := cal.Map(0, 0, 640, 480)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)

	x, y = cal.Map(4095, 4095, 640, 480)
	assert.Equal(t, 640.0, x)
	assert.Equal(t, 480.0, y)

	x, _ = cal.Map(2048, 0, 640, 480)
	assert.InDelta(t, 320, x, 0.1)
}

func TestCalibration_Orientation(t *testing.T) {
	cal := Calibration{MaxX: 100, MaxY: 200, SwapXY: true}
	x, y := cal.Map(50, 25, 100, 200)
	assert.Equal(t, 25.0, x)
	assert.Equal(t, 50.0, y)

	inv := Calibration{MaxX: 100, MaxY: 100, InvertX: true, InvertY: true}
	x, y = inv.Map(10, 90, 100, 100)
	assert.InDelta(t, 90, x, 1e-9)
	assert.InDelta(t, 10, y, 1e-9)
}

func TestCalibration_ClampsAndDegenerateRange(t *testing.T) {
	cal := Calibration{MinX: 100, MaxX: 200, MinY: 5, MaxY: 5}
	x, y := cal.Map(500, 5, 320, 240)
	assert.Equal(t, 320.0, x)
	assert.Equal(t, 0.0, y)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "down", Down.String())
	assert.Equal(t, "move", Move.String())
	assert.Equal(t, "up", Up.String())
	assert.Equal(t, "unknown", Phase(9).String())
}
