// Package constants defines shared constants, types, and configuration values
// used throughout the paging carousel.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read at startup.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"              // DEV enables windowed development mode
	WindowWidthEnvVar  = "WINDOW_WIDTH"             // Window width in development mode
	WindowHeightEnvVar = "WINDOW_HEIGHT"            // Window height in development mode
	LogLevelEnvVar     = "PAGINGCAROUSEL_LOG_LEVEL" // Internal log level: debug, info, warn, error
	LanguageEnvVar     = "PAGINGCAROUSEL_LANG"      // Overrides the configured language
	TouchDeviceEnvVar  = "PAGINGCAROUSEL_TOUCH"     // Overrides the configured evdev touch node
	FlipButtonsEnvVar  = "FLIP_FACE_BUTTONS"        // Any value maps A=A and B=B
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonL1
	VirtualButtonR1
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

var virtualButtonNames = map[VirtualButton]string{
	VirtualButtonUnassigned: "Unassigned",
	VirtualButtonUp:         "Up",
	VirtualButtonDown:       "Down",
	VirtualButtonLeft:       "Left",
	VirtualButtonRight:      "Right",
	VirtualButtonA:          "A",
	VirtualButtonB:          "B",
	VirtualButtonL1:         "L1",
	VirtualButtonR1:         "R1",
	VirtualButtonStart:      "Start",
	VirtualButtonSelect:     "Select",
	VirtualButtonMenu:       "Menu",
}

func (vb VirtualButton) String() string {
	if name, ok := virtualButtonNames[vb]; ok {
		return name
	}
	return "Unknown"
}

// Timing constants.
const (
	FrameInterval     = 16 * time.Millisecond // Target frame time when VSync is unavailable
	DefaultInputDelay = 20 * time.Millisecond // Debounce delay between input events
)
