package internal

import (
	"os"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/constants"
)

// stickThreshold is how far an analog stick must travel to count as a d-pad press.
const stickThreshold = 16000

// Event is a virtual button press or release.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
	Repeat  bool // keyboard auto-repeat
}

// InputProcessor maps keyboard, game controller and analog stick events onto
// virtual buttons.
type InputProcessor struct {
	flipFaceButtons bool
	controllers     map[sdl.JoystickID]*sdl.GameController
	axisHeld        map[sdl.GameControllerAxis]constants.VirtualButton
}

var (
	processor       *InputProcessor
	flipFaceButtons bool
)

// SetFlipFaceButtons selects direct face button mapping (A=A, B=B) instead of
// the default Nintendo-style swap. Call before Init.
func SetFlipFaceButtons(flip bool) {
	flipFaceButtons = flip
}

func InitInputProcessor() {
	processor = &InputProcessor{
		flipFaceButtons: flipFaceButtons || os.Getenv(constants.FlipButtonsEnvVar) != "",
		controllers:     make(map[sdl.JoystickID]*sdl.GameController),
		axisHeld:        make(map[sdl.GameControllerAxis]constants.VirtualButton),
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		processor.openController(i)
	}
}

func GetInputProcessor() *InputProcessor {
	if processor == nil {
		InitInputProcessor()
	}
	return processor
}

func (p *InputProcessor) openController(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	gc := sdl.GameControllerOpen(index)
	if gc == nil {
		GetInternalLogger().Warn("Failed to open game controller", "index", index, "error", sdl.GetError())
		return
	}
	id := gc.Joystick().InstanceID()
	p.controllers[id] = gc
	GetInternalLogger().Debug("Opened game controller", "index", index, "name", gc.Name())
}

// CloseAllControllers releases every opened game controller.
func CloseAllControllers() {
	if processor == nil {
		return
	}
	for id, gc := range processor.controllers {
		gc.Close()
		delete(processor.controllers, id)
	}
}

// ProcessSDLEvent translates an SDL event. It returns nil for events that do
// not map to a virtual button.
func (p *InputProcessor) ProcessSDLEvent(event sdl.Event) *Event {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		button := KeyToButton(e.Keysym.Sym)
		if button == constants.VirtualButtonUnassigned {
			return nil
		}
		return &Event{Button: button, Pressed: e.State == sdl.PRESSED, Repeat: e.Repeat != 0}

	case *sdl.ControllerButtonEvent:
		button := ControllerButtonToButton(sdl.GameControllerButton(e.Button), p.flipFaceButtons)
		if button == constants.VirtualButtonUnassigned {
			return nil
		}
		return &Event{Button: button, Pressed: e.State == sdl.PRESSED}

	case *sdl.ControllerAxisEvent:
		return p.processAxis(sdl.GameControllerAxis(e.Axis), e.Value)

	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			p.openController(int(e.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			if gc, ok := p.controllers[e.Which]; ok {
				gc.Close()
				delete(p.controllers, e.Which)
			}
		}
	}
	return nil
}

func (p *InputProcessor) processAxis(axis sdl.GameControllerAxis, value int16) *Event {
	var negative, positive constants.VirtualButton
	switch axis {
	case sdl.CONTROLLER_AXIS_LEFTX:
		negative, positive = constants.VirtualButtonLeft, constants.VirtualButtonRight
	case sdl.CONTROLLER_AXIS_LEFTY:
		negative, positive = constants.VirtualButtonUp, constants.VirtualButtonDown
	default:
		return nil
	}

	next := constants.VirtualButtonUnassigned
	switch {
	case value <= -stickThreshold:
		next = negative
	case value >= stickThreshold:
		next = positive
	}

	prev := p.axisHeld[axis]
	if next == prev {
		return nil
	}
	p.axisHeld[axis] = next

	// A stick swinging straight across releases first; the press arrives on
	// the next motion event.
	if prev != constants.VirtualButtonUnassigned {
		return &Event{Button: prev, Pressed: false}
	}
	return &Event{Button: next, Pressed: true}
}

// KeyToButton maps a keyboard key to its virtual button.
func KeyToButton(key sdl.Keycode) constants.VirtualButton {
	switch key {
	case sdl.K_LEFT, sdl.K_a:
		return constants.VirtualButtonLeft
	case sdl.K_RIGHT, sdl.K_d:
		return constants.VirtualButtonRight
	case sdl.K_UP, sdl.K_w:
		return constants.VirtualButtonUp
	case sdl.K_DOWN, sdl.K_s:
		return constants.VirtualButtonDown
	case sdl.K_RETURN, sdl.K_SPACE:
		return constants.VirtualButtonA
	case sdl.K_ESCAPE, sdl.K_BACKSPACE:
		return constants.VirtualButtonB
	case sdl.K_q, sdl.K_PAGEUP:
		return constants.VirtualButtonL1
	case sdl.K_e, sdl.K_PAGEDOWN:
		return constants.VirtualButtonR1
	case sdl.K_TAB:
		return constants.VirtualButtonStart
	case sdl.K_RSHIFT:
		return constants.VirtualButtonSelect
	case sdl.K_m:
		return constants.VirtualButtonMenu
	default:
		return constants.VirtualButtonUnassigned
	}
}

// ControllerButtonToButton maps a game controller button. SDL names face
// buttons by position (A is south); handhelds label the east button A, so
// the two are swapped unless flip is set.
func ControllerButtonToButton(b sdl.GameControllerButton, flip bool) constants.VirtualButton {
	switch b {
	case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
		return constants.VirtualButtonLeft
	case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
		return constants.VirtualButtonRight
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		return constants.VirtualButtonUp
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		return constants.VirtualButtonDown
	case sdl.CONTROLLER_BUTTON_A:
		if flip {
			return constants.VirtualButtonA
		}
		return constants.VirtualButtonB
	case sdl.CONTROLLER_BUTTON_B:
		if flip {
			return constants.VirtualButtonB
		}
		return constants.VirtualButtonA
	case sdl.CONTROLLER_BUTTON_LEFTSHOULDER:
		return constants.VirtualButtonL1
	case sdl.CONTROLLER_BUTTON_RIGHTSHOULDER:
		return constants.VirtualButtonR1
	case sdl.CONTROLLER_BUTTON_START:
		return constants.VirtualButtonStart
	case sdl.CONTROLLER_BUTTON_BACK:
		return constants.VirtualButtonSelect
	case sdl.CONTROLLER_BUTTON_GUIDE:
		return constants.VirtualButtonMenu
	default:
		return constants.VirtualButtonUnassigned
	}
}
