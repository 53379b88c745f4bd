package pagingcarousel

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/constants"
	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/geometry"
	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/internal"
	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/internal/touch"
)

// SDL reports synthetic mouse events generated from touches with this id.
const touchMouseID = ^uint32(0)

// Run shows the container full screen until the user confirms a page with
// A or Start, or backs out with B. Backing out, or closing the window,
// returns ErrCancelled.
func (c *Container) Run() (*Result, error) {
	window, err := mustInitialized("run paging container")
	if err != nil {
		return nil, err
	}
	renderer := window.Renderer
	processor := internal.GetInputProcessor()
	logger := internal.GetInternalLogger()

	defer c.ReleaseTextures()
	defer c.TouchCancel()

	c.layoutToWindow(window)
	c.directional.Reset()

	touches := internal.TouchEvents()
	last := time.Now()

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				logger.Debug("Quit requested")
				return nil, ErrCancelled

			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
					c.layoutToWindow(window)
				}

			case *sdl.MouseButtonEvent:
				if e.Which == touchMouseID || e.Button != sdl.BUTTON_LEFT {
					continue
				}
				p := c.windowPoint(window, e.X, e.Y)
				if e.Type == sdl.MOUSEBUTTONDOWN {
					c.TouchDown(p, time.Now())
				} else {
					c.TouchUp(p, time.Now())
				}

			case *sdl.MouseMotionEvent:
				if e.Which == touchMouseID || e.State&sdl.ButtonLMask() == 0 {
					continue
				}
				c.TouchMove(c.windowPoint(window, e.X, e.Y), time.Now())

			case *sdl.TouchFingerEvent:
				p := geometry.Point{X: float64(e.X) * c.width, Y: float64(e.Y) * c.height}
				switch e.Type {
				case sdl.FINGERDOWN:
					c.TouchDown(p, time.Now())
				case sdl.FINGERMOTION:
					c.TouchMove(p, time.Now())
				case sdl.FINGERUP:
					c.TouchUp(p, time.Now())
				}

			case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerAxisEvent, *sdl.ControllerDeviceEvent:
				inputEvent := processor.ProcessSDLEvent(event)
				if inputEvent == nil {
					continue
				}
				if result, done, err := c.handleButton(*inputEvent); done {
					return result, err
				}
			}
		}

		touches = c.drainTouches(touches)

		if dir := c.directional.Update(); dir != internal.DirectionNone {
			c.page(dir)
		}

		now := time.Now()
		c.Update(now.Sub(last))
		last = now

		window.Clear()
		if err := c.Render(renderer); err != nil {
			return nil, NewInfrastructureError("render paging container", err)
		}
		window.Present()
	}
}

func (c *Container) layoutToWindow(window *internal.Window) {
	w, h := window.Size()
	if float64(w) == c.width && float64(h) == c.height {
		return
	}
	c.Layout(float64(w), float64(h))
}

// windowPoint converts window coordinates to renderer pixels, which differ on
// high density displays.
func (c *Container) windowPoint(window *internal.Window, x, y int32) geometry.Point {
	ww, wh := window.Window.GetSize()
	if ww <= 0 || wh <= 0 {
		return geometry.Point{X: float64(x), Y: float64(y)}
	}
	return geometry.Point{
		X: float64(x) * c.width / float64(ww),
		Y: float64(y) * c.height / float64(wh),
	}
}

// drainTouches applies every queued touchscreen sample. It returns nil once
// the driver has closed its channel.
func (c *Container) drainTouches(events <-chan touch.Event) <-chan touch.Event {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			c.applyTouch(ev)
		default:
			return events
		}
	}
}

func (c *Container) applyTouch(ev touch.Event) {
	p := geometry.Point{X: ev.X, Y: ev.Y}
	switch ev.Phase {
	case touch.Down:
		c.TouchDown(p, ev.At)
	case touch.Move:
		c.TouchMove(p, ev.At)
	case touch.Up:
		c.TouchUp(p, ev.At)
	}
}

// handleButton applies a virtual button event. done reports that the run
// loop should return result and err.
func (c *Container) handleButton(ev internal.Event) (result *Result, done bool, err error) {
	if !ev.Pressed {
		c.directional.SetHeld(ev.Button, false)
		return nil, false, nil
	}
	if ev.Repeat {
		return nil, false, nil
	}

	switch ev.Button {
	case constants.VirtualButtonLeft, constants.VirtualButtonRight,
		constants.VirtualButtonL1, constants.VirtualButtonR1:
		c.page(c.directional.SetHeld(ev.Button, true))
	case constants.VirtualButtonA, constants.VirtualButtonStart:
		return &Result{Page: c.pager.TargetPage(), Action: ResultActionSelected}, true, nil
	case constants.VirtualButtonB:
		return nil, true, ErrCancelled
	}
	return nil, false, nil
}

// page moves one page from where the pager is heading, so repeated presses
// during an animation keep advancing.
func (c *Container) page(dir internal.Direction) {
	from := c.pager.TargetPage()
	target := from + dir.Step()
	if target < 0 || target >= len(c.panes) || target == from {
		return
	}
	c.ScrollToPage(target, true)
}
