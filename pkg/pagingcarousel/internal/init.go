// Package internal contains the SDL infrastructure behind the paging
// carousel: window and renderer setup, fonts, theming, input mapping and
// texture helpers. Types and functions in this package are not part of the
// public API.
package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/constants"
)

var window *Window

// Init brings up SDL, opens the window and loads the theme's fonts. The
// theme must be set before calling Init.
func Init(title string, winOpts WindowOptions) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("init sdl: %w", err)
	}

	if err := img.Init(img.INIT_PNG); err != nil {
		GetInternalLogger().Warn("SDL_image unavailable", "error", err)
	}

	if err := ttf.Init(); err != nil {
		return fmt.Errorf("init ttf: %w", err)
	}

	InitInputProcessor()

	if winOpts.IsZero() {
		if constants.IsDevMode() {
			winOpts = WindowOptions{Resizable: true}
		} else {
			winOpts = WindowOptions{Borderless: true}
		}
	}

	var err error
	window, err = initWindow(title, winOpts)
	if err != nil {
		return err
	}

	if err := initFonts(GetTheme()); err != nil {
		return err
	}

	return nil
}

// SDLCleanup tears down everything Init created, in reverse order.
func SDLCleanup() {
	closeTouch()
	if window != nil {
		window.closeWindow()
		window = nil
	}
	CloseAllControllers()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
