package pagingcarousel

import (
	"fmt"
	"math"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/geometry"
	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/internal"
	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/internal/raster"
	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/navigation"
)

// Render draws the visible panes and the navigation bar over them.
func (c *Container) Render(renderer *sdl.Renderer) error {
	if c.textures == nil {
		c.textures = internal.NewTextureCache(len(c.panes))
	}

	c.renderPanes(renderer)
	return c.renderNavigation(renderer)
}

// ReleaseTextures frees the textures cached by Render.
func (c *Container) ReleaseTextures() {
	if c.textures != nil {
		c.textures.Destroy()
	}
}

func (c *Container) renderPanes(renderer *sdl.Renderer) {
	offset := c.pager.Offset()
	for i, pane := range c.panes {
		frame := c.frames[i].Offset(-offset, 0)
		if frame.MaxX() <= 0 || frame.X >= c.width {
			continue
		}

		rect := toSDLRect(frame)
		_ = renderer.SetClipRect(&rect)
		pane.Render(renderer, rect)
	}
	_ = renderer.SetClipRect(nil)
}

func (c *Container) renderNavigation(renderer *sdl.Renderer) error {
	theme := internal.GetTheme()
	settings := c.nav.Settings()
	height := c.nav.Height()

	internal.FillRect(renderer, toSDLRect(geometry.Rect{W: c.width, H: height}), theme.NavigationBarColor)
	internal.FillRect(renderer, toSDLRect(geometry.Rect{
		Y: height - settings.BorderHeight,
		W: c.width,
		H: settings.BorderHeight,
	}), theme.BorderColor)

	if a := c.nav.LeftAccessory(); a != nil && len(a.Icon) > 0 {
		if err := c.renderAccessory(renderer, a, theme.TitleColor); err != nil {
			return err
		}
	}

	for _, view := range c.nav.ItemViews() {
		if view.Hidden() {
			continue
		}
		if err := c.renderTitle(renderer, view, theme); err != nil {
			return err
		}
		if view.Badge.Opacity() > 0 {
			if err := c.renderBadge(renderer, view, theme); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Container) renderAccessory(renderer *sdl.Renderer, a *navigation.Accessory, tint sdl.Color) error {
	frame := a.Frame()
	w, h := int(math.Round(frame.W)), int(math.Round(frame.H))

	key := internal.TextureKey{Role: internal.IconTexture, Text: fmt.Sprintf("%p", a), W: w, H: h, Color: tint}
	texture, err := c.textures.GetOrCreate(key, func() (*sdl.Texture, error) {
		img, err := raster.TintedSVG(a.Icon, w, h, internal.ToRGBA(tint))
		if err != nil {
			return nil, err
		}
		return internal.TextureFromImage(renderer, img)
	})
	if err != nil {
		return fmt.Errorf("accessory icon: %w", err)
	}

	dst := toSDLRect(frame.ScaledAboutCenter(a.Button.Scale()))
	return renderer.Copy(texture, nil, &dst)
}

func (c *Container) renderTitle(renderer *sdl.Renderer, view *navigation.ItemView, theme internal.Theme) error {
	textColor := theme.TitleColor
	if item := view.Item(); !internal.IsZeroColor(item.TitleColor) {
		textColor = internal.ToSDLColor(item.TitleColor)
	}

	texture, err := c.text(renderer, internal.TitleTexture, internal.Fonts.TitleFont, view.Title(), textColor)
	if err != nil || texture == nil {
		return err
	}

	_ = texture.SetAlphaMod(alphaByte(view.Opacity()))
	dst := toSDLRect(view.Frame().ScaledAboutCenter(view.Button.Scale()))
	return renderer.Copy(texture, nil, &dst)
}

func (c *Container) renderBadge(renderer *sdl.Renderer, view *navigation.ItemView, theme internal.Theme) error {
	item := view.Item()
	background, foreground := theme.BadgeBackgroundColor, theme.BadgeTextColor
	if !internal.IsZeroColor(item.BadgeBackgroundColor) {
		background = internal.ToSDLColor(item.BadgeBackgroundColor)
	}
	if !internal.IsZeroColor(item.BadgeTextColor) {
		foreground = internal.ToSDLColor(item.BadgeTextColor)
	}

	frame := view.BadgeFrame()
	w, h := int(math.Round(frame.W)), int(math.Round(frame.H))
	if w <= 0 || h <= 0 {
		return nil
	}

	pillKey := internal.TextureKey{Role: internal.BadgePillTexture, W: w, H: h, Color: background}
	pill, err := c.textures.GetOrCreate(pillKey, func() (*sdl.Texture, error) {
		img, err := raster.Pill(w, h, internal.ToRGBA(background))
		if err != nil {
			return nil, err
		}
		return internal.TextureFromImage(renderer, img)
	})
	if err != nil {
		return fmt.Errorf("badge pill: %w", err)
	}

	alpha := alphaByte(view.Badge.Opacity() * view.Opacity())
	scaled := frame.ScaledAboutCenter(view.Badge.Scale())

	_ = pill.SetAlphaMod(alpha)
	dst := toSDLRect(scaled)
	if err := renderer.Copy(pill, nil, &dst); err != nil {
		return err
	}

	label, err := c.text(renderer, internal.BadgeLabelTexture, internal.Fonts.BadgeFont, view.Badge.Text(), foreground)
	if err != nil || label == nil {
		return err
	}
	_, _, lw, lh, err := label.Query()
	if err != nil {
		return err
	}

	s := view.Badge.Scale()
	text := geometry.Rect{
		X: scaled.CenterX() - float64(lw)*s/2,
		Y: scaled.CenterY() - float64(lh)*s/2,
		W: float64(lw) * s,
		H: float64(lh) * s,
	}
	_ = label.SetAlphaMod(alpha)
	dst = toSDLRect(text)
	return renderer.Copy(label, nil, &dst)
}

func (c *Container) text(renderer *sdl.Renderer, role internal.TextureRole, font *ttf.Font, text string, col sdl.Color) (*sdl.Texture, error) {
	if text == "" {
		return nil, nil
	}
	key := internal.TextureKey{Role: role, Text: text, Color: col}
	return c.textures.GetOrCreate(key, func() (*sdl.Texture, error) {
		return internal.RenderText(renderer, font, text, col)
	})
}

func alphaByte(opacity float64) uint8 {
	return uint8(math.Round(math.Min(math.Max(opacity, 0), 1) * 0xff))
}

func toSDLRect(r geometry.Rect) sdl.Rect {
	return sdl.Rect{
		X: int32(math.Round(r.X)),
		Y: int32(math.Round(r.Y)),
		W: int32(math.Round(r.W)),
		H: int32(math.Round(r.H)),
	}
}
