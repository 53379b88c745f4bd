package internal

import (
	"fmt"
	"image"
	"image/draw"
	"runtime"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// TextureFromImage uploads img as a blendable texture. SDL expects straight
// alpha, so the premultiplied pixels are converted first.
func TextureFromImage(renderer *sdl.Renderer, img image.Image) (*sdl.Texture, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("texture from image: empty bounds %v", b)
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&nrgba.Pix[0]),
		int32(b.Dx()), int32(b.Dy()), 32, int32(nrgba.Stride),
		sdl.PIXELFORMAT_ABGR8888,
	)
	if err != nil {
		return nil, fmt.Errorf("create surface: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	runtime.KeepAlive(nrgba)
	if err != nil {
		return nil, fmt.Errorf("create texture: %w", err)
	}
	_ = texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}

// RenderText renders text as a blended texture. Empty text yields nil.
func RenderText(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color) (*sdl.Texture, error) {
	if text == "" {
		return nil, nil
	}
	if font == nil {
		return nil, ErrNoFont
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return nil, fmt.Errorf("render text %q: %w", text, err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("create text texture: %w", err)
	}
	_ = texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}

// FillRect fills r with c, honoring c's alpha.
func FillRect(renderer *sdl.Renderer, r sdl.Rect, c sdl.Color) {
	_ = renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	_ = renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	_ = renderer.FillRect(&r)
}
