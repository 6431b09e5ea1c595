package stagelight

import "github.com/hajimehoshi/ebiten/v2"

// Surface is a persistent offscreen render target owned by the node that
// produced it. A node allocates its Surface in Enter, overwrites it on every
// Render, and disposes it in Exit — there is no per-frame allocation.
//
// The pixels a Surface holds are only valid until the owning node's next
// Render call; consumers must composite (or copy) before then.
type Surface struct {
	ctx   *Context
	image *ebiten.Image
	w, h  int
}

// NewSurface allocates a surface at the context's output dimensions and
// records it in the context's live-surface count.
func (c *Context) NewSurface() *Surface {
	c.liveSurfaces++
	return &Surface{
		ctx:   c,
		image: ebiten.NewImage(c.width, c.height),
		w:     c.width,
		h:     c.height,
	}
}

// Image returns the underlying *ebiten.Image for direct draws.
func (s *Surface) Image() *ebiten.Image { return s.image }

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.w }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.h }

// Clear fills the surface with transparent black.
func (s *Surface) Clear() {
	s.image.Clear()
}

// Fill fills the entire surface with the given color.
func (s *Surface) Fill(c Color) {
	s.image.Fill(c.toRGBA())
}

// Copy overwrites this surface with src, ignoring src's alpha — an
// unconditional replace, not a blend.
func (s *Surface) Copy(src *Surface) {
	var op ebiten.DrawImageOptions
	op.Blend = ebiten.BlendCopy
	s.image.DrawImage(src.image, &op)
}

// Blend draws src onto this surface using the given blend mode, with src's
// alpha pre-multiplied by opacity.
func (s *Surface) Blend(src *Surface, mode BlendMode, opacity float64) {
	var op ebiten.DrawImageOptions
	op.Blend = mode.EbitenBlend()
	opacity = clamp01(opacity)
	op.ColorScale.ScaleAlpha(float32(opacity))
	s.image.DrawImage(src.image, &op)
}

// MultiplyRGB draws src onto this surface with result.rgb = dst.rgb *
// src.rgb, unaffected by either alpha channel. Used by MultiplyCompose.
func (s *Surface) MultiplyRGB(src *Surface) {
	var op ebiten.DrawImageOptions
	op.Blend = multiplyRGBBlend
	s.image.DrawImage(src.image, &op)
}

// Dispose deallocates the underlying image and decrements the context's
// live-surface count. Safe to call on a nil surface; calling twice is a
// no-op.
func (s *Surface) Dispose() {
	if s == nil || s.image == nil {
		return
	}
	s.image.Deallocate()
	s.image = nil
	s.ctx.liveSurfaces--
}

// toRGBA converts a Color to a color.RGBA-compatible value (premultiplied).
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image.Fill.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}
