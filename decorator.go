package stagelight

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Decorator effects wrap a single inner node and transform its rendered
// surface. A decorator's Enter acquires only the shell's resources — the
// inner node is reached through Inputs and entered by the surrounding tree
// walk, which is what lets RandomOperation swap shells without touching the
// inner subtree.
//
// All decorators propagate absence: when the inner node renders nil, so
// does the decorator.

// shell holds what every decorator needs: the captured context and the
// offscreen target the transformed result is drawn into.
type shell struct {
	ctx     *Context
	target  *Surface
	entered bool
}

func (s *shell) enter(ctx *Context, what string) {
	debugCheckNotEntered(s.entered, what)
	s.ctx = ctx
	s.target = ctx.NewSurface()
	s.entered = true
}

func (s *shell) exit() {
	s.target.Dispose()
	s.target = nil
	s.ctx = nil
	s.entered = false
}

// --- Passthrough ---

// Passthrough is the "no decoration" decorator: it forwards its inner
// node's surface untouched. Including it among RandomOperation's factories
// gives the plain look a seat at the draw.
type Passthrough struct {
	inner   Node
	entered bool
}

// NewPassthrough wraps inner with no effect.
func NewPassthrough(inner Node) Node {
	return &Passthrough{inner: inner}
}

func (p *Passthrough) Enter(ctx *Context) error {
	debugCheckNotEntered(p.entered, "Passthrough")
	p.entered = true
	return nil
}

func (p *Passthrough) Exit() { p.entered = false }

func (p *Passthrough) Generate(vibe Vibe, threshold float64) {
	p.inner.Generate(vibe, threshold)
}

func (p *Passthrough) Render(frame Frame, scheme ColorScheme) *Surface {
	return p.inner.Render(frame, scheme)
}

func (p *Passthrough) Inputs() []Node { return []Node{p.inner} }

func (p *Passthrough) String() string { return "Passthrough" }

// --- BrightnessPulse ---

// BrightnessPulse modulates the inner surface's brightness with an audio
// signal: out = inner * (base + intensity * signal).
type BrightnessPulse struct {
	Signal    Signal
	Intensity float64 // pulse depth; 0 = no effect
	Base      float64 // floor brightness with a silent signal

	inner Node
	shell
}

// NewBrightnessPulse wraps inner with a full-spectrum brightness pulse.
func NewBrightnessPulse(inner Node) Node {
	return &BrightnessPulse{
		Signal:    SignalFreqAll,
		Intensity: 0.8,
		Base:      0.2,
		inner:     inner,
	}
}

func (bp *BrightnessPulse) Enter(ctx *Context) error {
	bp.enter(ctx, "BrightnessPulse")
	return nil
}

func (bp *BrightnessPulse) Exit() { bp.exit() }

// Generate re-picks the driving signal and deepens the pulse with hype.
func (bp *BrightnessPulse) Generate(vibe Vibe, threshold float64) {
	debugCheckEntered(bp.entered, "BrightnessPulse", "Generate")
	rng := bp.ctx.Rand()
	signals := [...]Signal{SignalFreqAll, SignalFreqLow, SignalSustainedLow}
	bp.Signal = signals[rng.Intn(len(signals))]
	bp.Intensity = 0.5 + 0.5*clamp01(vibe.Hype/100)
	bp.Base = 0.4 - 0.3*clamp01(vibe.Hype/100)
	bp.inner.Generate(vibe, threshold)
}

func (bp *BrightnessPulse) Render(frame Frame, scheme ColorScheme) *Surface {
	debugCheckEntered(bp.entered, "BrightnessPulse", "Render")
	src := bp.inner.Render(frame, scheme)
	if src == nil {
		return nil
	}
	mul := bp.Base + bp.Intensity*frame.Signal(bp.Signal)
	if mul > 2 {
		mul = 2
	}
	var op ebiten.DrawImageOptions
	op.Blend = ebiten.BlendCopy
	op.ColorScale.Scale(float32(mul), float32(mul), float32(mul), 1)
	bp.target.Image().DrawImage(src.Image(), &op)
	return bp.target
}

func (bp *BrightnessPulse) Inputs() []Node { return []Node{bp.inner} }

func (bp *BrightnessPulse) String() string { return "BrightnessPulse" }

// --- Zoom ---

// Zoom scales the inner surface about its center, driven by an audio
// signal: a kick on the driving band punches the image in.
type Zoom struct {
	Signal  Signal
	MaxZoom float64 // zoom factor at full signal

	inner Node
	shell
}

// NewZoom wraps inner with a high-band zoom punch.
func NewZoom(inner Node) Node {
	return &Zoom{
		Signal:  SignalFreqHigh,
		MaxZoom: 1.5,
		inner:   inner,
	}
}

func (z *Zoom) Enter(ctx *Context) error {
	z.enter(ctx, "Zoom")
	return nil
}

func (z *Zoom) Exit() { z.exit() }

// Generate re-rolls the driving signal and the zoom reach; hype widens the
// range the roll draws from.
func (z *Zoom) Generate(vibe Vibe, threshold float64) {
	debugCheckEntered(z.entered, "Zoom", "Generate")
	rng := z.ctx.Rand()
	signals := [...]Signal{SignalFreqAll, SignalFreqHigh, SignalFreqLow}
	z.Signal = signals[rng.Intn(len(signals))]
	reach := Range{Min: 1.2, Max: 1.5 + 2.5*clamp01(vibe.Hype/100)}
	z.MaxZoom = reach.Min + rng.Float64()*(reach.Max-reach.Min)
	z.inner.Generate(vibe, threshold)
}

func (z *Zoom) Render(frame Frame, scheme ColorScheme) *Surface {
	debugCheckEntered(z.entered, "Zoom", "Render")
	src := z.inner.Render(frame, scheme)
	if src == nil {
		return nil
	}
	zoom := 1 + (z.MaxZoom-1)*frame.Signal(z.Signal)
	w := float64(z.target.Width())
	h := float64(z.target.Height())

	z.target.Clear()
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(zoom, zoom)
	op.GeoM.Translate(w/2, h/2)
	op.Filter = ebiten.FilterLinear
	z.target.Image().DrawImage(src.Image(), &op)
	return z.target
}

func (z *Zoom) Inputs() []Node { return []Node{z.inner} }

func (z *Zoom) String() string { return "Zoom" }

// --- Shake ---

// Shake jitters the inner surface by a random offset scaled with an audio
// signal, the camera-shake look.
type Shake struct {
	Signal    Signal
	Amplitude float64 // max offset in pixels at full signal

	inner Node
	shell
}

// NewShake wraps inner with a low-band shake.
func NewShake(inner Node) Node {
	return &Shake{
		Signal:    SignalFreqLow,
		Amplitude: 24,
		inner:     inner,
	}
}

func (sh *Shake) Enter(ctx *Context) error {
	sh.enter(ctx, "Shake")
	return nil
}

func (sh *Shake) Exit() { sh.exit() }

// Generate re-rolls amplitude within a hype-scaled range.
func (sh *Shake) Generate(vibe Vibe, threshold float64) {
	debugCheckEntered(sh.entered, "Shake", "Generate")
	rng := sh.ctx.Rand()
	reach := Range{Min: 8, Max: 16 + 48*clamp01(vibe.Hype/100)}
	sh.Amplitude = reach.Min + rng.Float64()*(reach.Max-reach.Min)
	sh.inner.Generate(vibe, threshold)
}

func (sh *Shake) Render(frame Frame, scheme ColorScheme) *Surface {
	debugCheckEntered(sh.entered, "Shake", "Render")
	src := sh.inner.Render(frame, scheme)
	if src == nil {
		return nil
	}
	rng := sh.ctx.Rand()
	reach := sh.Amplitude * frame.Signal(sh.Signal)
	dx := (rng.Float64()*2 - 1) * reach
	dy := (rng.Float64()*2 - 1) * reach

	sh.target.Clear()
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(dx, dy)
	sh.target.Image().DrawImage(src.Image(), &op)
	return sh.target
}

func (sh *Shake) Inputs() []Node { return []Node{sh.inner} }

func (sh *Shake) String() string { return "Shake" }

// --- Scanlines ---

const scanlinesShaderSrc = `//kage:unit pixels
package main

var LineSpacing float
var Darkness float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	c := imageSrc0At(src)
	if mod(floor(src.y), LineSpacing) < 1 {
		c.rgb *= 1 - Darkness
	}
	return c
}
`

// Lazy shader compilation (no sync.Once — the engine is single-threaded).
var scanlinesShader *ebiten.Shader

func ensureScanlinesShader() *ebiten.Shader {
	if scanlinesShader == nil {
		s, err := ebiten.NewShader([]byte(scanlinesShaderSrc))
		if err != nil {
			panic("stagelight: failed to compile scanlines shader: " + err.Error())
		}
		scanlinesShader = s
	}
	return scanlinesShader
}

// Scanlines darkens every n-th pixel row of the inner surface via a Kage
// shader, the CRT look.
type Scanlines struct {
	LineSpacing float64 // rows between darkened lines
	Darkness    float64 // 0 = invisible, 1 = black lines

	inner    Node
	uniforms map[string]any
	shaderOp ebiten.DrawRectShaderOptions
	shell
}

// NewScanlines wraps inner with a scanline overlay.
func NewScanlines(inner Node) Node {
	return &Scanlines{
		LineSpacing: 4,
		Darkness:    0.5,
		inner:       inner,
		uniforms:    make(map[string]any, 2),
	}
}

func (sl *Scanlines) Enter(ctx *Context) error {
	sl.enter(ctx, "Scanlines")
	return nil
}

func (sl *Scanlines) Exit() { sl.exit() }

// Generate re-rolls line spacing; darkness tracks hype.
func (sl *Scanlines) Generate(vibe Vibe, threshold float64) {
	debugCheckEntered(sl.entered, "Scanlines", "Generate")
	rng := sl.ctx.Rand()
	sl.LineSpacing = float64(2 + rng.Intn(6))
	sl.Darkness = 0.3 + 0.5*clamp01(vibe.Hype/100)
	sl.inner.Generate(vibe, threshold)
}

func (sl *Scanlines) Render(frame Frame, scheme ColorScheme) *Surface {
	debugCheckEntered(sl.entered, "Scanlines", "Render")
	src := sl.inner.Render(frame, scheme)
	if src == nil {
		return nil
	}
	shader := ensureScanlinesShader()
	// Scalar float32 boxing is unavoidable with Ebitengine's uniform API.
	sl.uniforms["LineSpacing"] = float32(sl.LineSpacing)
	sl.uniforms["Darkness"] = float32(sl.Darkness)
	bounds := src.Image().Bounds()
	sl.target.Clear()
	sl.shaderOp.Images[0] = src.Image()
	sl.shaderOp.Uniforms = sl.uniforms
	sl.target.Image().DrawRectShader(bounds.Dx(), bounds.Dy(), shader, &sl.shaderOp)
	return sl.target
}

func (sl *Scanlines) Inputs() []Node { return []Node{sl.inner} }

func (sl *Scanlines) String() string { return "Scanlines" }

// --- Fade ---

// Fade ramps the inner surface's opacity from black over a short window
// after the shell is entered, so a random reselection eases in instead of
// popping. The ramp restarts on every Enter.
type Fade struct {
	Duration float64 // ramp length in seconds

	inner    Node
	tween    *gween.Tween
	alpha    float64
	lastTime float64
	shell
}

// NewFade wraps inner with a half-second ease-in.
func NewFade(inner Node) Node {
	return &Fade{Duration: 0.5, inner: inner}
}

func (f *Fade) Enter(ctx *Context) error {
	f.enter(ctx, "Fade")
	f.tween = gween.New(0, 1, float32(f.Duration), ease.OutQuad)
	f.alpha = 0
	f.lastTime = math.NaN()
	return nil
}

func (f *Fade) Exit() {
	f.tween = nil
	f.exit()
}

func (f *Fade) Generate(vibe Vibe, threshold float64) {
	debugCheckEntered(f.entered, "Fade", "Generate")
	f.inner.Generate(vibe, threshold)
}

func (f *Fade) Render(frame Frame, scheme ColorScheme) *Surface {
	debugCheckEntered(f.entered, "Fade", "Render")
	src := f.inner.Render(frame, scheme)
	if src == nil {
		return nil
	}

	// First frame after Enter has no reference time; the ramp starts there.
	dt := 0.0
	if !math.IsNaN(f.lastTime) && frame.Time > f.lastTime {
		dt = frame.Time - f.lastTime
	}
	f.lastTime = frame.Time
	a, _ := f.tween.Update(float32(dt))
	f.alpha = float64(a)

	f.target.Clear()
	var op ebiten.DrawImageOptions
	op.ColorScale.ScaleAlpha(float32(f.alpha))
	f.target.Image().DrawImage(src.Image(), &op)
	return f.target
}

func (f *Fade) Inputs() []Node { return []Node{f.inner} }

func (f *Fade) String() string { return "Fade" }
