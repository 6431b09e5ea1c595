package stagelight

import "fmt"

// Leaf effect nodes. These are deliberately simple sources — solid fills and
// signal-gated flashes — enough to assemble a working show graph. Richer
// leaves (video, glyph masks, beam renderers) plug in behind the same Node
// contract.

// --- Black ---

// Black renders an opaque black surface. Used as the base layer of a stack
// and as the blackout subtree of a ModeSwitch.
type Black struct {
	surface *Surface
	entered bool
}

// NewBlack creates a black fill node.
func NewBlack() *Black {
	return &Black{}
}

func (b *Black) Enter(ctx *Context) error {
	debugCheckNotEntered(b.entered, "Black")
	b.surface = ctx.NewSurface()
	b.surface.Fill(ColorBlack)
	b.entered = true
	return nil
}

func (b *Black) Exit() {
	b.surface.Dispose()
	b.surface = nil
	b.entered = false
}

func (b *Black) Generate(vibe Vibe, threshold float64) {}

func (b *Black) Render(frame Frame, scheme ColorScheme) *Surface {
	debugCheckEntered(b.entered, "Black", "Render")
	return b.surface
}

func (b *Black) Inputs() []Node { return nil }

func (b *Black) String() string { return "Black" }

// --- StaticColor ---

// schemeSource selects which color of the scheme a node draws with.
type schemeSource uint8

const (
	sourceFg schemeSource = iota
	sourceBg
	sourceBgContrast
)

// StaticColor renders a full-surface wash of one scheme color. Generate
// re-picks which scheme color is used and scales its brightness by hype, so
// a wash tracks both the palette crossfade and the show intensity.
type StaticColor struct {
	source     schemeSource
	brightness float64

	ctx     *Context
	surface *Surface
	entered bool
}

// NewStaticColor creates a color wash node drawing the foreground color at
// full brightness until the first Generate.
func NewStaticColor() *StaticColor {
	return &StaticColor{source: sourceFg, brightness: 1}
}

func (sc *StaticColor) Enter(ctx *Context) error {
	debugCheckNotEntered(sc.entered, "StaticColor")
	sc.ctx = ctx
	sc.surface = ctx.NewSurface()
	sc.entered = true
	return nil
}

func (sc *StaticColor) Exit() {
	sc.surface.Dispose()
	sc.surface = nil
	sc.ctx = nil
	sc.entered = false
}

// Generate re-picks the scheme color and maps hype onto brightness. Without
// rainbows the wash stays on the background colors; with them the
// foreground accent joins the draw.
func (sc *StaticColor) Generate(vibe Vibe, threshold float64) {
	debugCheckEntered(sc.entered, "StaticColor", "Generate")
	rng := sc.ctx.Rand()
	if vibe.AllowRainbows {
		sc.source = schemeSource(rng.Intn(3))
	} else {
		sc.source = schemeSource(1 + rng.Intn(2))
	}
	sc.brightness = 0.4 + 0.6*clamp01(vibe.Hype/100)
}

func (sc *StaticColor) Render(frame Frame, scheme ColorScheme) *Surface {
	debugCheckEntered(sc.entered, "StaticColor", "Render")
	c := sc.pick(scheme)
	sc.surface.Fill(Color{
		R: c.R * sc.brightness,
		G: c.G * sc.brightness,
		B: c.B * sc.brightness,
		A: c.A,
	})
	return sc.surface
}

func (sc *StaticColor) pick(scheme ColorScheme) Color {
	switch sc.source {
	case sourceBg:
		return scheme.Bg
	case sourceBgContrast:
		return scheme.BgContrast
	default:
		return scheme.Fg
	}
}

func (sc *StaticColor) Inputs() []Node { return nil }

func (sc *StaticColor) String() string { return "StaticColor" }

// --- Strobe ---

// Strobe renders a white flash while its signal exceeds the gate, and
// nothing at all otherwise. The nil return is the point: parents composite
// a strobe only on the loud frames and skip it entirely on the quiet ones.
type Strobe struct {
	signal Signal
	gate   float64

	ctx     *Context
	surface *Surface
	entered bool
}

// NewStrobe creates a strobe gated on the given signal at the given level.
func NewStrobe(signal Signal, gate float64) *Strobe {
	return &Strobe{signal: signal, gate: clamp01(gate)}
}

func (st *Strobe) Enter(ctx *Context) error {
	debugCheckNotEntered(st.entered, "Strobe")
	st.ctx = ctx
	st.surface = ctx.NewSurface()
	st.surface.Fill(ColorWhite)
	st.entered = true
	return nil
}

func (st *Strobe) Exit() {
	st.surface.Dispose()
	st.surface = nil
	st.ctx = nil
	st.entered = false
}

// Generate re-picks the gating signal and loosens the gate as hype rises —
// a hyped show strobes on smaller peaks.
func (st *Strobe) Generate(vibe Vibe, threshold float64) {
	debugCheckEntered(st.entered, "Strobe", "Generate")
	rng := st.ctx.Rand()
	signals := [...]Signal{SignalFreqAll, SignalFreqHigh, SignalFreqLow}
	st.signal = signals[rng.Intn(len(signals))]
	st.gate = 0.9 - 0.5*clamp01(vibe.Hype/100)
}

func (st *Strobe) Render(frame Frame, scheme ColorScheme) *Surface {
	debugCheckEntered(st.entered, "Strobe", "Render")
	if frame.Signal(st.signal) < st.gate {
		return nil
	}
	return st.surface
}

func (st *Strobe) Inputs() []Node { return nil }

func (st *Strobe) String() string {
	return fmt.Sprintf("Strobe(gate:%.2f)", st.gate)
}
