package stagelight

// ConcertStage is the fixed top-level show graph: leaf sources wired
// through the selection and composition combinators into one composited
// output. It is the host-facing boundary of the engine — the host drives
// exactly Enter, Generate, Render, and Exit on it and nothing else.
//
// The graph, mirroring a club show:
//
//   - gentle: a soft color wash, brightness-pulsed, eased in, over black.
//   - rave: a wash run through a random decorator (plain, pulse, zoom,
//     shake, scanlines), optionally stenciled by a strobe mask, zoomed as a
//     whole, with an additive strobe overlay on top of the stack.
//   - blackout: black.
//
// Mode picks the stack deterministically; the RandomChild and
// RandomOperation nodes inside reshuffle the rave look on every shift.
type ConcertStage struct {
	root    *ModeSwitch
	entered bool
}

// NewConcertStage assembles the show graph.
func NewConcertStage() *ConcertStage {
	return &ConcertStage{
		root: NewModeSwitch(
			ModeBinding{Mode: ModeGentle, Node: buildGentle()},
			ModeBinding{Mode: ModeRave, Node: buildRave()},
			ModeBinding{Mode: ModeBlackout, Node: NewBlack()},
		),
	}
}

func buildGentle() Node {
	wash := NewFade(NewBrightnessPulse(NewStaticColor()))
	return NewLayerCompose(
		LayerSpec{Node: NewBlack(), Blend: BlendNormal},
		LayerSpec{Node: wash, Blend: BlendNormal, Opacity: 0.7},
	)
}

func buildRave() Node {
	content := NewRandomOperation(NewStaticColor(),
		NewPassthrough,
		NewBrightnessPulse,
		NewZoom,
		NewShake,
		NewScanlines,
	)
	masked := NewMultiplyCompose(content, NewStrobe(SignalFreqHigh, 0.6))
	canvas := NewZoom(NewRandomChild([]Node{content, masked}, nil))

	return NewLayerCompose(
		LayerSpec{Node: NewBlack(), Blend: BlendNormal},
		LayerSpec{Node: canvas, Blend: BlendNormal},
		LayerSpec{Node: NewStrobe(SignalFreqLow, 0.8), Blend: BlendAdditive, Opacity: 0.8},
	)
}

// Enter acquires resources for the whole active tree.
func (cs *ConcertStage) Enter(ctx *Context) error {
	debugCheckNotEntered(cs.entered, "ConcertStage")
	if err := EnterTree(cs.root, ctx); err != nil {
		return err
	}
	cs.entered = true
	return nil
}

// Generate runs one creative shift through the graph. Threshold is the
// re-roll probability for the selection combinators inside; pass 1.0 to
// force every selection to re-roll, 0.0 to keep the current look.
func (cs *ConcertStage) Generate(vibe Vibe, threshold float64) {
	debugCheckEntered(cs.entered, "ConcertStage", "Generate")
	cs.root.Generate(vibe, threshold)
}

// Render produces this tick's composited output.
func (cs *ConcertStage) Render(frame Frame, scheme ColorScheme) *Surface {
	debugCheckEntered(cs.entered, "ConcertStage", "Render")
	return cs.root.Render(frame, scheme)
}

// Exit releases the whole active tree's resources.
func (cs *ConcertStage) Exit() {
	ExitTree(cs.root)
	cs.entered = false
}

// Root returns the top node of the graph, for inspection and PrintTree.
func (cs *ConcertStage) Root() Node {
	return cs.root
}
