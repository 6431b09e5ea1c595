package stagelight

// MultiplyCompose combines two required children multiplicatively:
// result.rgb = base.rgb * mask.rgb, unaffected by either alpha channel.
// A white mask region shows the base, a black region hides it — the usual
// way to stencil glyph or shape content onto moving imagery without a full
// layer stack.
//
// If either child renders nil, the result is a cleared black surface. This
// is the one combinator that substitutes black for absence: a multiply
// against missing input has no meaningful identity.
type MultiplyCompose struct {
	base Node
	mask Node

	target  *Surface
	entered bool
}

// NewMultiplyCompose creates a multiplicative composition of base and mask.
// Both children are required; nil panics at construction.
func NewMultiplyCompose(base, mask Node) *MultiplyCompose {
	if base == nil || mask == nil {
		panic("stagelight: MultiplyCompose requires both base and mask nodes")
	}
	return &MultiplyCompose{base: base, mask: mask}
}

// Enter allocates the compose target. Children are entered by the enclosing
// EnterTree walk.
func (mc *MultiplyCompose) Enter(ctx *Context) error {
	debugCheckNotEntered(mc.entered, "MultiplyCompose")
	mc.target = ctx.NewSurface()
	mc.entered = true
	return nil
}

// Exit releases the compose target.
func (mc *MultiplyCompose) Exit() {
	mc.target.Dispose()
	mc.target = nil
	mc.entered = false
}

// Inputs returns base then mask.
func (mc *MultiplyCompose) Inputs() []Node {
	return []Node{mc.base, mc.mask}
}

// Generate forwards to both children.
func (mc *MultiplyCompose) Generate(vibe Vibe, threshold float64) {
	debugCheckEntered(mc.entered, "MultiplyCompose", "Generate")
	mc.base.Generate(vibe, threshold)
	mc.mask.Generate(vibe, threshold)
}

// Render renders both children and multiplies mask onto a copy of base.
func (mc *MultiplyCompose) Render(frame Frame, scheme ColorScheme) *Surface {
	debugCheckEntered(mc.entered, "MultiplyCompose", "Render")

	base := mc.base.Render(frame, scheme)
	mask := mc.mask.Render(frame, scheme)
	if base == nil || mask == nil {
		mc.target.Fill(ColorBlack)
		return mc.target
	}

	mc.target.Copy(base)
	mc.target.MultiplyRGB(mask)
	return mc.target
}

func (mc *MultiplyCompose) String() string {
	return "MultiplyCompose"
}
