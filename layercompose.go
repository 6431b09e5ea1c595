package stagelight

import "fmt"

// LayerSpec declares one layer of a LayerCompose stack: the node that
// renders it, how its surface is blended onto the stack, and an opacity
// multiplier. Opacity zero defaults to 1.0 (fully opaque), matching the
// zero-value convention of the draw options elsewhere in the package.
type LayerSpec struct {
	Node    Node
	Blend   BlendMode
	Opacity float64
}

// LayerCompose renders an ordered stack of layers into one surface. The
// first layer is the base: it is copied in unconditionally, never blended,
// which establishes a known-opaque background and fixes the blend-order
// tie-break. Every subsequent layer composites strictly on top, in declared
// order. Layers whose Render returns nil are skipped outright.
type LayerCompose struct {
	layers []LayerSpec
	target *Surface

	entered bool
}

// NewLayerCompose creates a compositing stack from the given layers. Panics
// if no layers are given or any layer's node is nil — a stack with no base
// layer is a configuration error, caught at construction rather than at
// first Render.
func NewLayerCompose(layers ...LayerSpec) *LayerCompose {
	if len(layers) == 0 {
		panic("stagelight: LayerCompose needs at least one layer")
	}
	for i, l := range layers {
		if l.Node == nil {
			panic(fmt.Sprintf("stagelight: LayerCompose layer %d has nil node", i))
		}
	}
	return &LayerCompose{layers: layers}
}

// Enter allocates the compose target surface. Layer nodes are entered by
// the enclosing EnterTree walk.
func (lc *LayerCompose) Enter(ctx *Context) error {
	debugCheckNotEntered(lc.entered, "LayerCompose")
	lc.target = ctx.NewSurface()
	lc.entered = true
	return nil
}

// Exit releases the compose target.
func (lc *LayerCompose) Exit() {
	lc.target.Dispose()
	lc.target = nil
	lc.entered = false
}

// Inputs returns every layer node, in stack order.
func (lc *LayerCompose) Inputs() []Node {
	inputs := make([]Node, len(lc.layers))
	for i, l := range lc.layers {
		inputs[i] = l.Node
	}
	return inputs
}

// Generate forwards to every layer node. LayerCompose itself has nothing to
// reconfigure.
func (lc *LayerCompose) Generate(vibe Vibe, threshold float64) {
	debugCheckEntered(lc.entered, "LayerCompose", "Generate")
	for _, l := range lc.layers {
		l.Node.Generate(vibe, threshold)
	}
}

// Render renders each layer bottom-up and composites the results in
// declared order. The base layer is copied, not blended; if it renders nil
// the stack starts from transparent black. Nil overlay layers contribute
// nothing, not even a blend no-op.
func (lc *LayerCompose) Render(frame Frame, scheme ColorScheme) *Surface {
	debugCheckEntered(lc.entered, "LayerCompose", "Render")

	base := lc.layers[0].Node.Render(frame, scheme)
	if base != nil {
		lc.target.Copy(base)
	} else {
		lc.target.Clear()
	}

	for _, l := range lc.layers[1:] {
		src := l.Node.Render(frame, scheme)
		if src == nil {
			continue
		}
		lc.target.Blend(src, l.Blend, layerOpacity(l))
	}
	return lc.target
}

// layerOpacity resolves the zero-defaults-to-opaque convention.
func layerOpacity(l LayerSpec) float64 {
	if l.Opacity == 0 {
		return 1
	}
	return clamp01(l.Opacity)
}

func (lc *LayerCompose) String() string {
	return fmt.Sprintf("LayerCompose(%d layers)", len(lc.layers))
}
