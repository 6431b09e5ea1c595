package stagelight

import "fmt"

// ModeBinding associates a show mode with the subtree that renders it.
type ModeBinding struct {
	Mode Mode
	Node Node
}

// ModeSwitch activates exactly one of several subtrees, chosen by the mode
// on the Vibe. The binding set is fixed at construction; only which child is
// current changes. Before the first Generate call, the first binding is the
// current child.
//
// When the mode changes, the old child's subtree is fully exited before the
// new child's subtree is entered — inactive subtrees never hold resources.
type ModeSwitch struct {
	bindings map[Mode]Node
	current  Node

	ctx     *Context
	entered bool
}

// NewModeSwitch creates a mode switch from the given bindings. The first
// binding is the default current child. Panics if no bindings are given, a
// binding's node is nil, or a mode appears twice — all configuration errors
// surfaced at construction.
func NewModeSwitch(bindings ...ModeBinding) *ModeSwitch {
	if len(bindings) == 0 {
		panic("stagelight: ModeSwitch needs at least one binding")
	}
	m := make(map[Mode]Node, len(bindings))
	for _, b := range bindings {
		if b.Node == nil {
			panic(fmt.Sprintf("stagelight: ModeSwitch binding for %q has nil node", b.Mode))
		}
		if _, dup := m[b.Mode]; dup {
			panic(fmt.Sprintf("stagelight: ModeSwitch has duplicate binding for %q", b.Mode))
		}
		m[b.Mode] = b.Node
	}
	return &ModeSwitch{
		bindings: m,
		current:  bindings[0].Node,
	}
}

// Enter captures the context. The current child is entered by the enclosing
// EnterTree walk, not here.
func (ms *ModeSwitch) Enter(ctx *Context) error {
	debugCheckNotEntered(ms.entered, "ModeSwitch")
	ms.ctx = ctx
	ms.entered = true
	return nil
}

// Exit drops the captured context.
func (ms *ModeSwitch) Exit() {
	ms.ctx = nil
	ms.entered = false
}

// Inputs returns the current child only; inactive subtrees are not part of
// the live tree.
func (ms *ModeSwitch) Inputs() []Node {
	return []Node{ms.current}
}

// Generate looks up the vibe's mode and swaps the current child if it
// differs, exiting the old subtree completely before entering the new one
// with the context captured at Enter. The (possibly new) current child then
// receives the Generate call.
//
// An unmapped mode is a configuration error and panics — there is no
// fallback child.
func (ms *ModeSwitch) Generate(vibe Vibe, threshold float64) {
	debugCheckEntered(ms.entered, "ModeSwitch", "Generate")
	next, ok := ms.bindings[vibe.Mode]
	if !ok {
		panic(fmt.Sprintf("stagelight: ModeSwitch has no binding for mode %q", vibe.Mode))
	}
	if next != ms.current {
		ExitTree(ms.current)
		ms.current = next
		if err := EnterTree(ms.current, ms.ctx); err != nil {
			// Partial GPU state is not continuable; surface at the host.
			panic(fmt.Sprintf("stagelight: ModeSwitch failed to enter subtree for mode %q: %v", vibe.Mode, err))
		}
	}
	ms.current.Generate(vibe, threshold)
}

// Render delegates to the current child.
func (ms *ModeSwitch) Render(frame Frame, scheme ColorScheme) *Surface {
	debugCheckEntered(ms.entered, "ModeSwitch", "Render")
	return ms.current.Render(frame, scheme)
}

func (ms *ModeSwitch) String() string {
	return fmt.Sprintf("ModeSwitch(%d modes)", len(ms.bindings))
}
