package stagelight

import "fmt"

// DecoratorFunc builds a decorator node wrapping inner. Factories passed to
// NewRandomOperation are realized once at construction, all sharing the same
// inner node.
type DecoratorFunc func(inner Node) Node

// RandomOperation wraps one fixed inner node with one of several decorator
// effects, re-rolled with the same threshold semantics as RandomChild. The
// difference from RandomChild is resource scope: on a swap, only the
// decorator shell is exited and entered — the shared inner subtree stays
// live throughout. Before the first Generate call, the first decorator is
// active.
type RandomOperation struct {
	inner   Node
	ops     []Node // realized decorators, all wrapping inner
	current Node

	ctx     *Context
	entered bool
}

// NewRandomOperation realizes each factory against inner and returns the
// combinator. Panics if inner is nil, no factories are given, or a factory
// returns nil — configuration errors, surfaced at construction.
func NewRandomOperation(inner Node, factories ...DecoratorFunc) *RandomOperation {
	if inner == nil {
		panic("stagelight: RandomOperation inner node is nil")
	}
	if len(factories) == 0 {
		panic("stagelight: RandomOperation needs at least one decorator factory")
	}
	ops := make([]Node, len(factories))
	for i, factory := range factories {
		op := factory(inner)
		if op == nil {
			panic(fmt.Sprintf("stagelight: RandomOperation factory %d returned nil", i))
		}
		ops[i] = op
	}
	return &RandomOperation{
		inner:   inner,
		ops:     ops,
		current: ops[0],
	}
}

// Enter captures the context. The current decorator (and through it the
// inner subtree) is entered by the enclosing EnterTree walk.
func (ro *RandomOperation) Enter(ctx *Context) error {
	debugCheckNotEntered(ro.entered, "RandomOperation")
	ro.ctx = ctx
	ro.entered = true
	return nil
}

// Exit drops the captured context.
func (ro *RandomOperation) Exit() {
	ro.ctx = nil
	ro.entered = false
}

// Inputs returns the current decorator. The inner node is reached through
// the decorator's own Inputs, so tree walks enter and exit it exactly once.
func (ro *RandomOperation) Inputs() []Node {
	return []Node{ro.current}
}

// Generate re-rolls the active decorator with probability threshold. A swap
// exits and enters the decorator shells shallowly — Exit and Enter on the
// shells themselves, no tree walk — so the shared inner node is never
// exited or re-entered here. The current decorator then receives Generate,
// which it forwards to the inner node.
func (ro *RandomOperation) Generate(vibe Vibe, threshold float64) {
	debugCheckEntered(ro.entered, "RandomOperation", "Generate")
	if ro.ctx.Rand().Float64() < threshold {
		next := ro.ops[ro.ctx.Rand().Intn(len(ro.ops))]
		if next != ro.current {
			ro.current.Exit()
			ro.current = next
			if err := ro.current.Enter(ro.ctx); err != nil {
				panic(fmt.Sprintf("stagelight: RandomOperation failed to enter decorator: %v", err))
			}
		}
	}
	ro.current.Generate(vibe, threshold)
}

// Render delegates to the current decorator.
func (ro *RandomOperation) Render(frame Frame, scheme ColorScheme) *Surface {
	debugCheckEntered(ro.entered, "RandomOperation", "Render")
	return ro.current.Render(frame, scheme)
}

func (ro *RandomOperation) String() string {
	return fmt.Sprintf("RandomOperation(%d decorators)", len(ro.ops))
}
