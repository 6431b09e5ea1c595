package stagelight

import (
	"fmt"
	"strings"
)

// probe is a recording Node used across the combinator tests. It counts
// lifecycle calls, optionally owns a real Surface, and can append to a
// shared call log for ordering assertions.
type probe struct {
	name        string
	children    []Node
	enterErr    error
	renderNil   bool
	withSurface bool

	enters, exits       int
	generates, renders  int
	lastVibe            Vibe
	lastThreshold       float64
	surface             *Surface
	entered             bool
	log                 *[]string
}

func newProbe(name string) *probe {
	return &probe{name: name}
}

func (p *probe) record(event string) {
	if p.log != nil {
		*p.log = append(*p.log, fmt.Sprintf("%s %s", event, p.name))
	}
}

func (p *probe) Enter(ctx *Context) error {
	p.enters++
	p.record("enter")
	if p.enterErr != nil {
		return p.enterErr
	}
	if p.withSurface {
		p.surface = ctx.NewSurface()
	}
	p.entered = true
	return nil
}

func (p *probe) Exit() {
	p.exits++
	p.record("exit")
	p.surface.Dispose()
	p.surface = nil
	p.entered = false
}

func (p *probe) Generate(vibe Vibe, threshold float64) {
	p.generates++
	p.record("generate")
	p.lastVibe = vibe
	p.lastThreshold = threshold
}

func (p *probe) Render(frame Frame, scheme ColorScheme) *Surface {
	p.renders++
	p.record("render")
	if p.renderNil {
		return nil
	}
	return p.surface
}

func (p *probe) Inputs() []Node { return p.children }

func (p *probe) String() string { return p.name }

// probeShell is a recording decorator shell for RandomOperation tests:
// shallow Enter/Exit, inner node reached only through Inputs.
type probeShell struct {
	name  string
	inner Node

	enters, exits int
	generates     int
	entered       bool
}

func probeShellFactory(name string) DecoratorFunc {
	return func(inner Node) Node {
		return &probeShell{name: name, inner: inner}
	}
}

func (p *probeShell) Enter(ctx *Context) error {
	p.enters++
	p.entered = true
	return nil
}

func (p *probeShell) Exit() {
	p.exits++
	p.entered = false
}

func (p *probeShell) Generate(vibe Vibe, threshold float64) {
	p.generates++
	p.inner.Generate(vibe, threshold)
}

func (p *probeShell) Render(frame Frame, scheme ColorScheme) *Surface {
	return p.inner.Render(frame, scheme)
}

func (p *probeShell) Inputs() []Node { return []Node{p.inner} }

func (p *probeShell) String() string { return p.name }

// mustPanic asserts that fn panics.
func mustPanic(fn func()) (panicked bool) {
	defer func() {
		if recover() != nil {
			panicked = true
		}
	}()
	fn()
	return false
}

func joinLog(log []string) string {
	return strings.Join(log, ",")
}

func testContext(seed int64) *Context {
	return NewContext(64, 64, seed)
}
