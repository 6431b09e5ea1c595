package stagelight

import "math/rand"

// Context is the handle passed to Enter. It carries the output dimensions,
// the RNG used by selection combinators, and a live-surface counter.
//
// The engine is single-threaded: one Context drives one node tree, and no
// node method is re-entered while another is running.
type Context struct {
	width, height int
	rng           *rand.Rand

	liveSurfaces int
}

// NewContext creates a context for the given output size, seeding the RNG
// from seed. Selection combinators draw from this RNG, so two runs with the
// same seed and the same Generate sequence pick the same subtrees.
func NewContext(width, height int, seed int64) *Context {
	if width <= 0 || height <= 0 {
		panic("stagelight: context dimensions must be positive")
	}
	return &Context{
		width:  width,
		height: height,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Width returns the output width in pixels.
func (c *Context) Width() int { return c.width }

// Height returns the output height in pixels.
func (c *Context) Height() int { return c.height }

// Rand returns the context's RNG.
func (c *Context) Rand() *rand.Rand { return c.rng }

// LiveSurfaces returns the number of surfaces currently allocated through
// this context. After a full ExitTree this returns to its pre-Enter value;
// tests use it as a leak probe.
func (c *Context) LiveSurfaces() int { return c.liveSurfaces }
