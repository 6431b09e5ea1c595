package stagelight

import "fmt"

// RandomChild activates one of several candidate subtrees, re-rolling its
// choice probabilistically on Generate. The candidate set is fixed at
// construction; weights are optional (uniform by default). Before the first
// Generate call, the first candidate is the current child.
//
// Sampling may reselect the current candidate; when it does, the exit/enter
// cycle is skipped and the child simply keeps running. (The alternative —
// excluding the current child from the draw — would force visible change on
// every re-roll; allowed reselection is the documented contract here.)
type RandomChild struct {
	candidates  []Node
	weights     []float64 // nil for uniform selection
	totalWeight float64
	current     Node

	ctx     *Context
	entered bool
}

// NewRandomChild creates a random-selection combinator over candidates.
// weights may be nil for uniform selection; otherwise it must match the
// candidate count, contain no negative values, and sum to a positive total.
// Violations panic at construction.
func NewRandomChild(candidates []Node, weights []float64) *RandomChild {
	if len(candidates) == 0 {
		panic("stagelight: RandomChild needs at least one candidate")
	}
	for i, c := range candidates {
		if c == nil {
			panic(fmt.Sprintf("stagelight: RandomChild candidate %d is nil", i))
		}
	}
	var total float64
	if weights != nil {
		if len(weights) != len(candidates) {
			panic(fmt.Sprintf("stagelight: RandomChild has %d weights for %d candidates",
				len(weights), len(candidates)))
		}
		for i, w := range weights {
			if w < 0 {
				panic(fmt.Sprintf("stagelight: RandomChild weight %d is negative", i))
			}
			total += w
		}
		if total == 0 {
			panic("stagelight: RandomChild needs at least one positive weight")
		}
	}
	return &RandomChild{
		candidates:  candidates,
		weights:     weights,
		totalWeight: total,
		current:     candidates[0],
	}
}

// Enter captures the context. The current child is entered by the enclosing
// EnterTree walk.
func (rc *RandomChild) Enter(ctx *Context) error {
	debugCheckNotEntered(rc.entered, "RandomChild")
	rc.ctx = ctx
	rc.entered = true
	return nil
}

// Exit drops the captured context.
func (rc *RandomChild) Exit() {
	rc.ctx = nil
	rc.entered = false
}

// Inputs returns the current child only.
func (rc *RandomChild) Inputs() []Node {
	return []Node{rc.current}
}

// Generate re-rolls the active child with probability threshold. Whether or
// not a re-roll happens, the current child receives the Generate call, so a
// kept subtree still refreshes its own parameters.
func (rc *RandomChild) Generate(vibe Vibe, threshold float64) {
	debugCheckEntered(rc.entered, "RandomChild", "Generate")
	if rc.ctx.Rand().Float64() < threshold {
		next := rc.sample()
		if next != rc.current {
			ExitTree(rc.current)
			rc.current = next
			if err := EnterTree(rc.current, rc.ctx); err != nil {
				panic(fmt.Sprintf("stagelight: RandomChild failed to enter subtree: %v", err))
			}
		}
	}
	rc.current.Generate(vibe, threshold)
}

// sample draws one candidate, weighted when weights were supplied.
func (rc *RandomChild) sample() Node {
	rng := rc.ctx.Rand()
	if rc.weights == nil {
		return rc.candidates[rng.Intn(len(rc.candidates))]
	}
	r := rng.Float64() * rc.totalWeight
	for i, w := range rc.weights {
		r -= w
		if r < 0 {
			return rc.candidates[i]
		}
	}
	// Float round-off can leave r at exactly zero; the last positive-weight
	// candidate takes the draw.
	for i := len(rc.weights) - 1; i >= 0; i-- {
		if rc.weights[i] > 0 {
			return rc.candidates[i]
		}
	}
	return rc.candidates[len(rc.candidates)-1]
}

// Render delegates to the current child.
func (rc *RandomChild) Render(frame Frame, scheme ColorScheme) *Surface {
	debugCheckEntered(rc.entered, "RandomChild", "Render")
	return rc.current.Render(frame, scheme)
}

func (rc *RandomChild) String() string {
	return fmt.Sprintf("RandomChild(%d candidates)", len(rc.candidates))
}
