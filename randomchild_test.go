package stagelight

import "testing"

func TestNewRandomChildValidation(t *testing.T) {
	if !mustPanic(func() { NewRandomChild(nil, nil) }) {
		t.Error("empty candidate list should panic")
	}
	if !mustPanic(func() { NewRandomChild([]Node{nil}, nil) }) {
		t.Error("nil candidate should panic")
	}
	if !mustPanic(func() {
		NewRandomChild([]Node{newProbe("a"), newProbe("b")}, []float64{1})
	}) {
		t.Error("weight count mismatch should panic")
	}
	if !mustPanic(func() {
		NewRandomChild([]Node{newProbe("a")}, []float64{-1})
	}) {
		t.Error("negative weight should panic")
	}
	if !mustPanic(func() {
		NewRandomChild([]Node{newProbe("a"), newProbe("b")}, []float64{0, 0})
	}) {
		t.Error("all-zero weights should panic")
	}
}

// Zero threshold: the current child never changes, no matter how often
// Generate runs, but it still receives every Generate call.
func TestRandomChildZeroThresholdIdempotent(t *testing.T) {
	a := newProbe("a")
	b := newProbe("b")
	rc := NewRandomChild([]Node{a, b}, nil)
	if err := EnterTree(rc, testContext(7)); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 200; i++ {
		rc.Generate(Vibe{Mode: ModeRave, Hype: float64(i % 100)}, 0)
	}
	if rc.Inputs()[0] != Node(a) {
		t.Error("current child changed under zero threshold")
	}
	if a.enters != 1 || a.exits != 0 {
		t.Errorf("a enters/exits = %d/%d, want 1/0", a.enters, a.exits)
	}
	if b.enters != 0 {
		t.Errorf("b.enters = %d, want 0", b.enters)
	}
	if a.generates != 200 {
		t.Errorf("a.generates = %d, want 200", a.generates)
	}
}

// Full threshold: over many draws, every positively weighted candidate is
// selected at least once.
func TestRandomChildFullThresholdCoverage(t *testing.T) {
	candidates := []Node{newProbe("a"), newProbe("b"), newProbe("c")}
	rc := NewRandomChild(candidates, []float64{1, 2, 5})
	if err := EnterTree(rc, testContext(42)); err != nil {
		t.Fatal(err)
	}

	seen := make(map[Node]int)
	for i := 0; i < 1000; i++ {
		rc.Generate(Vibe{Mode: ModeRave}, 1)
		seen[rc.Inputs()[0]]++
	}
	for _, c := range candidates {
		if seen[c] == 0 {
			t.Errorf("candidate %v never selected in 1000 draws", c)
		}
	}
}

func TestRandomChildZeroWeightNeverSelected(t *testing.T) {
	a := newProbe("a")
	never := newProbe("never")
	c := newProbe("c")
	rc := NewRandomChild([]Node{a, never, c}, []float64{1, 0, 1})
	if err := EnterTree(rc, testContext(3)); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 500; i++ {
		rc.Generate(Vibe{Mode: ModeRave}, 1)
		if rc.Inputs()[0] == Node(never) {
			t.Fatal("zero-weight candidate was selected")
		}
	}
	if never.enters != 0 {
		t.Errorf("never.enters = %d, want 0", never.enters)
	}
}

// Reselecting the current candidate skips the exit/enter cycle.
func TestRandomChildReselectionSkipsLifecycle(t *testing.T) {
	only := newProbe("only")
	rc := NewRandomChild([]Node{only}, nil)
	if err := EnterTree(rc, testContext(1)); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 100; i++ {
		rc.Generate(Vibe{Mode: ModeRave}, 1)
	}
	if only.enters != 1 || only.exits != 0 {
		t.Errorf("enters/exits = %d/%d, want 1/0 (reselection must not cycle resources)",
			only.enters, only.exits)
	}
	if only.generates != 100 {
		t.Errorf("generates = %d, want 100", only.generates)
	}
}

// A swap exits the outgoing subtree completely before entering the new one.
func TestRandomChildSwapOrdering(t *testing.T) {
	var log []string
	a := newProbe("a")
	b := newProbe("b")
	a.log, b.log = &log, &log
	rc := NewRandomChild([]Node{a, b}, nil)
	if err := EnterTree(rc, testContext(9)); err != nil {
		t.Fatal(err)
	}

	// Run until a swap happens, then check the most recent swap sequence.
	for i := 0; i < 100; i++ {
		before := rc.Inputs()[0]
		log = log[:0]
		rc.Generate(Vibe{Mode: ModeRave}, 1)
		after := rc.Inputs()[0]
		if before == after {
			continue
		}
		want := "exit " + before.(*probe).name + ",enter " + after.(*probe).name +
			",generate " + after.(*probe).name
		if got := joinLog(log); got != want {
			t.Fatalf("swap sequence = %q, want %q", got, want)
		}
		return
	}
	t.Fatal("no swap observed in 100 full-threshold generates")
}

func TestRandomChildRenderDelegates(t *testing.T) {
	a := newProbe("a")
	a.withSurface = true
	rc := NewRandomChild([]Node{a}, nil)
	if err := EnterTree(rc, testContext(1)); err != nil {
		t.Fatal(err)
	}
	if out := rc.Render(Frame{}, ColorScheme{}); out != a.surface {
		t.Error("Render should return the current child's surface")
	}
	ExitTree(rc)
}
