// Package stagelight is an audio-reactive visual composition engine for
// [Ebitengine].
//
// Stagelight drives a real-time show as a tree of effect nodes: each [Node]
// acquires GPU resources on Enter, reshuffles its look on Generate (once
// per creative shift), renders a [Surface] every tick, and releases its
// resources on Exit. Combinators select between subtrees ([ModeSwitch],
// [RandomChild], [RandomOperation]) or merge rendered surfaces
// ([LayerCompose], [MultiplyCompose]) with configurable blend modes.
//
// # Quick start
//
// Assemble the built-in stage graph, enter it, and drive it from your game
// loop:
//
//	ctx := stagelight.NewContext(1280, 720, seed)
//	stage := stagelight.NewConcertStage()
//	if err := stage.Enter(ctx); err != nil {
//		log.Fatal(err)
//	}
//	defer stage.Exit()
//
//	stage.Generate(stagelight.Vibe{Mode: stagelight.ModeRave, Hype: 80}, 1.0)
//
//	// every frame:
//	out := stage.Render(frame, scheme)
//	if out != nil {
//		screen.DrawImage(out.Image(), nil)
//	}
//
// Generate is infrequent — call it when the show should change character.
// Render runs every frame. The threshold argument to Generate is the
// probability that each random combinator re-rolls its choice: 1.0 forces a
// fresh look, 0.0 keeps the current one.
//
// # Lifecycle
//
// The engine is single-threaded and synchronous. A node's resources live
// exactly between its Enter and Exit; when a selection combinator swaps
// subtrees, the outgoing subtree is fully exited before the incoming one is
// entered, so inactive branches never hold GPU memory. Render may return
// nil to mean "nothing to draw" — parents skip such layers rather than
// substituting a default.
//
// Custom leaf effects implement [Node] and plug into the same combinators;
// see effect.go and decorator.go for the built-in examples.
//
// [Ebitengine]: https://ebitengine.org
package stagelight
