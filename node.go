package stagelight

import (
	"fmt"
	"strings"
)

// Node is the unit of the composition graph. A node acquires its own GPU
// resources in Enter, reconfigures itself in Generate, produces a Surface in
// Render, and releases its resources in Exit.
//
// Lifecycle contract:
//
//   - Enter and Exit act on this node's resources only. Children are entered
//     and exited by tree walks (EnterTree/ExitTree) or explicitly by
//     selection combinators; never implicitly by the node itself.
//   - Enter must not be called twice without an intervening Exit. In debug
//     mode this panics; otherwise behavior is undefined but must not corrupt
//     other nodes.
//   - Exit must be safe on a node whose Enter failed partway.
//   - Generate and Render may only be called between Enter and Exit.
//     Generate recurses: a node forwards the call to its active children.
//   - Render returning nil means "nothing to draw" — a first-class signal,
//     not an error. Parents skip nil results; they never substitute a
//     default visual.
type Node interface {
	// Enter acquires this node's resources. The context stays valid until
	// Exit and may be captured.
	Enter(ctx *Context) error

	// Exit releases the resources acquired in Enter.
	Exit()

	// Generate reconfigures the node for a new creative shift and forwards
	// the call to active children. Threshold is the probability, in [0, 1],
	// that a selection combinator re-rolls its active child on this call.
	Generate(vibe Vibe, threshold float64)

	// Render produces this tick's output, or nil for nothing to draw.
	// The returned surface belongs to the node and is only valid until its
	// next Render call.
	Render(frame Frame, scheme ColorScheme) *Surface

	// Inputs returns the currently active children, in lifecycle order.
	// Selection combinators report only the current child; composition
	// combinators report all of theirs.
	Inputs() []Node
}

// EnterTree enters node and then, recursively, each of its active inputs.
// On error the already-entered part of the subtree is exited again so the
// caller never holds a half-entered tree.
func EnterTree(node Node, ctx *Context) error {
	if err := node.Enter(ctx); err != nil {
		node.Exit()
		return err
	}
	inputs := node.Inputs()
	for i, input := range inputs {
		if err := EnterTree(input, ctx); err != nil {
			for j := i - 1; j >= 0; j-- {
				ExitTree(inputs[j])
			}
			node.Exit()
			return err
		}
	}
	return nil
}

// ExitTree exits node and then, recursively, each of its active inputs,
// mirroring EnterTree's order.
func ExitTree(node Node) {
	node.Exit()
	for _, input := range node.Inputs() {
		ExitTree(input)
	}
}

// PrintTree returns an ASCII tree dump of node and its active inputs, for
// debugging show graphs. Nodes print as their type name unless they
// implement fmt.Stringer.
func PrintTree(node Node) string {
	var sb strings.Builder
	printTree(&sb, node, "", true)
	return sb.String()
}

func printTree(sb *strings.Builder, node Node, indent string, last bool) {
	connector := "├── "
	childIndent := indent + "│   "
	if last {
		connector = "└── "
		childIndent = indent + "    "
	}
	sb.WriteString(indent)
	sb.WriteString(connector)
	sb.WriteString(nodeLabel(node))
	sb.WriteByte('\n')

	inputs := node.Inputs()
	for i, input := range inputs {
		printTree(sb, input, childIndent, i == len(inputs)-1)
	}
}

func nodeLabel(node Node) string {
	if s, ok := node.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", node)
}
