package stagelight

// Mode identifies a named show mode. ModeSwitch binds one subtree per mode;
// lookup is by exact identity, no fallback.
type Mode string

const (
	ModeGentle   Mode = "gentle"
	ModeRave     Mode = "rave"
	ModeBlackout Mode = "blackout"
)

// Vibe is the immutable per-shift input passed to Generate. It describes the
// current creative direction: which mode is active, how intense the show
// should be, and what constraints the director has imposed.
type Vibe struct {
	// Mode selects the active subtree in every ModeSwitch.
	Mode Mode
	// Hype is the show intensity in [0, 100].
	Hype float64
	// AllowRainbows permits multi-hue effects. Effects that cycle the full
	// spectrum must render from the color scheme instead when false.
	AllowRainbows bool
	// HypeRange bounds the hype values effects should randomize within.
	HypeRange Range
}
