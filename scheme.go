package stagelight

// ColorScheme is the per-frame palette handed to Render. Immutable for the
// duration of a frame; the director crossfades between schemes by calling
// Lerp each tick.
type ColorScheme struct {
	Fg         Color // foreground / accent color
	Bg         Color // background wash
	BgContrast Color // background contrast (highlights against Bg)
}

// Lerp returns the component-wise interpolation between s and other.
// t=0 returns s, t=1 returns other.
func (s ColorScheme) Lerp(other ColorScheme, t float64) ColorScheme {
	return ColorScheme{
		Fg:         s.Fg.Lerp(other.Fg, t),
		Bg:         s.Bg.Lerp(other.Bg, t),
		BgContrast: s.BgContrast.Lerp(other.BgContrast, t),
	}
}
