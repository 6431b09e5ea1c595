package stagelight

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Color ---

func TestColorLerp(t *testing.T) {
	a := Color{0, 0, 0, 0}
	b := Color{1, 1, 1, 1}
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	mid := a.Lerp(b, 0.5)
	if mid.R != 0.5 || mid.A != 0.5 {
		t.Errorf("Lerp(0.5) = %v, want all 0.5", mid)
	}
	// t clamps.
	if got := a.Lerp(b, 2); got != b {
		t.Errorf("Lerp(2) = %v, want %v (clamped)", got, b)
	}
}

// --- Range ---

func TestRangeContains(t *testing.T) {
	r := Range{Min: 0.2, Max: 0.8}
	for v, want := range map[float64]bool{0.2: true, 0.5: true, 0.8: true, 0.1: false, 0.9: false} {
		if got := r.Contains(v); got != want {
			t.Errorf("Contains(%v) = %v, want %v", v, got, want)
		}
	}
}

// --- BlendMode ---

func TestBlendModeEbitenBlend(t *testing.T) {
	if BlendNormal.EbitenBlend() != ebiten.BlendSourceOver {
		t.Error("BlendNormal should map to source-over")
	}
	if BlendAdditive.EbitenBlend() != ebiten.BlendLighter {
		t.Error("BlendAdditive should map to lighter")
	}
	mul := BlendMultiply.EbitenBlend()
	if mul.BlendFactorSourceRGB != ebiten.BlendFactorDestinationColor {
		t.Error("BlendMultiply source RGB factor should be destination color")
	}
	scr := BlendScreen.EbitenBlend()
	if scr.BlendFactorDestinationRGB != ebiten.BlendFactorOneMinusSourceColor {
		t.Error("BlendScreen destination RGB factor should be one-minus-source-color")
	}
}

func TestMultiplyRGBBlendIgnoresAlpha(t *testing.T) {
	// result.rgb = dst.rgb * src.rgb with no alpha contribution.
	if multiplyRGBBlend.BlendFactorSourceRGB != ebiten.BlendFactorDestinationColor {
		t.Error("source RGB factor should be destination color")
	}
	if multiplyRGBBlend.BlendFactorDestinationRGB != ebiten.BlendFactorZero {
		t.Error("destination RGB factor should be zero")
	}
	if multiplyRGBBlend.BlendFactorSourceAlpha != ebiten.BlendFactorZero ||
		multiplyRGBBlend.BlendFactorDestinationAlpha != ebiten.BlendFactorOne {
		t.Error("alpha should pass the destination through untouched")
	}
}

// --- clamp01 ---

func TestClamp01(t *testing.T) {
	for in, want := range map[float64]float64{-1: 0, 0: 0, 0.5: 0.5, 1: 1, 2: 1} {
		if got := clamp01(in); got != want {
			t.Errorf("clamp01(%v) = %v, want %v", in, got, want)
		}
	}
}

// --- ColorScheme ---

func TestColorSchemeLerp(t *testing.T) {
	a := ColorScheme{Fg: Color{1, 0, 0, 1}, Bg: ColorBlack, BgContrast: Color{0, 0, 1, 1}}
	b := ColorScheme{Fg: Color{0, 1, 0, 1}, Bg: ColorWhite, BgContrast: Color{0, 1, 0, 1}}
	mid := a.Lerp(b, 0.5)
	if mid.Fg.R != 0.5 || mid.Fg.G != 0.5 {
		t.Errorf("Fg mid = %v, want R=G=0.5", mid.Fg)
	}
	if mid.Bg.R != 0.5 {
		t.Errorf("Bg mid = %v, want 0.5 gray", mid.Bg)
	}
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
}
