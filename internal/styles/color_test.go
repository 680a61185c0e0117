package styles

import (
	"math"
	"testing"
)

func TestHexToHSLRoundTrip(t *testing.T) {
	tests := []string{"#1a365d", "#d97706", "#faf5f0", "#ff0000", "#00ff00", "#0000ff"}
	for _, hex := range tests {
		hsl := HexToHSL(hex)
		got := HSLToHex(hsl.H, hsl.S, hsl.L)
		if got != hex {
			t.Fatalf("round trip %s: got %s (hsl %+v)", hex, got, hsl)
		}
	}
}

func TestHexToHSLKnownValues(t *testing.T) {
	tests := []struct {
		hex  string
		want HSL
	}{
		{"#ffffff", HSL{H: 0, S: 0, L: 100}},
		{"#000000", HSL{H: 0, S: 0, L: 0}},
		{"#ff0000", HSL{H: 0, S: 100, L: 50}},
		{"#00ff00", HSL{H: 120, S: 100, L: 50}},
		{"#0000ff", HSL{H: 240, S: 100, L: 50}},
		{"#ff00ff", HSL{H: 300, S: 100, L: 50}},
	}
	for _, tt := range tests {
		got := HexToHSL(tt.hex)
		if math.Abs(got.H-tt.want.H) > 0.1 || math.Abs(got.S-tt.want.S) > 0.1 || math.Abs(got.L-tt.want.L) > 0.1 {
			t.Fatalf("%s: want=%+v got=%+v", tt.hex, tt.want, got)
		}
	}
}

func TestHexToHSLNegativeHueWrapsAround(t *testing.T) {
	// Magenta-ish colors put (g-b)/delta below zero; the hue must wrap into
	// [0, 360) instead of going negative.
	hsl := HexToHSL("#ff00aa")
	if hsl.H < 0 || hsl.H >= 360 {
		t.Fatalf("hue out of range: %v", hsl.H)
	}
	if hsl.H < 300 {
		t.Fatalf("magenta hue should sit past 300, got %v", hsl.H)
	}
}

func TestAdjustLightnessClamps(t *testing.T) {
	if got := AdjustLightness("#ffffff", 50); got != "#ffffff" {
		t.Fatalf("lightening white: want=#ffffff got=%s", got)
	}
	if got := AdjustLightness("#000000", -50); got != "#000000" {
		t.Fatalf("darkening black: want=#000000 got=%s", got)
	}
	lighter := AdjustLightness("#1a365d", 15)
	if HexToHSL(lighter).L <= HexToHSL("#1a365d").L {
		t.Fatalf("lightening did not raise lightness: %s", lighter)
	}
}

func TestContrastColor(t *testing.T) {
	if got := ContrastColor("#081f3f"); got != "#ffffff" {
		t.Fatalf("dark background: want=#ffffff got=%s", got)
	}
	if got := ContrastColor("#faf5f0"); got != "#111827" {
		t.Fatalf("light background: want=#111827 got=%s", got)
	}
}

func TestDerivedColors(t *testing.T) {
	base := map[string]string{
		"primary":    "#1a365d",
		"secondary":  "#115e59",
		"accent":     "#d97706",
		"background": "#faf5f0",
	}
	derived := DerivedColors(base)
	wantKeys := []string{
		"primaryLight", "primaryDark", "secondaryLight", "secondaryDark",
		"accentLight", "border", "textOnPrimary", "textOnSecondary",
		"textOnAccent", "textPrimary", "textSecondary",
	}
	if len(derived) != len(wantKeys) {
		t.Fatalf("derived key count: want=%d got=%d", len(wantKeys), len(derived))
	}
	for _, k := range wantKeys {
		if derived[k] == "" {
			t.Fatalf("missing derived key %s", k)
		}
	}
	if derived["textOnPrimary"] != "#ffffff" {
		t.Fatalf("textOnPrimary: want=#ffffff got=%s", derived["textOnPrimary"])
	}
	if derived["textPrimary"] != "#111827" || derived["textSecondary"] != "#6b7280" {
		t.Fatalf("fixed text colors wrong: %+v", derived)
	}
	if HexToHSL(derived["primaryDark"]).L >= HexToHSL(base["primary"]).L {
		t.Fatalf("primaryDark not darker than primary")
	}
}
