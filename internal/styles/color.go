package styles

import (
	"fmt"
	"math"
	"strings"
)

// HSL holds hue in degrees and saturation/lightness as percentages.
type HSL struct {
	H float64
	S float64
	L float64
}

func HexToHSL(hexColor string) HSL {
	hexColor = strings.TrimPrefix(hexColor, "#")
	if len(hexColor) != 6 {
		return HSL{}
	}
	r := float64(hexByte(hexColor[0:2])) / 255
	g := float64(hexByte(hexColor[2:4])) / 255
	b := float64(hexByte(hexColor[4:6])) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	delta := maxC - minC

	l := (maxC + minC) / 2

	var h, s float64
	if delta != 0 {
		s = delta / (1 - math.Abs(2*l-1))
		switch maxC {
		case r:
			h = 60 * math.Mod((g-b)/delta, 6)
			if h < 0 {
				h += 360
			}
		case g:
			h = 60 * ((b-r)/delta + 2)
		default:
			h = 60 * ((r-g)/delta + 4)
		}
	}

	return HSL{
		H: math.Round(h*10) / 10,
		S: math.Round(s*100*10) / 10,
		L: math.Round(l*100*10) / 10,
	}
}

func HSLToHex(h, s, l float64) string {
	s /= 100
	l /= 100

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r1, g1, b1 float64
	switch {
	case h < 60:
		r1, g1, b1 = c, x, 0
	case h < 120:
		r1, g1, b1 = x, c, 0
	case h < 180:
		r1, g1, b1 = 0, c, x
	case h < 240:
		r1, g1, b1 = 0, x, c
	case h < 300:
		r1, g1, b1 = x, 0, c
	default:
		r1, g1, b1 = c, 0, x
	}

	r := int(math.Round((r1 + m) * 255))
	g := int(math.Round((g1 + m) * 255))
	b := int(math.Round((b1 + m) * 255))
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// AdjustLightness shifts a hex color's lightness by delta percentage points,
// clamped to [0, 100].
func AdjustLightness(hexColor string, delta float64) string {
	hsl := HexToHSL(hexColor)
	newL := math.Max(0, math.Min(100, hsl.L+delta))
	return HSLToHex(hsl.H, hsl.S, newL)
}

// ContrastColor returns white for dark backgrounds and near-black for light
// ones.
func ContrastColor(hexColor string) string {
	if HexToHSL(hexColor).L < 50 {
		return "#ffffff"
	}
	return "#111827"
}

// DerivedColors computes the eleven derived values a full palette carries on
// top of its five base roles.
func DerivedColors(colors map[string]string) map[string]string {
	return map[string]string{
		"primaryLight":    AdjustLightness(colors["primary"], 15),
		"primaryDark":     AdjustLightness(colors["primary"], -15),
		"secondaryLight":  AdjustLightness(colors["secondary"], 15),
		"secondaryDark":   AdjustLightness(colors["secondary"], -15),
		"accentLight":     AdjustLightness(colors["accent"], 20),
		"border":          AdjustLightness(colors["background"], -10),
		"textOnPrimary":   ContrastColor(colors["primary"]),
		"textOnSecondary": ContrastColor(colors["secondary"]),
		"textOnAccent":    ContrastColor(colors["accent"]),
		"textPrimary":     "#111827",
		"textSecondary":   "#6b7280",
	}
}

func hexByte(s string) uint8 {
	var v uint8
	for i := 0; i < len(s); i++ {
		v <<= 4
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			v |= c - '0'
		case c >= 'a' && c <= 'f':
			v |= c - 'a' + 10
		case c >= 'A' && c <= 'F':
			v |= c - 'A' + 10
		}
	}
	return v
}
