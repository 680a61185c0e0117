package audit

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// RGB is a parsed color.
type RGB struct {
	R, G, B int
}

var rgbPattern = regexp.MustCompile(`^rgb\((\d+),\s*(\d+),\s*(\d+)\)`)
var sizePattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)`)

// ParseColor parses "#RGB", "#RRGGBB", and "rgb(r, g, b)" forms.
func ParseColor(colorStr string) (RGB, bool) {
	if colorStr == "" {
		return RGB{}, false
	}
	if strings.HasPrefix(colorStr, "#") {
		hex := strings.TrimPrefix(colorStr, "#")
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return RGB{}, false
		}
		r, errR := strconv.ParseUint(hex[0:2], 16, 8)
		g, errG := strconv.ParseUint(hex[2:4], 16, 8)
		b, errB := strconv.ParseUint(hex[4:6], 16, 8)
		if errR != nil || errG != nil || errB != nil {
			return RGB{}, false
		}
		return RGB{R: int(r), G: int(g), B: int(b)}, true
	}
	if m := rgbPattern.FindStringSubmatch(colorStr); m != nil {
		r, _ := strconv.Atoi(m[1])
		g, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		return RGB{R: r, G: g, B: b}, true
	}
	return RGB{}, false
}

// ColorsMatch reports whether two colors match within a per-channel
// tolerance. When either side fails to parse it falls back to
// case-insensitive string equality.
func ColorsMatch(expected, found string, tolerance int) bool {
	exp, okE := ParseColor(expected)
	fnd, okF := ParseColor(found)
	if !okE || !okF {
		return strings.EqualFold(expected, found)
	}
	return abs(exp.R-fnd.R) <= tolerance &&
		abs(exp.G-fnd.G) <= tolerance &&
		abs(exp.B-fnd.B) <= tolerance
}

// DefaultColorTolerance is the per-channel slack used for palette matching.
const DefaultColorTolerance = 20

// relativeLuminance implements the WCAG 2.1 formula.
func relativeLuminance(c RGB) float64 {
	channel := func(v int) float64 {
		f := float64(v) / 255
		if f <= 0.03928 {
			return f / 12.92
		}
		return math.Pow((f+0.055)/1.055, 2.4)
	}
	return 0.2126*channel(c.R) + 0.7152*channel(c.G) + 0.0722*channel(c.B)
}

// ContrastRatio returns the WCAG contrast ratio between two colors, in
// [1, 21]. The second return is false when either color fails to parse.
func ContrastRatio(color1, color2 string) (float64, bool) {
	c1, ok1 := ParseColor(color1)
	c2, ok2 := ParseColor(color2)
	if !ok1 || !ok2 {
		return 0, false
	}
	l1 := relativeLuminance(c1)
	l2 := relativeLuminance(c2)
	lighter := math.Max(l1, l2)
	darker := math.Min(l1, l2)
	return (lighter + 0.05) / (darker + 0.05), true
}

// parseSize extracts the leading number from a size string ("12px" -> 12).
func parseSize(sizeStr string) (float64, bool) {
	cleaned := strings.TrimSpace(sizeStr)
	m := sizePattern.FindStringSubmatch(cleaned)
	if m == nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(m[1], 64)
	return f, err == nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
