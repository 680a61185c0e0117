package audit

import (
	"math"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGB
		ok    bool
	}{
		{"six digit hex", "#1a365d", RGB{R: 26, G: 54, B: 93}, true},
		{"three digit hex doubles", "#abc", RGB{R: 170, G: 187, B: 204}, true},
		{"rgb function", "rgb(26, 54, 93)", RGB{R: 26, G: 54, B: 93}, true},
		{"rgb no spaces", "rgb(0,0,0)", RGB{}, true},
		{"named color", "cornflowerblue", RGB{}, false},
		{"empty", "", RGB{}, false},
		{"malformed hex", "#12", RGB{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseColor(tt.input)
			if ok != tt.ok {
				t.Fatalf("ok: want=%v got=%v", tt.ok, ok)
			}
			if ok && got != tt.want {
				t.Fatalf("want=%+v got=%+v", tt.want, got)
			}
		})
	}
}

func TestColorsMatch(t *testing.T) {
	tests := []struct {
		name      string
		expected  string
		found     string
		tolerance int
		want      bool
	}{
		{"identical hex", "#1a365d", "#1a365d", 20, true},
		{"within tolerance", "#1a365d", "#20406a", 20, true},
		{"beyond tolerance", "#1a365d", "#d97706", 20, false},
		{"hex vs rgb same color", "#1a365d", "rgb(26, 54, 93)", 20, true},
		{"unparseable falls back to string equality", "cornflowerblue", "CornflowerBlue", 20, true},
		{"unparseable different strings", "cornflowerblue", "tomato", 20, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorsMatch(tt.expected, tt.found, tt.tolerance); got != tt.want {
				t.Fatalf("want=%v got=%v", tt.want, got)
			}
		})
	}
}

func TestContrastRatio(t *testing.T) {
	ratio, ok := ContrastRatio("#000000", "#ffffff")
	if !ok {
		t.Fatalf("expected parseable pair")
	}
	if math.Abs(ratio-21.0) > 0.01 {
		t.Fatalf("black on white: want=21 got=%v", ratio)
	}

	same, ok := ContrastRatio("#808080", "#808080")
	if !ok || math.Abs(same-1.0) > 1e-9 {
		t.Fatalf("identical colors: want=1 got=%v ok=%v", same, ok)
	}

	// Order of arguments must not matter.
	a, _ := ContrastRatio("#111827", "#faf5f0")
	b, _ := ContrastRatio("#faf5f0", "#111827")
	if math.Abs(a-b) > 1e-9 {
		t.Fatalf("ratio not symmetric: %v vs %v", a, b)
	}

	if _, ok := ContrastRatio("not-a-color", "#ffffff"); ok {
		t.Fatalf("unparseable color must report not ok")
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"16px", 16, true},
		{"4.5", 4.5, true},
		{"0.875rem", 0.875, true},
		{"bold", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseSize(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("parseSize(%q): want=(%v,%v) got=(%v,%v)", tt.input, tt.want, tt.ok, got, ok)
		}
	}
}
