package styles

import "testing"

func TestPaletteCatalog(t *testing.T) {
	palettes := AllPalettes()
	if len(palettes) != 27 {
		t.Fatalf("palette count: want=27 got=%d", len(palettes))
	}
	seen := make(map[string]bool)
	for _, p := range palettes {
		if seen[p.Name] {
			t.Fatalf("duplicate palette %s", p.Name)
		}
		seen[p.Name] = true
		for role, c := range map[string]string{
			"primary": p.Primary, "secondary": p.Secondary, "accent": p.Accent,
			"accentSoft": p.AccentSoft, "background": p.Background,
		} {
			if len(c) != 7 || c[0] != '#' {
				t.Fatalf("palette %s role %s has malformed color %q", p.Name, role, c)
			}
		}
	}
}

func TestFontPairingCatalog(t *testing.T) {
	pairings := AllFontPairings()
	if len(pairings) != 18 {
		t.Fatalf("font pairing count: want=18 got=%d", len(pairings))
	}
	for _, f := range pairings {
		if f.Heading == "" || f.Body == "" {
			t.Fatalf("pairing %s missing fonts", f.Name)
		}
	}
}

func TestPaletteByName(t *testing.T) {
	p, ok := PaletteByName("default")
	if !ok || p.Primary != "#1a365d" {
		t.Fatalf("default palette: ok=%v %+v", ok, p)
	}
	if _, ok := PaletteByName("nonexistent"); ok {
		t.Fatalf("unknown palette must not resolve")
	}
}

func TestPaletteComparisonPairSchedule(t *testing.T) {
	a, b := PaletteComparisonPair(0)
	if a.Name != "default" || b.Name != "violet" {
		t.Fatalf("pair 0: got %s vs %s", a.Name, b.Name)
	}
	a, b = PaletteComparisonPair(4)
	if a.Name != "cobalt" || b.Name != "mint" {
		t.Fatalf("pair 4: got %s vs %s", a.Name, b.Name)
	}
}

func TestPaletteComparisonPairBeyondScheduleIsStable(t *testing.T) {
	for count := 5; count < 12; count++ {
		a1, b1 := PaletteComparisonPair(count)
		a2, b2 := PaletteComparisonPair(count)
		if a1.Name != a2.Name || b1.Name != b2.Name {
			t.Fatalf("pair %d not stable", count)
		}
		if a1.Name == b1.Name {
			t.Fatalf("pair %d compares a palette with itself", count)
		}
	}
}

func TestTypographyComparisonPairSchedule(t *testing.T) {
	a, b := TypographyComparisonPair(0)
	if a.Name != "modern-clean" || b.Name != "classic-editorial" {
		t.Fatalf("pair 0: got %s vs %s", a.Name, b.Name)
	}
	a, b = TypographyComparisonPair(9)
	if a.Name == "" || b.Name == "" || a.Name == b.Name {
		t.Fatalf("fallback pair invalid: %s vs %s", a.Name, b.Name)
	}
}
