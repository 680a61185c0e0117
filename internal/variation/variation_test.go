package variation

import (
	"reflect"
	"testing"

	"github.com/ryan-the-brodsky/tastemaker/internal/styles"
	"github.com/ryan-the-brodsky/tastemaker/internal/types"
)

func TestTerritoryMappingPairIsSeededByComparisonID(t *testing.T) {
	a1, b1 := TerritoryMappingPair("button", 7)
	a2, b2 := TerritoryMappingPair("button", 7)
	if !reflect.DeepEqual(a1.Styles, a2.Styles) || !reflect.DeepEqual(b1.Styles, b2.Styles) {
		t.Fatalf("same comparison id produced different styles")
	}

	a3, _ := TerritoryMappingPair("button", 8)
	if reflect.DeepEqual(a1.Styles, a3.Styles) {
		t.Fatalf("different comparison ids produced identical styles")
	}
}

func TestTerritoryMappingPairCoversEveryProperty(t *testing.T) {
	a, b := TerritoryMappingPair("button", 1)
	props := styles.ComponentProperties("button")
	if len(a.Styles) != len(props) || len(b.Styles) != len(props) {
		t.Fatalf("style count: want=%d got a=%d b=%d", len(props), len(a.Styles), len(b.Styles))
	}
	differ := false
	for _, p := range props {
		if a.Styles[p.Name] != b.Styles[p.Name] {
			differ = true
		}
	}
	if !differ {
		t.Fatalf("options are identical")
	}
	if a.ID == b.ID {
		t.Fatalf("options share an id")
	}
}

func TestDimensionIsolationPairVariesOnlyTestedProperty(t *testing.T) {
	base := map[string]any{
		"border_radius": 8,
		"shadow":        "md",
		"font_weight":   500,
	}
	a, b := DimensionIsolationPair("button", base, "border_radius", 3)

	if a.Styles["border_radius"] == b.Styles["border_radius"] {
		t.Fatalf("tested property must differ: %v", a.Styles["border_radius"])
	}
	for _, key := range []string{"shadow", "font_weight"} {
		if a.Styles[key] != base[key] || b.Styles[key] != base[key] {
			t.Fatalf("untested property %s changed", key)
		}
	}
	if base["border_radius"] != 8 {
		t.Fatalf("base styles mutated")
	}
}

func TestDimensionIsolationPairFallsBackWithoutValues(t *testing.T) {
	a, b := DimensionIsolationPair("button", map[string]any{}, "no_such_property", 5)
	props := styles.ComponentProperties("button")
	if len(a.Styles) != len(props) || len(b.Styles) != len(props) {
		t.Fatalf("fallback should produce full territory pair")
	}
}

func TestGenerateColorExploration(t *testing.T) {
	c := Generate(types.PhaseColorExploration, 0, nil, "")
	if c.ComparisonID != 1 {
		t.Fatalf("comparison id: want=1 got=%d", c.ComparisonID)
	}
	if c.ComponentType != "color_palette" {
		t.Fatalf("component type: want=color_palette got=%s", c.ComponentType)
	}
	if c.OptionA.ID != "default" || c.OptionB.ID != "violet" {
		t.Fatalf("first scheduled pair: got %s vs %s", c.OptionA.ID, c.OptionB.ID)
	}
	if len(c.Questions) != 1 || c.Questions[0].Property != "palette" {
		t.Fatalf("questions: %+v", c.Questions)
	}
	if c.GenerationMethod != "deterministic" {
		t.Fatalf("generation method: %q", c.GenerationMethod)
	}
}

func TestGenerateTypographyExploration(t *testing.T) {
	c := Generate(types.PhaseTypographyExploration, 2, nil, "")
	if c.ComponentType != "font_pair" {
		t.Fatalf("component type: want=font_pair got=%s", c.ComponentType)
	}
	if c.OptionA.Styles["heading"] == "" || c.OptionA.Styles["body"] == "" {
		t.Fatalf("option styles missing fonts: %+v", c.OptionA.Styles)
	}
	if c.Questions[0].Category != "typography" {
		t.Fatalf("question category: %+v", c.Questions[0])
	}
}

func TestGenerateCyclesComponentTypes(t *testing.T) {
	seen := make(map[string]bool)
	for count := 0; count < 8; count++ {
		c := Generate(types.PhaseTerritoryMapping, count, nil, "")
		seen[c.ComponentType] = true
		if c.Phase != types.PhaseTerritoryMapping {
			t.Fatalf("phase: %s", c.Phase)
		}
		if c.Context == "" {
			t.Fatalf("component %s has no context", c.ComponentType)
		}
	}
	if len(seen) != 8 {
		t.Fatalf("component cycle: want=8 distinct got=%d", len(seen))
	}
}

func TestGenerateDimensionIsolationHoldsBaseConstant(t *testing.T) {
	base := map[string]any{"shadow": "md"}
	c := Generate(types.PhaseDimensionIsolation, 0, base, "border_radius")
	if c.OptionA.Styles["shadow"] != "md" || c.OptionB.Styles["shadow"] != "md" {
		t.Fatalf("base styles not carried: %+v vs %+v", c.OptionA.Styles, c.OptionB.Styles)
	}
	if c.OptionA.Styles["border_radius"] == c.OptionB.Styles["border_radius"] {
		t.Fatalf("tested property identical on both sides")
	}
}
