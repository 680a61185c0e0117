// Package variation generates deterministic A/B style comparisons. No model
// calls are involved: the same phase, count, and inputs always yield the same
// pair.
package variation

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/ryan-the-brodsky/tastemaker/internal/styles"
	"github.com/ryan-the-brodsky/tastemaker/internal/types"
)

// Option is one side of a comparison.
type Option struct {
	ID     string         `json:"id"`
	Styles map[string]any `json:"styles"`
}

// Question asks the user to pick a side for one property of the pair.
type Question struct {
	Category     string `json:"category"`
	Property     string `json:"property"`
	QuestionText string `json:"question_text"`
	OptionAValue string `json:"option_a_value"`
	OptionBValue string `json:"option_b_value"`
}

// Comparison is a generated A/B pair presented to the user.
type Comparison struct {
	ComparisonID     int        `json:"comparison_id"`
	ComponentType    string     `json:"component_type"`
	Phase            string     `json:"phase"`
	OptionA          Option     `json:"option_a"`
	OptionB          Option     `json:"option_b"`
	Context          string     `json:"context"`
	Questions        []Question `json:"questions,omitempty"`
	GenerationMethod string     `json:"generation_method,omitempty"`
}

// TerritoryMappingPair builds two dramatically different variations using a
// pole strategy: A draws from the first third of each property range, B from
// the last third, then a seeded pass swaps sides for roughly 40% of
// properties so neither side is uniformly minimal.
func TerritoryMappingPair(componentType string, comparisonID int) (Option, Option) {
	props := styles.ComponentProperties(componentType)
	rng := rand.New(rand.NewSource(int64(comparisonID) * 1000))

	a := Option{ID: uuid.NewString(), Styles: make(map[string]any, len(props))}
	b := Option{ID: uuid.NewString(), Styles: make(map[string]any, len(props))}

	for _, p := range props {
		values := p.Values
		if len(values) <= 2 {
			a.Styles[p.Name] = values[0]
			b.Styles[p.Name] = values[len(values)-1]
			continue
		}
		third := len(values) / 3
		if third < 1 {
			third = 1
		}
		a.Styles[p.Name] = values[rng.Intn(third)]
		b.Styles[p.Name] = values[len(values)-third+rng.Intn(third)]
	}

	swapRNG := rand.New(rand.NewSource(int64(comparisonID)*1000 + 123))
	for _, p := range props {
		if swapRNG.Float64() < 0.4 {
			a.Styles[p.Name], b.Styles[p.Name] = b.Styles[p.Name], a.Styles[p.Name]
		}
	}
	return a, b
}

// DimensionIsolationPair builds two variations sharing baseStyles that differ
// in exactly one property. Falls back to territory mapping when the property
// has fewer than two candidate values.
func DimensionIsolationPair(componentType string, baseStyles map[string]any, propertyToTest string, comparisonID int) (Option, Option) {
	values := styles.PropertyValues(componentType, propertyToTest)
	if len(values) < 2 {
		return TerritoryMappingPair(componentType, comparisonID)
	}

	a := Option{ID: uuid.NewString(), Styles: copyStyles(baseStyles)}
	b := Option{ID: uuid.NewString(), Styles: copyStyles(baseStyles)}

	rng := rand.New(rand.NewSource(int64(comparisonID)))
	i := rng.Intn(len(values))
	j := rng.Intn(len(values) - 1)
	if j >= i {
		j++
	}
	a.Styles[propertyToTest] = values[i]
	b.Styles[propertyToTest] = values[j]
	return a, b
}

// Generate builds the comparison for the session's current phase.
func Generate(phase string, comparisonCount int, baseStyles map[string]any, propertyToTest string) Comparison {
	switch phase {
	case types.PhaseColorExploration:
		return colorComparison(comparisonCount)
	case types.PhaseTypographyExploration:
		return typographyComparison(comparisonCount)
	}

	componentType := styles.NextComponentType(comparisonCount)
	comparisonID := comparisonCount + 1

	var a, b Option
	if phase == types.PhaseDimensionIsolation && baseStyles != nil && propertyToTest != "" {
		a, b = DimensionIsolationPair(componentType, baseStyles, propertyToTest, comparisonID)
	} else {
		a, b = TerritoryMappingPair(componentType, comparisonID)
	}

	return Comparison{
		ComparisonID:  comparisonID,
		ComponentType: componentType,
		Phase:         phase,
		OptionA:       a,
		OptionB:       b,
		Context:       styles.ContextForComponent(componentType),
	}
}

func colorComparison(comparisonCount int) Comparison {
	pa, pb := styles.PaletteComparisonPair(comparisonCount)
	return Comparison{
		ComparisonID:  comparisonCount + 1,
		ComponentType: "color_palette",
		Phase:         types.PhaseColorExploration,
		OptionA:       Option{ID: pa.Name, Styles: paletteStyles(pa)},
		OptionB:       Option{ID: pb.Name, Styles: paletteStyles(pb)},
		Context:       fmt.Sprintf("Comparing %s (%s) vs %s (%s)", pa.Name, pa.Category, pb.Name, pb.Category),
		Questions: []Question{{
			Category:     "color",
			Property:     "palette",
			QuestionText: "Which color palette feels right for your brand?",
			OptionAValue: pa.Name,
			OptionBValue: pb.Name,
		}},
		GenerationMethod: "deterministic",
	}
}

func typographyComparison(comparisonCount int) Comparison {
	fa, fb := styles.TypographyComparisonPair(comparisonCount)
	return Comparison{
		ComparisonID:  comparisonCount + 1,
		ComponentType: "font_pair",
		Phase:         types.PhaseTypographyExploration,
		OptionA:       Option{ID: fa.Name, Styles: fontStyles(fa)},
		OptionB:       Option{ID: fb.Name, Styles: fontStyles(fb)},
		Context:       fmt.Sprintf("Comparing %s (%s) vs %s (%s)", fa.Style, fa.Category, fb.Style, fb.Category),
		Questions: []Question{{
			Category:     "typography",
			Property:     "font_pair",
			QuestionText: "Which typography style suits your project?",
			OptionAValue: fa.Style,
			OptionBValue: fb.Style,
		}},
		GenerationMethod: "deterministic",
	}
}

func paletteStyles(p styles.Palette) map[string]any {
	return map[string]any{
		"primary":    p.Primary,
		"secondary":  p.Secondary,
		"accent":     p.Accent,
		"accentSoft": p.AccentSoft,
		"background": p.Background,
		"category":   p.Category,
	}
}

func fontStyles(f styles.FontPairing) map[string]any {
	return map[string]any{
		"heading":     f.Heading,
		"body":        f.Body,
		"style":       f.Style,
		"category":    f.Category,
		"description": f.Description,
	}
}

func copyStyles(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
