package synthesizer

import (
	"testing"

	"github.com/ryan-the-brodsky/tastemaker/internal/analyzer"
	"github.com/ryan-the-brodsky/tastemaker/internal/rules"
)

func strongResult(property, aValue, bValue string) analyzer.Result {
	return analyzer.Result{
		OptionAStyles: map[string]any{property: aValue},
		OptionBStyles: map[string]any{property: bValue},
		Choice:        "a",
		QuestionResponses: []analyzer.QuestionResponse{
			{Category: "style", Property: property, Choice: "a"},
		},
	}
}

func TestFromPatternsEmitsPreferredAndRejected(t *testing.T) {
	results := []analyzer.Result{
		strongResult("border_radius", "8", "0"),
		strongResult("border_radius", "8", "0"),
	}
	got := FromPatterns(results, MinConfidence)
	if len(got) != 2 {
		t.Fatalf("rule count: want=2 got=%d", len(got))
	}

	preferred := got[0]
	if preferred.Operator != "=" || preferred.Value != "8" {
		t.Fatalf("preferred rule: %+v", preferred)
	}
	if preferred.Source != rules.SourceExtracted || preferred.Severity != rules.SeverityWarning {
		t.Fatalf("preferred rule metadata: %+v", preferred)
	}
	if preferred.ComponentType != nil {
		t.Fatalf("generic property must stay global: %+v", preferred.ComponentType)
	}
	if preferred.ID != "gen-001" {
		t.Fatalf("rule id: want=gen-001 got=%s", preferred.ID)
	}

	rejected := got[1]
	if rejected.Operator != "!=" || rejected.Value != "0" {
		t.Fatalf("rejected rule: %+v", rejected)
	}
	if rejected.ID != "gen-002" {
		t.Fatalf("rule id: want=gen-002 got=%s", rejected.ID)
	}
}

func TestFromPatternsSkipsLowConfidence(t *testing.T) {
	split := []analyzer.Result{
		strongResult("shadow", "md", "none"),
		{
			OptionAStyles: map[string]any{"shadow": "md"},
			OptionBStyles: map[string]any{"shadow": "none"},
			Choice:        "b",
			QuestionResponses: []analyzer.QuestionResponse{
				{Category: "style", Property: "shadow", Choice: "b"},
			},
		},
	}
	if got := FromPatterns(split, MinConfidence); len(got) != 0 {
		t.Fatalf("split votes must not produce rules: %+v", got)
	}
}

func TestFromPatternsLimitsRejectedValues(t *testing.T) {
	results := []analyzer.Result{
		strongResult("font_weight", "700", "400"),
		strongResult("font_weight", "700", "500"),
		strongResult("font_weight", "700", "300"),
	}
	got := FromPatterns(results, MinConfidence)
	rejectedCount := 0
	for _, r := range got {
		if r.Operator == "!=" {
			rejectedCount++
		}
	}
	if rejectedCount != 2 {
		t.Fatalf("rejected rules: want=2 got=%d", rejectedCount)
	}
}

func TestFromPatternsDecomposesCompoundValues(t *testing.T) {
	compound := `{'heading': 'Playfair Display', 'body': 'Inter'}`
	results := []analyzer.Result{
		strongResult("fonts", compound, "other"),
		strongResult("fonts", compound, "other"),
	}
	got := FromPatterns(results, MinConfidence)

	var properties []string
	for _, r := range got {
		if r.Operator == "=" {
			properties = append(properties, r.Property)
		}
	}
	if len(properties) != 2 || properties[0] != "body" || properties[1] != "heading" {
		t.Fatalf("decomposed properties: want=[body heading] got=%v", properties)
	}
}

func TestParseStatedPreference(t *testing.T) {
	button := "button"
	tests := []struct {
		name       string
		statement  string
		component  *string
		wantProp   string
		wantOp     string
		wantValue  string
		wantSev    string
	}{
		{"negated gradients", "Never use gradients", nil, "background_style", "!=", "gradient", rules.SeverityWarning},
		{"positive rounded", "I like rounded corners", &button, "border_radius", "=", "8", rules.SeverityInfo},
		{"avoid shadows", "Avoid shadows everywhere", nil, "shadow", "!=", "none", rules.SeverityWarning},
		{"pill buttons", "Pill shaped buttons please", &button, "border_radius", "=", "9999", rules.SeverityInfo},
		{"unmatched custom", "Everything should feel cozy", nil, "custom", "=", "Everything should feel cozy", rules.SeverityInfo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseStatedPreference(tt.statement, tt.component)
			if got.Property != tt.wantProp || got.Operator != tt.wantOp || got.Value != tt.wantValue {
				t.Fatalf("want %s %s %s, got %s %s %s", tt.wantProp, tt.wantOp, tt.wantValue, got.Property, got.Operator, got.Value)
			}
			if got.Severity != tt.wantSev {
				t.Fatalf("severity: want=%s got=%s", tt.wantSev, got.Severity)
			}
			if got.Confidence != 1.0 {
				t.Fatalf("stated confidence: want=1.0 got=%v", got.Confidence)
			}
			if got.Source != rules.SourceStated {
				t.Fatalf("source: want=%s got=%s", rules.SourceStated, got.Source)
			}
		})
	}
}

func TestMergeStatedWins(t *testing.T) {
	extracted := []rules.Rule{
		{Property: "border_radius", Operator: "=", Value: "8", Source: rules.SourceExtracted},
		{Property: "shadow", Operator: "=", Value: "md", Source: rules.SourceExtracted},
	}
	stated := []rules.Rule{
		{Property: "border_radius", Operator: "=", Value: "0", Source: rules.SourceStated},
	}

	merged := Merge(extracted, stated)
	if len(merged) != 2 {
		t.Fatalf("merged count: want=2 got=%d", len(merged))
	}
	if merged[0].Value != "0" || merged[0].Source != rules.SourceStated {
		t.Fatalf("stated rule must replace extracted: %+v", merged[0])
	}
	if merged[1].Property != "shadow" {
		t.Fatalf("untouched rule order changed: %+v", merged[1])
	}
}

func TestMergeKeepsDistinctOperators(t *testing.T) {
	extracted := []rules.Rule{{Property: "shadow", Operator: "=", Value: "md"}}
	stated := []rules.Rule{{Property: "shadow", Operator: "!=", Value: "none"}}
	if merged := Merge(extracted, stated); len(merged) != 2 {
		t.Fatalf("different operators must not collide: %+v", merged)
	}
}

func TestGroupByComponentAlwaysHasGlobal(t *testing.T) {
	button := "button"
	grouped := GroupByComponent([]rules.Rule{
		{ID: "but-001", ComponentType: &button},
		{ID: "gen-001"},
	})
	if len(grouped["button"]) != 1 {
		t.Fatalf("button group: %+v", grouped)
	}
	if len(grouped["global"]) != 1 {
		t.Fatalf("global group: %+v", grouped)
	}
	if _, ok := GroupByComponent(nil)["global"]; !ok {
		t.Fatalf("global bucket must always exist")
	}
}
