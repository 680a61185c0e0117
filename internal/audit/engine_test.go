package audit

import (
	"strings"
	"testing"

	"github.com/ryan-the-brodsky/tastemaker/internal/rules"
)

func TestCheckRule(t *testing.T) {
	tests := []struct {
		name     string
		operator string
		expected string
		found    string
		property string
		want     bool
	}{
		{"numeric gte pass", ">=", "44", "48px", "touch_target", true},
		{"numeric gte fail", ">=", "44", "32px", "touch_target", false},
		{"numeric lte pass", "<=", "3", "2", "form_field_count", true},
		{"numeric lte fail", "<=", "3", "5", "form_field_count", false},
		{"numeric equality within one unit", "=", "16", "16.5px", "font_size", true},
		{"numeric equality off by one", "=", "16", "17px", "font_size", false},
		{"string equality case insensitive", "=", "Inter", "inter", "font_family", true},
		{"contains", "contains", "sans", "Inter, sans-serif", "font_stack", true},
		{"one_of match", "one_of", "left, center", "center", "text_align", true},
		{"one_of miss", "one_of", "left, center", "right", "text_align", false},
		{"color property uses tolerance", "=", "#1a365d", "#20406a", "button_color", true},
		{"color property beyond tolerance", "!=", "#1a365d", "#d97706", "button_color", false},
		{"unknown operator passes", "~=", "whatever", "anything", "prop", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckRule(tt.operator, tt.expected, tt.found, tt.property); got != tt.want {
				t.Fatalf("want=%v got=%v", tt.want, got)
			}
		})
	}
}

func TestRulePropertyMatchesKey(t *testing.T) {
	tests := []struct {
		name string
		rule string
		key  string
		want bool
	}{
		{"exact", "border_radius", "border_radius", true},
		{"rule within longer key", "border_radius", "button_border_radius", true},
		{"key within longer rule", "button_border_radius", "border_radius", false},
		{"normalizes dashes and case", "Border-Radius", "button border radius", true},
		{"unrelated", "font_size", "border_radius", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rulePropertyMatchesKey(tt.rule, tt.key); got != tt.want {
				t.Fatalf("want=%v got=%v", tt.want, got)
			}
		})
	}
}

func TestAuditCleanResult(t *testing.T) {
	engine := NewEngine()
	result := engine.Audit(Extracted{}, nil, nil, nil)
	if result.Score != 100 {
		t.Fatalf("score: want=100 got=%d", result.Score)
	}
	if result.Summary != "All extracted values match your style rules." {
		t.Fatalf("unexpected summary: %q", result.Summary)
	}
	if len(result.Violations) != 0 {
		t.Fatalf("violations: want=0 got=%d", len(result.Violations))
	}
}

func TestAuditScoringWeighsErrorsAndWarnings(t *testing.T) {
	engine := NewEngine()
	extracted := Extracted{
		ContrastPairs: []ContrastPair{
			{Element: "body", Foreground: "#777777", Background: "#888888"},
		},
		Colors: []ColorObservation{
			{Element: "button", Color: "#ff00ff"},
		},
	}
	chosenColors := map[string]string{"primary": "#1a365d", "background": "#faf5f0"}

	result := engine.Audit(extracted, nil, chosenColors, nil)
	if len(result.Violations) != 2 {
		t.Fatalf("violations: want=2 got=%d", len(result.Violations))
	}
	// One error (15) plus one warning (5).
	if result.Score != 80 {
		t.Fatalf("score: want=80 got=%d", result.Score)
	}
	if !strings.Contains(result.Summary, "1 error(s)") || !strings.Contains(result.Summary, "1 warning(s)") {
		t.Fatalf("unexpected summary: %q", result.Summary)
	}
}

func TestCheckPaletteAcceptsNearMatches(t *testing.T) {
	engine := NewEngine()
	extracted := Extracted{
		Colors: []ColorObservation{
			{Element: "header", Color: "#1b375e"},
		},
	}
	chosenColors := map[string]string{"primary": "#1a365d"}

	violations := engine.Apply(extracted, nil, chosenColors, nil)
	if len(violations) != 0 {
		t.Fatalf("near-match color flagged: %+v", violations)
	}
}

func TestCheckTypographyMatchesFirstFamilyOnly(t *testing.T) {
	engine := NewEngine()
	extracted := Extracted{
		Fonts: []FontObservation{
			{Element: "h1", Font: "Playfair Display, serif"},
			{Element: "p", Font: "Georgia, Inter"},
		},
	}
	chosenTypography := map[string]string{"heading": "Playfair Display", "body": "Inter"}

	violations := engine.Apply(extracted, nil, nil, chosenTypography)
	if len(violations) != 1 {
		t.Fatalf("violations: want=1 got=%d", len(violations))
	}
	v := violations[0]
	if v.RuleID != "typography-font" {
		t.Fatalf("rule id: want=typography-font got=%s", v.RuleID)
	}
	if v.Found != "Georgia" {
		t.Fatalf("found: want=Georgia got=%s", v.Found)
	}
}

func TestCheckContrastUsesLargeTextThreshold(t *testing.T) {
	engine := NewEngine()
	// Roughly 3.45:1, passes large text (3.0) but fails normal text (4.5).
	pair := ContrastPair{Element: "hero", Foreground: "#8a8a8a", Background: "#ffffff"}

	normal := engine.Apply(Extracted{ContrastPairs: []ContrastPair{pair}}, nil, nil, nil)
	if len(normal) != 1 || normal[0].RuleID != "wcag-contrast" || normal[0].Severity != rules.SeverityError {
		t.Fatalf("normal text should fail: %+v", normal)
	}

	pair.IsLargeText = true
	large := engine.Apply(Extracted{ContrastPairs: []ContrastPair{pair}}, nil, nil, nil)
	if len(large) != 0 {
		t.Fatalf("large text should pass: %+v", large)
	}
}

func TestCheckExplicitRulesMatchesMeasurementKeys(t *testing.T) {
	engine := NewEngine()
	extracted := Extracted{
		Measurements: map[string]any{
			"button_border_radius": "2px",
			"card_padding":         "24px",
		},
	}
	ruleList := []rules.Rule{
		{ID: "but-001", Property: "border_radius", Operator: ">=", Value: "8", Severity: rules.SeverityWarning, Message: "Prefer rounded corners"},
		{ID: "car-001", Property: "padding", Operator: ">=", Value: "16", Severity: rules.SeverityWarning},
	}

	violations := engine.Apply(extracted, ruleList, nil, nil)
	if len(violations) != 1 {
		t.Fatalf("violations: want=1 got=%d", len(violations))
	}
	v := violations[0]
	if v.RuleID != "but-001" {
		t.Fatalf("rule id: want=but-001 got=%s", v.RuleID)
	}
	if v.Expected != ">= 8" || v.Found != "2px" {
		t.Fatalf("expected/found: got %q / %q", v.Expected, v.Found)
	}
	if v.Suggestion != "Adjust border_radius to be >= 8" {
		t.Fatalf("suggestion: got %q", v.Suggestion)
	}
}

func TestAuditScoreIsDeterministic(t *testing.T) {
	engine := NewEngine()
	extracted := Extracted{
		Measurements: map[string]any{
			"a_font_size": "10px",
			"b_font_size": "11px",
			"c_font_size": "12px",
		},
	}
	ruleList := []rules.Rule{
		{ID: "typ-001", Property: "font_size", Operator: ">=", Value: "14", Severity: rules.SeverityWarning},
	}

	first := engine.Audit(extracted, ruleList, nil, nil)
	for i := 0; i < 10; i++ {
		again := engine.Audit(extracted, ruleList, nil, nil)
		if again.Score != first.Score || len(again.Violations) != len(first.Violations) {
			t.Fatalf("non-deterministic result on run %d", i)
		}
		for j := range again.Violations {
			if again.Violations[j] != first.Violations[j] {
				t.Fatalf("violation order changed on run %d", i)
			}
		}
	}
}
