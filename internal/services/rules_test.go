package services

import (
	"testing"

	"github.com/google/uuid"

	"github.com/ryan-the-brodsky/tastemaker/internal/rules"
)

func TestRuleRowMappingPreservesInteractiveFields(t *testing.T) {
	component := "button"
	timing := 300
	rule := rules.Rule{
		ID:                 "tmp-001",
		Category:           rules.CategoryTemporal,
		ComponentType:      &component,
		Property:           "transition_duration",
		Operator:           "<=",
		Value:              "300",
		Severity:           rules.SeverityWarning,
		Confidence:         0.9,
		Source:             rules.SourceBaseline,
		Message:            "Transitions should finish within 300ms",
		TimingConstraintMS: &timing,
		CountProperty:      "animation_count",
		ZoneDefinition:     map[string]float64{"bottom": 0.8},
		PatternIndicators:  []string{"countdown_timer", "fake_scarcity"},
	}

	row := ruleToRow(uuid.New(), rule.ID, rule)
	back := rowToRule(row)

	if back.ID != rule.ID || back.Category != rule.Category {
		t.Fatalf("identity fields lost: %+v", back)
	}
	if back.ComponentType == nil || *back.ComponentType != component {
		t.Fatalf("component type lost: %v", back.ComponentType)
	}
	if back.TimingConstraintMS == nil || *back.TimingConstraintMS != timing {
		t.Fatalf("timing constraint lost: %v", back.TimingConstraintMS)
	}
	if back.ZoneDefinition["bottom"] != 0.8 {
		t.Fatalf("zone definition lost: %v", back.ZoneDefinition)
	}
	if len(back.PatternIndicators) != 2 || back.PatternIndicators[0] != "countdown_timer" {
		t.Fatalf("pattern indicators lost: %v", back.PatternIndicators)
	}
}

func TestRuleRowMappingOmitsEmptyJSONFields(t *testing.T) {
	rule := rules.Rule{
		ID:       "but-001",
		Category: rules.CategoryStatic,
		Property: "border_radius",
		Operator: "=",
		Value:    "8px",
		Severity: rules.SeverityWarning,
		Source:   rules.SourceExtracted,
	}
	row := ruleToRow(uuid.New(), rule.ID, rule)
	if len(row.ZoneDefinition) != 0 {
		t.Fatalf("empty zone should stay empty, got %s", row.ZoneDefinition)
	}
	if len(row.PatternIndicators) != 0 {
		t.Fatalf("empty indicators should stay empty, got %s", row.PatternIndicators)
	}
	back := rowToRule(row)
	if back.ZoneDefinition != nil || back.PatternIndicators != nil {
		t.Fatalf("inverse mapping invented fields: %+v", back)
	}
}
