package rules

import (
	"strings"
	"testing"
)

func TestBaselineCatalogLoads(t *testing.T) {
	static := Baseline()
	interactive := Interactive()
	if len(static) != 18 {
		t.Fatalf("static rule count: want=18 got=%d", len(static))
	}
	if len(interactive) != 70 {
		t.Fatalf("interactive rule count: want=70 got=%d", len(interactive))
	}
	if len(AllBaseline()) != 88 {
		t.Fatalf("total rule count: want=88 got=%d", len(AllBaseline()))
	}
}

func TestBaselineRulesAreWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, r := range AllBaseline() {
		if r.ID == "" {
			t.Fatalf("rule with empty id: %+v", r)
		}
		if seen[r.ID] {
			t.Fatalf("duplicate rule id %s", r.ID)
		}
		seen[r.ID] = true
		if r.Source != SourceBaseline {
			t.Fatalf("rule %s source: want=%s got=%s", r.ID, SourceBaseline, r.Source)
		}
		if r.Property == "" {
			t.Fatalf("rule %s has no property", r.ID)
		}
		switch r.Severity {
		case SeverityError, SeverityWarning, SeverityInfo:
		default:
			t.Fatalf("rule %s has invalid severity %q", r.ID, r.Severity)
		}
		switch r.Category {
		case CategoryStatic, CategoryTemporal, CategoryBehavioral, CategorySpatial, CategoryPattern:
		default:
			t.Fatalf("rule %s has invalid category %q", r.ID, r.Category)
		}
	}
}

func TestTemporalRulesCarryTimingConstraints(t *testing.T) {
	temporal := TemporalRules()
	if len(temporal) == 0 {
		t.Fatalf("no temporal rules")
	}
	for _, r := range temporal {
		if r.TimingConstraintMS == nil || *r.TimingConstraintMS <= 0 {
			t.Fatalf("rule %s has no positive timing constraint", r.ID)
		}
	}
}

func TestCountingRulesHaveNumericThresholds(t *testing.T) {
	counting := CountingRules()
	if len(counting) == 0 {
		t.Fatalf("no counting rules")
	}
	for _, r := range counting {
		if r.CountProperty == "" {
			t.Fatalf("rule %s has no count property", r.ID)
		}
		if _, ok := r.NumericValue(); !ok {
			t.Fatalf("rule %s value %q is not numeric", r.ID, r.Value)
		}
	}
}

func TestByPrinciple(t *testing.T) {
	for _, principle := range []string{"fitts", "hicks", "dark", "doherty"} {
		matched := ByPrinciple(principle)
		if len(matched) == 0 {
			t.Fatalf("no rules for principle %s", principle)
		}
		for _, r := range matched {
			if !strings.HasPrefix(r.ID, principle+"-") {
				t.Fatalf("rule %s leaked into principle %s", r.ID, principle)
			}
		}
	}
}

func TestCheckConflictsFloorViolation(t *testing.T) {
	// wcag-001 demands contrast_ratio_text >= 4.5.
	conflicts := CheckConflicts(Rule{
		Property: "contrast_ratio_text",
		Operator: "=",
		Value:    "2.0",
	})
	if len(conflicts) != 1 || conflicts[0].ID != "wcag-001" {
		t.Fatalf("want conflict with wcag-001, got %+v", conflicts)
	}

	conflicts = CheckConflicts(Rule{
		Property: "contrast_ratio_text",
		Operator: "=",
		Value:    "7.0",
	})
	if len(conflicts) != 0 {
		t.Fatalf("value above floor must not conflict: %+v", conflicts)
	}
}

func TestCheckConflictsRespectsComponentType(t *testing.T) {
	button := "button"
	conflicts := CheckConflicts(Rule{
		ComponentType: &button,
		Property:      "touch_target_size",
		Operator:      "<=",
		Value:         "20",
	})
	if len(conflicts) == 0 {
		t.Fatalf("expected conflict with wcag-003")
	}

	card := "card"
	conflicts = CheckConflicts(Rule{
		ComponentType: &card,
		Property:      "touch_target_size",
		Operator:      "<=",
		Value:         "20",
	})
	if len(conflicts) != 0 {
		t.Fatalf("different component type must not conflict: %+v", conflicts)
	}
}

func TestBaselineReturnsCopies(t *testing.T) {
	first := Baseline()
	first[0].ID = "mutated"
	if Baseline()[0].ID == "mutated" {
		t.Fatalf("Baseline must not expose internal slice")
	}
}
