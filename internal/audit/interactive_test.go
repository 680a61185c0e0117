package audit

import (
	"testing"

	"github.com/ryan-the-brodsky/tastemaker/internal/rules"
)

func findInteractive(violations []InteractiveViolation, ruleID string) *InteractiveViolation {
	for i := range violations {
		if violations[i].RuleID == ruleID {
			return &violations[i]
		}
	}
	return nil
}

func temporalRuleFor(t *testing.T, metricType string) rules.Rule {
	t.Helper()
	for _, r := range rules.TemporalRules() {
		if r.Property == metricType {
			return r
		}
	}
	t.Fatalf("no temporal rule for metric type %q", metricType)
	return rules.Rule{}
}

func TestApplyInteractiveRulesTemporal(t *testing.T) {
	rule := temporalRuleFor(t, "interaction_feedback_time")
	over := *rule.TimingConstraintMS + 100

	got := ApplyInteractiveRules(nil, []TemporalMeasurement{
		{MetricType: "interaction_feedback_time", Element: "submit", DurationMS: over},
		{MetricType: "interaction_feedback_time", Element: "cancel", DurationMS: *rule.TimingConstraintMS - 1},
		{MetricType: "unknown_metric", DurationMS: 99999},
	})

	if len(got.Temporal) != 1 {
		t.Fatalf("temporal violations: want=1 got=%d", len(got.Temporal))
	}
	v := got.Temporal[0]
	if v.RuleID != rule.ID {
		t.Fatalf("rule id: want=%s got=%s", rule.ID, v.RuleID)
	}
	if v.MeasuredValue == nil || *v.MeasuredValue != float64(over) {
		t.Fatalf("measured value: want=%d got=%v", over, v.MeasuredValue)
	}
	if v.Threshold == nil || *v.Threshold != float64(*rule.TimingConstraintMS) {
		t.Fatalf("threshold: want=%d got=%v", *rule.TimingConstraintMS, v.Threshold)
	}
}

func TestApplyInteractiveRulesSpatialUsesLatestFrame(t *testing.T) {
	small := FrameObservation{Spatial: SpatialData{
		TouchTargets: []TouchTarget{{Element: "buy", WidthPX: 120, HeightPX: 28, IsPrimaryCTA: true}},
	}}
	fine := FrameObservation{Spatial: SpatialData{
		TouchTargets: []TouchTarget{{Element: "buy", WidthPX: 120, HeightPX: 48, IsPrimaryCTA: true}},
	}}

	// The bad frame is older; only the latest frame counts.
	got := ApplyInteractiveRules([]FrameObservation{small, fine}, nil)
	if len(got.Spatial) != 0 {
		t.Fatalf("older frame must not trigger spatial violations: %+v", got.Spatial)
	}

	got = ApplyInteractiveRules([]FrameObservation{fine, small}, nil)
	if len(got.Spatial) != 1 {
		t.Fatalf("spatial violations: want=1 got=%d", len(got.Spatial))
	}
	v := got.Spatial[0]
	if v.MeasuredValue == nil || *v.MeasuredValue != 28 {
		t.Fatalf("measured value: want=28 got=%v", v.MeasuredValue)
	}
	if v.Threshold == nil || *v.Threshold != 44 {
		t.Fatalf("threshold: want=44 got=%v", v.Threshold)
	}
}

func TestApplyInteractiveRulesSpatialIgnoresSecondaryTargets(t *testing.T) {
	frame := FrameObservation{Spatial: SpatialData{
		TouchTargets: []TouchTarget{{Element: "footer link", WidthPX: 60, HeightPX: 12, IsPrimaryCTA: false}},
	}}
	got := ApplyInteractiveRules([]FrameObservation{frame}, nil)
	if len(got.Spatial) != 0 {
		t.Fatalf("secondary targets must not trigger CTA sizing: %+v", got.Spatial)
	}
}

func TestApplyInteractiveRulesButtonSpacing(t *testing.T) {
	tight := 4.0
	frame := FrameObservation{Spatial: SpatialData{ButtonSpacingMinPX: &tight}}
	got := ApplyInteractiveRules([]FrameObservation{frame}, nil)
	if len(got.Spatial) != 1 {
		t.Fatalf("spatial violations: want=1 got=%d", len(got.Spatial))
	}
	if got.Spatial[0].Threshold == nil || *got.Spatial[0].Threshold != 8 {
		t.Fatalf("threshold: want=8 got=%v", got.Spatial[0].Threshold)
	}
}

func TestApplyInteractiveRulesPattern(t *testing.T) {
	frame := FrameObservation{DarkPatterns: DarkPatternData{
		HasShameLanguage:          true,
		ShameIndicators:           []string{"No thanks, I hate saving money"},
		HasPreselectedCheckboxes:  true,
		PreselectedCheckboxLabels: []string{"Add travel insurance"},
		HasFakeUrgency:            true,
		UrgencyText:               "Only 2 left!",
	}}

	got := ApplyInteractiveRules([]FrameObservation{frame}, nil)
	if len(got.Pattern) != 3 {
		t.Fatalf("pattern violations: want=3 got=%d", len(got.Pattern))
	}
	for _, v := range got.Pattern {
		switch {
		case len(v.IndicatorsFound) > 0:
			if v.IndicatorsFound[0] != "No thanks, I hate saving money" {
				t.Fatalf("indicators: %v", v.IndicatorsFound)
			}
		case len(v.PreselectedItems) > 0:
			if v.PreselectedItems[0] != "Add travel insurance" {
				t.Fatalf("preselected: %v", v.PreselectedItems)
			}
		case v.UrgencyText != "":
			if v.UrgencyText != "Only 2 left!" {
				t.Fatalf("urgency: %q", v.UrgencyText)
			}
		default:
			t.Fatalf("violation carries no pattern detail: %+v", v)
		}
	}

	clean := FrameObservation{}
	got = ApplyInteractiveRules([]FrameObservation{frame, clean}, nil)
	if len(got.Pattern) != 0 {
		t.Fatalf("only the latest frame should be checked: %+v", got.Pattern)
	}
}

func TestApplyInteractiveRulesBehavioralCounts(t *testing.T) {
	counting := rules.CountingRules()
	if len(counting) == 0 {
		t.Fatalf("no counting rules in baseline")
	}
	rule := counting[0]
	threshold := int(mustNumeric(t, rule))

	frame := FrameObservation{Counts: map[string]int{rule.CountProperty: threshold + 1}}
	got := ApplyInteractiveRules([]FrameObservation{frame}, nil)
	if v := findInteractive(got.Behavioral, rule.ID); v == nil {
		t.Fatalf("expected behavioral violation for %s", rule.ID)
	}

	// Repeats across frames collapse into one finding.
	got = ApplyInteractiveRules([]FrameObservation{frame, frame, frame}, nil)
	count := 0
	for _, v := range got.Behavioral {
		if v.RuleID == rule.ID {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("duplicate behavioral findings: want=1 got=%d", count)
	}

	within := FrameObservation{Counts: map[string]int{rule.CountProperty: threshold}}
	got = ApplyInteractiveRules([]FrameObservation{within}, nil)
	if v := findInteractive(got.Behavioral, rule.ID); v != nil {
		t.Fatalf("count at threshold must pass for <=: %+v", v)
	}
}

func TestApplyInteractiveRulesBehavioralStates(t *testing.T) {
	var stateRule rules.Rule
	for _, r := range rules.ByCategory(rules.CategoryBehavioral) {
		if r.CountProperty == "" && (r.Value == "true" || r.Value == "false") {
			stateRule = r
			break
		}
	}
	if stateRule.ID == "" {
		t.Fatalf("no boolean state rule in baseline")
	}
	expected := stateRule.Value == "true"

	bad := FrameObservation{States: map[string]bool{stateRule.Property: !expected}}
	got := ApplyInteractiveRules([]FrameObservation{bad}, nil)
	v := findInteractive(got.Behavioral, stateRule.ID)
	if v == nil {
		t.Fatalf("expected state violation for %s", stateRule.ID)
	}
	if v.ActualValue == nil || *v.ActualValue == expected {
		t.Fatalf("actual value: %+v", v)
	}

	good := FrameObservation{States: map[string]bool{stateRule.Property: expected}}
	got = ApplyInteractiveRules([]FrameObservation{good}, nil)
	if v := findInteractive(got.Behavioral, stateRule.ID); v != nil {
		t.Fatalf("matching state flagged: %+v", v)
	}
}

func mustNumeric(t *testing.T, r rules.Rule) float64 {
	t.Helper()
	n, ok := r.NumericValue()
	if !ok {
		t.Fatalf("rule %s has no numeric value", r.ID)
	}
	return n
}
