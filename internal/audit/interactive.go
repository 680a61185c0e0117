package audit

import (
	"strconv"
	"strings"

	"github.com/ryan-the-brodsky/tastemaker/internal/rules"
)

// TouchTarget is a measured interactive element from a frame.
type TouchTarget struct {
	Element      string  `json:"element"`
	WidthPX      float64 `json:"width_px"`
	HeightPX     float64 `json:"height_px"`
	IsPrimaryCTA bool    `json:"is_primary_cta"`
}

// SpatialData holds layout measurements from one frame.
type SpatialData struct {
	TouchTargets       []TouchTarget `json:"touch_targets,omitempty"`
	ButtonSpacingMinPX *float64      `json:"button_spacing_min_px,omitempty"`
}

// DarkPatternData holds manipulation signals detected in one frame.
type DarkPatternData struct {
	HasShameLanguage          bool     `json:"has_shame_language,omitempty"`
	ShameIndicators           []string `json:"shame_indicators,omitempty"`
	HasPreselectedCheckboxes  bool     `json:"has_preselected_checkboxes,omitempty"`
	PreselectedCheckboxLabels []string `json:"preselected_checkbox_labels,omitempty"`
	HasFakeUrgency            bool     `json:"has_fake_urgency,omitempty"`
	UrgencyText               string   `json:"urgency_text,omitempty"`
}

// FrameObservation is everything extracted from a single frame of a
// recording.
type FrameObservation struct {
	Spatial      SpatialData     `json:"spatial,omitempty"`
	DarkPatterns DarkPatternData `json:"dark_patterns,omitempty"`
	Counts       map[string]int  `json:"counts,omitempty"`
	States       map[string]bool `json:"states,omitempty"`
}

// TemporalMeasurement is one measured duration from a recording.
type TemporalMeasurement struct {
	MetricType string `json:"metric_type"`
	Element    string `json:"element,omitempty"`
	DurationMS int    `json:"duration_ms"`
}

// InteractiveViolation is one failed interactive check. Which optional
// fields are set depends on the rule category.
type InteractiveViolation struct {
	RuleID           string   `json:"rule_id"`
	Severity         string   `json:"severity"`
	Message          string   `json:"message"`
	MeasuredValue    *float64 `json:"measured_value,omitempty"`
	Threshold        *float64 `json:"threshold,omitempty"`
	MetricType       string   `json:"metric_type,omitempty"`
	IndicatorsFound  []string `json:"indicators_found,omitempty"`
	PreselectedItems []string `json:"preselected_items,omitempty"`
	UrgencyText      string   `json:"urgency_text,omitempty"`
	ActualValue      *bool    `json:"actual_value,omitempty"`
	ExpectedValue    *bool    `json:"expected_value,omitempty"`
}

// InteractiveViolations groups interactive findings by rule category.
type InteractiveViolations struct {
	Temporal   []InteractiveViolation `json:"temporal"`
	Spatial    []InteractiveViolation `json:"spatial"`
	Behavioral []InteractiveViolation `json:"behavioral"`
	Pattern    []InteractiveViolation `json:"pattern"`
}

// ApplyInteractiveRules checks the frame observations and temporal metrics
// against the interactive baseline. Temporal rules run against every metric;
// spatial and pattern rules run against the latest frame only; behavioral
// rules run against every frame with duplicate findings collapsed.
func ApplyInteractiveRules(frames []FrameObservation, metrics []TemporalMeasurement) InteractiveViolations {
	out := InteractiveViolations{
		Temporal:   []InteractiveViolation{},
		Spatial:    []InteractiveViolation{},
		Behavioral: []InteractiveViolation{},
		Pattern:    []InteractiveViolation{},
	}

	for _, metric := range metrics {
		for _, rule := range rules.TemporalRules() {
			if metric.MetricType != rule.Property || rule.TimingConstraintMS == nil {
				continue
			}
			if metric.DurationMS > *rule.TimingConstraintMS {
				measured := float64(metric.DurationMS)
				threshold := float64(*rule.TimingConstraintMS)
				out.Temporal = append(out.Temporal, InteractiveViolation{
					RuleID:        rule.ID,
					Severity:      rule.Severity,
					Message:       rule.Message,
					MeasuredValue: &measured,
					Threshold:     &threshold,
					MetricType:    metric.MetricType,
				})
			}
		}
	}

	if len(frames) > 0 {
		latest := frames[len(frames)-1]
		for _, rule := range rules.ByCategory(rules.CategorySpatial) {
			if v := checkSpatialRule(rule, latest); v != nil {
				out.Spatial = append(out.Spatial, *v)
			}
		}
		for _, rule := range rules.ByCategory(rules.CategoryPattern) {
			if v := checkPatternRule(rule, latest); v != nil {
				out.Pattern = append(out.Pattern, *v)
			}
		}
	}

	seen := make(map[string]bool)
	for _, rule := range rules.ByCategory(rules.CategoryBehavioral) {
		for _, frame := range frames {
			v := checkBehavioralRule(rule, frame)
			if v == nil || seen[v.RuleID] {
				continue
			}
			seen[v.RuleID] = true
			out.Behavioral = append(out.Behavioral, *v)
		}
	}

	return out
}

func checkSpatialRule(rule rules.Rule, frame FrameObservation) *InteractiveViolation {
	switch rule.Property {
	case "cta_touch_target_size":
		threshold := ruleThreshold(rule, 44)
		for _, target := range frame.Spatial.TouchTargets {
			if !target.IsPrimaryCTA {
				continue
			}
			minDim := target.WidthPX
			if target.HeightPX < minDim {
				minDim = target.HeightPX
			}
			if minDim < threshold {
				return &InteractiveViolation{
					RuleID:        rule.ID,
					Severity:      rule.Severity,
					Message:       rule.Message,
					MeasuredValue: &minDim,
					Threshold:     &threshold,
				}
			}
		}
	case "button_spacing":
		if frame.Spatial.ButtonSpacingMinPX == nil {
			return nil
		}
		threshold := ruleThreshold(rule, 8)
		spacing := *frame.Spatial.ButtonSpacingMinPX
		if spacing < threshold {
			return &InteractiveViolation{
				RuleID:        rule.ID,
				Severity:      rule.Severity,
				Message:       rule.Message,
				MeasuredValue: &spacing,
				Threshold:     &threshold,
			}
		}
	}
	return nil
}

func checkPatternRule(rule rules.Rule, frame FrameObservation) *InteractiveViolation {
	dp := frame.DarkPatterns
	switch rule.Property {
	case "decline_button_shame_language":
		if dp.HasShameLanguage {
			return &InteractiveViolation{
				RuleID:          rule.ID,
				Severity:        rule.Severity,
				Message:         rule.Message,
				IndicatorsFound: dp.ShameIndicators,
			}
		}
	case "has_preselected_addons":
		if dp.HasPreselectedCheckboxes {
			return &InteractiveViolation{
				RuleID:           rule.ID,
				Severity:         rule.Severity,
				Message:          rule.Message,
				PreselectedItems: dp.PreselectedCheckboxLabels,
			}
		}
	case "has_fake_countdown":
		if dp.HasFakeUrgency {
			return &InteractiveViolation{
				RuleID:      rule.ID,
				Severity:    rule.Severity,
				Message:     rule.Message,
				UrgencyText: dp.UrgencyText,
			}
		}
	}
	return nil
}

func checkBehavioralRule(rule rules.Rule, frame FrameObservation) *InteractiveViolation {
	if rule.CountProperty != "" {
		if actual, ok := frame.Counts[rule.CountProperty]; ok {
			threshold := int(ruleThreshold(rule, 0))
			violated := false
			switch rule.Operator {
			case "<=":
				violated = actual > threshold
			case "<":
				violated = actual >= threshold
			}
			if violated {
				measured := float64(actual)
				thresholdF := float64(threshold)
				return &InteractiveViolation{
					RuleID:        rule.ID,
					Severity:      rule.Severity,
					Message:       rule.Message,
					MeasuredValue: &measured,
					Threshold:     &thresholdF,
				}
			}
		}
	}

	if actual, ok := frame.States[rule.Property]; ok {
		expected := strings.EqualFold(rule.Value, "true")
		if actual != expected {
			a, e := actual, expected
			return &InteractiveViolation{
				RuleID:        rule.ID,
				Severity:      rule.Severity,
				Message:       rule.Message,
				ActualValue:   &a,
				ExpectedValue: &e,
			}
		}
	}
	return nil
}

func ruleThreshold(rule rules.Rule, fallback float64) float64 {
	if f, err := strconv.ParseFloat(strings.TrimSpace(rule.Value), 64); err == nil {
		return f
	}
	return fallback
}
