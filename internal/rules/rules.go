// Package rules defines the declarative style rule record and the embedded
// baseline catalog every audit runs against.
package rules

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rule categories. STATIC rules check a single screenshot; the others need
// interaction analysis.
const (
	CategoryStatic     = "STATIC"
	CategoryTemporal   = "TEMPORAL"
	CategoryBehavioral = "BEHAVIORAL"
	CategorySpatial    = "SPATIAL"
	CategoryPattern    = "PATTERN"
)

// Severities, ordered by weight.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Rule sources.
const (
	SourceBaseline  = "baseline"
	SourceExtracted = "extracted"
	SourceStated    = "stated"
)

// Rule is one declarative constraint on a UI property. Value is the canonical
// string form; numeric comparison reparses it on demand.
type Rule struct {
	ID                 string             `yaml:"id" json:"id"`
	Category           string             `yaml:"category" json:"rule_category"`
	ComponentType      *string            `yaml:"component_type" json:"component_type,omitempty"` // nil applies to every component
	Property           string             `yaml:"property" json:"property"`
	Operator           string             `yaml:"operator" json:"operator"`
	Value              string             `yaml:"value" json:"value"`
	Severity           string             `yaml:"severity" json:"severity"`
	Confidence         float64            `yaml:"confidence" json:"confidence,omitempty"`
	Message            string             `yaml:"message" json:"message"`
	Source             string             `yaml:"source" json:"source"`
	TimingConstraintMS *int               `yaml:"timing_constraint_ms" json:"timing_constraint_ms,omitempty"`
	CountProperty      string             `yaml:"count_property" json:"count_property,omitempty"`
	ZoneDefinition     map[string]float64 `yaml:"zone_definition" json:"zone_definition,omitempty"`
	PatternIndicators  []string           `yaml:"pattern_indicators" json:"pattern_indicators,omitempty"`
}

//go:embed baseline.yaml
var baselineYAML []byte

type catalog struct {
	Static      []Rule `yaml:"static"`
	Interactive []Rule `yaml:"interactive"`
}

var baseline catalog

func init() {
	if err := yaml.Unmarshal(baselineYAML, &baseline); err != nil {
		panic(fmt.Sprintf("rules: parsing embedded baseline catalog: %v", err))
	}
	for i := range baseline.Static {
		baseline.Static[i].Source = SourceBaseline
	}
	for i := range baseline.Interactive {
		baseline.Interactive[i].Source = SourceBaseline
	}
}

// Baseline returns the static baseline rules (WCAG + Nielsen).
func Baseline() []Rule {
	return append([]Rule(nil), baseline.Static...)
}

// Interactive returns the interactive baseline rules.
func Interactive() []Rule {
	return append([]Rule(nil), baseline.Interactive...)
}

// AllBaseline returns the full catalog, static rules first.
func AllBaseline() []Rule {
	out := make([]Rule, 0, len(baseline.Static)+len(baseline.Interactive))
	out = append(out, baseline.Static...)
	out = append(out, baseline.Interactive...)
	return out
}

// ByCategory filters the full catalog to one rule category.
func ByCategory(category string) []Rule {
	var out []Rule
	for _, r := range AllBaseline() {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// ByPrinciple filters interactive rules by id prefix, e.g. "fitts" or "dark".
func ByPrinciple(principle string) []Rule {
	prefix := strings.ToLower(principle) + "-"
	var out []Rule
	for _, r := range baseline.Interactive {
		if strings.HasPrefix(r.ID, prefix) {
			out = append(out, r)
		}
	}
	return out
}

// TemporalRules returns rules carrying a timing constraint.
func TemporalRules() []Rule {
	var out []Rule
	for _, r := range baseline.Interactive {
		if r.TimingConstraintMS != nil {
			out = append(out, r)
		}
	}
	return out
}

// CountingRules returns rules that count elements.
func CountingRules() []Rule {
	var out []Rule
	for _, r := range baseline.Interactive {
		if r.CountProperty != "" {
			out = append(out, r)
		}
	}
	return out
}

// NumericValue parses the rule value as a float.
func (r Rule) NumericValue() (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(r.Value), 64)
	return f, err == nil
}

func (r Rule) componentTypeString() string {
	if r.ComponentType == nil {
		return ""
	}
	return *r.ComponentType
}

// CheckConflicts reports baseline rules the user rule contradicts. A conflict
// exists when both rules target the same property and component type and
// either a floor rule meets a smaller ceiling or equality, or an equality
// meets an exclusion of the same value. Conflicts are reported, never
// auto-resolved.
func CheckConflicts(userRule Rule) []Rule {
	var conflicts []Rule
	for _, b := range AllBaseline() {
		if b.Property != userRule.Property || b.componentTypeString() != userRule.componentTypeString() {
			continue
		}
		switch {
		case (b.Operator == ">=" || b.Operator == ">") &&
			(userRule.Operator == "<=" || userRule.Operator == "<" || userRule.Operator == "="):
			bv, okB := b.NumericValue()
			uv, okU := userRule.NumericValue()
			if okB && okU && uv < bv {
				conflicts = append(conflicts, b)
			}
		case b.Operator == "!=" && userRule.Operator == "=" && userRule.Value == b.Value:
			conflicts = append(conflicts, b)
		case b.Operator == "=" && userRule.Operator == "!=" && userRule.Value == b.Value:
			conflicts = append(conflicts, b)
		}
	}
	return conflicts
}
