// Package audit applies declarative style rules to values extracted from UI
// screenshots and recordings. Extraction is the only step that involves a
// model; everything in this package is deterministic rule application.
package audit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ryan-the-brodsky/tastemaker/internal/rules"
)

// WCAG AA thresholds.
const (
	MinContrastNormal = 4.5
	MinContrastLarge  = 3.0
)

// ColorObservation is one color found in a screenshot.
type ColorObservation struct {
	Element string `json:"element"`
	Color   string `json:"color"`
}

// FontObservation is one font usage found in a screenshot.
type FontObservation struct {
	Element string `json:"element"`
	Font    string `json:"font"`
}

// ContrastPair is a foreground/background pair for WCAG checking.
type ContrastPair struct {
	Element     string `json:"element"`
	Foreground  string `json:"foreground"`
	Background  string `json:"background"`
	IsLargeText bool   `json:"is_large_text"`
}

// Extracted holds the raw observations pulled from a screenshot. Every field
// is optional; absent sections simply skip their checks.
type Extracted struct {
	Colors        []ColorObservation `json:"colors,omitempty"`
	Fonts         []FontObservation  `json:"fonts,omitempty"`
	Measurements  map[string]any     `json:"measurements,omitempty"`
	ContrastPairs []ContrastPair     `json:"contrast_pairs,omitempty"`
}

// Violation is one failed check.
type Violation struct {
	RuleID     string `json:"rule_id"`
	Severity   string `json:"severity"`
	Property   string `json:"property"`
	Expected   string `json:"expected"`
	Found      string `json:"found"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
}

// Result is the outcome of an audit.
type Result struct {
	Violations []Violation `json:"violations"`
	Summary    string      `json:"summary"`
	Score      int         `json:"score"`
}

// CheckRule evaluates found against expected under the rule operator.
// Properties mentioning "color" always use tolerance matching. Values with a
// numeric prefix compare numerically, equality within one unit; otherwise
// strings compare case-insensitively, with "contains" and "one_of" variants.
// Unknown operators pass.
func CheckRule(operator, expected, found, propertyName string) bool {
	if strings.Contains(strings.ToLower(propertyName), "color") {
		return ColorsMatch(expected, found, DefaultColorTolerance)
	}

	expNum, okE := parseSize(expected)
	fndNum, okF := parseSize(found)
	if okE && okF {
		switch operator {
		case ">=":
			return fndNum >= expNum
		case "<=":
			return fndNum <= expNum
		case ">":
			return fndNum > expNum
		case "<":
			return fndNum < expNum
		case "=":
			diff := fndNum - expNum
			if diff < 0 {
				diff = -diff
			}
			return diff < 1
		}
	}

	switch operator {
	case "=":
		return strings.EqualFold(expected, found)
	case "contains":
		return strings.Contains(strings.ToLower(found), strings.ToLower(expected))
	case "one_of":
		foundLower := strings.ToLower(found)
		for _, o := range strings.Split(expected, ",") {
			if strings.TrimSpace(strings.ToLower(o)) == foundLower {
				return true
			}
		}
		return false
	}
	return true
}

// rulePropertyMatchesKey decides whether a rule applies to a measurement key.
// Both sides are normalized, then the rule property must appear as a
// substring of the key. The match is one-directional: a rule for
// "border_radius" applies to "button_border_radius", but a rule for
// "button_border_radius" does not apply to a bare "border_radius" key.
func rulePropertyMatchesKey(ruleProperty, measurementKey string) bool {
	return strings.Contains(normalizeKey(measurementKey), normalizeKey(ruleProperty))
}

func normalizeKey(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return strings.ReplaceAll(s, " ", "_")
}

// Engine applies rules to extracted observations.
type Engine struct {
	colorTolerance int
}

func NewEngine() *Engine {
	return &Engine{colorTolerance: DefaultColorTolerance}
}

// Apply runs every applicable check and returns the violations in a stable
// order: palette, typography, contrast, then explicit rules in input order.
func (e *Engine) Apply(extracted Extracted, ruleList []rules.Rule, chosenColors map[string]string, chosenTypography map[string]string) []Violation {
	var violations []Violation
	violations = append(violations, e.checkPalette(extracted, chosenColors)...)
	violations = append(violations, e.checkTypography(extracted, chosenTypography)...)
	violations = append(violations, e.checkContrast(extracted)...)
	violations = append(violations, e.checkExplicitRules(extracted, ruleList)...)
	return violations
}

// Audit applies the rules and wraps the violations in a scored result.
func (e *Engine) Audit(extracted Extracted, ruleList []rules.Rule, chosenColors map[string]string, chosenTypography map[string]string) Result {
	violations := e.Apply(extracted, ruleList, chosenColors, chosenTypography)
	return buildResult(violations)
}

func buildResult(violations []Violation) Result {
	errCount, warnCount := 0, 0
	for _, v := range violations {
		switch v.Severity {
		case rules.SeverityError:
			errCount++
		case rules.SeverityWarning:
			warnCount++
		}
	}
	score := 100 - errCount*15 - warnCount*5
	if score < 0 {
		score = 0
	}
	summary := "All extracted values match your style rules."
	if len(violations) > 0 {
		summary = fmt.Sprintf("Found %d rule violation(s): %d error(s), %d warning(s).", len(violations), errCount, warnCount)
	}
	return Result{Violations: violations, Summary: summary, Score: score}
}

// checkPalette flags observed colors that match none of the five palette
// roles.
func (e *Engine) checkPalette(extracted Extracted, chosenColors map[string]string) []Violation {
	if len(chosenColors) == 0 || len(extracted.Colors) == 0 {
		return nil
	}
	var expected []string
	for _, role := range []string{"primary", "secondary", "accent", "accentSoft", "background"} {
		if c := chosenColors[role]; c != "" {
			expected = append(expected, c)
		}
	}
	if len(expected) == 0 {
		return nil
	}

	var violations []Violation
	for _, obs := range extracted.Colors {
		if obs.Color == "" {
			continue
		}
		element := obs.Element
		if element == "" {
			element = "unknown"
		}
		inPalette := false
		for _, exp := range expected {
			if ColorsMatch(exp, obs.Color, e.colorTolerance) {
				inPalette = true
				break
			}
		}
		if !inPalette {
			violations = append(violations, Violation{
				RuleID:     "color-palette",
				Severity:   rules.SeverityWarning,
				Property:   element + " color",
				Expected:   "One of: " + strings.Join(expected, ", "),
				Found:      obs.Color,
				Message:    "Color not in defined palette",
				Suggestion: fmt.Sprintf("Use one of your defined palette colors instead of %s", obs.Color),
			})
		}
	}
	return violations
}

// checkTypography compares each observed font's first family against the
// chosen heading or body font.
func (e *Engine) checkTypography(extracted Extracted, chosenTypography map[string]string) []Violation {
	if len(chosenTypography) == 0 || len(extracted.Fonts) == 0 {
		return nil
	}
	expectedHeading := chosenTypography["heading"]
	expectedBody := chosenTypography["body"]

	var violations []Violation
	for _, obs := range extracted.Fonts {
		foundFont := strings.TrimSpace(strings.Split(obs.Font, ",")[0])
		expected := expectedBody
		if isHeadingElement(obs.Element) {
			expected = expectedHeading
		}
		if expected == "" {
			continue
		}
		if !strings.Contains(strings.ToLower(foundFont), strings.ToLower(expected)) {
			violations = append(violations, Violation{
				RuleID:     "typography-font",
				Severity:   rules.SeverityWarning,
				Property:   obs.Element + " font",
				Expected:   expected,
				Found:      foundFont,
				Message:    "Font doesn't match typography profile",
				Suggestion: fmt.Sprintf("Use '%s' for %s", expected, obs.Element),
			})
		}
	}
	return violations
}

func isHeadingElement(element string) bool {
	switch element {
	case "h1", "h2", "h3", "h4":
		return true
	}
	return strings.Contains(strings.ToLower(element), "heading")
}

// checkContrast verifies each extracted pair against WCAG AA minimums.
func (e *Engine) checkContrast(extracted Extracted) []Violation {
	var violations []Violation
	for _, pair := range extracted.ContrastPairs {
		ratio, ok := ContrastRatio(pair.Foreground, pair.Background)
		if !ok {
			continue
		}
		minRatio := MinContrastNormal
		sizeNote := ""
		if pair.IsLargeText {
			minRatio = MinContrastLarge
			sizeNote = "large "
		}
		if ratio < minRatio {
			element := pair.Element
			if element == "" {
				element = "unknown"
			}
			violations = append(violations, Violation{
				RuleID:     "wcag-contrast",
				Severity:   rules.SeverityError,
				Property:   element + " contrast",
				Expected:   fmt.Sprintf(">= %.1f:1 (WCAG AA)", minRatio),
				Found:      fmt.Sprintf("%.2f:1", ratio),
				Message:    fmt.Sprintf("Contrast ratio too low for %stext", sizeNote),
				Suggestion: fmt.Sprintf("Increase contrast between %s and %s to at least %.1f:1", pair.Foreground, pair.Background, minRatio),
			})
		}
	}
	return violations
}

// checkExplicitRules matches each rule against the measurement keys. The
// rule's normalized property must appear within the measurement key;
// measurement keys are checked in sorted order so output is stable.
func (e *Engine) checkExplicitRules(extracted Extracted, ruleList []rules.Rule) []Violation {
	if len(extracted.Measurements) == 0 {
		return nil
	}
	keys := make([]string, 0, len(extracted.Measurements))
	for k := range extracted.Measurements {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var violations []Violation
	for _, rule := range ruleList {
		severity := rule.Severity
		if severity == "" {
			severity = rules.SeverityWarning
		}
		for _, key := range keys {
			if !rulePropertyMatchesKey(rule.Property, key) {
				continue
			}
			found := fmt.Sprintf("%v", extracted.Measurements[key])
			if CheckRule(rule.Operator, rule.Value, found, rule.Property) {
				continue
			}
			message := rule.Message
			if message == "" {
				message = fmt.Sprintf("%s violates rule", rule.Property)
			}
			violations = append(violations, Violation{
				RuleID:     rule.ID,
				Severity:   severity,
				Property:   rule.Property,
				Expected:   fmt.Sprintf("%s %s", rule.Operator, rule.Value),
				Found:      found,
				Message:    message,
				Suggestion: fmt.Sprintf("Adjust %s to be %s %s", rule.Property, rule.Operator, rule.Value),
			})
		}
	}
	return violations
}
