// Package synthesizer converts aggregated preference patterns and free-form
// stated preferences into declarative style rules.
package synthesizer

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/ryan-the-brodsky/tastemaker/internal/analyzer"
	"github.com/ryan-the-brodsky/tastemaker/internal/rules"
)

// MinConfidence is the default floor below which a property produces no rule.
const MinConfidence = 0.6

// FromPatterns converts aggregated preferences into rules. Each qualifying
// property yields an equality rule for its first preferred value and
// inequality rules for up to two rejected values. Serialized map values are
// decomposed into one rule per inner property. Rule ids are sequential per
// component prefix ("but-001", "gen-001", ...).
func FromPatterns(results []analyzer.Result, minConfidence float64) []rules.Rule {
	preferences := analyzer.AggregatePreferences(results)
	var out []rules.Rule
	counters := make(map[string]int)

	nextID := func(prefix string) string {
		counters[prefix]++
		return fmt.Sprintf("%s-%03d", prefix, counters[prefix])
	}

	for _, pref := range preferences {
		if pref.Confidence < minConfidence {
			continue
		}

		componentType := inferComponentType(pref.Property)
		prefix := "gen"
		if componentType != nil {
			prefix = (*componentType)[:3]
		}

		emit := func(property, operator, value string) {
			out = append(out, rules.Rule{
				ID:            nextID(prefix),
				Category:      rules.CategoryStatic,
				ComponentType: componentType,
				Property:      property,
				Operator:      operator,
				Value:         value,
				Severity:      rules.SeverityWarning,
				Confidence:    pref.Confidence,
				Source:        rules.SourceExtracted,
				Message:       ruleMessage(property, operator, value, componentType),
			})
		}

		if len(pref.PreferredValues) > 0 {
			// First preferred value wins; later values for the same property
			// were seen less or carried weaker signal.
			best := pref.PreferredValues[0]
			if decomposed, keys := decomposeComplexValue(best); decomposed != nil {
				for _, k := range keys {
					emit(k, "=", decomposed[k])
				}
			} else {
				emit(pref.Property, "=", best)
			}
		}

		rejected := pref.RejectedValues
		if len(rejected) > 2 {
			rejected = rejected[:2]
		}
		for _, value := range rejected {
			if decomposed, keys := decomposeComplexValue(value); decomposed != nil {
				for _, k := range keys {
					emit(k, "!=", decomposed[k])
				}
			} else {
				emit(pref.Property, "!=", value)
			}
		}
	}

	return out
}

// decomposeComplexValue splits a serialized style map into its entries.
// Handles both JSON and python-dict-style single quoting. Returns nil when
// the value is a plain scalar.
func decomposeComplexValue(value string) (map[string]string, []string) {
	trimmed := strings.TrimSpace(value)
	if !strings.HasPrefix(trimmed, "{") || !strings.Contains(trimmed, ":") {
		return nil, nil
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
		swapped := strings.ReplaceAll(trimmed, "'", `"`)
		if err := json.Unmarshal([]byte(swapped), &parsed); err != nil {
			return nil, nil
		}
	}
	if len(parsed) == 0 {
		return nil, nil
	}

	out := make(map[string]string, len(parsed))
	keys := make([]string, 0, len(parsed))
	for k, v := range parsed {
		out[k] = stringifyValue(v)
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return out, keys
}

func stringifyValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return fmt.Sprintf("%g", t)
	default:
		return fmt.Sprintf("%v", v)
	}
}

var propertyComponentMap = map[string]*string{
	"border_radius":      nil, // generic
	"padding_x":          nil,
	"padding_y":          nil,
	"shadow":             nil,
	"background":         nil,
	"animation":          nil,
	"font_weight":        ptr("typography"),
	"font_size":          ptr("typography"),
	"heading_weight":     ptr("typography"),
	"heading_size_scale": ptr("typography"),
	"body_line_height":   ptr("typography"),
	"letter_spacing":     ptr("typography"),
	"font_family":        ptr("typography"),
	"paragraph_spacing":  ptr("typography"),
	"text_transform":     ptr("button"),
	"background_style":   ptr("button"),
	"transition":         ptr("button"),
	"border_width":       ptr("input"),
	"border_color":       ptr("input"),
	"label_position":     ptr("input"),
	"focus_ring":         ptr("input"),
	"hover_effect":       ptr("card"),
	"style":              ptr("navigation"),
	"item_padding_x":     ptr("navigation"),
	"item_padding_y":     ptr("navigation"),
	"active_indicator":   ptr("navigation"),
	"separator":          ptr("navigation"),
	"layout":             ptr("form"),
	"label_style":        ptr("form"),
	"spacing":            ptr("form"),
	"error_style":        ptr("form"),
	"required_indicator": ptr("form"),
	"help_text_position": ptr("form"),
	"type":               ptr("feedback"),
	"position":           ptr("feedback"),
	"icon":               ptr("feedback"),
	"duration":           ptr("feedback"),
	"size":               ptr("modal"),
	"overlay":            ptr("modal"),
	"close_button":       ptr("modal"),
	"header_style":       ptr("modal"),
}

func inferComponentType(propertyName string) *string {
	ct, ok := propertyComponentMap[propertyName]
	if !ok {
		return nil
	}
	return ct
}

func ruleMessage(property, operator, value string, componentType *string) string {
	componentStr := ""
	if componentType != nil {
		componentStr = *componentType + " "
	}
	switch operator {
	case "=":
		return fmt.Sprintf("Prefer %s%s of %s", componentStr, property, value)
	case "!=":
		return fmt.Sprintf("Avoid %s%s of %s", componentStr, property, value)
	case ">=":
		return fmt.Sprintf("%s%s should be at least %s", componentStr, property, value)
	case "<=":
		return fmt.Sprintf("%s%s should not exceed %s", componentStr, property, value)
	default:
		return fmt.Sprintf("%s%s %s %s", componentStr, property, operator, value)
	}
}

type keywordRule struct {
	keyword  string
	property string
	value    string
}

// Checked in order; earlier entries win, so plural and multi-word forms come
// before their shorter variants.
var keywordRules = []keywordRule{
	{"gradients", "background_style", "gradient"},
	{"gradient", "background_style", "gradient"},
	{"shadows", "shadow", "none"},
	{"shadow", "shadow", "md"},
	{"drop shadows", "shadow", "lg"},
	{"rounded", "border_radius", "8"},
	{"rounded corners", "border_radius", "8"},
	{"square", "border_radius", "0"},
	{"square corners", "border_radius", "0"},
	{"pill", "border_radius", "9999"},
	{"uppercase", "text_transform", "uppercase"},
	{"lowercase", "text_transform", "none"},
	{"bold", "font_weight", "700"},
	{"thin", "font_weight", "400"},
	{"large", "font_size", "18"},
	{"small", "font_size", "12"},
	{"outline", "background_style", "outline"},
	{"solid", "background_style", "solid"},
	{"minimal", "style", "minimal"},
	{"floating labels", "label_position", "floating"},
	{"inline labels", "label_position", "inline"},
}

var negationCues = []string{"never", "avoid", "no ", "don't", "without"}

// ParseStatedPreference turns a natural language statement into a rule.
// Negation cues flip the operator to exclusion; unmatched statements become a
// low-value "custom" rule carrying the raw text. Stated rules always have
// confidence 1.0.
func ParseStatedPreference(statement string, componentType *string) rules.Rule {
	lower := strings.ToLower(strings.TrimSpace(statement))

	operator := "="
	for _, cue := range negationCues {
		if strings.Contains(lower, cue) {
			operator = "!="
			break
		}
	}

	severity := rules.SeverityInfo
	if operator == "!=" {
		severity = rules.SeverityWarning
	}

	for _, kr := range keywordRules {
		if strings.Contains(lower, kr.keyword) {
			return rules.Rule{
				Category:      rules.CategoryStatic,
				ComponentType: componentType,
				Property:      kr.property,
				Operator:      operator,
				Value:         kr.value,
				Severity:      severity,
				Confidence:    1.0,
				Source:        rules.SourceStated,
				Message:       strings.TrimSpace(statement),
			}
		}
	}

	return rules.Rule{
		Category:      rules.CategoryStatic,
		ComponentType: componentType,
		Property:      "custom",
		Operator:      operator,
		Value:         strings.TrimSpace(statement),
		Severity:      rules.SeverityInfo,
		Confidence:    1.0,
		Source:        rules.SourceStated,
		Message:       strings.TrimSpace(statement),
	}
}

// Merge combines extracted and stated rules. Stated rules win when both
// target the same (property, component type, operator).
func Merge(extracted, stated []rules.Rule) []rules.Rule {
	type key struct {
		property  string
		component string
		operator  string
	}
	keyOf := func(r rules.Rule) key {
		c := ""
		if r.ComponentType != nil {
			c = *r.ComponentType
		}
		return key{property: r.Property, component: c, operator: r.Operator}
	}

	index := make(map[key]int)
	var order []rules.Rule
	for _, r := range extracted {
		k := keyOf(r)
		if i, ok := index[k]; ok {
			order[i] = r
			continue
		}
		index[k] = len(order)
		order = append(order, r)
	}
	for _, r := range stated {
		k := keyOf(r)
		if i, ok := index[k]; ok {
			order[i] = r
			continue
		}
		index[k] = len(order)
		order = append(order, r)
	}
	return order
}

// GroupByComponent buckets rules for display. Rules without a component type
// land in "global", which is always present.
func GroupByComponent(ruleList []rules.Rule) map[string][]rules.Rule {
	grouped := map[string][]rules.Rule{"global": nil}
	for _, r := range ruleList {
		component := "global"
		if r.ComponentType != nil && *r.ComponentType != "" {
			component = *r.ComponentType
		}
		grouped[component] = append(grouped[component], r)
	}
	return grouped
}

func ptr(s string) *string { return &s }
