// Package analyzer turns a session's comparison history into confidence
// scores, transition decisions, and aggregated property preferences. All
// functions are pure: they read history slices and return values, so results
// are reproducible for a given history.
package analyzer

import (
	"fmt"
	"sort"
)

// QuestionResponse is a per-property answer attached to a comparison.
type QuestionResponse struct {
	Category string `json:"category"`
	Property string `json:"property"`
	Choice   string `json:"choice"`
}

// Result is one recorded comparison, decoded from storage.
type Result struct {
	OptionAStyles     map[string]any
	OptionBStyles     map[string]any
	Choice            string
	QuestionResponses []QuestionResponse
}

// Score is the confidence for one property=value combination, in [0, 1].
// 0.5 means no signal; above means preferred, below means rejected.
type Score struct {
	Property   string
	Value      string
	Confidence float64
}

// PropertyPreference aggregates all observed values for one property.
type PropertyPreference struct {
	Property        string
	PreferredValues []string
	RejectedValues  []string
	Confidence      float64
}

const (
	highSignalThreshold = 0.65
	uncertainMin        = 0.4
	uncertainMax        = 0.6
)

type voteKey struct {
	property string
	value    string
}

type voteCount struct {
	chosen   int
	rejected int
}

// tally counts votes per property=value pair while remembering first-seen
// order, so downstream lists come out in encounter order rather than map
// iteration order.
type tally struct {
	order []voteKey
	votes map[voteKey]*voteCount
}

func newTally() *tally {
	return &tally{votes: make(map[voteKey]*voteCount)}
}

func (t *tally) bump(property string, value any, chosen bool) {
	key := voteKey{property: property, value: stringify(value)}
	vc, ok := t.votes[key]
	if !ok {
		vc = &voteCount{}
		t.votes[key] = vc
		t.order = append(t.order, key)
	}
	if chosen {
		vc.chosen++
	} else {
		vc.rejected++
	}
}

// AnalyzeTerritoryMapping scores every property=value combination seen in the
// history. Multi-question answers take precedence over the whole-option
// choice: each answered property votes only for itself, while a legacy choice
// votes for every property of the chosen option and against every property of
// the rejected one. "none" answers and choices contribute nothing.
func AnalyzeTerritoryMapping(results []Result) []Score {
	t := newTally()

	for _, r := range results {
		if len(r.QuestionResponses) > 0 {
			for _, resp := range r.QuestionResponses {
				if resp.Property == "" || resp.Choice == "none" {
					continue
				}
				valueA, okA := r.OptionAStyles[resp.Property]
				valueB, okB := r.OptionBStyles[resp.Property]
				switch resp.Choice {
				case "a":
					if okA {
						t.bump(resp.Property, valueA, true)
						if okB {
							t.bump(resp.Property, valueB, false)
						}
					}
				case "b":
					if okB {
						t.bump(resp.Property, valueB, true)
						if okA {
							t.bump(resp.Property, valueA, false)
						}
					}
				}
			}
			continue
		}

		if r.Choice == "none" {
			continue
		}
		chosen, rejected := r.OptionAStyles, r.OptionBStyles
		if r.Choice == "b" {
			chosen, rejected = rejected, chosen
		}
		for _, prop := range sortedKeys(chosen) {
			t.bump(prop, chosen[prop], true)
		}
		for _, prop := range sortedKeys(rejected) {
			t.bump(prop, rejected[prop], false)
		}
	}

	scores := make([]Score, 0, len(t.order))
	for _, key := range t.order {
		vc := t.votes[key]
		total := vc.chosen + vc.rejected
		if total == 0 {
			continue
		}
		raw := float64(vc.chosen-vc.rejected) / float64(total)
		scores = append(scores, Score{
			Property:   key.property,
			Value:      key.value,
			Confidence: (raw + 1) / 2,
		})
	}
	return scores
}

// HighSignalProperties returns combinations whose confidence clears the
// threshold on either side, strongest deviation from 0.5 first.
func HighSignalProperties(scores []Score, threshold float64) []Score {
	var high []Score
	for _, s := range scores {
		if s.Confidence >= threshold || s.Confidence <= 1-threshold {
			high = append(high, s)
		}
	}
	sort.SliceStable(high, func(i, j int) bool {
		return deviation(high[i].Confidence) > deviation(high[j].Confidence)
	})
	return high
}

// UncertainProperties returns property names whose confidence sits in the
// ambiguous band, deduplicated in encounter order. These are the candidates
// for dimension isolation.
func UncertainProperties(scores []Score, minThreshold, maxThreshold float64) []string {
	var uncertain []string
	seen := make(map[string]bool)
	for _, s := range scores {
		if s.Confidence >= minThreshold && s.Confidence <= maxThreshold && !seen[s.Property] {
			seen[s.Property] = true
			uncertain = append(uncertain, s.Property)
		}
	}
	return uncertain
}

// SessionConfidence grades the session on how many distinct properties carry
// a strong signal, penalized by properties that remain ambiguous.
func SessionConfidence(results []Result, numProperties int) float64 {
	if len(results) == 0 {
		return 0
	}
	if numProperties < 1 {
		numProperties = 1
	}

	scores := AnalyzeTerritoryMapping(results)
	high := HighSignalProperties(scores, highSignalThreshold)
	uncertain := UncertainProperties(scores, uncertainMin, uncertainMax)

	highProps := make(map[string]bool)
	for _, s := range high {
		highProps[s.Property] = true
	}
	uncertainCount := 0
	for _, p := range uncertain {
		if !highProps[p] {
			uncertainCount++
		}
	}

	score := float64(len(highProps)) / float64(numProperties)
	penalty := float64(uncertainCount) / float64(numProperties) * 0.3

	return clamp01(score - penalty)
}

// ShouldTransitionToDimensionIsolation decides when territory mapping has
// mapped enough ground: never before 10 comparisons, always at 15, and in
// between once at least 5 distinct properties show a strong signal.
func ShouldTransitionToDimensionIsolation(comparisonCount int, results []Result) bool {
	if comparisonCount < 10 {
		return false
	}
	if comparisonCount >= 15 {
		return true
	}
	scores := AnalyzeTerritoryMapping(results)
	high := HighSignalProperties(scores, 0.6)
	props := make(map[string]bool)
	for _, s := range high {
		props[s.Property] = true
	}
	return len(props) >= 5
}

// PropertyToTest picks the next property for dimension isolation, preferring
// untested uncertain properties, then any uncertain, then any untested
// observed property, falling back to border_radius. Also returns the base
// styles to hold constant during the test.
func PropertyToTest(results []Result, testedProperties []string) (string, map[string]any) {
	tested := make(map[string]bool, len(testedProperties))
	for _, p := range testedProperties {
		tested[p] = true
	}

	scores := AnalyzeTerritoryMapping(results)
	uncertain := UncertainProperties(scores, uncertainMin, uncertainMax)

	property := ""
	for _, p := range uncertain {
		if !tested[p] {
			property = p
			break
		}
	}
	if property == "" && len(uncertain) > 0 {
		property = uncertain[0]
	}
	if property == "" {
		seen := make(map[string]bool)
		for _, s := range scores {
			if !seen[s.Property] {
				seen[s.Property] = true
				if !tested[s.Property] {
					property = s.Property
					break
				}
			}
		}
	}
	if property == "" {
		property = "border_radius"
	}

	return property, BaseStyles(results)
}

// BaseStyles picks the most frequently chosen value for each property across
// the history, first-seen value winning ties. Values are coerced back to
// int, float, or bool where the string form allows it.
func BaseStyles(results []Result) map[string]any {
	type valueCount struct {
		value string
		count int
	}
	counts := make(map[string][]*valueCount)
	var propOrder []string

	for _, r := range results {
		if r.Choice == "none" {
			continue
		}
		chosen := r.OptionAStyles
		if r.Choice == "b" {
			chosen = r.OptionBStyles
		}
		for _, prop := range sortedKeys(chosen) {
			value := stringify(chosen[prop])
			if _, ok := counts[prop]; !ok {
				propOrder = append(propOrder, prop)
			}
			found := false
			for _, vc := range counts[prop] {
				if vc.value == value {
					vc.count++
					found = true
					break
				}
			}
			if !found {
				counts[prop] = append(counts[prop], &valueCount{value: value, count: 1})
			}
		}
	}

	base := make(map[string]any, len(propOrder))
	for _, prop := range propOrder {
		best := counts[prop][0]
		for _, vc := range counts[prop][1:] {
			if vc.count > best.count {
				best = vc
			}
		}
		base[prop] = coerce(best.value)
	}
	return base
}

// AggregatePreferences groups scores by property: values at or above 0.65
// are preferred, at or below 0.35 rejected, and the property confidence is
// the average deviation from 0.5 scaled to [0, 1]. Value lists keep
// encounter order.
func AggregatePreferences(results []Result) []PropertyPreference {
	scores := AnalyzeTerritoryMapping(results)

	type bucket struct {
		preferred []string
		rejected  []string
		scores    []float64
	}
	buckets := make(map[string]*bucket)
	var order []string

	for _, s := range scores {
		b, ok := buckets[s.Property]
		if !ok {
			b = &bucket{}
			buckets[s.Property] = b
			order = append(order, s.Property)
		}
		b.scores = append(b.scores, s.Confidence)
		switch {
		case s.Confidence >= 0.65:
			b.preferred = append(b.preferred, s.Value)
		case s.Confidence <= 0.35:
			b.rejected = append(b.rejected, s.Value)
		}
	}

	prefs := make([]PropertyPreference, 0, len(order))
	for _, prop := range order {
		b := buckets[prop]
		sum := 0.0
		for _, c := range b.scores {
			sum += deviation(c)
		}
		avg := 0.0
		if len(b.scores) > 0 {
			avg = sum / float64(len(b.scores))
		}
		confidence := avg * 2
		if confidence > 1 {
			confidence = 1
		}
		prefs = append(prefs, PropertyPreference{
			Property:        prop,
			PreferredValues: b.preferred,
			RejectedValues:  b.rejected,
			Confidence:      confidence,
		})
	}
	return prefs
}

func deviation(confidence float64) float64 {
	if confidence < 0.5 {
		return 0.5 - confidence
	}
	return confidence - 0.5
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func stringify(v any) string {
	return fmt.Sprintf("%v", v)
}

func coerce(s string) any {
	if s == "true" {
		return true
	}
	if s == "false" {
		return false
	}
	var i int
	if _, err := fmt.Sscanf(s, "%d", &i); err == nil && fmt.Sprintf("%d", i) == s {
		return i
	}
	var f float64
	if _, err := fmt.Sscanf(s, "%g", &f); err == nil && fmt.Sprintf("%g", f) == s {
		return f
	}
	return s
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
