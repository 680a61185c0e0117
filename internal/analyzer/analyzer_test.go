package analyzer

import (
	"fmt"
	"math"
	"testing"
)

func resultWithAnswer(property, aValue, bValue, choice string) Result {
	return Result{
		OptionAStyles: map[string]any{property: aValue},
		OptionBStyles: map[string]any{property: bValue},
		Choice:        choice,
		QuestionResponses: []QuestionResponse{
			{Category: "style", Property: property, Choice: choice},
		},
	}
}

func TestAnalyzeTerritoryMappingSingleUnanimousAnswer(t *testing.T) {
	results := []Result{
		resultWithAnswer("border_radius", "8", "0", "a"),
		resultWithAnswer("border_radius", "8", "0", "a"),
	}
	scores := AnalyzeTerritoryMapping(results)
	if len(scores) != 2 {
		t.Fatalf("score count: want=2 got=%d", len(scores))
	}
	byValue := map[string]float64{}
	for _, s := range scores {
		if s.Property != "border_radius" {
			t.Fatalf("unexpected property %q", s.Property)
		}
		byValue[s.Value] = s.Confidence
	}
	if byValue["8"] != 1.0 {
		t.Fatalf("chosen confidence: want=1.0 got=%v", byValue["8"])
	}
	if byValue["0"] != 0.0 {
		t.Fatalf("rejected confidence: want=0.0 got=%v", byValue["0"])
	}
}

func TestAnalyzeTerritoryMappingNoneAnswerSkipsVote(t *testing.T) {
	results := []Result{resultWithAnswer("shadow", "none", "lg", "none")}
	scores := AnalyzeTerritoryMapping(results)
	if len(scores) != 0 {
		t.Fatalf("none answers must not produce scores, got %d", len(scores))
	}
}

func TestAnalyzeTerritoryMappingLegacyChoiceVotesWholeStyleMap(t *testing.T) {
	results := []Result{{
		OptionAStyles: map[string]any{"border_radius": "8", "shadow": "md"},
		OptionBStyles: map[string]any{"border_radius": "0", "shadow": "none"},
		Choice:        "a",
	}}
	scores := AnalyzeTerritoryMapping(results)
	if len(scores) != 4 {
		t.Fatalf("score count: want=4 got=%d", len(scores))
	}
	for _, s := range scores {
		switch s.Value {
		case "8", "md":
			if s.Confidence != 1.0 {
				t.Fatalf("%s=%s confidence: want=1.0 got=%v", s.Property, s.Value, s.Confidence)
			}
		case "0", "none":
			if s.Confidence != 0.0 {
				t.Fatalf("%s=%s confidence: want=0.0 got=%v", s.Property, s.Value, s.Confidence)
			}
		}
	}
}

func TestAnalyzeTerritoryMappingMixedVotesHalfConfidence(t *testing.T) {
	results := []Result{
		resultWithAnswer("font_weight", "700", "400", "a"),
		resultWithAnswer("font_weight", "700", "400", "b"),
	}
	scores := AnalyzeTerritoryMapping(results)
	for _, s := range scores {
		if s.Confidence != 0.5 {
			t.Fatalf("split vote confidence: want=0.5 got=%v for %s=%s", s.Confidence, s.Property, s.Value)
		}
	}
}

func TestHighSignalPropertiesSortedByDeviation(t *testing.T) {
	scores := []Score{
		{Property: "a", Value: "1", Confidence: 0.7},
		{Property: "b", Value: "2", Confidence: 0.1},
		{Property: "c", Value: "3", Confidence: 0.5},
		{Property: "d", Value: "4", Confidence: 0.35},
	}
	high := HighSignalProperties(scores, 0.65)
	if len(high) != 3 {
		t.Fatalf("high signal count: want=3 got=%d", len(high))
	}
	if high[0].Property != "b" || high[1].Property != "a" || high[2].Property != "d" {
		t.Fatalf("wrong order: %v", high)
	}
}

func TestUncertainPropertiesDedupesFirstSeen(t *testing.T) {
	scores := []Score{
		{Property: "shadow", Value: "md", Confidence: 0.5},
		{Property: "border_radius", Value: "8", Confidence: 0.55},
		{Property: "shadow", Value: "none", Confidence: 0.45},
		{Property: "padding", Value: "16", Confidence: 0.9},
	}
	got := UncertainProperties(scores, 0.4, 0.6)
	if len(got) != 2 {
		t.Fatalf("uncertain count: want=2 got=%d", len(got))
	}
	if got[0] != "shadow" || got[1] != "border_radius" {
		t.Fatalf("wrong order: %v", got)
	}
}

func TestSessionConfidenceStaysInUnitRange(t *testing.T) {
	var results []Result
	for i := 0; i < 40; i++ {
		results = append(results, resultWithAnswer(fmt.Sprintf("prop_%d", i), "x", "y", "a"))
	}
	c := SessionConfidence(results, 10)
	if c < 0 || c > 1 {
		t.Fatalf("confidence out of range: %v", c)
	}
	if c != 1.0 {
		t.Fatalf("many unanimous answers should saturate confidence, got %v", c)
	}
	if got := SessionConfidence(nil, 10); got != 0 {
		t.Fatalf("empty session confidence: want=0 got=%v", got)
	}
}

func TestShouldTransitionToDimensionIsolation(t *testing.T) {
	var strong []Result
	for i := 0; i < 6; i++ {
		strong = append(strong, resultWithAnswer(fmt.Sprintf("prop_%d", i), "x", "y", "a"))
	}
	tests := []struct {
		name    string
		count   int
		results []Result
		want    bool
	}{
		{"below minimum", 9, strong, false},
		{"hard cap", 15, nil, true},
		{"enough signal", 10, strong, true},
		{"mid range no signal", 12, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldTransitionToDimensionIsolation(tt.count, tt.results); got != tt.want {
				t.Fatalf("want=%v got=%v", tt.want, got)
			}
		})
	}
}

func TestPropertyToTestFallsBackToBorderRadius(t *testing.T) {
	prop, _ := PropertyToTest(nil, nil)
	if prop != "border_radius" {
		t.Fatalf("fallback property: want=border_radius got=%s", prop)
	}
}

func TestPropertyToTestPrefersUntestedUncertain(t *testing.T) {
	results := []Result{
		resultWithAnswer("shadow", "md", "none", "a"),
		resultWithAnswer("shadow", "md", "none", "b"),
		resultWithAnswer("padding", "16", "8", "a"),
		resultWithAnswer("padding", "16", "8", "b"),
	}
	prop, _ := PropertyToTest(results, []string{"shadow"})
	if prop != "padding" {
		t.Fatalf("want=padding got=%s", prop)
	}
}

func TestBaseStylesPicksMostFrequentWithCoercion(t *testing.T) {
	results := []Result{
		{
			OptionAStyles: map[string]any{"border_radius": 8, "shadow": "md", "full_width": true},
			OptionBStyles: map[string]any{"border_radius": 0, "shadow": "none", "full_width": false},
			Choice:        "a",
		},
		{
			OptionAStyles: map[string]any{"border_radius": 8},
			OptionBStyles: map[string]any{"border_radius": 0},
			Choice:        "a",
		},
	}
	base := BaseStyles(results)
	if got, ok := base["border_radius"].(int); !ok || got != 8 {
		t.Fatalf("border_radius: want int 8 got %T %v", base["border_radius"], base["border_radius"])
	}
	if base["shadow"] != "md" {
		t.Fatalf("shadow: want=md got=%v", base["shadow"])
	}
	if got, ok := base["full_width"].(bool); !ok || !got {
		t.Fatalf("full_width: want bool true got %T %v", base["full_width"], base["full_width"])
	}
}

func TestAggregatePreferencesBucketsByThreshold(t *testing.T) {
	results := []Result{
		resultWithAnswer("shadow", "md", "none", "a"),
		resultWithAnswer("shadow", "md", "none", "a"),
	}
	prefs := AggregatePreferences(results)
	if len(prefs) != 1 {
		t.Fatalf("preference count: want=1 got=%d", len(prefs))
	}
	p := prefs[0]
	if p.Property != "shadow" {
		t.Fatalf("property: want=shadow got=%s", p.Property)
	}
	if len(p.PreferredValues) != 1 || p.PreferredValues[0] != "md" {
		t.Fatalf("preferred: want=[md] got=%v", p.PreferredValues)
	}
	if len(p.RejectedValues) != 1 || p.RejectedValues[0] != "none" {
		t.Fatalf("rejected: want=[none] got=%v", p.RejectedValues)
	}
	if math.Abs(p.Confidence-1.0) > 1e-9 {
		t.Fatalf("confidence: want=1.0 got=%v", p.Confidence)
	}
}
