package services

import (
	"testing"

	"gorm.io/datatypes"

	"github.com/ryan-the-brodsky/tastemaker/internal/analyzer"
	"github.com/ryan-the-brodsky/tastemaker/internal/types"
	"github.com/ryan-the-brodsky/tastemaker/internal/variation"
)

func TestNextPhaseAfterTypography(t *testing.T) {
	if got := nextPhaseAfterTypography(types.FlowMapping); got != types.PhaseTerritoryMapping {
		t.Fatalf("mapping flow: got %q", got)
	}
	if got := nextPhaseAfterTypography(types.FlowStudio); got != types.PhaseComponentStudio {
		t.Fatalf("studio flow: got %q", got)
	}
	if got := nextPhaseAfterTypography(""); got != types.PhaseComponentStudio {
		t.Fatalf("unknown flow should default to studio: got %q", got)
	}
}

func TestApplyPhaseTransitionColorExit(t *testing.T) {
	session := &types.Session{
		Phase:           types.PhaseColorExploration,
		Flow:            types.FlowStudio,
		ComparisonCount: explorationExitCount,
	}
	comparison := variation.Comparison{
		OptionA: variation.Option{Styles: map[string]any{"primary_color": "#1a365d"}},
		OptionB: variation.Option{Styles: map[string]any{"primary_color": "#7c3aed"}},
	}

	next := applyPhaseTransition(session, comparison, types.ChoiceB, nil)
	if next == nil || *next != types.PhaseTypographyExploration {
		t.Fatalf("expected typography transition, got %v", next)
	}
	if session.ComparisonCount != 0 {
		t.Fatalf("comparison count should reset, got %d", session.ComparisonCount)
	}
	chosen := decodeJSONMap(session.ChosenColors)
	if chosen["primary_color"] != "#7c3aed" {
		t.Fatalf("chosen colors should follow choice b, got %v", chosen)
	}
}

func TestApplyPhaseTransitionBelowThreshold(t *testing.T) {
	session := &types.Session{
		Phase:           types.PhaseColorExploration,
		ComparisonCount: explorationExitCount - 1,
	}
	if next := applyPhaseTransition(session, variation.Comparison{}, types.ChoiceA, nil); next != nil {
		t.Fatalf("no transition expected, got %q", *next)
	}
	if session.Phase != types.PhaseColorExploration {
		t.Fatalf("phase should be unchanged, got %q", session.Phase)
	}
}

func TestApplyPhaseTransitionTypographyFollowsFlow(t *testing.T) {
	session := &types.Session{
		Phase:           types.PhaseTypographyExploration,
		Flow:            types.FlowMapping,
		ComparisonCount: explorationExitCount,
	}
	next := applyPhaseTransition(session, variation.Comparison{}, types.ChoiceNone, nil)
	if next == nil || *next != types.PhaseTerritoryMapping {
		t.Fatalf("mapping flow should enter territory mapping, got %v", next)
	}
}

func TestApplyPhaseTransitionDimensionIsolationExit(t *testing.T) {
	session := &types.Session{
		Phase:           types.PhaseDimensionIsolation,
		ComparisonCount: dimensionIsolationExitCount,
	}
	next := applyPhaseTransition(session, variation.Comparison{}, types.ChoiceA, nil)
	if next == nil || *next != types.PhaseStatedPreferences {
		t.Fatalf("expected stated preferences, got %v", next)
	}
}

func TestChosenStylesDefaultsToA(t *testing.T) {
	comparison := variation.Comparison{
		OptionA: variation.Option{Styles: map[string]any{"k": "a"}},
		OptionB: variation.Option{Styles: map[string]any{"k": "b"}},
	}
	if got := chosenStyles(comparison, types.ChoiceB)["k"]; got != "b" {
		t.Fatalf("choice b: got %v", got)
	}
	if got := chosenStyles(comparison, types.ChoiceNone)["k"]; got != "a" {
		t.Fatalf("choice none should fall back to a: got %v", got)
	}
}

func TestUpdateEstablishedPreferences(t *testing.T) {
	session := &types.Session{
		EstablishedPreferences: datatypes.JSON([]byte(`{"font_family":"Inter"}`)),
	}
	comparison := variation.Comparison{
		OptionA: variation.Option{Styles: map[string]any{"border_radius": "8px"}},
		OptionB: variation.Option{Styles: map[string]any{"border_radius": "0px"}},
	}
	answers := []analyzer.QuestionResponse{
		{Property: "border_radius", Choice: types.ChoiceB},
		{Property: "missing_property", Choice: types.ChoiceA},
	}

	updateEstablishedPreferences(session, comparison, answers)

	established := decodeJSONMap(session.EstablishedPreferences)
	if established["border_radius"] != "0px" {
		t.Fatalf("answer b should record option b value, got %v", established)
	}
	if established["font_family"] != "Inter" {
		t.Fatalf("prior preferences should survive, got %v", established)
	}
	if _, ok := established["missing_property"]; ok {
		t.Fatal("answers for unknown properties should be ignored")
	}
}

func TestTestedProperties(t *testing.T) {
	rows := []*types.ComparisonResult{
		{
			Phase:         types.PhaseTerritoryMapping,
			OptionAStyles: datatypes.JSON([]byte(`{"border_radius":"8px"}`)),
			OptionBStyles: datatypes.JSON([]byte(`{"border_radius":"0px"}`)),
		},
		{
			Phase:         types.PhaseDimensionIsolation,
			OptionAStyles: datatypes.JSON([]byte(`{"border_radius":"8px","font_size":"16px"}`)),
			OptionBStyles: datatypes.JSON([]byte(`{"border_radius":"0px","font_size":"16px"}`)),
		},
		{
			Phase:         types.PhaseDimensionIsolation,
			OptionAStyles: datatypes.JSON([]byte(`{"border_radius":"8px"}`)),
			OptionBStyles: datatypes.JSON([]byte(`{"border_radius":"2px"}`)),
		},
		{
			Phase:         types.PhaseDimensionIsolation,
			OptionAStyles: datatypes.JSON([]byte(`{"padding":"12px"}`)),
			OptionBStyles: datatypes.JSON([]byte(`{"padding":"24px"}`)),
		},
	}

	tested := testedProperties(rows)
	if len(tested) != 2 {
		t.Fatalf("expected two isolated properties, got %v", tested)
	}
	if tested[0] != "border_radius" || tested[1] != "padding" {
		t.Fatalf("expected encounter order [border_radius padding], got %v", tested)
	}
}
