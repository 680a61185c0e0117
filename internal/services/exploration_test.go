package services

import (
	"testing"

	"github.com/ryan-the-brodsky/tastemaker/internal/types"
)

func TestExplorationStateRoundTrip(t *testing.T) {
	session := &types.Session{}

	state := loadExplorationState(session, "color")
	if state.Depth != 0 || len(state.History) != 0 {
		t.Fatalf("fresh state should be empty, got %+v", state)
	}

	state = advanceExplorationState(session, "color", ExplorationSelection{
		SelectedOptionID: "professional-blue",
		SelectedOption:   map[string]any{"name": "Professional Blue", "primary": "#1e3a8a"},
		WantsRefinement:  true,
	})
	if state.Depth != 1 || state.History[0] != "Professional Blue" {
		t.Fatalf("first round not recorded: %+v", state)
	}

	reloaded := loadExplorationState(session, "color")
	if reloaded.Depth != 1 || len(reloaded.History) != 1 {
		t.Fatalf("state lost across reload: %+v", reloaded)
	}
	if reloaded.LastSelection["primary"] != "#1e3a8a" {
		t.Fatalf("last selection lost: %v", reloaded.LastSelection)
	}
}

func TestExplorationStateIsolatedPerType(t *testing.T) {
	session := &types.Session{}
	advanceExplorationState(session, "color", ExplorationSelection{SelectedOptionID: "warm-coral"})

	typography := loadExplorationState(session, "typography")
	if typography.Depth != 0 {
		t.Fatalf("typography state should be independent of color, got %+v", typography)
	}
	color := loadExplorationState(session, "color")
	if color.Depth != 1 {
		t.Fatalf("color state lost: %+v", color)
	}
}

func TestOptionNameFallsBackToID(t *testing.T) {
	named := ExplorationSelection{
		SelectedOptionID: "id-1",
		SelectedOption:   map[string]any{"name": "Minimal Swiss"},
	}
	if got := optionName(named); got != "Minimal Swiss" {
		t.Fatalf("want name, got %q", got)
	}
	unnamed := ExplorationSelection{SelectedOptionID: "id-2", SelectedOption: map[string]any{}}
	if got := optionName(unnamed); got != "id-2" {
		t.Fatalf("want id fallback, got %q", got)
	}
}

func TestFallbackOptionShapes(t *testing.T) {
	palettes := fallbackPaletteOptions()
	if len(palettes) != 5 {
		t.Fatalf("expected five palette options, got %d", len(palettes))
	}
	for _, p := range palettes {
		for _, key := range []string{"id", "name", "category", "primary", "background"} {
			if _, ok := p[key]; !ok {
				t.Fatalf("palette option missing %q: %v", key, p)
			}
		}
	}

	fonts := fallbackTypographyOptions()
	if len(fonts) != 5 {
		t.Fatalf("expected five typography options, got %d", len(fonts))
	}
	for _, f := range fonts {
		for _, key := range []string{"id", "name", "heading", "body"} {
			if _, ok := f[key]; !ok {
				t.Fatalf("typography option missing %q: %v", key, f)
			}
		}
	}
}
