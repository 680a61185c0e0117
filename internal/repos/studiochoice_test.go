package repos_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/ryan-the-brodsky/tastemaker/internal/repos"
	"github.com/ryan-the-brodsky/tastemaker/internal/repos/testutil"
	"github.com/ryan-the-brodsky/tastemaker/internal/types"
)

func TestStudioChoiceRepoUpsertPerDimension(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := repos.NewStudioChoiceRepo(db, testutil.Logger(t))

	user := testutil.SeedUser(t, ctx, tx, "studio@example.com")
	session := testutil.SeedSession(t, ctx, tx, user.ID, types.PhaseComponentStudio)

	first := &types.StudioChoice{
		ID:            uuid.New(),
		SessionID:     session.ID,
		ComponentType: "button",
		DimensionKey:  "shape",
		OptionID:      "rounded",
		SelectedValue: "8px",
		CSSProperty:   "border_radius",
	}
	if _, err := repo.Upsert(ctx, tx, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	fineTuned := "10px"
	second := &types.StudioChoice{
		ID:             uuid.New(),
		SessionID:      session.ID,
		ComponentType:  "button",
		DimensionKey:   "shape",
		OptionID:       "pill",
		SelectedValue:  "9999px",
		FineTunedValue: &fineTuned,
		CSSProperty:    "border_radius",
	}
	if _, err := repo.Upsert(ctx, tx, second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	choices, err := repo.ListByComponent(ctx, tx, session.ID, "button")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(choices) != 1 {
		t.Fatalf("re-choosing a dimension must not duplicate, got %d rows", len(choices))
	}
	if choices[0].OptionID != "pill" {
		t.Fatalf("upsert should keep the latest pick, got %q", choices[0].OptionID)
	}
	if choices[0].FinalValue() != "10px" {
		t.Fatalf("fine-tuned value should win, got %q", choices[0].FinalValue())
	}
}

func TestStudioChoiceRepoListBySessionSpansComponents(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := repos.NewStudioChoiceRepo(db, testutil.Logger(t))

	user := testutil.SeedUser(t, ctx, tx, "studio-list@example.com")
	session := testutil.SeedSession(t, ctx, tx, user.ID, types.PhaseComponentStudio)

	for _, c := range []struct{ component, dimension, value string }{
		{"button", "shape", "8px"},
		{"input", "border_style", "1px solid"},
	} {
		choice := &types.StudioChoice{
			ID:            uuid.New(),
			SessionID:     session.ID,
			ComponentType: c.component,
			DimensionKey:  c.dimension,
			SelectedValue: c.value,
			CSSProperty:   c.dimension,
		}
		if _, err := repo.Upsert(ctx, tx, choice); err != nil {
			t.Fatalf("upsert %s: %v", c.component, err)
		}
	}

	all, err := repo.ListBySession(ctx, tx, session.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected choices across components, got %d", len(all))
	}
}
