package services

import (
	"testing"

	"gorm.io/datatypes"

	"github.com/ryan-the-brodsky/tastemaker/internal/styles"
	"github.com/ryan-the-brodsky/tastemaker/internal/types"
)

func TestLoadStudioProgressDefaults(t *testing.T) {
	session := &types.Session{}
	progress := loadStudioProgress(session)
	if progress.CurrentComponent == nil || *progress.CurrentComponent != styles.StudioComponentTypes[0] {
		t.Fatalf("fresh session should start at the first component, got %v", progress.CurrentComponent)
	}
	if progress.CurrentDimensionIndex != 0 {
		t.Fatalf("dimension index should start at 0, got %d", progress.CurrentDimensionIndex)
	}
	if progress.CompletedComponents == nil || progress.CheckpointApprovals == nil {
		t.Fatal("slices must never be nil")
	}
}

func TestStudioProgressRoundTrip(t *testing.T) {
	session := &types.Session{}
	current := "card"
	saveStudioProgress(session, studioProgress{
		CompletedComponents:   []string{"button", "input"},
		CurrentComponent:      &current,
		CurrentDimensionIndex: 2,
		CheckpointApprovals:   []string{},
	})

	reloaded := loadStudioProgress(session)
	if reloaded.CurrentComponent == nil || *reloaded.CurrentComponent != "card" {
		t.Fatalf("current component lost in round trip: %v", reloaded.CurrentComponent)
	}
	if reloaded.CurrentDimensionIndex != 2 {
		t.Fatalf("dimension index lost: %d", reloaded.CurrentDimensionIndex)
	}
	if len(reloaded.CompletedComponents) != 2 {
		t.Fatalf("completed components lost: %v", reloaded.CompletedComponents)
	}
}

func TestLoadStudioProgressCorruptBlobFallsBack(t *testing.T) {
	session := &types.Session{StudioProgress: datatypes.JSON([]byte(`not json`))}
	progress := loadStudioProgress(session)
	if progress.CurrentComponent == nil || *progress.CurrentComponent != styles.StudioComponentTypes[0] {
		t.Fatalf("corrupt blob should reset to the first component, got %v", progress.CurrentComponent)
	}
}

func TestBuildStudioProgressComplete(t *testing.T) {
	current := "toggle"
	view := buildStudioProgress(studioProgress{
		CompletedComponents: append([]string{}, styles.StudioComponentTypes...),
		CurrentComponent:    &current,
	})
	if !view.IsComplete {
		t.Fatal("all components locked should report complete")
	}
	if view.CurrentComponent != nil {
		t.Fatalf("complete progress should clear current component, got %v", view.CurrentComponent)
	}
	if view.PendingCheckpoint != nil {
		t.Fatalf("complete progress should not report a pending checkpoint, got %v", view.PendingCheckpoint)
	}
}

func TestBuildStudioProgressPendingCheckpoint(t *testing.T) {
	group := styles.CheckpointGroups[0]
	view := buildStudioProgress(studioProgress{
		CompletedComponents: append([]string{}, group.Components...),
		CurrentComponent:    nil,
		CheckpointApprovals: []string{},
	})
	if view.PendingCheckpoint == nil || *view.PendingCheckpoint != group.ID {
		t.Fatalf("completed group without approval should be pending, got %v", view.PendingCheckpoint)
	}

	approved := buildStudioProgress(studioProgress{
		CompletedComponents: append([]string{}, group.Components...),
		CurrentComponent:    nil,
		CheckpointApprovals: []string{group.ID},
	})
	if approved.PendingCheckpoint != nil {
		t.Fatalf("approved checkpoint should not be pending, got %v", *approved.PendingCheckpoint)
	}
}

func TestNextUncompleted(t *testing.T) {
	if next := nextUncompleted(nil); next == nil || *next != styles.StudioComponentTypes[0] {
		t.Fatalf("empty history should point at the first component, got %v", next)
	}
	if next := nextUncompleted([]string{styles.StudioComponentTypes[0]}); next == nil || *next != styles.StudioComponentTypes[1] {
		t.Fatalf("should skip completed components, got %v", next)
	}
	if next := nextUncompleted(styles.StudioComponentTypes); next != nil {
		t.Fatalf("all done should return nil, got %v", *next)
	}
}

func TestKnownStudioComponent(t *testing.T) {
	if !knownStudioComponent("button") {
		t.Fatal("button is a studio component")
	}
	if knownStudioComponent("carousel") {
		t.Fatal("carousel is not a studio component")
	}
}
