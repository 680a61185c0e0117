package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ryan-the-brodsky/tastemaker/internal/types"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:        uuid.New(),
		Email:     email,
		Password:  "pw",
		FirstName: "A",
		LastName:  "B",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedSession(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, phase string) *types.Session {
	tb.Helper()
	s := &types.Session{
		ID:     uuid.New(),
		UserID: userID,
		Phase:  phase,
		Flow:   types.FlowStudio,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed session: %v", err)
	}
	return s
}

func SeedComparisonResult(tb testing.TB, ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, number int, choice string) *types.ComparisonResult {
	tb.Helper()
	r := &types.ComparisonResult{
		ID:               uuid.New(),
		SessionID:        sessionID,
		ComparisonNumber: number,
		Phase:            types.PhaseTerritoryMapping,
		ComponentType:    "button",
		OptionAStyles:    datatypes.JSON([]byte(`{"border_radius":8}`)),
		OptionBStyles:    datatypes.JSON([]byte(`{"border_radius":0}`)),
		Choice:           choice,
	}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed comparison result: %v", err)
	}
	return r
}

func SeedStyleRule(tb testing.TB, ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, ruleID string) *types.StyleRule {
	tb.Helper()
	r := &types.StyleRule{
		ID:         uuid.New(),
		SessionID:  sessionID,
		RuleID:     ruleID,
		Property:   "border_radius",
		Operator:   "=",
		Value:      "8",
		Severity:   "warning",
		Confidence: 0.8,
		Source:     "extracted",
	}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed style rule: %v", err)
	}
	return r
}

func SeedRecording(tb testing.TB, ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, status string) *types.InteractionRecording {
	tb.Helper()
	r := &types.InteractionRecording{
		ID:        uuid.New(),
		SessionID: sessionID,
		Name:      "walkthrough",
		Status:    status,
	}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed recording: %v", err)
	}
	return r
}
