package repos_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/ryan-the-brodsky/tastemaker/internal/apperr"
	"github.com/ryan-the-brodsky/tastemaker/internal/repos"
	"github.com/ryan-the-brodsky/tastemaker/internal/repos/testutil"
	"github.com/ryan-the-brodsky/tastemaker/internal/types"
)

func TestSessionRepoOwnership(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := repos.NewSessionRepo(db, testutil.Logger(t))

	owner := testutil.SeedUser(t, ctx, tx, "owner@example.com")
	other := testutil.SeedUser(t, ctx, tx, "other@example.com")
	session := testutil.SeedSession(t, ctx, tx, owner.ID, types.PhaseColorExploration)

	got, err := repo.GetByIDForUser(ctx, tx, session.ID, owner.ID)
	if err != nil {
		t.Fatalf("owner lookup: %v", err)
	}
	if got.Phase != types.PhaseColorExploration {
		t.Fatalf("unexpected phase %q", got.Phase)
	}

	if _, err := repo.GetByIDForUser(ctx, tx, session.ID, other.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("other user should see not found, got %v", err)
	}
	if _, err := repo.GetByIDForUser(ctx, tx, uuid.New(), owner.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("unknown session should be not found, got %v", err)
	}
}

func TestSessionRepoDeleteHidesFromList(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := repos.NewSessionRepo(db, testutil.Logger(t))

	user := testutil.SeedUser(t, ctx, tx, "list@example.com")
	keep := testutil.SeedSession(t, ctx, tx, user.ID, types.PhaseColorExploration)
	drop := testutil.SeedSession(t, ctx, tx, user.ID, types.PhaseComplete)

	if err := repo.Delete(ctx, tx, drop.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	sessions, err := repo.ListByUser(ctx, tx, user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sessions) != 1 || sessions[0].ID != keep.ID {
		t.Fatalf("deleted session should be hidden, got %d rows", len(sessions))
	}

	if _, err := repo.GetByID(ctx, tx, drop.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("soft-deleted session should be not found, got %v", err)
	}
}
