package repos_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/ryan-the-brodsky/tastemaker/internal/repos"
	"github.com/ryan-the-brodsky/tastemaker/internal/repos/testutil"
	"github.com/ryan-the-brodsky/tastemaker/internal/types"
)

func TestRecordingRepoLifecycle(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := repos.NewRecordingRepo(db, testutil.Logger(t))

	user := testutil.SeedUser(t, ctx, tx, "recording@example.com")
	session := testutil.SeedSession(t, ctx, tx, user.ID, types.PhaseComplete)
	recording := testutil.SeedRecording(t, ctx, tx, session.ID, types.RecordingPending)

	if err := repo.UpdateStatus(ctx, tx, recording.ID, types.RecordingProcessing); err != nil {
		t.Fatalf("update status: %v", err)
	}
	got, err := repo.GetByID(ctx, tx, recording.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != types.RecordingProcessing {
		t.Fatalf("status not updated, got %q", got.Status)
	}

	result := datatypes.JSON([]byte(`{"total_frames":3}`))
	if err := repo.SetResult(ctx, tx, recording.ID, types.RecordingComplete, result); err != nil {
		t.Fatalf("set result: %v", err)
	}
	got, err = repo.GetByID(ctx, tx, recording.ID)
	if err != nil {
		t.Fatalf("get after result: %v", err)
	}
	if got.Status != types.RecordingComplete || len(got.Result) == 0 {
		t.Fatalf("result not stored, status=%q result=%s", got.Status, got.Result)
	}
}

func TestRecordingRepoFramesAndMetricsOrdered(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := repos.NewRecordingRepo(db, testutil.Logger(t))

	user := testutil.SeedUser(t, ctx, tx, "frames@example.com")
	session := testutil.SeedSession(t, ctx, tx, user.ID, types.PhaseComplete)
	recording := testutil.SeedRecording(t, ctx, tx, session.ID, types.RecordingPending)

	frames := []*types.InteractionFrame{
		{ID: uuid.New(), RecordingID: recording.ID, FrameIndex: 1, TimestampMS: 500},
		{ID: uuid.New(), RecordingID: recording.ID, FrameIndex: 0, TimestampMS: 0},
	}
	if _, err := repo.CreateFrames(ctx, tx, frames); err != nil {
		t.Fatalf("create frames: %v", err)
	}

	metrics := []*types.TemporalMetric{
		{ID: uuid.New(), RecordingID: recording.ID, MetricType: "hover_reveal", Element: "menu", DurationMS: 450},
	}
	if _, err := repo.CreateMetrics(ctx, tx, metrics); err != nil {
		t.Fatalf("create metrics: %v", err)
	}

	listed, err := repo.ListFrames(ctx, tx, recording.ID)
	if err != nil {
		t.Fatalf("list frames: %v", err)
	}
	if len(listed) != 2 || listed[0].FrameIndex != 0 {
		t.Fatalf("frames should come back in index order, got %d rows first=%d", len(listed), listed[0].FrameIndex)
	}

	ms, err := repo.ListMetrics(ctx, tx, recording.ID)
	if err != nil {
		t.Fatalf("list metrics: %v", err)
	}
	if len(ms) != 1 || ms[0].MetricType != "hover_reveal" {
		t.Fatalf("metrics lost: %+v", ms)
	}
}
