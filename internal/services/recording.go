package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/ryan-the-brodsky/tastemaker/internal/apperr"
	"github.com/ryan-the-brodsky/tastemaker/internal/audit"
	"github.com/ryan-the-brodsky/tastemaker/internal/clients/redis"
	"github.com/ryan-the-brodsky/tastemaker/internal/clients/vision"
	"github.com/ryan-the-brodsky/tastemaker/internal/logger"
	"github.com/ryan-the-brodsky/tastemaker/internal/repos"
	"github.com/ryan-the-brodsky/tastemaker/internal/types"
)

// frameExtractionConcurrency bounds parallel vision calls per recording.
const frameExtractionConcurrency = 2

// FrameInput is one captured frame. Observations may arrive pre-extracted;
// frames carrying only a screenshot are extracted by the worker.
type FrameInput struct {
	TimestampMS  int                     `json:"timestamp_ms"`
	Screenshot   string                  `json:"screenshot,omitempty"`
	MediaType    string                  `json:"media_type,omitempty"`
	Observations *audit.FrameObservation `json:"observations,omitempty"`
}

// MetricInput is one measured duration from the capture.
type MetricInput struct {
	MetricType string `json:"metric_type"`
	Element    string `json:"element,omitempty"`
	DurationMS int    `json:"duration_ms"`
}

// CreateRecordingInput starts an interactive audit over captured frames.
type CreateRecordingInput struct {
	Name       string        `json:"name"`
	DurationMS int           `json:"duration_ms"`
	Frames     []FrameInput  `json:"frames"`
	Metrics    []MetricInput `json:"metrics,omitempty"`
}

// RecordingStatus is the polling view of a recording.
type RecordingStatus struct {
	ID              uuid.UUID               `json:"id"`
	SessionID       uuid.UUID               `json:"session_id"`
	Name            string                  `json:"name"`
	Status          string                  `json:"status"`
	FrameCount      int                     `json:"frame_count"`
	DurationMS      int                     `json:"duration_ms"`
	CreatedAt       time.Time               `json:"created_at"`
	TemporalMetrics []*types.TemporalMetric `json:"temporal_metrics,omitempty"`
}

// InteractiveAuditResult is the stored outcome of a processed recording.
type InteractiveAuditResult struct {
	RecordingID          uuid.UUID                    `json:"recording_id"`
	TotalFrames          int                          `json:"total_frames"`
	DurationMS           int                          `json:"duration_ms"`
	TemporalViolations   []audit.InteractiveViolation `json:"temporal_violations"`
	SpatialViolations    []audit.InteractiveViolation `json:"spatial_violations"`
	BehavioralViolations []audit.InteractiveViolation `json:"behavioral_violations"`
	PatternViolations    []audit.InteractiveViolation `json:"pattern_violations"`
	Summary              InteractiveAuditSummary      `json:"summary"`
}

type InteractiveAuditSummary struct {
	TotalViolations      int `json:"total_violations"`
	Errors               int `json:"errors"`
	Warnings             int `json:"warnings"`
	TemporalMetricsCount int `json:"temporal_metrics_count"`
	FramesAnalyzed       int `json:"frames_analyzed"`
}

type RecordingService interface {
	Create(ctx context.Context, userID, sessionID uuid.UUID, input CreateRecordingInput) (*types.InteractionRecording, error)
	Status(ctx context.Context, userID, recordingID uuid.UUID) (*RecordingStatus, error)
	Results(ctx context.Context, userID, recordingID uuid.UUID) (*InteractiveAuditResult, error)
	ListBySession(ctx context.Context, userID, sessionID uuid.UUID) ([]*types.InteractionRecording, error)
	Process(ctx context.Context, recordingID uuid.UUID) error
}

type recordingService struct {
	db            *gorm.DB
	log           *logger.Logger
	sessionRepo   repos.SessionRepo
	recordingRepo repos.RecordingRepo
	extractor     vision.FrameExtractor // nil skips screenshot extraction
	events        redis.EventBus        // nil disables event publishing
}

func NewRecordingService(
	db *gorm.DB,
	log *logger.Logger,
	sessionRepo repos.SessionRepo,
	recordingRepo repos.RecordingRepo,
	extractor vision.FrameExtractor,
	events redis.EventBus,
) RecordingService {
	serviceLog := log.With("service", "RecordingService")
	return &recordingService{
		db:            db,
		log:           serviceLog,
		sessionRepo:   sessionRepo,
		recordingRepo: recordingRepo,
		extractor:     extractor,
		events:        events,
	}
}

// Create stores the recording with its frames and metrics, then hands it to
// the in-process worker. The response carries status "pending"; callers poll
// Status for completion.
func (rs *recordingService) Create(ctx context.Context, userID, sessionID uuid.UUID, input CreateRecordingInput) (*types.InteractionRecording, error) {
	if _, err := rs.sessionRepo.GetByIDForUser(ctx, nil, sessionID, userID); err != nil {
		return nil, err
	}
	if len(input.Frames) == 0 {
		return nil, fmt.Errorf("%w: a recording needs at least one frame", apperr.ErrInvalidArgument)
	}

	recording := &types.InteractionRecording{
		ID:         uuid.New(),
		SessionID:  sessionID,
		Name:       input.Name,
		Status:     types.RecordingPending,
		FrameCount: len(input.Frames),
		DurationMS: input.DurationMS,
	}

	err := rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := rs.recordingRepo.Create(ctx, tx, recording); err != nil {
			return fmt.Errorf("failed to create recording: %w", err)
		}

		frames := make([]*types.InteractionFrame, 0, len(input.Frames))
		for i, f := range input.Frames {
			frame := &types.InteractionFrame{
				ID:          uuid.New(),
				RecordingID: recording.ID,
				FrameIndex:  i,
				TimestampMS: f.TimestampMS,
				Screenshot:  f.Screenshot,
			}
			if f.Observations != nil {
				frame.Observations = encodeJSON(f.Observations)
			}
			frames = append(frames, frame)
		}
		if _, err := rs.recordingRepo.CreateFrames(ctx, tx, frames); err != nil {
			return fmt.Errorf("failed to store frames: %w", err)
		}

		if len(input.Metrics) > 0 {
			metrics := make([]*types.TemporalMetric, 0, len(input.Metrics))
			for _, m := range input.Metrics {
				metrics = append(metrics, &types.TemporalMetric{
					ID:          uuid.New(),
					RecordingID: recording.ID,
					MetricType:  m.MetricType,
					Element:     m.Element,
					DurationMS:  m.DurationMS,
				})
			}
			if _, err := rs.recordingRepo.CreateMetrics(ctx, tx, metrics); err != nil {
				return fmt.Errorf("failed to store metrics: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	rs.publish(ctx, redis.Event{
		Type:        "recording.created",
		SessionID:   sessionID,
		RecordingID: recording.ID,
		Status:      recording.Status,
	})

	// Detached from the request lifetime on purpose.
	go func() {
		workCtx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		if err := rs.Process(workCtx, recording.ID); err != nil {
			rs.log.Error("recording processing failed", "recording_id", recording.ID, "error", err)
		}
	}()

	return recording, nil
}

func (rs *recordingService) Status(ctx context.Context, userID, recordingID uuid.UUID) (*RecordingStatus, error) {
	recording, err := rs.ownedRecording(ctx, userID, recordingID)
	if err != nil {
		return nil, err
	}

	status := &RecordingStatus{
		ID:         recording.ID,
		SessionID:  recording.SessionID,
		Name:       recording.Name,
		Status:     recording.Status,
		FrameCount: recording.FrameCount,
		DurationMS: recording.DurationMS,
		CreatedAt:  recording.CreatedAt,
	}
	if recording.Status == types.RecordingComplete {
		metrics, err := rs.recordingRepo.ListMetrics(ctx, nil, recordingID)
		if err != nil {
			return nil, fmt.Errorf("failed to load metrics: %w", err)
		}
		status.TemporalMetrics = metrics
	}
	return status, nil
}

func (rs *recordingService) Results(ctx context.Context, userID, recordingID uuid.UUID) (*InteractiveAuditResult, error) {
	recording, err := rs.ownedRecording(ctx, userID, recordingID)
	if err != nil {
		return nil, err
	}
	if recording.Status != types.RecordingComplete {
		return nil, fmt.Errorf("%w: recording not completed, status: %s", apperr.ErrInvalidArgument, recording.Status)
	}

	var result InteractiveAuditResult
	if err := decodeJSONInto(recording.Result, &result); err != nil {
		return nil, fmt.Errorf("failed to decode stored result: %w", err)
	}
	return &result, nil
}

func (rs *recordingService) ListBySession(ctx context.Context, userID, sessionID uuid.UUID) ([]*types.InteractionRecording, error) {
	if _, err := rs.sessionRepo.GetByIDForUser(ctx, nil, sessionID, userID); err != nil {
		return nil, err
	}
	return rs.recordingRepo.ListBySession(ctx, nil, sessionID)
}

// Process runs the interactive audit for one recording: extract missing
// frame observations, apply the interactive baseline, store the result.
func (rs *recordingService) Process(ctx context.Context, recordingID uuid.UUID) error {
	recording, err := rs.recordingRepo.GetByID(ctx, nil, recordingID)
	if err != nil {
		return err
	}

	if err := rs.recordingRepo.UpdateStatus(ctx, nil, recordingID, types.RecordingProcessing); err != nil {
		return fmt.Errorf("failed to mark recording processing: %w", err)
	}
	rs.publish(ctx, redis.Event{
		Type:        "recording.processing",
		SessionID:   recording.SessionID,
		RecordingID: recordingID,
		Status:      types.RecordingProcessing,
	})

	result, err := rs.runAudit(ctx, recording)
	if err != nil {
		if statusErr := rs.recordingRepo.UpdateStatus(ctx, nil, recordingID, types.RecordingFailed); statusErr != nil {
			rs.log.Error("failed to mark recording failed", "recording_id", recordingID, "error", statusErr)
		}
		rs.publish(ctx, redis.Event{
			Type:        "recording.failed",
			SessionID:   recording.SessionID,
			RecordingID: recordingID,
			Status:      types.RecordingFailed,
		})
		return err
	}

	if err := rs.recordingRepo.SetResult(ctx, nil, recordingID, types.RecordingComplete, encodeJSON(result)); err != nil {
		return fmt.Errorf("failed to store result: %w", err)
	}
	rs.publish(ctx, redis.Event{
		Type:        "recording.complete",
		SessionID:   recording.SessionID,
		RecordingID: recordingID,
		Status:      types.RecordingComplete,
		Payload:     result.Summary,
	})
	rs.log.Info("recording audited",
		"recording_id", recordingID,
		"frames", result.TotalFrames,
		"violations", result.Summary.TotalViolations)
	return nil
}

func (rs *recordingService) runAudit(ctx context.Context, recording *types.InteractionRecording) (*InteractiveAuditResult, error) {
	frameRows, err := rs.recordingRepo.ListFrames(ctx, nil, recording.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load frames: %w", err)
	}
	metricRows, err := rs.recordingRepo.ListMetrics(ctx, nil, recording.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load metrics: %w", err)
	}

	observations := make([]*audit.FrameObservation, len(frameRows))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(frameExtractionConcurrency)
	for i, row := range frameRows {
		group.Go(func() error {
			if len(row.Observations) > 0 {
				var obs audit.FrameObservation
				if err := decodeJSONInto(row.Observations, &obs); err != nil {
					return fmt.Errorf("frame %d: %w", row.FrameIndex, err)
				}
				observations[i] = &obs
				return nil
			}
			if row.Screenshot == "" || rs.extractor == nil {
				return nil
			}
			obs, err := rs.extractor.ExtractFrame(groupCtx, row.Screenshot, "")
			if err != nil {
				return fmt.Errorf("frame %d: %w", row.FrameIndex, err)
			}
			observations[i] = &obs
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	frames := make([]audit.FrameObservation, 0, len(observations))
	for _, obs := range observations {
		if obs != nil {
			frames = append(frames, *obs)
		}
	}
	metrics := make([]audit.TemporalMeasurement, 0, len(metricRows))
	for _, m := range metricRows {
		metrics = append(metrics, audit.TemporalMeasurement{
			MetricType: m.MetricType,
			Element:    m.Element,
			DurationMS: m.DurationMS,
		})
	}

	violations := audit.ApplyInteractiveRules(frames, metrics)
	summary := InteractiveAuditSummary{
		TemporalMetricsCount: len(metrics),
		FramesAnalyzed:       len(frames),
	}
	for _, bucket := range [][]audit.InteractiveViolation{
		violations.Temporal, violations.Spatial, violations.Behavioral, violations.Pattern,
	} {
		summary.TotalViolations += len(bucket)
		for _, v := range bucket {
			switch v.Severity {
			case "error":
				summary.Errors++
			case "warning":
				summary.Warnings++
			}
		}
	}

	return &InteractiveAuditResult{
		RecordingID:          recording.ID,
		TotalFrames:          len(frameRows),
		DurationMS:           recording.DurationMS,
		TemporalViolations:   violations.Temporal,
		SpatialViolations:    violations.Spatial,
		BehavioralViolations: violations.Behavioral,
		PatternViolations:    violations.Pattern,
		Summary:              summary,
	}, nil
}

func (rs *recordingService) ownedRecording(ctx context.Context, userID, recordingID uuid.UUID) (*types.InteractionRecording, error) {
	recording, err := rs.recordingRepo.GetByID(ctx, nil, recordingID)
	if err != nil {
		return nil, err
	}
	if _, err := rs.sessionRepo.GetByIDForUser(ctx, nil, recording.SessionID, userID); err != nil {
		return nil, err
	}
	return recording, nil
}

func (rs *recordingService) publish(ctx context.Context, event redis.Event) {
	if rs.events == nil {
		return
	}
	if err := rs.events.Publish(ctx, event); err != nil {
		rs.log.Warn("failed to publish event", "type", event.Type, "error", err)
	}
}
