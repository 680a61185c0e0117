package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ryan-the-brodsky/tastemaker/internal/apperr"
	"github.com/ryan-the-brodsky/tastemaker/internal/logger"
	"github.com/ryan-the-brodsky/tastemaker/internal/types"
)

type RecordingRepo interface {
	Create(ctx context.Context, tx *gorm.DB, recording *types.InteractionRecording) (*types.InteractionRecording, error)
	GetByID(ctx context.Context, tx *gorm.DB, recordingID uuid.UUID) (*types.InteractionRecording, error)
	ListBySession(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) ([]*types.InteractionRecording, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, recordingID uuid.UUID, status string) error
	SetResult(ctx context.Context, tx *gorm.DB, recordingID uuid.UUID, status string, result datatypes.JSON) error
	CreateFrames(ctx context.Context, tx *gorm.DB, frames []*types.InteractionFrame) ([]*types.InteractionFrame, error)
	ListFrames(ctx context.Context, tx *gorm.DB, recordingID uuid.UUID) ([]*types.InteractionFrame, error)
	CreateMetrics(ctx context.Context, tx *gorm.DB, metrics []*types.TemporalMetric) ([]*types.TemporalMetric, error)
	ListMetrics(ctx context.Context, tx *gorm.DB, recordingID uuid.UUID) ([]*types.TemporalMetric, error)
}

type recordingRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRecordingRepo(db *gorm.DB, baseLog *logger.Logger) RecordingRepo {
	repoLog := baseLog.With("repo", "RecordingRepo")
	return &recordingRepo{db: db, log: repoLog}
}

func (rr *recordingRepo) Create(ctx context.Context, tx *gorm.DB, recording *types.InteractionRecording) (*types.InteractionRecording, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if err := transaction.WithContext(ctx).Create(recording).Error; err != nil {
		return nil, err
	}
	return recording, nil
}

func (rr *recordingRepo) GetByID(ctx context.Context, tx *gorm.DB, recordingID uuid.UUID) (*types.InteractionRecording, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var result types.InteractionRecording
	if err := transaction.WithContext(ctx).
		Where("id = ?", recordingID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (rr *recordingRepo) ListBySession(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) ([]*types.InteractionRecording, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var results []*types.InteractionRecording
	if err := transaction.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *recordingRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, recordingID uuid.UUID, status string) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	return transaction.WithContext(ctx).
		Model(&types.InteractionRecording{}).
		Where("id = ?", recordingID).
		Update("status", status).Error
}

func (rr *recordingRepo) SetResult(ctx context.Context, tx *gorm.DB, recordingID uuid.UUID, status string, result datatypes.JSON) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	return transaction.WithContext(ctx).
		Model(&types.InteractionRecording{}).
		Where("id = ?", recordingID).
		Updates(map[string]any{"status": status, "result": result}).Error
}

func (rr *recordingRepo) CreateFrames(ctx context.Context, tx *gorm.DB, frames []*types.InteractionFrame) ([]*types.InteractionFrame, error) {
	if len(frames) == 0 {
		return []*types.InteractionFrame{}, nil
	}
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if err := transaction.WithContext(ctx).Create(&frames).Error; err != nil {
		return nil, err
	}
	return frames, nil
}

func (rr *recordingRepo) ListFrames(ctx context.Context, tx *gorm.DB, recordingID uuid.UUID) ([]*types.InteractionFrame, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var results []*types.InteractionFrame
	if err := transaction.WithContext(ctx).
		Where("recording_id = ?", recordingID).
		Order("frame_index ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *recordingRepo) CreateMetrics(ctx context.Context, tx *gorm.DB, metrics []*types.TemporalMetric) ([]*types.TemporalMetric, error) {
	if len(metrics) == 0 {
		return []*types.TemporalMetric{}, nil
	}
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if err := transaction.WithContext(ctx).Create(&metrics).Error; err != nil {
		return nil, err
	}
	return metrics, nil
}

func (rr *recordingRepo) ListMetrics(ctx context.Context, tx *gorm.DB, recordingID uuid.UUID) ([]*types.TemporalMetric, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var results []*types.TemporalMetric
	if err := transaction.WithContext(ctx).
		Where("recording_id = ?", recordingID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
