package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ryan-the-brodsky/tastemaker/internal/logger"
	"github.com/ryan-the-brodsky/tastemaker/internal/types"
)

type ComparisonResultRepo interface {
	Create(ctx context.Context, tx *gorm.DB, result *types.ComparisonResult) (*types.ComparisonResult, error)
	ListBySession(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) ([]*types.ComparisonResult, error)
	ListBySessionAndPhase(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, phase string) ([]*types.ComparisonResult, error)
	CountBySession(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) (int64, error)
}

type comparisonResultRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewComparisonResultRepo(db *gorm.DB, baseLog *logger.Logger) ComparisonResultRepo {
	repoLog := baseLog.With("repo", "ComparisonResultRepo")
	return &comparisonResultRepo{db: db, log: repoLog}
}

func (cr *comparisonResultRepo) Create(ctx context.Context, tx *gorm.DB, result *types.ComparisonResult) (*types.ComparisonResult, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if err := transaction.WithContext(ctx).Create(result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

func (cr *comparisonResultRepo) ListBySession(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) ([]*types.ComparisonResult, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.ComparisonResult
	if err := transaction.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *comparisonResultRepo) ListBySessionAndPhase(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, phase string) ([]*types.ComparisonResult, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.ComparisonResult
	if err := transaction.WithContext(ctx).
		Where("session_id = ? AND phase = ?", sessionID, phase).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *comparisonResultRepo) CountBySession(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.ComparisonResult{}).
		Where("session_id = ?", sessionID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
