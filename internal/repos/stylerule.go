package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ryan-the-brodsky/tastemaker/internal/apperr"
	"github.com/ryan-the-brodsky/tastemaker/internal/logger"
	"github.com/ryan-the-brodsky/tastemaker/internal/types"
)

type StyleRuleRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, rule *types.StyleRule) (*types.StyleRule, error)
	UpsertBatch(ctx context.Context, tx *gorm.DB, ruleRows []*types.StyleRule) ([]*types.StyleRule, error)
	GetByRuleID(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, ruleID string) (*types.StyleRule, error)
	ListBySession(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) ([]*types.StyleRule, error)
	ListBySessionAndSource(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, source string) ([]*types.StyleRule, error)
	Save(ctx context.Context, tx *gorm.DB, rule *types.StyleRule) error
	Delete(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, ruleID string) error
}

type styleRuleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStyleRuleRepo(db *gorm.DB, baseLog *logger.Logger) StyleRuleRepo {
	repoLog := baseLog.With("repo", "StyleRuleRepo")
	return &styleRuleRepo{db: db, log: repoLog}
}

// Upsert writes a rule keyed by (session_id, rule_id). Re-submitting the same
// rule id for a session overwrites the constraint instead of duplicating it.
func (rr *styleRuleRepo) Upsert(ctx context.Context, tx *gorm.DB, rule *types.StyleRule) (*types.StyleRule, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "session_id"}, {Name: "rule_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"component_type", "property", "operator", "value", "severity",
				"confidence", "source", "message", "updated_at",
			}),
		}).
		Create(rule).Error; err != nil {
		return nil, err
	}
	return rule, nil
}

func (rr *styleRuleRepo) UpsertBatch(ctx context.Context, tx *gorm.DB, ruleRows []*types.StyleRule) ([]*types.StyleRule, error) {
	if len(ruleRows) == 0 {
		return []*types.StyleRule{}, nil
	}
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "session_id"}, {Name: "rule_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"component_type", "property", "operator", "value", "severity",
				"confidence", "source", "message", "updated_at",
			}),
		}).
		Create(&ruleRows).Error; err != nil {
		return nil, err
	}
	return ruleRows, nil
}

func (rr *styleRuleRepo) GetByRuleID(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, ruleID string) (*types.StyleRule, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var result types.StyleRule
	if err := transaction.WithContext(ctx).
		Where("session_id = ? AND rule_id = ?", sessionID, ruleID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (rr *styleRuleRepo) ListBySession(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) ([]*types.StyleRule, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var results []*types.StyleRule
	if err := transaction.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *styleRuleRepo) ListBySessionAndSource(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, source string) ([]*types.StyleRule, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var results []*types.StyleRule
	if err := transaction.WithContext(ctx).
		Where("session_id = ? AND source = ?", sessionID, source).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *styleRuleRepo) Save(ctx context.Context, tx *gorm.DB, rule *types.StyleRule) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	return transaction.WithContext(ctx).Save(rule).Error
}

func (rr *styleRuleRepo) Delete(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, ruleID string) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	res := transaction.WithContext(ctx).
		Where("session_id = ? AND rule_id = ?", sessionID, ruleID).
		Delete(&types.StyleRule{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
