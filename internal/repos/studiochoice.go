package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ryan-the-brodsky/tastemaker/internal/logger"
	"github.com/ryan-the-brodsky/tastemaker/internal/types"
)

type StudioChoiceRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, choice *types.StudioChoice) (*types.StudioChoice, error)
	ListBySession(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) ([]*types.StudioChoice, error)
	ListByComponent(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, componentType string) ([]*types.StudioChoice, error)
}

type studioChoiceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStudioChoiceRepo(db *gorm.DB, baseLog *logger.Logger) StudioChoiceRepo {
	repoLog := baseLog.With("repo", "StudioChoiceRepo")
	return &studioChoiceRepo{db: db, log: repoLog}
}

// Upsert writes a choice keyed by (session_id, component_type, dimension_key)
// so re-choosing a dimension replaces the previous pick.
func (cr *studioChoiceRepo) Upsert(ctx context.Context, tx *gorm.DB, choice *types.StudioChoice) (*types.StudioChoice, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "session_id"}, {Name: "component_type"}, {Name: "dimension_key"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"option_id", "selected_value", "fine_tuned_value", "css_property", "updated_at",
			}),
		}).
		Create(choice).Error; err != nil {
		return nil, err
	}
	return choice, nil
}

func (cr *studioChoiceRepo) ListBySession(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) ([]*types.StudioChoice, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.StudioChoice
	if err := transaction.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *studioChoiceRepo) ListByComponent(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, componentType string) ([]*types.StudioChoice, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.StudioChoice
	if err := transaction.WithContext(ctx).
		Where("session_id = ? AND component_type = ?", sessionID, componentType).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
