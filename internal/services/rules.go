package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ryan-the-brodsky/tastemaker/internal/logger"
	"github.com/ryan-the-brodsky/tastemaker/internal/repos"
	"github.com/ryan-the-brodsky/tastemaker/internal/rules"
	"github.com/ryan-the-brodsky/tastemaker/internal/synthesizer"
	"github.com/ryan-the-brodsky/tastemaker/internal/types"
)

// StatedRuleInput carries a free-form preference statement.
type StatedRuleInput struct {
	Statement string  `json:"statement"`
	Component *string `json:"component,omitempty"`
}

// RuleUpdateInput patches an existing rule. Nil fields are left untouched.
type RuleUpdateInput struct {
	Value    *string `json:"value,omitempty"`
	Severity *string `json:"severity,omitempty"`
	Message  *string `json:"message,omitempty"`
}

type RuleService interface {
	List(ctx context.Context, userID, sessionID uuid.UUID) ([]*types.StyleRule, error)
	AddStated(ctx context.Context, userID, sessionID uuid.UUID, input StatedRuleInput) (*types.StyleRule, error)
	Update(ctx context.Context, userID, sessionID uuid.UUID, ruleID string, input RuleUpdateInput) (*types.StyleRule, error)
	Delete(ctx context.Context, userID, sessionID uuid.UUID, ruleID string) error
}

type ruleService struct {
	db             *gorm.DB
	log            *logger.Logger
	sessionRepo    repos.SessionRepo
	comparisonRepo repos.ComparisonResultRepo
	styleRuleRepo  repos.StyleRuleRepo
}

func NewRuleService(
	db *gorm.DB,
	log *logger.Logger,
	sessionRepo repos.SessionRepo,
	comparisonRepo repos.ComparisonResultRepo,
	styleRuleRepo repos.StyleRuleRepo,
) RuleService {
	serviceLog := log.With("service", "RuleService")
	return &ruleService{
		db:             db,
		log:            serviceLog,
		sessionRepo:    sessionRepo,
		comparisonRepo: comparisonRepo,
		styleRuleRepo:  styleRuleRepo,
	}
}

// List returns every rule on the session. The first read after comparisons
// exist synthesizes extracted rules from the choice history and persists them.
func (rs *ruleService) List(ctx context.Context, userID, sessionID uuid.UUID) ([]*types.StyleRule, error) {
	session, err := rs.sessionRepo.GetByIDForUser(ctx, nil, sessionID, userID)
	if err != nil {
		return nil, err
	}

	existing, err := rs.styleRuleRepo.ListBySession(ctx, nil, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}

	hasExtracted := false
	for _, r := range existing {
		if r.Source == rules.SourceExtracted {
			hasExtracted = true
			break
		}
	}
	if hasExtracted || session.ComparisonCount == 0 {
		return existing, nil
	}

	comparisons, err := rs.comparisonRepo.ListBySession(ctx, nil, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load comparison history: %w", err)
	}
	synthesized := synthesizer.FromPatterns(analyzerResults(comparisons), synthesizer.MinConfidence)
	if len(synthesized) == 0 {
		return existing, nil
	}

	rows := make([]*types.StyleRule, 0, len(synthesized))
	for _, r := range synthesized {
		rows = append(rows, ruleToRow(sessionID, r.ID, r))
	}
	if _, err := rs.styleRuleRepo.UpsertBatch(ctx, nil, rows); err != nil {
		return nil, fmt.Errorf("failed to persist synthesized rules: %w", err)
	}
	rs.log.Info("synthesized rules from comparison history",
		"session_id", sessionID, "rule_count", len(rows))

	return rs.styleRuleRepo.ListBySession(ctx, nil, sessionID)
}

// AddStated parses a natural language statement into a rule and stores it.
// Conflicts with the baseline catalog do not block the rule; they are
// reported in the returned message.
func (rs *ruleService) AddStated(ctx context.Context, userID, sessionID uuid.UUID, input StatedRuleInput) (*types.StyleRule, error) {
	if _, err := rs.sessionRepo.GetByIDForUser(ctx, nil, sessionID, userID); err != nil {
		return nil, err
	}

	parsed := synthesizer.ParseStatedPreference(input.Statement, input.Component)

	prefix := "gen"
	if parsed.ComponentType != nil && len(*parsed.ComponentType) >= 3 {
		prefix = (*parsed.ComponentType)[:3]
	}
	ruleID := fmt.Sprintf("%s-stated-%s", prefix, uuid.NewString()[:6])

	row := ruleToRow(sessionID, ruleID, parsed)
	if _, err := rs.styleRuleRepo.Upsert(ctx, nil, row); err != nil {
		return nil, fmt.Errorf("failed to store stated rule: %w", err)
	}

	// The conflict warning goes to the caller only; the persisted message
	// stays clean.
	if conflicts := rules.CheckConflicts(parsed); len(conflicts) > 0 {
		ids := make([]string, 0, len(conflicts))
		for _, c := range conflicts {
			ids = append(ids, c.ID)
		}
		row.Message = fmt.Sprintf("WARNING: Conflicts with baseline rules: %v. %s", ids, row.Message)
	}
	return row, nil
}

func (rs *ruleService) Update(ctx context.Context, userID, sessionID uuid.UUID, ruleID string, input RuleUpdateInput) (*types.StyleRule, error) {
	if _, err := rs.sessionRepo.GetByIDForUser(ctx, nil, sessionID, userID); err != nil {
		return nil, err
	}
	row, err := rs.styleRuleRepo.GetByRuleID(ctx, nil, sessionID, ruleID)
	if err != nil {
		return nil, err
	}

	if input.Value != nil {
		row.Value = *input.Value
	}
	if input.Severity != nil {
		row.Severity = *input.Severity
	}
	if input.Message != nil {
		row.Message = *input.Message
	}
	row.IsModified = true
	row.UpdatedAt = time.Now()

	if err := rs.styleRuleRepo.Save(ctx, nil, row); err != nil {
		return nil, fmt.Errorf("failed to save rule: %w", err)
	}
	return row, nil
}

func (rs *ruleService) Delete(ctx context.Context, userID, sessionID uuid.UUID, ruleID string) error {
	if _, err := rs.sessionRepo.GetByIDForUser(ctx, nil, sessionID, userID); err != nil {
		return err
	}
	return rs.styleRuleRepo.Delete(ctx, nil, sessionID, ruleID)
}

// ruleToRow maps a declarative rule onto a persisted session-scoped row.
func ruleToRow(sessionID uuid.UUID, ruleID string, r rules.Rule) *types.StyleRule {
	row := &types.StyleRule{
		ID:                 uuid.New(),
		SessionID:          sessionID,
		RuleID:             ruleID,
		ComponentType:      r.ComponentType,
		Property:           r.Property,
		Operator:           r.Operator,
		Value:              r.Value,
		Severity:           r.Severity,
		Confidence:         r.Confidence,
		Source:             r.Source,
		Message:            r.Message,
		RuleCategory:       r.Category,
		TimingConstraintMS: r.TimingConstraintMS,
		CountProperty:      r.CountProperty,
	}
	if len(r.ZoneDefinition) > 0 {
		row.ZoneDefinition = encodeJSON(r.ZoneDefinition)
	}
	if len(r.PatternIndicators) > 0 {
		row.PatternIndicators = encodeJSON(r.PatternIndicators)
	}
	return row
}

// rowToRule is the inverse mapping, used when feeding stored rules to the
// audit engine.
func rowToRule(row *types.StyleRule) rules.Rule {
	r := rules.Rule{
		ID:                 row.RuleID,
		Category:           row.RuleCategory,
		ComponentType:      row.ComponentType,
		Property:           row.Property,
		Operator:           row.Operator,
		Value:              row.Value,
		Severity:           row.Severity,
		Confidence:         row.Confidence,
		Source:             row.Source,
		Message:            row.Message,
		TimingConstraintMS: row.TimingConstraintMS,
		CountProperty:      row.CountProperty,
	}
	if len(row.ZoneDefinition) > 0 {
		var zone map[string]float64
		if err := json.Unmarshal(row.ZoneDefinition, &zone); err == nil {
			r.ZoneDefinition = zone
		}
	}
	if len(row.PatternIndicators) > 0 {
		var indicators []string
		if err := json.Unmarshal(row.PatternIndicators, &indicators); err == nil {
			r.PatternIndicators = indicators
		}
	}
	return r
}
