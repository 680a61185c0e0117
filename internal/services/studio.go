package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ryan-the-brodsky/tastemaker/internal/apperr"
	"github.com/ryan-the-brodsky/tastemaker/internal/logger"
	"github.com/ryan-the-brodsky/tastemaker/internal/repos"
	"github.com/ryan-the-brodsky/tastemaker/internal/rules"
	"github.com/ryan-the-brodsky/tastemaker/internal/styles"
	"github.com/ryan-the-brodsky/tastemaker/internal/types"
)

// studioProgress is the JSON blob stored on the session. It tracks where the
// user is in the fixed component sequence.
type studioProgress struct {
	CompletedComponents   []string `json:"completed_components"`
	CurrentComponent      *string  `json:"current_component"`
	CurrentDimensionIndex int      `json:"current_dimension_index"`
	CheckpointApprovals   []string `json:"checkpoint_approvals"`
}

// StudioProgress is the progress view returned to the frontend.
type StudioProgress struct {
	CurrentComponent      *string  `json:"current_component"`
	CurrentDimensionIndex int      `json:"current_dimension_index"`
	CompletedComponents   []string `json:"completed_components"`
	TotalComponents       int      `json:"total_components"`
	CheckpointApprovals   []string `json:"checkpoint_approvals"`
	PendingCheckpoint     *string  `json:"pending_checkpoint"`
	IsComplete            bool     `json:"is_complete"`
}

// ComponentDimensions describes every customizable axis of one component.
type ComponentDimensions struct {
	ComponentType  string             `json:"component_type"`
	ComponentLabel string             `json:"component_label"`
	Dimensions     []styles.Dimension `json:"dimensions"`
}

// DimensionChoiceView is one stored choice as the frontend reads it back.
type DimensionChoiceView struct {
	OptionID       string  `json:"option_id"`
	Value          string  `json:"value"`
	OriginalValue  string  `json:"original_value"`
	FineTunedValue *string `json:"fine_tuned_value"`
	CSSProperty    string  `json:"css_property"`
}

// ComponentState holds all choices made so far for one component.
type ComponentState struct {
	ComponentType string                         `json:"component_type"`
	Choices       map[string]DimensionChoiceView `json:"choices"`
}

// DimensionChoiceInput is a single dimension pick for the current component.
type DimensionChoiceInput struct {
	Dimension        string  `json:"dimension"`
	SelectedOptionID string  `json:"selected_option_id"`
	SelectedValue    string  `json:"selected_value"`
	CSSProperty      string  `json:"css_property"`
	FineTunedValue   *string `json:"fine_tuned_value,omitempty"`
}

// DimensionChoiceResult reports where the flow sits after a choice.
type DimensionChoiceResult struct {
	Success         bool `json:"success"`
	DimensionIndex  int  `json:"dimension_index"`
	TotalDimensions int  `json:"total_dimensions"`
}

// LockComponentResult reports what comes after locking a component.
type LockComponentResult struct {
	Success           bool    `json:"success"`
	NextComponent     *string `json:"next_component"`
	TriggerCheckpoint *string `json:"trigger_checkpoint"`
	IsStudioComplete  bool    `json:"is_studio_complete"`
}

// CheckpointData bundles everything a mockup review page needs.
type CheckpointData struct {
	CheckpointID    string                       `json:"checkpoint_id"`
	Label           string                       `json:"label"`
	Description     string                       `json:"description"`
	MockupType      string                       `json:"mockup_type"`
	Components      []string                     `json:"components"`
	ComponentStyles map[string]map[string]string `json:"component_styles"`
	Colors          map[string]any               `json:"colors"`
	Typography      map[string]any               `json:"typography"`
}

// ApproveCheckpointResult reports the next step after a checkpoint approval.
type ApproveCheckpointResult struct {
	Success          bool    `json:"success"`
	NextComponent    *string `json:"next_component"`
	IsStudioComplete bool    `json:"is_studio_complete"`
}

type StudioService interface {
	Progress(ctx context.Context, userID, sessionID uuid.UUID) (*StudioProgress, error)
	Dimensions(ctx context.Context, userID, sessionID uuid.UUID, componentType string) (*ComponentDimensions, error)
	ComponentState(ctx context.Context, userID, sessionID uuid.UUID, componentType string) (*ComponentState, error)
	SubmitDimensionChoice(ctx context.Context, userID, sessionID uuid.UUID, componentType string, input DimensionChoiceInput) (*DimensionChoiceResult, error)
	LockCurrentComponent(ctx context.Context, userID, sessionID uuid.UUID) (*LockComponentResult, error)
	Checkpoint(ctx context.Context, userID, sessionID uuid.UUID, checkpointID string) (*CheckpointData, error)
	ApproveCheckpoint(ctx context.Context, userID, sessionID uuid.UUID, checkpointID string) (*ApproveCheckpointResult, error)
	GoBack(ctx context.Context, userID, sessionID uuid.UUID, componentType string) error
	PreviewStyles(ctx context.Context, userID, sessionID uuid.UUID) (map[string]map[string]string, error)
}

type studioService struct {
	db            *gorm.DB
	log           *logger.Logger
	sessionRepo   repos.SessionRepo
	choiceRepo    repos.StudioChoiceRepo
	styleRuleRepo repos.StyleRuleRepo
}

func NewStudioService(
	db *gorm.DB,
	log *logger.Logger,
	sessionRepo repos.SessionRepo,
	choiceRepo repos.StudioChoiceRepo,
	styleRuleRepo repos.StyleRuleRepo,
) StudioService {
	serviceLog := log.With("service", "StudioService")
	return &studioService{
		db:            db,
		log:           serviceLog,
		sessionRepo:   sessionRepo,
		choiceRepo:    choiceRepo,
		styleRuleRepo: styleRuleRepo,
	}
}

func loadStudioProgress(session *types.Session) studioProgress {
	if len(session.StudioProgress) > 0 {
		var p studioProgress
		if err := json.Unmarshal(session.StudioProgress, &p); err == nil {
			if p.CompletedComponents == nil {
				p.CompletedComponents = []string{}
			}
			if p.CheckpointApprovals == nil {
				p.CheckpointApprovals = []string{}
			}
			return p
		}
	}
	first := styles.StudioComponentTypes[0]
	return studioProgress{
		CompletedComponents: []string{},
		CurrentComponent:    &first,
		CheckpointApprovals: []string{},
	}
}

func saveStudioProgress(session *types.Session, progress studioProgress) {
	session.StudioProgress = encodeJSON(progress)
}

func knownStudioComponent(componentType string) bool {
	for _, ct := range styles.StudioComponentTypes {
		if ct == componentType {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// nextUncompleted returns the first component in sequence order the user has
// not locked yet.
func nextUncompleted(completed []string) *string {
	for _, ct := range styles.StudioComponentTypes {
		if !contains(completed, ct) {
			next := ct
			return &next
		}
	}
	return nil
}

func buildStudioProgress(progress studioProgress) *StudioProgress {
	isComplete := len(progress.CompletedComponents) >= len(styles.StudioComponentTypes)

	var pending *string
	if !isComplete && progress.CurrentComponent == nil {
		for _, group := range styles.CheckpointGroups {
			if contains(progress.CheckpointApprovals, group.ID) {
				continue
			}
			allDone := true
			for _, c := range group.Components {
				if !contains(progress.CompletedComponents, c) {
					allDone = false
					break
				}
			}
			if allDone {
				id := group.ID
				pending = &id
				break
			}
		}
	}

	current := progress.CurrentComponent
	if isComplete {
		current = nil
	}
	return &StudioProgress{
		CurrentComponent:      current,
		CurrentDimensionIndex: progress.CurrentDimensionIndex,
		CompletedComponents:   progress.CompletedComponents,
		TotalComponents:       len(styles.StudioComponentTypes),
		CheckpointApprovals:   progress.CheckpointApprovals,
		PendingCheckpoint:     pending,
		IsComplete:            isComplete,
	}
}

func (ss *studioService) Progress(ctx context.Context, userID, sessionID uuid.UUID) (*StudioProgress, error) {
	session, err := ss.sessionRepo.GetByIDForUser(ctx, nil, sessionID, userID)
	if err != nil {
		return nil, err
	}
	return buildStudioProgress(loadStudioProgress(session)), nil
}

func (ss *studioService) Dimensions(ctx context.Context, userID, sessionID uuid.UUID, componentType string) (*ComponentDimensions, error) {
	if _, err := ss.sessionRepo.GetByIDForUser(ctx, nil, sessionID, userID); err != nil {
		return nil, err
	}
	if !knownStudioComponent(componentType) {
		return nil, fmt.Errorf("%w: unknown component type: %s", apperr.ErrInvalidArgument, componentType)
	}
	return &ComponentDimensions{
		ComponentType:  componentType,
		ComponentLabel: styles.ComponentLabel(componentType),
		Dimensions:     styles.DimensionsForComponent(componentType),
	}, nil
}

func (ss *studioService) ComponentState(ctx context.Context, userID, sessionID uuid.UUID, componentType string) (*ComponentState, error) {
	if _, err := ss.sessionRepo.GetByIDForUser(ctx, nil, sessionID, userID); err != nil {
		return nil, err
	}
	if !knownStudioComponent(componentType) {
		return nil, fmt.Errorf("%w: unknown component type: %s", apperr.ErrInvalidArgument, componentType)
	}
	return ss.componentState(ctx, nil, sessionID, componentType)
}

func (ss *studioService) componentState(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, componentType string) (*ComponentState, error) {
	choices, err := ss.choiceRepo.ListByComponent(ctx, tx, sessionID, componentType)
	if err != nil {
		return nil, fmt.Errorf("failed to load studio choices: %w", err)
	}
	state := &ComponentState{
		ComponentType: componentType,
		Choices:       map[string]DimensionChoiceView{},
	}
	for _, choice := range choices {
		state.Choices[choice.DimensionKey] = DimensionChoiceView{
			OptionID:       choice.OptionID,
			Value:          choice.FinalValue(),
			OriginalValue:  choice.SelectedValue,
			FineTunedValue: choice.FineTunedValue,
			CSSProperty:    choice.CSSProperty,
		}
	}
	return state, nil
}

// SubmitDimensionChoice stores the pick, mirrors it into a style rule so the
// audit engine enforces it, and advances the dimension cursor when the pick
// was for the dimension currently in front of the user.
func (ss *studioService) SubmitDimensionChoice(ctx context.Context, userID, sessionID uuid.UUID, componentType string, input DimensionChoiceInput) (*DimensionChoiceResult, error) {
	session, err := ss.sessionRepo.GetByIDForUser(ctx, nil, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if !knownStudioComponent(componentType) {
		return nil, fmt.Errorf("%w: unknown component type: %s", apperr.ErrInvalidArgument, componentType)
	}

	finalValue := input.SelectedValue
	if input.FineTunedValue != nil && *input.FineTunedValue != "" {
		finalValue = *input.FineTunedValue
	}

	dimLabel := input.Dimension
	if dim, ok := styles.DimensionByKey(componentType, input.Dimension); ok {
		dimLabel = dim.Label
	}
	componentOwner := componentType
	rule := &types.StyleRule{
		ID:            uuid.New(),
		SessionID:     sessionID,
		RuleID:        fmt.Sprintf("studio-%s-%s", componentType, input.Dimension),
		ComponentType: &componentOwner,
		Property:      input.CSSProperty,
		Operator:      "=",
		Value:         finalValue,
		Severity:      "warning",
		Confidence:    1.0,
		Source:        rules.SourceExtracted,
		Message:       fmt.Sprintf("%s %s: %s", styles.ComponentLabel(componentType), dimLabel, finalValue),
	}

	var result *DimensionChoiceResult
	err = ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		choice := &types.StudioChoice{
			ID:             uuid.New(),
			SessionID:      sessionID,
			ComponentType:  componentType,
			DimensionKey:   input.Dimension,
			OptionID:       input.SelectedOptionID,
			SelectedValue:  input.SelectedValue,
			FineTunedValue: input.FineTunedValue,
			CSSProperty:    input.CSSProperty,
		}
		if _, err := ss.choiceRepo.Upsert(ctx, tx, choice); err != nil {
			return fmt.Errorf("failed to store studio choice: %w", err)
		}
		if _, err := ss.styleRuleRepo.Upsert(ctx, tx, rule); err != nil {
			return fmt.Errorf("failed to mirror studio rule: %w", err)
		}

		progress := loadStudioProgress(session)
		dimensions := styles.DimensionsForComponent(componentType)
		for i, dim := range dimensions {
			if dim.Key == input.Dimension && i == progress.CurrentDimensionIndex {
				progress.CurrentDimensionIndex++
				break
			}
		}
		saveStudioProgress(session, progress)
		session.UpdatedAt = time.Now()
		if err := ss.sessionRepo.Save(ctx, tx, session); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}

		result = &DimensionChoiceResult{
			Success:         true,
			DimensionIndex:  progress.CurrentDimensionIndex,
			TotalDimensions: len(dimensions),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// LockCurrentComponent marks the current component done. A component that
// closes out a checkpoint group pauses the flow for a mockup review instead
// of advancing.
func (ss *studioService) LockCurrentComponent(ctx context.Context, userID, sessionID uuid.UUID) (*LockComponentResult, error) {
	session, err := ss.sessionRepo.GetByIDForUser(ctx, nil, sessionID, userID)
	if err != nil {
		return nil, err
	}
	progress := loadStudioProgress(session)
	if progress.CurrentComponent == nil || len(progress.CompletedComponents) >= len(styles.StudioComponentTypes) {
		return nil, fmt.Errorf("%w: no current component to lock", apperr.ErrInvalidArgument)
	}
	componentType := *progress.CurrentComponent

	if !contains(progress.CompletedComponents, componentType) {
		progress.CompletedComponents = append(progress.CompletedComponents, componentType)
	}

	result := &LockComponentResult{Success: true}
	if styles.IsCheckpointTrigger(componentType) {
		if group, ok := styles.CheckpointForComponent(componentType); ok && !contains(progress.CheckpointApprovals, group.ID) {
			id := group.ID
			result.TriggerCheckpoint = &id
		}
	}

	if result.TriggerCheckpoint != nil {
		progress.CurrentComponent = nil
		progress.CurrentDimensionIndex = 0
	} else if next := nextUncompleted(progress.CompletedComponents); next != nil {
		progress.CurrentComponent = next
		progress.CurrentDimensionIndex = 0
		result.NextComponent = next
	} else {
		result.IsStudioComplete = true
		progress.CurrentComponent = nil
	}

	saveStudioProgress(session, progress)
	session.UpdatedAt = time.Now()
	if err := ss.sessionRepo.Save(ctx, nil, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return result, nil
}

func (ss *studioService) Checkpoint(ctx context.Context, userID, sessionID uuid.UUID, checkpointID string) (*CheckpointData, error) {
	session, err := ss.sessionRepo.GetByIDForUser(ctx, nil, sessionID, userID)
	if err != nil {
		return nil, err
	}

	var group *styles.CheckpointGroup
	for i := range styles.CheckpointGroups {
		if styles.CheckpointGroups[i].ID == checkpointID {
			group = &styles.CheckpointGroups[i]
			break
		}
	}
	if group == nil {
		return nil, fmt.Errorf("%w: checkpoint not found: %s", apperr.ErrNotFound, checkpointID)
	}

	progress := loadStudioProgress(session)
	componentStyles := map[string]map[string]string{}
	for _, componentType := range progress.CompletedComponents {
		state, err := ss.componentState(ctx, nil, sessionID, componentType)
		if err != nil {
			return nil, err
		}
		compiled := map[string]string{}
		for _, choice := range state.Choices {
			compiled[choice.CSSProperty] = choice.Value
		}
		componentStyles[componentType] = compiled
	}

	data := &CheckpointData{
		CheckpointID:    group.ID,
		Label:           group.Label,
		Description:     group.Description,
		MockupType:      group.MockupType,
		Components:      group.Components,
		ComponentStyles: componentStyles,
	}
	if len(session.ChosenColors) > 0 {
		data.Colors = decodeJSONMap(session.ChosenColors)
	}
	if len(session.ChosenTypography) > 0 {
		data.Typography = decodeJSONMap(session.ChosenTypography)
	}
	return data, nil
}

// ApproveCheckpoint records the approval and resumes the component sequence.
// Approving the final checkpoint moves the session into stated preferences.
func (ss *studioService) ApproveCheckpoint(ctx context.Context, userID, sessionID uuid.UUID, checkpointID string) (*ApproveCheckpointResult, error) {
	session, err := ss.sessionRepo.GetByIDForUser(ctx, nil, sessionID, userID)
	if err != nil {
		return nil, err
	}
	progress := loadStudioProgress(session)
	if !contains(progress.CheckpointApprovals, checkpointID) {
		progress.CheckpointApprovals = append(progress.CheckpointApprovals, checkpointID)
	}

	result := &ApproveCheckpointResult{Success: true}
	if next := nextUncompleted(progress.CompletedComponents); next != nil {
		progress.CurrentComponent = next
		progress.CurrentDimensionIndex = 0
		result.NextComponent = next
	} else {
		result.IsStudioComplete = true
		progress.CurrentComponent = nil
		session.Phase = types.PhaseStatedPreferences
	}

	saveStudioProgress(session, progress)
	session.UpdatedAt = time.Now()
	if err := ss.sessionRepo.Save(ctx, nil, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return result, nil
}

func (ss *studioService) GoBack(ctx context.Context, userID, sessionID uuid.UUID, componentType string) error {
	session, err := ss.sessionRepo.GetByIDForUser(ctx, nil, sessionID, userID)
	if err != nil {
		return err
	}
	if !knownStudioComponent(componentType) {
		return fmt.Errorf("%w: unknown component type: %s", apperr.ErrInvalidArgument, componentType)
	}
	progress := loadStudioProgress(session)
	progress.CurrentComponent = &componentType
	progress.CurrentDimensionIndex = 0
	saveStudioProgress(session, progress)
	session.UpdatedAt = time.Now()
	if err := ss.sessionRepo.Save(ctx, nil, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (ss *studioService) PreviewStyles(ctx context.Context, userID, sessionID uuid.UUID) (map[string]map[string]string, error) {
	if _, err := ss.sessionRepo.GetByIDForUser(ctx, nil, sessionID, userID); err != nil {
		return nil, err
	}
	choices, err := ss.choiceRepo.ListBySession(ctx, nil, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load studio choices: %w", err)
	}
	compiled := map[string]map[string]string{}
	for _, choice := range choices {
		if compiled[choice.ComponentType] == nil {
			compiled[choice.ComponentType] = map[string]string{}
		}
		compiled[choice.ComponentType][choice.CSSProperty] = choice.FinalValue()
	}
	return compiled, nil
}
