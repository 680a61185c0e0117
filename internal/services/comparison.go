package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ryan-the-brodsky/tastemaker/internal/analyzer"
	"github.com/ryan-the-brodsky/tastemaker/internal/apperr"
	"github.com/ryan-the-brodsky/tastemaker/internal/logger"
	"github.com/ryan-the-brodsky/tastemaker/internal/repos"
	"github.com/ryan-the-brodsky/tastemaker/internal/types"
	"github.com/ryan-the-brodsky/tastemaker/internal/variation"
)

// Exit thresholds for the phase controller. The two exploration phases end
// after five comparisons (or an explicit lock-in); dimension isolation ends
// at thirty. Territory mapping exits on the analyzer's transition decision.
const (
	explorationExitCount        = 5
	dimensionIsolationExitCount = 30
	territoryMappingTargetCount = 15
)

// SubmitChoiceInput carries everything the user sent for one comparison.
type SubmitChoiceInput struct {
	ComparisonID   int                         `json:"comparison_id"`
	Choice         string                      `json:"choice"`
	DecisionTimeMS int                         `json:"decision_time_ms"`
	Answers        []analyzer.QuestionResponse `json:"answers,omitempty"`
}

// LockInInput ends an exploration phase early with an explicit pick.
type LockInInput struct {
	ChosenOptionID string         `json:"chosen_option_id"`
	ChosenStyles   map[string]any `json:"chosen_styles"`
}

// LockInResult reports the phase the session moved to.
type LockInResult struct {
	Success  bool   `json:"success"`
	NewPhase string `json:"new_phase"`
	Message  string `json:"message"`
}

// ComparisonBatch is a pre-generated run of comparisons for the frontend to
// page through without a round trip per choice.
type ComparisonBatch struct {
	Comparisons []variation.Comparison `json:"comparisons"`
	BatchID     string                 `json:"batch_id"`
	HasMore     bool                   `json:"has_more"`
}

type ComparisonService interface {
	Next(ctx context.Context, userID, sessionID uuid.UUID) (*variation.Comparison, error)
	SubmitChoice(ctx context.Context, userID, sessionID uuid.UUID, input SubmitChoiceInput) (*SessionProgress, error)
	Batch(ctx context.Context, userID, sessionID uuid.UUID, batchSize int) (*ComparisonBatch, error)
	LockIn(ctx context.Context, userID, sessionID uuid.UUID, input LockInInput) (*LockInResult, error)
}

type comparisonService struct {
	db             *gorm.DB
	log            *logger.Logger
	sessionRepo    repos.SessionRepo
	comparisonRepo repos.ComparisonResultRepo
}

func NewComparisonService(
	db *gorm.DB,
	log *logger.Logger,
	sessionRepo repos.SessionRepo,
	comparisonRepo repos.ComparisonResultRepo,
) ComparisonService {
	serviceLog := log.With("service", "ComparisonService")
	return &comparisonService{
		db:             db,
		log:            serviceLog,
		sessionRepo:    sessionRepo,
		comparisonRepo: comparisonRepo,
	}
}

// Next generates the comparison for the session's current phase. Territory
// mapping may flip to dimension isolation here when the history already
// supports the transition.
func (cs *comparisonService) Next(ctx context.Context, userID, sessionID uuid.UUID) (*variation.Comparison, error) {
	session, err := cs.sessionRepo.GetByIDForUser(ctx, nil, sessionID, userID)
	if err != nil {
		return nil, err
	}

	if session.Phase == types.PhaseColorExploration || session.Phase == types.PhaseTypographyExploration {
		comparison := variation.Generate(session.Phase, session.ComparisonCount, nil, "")
		return &comparison, nil
	}

	rows, err := cs.comparisonRepo.ListBySession(ctx, nil, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load comparison history: %w", err)
	}
	results := analyzerResults(rows)

	if session.Phase == types.PhaseTerritoryMapping {
		if analyzer.ShouldTransitionToDimensionIsolation(session.ComparisonCount, results) {
			session.Phase = types.PhaseDimensionIsolation
			if err := cs.sessionRepo.Save(ctx, nil, session); err != nil {
				return nil, fmt.Errorf("failed to advance phase: %w", err)
			}
		}
	}

	var baseStyles map[string]any
	var propertyToTest string
	if session.Phase == types.PhaseDimensionIsolation {
		tested := testedProperties(rows)
		propertyToTest, baseStyles = analyzer.PropertyToTest(results, tested)
	}

	comparison := variation.Generate(session.Phase, session.ComparisonCount, baseStyles, propertyToTest)
	return &comparison, nil
}

// SubmitChoice records one choice, updates the running preference state, and
// applies the phase transition rules.
func (cs *comparisonService) SubmitChoice(ctx context.Context, userID, sessionID uuid.UUID, input SubmitChoiceInput) (*SessionProgress, error) {
	if input.Choice != types.ChoiceA && input.Choice != types.ChoiceB && input.Choice != types.ChoiceNone {
		return nil, fmt.Errorf("%w: choice must be 'a', 'b', or 'none'", apperr.ErrInvalidArgument)
	}

	session, err := cs.sessionRepo.GetByIDForUser(ctx, nil, sessionID, userID)
	if err != nil {
		return nil, err
	}

	// Regenerate the comparison the user was shown. Generation is seeded by
	// the comparison count, so this reproduces the same pair.
	var baseStyles map[string]any
	var propertyToTest string
	rows, err := cs.comparisonRepo.ListBySession(ctx, nil, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load comparison history: %w", err)
	}
	if session.Phase == types.PhaseDimensionIsolation {
		propertyToTest, baseStyles = analyzer.PropertyToTest(analyzerResults(rows), testedProperties(rows))
	}
	comparison := variation.Generate(session.Phase, session.ComparisonCount, baseStyles, propertyToTest)

	result := &types.ComparisonResult{
		ID:               uuid.New(),
		SessionID:        sessionID,
		ComparisonNumber: input.ComparisonID,
		Phase:            session.Phase,
		ComponentType:    comparison.ComponentType,
		OptionAStyles:    encodeJSON(comparison.OptionA.Styles),
		OptionBStyles:    encodeJSON(comparison.OptionB.Styles),
		Choice:           input.Choice,
		DecisionTimeMS:   input.DecisionTimeMS,
	}
	if len(input.Answers) > 0 {
		result.QuestionResponses = encodeJSON(input.Answers)
	}

	var progress *SessionProgress
	err = cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := cs.comparisonRepo.Create(ctx, tx, result); err != nil {
			return fmt.Errorf("failed to store comparison result: %w", err)
		}

		session.ComparisonCount++
		session.UpdatedAt = time.Now()

		if len(input.Answers) > 0 {
			updateEstablishedPreferences(session, comparison, input.Answers)
		}

		allRows, err := cs.comparisonRepo.ListBySession(ctx, tx, sessionID)
		if err != nil {
			return fmt.Errorf("failed to reload comparison history: %w", err)
		}
		results := analyzerResults(allRows)
		session.ConfidenceScore = analyzer.SessionConfidence(results, 10)

		nextPhase := applyPhaseTransition(session, comparison, input.Choice, results)

		if err := cs.sessionRepo.Save(ctx, tx, session); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}

		progress = &SessionProgress{
			ComparisonCount: session.ComparisonCount,
			Phase:           session.Phase,
			ConfidenceScore: session.ConfidenceScore,
			NextPhase:       nextPhase,
		}
		if len(session.EstablishedPreferences) > 0 {
			progress.EstablishedPreferences = decodeJSONMap(session.EstablishedPreferences)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return progress, nil
}

// Batch pre-generates comparisons for the component phases.
func (cs *comparisonService) Batch(ctx context.Context, userID, sessionID uuid.UUID, batchSize int) (*ComparisonBatch, error) {
	session, err := cs.sessionRepo.GetByIDForUser(ctx, nil, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session.Phase != types.PhaseTerritoryMapping && session.Phase != types.PhaseDimensionIsolation {
		return nil, fmt.Errorf("%w: batch generation only available for component phases, current phase: %s", apperr.ErrInvalidArgument, session.Phase)
	}
	if batchSize <= 0 {
		batchSize = 5
	}

	var baseStyles map[string]any
	var propertyToTest string
	if session.Phase == types.PhaseDimensionIsolation {
		rows, err := cs.comparisonRepo.ListBySession(ctx, nil, sessionID)
		if err != nil {
			return nil, fmt.Errorf("failed to load comparison history: %w", err)
		}
		propertyToTest, baseStyles = analyzer.PropertyToTest(analyzerResults(rows), testedProperties(rows))
	}

	comparisons := make([]variation.Comparison, 0, batchSize)
	for i := 0; i < batchSize; i++ {
		comparisons = append(comparisons, variation.Generate(session.Phase, session.ComparisonCount+i, baseStyles, propertyToTest))
	}

	return &ComparisonBatch{
		Comparisons: comparisons,
		BatchID:     uuid.NewString(),
		HasMore:     session.ComparisonCount+len(comparisons) < territoryMappingTargetCount,
	}, nil
}

// LockIn ends a color or typography exploration phase with an explicit pick
// instead of waiting for the comparison threshold.
func (cs *comparisonService) LockIn(ctx context.Context, userID, sessionID uuid.UUID, input LockInInput) (*LockInResult, error) {
	session, err := cs.sessionRepo.GetByIDForUser(ctx, nil, sessionID, userID)
	if err != nil {
		return nil, err
	}

	switch session.Phase {
	case types.PhaseColorExploration:
		session.ChosenColors = encodeJSON(input.ChosenStyles)
		session.Phase = types.PhaseTypographyExploration
		session.ComparisonCount = 0
		if err := cs.sessionRepo.Save(ctx, nil, session); err != nil {
			return nil, fmt.Errorf("failed to save session: %w", err)
		}
		return &LockInResult{
			Success:  true,
			NewPhase: session.Phase,
			Message:  "Color palette locked in! Moving to typography selection.",
		}, nil
	case types.PhaseTypographyExploration:
		session.ChosenTypography = encodeJSON(input.ChosenStyles)
		session.Phase = nextPhaseAfterTypography(session.Flow)
		session.ComparisonCount = 0
		if err := cs.sessionRepo.Save(ctx, nil, session); err != nil {
			return nil, fmt.Errorf("failed to save session: %w", err)
		}
		return &LockInResult{
			Success:  true,
			NewPhase: session.Phase,
			Message:  "Typography locked in! Moving to Component Studio.",
		}, nil
	}
	return nil, fmt.Errorf("%w: lock-in only available during exploration phases, current phase: %s", apperr.ErrInvalidArgument, session.Phase)
}

// nextPhaseAfterTypography picks the middle stage for the session's flow.
func nextPhaseAfterTypography(flow string) string {
	if flow == types.FlowMapping {
		return types.PhaseTerritoryMapping
	}
	return types.PhaseComponentStudio
}

// applyPhaseTransition mutates the session per the phase exit rules and
// returns the new phase when one was entered.
func applyPhaseTransition(session *types.Session, comparison variation.Comparison, choice string, results []analyzer.Result) *string {
	var next string
	switch session.Phase {
	case types.PhaseColorExploration:
		if session.ComparisonCount >= explorationExitCount {
			session.ChosenColors = encodeJSON(chosenStyles(comparison, choice))
			session.Phase = types.PhaseTypographyExploration
			session.ComparisonCount = 0
			next = session.Phase
		}
	case types.PhaseTypographyExploration:
		if session.ComparisonCount >= explorationExitCount {
			session.ChosenTypography = encodeJSON(chosenStyles(comparison, choice))
			session.Phase = nextPhaseAfterTypography(session.Flow)
			session.ComparisonCount = 0
			next = session.Phase
		}
	case types.PhaseTerritoryMapping:
		if analyzer.ShouldTransitionToDimensionIsolation(session.ComparisonCount, results) {
			session.Phase = types.PhaseDimensionIsolation
			next = session.Phase
		}
	case types.PhaseDimensionIsolation:
		if session.ComparisonCount >= dimensionIsolationExitCount {
			session.Phase = types.PhaseStatedPreferences
			next = session.Phase
		}
	}
	if next == "" {
		return nil
	}
	return &next
}

// chosenStyles resolves which side the user picked. "none" defaults to A so
// the session still carries a usable palette forward.
func chosenStyles(comparison variation.Comparison, choice string) map[string]any {
	if choice == types.ChoiceB {
		return comparison.OptionB.Styles
	}
	return comparison.OptionA.Styles
}

// updateEstablishedPreferences folds per-question answers into the session's
// running preference map so later comparisons can incorporate them.
func updateEstablishedPreferences(session *types.Session, comparison variation.Comparison, answers []analyzer.QuestionResponse) {
	established := decodeJSONMap(session.EstablishedPreferences)
	for _, answer := range answers {
		switch answer.Choice {
		case types.ChoiceA:
			if v, ok := comparison.OptionA.Styles[answer.Property]; ok {
				established[answer.Property] = v
			}
		case types.ChoiceB:
			if v, ok := comparison.OptionB.Styles[answer.Property]; ok {
				established[answer.Property] = v
			}
		}
	}
	session.EstablishedPreferences = encodeJSON(established)
}

// testedProperties lists, in encounter order, the properties already
// isolated in dimension isolation rows. The isolated property is the one the
// two sides disagree on.
func testedProperties(rows []*types.ComparisonResult) []string {
	var tested []string
	seen := map[string]bool{}
	for _, row := range rows {
		if row.Phase != types.PhaseDimensionIsolation {
			continue
		}
		a := decodeJSONMap(row.OptionAStyles)
		b := decodeJSONMap(row.OptionBStyles)
		for prop, av := range a {
			bv, ok := b[prop]
			if !ok {
				continue
			}
			if fmt.Sprintf("%v", av) != fmt.Sprintf("%v", bv) && !seen[prop] {
				seen[prop] = true
				tested = append(tested, prop)
			}
		}
	}
	return tested
}
