package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ryan-the-brodsky/tastemaker/internal/analyzer"
	"github.com/ryan-the-brodsky/tastemaker/internal/apperr"
	"github.com/ryan-the-brodsky/tastemaker/internal/logger"
	"github.com/ryan-the-brodsky/tastemaker/internal/repos"
	"github.com/ryan-the-brodsky/tastemaker/internal/types"
)

// CreateSessionInput is the payload for starting a new extraction session.
type CreateSessionInput struct {
	Name               string   `json:"name"`
	Flow               string   `json:"flow"`
	BrandColors        []string `json:"brand_colors"`
	ProjectDescription string   `json:"project_description"`
}

// SessionDetail is a session with its full comparison and rule history.
type SessionDetail struct {
	Session     *types.Session            `json:"session"`
	Comparisons []*types.ComparisonResult `json:"comparisons"`
	Rules       []*types.StyleRule        `json:"rules"`
}

// SessionProgress reports where a session stands after a choice.
type SessionProgress struct {
	ComparisonCount        int            `json:"comparison_count"`
	Phase                  string         `json:"phase"`
	ConfidenceScore        float64        `json:"confidence_score"`
	NextPhase              *string        `json:"next_phase,omitempty"`
	EstablishedPreferences map[string]any `json:"established_preferences,omitempty"`
}

type SessionService interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateSessionInput) (*types.Session, error)
	List(ctx context.Context, userID uuid.UUID) ([]*types.Session, error)
	Get(ctx context.Context, userID, sessionID uuid.UUID) (*SessionDetail, error)
	Delete(ctx context.Context, userID, sessionID uuid.UUID) error
	Progress(ctx context.Context, userID, sessionID uuid.UUID) (*SessionProgress, error)
}

type sessionService struct {
	db             *gorm.DB
	log            *logger.Logger
	sessionRepo    repos.SessionRepo
	comparisonRepo repos.ComparisonResultRepo
	styleRuleRepo  repos.StyleRuleRepo
}

func NewSessionService(
	db *gorm.DB,
	log *logger.Logger,
	sessionRepo repos.SessionRepo,
	comparisonRepo repos.ComparisonResultRepo,
	styleRuleRepo repos.StyleRuleRepo,
) SessionService {
	serviceLog := log.With("service", "SessionService")
	return &sessionService{
		db:             db,
		log:            serviceLog,
		sessionRepo:    sessionRepo,
		comparisonRepo: comparisonRepo,
		styleRuleRepo:  styleRuleRepo,
	}
}

func (ss *sessionService) Create(ctx context.Context, userID uuid.UUID, input CreateSessionInput) (*types.Session, error) {
	flow := input.Flow
	if flow == "" {
		flow = types.FlowStudio
	}
	if flow != types.FlowStudio && flow != types.FlowMapping {
		return nil, fmt.Errorf("%w: unknown flow: %s", apperr.ErrInvalidArgument, flow)
	}
	session := &types.Session{
		ID:                 uuid.New(),
		UserID:             userID,
		Name:               input.Name,
		ProjectDescription: input.ProjectDescription,
		Phase:              types.PhaseColorExploration,
		Flow:               flow,
		ComparisonCount:    0,
		ConfidenceScore:    0,
	}
	if len(input.BrandColors) > 0 {
		session.BrandColors = encodeJSON(input.BrandColors)
	}
	created, err := ss.sessionRepo.Create(ctx, nil, session)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return created, nil
}

func (ss *sessionService) List(ctx context.Context, userID uuid.UUID) ([]*types.Session, error) {
	sessions, err := ss.sessionRepo.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

func (ss *sessionService) Get(ctx context.Context, userID, sessionID uuid.UUID) (*SessionDetail, error) {
	session, err := ss.sessionRepo.GetByIDForUser(ctx, nil, sessionID, userID)
	if err != nil {
		return nil, err
	}
	comparisons, err := ss.comparisonRepo.ListBySession(ctx, nil, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load comparisons: %w", err)
	}
	ruleRows, err := ss.styleRuleRepo.ListBySession(ctx, nil, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}
	return &SessionDetail{
		Session:     session,
		Comparisons: comparisons,
		Rules:       ruleRows,
	}, nil
}

func (ss *sessionService) Delete(ctx context.Context, userID, sessionID uuid.UUID) error {
	if _, err := ss.sessionRepo.GetByIDForUser(ctx, nil, sessionID, userID); err != nil {
		return err
	}
	return ss.sessionRepo.Delete(ctx, nil, sessionID)
}

// Progress recomputes the session confidence from the full comparison log.
func (ss *sessionService) Progress(ctx context.Context, userID, sessionID uuid.UUID) (*SessionProgress, error) {
	session, err := ss.sessionRepo.GetByIDForUser(ctx, nil, sessionID, userID)
	if err != nil {
		return nil, err
	}
	rows, err := ss.comparisonRepo.ListBySession(ctx, nil, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load comparisons: %w", err)
	}
	confidence := analyzer.SessionConfidence(analyzerResults(rows), 10)
	progress := &SessionProgress{
		ComparisonCount: session.ComparisonCount,
		Phase:           session.Phase,
		ConfidenceScore: confidence,
	}
	if len(session.EstablishedPreferences) > 0 {
		progress.EstablishedPreferences = decodeJSONMap(session.EstablishedPreferences)
	}
	return progress, nil
}
