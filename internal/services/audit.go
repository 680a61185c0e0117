package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ryan-the-brodsky/tastemaker/internal/audit"
	"github.com/ryan-the-brodsky/tastemaker/internal/clients/vision"
	"github.com/ryan-the-brodsky/tastemaker/internal/logger"
	"github.com/ryan-the-brodsky/tastemaker/internal/repos"
	"github.com/ryan-the-brodsky/tastemaker/internal/rules"
)

type AuditService interface {
	AuditScreenshot(ctx context.Context, userID, sessionID uuid.UUID, imageBase64, mediaType string) (*audit.Result, error)
}

type auditService struct {
	log           *logger.Logger
	sessionRepo   repos.SessionRepo
	styleRuleRepo repos.StyleRuleRepo
	extractor     vision.Extractor // nil runs in demo mode
	engine        *audit.Engine
}

// NewAuditService wires the screenshot audit. A nil extractor is allowed;
// audits then return a canned demo result instead of real observations.
func NewAuditService(
	log *logger.Logger,
	sessionRepo repos.SessionRepo,
	styleRuleRepo repos.StyleRuleRepo,
	extractor vision.Extractor,
) AuditService {
	serviceLog := log.With("service", "AuditService")
	return &auditService{
		log:           serviceLog,
		sessionRepo:   sessionRepo,
		styleRuleRepo: styleRuleRepo,
		extractor:     extractor,
		engine:        audit.NewEngine(),
	}
}

// AuditScreenshot extracts raw values from the screenshot, then applies the
// session's rules deterministically. The model never judges; it only reads.
func (as *auditService) AuditScreenshot(ctx context.Context, userID, sessionID uuid.UUID, imageBase64, mediaType string) (*audit.Result, error) {
	session, err := as.sessionRepo.GetByIDForUser(ctx, nil, sessionID, userID)
	if err != nil {
		return nil, err
	}

	ruleRows, err := as.styleRuleRepo.ListBySession(ctx, nil, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}
	ruleList := make([]rules.Rule, 0, len(ruleRows))
	for _, row := range ruleRows {
		ruleList = append(ruleList, rowToRule(row))
	}

	chosenColors := decodeJSONStringMap(session.ChosenColors)
	chosenTypography := decodeJSONStringMap(session.ChosenTypography)

	if as.extractor == nil {
		return demoAuditResult(chosenColors), nil
	}

	extracted, err := as.extractor.ExtractScreenshot(ctx, imageBase64, mediaType)
	if err != nil {
		if errors.Is(err, vision.ErrDecode) {
			as.log.Warn("screenshot extraction returned unparseable output", "session_id", sessionID)
			return &audit.Result{
				Violations: []audit.Violation{},
				Summary:    "Could not extract values from screenshot. Try a clearer image.",
				Score:      50,
			}, nil
		}
		return nil, err
	}

	result := as.engine.Audit(extracted, ruleList, chosenColors, chosenTypography)
	as.log.Info("screenshot audited",
		"session_id", sessionID,
		"violations", len(result.Violations),
		"score", result.Score)
	return &result, nil
}

// demoAuditResult is returned when no vision provider is configured, so the
// endpoint stays demonstrable without credentials.
func demoAuditResult(chosenColors map[string]string) *audit.Result {
	expected := "defined palette"
	if len(chosenColors) > 0 {
		expected = fmt.Sprintf("%v", chosenColors)
	}
	return &audit.Result{
		Violations: []audit.Violation{
			{
				RuleID:     "demo-001",
				Severity:   rules.SeverityWarning,
				Property:   "color",
				Expected:   expected,
				Found:      "unknown",
				Message:    "No AI provider configured",
				Suggestion: "Set OPENAI_API_KEY in .env",
			},
		},
		Summary: "Demo mode - No AI provider configured for value extraction",
		Score:   75,
	}
}
