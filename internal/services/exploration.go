package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ryan-the-brodsky/tastemaker/internal/apperr"
	"github.com/ryan-the-brodsky/tastemaker/internal/clients/openai"
	"github.com/ryan-the-brodsky/tastemaker/internal/logger"
	"github.com/ryan-the-brodsky/tastemaker/internal/repos"
	"github.com/ryan-the-brodsky/tastemaker/internal/types"
)

// maxExplorationDepth is the forced lock-in point. Three rounds of narrowing
// is enough signal; deeper trees stop converging.
const maxExplorationDepth = 3

// ExplorationOptions is one page of palette or typography candidates.
type ExplorationOptions struct {
	Options          []map[string]any `json:"options"`
	Context          string           `json:"context,omitempty"`
	ExplorationDepth int              `json:"exploration_depth"`
	ExplorationType  string           `json:"exploration_type"`
	CanLockIn        bool             `json:"can_lock_in"`
}

// ExplorationSelection is the user's pick from the current page.
type ExplorationSelection struct {
	SelectedOptionID string         `json:"selected_option_id"`
	SelectedOption   map[string]any `json:"selected_option"`
	WantsRefinement  bool           `json:"wants_refinement"`
}

// ExplorationProgress reports the outcome of a selection: either refined
// options for another round, or a lock-in with the next phase.
type ExplorationProgress struct {
	Success          bool             `json:"success"`
	ExplorationDepth int              `json:"exploration_depth"`
	NextOptions      []map[string]any `json:"next_options,omitempty"`
	LockedIn         bool             `json:"locked_in"`
	NewPhase         *string          `json:"new_phase,omitempty"`
	Message          string           `json:"message"`
}

// explorationState is the per-type narrowing state, stored inside the
// session's established preferences under a "_exploration_<type>" key so it
// survives without its own table.
type explorationState struct {
	Depth         int            `json:"depth"`
	History       []string       `json:"history"`
	LastSelection map[string]any `json:"last_selection,omitempty"`
}

type ExplorationService interface {
	PaletteOptions(ctx context.Context, userID, sessionID uuid.UUID) (*ExplorationOptions, error)
	SelectPalette(ctx context.Context, userID, sessionID uuid.UUID, selection ExplorationSelection) (*ExplorationProgress, error)
	TypographyOptions(ctx context.Context, userID, sessionID uuid.UUID) (*ExplorationOptions, error)
	SelectTypography(ctx context.Context, userID, sessionID uuid.UUID, selection ExplorationSelection) (*ExplorationProgress, error)
}

type explorationService struct {
	db          *gorm.DB
	log         *logger.Logger
	sessionRepo repos.SessionRepo
	ai          openai.Client // nil serves static fallback options
}

func NewExplorationService(
	db *gorm.DB,
	log *logger.Logger,
	sessionRepo repos.SessionRepo,
	ai openai.Client,
) ExplorationService {
	serviceLog := log.With("service", "ExplorationService")
	return &explorationService{
		db:          db,
		log:         serviceLog,
		sessionRepo: sessionRepo,
		ai:          ai,
	}
}

func (es *explorationService) PaletteOptions(ctx context.Context, userID, sessionID uuid.UUID) (*ExplorationOptions, error) {
	session, err := es.sessionRepo.GetByIDForUser(ctx, nil, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session.Phase != types.PhaseColorExploration {
		return nil, fmt.Errorf("%w: not in color exploration phase, current phase: %s", apperr.ErrInvalidArgument, session.Phase)
	}

	state := loadExplorationState(session, "color")
	options, contextNote := es.generateOptions(ctx, "palette", session.ProjectDescription, state.Depth, state.LastSelection)
	return &ExplorationOptions{
		Options:          options,
		Context:          contextNote,
		ExplorationDepth: state.Depth,
		ExplorationType:  "palette",
		CanLockIn:        true,
	}, nil
}

func (es *explorationService) SelectPalette(ctx context.Context, userID, sessionID uuid.UUID, selection ExplorationSelection) (*ExplorationProgress, error) {
	session, err := es.sessionRepo.GetByIDForUser(ctx, nil, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session.Phase != types.PhaseColorExploration {
		return nil, fmt.Errorf("%w: not in color exploration phase, current phase: %s", apperr.ErrInvalidArgument, session.Phase)
	}

	state := advanceExplorationState(session, "color", selection)

	if !selection.WantsRefinement || state.Depth >= maxExplorationDepth {
		session.ChosenColors = encodeJSON(selection.SelectedOption)
		session.Phase = types.PhaseTypographyExploration
		saveExplorationState(session, "typography", explorationState{History: []string{}})
		session.UpdatedAt = time.Now()
		if err := es.sessionRepo.Save(ctx, nil, session); err != nil {
			return nil, fmt.Errorf("failed to save session: %w", err)
		}
		newPhase := session.Phase
		return &ExplorationProgress{
			Success:          true,
			ExplorationDepth: state.Depth,
			LockedIn:         true,
			NewPhase:         &newPhase,
			Message:          fmt.Sprintf("Color palette '%s' locked in! Moving to typography exploration.", optionName(selection)),
		}, nil
	}

	session.UpdatedAt = time.Now()
	if err := es.sessionRepo.Save(ctx, nil, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return es.refinementProgress(ctx, "palette", session.ProjectDescription, state, selection), nil
}

func (es *explorationService) TypographyOptions(ctx context.Context, userID, sessionID uuid.UUID) (*ExplorationOptions, error) {
	session, err := es.sessionRepo.GetByIDForUser(ctx, nil, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session.Phase != types.PhaseTypographyExploration {
		return nil, fmt.Errorf("%w: not in typography exploration phase, current phase: %s", apperr.ErrInvalidArgument, session.Phase)
	}

	state := loadExplorationState(session, "typography")
	options, contextNote := es.generateOptions(ctx, "typography", session.ProjectDescription, state.Depth, state.LastSelection)
	return &ExplorationOptions{
		Options:          options,
		Context:          contextNote,
		ExplorationDepth: state.Depth,
		ExplorationType:  "typography",
		CanLockIn:        true,
	}, nil
}

func (es *explorationService) SelectTypography(ctx context.Context, userID, sessionID uuid.UUID, selection ExplorationSelection) (*ExplorationProgress, error) {
	session, err := es.sessionRepo.GetByIDForUser(ctx, nil, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session.Phase != types.PhaseTypographyExploration {
		return nil, fmt.Errorf("%w: not in typography exploration phase, current phase: %s", apperr.ErrInvalidArgument, session.Phase)
	}

	state := advanceExplorationState(session, "typography", selection)

	if !selection.WantsRefinement || state.Depth >= maxExplorationDepth {
		session.ChosenTypography = encodeJSON(map[string]any{
			"heading":  selection.SelectedOption["heading"],
			"body":     selection.SelectedOption["body"],
			"style":    selection.SelectedOption["id"],
			"category": selection.SelectedOption["category"],
		})
		session.Phase = nextPhaseAfterTypography(session.Flow)
		session.ComparisonCount = 0
		session.UpdatedAt = time.Now()
		if err := es.sessionRepo.Save(ctx, nil, session); err != nil {
			return nil, fmt.Errorf("failed to save session: %w", err)
		}
		newPhase := session.Phase
		return &ExplorationProgress{
			Success:          true,
			ExplorationDepth: state.Depth,
			LockedIn:         true,
			NewPhase:         &newPhase,
			Message:          fmt.Sprintf("Typography '%s' locked in! Moving to Component Studio.", optionName(selection)),
		}, nil
	}

	session.UpdatedAt = time.Now()
	if err := es.sessionRepo.Save(ctx, nil, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return es.refinementProgress(ctx, "typography", session.ProjectDescription, state, selection), nil
}

// refinementProgress generates the next narrowing round. The user's previous
// pick is prepended and flagged so the frontend can highlight it.
func (es *explorationService) refinementProgress(ctx context.Context, explorationType, projectDescription string, state explorationState, selection ExplorationSelection) *ExplorationProgress {
	generated, _ := es.generateRefinedOptions(ctx, explorationType, projectDescription, state.Depth, selection.SelectedOption)
	if generated == nil {
		return &ExplorationProgress{
			Success:          true,
			ExplorationDepth: state.Depth,
			NextOptions:      []map[string]any{},
			Message:          "Refinement options generated. Select a variation or lock in your choice.",
		}
	}

	original := make(map[string]any, len(selection.SelectedOption)+1)
	for k, v := range selection.SelectedOption {
		original[k] = v
	}
	original["is_original"] = true

	return &ExplorationProgress{
		Success:          true,
		ExplorationDepth: state.Depth,
		NextOptions:      append([]map[string]any{original}, generated...),
		Message:          fmt.Sprintf("Showing similar options to '%s'. Your original is included - choose a variation or lock in.", optionName(selection)),
	}
}

// generateOptions returns the current page of options, static when no AI
// client is configured or the call fails.
func (es *explorationService) generateOptions(ctx context.Context, explorationType, projectDescription string, depth int, previous map[string]any) ([]map[string]any, string) {
	if es.ai != nil {
		options, contextNote, err := es.generateAIOptions(ctx, explorationType, projectDescription, depth, previous, 5)
		if err == nil {
			return options, contextNote
		}
		es.log.Warn("falling back to static exploration options", "type", explorationType, "error", err)
	}
	if explorationType == "typography" {
		return fallbackTypographyOptions(), "Select a typography style that fits your project"
	}
	return fallbackPaletteOptions(), "Select a color palette that fits your project"
}

// generateRefinedOptions returns four AI variations around the previous
// selection, or nil when refinement has to fall back to the static catalog.
func (es *explorationService) generateRefinedOptions(ctx context.Context, explorationType, projectDescription string, depth int, previous map[string]any) ([]map[string]any, string) {
	if es.ai == nil {
		return nil, ""
	}
	options, contextNote, err := es.generateAIOptions(ctx, explorationType, projectDescription, depth, previous, 4)
	if err != nil {
		es.log.Warn("refinement generation failed", "type", explorationType, "error", err)
		return nil, ""
	}
	return options, contextNote
}

type generatedOptions struct {
	Options []map[string]any `json:"options"`
	Context string           `json:"context"`
}

func (es *explorationService) generateAIOptions(ctx context.Context, explorationType, projectDescription string, depth int, previous map[string]any, count int) ([]map[string]any, string, error) {
	var prompt string
	if explorationType == "typography" {
		prompt = typographyPrompt(projectDescription, depth, previous, count)
	} else {
		prompt = palettePrompt(projectDescription, depth, previous, count)
	}

	raw, err := es.ai.GenerateText(ctx, "", prompt)
	if err != nil {
		return nil, "", fmt.Errorf("generating %s options: %w", explorationType, err)
	}

	var result generatedOptions
	if err := json.Unmarshal([]byte(openai.StripFences(raw)), &result); err != nil {
		return nil, "", fmt.Errorf("decoding %s options: %w", explorationType, err)
	}
	if len(result.Options) == 0 {
		return nil, "", fmt.Errorf("model returned no %s options", explorationType)
	}
	return result.Options, result.Context, nil
}

func palettePrompt(projectDescription string, depth int, previous map[string]any, count int) string {
	if projectDescription == "" {
		projectDescription = "General web application"
	}

	direction := `INITIAL EXPLORATION:
Generate 5 distinctly different palettes spanning different color families and moods:
- Professional/corporate options
- Creative/playful options
- Warm/inviting options
- Cool/modern options
- Natural/organic options`
	if previous != nil && depth > 0 {
		direction = fmt.Sprintf(`REFINEMENT DIRECTION:
User previously selected a palette with these characteristics:
- Primary: %v
- Style: %v

Generate %d variations that stay within this color family but offer meaningful differences:
- Lighter/darker variations
- More/less saturated versions
- Subtle hue shifts (e.g., if they chose blue, try blue-green or blue-purple)
- Different accent color pairings

NOTE: Generate exactly %d options (not 5) - the user's original selection will be shown alongside these.`,
			previous["primary"], previous["category"], count, count)
	}

	return fmt.Sprintf(`Generate exactly %d complete color palettes for a web application.

PROJECT CONTEXT:
%s

%s

Return a JSON object with this exact structure:
{
    "options": [
        {
            "id": "palette-name",
            "name": "Descriptive Name",
            "category": "professional|creative|warm|cool|natural|playful|elegant|bold",
            "primary": "#XXXXXX",
            "secondary": "#XXXXXX",
            "accent": "#XXXXXX",
            "accentSoft": "#XXXXXX",
            "background": "#XXXXXX",
            "description": "Brief explanation of the palette's mood and fit"
        }
    ],
    "context": "Brief explanation of the exploration direction"
}

REQUIREMENTS:
1. Return exactly %d complete palettes
2. All hex codes must be valid 6-character hex colors
3. Each palette should feel cohesive and usable
4. Consider contrast and accessibility
5. Match palettes to the project's target audience and purpose
6. ONLY return valid JSON, no other text`, count, projectDescription, direction, count)
}

func typographyPrompt(projectDescription string, depth int, previous map[string]any, count int) string {
	if projectDescription == "" {
		projectDescription = "General web application"
	}

	direction := `INITIAL EXPLORATION:
Generate 5 distinctly different typography pairings spanning different styles:
- Modern/tech (geometric sans-serif)
- Classic/editorial (serif combinations)
- Friendly/approachable (rounded, casual)
- Bold/impactful (display fonts)
- Clean/minimal (neutral, highly readable)`
	if previous != nil && depth > 0 {
		direction = fmt.Sprintf(`REFINEMENT DIRECTION:
User previously selected typography with these characteristics:
- Heading: %v
- Body: %v
- Style: %v

Generate %d variations that stay within this style family but offer meaningful differences:
- Different weights/widths
- Similar geometric vs humanist feel
- Fonts from the same design era or movement
- Complementary alternatives that maintain the vibe

NOTE: Generate exactly %d options (not 5) - the user's original selection will be shown alongside these.`,
			previous["heading"], previous["body"], previous["category"], count, count)
	}

	return fmt.Sprintf(`Generate exactly %d typography pairings (heading + body fonts) for a web application.

PROJECT CONTEXT:
%s

%s

Return a JSON object with this exact structure:
{
    "options": [
        {
            "id": "style-name",
            "name": "Descriptive Name",
            "category": "modern|classic|friendly|bold|minimal|playful|elegant|tech",
            "heading": "Heading Font Name",
            "body": "Body Font Name",
            "headingCategory": "sans-serif|serif|display",
            "bodyCategory": "sans-serif|serif",
            "description": "Brief explanation of the pairing's character and fit"
        }
    ],
    "context": "Brief explanation of the exploration direction"
}

REQUIREMENTS:
1. Return exactly %d complete pairings
2. All fonts must be available on Google Fonts
3. Heading and body fonts should work well together
4. Consider readability for body text
5. Match typography to the project's tone and audience
6. ONLY return valid JSON, no other text`, count, projectDescription, direction, count)
}

func loadExplorationState(session *types.Session, explorationType string) explorationState {
	prefs := decodeJSONMap(session.EstablishedPreferences)
	raw, ok := prefs["_exploration_"+explorationType]
	if !ok {
		return explorationState{History: []string{}}
	}
	encoded, err := json.Marshal(raw)
	if err != nil {
		return explorationState{History: []string{}}
	}
	var state explorationState
	if err := json.Unmarshal(encoded, &state); err != nil {
		return explorationState{History: []string{}}
	}
	if state.History == nil {
		state.History = []string{}
	}
	return state
}

func saveExplorationState(session *types.Session, explorationType string, state explorationState) {
	prefs := decodeJSONMap(session.EstablishedPreferences)
	prefs["_exploration_"+explorationType] = state
	session.EstablishedPreferences = encodeJSON(prefs)
}

// advanceExplorationState records one selection round against the session.
func advanceExplorationState(session *types.Session, explorationType string, selection ExplorationSelection) explorationState {
	state := loadExplorationState(session, explorationType)
	state.Depth++
	state.History = append(state.History, optionName(selection))
	state.LastSelection = selection.SelectedOption
	saveExplorationState(session, explorationType, state)
	return state
}

func optionName(selection ExplorationSelection) string {
	if name, ok := selection.SelectedOption["name"].(string); ok && name != "" {
		return name
	}
	return selection.SelectedOptionID
}

func fallbackPaletteOptions() []map[string]any {
	return []map[string]any{
		{
			"id": "professional-blue", "name": "Professional Blue", "category": "professional",
			"primary": "#1e3a8a", "secondary": "#0891b2", "accent": "#f59e0b",
			"accentSoft": "#fbbf24", "background": "#f8fafc",
			"description": "Clean and trustworthy",
		},
		{
			"id": "creative-purple", "name": "Creative Purple", "category": "creative",
			"primary": "#7c3aed", "secondary": "#a855f7", "accent": "#f97316",
			"accentSoft": "#fb923c", "background": "#faf5ff",
			"description": "Vibrant and innovative",
		},
		{
			"id": "playful-teal", "name": "Playful Teal", "category": "playful",
			"primary": "#0d9488", "secondary": "#14b8a6", "accent": "#f97316",
			"accentSoft": "#fb923c", "background": "#f0fdfa",
			"description": "Fun and approachable",
		},
		{
			"id": "warm-coral", "name": "Warm Coral", "category": "warm",
			"primary": "#dc2626", "secondary": "#f97316", "accent": "#0891b2",
			"accentSoft": "#22d3ee", "background": "#fef2f2",
			"description": "Energetic and welcoming",
		},
		{
			"id": "natural-green", "name": "Natural Green", "category": "natural",
			"primary": "#059669", "secondary": "#10b981", "accent": "#f59e0b",
			"accentSoft": "#fcd34d", "background": "#f0fdf4",
			"description": "Organic and growth-oriented",
		},
	}
}

func fallbackTypographyOptions() []map[string]any {
	return []map[string]any{
		{
			"id": "modern-clean", "name": "Modern Clean", "category": "modern",
			"heading": "Inter", "body": "Inter",
			"headingCategory": "sans-serif", "bodyCategory": "sans-serif",
			"description": "Clean and versatile",
		},
		{
			"id": "elegant-editorial", "name": "Elegant Editorial", "category": "elegant",
			"heading": "Playfair Display", "body": "Lora",
			"headingCategory": "serif", "bodyCategory": "serif",
			"description": "Classic elegance",
		},
		{
			"id": "friendly-rounded", "name": "Friendly Rounded", "category": "friendly",
			"heading": "Nunito", "body": "Nunito",
			"headingCategory": "sans-serif", "bodyCategory": "sans-serif",
			"description": "Approachable and warm",
		},
		{
			"id": "bold-statement", "name": "Bold Statement", "category": "bold",
			"heading": "Oswald", "body": "Open Sans",
			"headingCategory": "sans-serif", "bodyCategory": "sans-serif",
			"description": "Strong impact",
		},
		{
			"id": "minimal-swiss", "name": "Minimal Swiss", "category": "minimal",
			"heading": "Montserrat", "body": "Roboto",
			"headingCategory": "sans-serif", "bodyCategory": "sans-serif",
			"description": "Swiss-inspired minimal",
		},
	}
}
