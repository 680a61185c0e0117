// Package vision extracts measurable values from UI screenshots through a
// chat-vision model. The model only extracts; every judgement happens in the
// deterministic audit engine afterwards.
package vision

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ryan-the-brodsky/tastemaker/internal/audit"
	"github.com/ryan-the-brodsky/tastemaker/internal/clients/openai"
	"github.com/ryan-the-brodsky/tastemaker/internal/logger"
)

const extractionPrompt = `Analyze this UI screenshot and EXTRACT the following values.
DO NOT judge whether they are good or bad - just extract the raw values.

Extract:
1. colors - List of colors found with their elements
2. fonts - List of fonts found with their usage
3. measurements - Object with approximate measurements
4. contrast_pairs - Text/background color pairs for WCAG contrast checking

Respond with ONLY valid JSON in this exact format:
{
  "colors": [
    {"element": "primary button background", "color": "#hex"},
    {"element": "text", "color": "#hex"}
  ],
  "fonts": [
    {"element": "heading", "font": "FontName"},
    {"element": "body text", "font": "FontName"}
  ],
  "measurements": {
    "button_border_radius": "Npx",
    "spacing": "Npx"
  },
  "contrast_pairs": [
    {"element": "button text", "foreground": "#ffffff", "background": "#1a365d", "is_large_text": false},
    {"element": "heading", "foreground": "#1a365d", "background": "#ffffff", "is_large_text": true}
  ]
}

Be specific about hex colors. For contrast_pairs, include text/background pairs you can identify.
Large text is 18px+ regular or 14px+ bold. Return ONLY the JSON, no explanation.`

// ErrDecode means the model answered but the answer was not the expected
// JSON. Callers degrade to a partial audit instead of failing.
var ErrDecode = errors.New("extracted values are not valid JSON")

// Extractor pulls raw style observations out of a screenshot. It also
// serves recording frames through the FrameExtractor side.
type Extractor interface {
	ExtractScreenshot(ctx context.Context, imageBase64 string, mediaType string) (audit.Extracted, error)
	FrameExtractor
}

type extractor struct {
	log    *logger.Logger
	client openai.Client
}

func NewExtractor(log *logger.Logger, client openai.Client) Extractor {
	return &extractor{log: log.With("client", "VisionExtractor"), client: client}
}

func (e *extractor) ExtractScreenshot(ctx context.Context, imageBase64 string, mediaType string) (audit.Extracted, error) {
	if mediaType == "" {
		mediaType = "image/png"
	}
	imageURL := fmt.Sprintf("data:%s;base64,%s", mediaType, imageBase64)

	raw, err := e.client.GenerateTextWithImage(ctx, extractionPrompt, imageURL)
	if err != nil {
		return audit.Extracted{}, fmt.Errorf("vision extraction: %w", err)
	}

	var extracted audit.Extracted
	if err := json.Unmarshal([]byte(openai.StripFences(raw)), &extracted); err != nil {
		return audit.Extracted{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return extracted, nil
}
