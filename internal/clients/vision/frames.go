package vision

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ryan-the-brodsky/tastemaker/internal/audit"
	"github.com/ryan-the-brodsky/tastemaker/internal/clients/openai"
)

const frameExtractionPrompt = `Analyze this UI screenshot and extract the following measurements for UX rule validation.
Return a JSON object with these exact keys. Use null for values you cannot determine.

{
  "spatial": {
    "touch_targets": [
      {
        "element": "element text or aria-label",
        "width_px": number,
        "height_px": number,
        "is_primary_cta": boolean
      }
    ],
    "button_spacing_min_px": number
  },
  "counts": {
    "primary_nav_items": number,
    "dropdown_options_visible": number,
    "visible_form_fields": number,
    "primary_action_buttons": number,
    "tab_count": number
  },
  "states": {
    "has_loading_indicator": boolean,
    "has_empty_state": boolean,
    "has_error_messages": boolean,
    "has_success_feedback": boolean
  },
  "dark_patterns": {
    "has_shame_language": boolean,
    "shame_indicators": ["any phrases that shame the user"],
    "has_preselected_checkboxes": boolean,
    "preselected_checkbox_labels": ["labels of pre-checked optional items"],
    "has_fake_urgency": boolean,
    "urgency_text": "countdown or scarcity text if present"
  }
}

Return ONLY valid JSON, no explanations or markdown formatting.
Measure pixel values as accurately as possible from the screenshot.
For counts, count only visible items without scrolling.`

// FrameExtractor pulls interaction observations out of a recording frame.
type FrameExtractor interface {
	ExtractFrame(ctx context.Context, imageBase64 string, mediaType string) (audit.FrameObservation, error)
}

func (e *extractor) ExtractFrame(ctx context.Context, imageBase64 string, mediaType string) (audit.FrameObservation, error) {
	if mediaType == "" {
		mediaType = "image/png"
	}
	imageURL := fmt.Sprintf("data:%s;base64,%s", mediaType, imageBase64)

	raw, err := e.client.GenerateTextWithImage(ctx, frameExtractionPrompt, imageURL)
	if err != nil {
		return audit.FrameObservation{}, fmt.Errorf("frame extraction: %w", err)
	}

	var frame audit.FrameObservation
	if err := json.Unmarshal([]byte(openai.StripFences(raw)), &frame); err != nil {
		return audit.FrameObservation{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return frame, nil
}
