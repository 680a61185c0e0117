package styles

import "strings"

// DimensionOption is one selectable value for a studio dimension.
type DimensionOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// FineTune describes the slider range for dimensions that allow adjustment
// beyond the preset options.
type FineTune struct {
	Min  int    `json:"min"`
	Max  int    `json:"max"`
	Step int    `json:"step"`
	Unit string `json:"unit"`
}

// Dimension is one customizable axis of a studio component.
type Dimension struct {
	Key         string            `json:"key"`
	Label       string            `json:"label"`
	CSSProperty string            `json:"css_property"`
	Options     []DimensionOption `json:"options"`
	FineTune    *FineTune         `json:"fine_tune,omitempty"`
	Order       int               `json:"order"`
}

// CheckpointGroup is a full-page mockup review triggered after every four
// studio components.
type CheckpointGroup struct {
	ID          string   `json:"id"`
	Components  []string `json:"components"`
	MockupType  string   `json:"mockup_type"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
}

// StudioComponentTypes is the ordered component sequence for the studio flow.
var StudioComponentTypes = []string{
	"button", "input", "card", "typography",
	"navigation", "form", "modal", "feedback",
	"table", "badge", "tabs", "toggle",
}

var CheckpointGroups = []CheckpointGroup{
	{
		ID:          "checkpoint_1",
		Components:  []string{"button", "input", "card", "typography"},
		MockupType:  "landing",
		Label:       "Landing Page Review",
		Description: "Review how your button, input, card, and typography choices look together on a landing page.",
	},
	{
		ID:          "checkpoint_2",
		Components:  []string{"navigation", "form", "modal", "feedback"},
		MockupType:  "dashboard",
		Label:       "Dashboard Review",
		Description: "Review how your navigation, form, modal, and feedback choices look together on a dashboard.",
	},
	{
		ID:          "checkpoint_3",
		Components:  []string{"table", "badge", "tabs", "toggle"},
		MockupType:  "settings",
		Label:       "Settings Page Review",
		Description: "Review how your table, badge, tabs, and toggle choices look together on a settings page.",
	},
}

// CheckpointForComponent returns the checkpoint group containing the
// component, if any.
func CheckpointForComponent(componentType string) (CheckpointGroup, bool) {
	for _, g := range CheckpointGroups {
		for _, c := range g.Components {
			if c == componentType {
				return g, true
			}
		}
	}
	return CheckpointGroup{}, false
}

// IsCheckpointTrigger reports whether completing this component ends a
// checkpoint group.
func IsCheckpointTrigger(componentType string) bool {
	for _, g := range CheckpointGroups {
		if g.Components[len(g.Components)-1] == componentType {
			return true
		}
	}
	return false
}

func ft(min, max, step int, unit string) *FineTune {
	return &FineTune{Min: min, Max: max, Step: step, Unit: unit}
}

var componentDimensions = map[string][]Dimension{
	"button": {
		{
			Key: "border_radius", Label: "Corner Style", CSSProperty: "borderRadius",
			Options: []DimensionOption{
				{ID: "sharp", Label: "Sharp", Value: "0px"},
				{ID: "rounded", Label: "Rounded", Value: "8px"},
				{ID: "pill", Label: "Pill", Value: "9999px"},
			},
			FineTune: ft(0, 24, 1, "px"), Order: 1,
		},
		{
			Key: "shadow", Label: "Shadow", CSSProperty: "boxShadow",
			Options: []DimensionOption{
				{ID: "none", Label: "None", Value: "none"},
				{ID: "subtle", Label: "Subtle", Value: "0 1px 3px rgba(0,0,0,0.12)"},
				{ID: "medium", Label: "Medium", Value: "0 4px 6px rgba(0,0,0,0.1)"},
				{ID: "strong", Label: "Strong", Value: "0 10px 25px rgba(0,0,0,0.15)"},
			},
			Order: 2,
		},
		{
			Key: "padding", Label: "Padding", CSSProperty: "padding",
			Options: []DimensionOption{
				{ID: "compact", Label: "Compact", Value: "6px 12px"},
				{ID: "normal", Label: "Normal", Value: "10px 20px"},
				{ID: "spacious", Label: "Spacious", Value: "14px 28px"},
			},
			Order: 3,
		},
		{
			Key: "font_weight", Label: "Font Weight", CSSProperty: "fontWeight",
			Options: []DimensionOption{
				{ID: "normal", Label: "Normal", Value: "400"},
				{ID: "medium", Label: "Medium", Value: "500"},
				{ID: "semibold", Label: "Semi-Bold", Value: "600"},
				{ID: "bold", Label: "Bold", Value: "700"},
			},
			Order: 4,
		},
		{
			Key: "font_size", Label: "Font Size", CSSProperty: "fontSize",
			Options: []DimensionOption{
				{ID: "small", Label: "Small", Value: "13px"},
				{ID: "normal", Label: "Normal", Value: "15px"},
				{ID: "large", Label: "Large", Value: "17px"},
			},
			FineTune: ft(12, 20, 1, "px"), Order: 5,
		},
		{
			Key: "text_transform", Label: "Text Case", CSSProperty: "textTransform",
			Options: []DimensionOption{
				{ID: "none", Label: "Normal", Value: "none"},
				{ID: "uppercase", Label: "Uppercase", Value: "uppercase"},
			},
			Order: 6,
		},
		{
			Key: "border", Label: "Border", CSSProperty: "border",
			Options: []DimensionOption{
				{ID: "none", Label: "None", Value: "none"},
				{ID: "thin", Label: "Thin", Value: "1px solid"},
				{ID: "medium", Label: "Medium", Value: "2px solid"},
			},
			Order: 7,
		},
		{
			Key: "background_style", Label: "Background Style", CSSProperty: "backgroundStyle",
			Options: []DimensionOption{
				{ID: "solid", Label: "Solid", Value: "solid"},
				{ID: "outline", Label: "Outline", Value: "outline"},
				{ID: "ghost", Label: "Ghost", Value: "ghost"},
			},
			Order: 8,
		},
		{
			Key: "hover_effect", Label: "Hover Effect", CSSProperty: "hoverEffect",
			Options: []DimensionOption{
				{ID: "darken", Label: "Darken", Value: "darken"},
				{ID: "lighten", Label: "Lighten", Value: "lighten"},
				{ID: "lift", Label: "Lift (Shadow)", Value: "lift"},
				{ID: "scale", Label: "Scale Up", Value: "scale"},
			},
			Order: 9,
		},
	},
	"input": {
		{
			Key: "border_radius", Label: "Corner Style", CSSProperty: "borderRadius",
			Options: []DimensionOption{
				{ID: "sharp", Label: "Sharp", Value: "0px"},
				{ID: "rounded", Label: "Rounded", Value: "6px"},
				{ID: "pill", Label: "Pill", Value: "9999px"},
			},
			FineTune: ft(0, 20, 1, "px"), Order: 1,
		},
		{
			Key: "border_width", Label: "Border Width", CSSProperty: "borderWidth",
			Options: []DimensionOption{
				{ID: "thin", Label: "Thin", Value: "1px"},
				{ID: "medium", Label: "Medium", Value: "2px"},
				{ID: "thick", Label: "Thick", Value: "3px"},
			},
			Order: 2,
		},
		{
			Key: "padding", Label: "Padding", CSSProperty: "padding",
			Options: []DimensionOption{
				{ID: "compact", Label: "Compact", Value: "8px 10px"},
				{ID: "normal", Label: "Normal", Value: "10px 14px"},
				{ID: "spacious", Label: "Spacious", Value: "14px 18px"},
			},
			Order: 3,
		},
		{
			Key: "font_size", Label: "Font Size", CSSProperty: "fontSize",
			Options: []DimensionOption{
				{ID: "small", Label: "Small", Value: "13px"},
				{ID: "normal", Label: "Normal", Value: "15px"},
				{ID: "large", Label: "Large", Value: "17px"},
			},
			FineTune: ft(12, 20, 1, "px"), Order: 4,
		},
		{
			Key: "label_position", Label: "Label Position", CSSProperty: "labelPosition",
			Options: []DimensionOption{
				{ID: "above", Label: "Above", Value: "above"},
				{ID: "floating", Label: "Floating", Value: "floating"},
				{ID: "inline", Label: "Inline", Value: "inline"},
			},
			Order: 5,
		},
		{
			Key: "focus_ring", Label: "Focus Ring", CSSProperty: "focusRing",
			Options: []DimensionOption{
				{ID: "none", Label: "None", Value: "none"},
				{ID: "subtle", Label: "Subtle", Value: "0 0 0 2px"},
				{ID: "strong", Label: "Strong", Value: "0 0 0 3px"},
			},
			Order: 6,
		},
		{
			Key: "background", Label: "Background", CSSProperty: "inputBackground",
			Options: []DimensionOption{
				{ID: "white", Label: "White", Value: "#ffffff"},
				{ID: "light_gray", Label: "Light Gray", Value: "#f9fafb"},
				{ID: "transparent", Label: "Transparent", Value: "transparent"},
			},
			Order: 7,
		},
	},
	"card": {
		{
			Key: "border_radius", Label: "Corner Style", CSSProperty: "borderRadius",
			Options: []DimensionOption{
				{ID: "sharp", Label: "Sharp", Value: "0px"},
				{ID: "rounded", Label: "Rounded", Value: "8px"},
				{ID: "extra_rounded", Label: "Extra Rounded", Value: "16px"},
			},
			FineTune: ft(0, 24, 1, "px"), Order: 1,
		},
		{
			Key: "shadow", Label: "Shadow", CSSProperty: "boxShadow",
			Options: []DimensionOption{
				{ID: "none", Label: "None", Value: "none"},
				{ID: "subtle", Label: "Subtle", Value: "0 1px 3px rgba(0,0,0,0.08)"},
				{ID: "medium", Label: "Medium", Value: "0 4px 12px rgba(0,0,0,0.1)"},
				{ID: "strong", Label: "Strong", Value: "0 8px 30px rgba(0,0,0,0.12)"},
			},
			Order: 2,
		},
		{
			Key: "border", Label: "Border", CSSProperty: "border",
			Options: []DimensionOption{
				{ID: "none", Label: "None", Value: "none"},
				{ID: "subtle", Label: "Subtle", Value: "1px solid #e5e7eb"},
				{ID: "accent", Label: "Accent", Value: "1px solid"},
			},
			Order: 3,
		},
		{
			Key: "padding", Label: "Padding", CSSProperty: "padding",
			Options: []DimensionOption{
				{ID: "compact", Label: "Compact", Value: "16px"},
				{ID: "normal", Label: "Normal", Value: "24px"},
				{ID: "spacious", Label: "Spacious", Value: "32px"},
			},
			FineTune: ft(12, 40, 2, "px"), Order: 4,
		},
		{
			Key: "background", Label: "Background", CSSProperty: "backgroundColor",
			Options: []DimensionOption{
				{ID: "white", Label: "White", Value: "#ffffff"},
				{ID: "light", Label: "Light Tint", Value: "#f9fafb"},
				{ID: "transparent", Label: "Transparent", Value: "transparent"},
			},
			Order: 5,
		},
		{
			Key: "hover_effect", Label: "Hover Effect", CSSProperty: "hoverEffect",
			Options: []DimensionOption{
				{ID: "none", Label: "None", Value: "none"},
				{ID: "lift", Label: "Lift", Value: "lift"},
				{ID: "glow", Label: "Glow", Value: "glow"},
				{ID: "border_accent", Label: "Border Accent", Value: "border_accent"},
			},
			Order: 6,
		},
	},
	"typography": {
		{
			Key: "heading_weight", Label: "Heading Weight", CSSProperty: "headingFontWeight",
			Options: []DimensionOption{
				{ID: "medium", Label: "Medium", Value: "500"},
				{ID: "semibold", Label: "Semi-Bold", Value: "600"},
				{ID: "bold", Label: "Bold", Value: "700"},
				{ID: "extrabold", Label: "Extra Bold", Value: "800"},
			},
			Order: 1,
		},
		{
			Key: "heading_size_scale", Label: "Heading Size Scale", CSSProperty: "headingSizeScale",
			Options: []DimensionOption{
				{ID: "compact", Label: "Compact", Value: "1.125"},
				{ID: "normal", Label: "Normal", Value: "1.25"},
				{ID: "large", Label: "Large", Value: "1.5"},
			},
			Order: 2,
		},
		{
			Key: "body_line_height", Label: "Body Line Height", CSSProperty: "lineHeight",
			Options: []DimensionOption{
				{ID: "tight", Label: "Tight", Value: "1.4"},
				{ID: "normal", Label: "Normal", Value: "1.6"},
				{ID: "relaxed", Label: "Relaxed", Value: "1.8"},
			},
			Order: 3,
		},
		{
			Key: "letter_spacing", Label: "Letter Spacing", CSSProperty: "letterSpacing",
			Options: []DimensionOption{
				{ID: "tight", Label: "Tight", Value: "-0.025em"},
				{ID: "normal", Label: "Normal", Value: "0"},
				{ID: "wide", Label: "Wide", Value: "0.05em"},
			},
			Order: 4,
		},
		{
			Key: "paragraph_spacing", Label: "Paragraph Spacing", CSSProperty: "paragraphSpacing",
			Options: []DimensionOption{
				{ID: "compact", Label: "Compact", Value: "0.75em"},
				{ID: "normal", Label: "Normal", Value: "1em"},
				{ID: "spacious", Label: "Spacious", Value: "1.5em"},
			},
			Order: 5,
		},
	},
	"navigation": {
		{
			Key: "style", Label: "Layout Style", CSSProperty: "navStyle",
			Options: []DimensionOption{
				{ID: "horizontal", Label: "Horizontal", Value: "horizontal"},
				{ID: "vertical", Label: "Vertical", Value: "vertical"},
				{ID: "sidebar", Label: "Sidebar", Value: "sidebar"},
			},
			Order: 1,
		},
		{
			Key: "item_padding", Label: "Item Padding", CSSProperty: "navItemPadding",
			Options: []DimensionOption{
				{ID: "compact", Label: "Compact", Value: "6px 12px"},
				{ID: "normal", Label: "Normal", Value: "8px 16px"},
				{ID: "spacious", Label: "Spacious", Value: "12px 24px"},
			},
			Order: 2,
		},
		{
			Key: "active_indicator", Label: "Active Indicator", CSSProperty: "activeIndicator",
			Options: []DimensionOption{
				{ID: "underline", Label: "Underline", Value: "underline"},
				{ID: "background", Label: "Background", Value: "background"},
				{ID: "border_left", Label: "Left Border", Value: "border_left"},
				{ID: "bold", Label: "Bold Text", Value: "bold"},
			},
			Order: 3,
		},
		{
			Key: "font_weight", Label: "Font Weight", CSSProperty: "fontWeight",
			Options: []DimensionOption{
				{ID: "normal", Label: "Normal", Value: "400"},
				{ID: "medium", Label: "Medium", Value: "500"},
				{ID: "semibold", Label: "Semi-Bold", Value: "600"},
			},
			Order: 4,
		},
		{
			Key: "separator", Label: "Separator", CSSProperty: "navSeparator",
			Options: []DimensionOption{
				{ID: "none", Label: "None", Value: "none"},
				{ID: "line", Label: "Line", Value: "line"},
				{ID: "dot", Label: "Dot", Value: "dot"},
			},
			Order: 5,
		},
	},
	"form": {
		{
			Key: "field_spacing", Label: "Field Spacing", CSSProperty: "fieldSpacing",
			Options: []DimensionOption{
				{ID: "compact", Label: "Compact", Value: "12px"},
				{ID: "normal", Label: "Normal", Value: "20px"},
				{ID: "spacious", Label: "Spacious", Value: "28px"},
			},
			FineTune: ft(8, 36, 2, "px"), Order: 1,
		},
		{
			Key: "label_style", Label: "Label Style", CSSProperty: "labelStyle",
			Options: []DimensionOption{
				{ID: "default", Label: "Default", Value: "default"},
				{ID: "bold", Label: "Bold", Value: "bold"},
				{ID: "uppercase", Label: "Uppercase", Value: "uppercase"},
				{ID: "small_caps", Label: "Small Caps", Value: "small_caps"},
			},
			Order: 2,
		},
		{
			Key: "required_indicator", Label: "Required Indicator", CSSProperty: "requiredIndicator",
			Options: []DimensionOption{
				{ID: "asterisk", Label: "Asterisk *", Value: "asterisk"},
				{ID: "text", Label: "Text (required)", Value: "text"},
				{ID: "color", Label: "Color Highlight", Value: "color"},
			},
			Order: 3,
		},
		{
			Key: "error_style", Label: "Error Style", CSSProperty: "errorStyle",
			Options: []DimensionOption{
				{ID: "below", Label: "Text Below", Value: "below"},
				{ID: "inline", Label: "Inline", Value: "inline"},
				{ID: "border", Label: "Border Only", Value: "border"},
			},
			Order: 4,
		},
		{
			Key: "group_style", Label: "Group Style", CSSProperty: "groupStyle",
			Options: []DimensionOption{
				{ID: "none", Label: "None", Value: "none"},
				{ID: "card", Label: "Card", Value: "card"},
				{ID: "divider", Label: "Divider", Value: "divider"},
			},
			Order: 5,
		},
	},
	"modal": {
		{
			Key: "border_radius", Label: "Corner Style", CSSProperty: "borderRadius",
			Options: []DimensionOption{
				{ID: "sharp", Label: "Sharp", Value: "0px"},
				{ID: "rounded", Label: "Rounded", Value: "12px"},
				{ID: "extra_rounded", Label: "Extra Rounded", Value: "20px"},
			},
			FineTune: ft(0, 28, 2, "px"), Order: 1,
		},
		{
			Key: "shadow", Label: "Shadow", CSSProperty: "boxShadow",
			Options: []DimensionOption{
				{ID: "subtle", Label: "Subtle", Value: "0 4px 12px rgba(0,0,0,0.15)"},
				{ID: "medium", Label: "Medium", Value: "0 10px 40px rgba(0,0,0,0.2)"},
				{ID: "strong", Label: "Strong", Value: "0 20px 60px rgba(0,0,0,0.3)"},
			},
			Order: 2,
		},
		{
			Key: "overlay_opacity", Label: "Overlay Darkness", CSSProperty: "overlayOpacity",
			Options: []DimensionOption{
				{ID: "light", Label: "Light", Value: "0.3"},
				{ID: "medium", Label: "Medium", Value: "0.5"},
				{ID: "dark", Label: "Dark", Value: "0.7"},
			},
			Order: 3,
		},
		{
			Key: "width", Label: "Width", CSSProperty: "modalWidth",
			Options: []DimensionOption{
				{ID: "narrow", Label: "Narrow", Value: "400px"},
				{ID: "medium", Label: "Medium", Value: "560px"},
				{ID: "wide", Label: "Wide", Value: "720px"},
			},
			Order: 4,
		},
		{
			Key: "padding", Label: "Padding", CSSProperty: "padding",
			Options: []DimensionOption{
				{ID: "compact", Label: "Compact", Value: "20px"},
				{ID: "normal", Label: "Normal", Value: "32px"},
				{ID: "spacious", Label: "Spacious", Value: "40px"},
			},
			FineTune: ft(16, 48, 4, "px"), Order: 5,
		},
		{
			Key: "close_button_style", Label: "Close Button", CSSProperty: "closeButtonStyle",
			Options: []DimensionOption{
				{ID: "icon", Label: "X Icon", Value: "icon"},
				{ID: "text", Label: "Text", Value: "text"},
				{ID: "outside", Label: "Outside", Value: "outside"},
			},
			Order: 6,
		},
	},
	"feedback": {
		{
			Key: "style", Label: "Display Style", CSSProperty: "feedbackStyle",
			Options: []DimensionOption{
				{ID: "toast", Label: "Toast", Value: "toast"},
				{ID: "inline", Label: "Inline", Value: "inline"},
				{ID: "banner", Label: "Banner", Value: "banner"},
			},
			Order: 1,
		},
		{
			Key: "border_radius", Label: "Corner Style", CSSProperty: "borderRadius",
			Options: []DimensionOption{
				{ID: "sharp", Label: "Sharp", Value: "0px"},
				{ID: "rounded", Label: "Rounded", Value: "8px"},
				{ID: "pill", Label: "Pill", Value: "9999px"},
			},
			FineTune: ft(0, 20, 1, "px"), Order: 2,
		},
		{
			Key: "icon_style", Label: "Icon Style", CSSProperty: "iconStyle",
			Options: []DimensionOption{
				{ID: "none", Label: "None", Value: "none"},
				{ID: "outline", Label: "Outline", Value: "outline"},
				{ID: "filled", Label: "Filled", Value: "filled"},
			},
			Order: 3,
		},
		{
			Key: "position", Label: "Position", CSSProperty: "feedbackPosition",
			Options: []DimensionOption{
				{ID: "top_right", Label: "Top Right", Value: "top_right"},
				{ID: "top_center", Label: "Top Center", Value: "top_center"},
				{ID: "bottom_right", Label: "Bottom Right", Value: "bottom_right"},
				{ID: "bottom_center", Label: "Bottom Center", Value: "bottom_center"},
			},
			Order: 4,
		},
		{
			Key: "animation", Label: "Animation", CSSProperty: "feedbackAnimation",
			Options: []DimensionOption{
				{ID: "none", Label: "None", Value: "none"},
				{ID: "slide", Label: "Slide In", Value: "slide"},
				{ID: "fade", Label: "Fade", Value: "fade"},
			},
			Order: 5,
		},
	},
	"table": {
		{
			Key: "border_style", Label: "Border Style", CSSProperty: "tableBorderStyle",
			Options: []DimensionOption{
				{ID: "none", Label: "None", Value: "none"},
				{ID: "horizontal", Label: "Horizontal Lines", Value: "horizontal"},
				{ID: "full", Label: "Full Grid", Value: "full"},
			},
			Order: 1,
		},
		{
			Key: "row_striping", Label: "Row Striping", CSSProperty: "rowStriping",
			Options: []DimensionOption{
				{ID: "none", Label: "None", Value: "none"},
				{ID: "even", Label: "Even Rows", Value: "even"},
				{ID: "odd", Label: "Odd Rows", Value: "odd"},
			},
			Order: 2,
		},
		{
			Key: "header_style", Label: "Header Style", CSSProperty: "tableHeaderStyle",
			Options: []DimensionOption{
				{ID: "plain", Label: "Plain", Value: "plain"},
				{ID: "bold", Label: "Bold", Value: "bold"},
				{ID: "shaded", Label: "Shaded", Value: "shaded"},
			},
			Order: 3,
		},
		{
			Key: "cell_padding", Label: "Cell Padding", CSSProperty: "cellPadding",
			Options: []DimensionOption{
				{ID: "compact", Label: "Compact", Value: "8px 12px"},
				{ID: "normal", Label: "Normal", Value: "12px 16px"},
				{ID: "spacious", Label: "Spacious", Value: "16px 24px"},
			},
			Order: 4,
		},
		{
			Key: "hover_row", Label: "Row Hover", CSSProperty: "hoverRow",
			Options: []DimensionOption{
				{ID: "none", Label: "None", Value: "none"},
				{ID: "highlight", Label: "Highlight", Value: "highlight"},
				{ID: "accent", Label: "Accent", Value: "accent"},
			},
			Order: 5,
		},
	},
	"badge": {
		{
			Key: "border_radius", Label: "Corner Style", CSSProperty: "borderRadius",
			Options: []DimensionOption{
				{ID: "sharp", Label: "Sharp", Value: "0px"},
				{ID: "rounded", Label: "Rounded", Value: "6px"},
				{ID: "pill", Label: "Pill", Value: "9999px"},
			},
			FineTune: ft(0, 20, 1, "px"), Order: 1,
		},
		{
			Key: "padding", Label: "Padding", CSSProperty: "padding",
			Options: []DimensionOption{
				{ID: "compact", Label: "Compact", Value: "2px 6px"},
				{ID: "normal", Label: "Normal", Value: "4px 10px"},
				{ID: "spacious", Label: "Spacious", Value: "6px 14px"},
			},
			Order: 2,
		},
		{
			Key: "font_size", Label: "Font Size", CSSProperty: "fontSize",
			Options: []DimensionOption{
				{ID: "small", Label: "Small", Value: "11px"},
				{ID: "normal", Label: "Normal", Value: "13px"},
				{ID: "large", Label: "Large", Value: "15px"},
			},
			Order: 3,
		},
		{
			Key: "font_weight", Label: "Font Weight", CSSProperty: "fontWeight",
			Options: []DimensionOption{
				{ID: "normal", Label: "Normal", Value: "400"},
				{ID: "medium", Label: "Medium", Value: "500"},
				{ID: "semibold", Label: "Semi-Bold", Value: "600"},
			},
			Order: 4,
		},
		{
			Key: "style", Label: "Visual Style", CSSProperty: "badgeStyle",
			Options: []DimensionOption{
				{ID: "solid", Label: "Solid", Value: "solid"},
				{ID: "outline", Label: "Outline", Value: "outline"},
				{ID: "subtle", Label: "Subtle", Value: "subtle"},
			},
			Order: 5,
		},
	},
	"tabs": {
		{
			Key: "style", Label: "Tab Style", CSSProperty: "tabStyle",
			Options: []DimensionOption{
				{ID: "underline", Label: "Underline", Value: "underline"},
				{ID: "boxed", Label: "Boxed", Value: "boxed"},
				{ID: "pill", Label: "Pill", Value: "pill"},
			},
			Order: 1,
		},
		{
			Key: "spacing", Label: "Tab Spacing", CSSProperty: "tabSpacing",
			Options: []DimensionOption{
				{ID: "compact", Label: "Compact", Value: "4px"},
				{ID: "normal", Label: "Normal", Value: "8px"},
				{ID: "spacious", Label: "Spacious", Value: "16px"},
			},
			Order: 2,
		},
		{
			Key: "font_weight", Label: "Font Weight", CSSProperty: "fontWeight",
			Options: []DimensionOption{
				{ID: "normal", Label: "Normal", Value: "400"},
				{ID: "medium", Label: "Medium", Value: "500"},
				{ID: "semibold", Label: "Semi-Bold", Value: "600"},
			},
			Order: 3,
		},
		{
			Key: "indicator_style", Label: "Active Indicator", CSSProperty: "tabIndicatorStyle",
			Options: []DimensionOption{
				{ID: "thin", Label: "Thin Line", Value: "thin"},
				{ID: "thick", Label: "Thick Line", Value: "thick"},
				{ID: "full", Label: "Full Background", Value: "full"},
			},
			Order: 4,
		},
	},
	"toggle": {
		{
			Key: "size", Label: "Size", CSSProperty: "toggleSize",
			Options: []DimensionOption{
				{ID: "small", Label: "Small", Value: "small"},
				{ID: "medium", Label: "Medium", Value: "medium"},
				{ID: "large", Label: "Large", Value: "large"},
			},
			Order: 1,
		},
		{
			Key: "border_radius", Label: "Corner Style", CSSProperty: "borderRadius",
			Options: []DimensionOption{
				{ID: "sharp", Label: "Square", Value: "4px"},
				{ID: "rounded", Label: "Rounded", Value: "9999px"},
			},
			Order: 2,
		},
		{
			Key: "label_position", Label: "Label Position", CSSProperty: "toggleLabelPosition",
			Options: []DimensionOption{
				{ID: "left", Label: "Left", Value: "left"},
				{ID: "right", Label: "Right", Value: "right"},
			},
			Order: 3,
		},
		{
			Key: "animation_style", Label: "Animation", CSSProperty: "toggleAnimation",
			Options: []DimensionOption{
				{ID: "none", Label: "None", Value: "none"},
				{ID: "slide", Label: "Slide", Value: "slide"},
				{ID: "bounce", Label: "Bounce", Value: "bounce"},
			},
			Order: 4,
		},
	},
}

// DimensionsForComponent returns the dimension definitions for a studio
// component in display order.
func DimensionsForComponent(componentType string) []Dimension {
	dims := componentDimensions[componentType]
	out := make([]Dimension, len(dims))
	copy(out, dims)
	return out
}

// DimensionByKey looks up a single dimension definition.
func DimensionByKey(componentType, key string) (Dimension, bool) {
	for _, d := range componentDimensions[componentType] {
		if d.Key == key {
			return d, true
		}
	}
	return Dimension{}, false
}

var componentLabels = map[string]string{
	"button":     "Button",
	"input":      "Input",
	"card":       "Card",
	"typography": "Typography",
	"navigation": "Navigation",
	"form":       "Form Layout",
	"modal":      "Modal / Dialog",
	"feedback":   "Feedback / Notifications",
	"table":      "Table",
	"badge":      "Badge",
	"tabs":       "Tabs",
	"toggle":     "Toggle / Switch",
}

// ComponentLabel returns a human-readable name for a studio component type.
func ComponentLabel(componentType string) string {
	if l, ok := componentLabels[componentType]; ok {
		return l
	}
	if componentType == "" {
		return ""
	}
	return strings.ToUpper(componentType[:1]) + componentType[1:]
}
