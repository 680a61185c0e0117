package styles

// PropertyRange is one styleable property and its candidate values, in
// presentation order. Order matters: pair generation picks from the ends of
// the range, and analysis reports properties in definition order.
type PropertyRange struct {
	Name   string
	Values []any
}

var buttonProperties = []PropertyRange{
	{Name: "border_radius", Values: []any{0, 4, 8, 12, 16, 9999}}, // 9999 = pill
	{Name: "padding_x", Values: []any{12, 16, 20, 24, 32}},
	{Name: "padding_y", Values: []any{8, 10, 12, 14, 16}},
	{Name: "font_weight", Values: []any{400, 500, 600, 700}},
	{Name: "font_size", Values: []any{12, 14, 16, 18}},
	{Name: "text_transform", Values: []any{"none", "uppercase"}},
	{Name: "shadow", Values: []any{"none", "sm", "md", "lg"}},
	{Name: "background_style", Values: []any{"solid", "gradient", "outline"}},
	{Name: "transition", Values: []any{"none", "fast", "smooth"}},
}

var inputProperties = []PropertyRange{
	{Name: "border_radius", Values: []any{0, 4, 8, 12}},
	{Name: "border_width", Values: []any{1, 2}},
	{Name: "border_color", Values: []any{"gray-300", "gray-400", "gray-500"}},
	{Name: "padding_x", Values: []any{12, 16, 20}},
	{Name: "padding_y", Values: []any{10, 12, 14}},
	{Name: "font_size", Values: []any{14, 16}},
	{Name: "label_position", Values: []any{"above", "floating", "inline"}},
	{Name: "focus_ring", Values: []any{"none", "thin", "thick"}},
	{Name: "background", Values: []any{"white", "gray-50", "transparent"}},
}

var cardProperties = []PropertyRange{
	{Name: "border_radius", Values: []any{0, 4, 8, 12, 16}},
	{Name: "shadow", Values: []any{"none", "sm", "md", "lg", "xl"}},
	{Name: "border", Values: []any{"none", "subtle", "prominent"}},
	{Name: "padding", Values: []any{16, 20, 24, 32}},
	{Name: "background", Values: []any{"white", "gray-50", "gray-100"}},
	{Name: "hover_effect", Values: []any{"none", "lift", "glow", "border"}},
}

var typographyProperties = []PropertyRange{
	{Name: "heading_weight", Values: []any{500, 600, 700, 800}},
	{Name: "heading_size_scale", Values: []any{1.125, 1.25, 1.333, 1.5}},
	{Name: "body_line_height", Values: []any{1.4, 1.5, 1.6, 1.75}},
	{Name: "letter_spacing", Values: []any{-0.02, 0.0, 0.02, 0.05}},
	{Name: "font_family", Values: []any{"system", "sans-serif", "serif", "mono"}},
	{Name: "paragraph_spacing", Values: []any{1.0, 1.5, 2.0}},
}

var navigationProperties = []PropertyRange{
	{Name: "style", Values: []any{"horizontal", "vertical", "sidebar"}},
	{Name: "item_padding_x", Values: []any{12, 16, 20, 24}},
	{Name: "item_padding_y", Values: []any{8, 10, 12}},
	{Name: "active_indicator", Values: []any{"underline", "background", "border-left", "bold"}},
	{Name: "hover_effect", Values: []any{"underline", "background", "color"}},
	{Name: "separator", Values: []any{"none", "border", "space"}},
}

var formProperties = []PropertyRange{
	{Name: "layout", Values: []any{"stacked", "inline", "grid"}},
	{Name: "label_style", Values: []any{"above", "inline", "floating"}},
	{Name: "spacing", Values: []any{16, 20, 24, 32}},
	{Name: "error_style", Values: []any{"inline", "tooltip", "border"}},
	{Name: "required_indicator", Values: []any{"asterisk", "text", "none"}},
	{Name: "help_text_position", Values: []any{"below", "tooltip"}},
}

var feedbackProperties = []PropertyRange{
	{Name: "type", Values: []any{"toast", "inline", "modal", "banner"}},
	{Name: "position", Values: []any{"top-right", "top-center", "bottom-right", "bottom-center"}},
	{Name: "style", Values: []any{"minimal", "bordered", "filled"}},
	{Name: "icon", Values: []any{"none", "left", "top"}},
	{Name: "duration", Values: []any{3000, 5000, 8000, "persistent"}},
	{Name: "animation", Values: []any{"none", "slide", "fade", "bounce"}},
}

var modalProperties = []PropertyRange{
	{Name: "size", Values: []any{"sm", "md", "lg", "xl", "full"}},
	{Name: "border_radius", Values: []any{0, 8, 12, 16}},
	{Name: "overlay", Values: []any{"light", "medium", "dark"}},
	{Name: "animation", Values: []any{"none", "fade", "scale", "slide"}},
	{Name: "close_button", Values: []any{"icon", "text", "both"}},
	{Name: "padding", Values: []any{16, 24, 32}},
	{Name: "header_style", Values: []any{"simple", "border", "background"}},
}

// ComponentTypes lists the comparable component families in cycling order.
var ComponentTypes = []string{
	"button", "input", "card", "typography", "navigation", "form", "feedback", "modal",
}

var componentProperties = map[string][]PropertyRange{
	"button":     buttonProperties,
	"input":      inputProperties,
	"card":       cardProperties,
	"typography": typographyProperties,
	"navigation": navigationProperties,
	"form":       formProperties,
	"feedback":   feedbackProperties,
	"modal":      modalProperties,
}

var componentContexts = map[string]string{
	"button":     "landing_hero",
	"input":      "form_wizard",
	"card":       "dashboard",
	"typography": "landing_hero",
	"navigation": "dashboard",
	"form":       "form_wizard",
	"feedback":   "settings",
	"modal":      "settings",
}

// ComponentProperties returns the property ranges for a component type,
// defaulting to the button set for unknown types.
func ComponentProperties(componentType string) []PropertyRange {
	if props, ok := componentProperties[componentType]; ok {
		return props
	}
	return buttonProperties
}

func PropertyNames(componentType string) []string {
	props := ComponentProperties(componentType)
	names := make([]string, len(props))
	for i, p := range props {
		names[i] = p.Name
	}
	return names
}

func PropertyValues(componentType, propertyName string) []any {
	for _, p := range ComponentProperties(componentType) {
		if p.Name == propertyName {
			return p.Values
		}
	}
	return nil
}

// NextComponentType cycles through the component families.
func NextComponentType(comparisonCount int) string {
	return ComponentTypes[comparisonCount%len(ComponentTypes)]
}

// ContextForComponent maps a component type to its page context template.
func ContextForComponent(componentType string) string {
	if ctx, ok := componentContexts[componentType]; ok {
		return ctx
	}
	return "dashboard"
}
