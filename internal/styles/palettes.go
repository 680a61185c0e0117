package styles

import "math/rand"

// Palette is a five-role brand color set used during color exploration.
type Palette struct {
	Name       string `json:"name"`
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	AccentSoft string `json:"accentSoft"`
	Background string `json:"background"`
	Category   string `json:"category"`
}

// FontPairing is a heading/body font combination used during typography
// exploration.
type FontPairing struct {
	Name        string `json:"name"`
	Heading     string `json:"heading"`
	Body        string `json:"body"`
	Style       string `json:"style"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

var colorPalettes = []Palette{
	{Name: "default", Primary: "#1a365d", Secondary: "#115e59", Accent: "#d97706", AccentSoft: "#f87171", Background: "#faf5f0", Category: "professional"},
	{Name: "midnight", Primary: "#081f3f", Secondary: "#115e59", Accent: "#d97706", AccentSoft: "#f87171", Background: "#faf5f0", Category: "professional"},
	{Name: "dusk", Primary: "#081f3f", Secondary: "#15465b", Accent: "#d97706", AccentSoft: "#eba714", Background: "#faf5f0", Category: "professional"},
	{Name: "ocean", Primary: "#0c4a6e", Secondary: "#0e7490", Accent: "#f59e0b", AccentSoft: "#fb923c", Background: "#f0f9ff", Category: "cool"},
	{Name: "steel", Primary: "#1e3a5f", Secondary: "#0f766e", Accent: "#f59e0b", AccentSoft: "#fbbf24", Background: "#f0f9ff", Category: "professional"},
	{Name: "sapphire", Primary: "#1e3a8a", Secondary: "#1e40af", Accent: "#fbbf24", AccentSoft: "#fcd34d", Background: "#eff6ff", Category: "cool"},
	{Name: "teal", Primary: "#134e4a", Secondary: "#115e59", Accent: "#f97316", AccentSoft: "#fb923c", Background: "#f0fdfa", Category: "vibrant"},
	{Name: "rose", Primary: "#881337", Secondary: "#9f1239", Accent: "#fbbf24", AccentSoft: "#fcd34d", Background: "#fff1f2", Category: "warm"},
	{Name: "crimson", Primary: "#7f1d1d", Secondary: "#991b1b", Accent: "#eab308", AccentSoft: "#fbbf24", Background: "#fef2f2", Category: "warm"},
	{Name: "indigo", Primary: "#3730a3", Secondary: "#4338ca", Accent: "#f59e0b", AccentSoft: "#fbbf24", Background: "#eef2ff", Category: "creative"},
	{Name: "forest", Primary: "#14532d", Secondary: "#166534", Accent: "#ea580c", AccentSoft: "#fb7185", Background: "#f7fee7", Category: "natural"},
	{Name: "sage", Primary: "#15803d", Secondary: "#047857", Accent: "#f59e0b", AccentSoft: "#fbbf24", Background: "#f0fdf4", Category: "natural"},
	{Name: "moss", Primary: "#365314", Secondary: "#3f6212", Accent: "#f59e0b", AccentSoft: "#fbbf24", Background: "#f7fee7", Category: "natural"},
	{Name: "pine", Primary: "#064e3b", Secondary: "#065f46", Accent: "#d97706", AccentSoft: "#f97316", Background: "#ecfdf5", Category: "natural"},
	{Name: "mint", Primary: "#047857", Secondary: "#059669", Accent: "#06b6d4", AccentSoft: "#22d3ee", Background: "#ecfdf5", Category: "cool"},
	{Name: "slate", Primary: "#1e293b", Secondary: "#334155", Accent: "#0ea5e9", AccentSoft: "#38bdf8", Background: "#f8fafc", Category: "neutral"},
	{Name: "nautical", Primary: "#0f172a", Secondary: "#1e3a8a", Accent: "#f97316", AccentSoft: "#fb923c", Background: "#f0f9ff", Category: "professional"},
	{Name: "cobalt", Primary: "#1e40af", Secondary: "#2563eb", Accent: "#f59e0b", AccentSoft: "#fbbf24", Background: "#eff6ff", Category: "vibrant"},
	{Name: "azure", Primary: "#0369a1", Secondary: "#0284c7", Accent: "#fb7185", AccentSoft: "#fda4af", Background: "#f0f9ff", Category: "cool"},
	{Name: "charcoal", Primary: "#1f2937", Secondary: "#374151", Accent: "#14b8a6", AccentSoft: "#2dd4bf", Background: "#f9fafb", Category: "neutral"},
	{Name: "graphite", Primary: "#18181b", Secondary: "#27272a", Accent: "#f59e0b", AccentSoft: "#fbbf24", Background: "#fafafa", Category: "neutral"},
	{Name: "marine", Primary: "#0c4a6e", Secondary: "#075985", Accent: "#f87171", AccentSoft: "#fca5a5", Background: "#f0f9ff", Category: "vibrant"},
	{Name: "violet", Primary: "#5b21b6", Secondary: "#6b21a8", Accent: "#fbbf24", AccentSoft: "#fcd34d", Background: "#faf5ff", Category: "creative"},
	{Name: "plum", Primary: "#701a75", Secondary: "#86198f", Accent: "#f59e0b", AccentSoft: "#fbbf24", Background: "#fdf4ff", Category: "creative"},
	{Name: "midnight_blue", Primary: "#172554", Secondary: "#1e3a8a", Accent: "#06b6d4", AccentSoft: "#22d3ee", Background: "#eff6ff", Category: "cool"},
	{Name: "burgundy", Primary: "#4c1d29", Secondary: "#7f1d3d", Accent: "#fbbf24", AccentSoft: "#fcd34d", Background: "#fef7f0", Category: "warm"},
	{Name: "terracotta", Primary: "#92400e", Secondary: "#b45309", Accent: "#0d9488", AccentSoft: "#14b8a6", Background: "#fef3e2", Category: "warm"},
}

var fontPairings = []FontPairing{
	{Name: "modern-clean", Heading: "Inter", Body: "Inter", Style: "modern-clean", Category: "professional", Description: "Clean, modern sans-serif for tech and startups"},
	{Name: "geometric-modern", Heading: "Poppins", Body: "Open Sans", Style: "geometric-modern", Category: "professional", Description: "Geometric headings with friendly body text"},
	{Name: "swiss-minimal", Heading: "Montserrat", Body: "Roboto", Style: "swiss-minimal", Category: "professional", Description: "Swiss-inspired minimal typography"},
	{Name: "tech-forward", Heading: "Space Grotesk", Body: "Inter", Style: "tech-forward", Category: "professional", Description: "Modern tech aesthetic with geometric details"},
	{Name: "classic-editorial", Heading: "Playfair Display", Body: "Lora", Style: "classic-editorial", Category: "classic", Description: "Elegant editorial style for magazines and luxury"},
	{Name: "traditional-serif", Heading: "Merriweather", Body: "Merriweather", Style: "traditional-serif", Category: "classic", Description: "Traditional, readable serif for long-form content"},
	{Name: "literary-elegant", Heading: "Cormorant Garamond", Body: "Crimson Text", Style: "literary-elegant", Category: "classic", Description: "Literary elegance for publishing and arts"},
	{Name: "elegant-contrast", Heading: "Playfair Display", Body: "Source Sans Pro", Style: "elegant-contrast", Category: "professional", Description: "Elegant contrast between display and body"},
	{Name: "editorial-modern", Heading: "DM Serif Display", Body: "DM Sans", Style: "editorial-modern", Category: "professional", Description: "Modern editorial with cohesive type family"},
	{Name: "luxury-minimal", Heading: "Cormorant", Body: "Raleway", Style: "luxury-minimal", Category: "classic", Description: "Luxury feel with modern minimalism"},
	{Name: "friendly-rounded", Heading: "Nunito", Body: "Nunito", Style: "friendly-rounded", Category: "playful", Description: "Friendly, approachable rounded sans-serif"},
	{Name: "casual-modern", Heading: "Quicksand", Body: "Open Sans", Style: "casual-modern", Category: "playful", Description: "Casual headings with professional body"},
	{Name: "warm-friendly", Heading: "Baloo 2", Body: "Rubik", Style: "warm-friendly", Category: "playful", Description: "Warm, inviting typography for consumer apps"},
	{Name: "bold-statement", Heading: "Oswald", Body: "Source Sans Pro", Style: "bold-statement", Category: "bold", Description: "Strong, impactful headings for marketing"},
	{Name: "condensed-power", Heading: "Bebas Neue", Body: "Lato", Style: "condensed-power", Category: "bold", Description: "Powerful condensed headlines"},
	{Name: "industrial-strong", Heading: "Anton", Body: "Work Sans", Style: "industrial-strong", Category: "bold", Description: "Industrial strength for bold statements"},
	{Name: "humanist-natural", Heading: "Libre Baskerville", Body: "Source Sans Pro", Style: "humanist-natural", Category: "classic", Description: "Humanist warmth with readability"},
	{Name: "organic-flow", Heading: "Josefin Sans", Body: "Karla", Style: "organic-flow", Category: "playful", Description: "Organic, flowing typography"},
}

var paletteByName = func() map[string]Palette {
	m := make(map[string]Palette, len(colorPalettes))
	for _, p := range colorPalettes {
		m[p.Name] = p
	}
	return m
}()

var fontPairingByName = func() map[string]FontPairing {
	m := make(map[string]FontPairing, len(fontPairings))
	for _, f := range fontPairings {
		m[f.Name] = f
	}
	return m
}()

func AllPalettes() []Palette {
	out := make([]Palette, len(colorPalettes))
	copy(out, colorPalettes)
	return out
}

func AllFontPairings() []FontPairing {
	out := make([]FontPairing, len(fontPairings))
	copy(out, fontPairings)
	return out
}

func PaletteByName(name string) (Palette, bool) {
	p, ok := paletteByName[name]
	return p, ok
}

func FontPairingByName(name string) (FontPairing, bool) {
	f, ok := fontPairingByName[name]
	return f, ok
}

// Fixed opening pairs probe broad taste axes before narrowing.
var palettePairSchedule = [][2]string{
	{"default", "violet"}, // professional vs creative
	{"rose", "ocean"},     // warm vs cool
	{"forest", "slate"},   // natural vs neutral
	{"teal", "dusk"},      // vibrant vs subtle
	{"cobalt", "mint"},    // bold accent vs soft accent
}

var fontPairSchedule = [][2]string{
	{"modern-clean", "classic-editorial"}, // sans vs serif
	{"swiss-minimal", "friendly-rounded"}, // professional vs playful
	{"bold-statement", "elegant-contrast"},
	{"editorial-modern", "geometric-modern"}, // mixed vs uniform
	{"tech-forward", "traditional-serif"},
}

// PaletteComparisonPair returns two palettes for the given comparison index.
// The first five pairs follow a fixed schedule; later pairs are drawn from the
// full catalog with the index as seed so repeated requests stay stable.
func PaletteComparisonPair(comparisonCount int) (Palette, Palette) {
	if comparisonCount >= 0 && comparisonCount < len(palettePairSchedule) {
		pair := palettePairSchedule[comparisonCount]
		return paletteByName[pair[0]], paletteByName[pair[1]]
	}
	rng := rand.New(rand.NewSource(int64(comparisonCount)))
	i := rng.Intn(len(colorPalettes))
	j := rng.Intn(len(colorPalettes) - 1)
	if j >= i {
		j++
	}
	return colorPalettes[i], colorPalettes[j]
}

func TypographyComparisonPair(comparisonCount int) (FontPairing, FontPairing) {
	if comparisonCount >= 0 && comparisonCount < len(fontPairSchedule) {
		pair := fontPairSchedule[comparisonCount]
		return fontPairingByName[pair[0]], fontPairingByName[pair[1]]
	}
	rng := rand.New(rand.NewSource(int64(comparisonCount)))
	i := rng.Intn(len(fontPairings))
	j := rng.Intn(len(fontPairings) - 1)
	if j >= i {
		j++
	}
	return fontPairings[i], fontPairings[j]
}
