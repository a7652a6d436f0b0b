package pagesum

import "regexp"

// Literal defaults used when no candidate survives resolution.
const (
	DefaultTitle       = "Content Page"
	DefaultDescription = "No description available"
)

// Output caps.
const (
	MaxKeyPoints = 8
	MaxImages    = 5
)

// DefaultBrandColors is substituted for any unresolved or invalid color.
// Secondary is the channel-shifted primary, like every resolved pair.
var DefaultBrandColors = BrandColors{
	Primary:   "#1a73e8",
	Secondary: "#3887ff",
}

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// HexColor is a "#rrggbb" color string.
type HexColor string

// Valid reports whether c is a 6-digit hex color.
func (c HexColor) Valid() bool {
	return hexColorRe.MatchString(string(c))
}

// BrandColors is the inferred primary/secondary color pair of a page.
type BrandColors struct {
	Primary   HexColor `json:"primary"`
	Secondary HexColor `json:"secondary"`
}

// Metrics are informational text statistics. They never gate extraction.
type Metrics struct {
	WordCount int `json:"wordCount"`

	// ReadabilityScore is a Flesch-style reading ease normalized to [0,1].
	ReadabilityScore float64 `json:"readabilityScore"`

	// SemanticDensity is unique words over total words.
	SemanticDensity float64 `json:"semanticDensity"`
}

// PageSummary is the structured summary of one page.
// It is built once per extraction and treated as an immutable value.
type PageSummary struct {
	URL         string      `json:"url"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	KeyPoints   []string    `json:"keyPoints"`
	Images      []string    `json:"images"`
	BrandColors BrandColors `json:"brandColors"`
	Metrics     Metrics     `json:"metrics"`

	// Degraded is set when extraction failed and the fallback summary was
	// returned instead.
	Degraded bool `json:"degraded,omitempty"`
}

// Summarizer produces a summary from a parsed document.
// Summarize never fails: internal failures yield a degraded summary that
// still satisfies every structural invariant.
type Summarizer interface {
	Summarize(doc Document) PageSummary
}
