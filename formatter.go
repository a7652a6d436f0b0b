package pagesum

import (
	"fmt"
	"strings"
)

// FormatSummary formats a summary as Markdown for display.
// Empty sections are omitted.
func FormatSummary(s PageSummary) string {
	var b strings.Builder

	b.WriteString("# " + s.Title + "\n")
	if s.URL != "" {
		b.WriteString(s.URL + "\n")
	}
	b.WriteString("\n" + s.Description + "\n")

	if len(s.KeyPoints) > 0 {
		b.WriteString("\n## Key points\n")
		for _, kp := range s.KeyPoints {
			b.WriteString("- " + kp + "\n")
		}
	}

	if len(s.Images) > 0 {
		b.WriteString("\n## Images\n")
		for _, img := range s.Images {
			b.WriteString("- " + img + "\n")
		}
	}

	fmt.Fprintf(&b, "\nBrand colors: %s / %s\n", s.BrandColors.Primary, s.BrandColors.Secondary)
	fmt.Fprintf(&b, "Words: %d  Readability: %.2f  Density: %.2f",
		s.Metrics.WordCount, s.Metrics.ReadabilityScore, s.Metrics.SemanticDensity)

	if s.Degraded {
		b.WriteString("\n(degraded: extraction failed, fallback summary)")
	}

	return b.String()
}
