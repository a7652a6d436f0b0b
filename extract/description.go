package extract

import "github.com/pranavarora99/pagesum"

const (
	minMetaDescriptionLength = 20
	minParagraphLength       = 50
	maxParagraphLength       = 500
	maxDescriptionLength     = 300
)

// descriptionMetaKeys are the description fields, in priority order.
var descriptionMetaKeys = []string{"description", "og:description"}

// ResolveDescription picks the page description: meta description, then
// social-preview description (each longer than 20 runes), then the first
// paragraph of 50 to 499 runes truncated to 300, searched in main content
// before the whole page, then DefaultDescription.
func ResolveDescription(b *Buckets) string {
	for _, key := range descriptionMetaKeys {
		if d, ok := MetaDescription(b.Meta[key]); ok {
			return d
		}
	}

	if p, ok := firstParagraph(b.Paragraphs, true); ok {
		return truncateRunes(p, maxDescriptionLength)
	}
	if p, ok := firstParagraph(b.Paragraphs, false); ok {
		return truncateRunes(p, maxDescriptionLength)
	}

	return pagesum.DefaultDescription
}

func firstParagraph(paragraphs []Element, mainOnly bool) (string, bool) {
	for _, p := range paragraphs {
		if mainOnly && !p.MainContent {
			continue
		}
		if n := runeLen(p.Text); n >= minParagraphLength && n < maxParagraphLength {
			return p.Text, true
		}
	}
	return "", false
}

// MetaDescription normalizes whitespace in a declared description and
// reports whether it is long enough to use.
func MetaDescription(s string) (string, bool) {
	d := normalizeSpace(s)
	return d, runeLen(d) > minMetaDescriptionLength
}
