package extract

import (
	"regexp"
	"strings"

	"github.com/pranavarora99/pagesum"
)

// minHeadingTitleLength applies to the any-level heading step.
const minHeadingTitleLength = 10

// titleMetaKeys are the social-preview title fields, in priority order.
var titleMetaKeys = []string{"og:title", "twitter:title"}

// titleSeparatorRe matches site-name separators in document titles, spaced
// or not. A hyphenated word is cut at its last hyphen.
var titleSeparatorRe = regexp.MustCompile(`[-–—|:]`)

// ResolveTitle picks the page title by strict priority: social-preview
// title, cleaned document title, first main-content h1, first main-content
// heading of any level, then DefaultTitle. Every candidate must pass
// IsQualityText.
func ResolveTitle(b *Buckets) string {
	for _, key := range titleMetaKeys {
		if t := normalizeSpace(b.Meta[key]); IsQualityText(t) {
			return t
		}
	}

	if t := CleanDocumentTitle(b.DocumentTitle); IsQualityText(t) {
		return t
	}

	for _, h := range b.Headings {
		if h.Category.Level == 1 && h.MainContent && IsQualityText(h.Text) {
			return h.Text
		}
	}

	for _, h := range b.Headings {
		if h.MainContent && runeLen(h.Text) >= minHeadingTitleLength && IsQualityText(h.Text) {
			return h.Text
		}
	}

	return pagesum.DefaultTitle
}

// CleanDocumentTitle strips the segment after the last separator, so
// "Release notes | Example Blog" becomes "Release notes".
func CleanDocumentTitle(title string) string {
	title = normalizeSpace(title)
	matches := titleSeparatorRe.FindAllStringIndex(title, -1)
	if len(matches) == 0 {
		return title
	}
	last := matches[len(matches)-1]
	return strings.TrimSpace(title[:last[0]])
}
