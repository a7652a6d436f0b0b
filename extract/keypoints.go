package extract

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/pranavarora99/pagesum"
)

// maxListSentenceLength is the exclusive rune bound on a list item's first
// sentence.
const maxListSentenceLength = 150

// Importance weights. Actionable wording outranks questions, which outrank
// numbers; length breaks ties.
const (
	lengthWeight     = 0.1
	digitWeight      = 10
	questionWeight   = 15
	actionableWeight = 20
)

var actionableRe = regexp.MustCompile(`(?i)\b(how|why|what|when|guides?|tips?|steps?)\b`)

var sentenceEndRe = regexp.MustCompile(`[.!?]`)

// ExtractKeyPoints collects candidates from non-h1 main-content headings,
// the first sentence of list items outside chrome, and main-content
// emphasis, deduplicates them case-insensitively, ranks them by
// ScoreKeyPoint and keeps the top eight.
func ExtractKeyPoints(b *Buckets) []string {
	set := newFoldedSet()

	for _, h := range b.Headings {
		if h.Category.Level != 1 && h.MainContent && IsQualityKeyPoint(h.Text) {
			set.add(h.Text)
		}
	}

	for _, li := range b.ListItems {
		if li.InChrome {
			continue
		}
		s := FirstSentence(li.Text)
		if runeLen(s) < maxListSentenceLength && IsQualityKeyPoint(s) {
			set.add(s)
		}
	}

	for _, e := range b.Emphasis {
		if e.MainContent && IsQualityKeyPoint(e.Text) {
			set.add(e.Text)
		}
	}

	type scored struct {
		text  string
		score float64
	}
	candidates := make([]scored, 0, set.len())
	for _, v := range set.values() {
		candidates = append(candidates, scored{text: v, score: ScoreKeyPoint(v)})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > pagesum.MaxKeyPoints {
		candidates = candidates[:pagesum.MaxKeyPoints]
	}
	points := make([]string, len(candidates))
	for i, c := range candidates {
		points[i] = c.text
	}
	return points
}

// ScoreKeyPoint rates a candidate key point.
func ScoreKeyPoint(s string) float64 {
	score := lengthWeight * float64(runeLen(s))
	if strings.IndexFunc(s, unicode.IsDigit) >= 0 {
		score += digitWeight
	}
	if strings.Contains(s, "?") {
		score += questionWeight
	}
	if actionableRe.MatchString(s) {
		score += actionableWeight
	}
	return score
}

// FirstSentence returns the text before the first ".", "!" or "?". A
// decimal point counts as a terminator, so "Version 2.0 ships" yields
// "Version 2".
func FirstSentence(s string) string {
	loc := sentenceEndRe.FindStringIndex(s)
	if loc == nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(s[:loc[0]])
}
