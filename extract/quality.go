package extract

import (
	"regexp"
	"strings"
)

// Length bounds, in runes, for quality text and key points.
const (
	minTextLength     = 10
	maxTextLength     = 300
	minKeyPointLength = 15
	maxKeyPointLength = 200
)

var exclusionPatterns = []*regexp.Regexp{
	// single-word acknowledgements and UI verbs
	regexp.MustCompile(`(?i)^(ok|okay|yes|no|thanks|thank you|sure|done|got it|close|cancel|accept|accept all|dismiss|continue|learn more|read more|click here)[.!]*$`),
	// pure numerals, dates, prices
	regexp.MustCompile(`^[\d\s.,:/%+$€£-]+$`),
	// 1-3 letter tokens
	regexp.MustCompile(`^\p{L}{1,3}$`),
	// consent and legal boilerplate
	regexp.MustCompile(`(?i)\b(cookies?|cookie policy|privacy policy|privacy notice|terms of (service|use)|terms (and|&) conditions|all rights reserved)\b`),
}

// navigationTerms reject any candidate whose lowercase form contains one of
// them, even inside a longer word ("research" contains "search").
var navigationTerms = []string{
	"menu", "main menu", "nav", "navigation", "toggle navigation", "skip navigation",
	"home", "homepage", "login", "log in", "logout", "log out", "sign in", "sign out",
	"sign up", "signup", "register", "search", "breadcrumb", "breadcrumbs",
	"skip to content", "skip to main content", "back to top", "sitemap",
	"my account", "cart", "subscribe",
}

// IsQualityText reports whether s is acceptable content: between 10 and 300
// runes once trimmed, matching no exclusion pattern and containing no
// navigation term.
func IsQualityText(s string) bool {
	s = strings.TrimSpace(s)
	n := runeLen(s)
	if n < minTextLength || n > maxTextLength {
		return false
	}
	for _, re := range exclusionPatterns {
		if re.MatchString(s) {
			return false
		}
	}
	return !containsNavigationTerm(strings.ToLower(s))
}

// IsQualityKeyPoint is IsQualityText further bounded to [15, 200] runes.
func IsQualityKeyPoint(s string) bool {
	if !IsQualityText(s) {
		return false
	}
	n := runeLen(strings.TrimSpace(s))
	return n >= minKeyPointLength && n <= maxKeyPointLength
}

func containsNavigationTerm(lower string) bool {
	for _, term := range navigationTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
