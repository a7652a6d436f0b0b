package extract

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/pranavarora99/pagesum"
)

// Flesch reading ease coefficients.
const (
	fleschBase         = 206.835
	fleschSentenceRate = 1.015
	fleschSyllableRate = 84.6
)

var sentenceTerminatorRe = regexp.MustCompile(`[.!?]+`)

// CalculateMetrics derives word count, readability and semantic density
// from the raw text stream.
func CalculateMetrics(text string) pagesum.Metrics {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return pagesum.Metrics{}
	}

	return pagesum.Metrics{
		WordCount:        len(tokens),
		ReadabilityScore: round4(readability(text, tokens)),
		SemanticDensity:  round4(density(tokens)),
	}
}

// readability is Flesch reading ease divided by 100 and clamped to [0,1].
func readability(text string, tokens []string) float64 {
	sentences := len(sentenceTerminatorRe.FindAllStringIndex(text, -1))
	if sentences == 0 {
		sentences = 1
	}
	syllables := 0
	for _, t := range tokens {
		syllables += countSyllables(t)
	}

	words := float64(len(tokens))
	score := fleschBase -
		fleschSentenceRate*(words/float64(sentences)) -
		fleschSyllableRate*(float64(syllables)/words)
	return math.Min(math.Max(score/100, 0), 1)
}

// density is the ratio of unique lowercase words to total words.
func density(tokens []string) float64 {
	unique := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		w := strings.TrimFunc(strings.ToLower(t), func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if w != "" {
			unique[w] = struct{}{}
		}
	}
	return float64(len(unique)) / float64(len(tokens))
}

// countSyllables estimates syllables as vowel groups, dropping a silent
// trailing "e". Every word has at least one.
func countSyllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}
	trimmed := strings.TrimRightFunc(word, func(r rune) bool { return !unicode.IsLetter(r) })
	if strings.HasSuffix(trimmed, "e") && !strings.HasSuffix(trimmed, "le") && count > 1 {
		count--
	}
	return max(count, 1)
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
