package textproc

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	specialsRe   = regexp.MustCompile(`[^\w\s\-.]`)

	// Number patterns are applied in this order over the cleaned text. A value
	// matching several patterns is emitted once per pattern; retrieval scoring
	// relies on that weighting, so keep the duplication.
	numberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\d+`),
		regexp.MustCompile(`\d+\.\d+`),
		regexp.MustCompile(`\d+%`),
		regexp.MustCompile(`\$\d+(?:\.\d+)?`),
		regexp.MustCompile(`\d+(?:st|nd|rd|th)`),
	}

	digitsOnlyRe   = regexp.MustCompile(`^\d+$`)
	letterDigitRe  = regexp.MustCompile(`^[a-z]+\d+$`)
	hyphenatedRe   = regexp.MustCompile(`^[a-z]+-[a-z]+$`)
)

// Clean collapses whitespace runs to single spaces, replaces characters outside
// letters/digits/whitespace/hyphen/period with a space, and trims the ends.
func Clean(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = specialsRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// ExtractNumbers returns every numeric match in text, pattern by pattern:
// integers first, then decimals, percentages, currency amounts, and ordinals.
func ExtractNumbers(text string) []string {
	var numbers []string
	for _, pattern := range numberPatterns {
		numbers = append(numbers, pattern.FindAllString(text, -1)...)
	}
	return numbers
}

// Normalize cleans text, extracts numeric tokens before lowercasing, filters
// English stopwords while keeping digit and legal-style tokens (e.g. "h1b",
// "h-1b"), and appends the extracted numbers to the end.
func Normalize(text string) string {
	text = Clean(text)

	// Numbers are pulled out before lowercasing so currency and ordinal
	// suffixes survive intact.
	numbers := ExtractNumbers(text)

	text = strings.ToLower(text)

	var filtered []string
	for _, word := range strings.Fields(text) {
		if !IsStopword(word) ||
			digitsOnlyRe.MatchString(word) ||
			letterDigitRe.MatchString(word) ||
			hyphenatedRe.MatchString(word) {
			filtered = append(filtered, word)
		}
	}

	filtered = append(filtered, numbers...)

	return strings.Join(filtered, " ")
}
