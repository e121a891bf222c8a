package textproc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "one two three", Clean("one\t\ttwo\n\nthree"))
}

func TestClean_ReplacesSpecialCharacters(t *testing.T) {
	assert.Equal(t, "hello world", Clean("hello, world!"))
	assert.Equal(t, "well-known clause 4.2", Clean("well-known clause 4.2"))
}

func TestClean_TrimsEnds(t *testing.T) {
	assert.Equal(t, "text", Clean("   text   "))
}

func TestClean_Empty(t *testing.T) {
	assert.Equal(t, "", Clean(""))
	assert.Equal(t, "", Clean("   \n\t  "))
}

func TestExtractNumbers_PatternOrder(t *testing.T) {
	// The integer pattern matches first, so "42" appears before any
	// decimal match from the same text.
	numbers := ExtractNumbers("section 42 and rate 3.5")

	assert.Equal(t, []string{"42", "3", "5", "3.5"}, numbers)
}

func TestExtractNumbers_DuplicatesAcrossPatterns(t *testing.T) {
	// A decimal is also matched digit-run by digit-run by the integer
	// pattern. The duplication is intentional.
	numbers := ExtractNumbers("1.5")

	assert.Equal(t, []string{"1", "5", "1.5"}, numbers)
}

func TestExtractNumbers_Ordinals(t *testing.T) {
	numbers := ExtractNumbers("the 1st and 22nd amendments")

	assert.Contains(t, numbers, "1st")
	assert.Contains(t, numbers, "22nd")
}

func TestExtractNumbers_NoNumbers(t *testing.T) {
	assert.Empty(t, ExtractNumbers("no numerals here"))
}

func TestNormalize_RemovesStopwords(t *testing.T) {
	assert.Equal(t, "contract binding", Normalize("the contract is binding"))
}

func TestNormalize_Lowercases(t *testing.T) {
	assert.Equal(t, "supreme court ruled", Normalize("The Supreme Court Ruled"))
}

func TestNormalize_KeepsDigitTokens(t *testing.T) {
	// "h1b" and "h-1b" style tokens survive even if a stopword list
	// variant were to include them.
	result := Normalize("visa h1b filing")

	assert.Contains(t, result, "h1b")
}

func TestNormalize_AppendsNumbers(t *testing.T) {
	result := Normalize("pay 500 by deadline")

	assert.Equal(t, "pay 500 deadline 500", result)
}

func TestNormalize_Empty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
}

func TestNormalize_IdempotentOnOwnOutput(t *testing.T) {
	// Normalized text contains no stopwords, so re-normalizing must never
	// drop a token. Numeric tokens may be re-appended, never removed.
	inputs := []string{
		"The tenant shall pay $1,500.00 in rent by the 1st of each month.",
		"Section 42: the H-1B visa cap is set at 85% of the prior year.",
		"This Agreement is governed by the laws of the State of New York.",
	}

	for _, input := range inputs {
		first := Normalize(input)
		second := Normalize(first)

		kept := make(map[string]struct{})
		for _, token := range strings.Fields(second) {
			kept[token] = struct{}{}
		}
		for _, token := range strings.Fields(first) {
			assert.Contains(t, kept, token, "token %q dropped on re-normalization of %q", token, input)
		}
	}
}

func TestIsStopword(t *testing.T) {
	assert.True(t, IsStopword("the"))
	assert.True(t, IsStopword("is"))
	assert.False(t, IsStopword("contract"))
	assert.False(t, IsStopword("500"))
}
