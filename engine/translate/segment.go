package translate

import (
	"strconv"
	"unicode/utf8"
)

// isTerminal reports whether r is sentence-terminal punctuation.
func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// sentenceUnits splits text into sentence units: maximal substrings ending
// at a sentence-terminal punctuation mark, inclusive of that mark. Trailing
// text without a terminal mark is kept as the final unit. No unit is empty.
//
// Sentence units deliberately do not follow Unicode default sentence
// boundaries; a repeated mark as in "Wow!!" yields a lone-punctuation unit.
func sentenceUnits(text string) []string {
	var units []string
	start := 0
	for i, r := range text {
		if isTerminal(r) {
			units = append(units, text[start:i+utf8.RuneLen(r)])
			start = i + utf8.RuneLen(r)
		}
	}
	if start < len(text) {
		units = append(units, text[start:])
	}
	return units
}

// IsNumber reports whether s parses entirely as a single signed integer or
// floating-point number. Pure numeric runs (page numbers, counters) must
// never be corrupted by translation, so they bypass the orchestrator.
func IsNumber(s string) bool {
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return true
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
