package categorizer

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// A token is a run of at least two letters, digits or underscores.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Tokenize lowercases the text and splits it into tokens.
//
// The vectorizer, the Bayes classifier and the trainer all use this, so
// artifacts written by the trainer see the same tokens at prediction time.
func Tokenize(text string) []string {
	// A Caser keeps state and must not be shared between goroutines
	lower := cases.Lower(language.Und).String(text)
	return tokenPattern.FindAllString(lower, -1)
}
