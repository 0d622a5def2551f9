// Package categorizer assigns a spending category to a free-text expense
// description.
//
// Several strategies implement the Categorizer interface: a TF-IDF based
// linear classifier, a naive Bayes classifier and a keyword rule set. All
// of them are pure: the same description and the same model always yield
// the same result.
package categorizer

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

const (
	// NoInput is the label returned for blank descriptions.
	NoInput = "No Input"

	// Other is the label the rules strategy returns when no keyword matches.
	Other = "Other"
)

// Strategy names as used in the configuration.
const (
	StrategyLinear = "linear"
	StrategyBayes  = "bayes"
	StrategyRules  = "rules"
)

// Result is the outcome of a categorization.
type Result struct {
	Label      string  `json:"category" example:"Food"`   // The assigned category label
	Confidence float64 `json:"confidence" example:"87.5"` // Certainty of the categorizer in percent, 0 to 100
}

// NoInputResult is returned for descriptions that are empty after trimming.
var NoInputResult = Result{Label: NoInput, Confidence: 0}

// Categorizer assigns a category label to an expense description.
type Categorizer interface {
	Categorize(description string) (Result, error)

	// Strategy returns the name of the strategy, e.g. "linear".
	Strategy() string
}

// Ranker is implemented by strategies that can score every known label.
type Ranker interface {
	// Rank returns up to n results ordered by descending confidence.
	// Results with equal confidence are ordered by label.
	Rank(description string, n int) ([]Result, error)
}

// Blank reports if the description is empty after trimming whitespace.
func Blank(description string) bool {
	return strings.TrimSpace(description) == ""
}

// percent converts a probability in [0, 1] to a percentage rounded to two
// decimal places.
func percent(p float64) float64 {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0
	}

	return decimal.NewFromFloat(p).Shift(2).Round(2).InexactFloat64()
}

type scored struct {
	label string
	p     float64
}

// rank orders labels by their probability and returns the top n as results.
// n < 1 returns all of them.
func rank(labels []string, probabilities []float64, n int) []Result {
	all := make([]scored, len(labels))
	for i, label := range labels {
		all[i] = scored{label: label, p: probabilities[i]}
	}

	slices.SortStableFunc(all, func(a, b scored) int {
		switch {
		case a.p > b.p:
			return -1
		case a.p < b.p:
			return 1
		default:
			return strings.Compare(a.label, b.label)
		}
	})

	if n < 1 || n > len(all) {
		n = len(all)
	}

	results := make([]Result, n)
	for i := 0; i < n; i++ {
		results[i] = Result{Label: all[i].label, Confidence: percent(all[i].p)}
	}

	return results
}
