package categorizer

// Fallback wraps a statistical categorizer. Results below the minimum
// confidence are replaced by the rules result, as long as the rules find
// a label other than Other.
type Fallback struct {
	primary       Categorizer
	rules         *Rules
	minConfidence float64
}

// NewFallback returns a Fallback categorizer. A minimum confidence of zero
// or less disables the fallback and all results of primary are kept.
func NewFallback(primary Categorizer, rules *Rules, minConfidence float64) *Fallback {
	return &Fallback{primary: primary, rules: rules, minConfidence: minConfidence}
}

func (f *Fallback) Strategy() string {
	return f.primary.Strategy()
}

func (f *Fallback) Categorize(description string) (Result, error) {
	result, err := f.primary.Categorize(description)
	if err != nil || result.Label == NoInput || result.Confidence >= f.minConfidence {
		return result, err
	}

	if label := f.rules.match(description); label != Other {
		return Result{Label: label, Confidence: 100}, nil
	}

	return result, nil
}

// Rank ranks with the primary categorizer. When the best primary result
// would be replaced by Categorize, the rules result is ranked first so the
// ranking agrees with it.
func (f *Fallback) Rank(description string, n int) ([]Result, error) {
	ranker, ok := f.primary.(Ranker)
	if !ok {
		return nil, ErrRankingUnsupported
	}

	results, err := ranker.Rank(description, n)
	if err != nil || len(results) == 0 {
		return results, err
	}

	best := results[0]
	if best.Label == NoInput || best.Confidence >= f.minConfidence {
		return results, nil
	}

	label := f.rules.match(description)
	if label == Other {
		return results, nil
	}

	ranked := []Result{{Label: label, Confidence: 100}}
	for _, r := range results {
		if r.Label != label {
			ranked = append(ranked, r)
		}
	}

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}

	return ranked, nil
}
