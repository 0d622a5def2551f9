package trainer

import (
	"math"

	"github.com/spendsense/backend/internal/categorizer"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// LinearOptions configure the logistic regression fit.
type LinearOptions struct {
	// C is the inverse of the L2 regularization strength
	C            float64
	Iterations   int
	LearningRate float64
}

// DefaultLinearOptions are used when no options are given.
var DefaultLinearOptions = LinearOptions{C: 1.0, Iterations: 500, LearningRate: 0.5}

// FitVectorizer builds the vocabulary and inverse document frequencies from
// the documents. Terms are indexed in alphabetical order, the idf is
// smoothed as ln((1+n)/(1+df))+1.
func FitVectorizer(documents []string) categorizer.Vectorizer {
	df := map[string]int{}
	for _, document := range documents {
		seen := map[string]bool{}
		for _, token := range categorizer.Tokenize(document) {
			if !seen[token] {
				seen[token] = true
				df[token]++
			}
		}
	}

	terms := maps.Keys(df)
	slices.Sort(terms)

	n := float64(len(documents))
	vocabulary := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	for i, term := range terms {
		vocabulary[term] = i
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	return categorizer.Vectorizer{
		Vocabulary: vocabulary,
		IDF:        idf,
		Norm:       "l2",
	}
}

// FitLinear trains a multinomial logistic regression with full-batch
// gradient descent. Classes are sorted alphabetically.
func FitLinear(features [][]float64, labels []string, opts LinearOptions) (categorizer.LinearClassifier, error) {
	classes := uniqueSorted(labels)
	if len(classes) < 2 {
		return categorizer.LinearClassifier{}, categorizer.ErrInsufficientClasses
	}

	if opts.C <= 0 {
		opts.C = DefaultLinearOptions.C
	}
	if opts.Iterations <= 0 {
		opts.Iterations = DefaultLinearOptions.Iterations
	}
	if opts.LearningRate <= 0 {
		opts.LearningRate = DefaultLinearOptions.LearningRate
	}

	index := make(map[string]int, len(classes))
	for k, class := range classes {
		index[class] = k
	}

	k, d, n := len(classes), 0, float64(len(features))
	if len(features) > 0 {
		d = len(features[0])
	}

	coef := make([][]float64, k)
	for c := range coef {
		coef[c] = make([]float64, d)
	}
	intercept := make([]float64, k)

	lambda := 1 / (opts.C * n)
	model := categorizer.LinearClassifier{
		Classes:     classes,
		Coef:        coef,
		Intercept:   intercept,
		MultiClass:  categorizer.MultiClassMultinomial,
		Probability: true,
	}

	gradCoef := make([][]float64, k)
	for c := range gradCoef {
		gradCoef[c] = make([]float64, d)
	}
	gradIntercept := make([]float64, k)

	for iteration := 0; iteration < opts.Iterations; iteration++ {
		for c := range gradCoef {
			clear(gradCoef[c])
		}
		clear(gradIntercept)

		for i, x := range features {
			p := model.Probabilities(x)
			p[index[labels[i]]]--

			for c := 0; c < k; c++ {
				if p[c] == 0 {
					continue
				}
				gradIntercept[c] += p[c]
				for j, value := range x {
					if value != 0 {
						gradCoef[c][j] += p[c] * value
					}
				}
			}
		}

		for c := 0; c < k; c++ {
			intercept[c] -= opts.LearningRate * gradIntercept[c] / n
			for j := 0; j < d; j++ {
				coef[c][j] -= opts.LearningRate * (gradCoef[c][j]/n + lambda*coef[c][j])
			}
		}
	}

	return model, nil
}

func uniqueSorted(labels []string) []string {
	set := map[string]struct{}{}
	for _, label := range labels {
		set[label] = struct{}{}
	}

	classes := maps.Keys(set)
	slices.Sort(classes)
	return classes
}
