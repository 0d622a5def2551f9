package categorizer

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"github.com/jbrukh/bayesian"
)

// Bayes categorizes descriptions with a multinomial naive Bayes classifier.
type Bayes struct {
	classifier *bayesian.Classifier
	labels     []string
}

// NewBayes returns a Bayes categorizer for a trained classifier.
func NewBayes(classifier *bayesian.Classifier) *Bayes {
	labels := make([]string, len(classifier.Classes))
	for i, class := range classifier.Classes {
		labels[i] = string(class)
	}

	return &Bayes{classifier: classifier, labels: labels}
}

// LoadBayes reads a classifier serialized with WriteToFile.
func LoadBayes(path string) (*Bayes, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrModelMissing, path)
	}

	classifier, err := bayesian.NewClassifierFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrModelInvalid, path, err)
	}

	if len(classifier.Classes) < 2 {
		return nil, fmt.Errorf("%w: %w", ErrModelInvalid, ErrInsufficientClasses)
	}

	return NewBayes(classifier), nil
}

func (b *Bayes) Strategy() string {
	return StrategyBayes
}

func (b *Bayes) Categorize(description string) (Result, error) {
	if Blank(description) {
		return NoInputResult, nil
	}

	results, err := b.Rank(description, 1)
	if err != nil {
		return Result{}, err
	}

	return results[0], nil
}

func (b *Bayes) Rank(description string, n int) ([]Result, error) {
	if Blank(description) {
		return []Result{NoInputResult}, nil
	}

	probabilities, err := b.posteriors(Tokenize(description))
	if err != nil {
		return nil, err
	}

	return rank(b.labels, probabilities, n), nil
}

// posteriors returns the posterior probability for every class. They are
// normalized from the log scores, the direct product of word probabilities
// underflows to zero for long descriptions.
func (b *Bayes) posteriors(tokens []string) ([]float64, error) {
	scores, _, _ := b.classifier.LogScores(tokens)

	finite := 0
	for _, s := range scores {
		if math.IsNaN(s) || math.IsInf(s, 1) {
			return nil, fmt.Errorf("%w: degenerate log scores", ErrModelInvalid)
		}
		if !math.IsInf(s, -1) {
			finite++
		}
	}

	if finite == 0 {
		return nil, fmt.Errorf("%w: degenerate log scores", ErrModelInvalid)
	}

	return Softmax(scores), nil
}
