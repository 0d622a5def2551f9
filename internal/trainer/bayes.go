package trainer

import (
	"github.com/jbrukh/bayesian"
	"github.com/spendsense/backend/internal/categorizer"
)

// FitBayes learns a naive Bayes classifier from the samples.
func FitBayes(samples []Sample) (*bayesian.Classifier, error) {
	labels := make([]string, len(samples))
	for i, s := range samples {
		labels[i] = s.Category
	}

	names := uniqueSorted(labels)
	if len(names) < 2 {
		return nil, categorizer.ErrInsufficientClasses
	}

	classes := make([]bayesian.Class, len(names))
	for i, name := range names {
		classes[i] = bayesian.Class(name)
	}

	classifier := bayesian.NewClassifier(classes...)
	for _, s := range samples {
		classifier.Learn(categorizer.Tokenize(s.Description), bayesian.Class(s.Category))
	}

	return classifier, nil
}
