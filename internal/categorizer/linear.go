package categorizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
)

// Supported values for LinearClassifier.MultiClass.
const (
	MultiClassMultinomial = "multinomial"
	MultiClassOVR         = "ovr"
)

// Vectorizer turns text into a TF-IDF feature vector.
type Vectorizer struct {
	Vocabulary  map[string]int `json:"vocabulary"`
	IDF         []float64      `json:"idf"`
	SublinearTF bool           `json:"sublinear_tf"`
	Norm        string         `json:"norm"` // "l2" or empty for no normalization
}

// Transform returns the feature vector for the text. Tokens that are not
// in the vocabulary are ignored.
func (v Vectorizer) Transform(text string) []float64 {
	features := make([]float64, len(v.IDF))
	for _, token := range Tokenize(text) {
		if index, ok := v.Vocabulary[token]; ok {
			features[index]++
		}
	}

	for i, count := range features {
		if count == 0 {
			continue
		}

		if v.SublinearTF {
			count = 1 + math.Log(count)
		}
		features[i] = count * v.IDF[i]
	}

	if v.Norm == "l2" {
		var sum float64
		for _, f := range features {
			sum += f * f
		}

		if sum > 0 {
			norm := math.Sqrt(sum)
			for i := range features {
				features[i] /= norm
			}
		}
	}

	return features
}

// LinearClassifier is a logistic regression over TF-IDF features.
//
// Binary classifiers carry a single coefficient row that scores the second
// class against the first one.
type LinearClassifier struct {
	Classes     []string    `json:"classes"`
	Coef        [][]float64 `json:"coef"`
	Intercept   []float64   `json:"intercept"`
	MultiClass  string      `json:"multi_class"`
	Probability bool        `json:"probability"`
}

func (c LinearClassifier) binary() bool {
	return len(c.Classes) == 2 && len(c.Coef) == 1
}

// decision returns the raw decision function value per coefficient row.
func (c LinearClassifier) decision(features []float64) []float64 {
	scores := make([]float64, len(c.Coef))
	for k, row := range c.Coef {
		score := c.Intercept[k]
		for i, weight := range row {
			score += weight * features[i]
		}
		scores[k] = score
	}

	return scores
}

// Probabilities returns the probability of each class, in the order of Classes.
func (c LinearClassifier) Probabilities(features []float64) []float64 {
	scores := c.decision(features)

	if c.binary() {
		p := sigmoid(scores[0])
		return []float64{1 - p, p}
	}

	if c.MultiClass == MultiClassOVR {
		probabilities := make([]float64, len(scores))
		var sum float64
		for k, s := range scores {
			probabilities[k] = sigmoid(s)
			sum += probabilities[k]
		}

		for k := range probabilities {
			if sum == 0 {
				probabilities[k] = 1 / float64(len(probabilities))
				continue
			}
			probabilities[k] /= sum
		}

		return probabilities
	}

	return Softmax(scores)
}

// Predict returns the index of the class with the highest decision value.
// Ties go to the lower index.
func (c LinearClassifier) Predict(features []float64) int {
	scores := c.decision(features)
	if c.binary() {
		if scores[0] > 0 {
			return 1
		}
		return 0
	}

	best := 0
	for k, s := range scores {
		if s > scores[best] {
			best = k
		}
	}

	return best
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Softmax normalizes scores into probabilities. It is stable for large
// inputs as the maximum is subtracted before exponentiation.
func Softmax(scores []float64) []float64 {
	max := math.Inf(-1)
	for _, s := range scores {
		max = math.Max(max, s)
	}

	probabilities := make([]float64, len(scores))
	var sum float64
	for k, s := range scores {
		probabilities[k] = math.Exp(s - max)
		sum += probabilities[k]
	}

	for k := range probabilities {
		probabilities[k] /= sum
	}

	return probabilities
}

// Model is a vectorizer together with the classifier trained on its output.
// It is loaded once and never modified afterwards.
type Model struct {
	Vectorizer Vectorizer
	Classifier LinearClassifier
}

// LoadModel reads the vectorizer and classifier artifacts.
func LoadModel(vectorizerPath, modelPath string) (*Model, error) {
	var m Model

	if err := readArtifact(vectorizerPath, &m.Vectorizer); err != nil {
		return nil, err
	}

	if err := readArtifact(modelPath, &m.Classifier); err != nil {
		return nil, err
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// Save writes the vectorizer and classifier artifacts.
func (m *Model) Save(vectorizerPath, modelPath string) error {
	if err := writeArtifact(vectorizerPath, m.Vectorizer); err != nil {
		return err
	}

	return writeArtifact(modelPath, m.Classifier)
}

// Validate verifies that the vectorizer and the classifier fit together.
func (m *Model) Validate() error {
	v, c := m.Vectorizer, m.Classifier
	features := len(v.IDF)

	if len(v.Vocabulary) != features {
		return fmt.Errorf("%w: vocabulary has %d terms, but there are %d idf values", ErrModelInvalid, len(v.Vocabulary), features)
	}

	for term, index := range v.Vocabulary {
		if index < 0 || index >= features {
			return fmt.Errorf("%w: term '%s' has out of range index %d", ErrModelInvalid, term, index)
		}
	}

	if v.Norm != "" && v.Norm != "l2" {
		return fmt.Errorf("%w: unsupported norm '%s'", ErrModelInvalid, v.Norm)
	}

	if len(c.Classes) < 2 {
		return fmt.Errorf("%w: %w", ErrModelInvalid, ErrInsufficientClasses)
	}

	if !c.binary() && len(c.Coef) != len(c.Classes) {
		return fmt.Errorf("%w: %d coefficient rows for %d classes", ErrModelInvalid, len(c.Coef), len(c.Classes))
	}

	if len(c.Intercept) != len(c.Coef) {
		return fmt.Errorf("%w: %d intercepts for %d coefficient rows", ErrModelInvalid, len(c.Intercept), len(c.Coef))
	}

	for k, row := range c.Coef {
		if len(row) != features {
			return fmt.Errorf("%w: coefficient row %d has %d values, expected %d", ErrModelInvalid, k, len(row), features)
		}
	}

	switch c.MultiClass {
	case "", MultiClassMultinomial, MultiClassOVR:
	default:
		return fmt.Errorf("%w: unsupported multi_class '%s'", ErrModelInvalid, c.MultiClass)
	}

	return nil
}

func readArtifact(path string, target any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrModelMissing, path)
	} else if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrModelInvalid, path, err)
	}

	return nil
}

func writeArtifact(path string, source any) error {
	data, err := json.MarshalIndent(source, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Linear categorizes descriptions with a TF-IDF linear model.
type Linear struct {
	model *Model
}

// NewLinear returns a Linear categorizer for the model.
func NewLinear(model *Model) *Linear {
	return &Linear{model: model}
}

func (l *Linear) Strategy() string {
	return StrategyLinear
}

func (l *Linear) Categorize(description string) (Result, error) {
	if Blank(description) {
		return NoInputResult, nil
	}

	results, err := l.Rank(description, 1)
	if err != nil {
		return Result{}, err
	}

	return results[0], nil
}

// Rank scores all classes of the model. If the model does not support
// probabilities, only the predicted class is returned with a confidence of 100.
func (l *Linear) Rank(description string, n int) ([]Result, error) {
	if Blank(description) {
		return []Result{NoInputResult}, nil
	}

	c := l.model.Classifier
	features := l.model.Vectorizer.Transform(description)

	if !c.Probability {
		return []Result{{Label: c.Classes[c.Predict(features)], Confidence: 100}}, nil
	}

	return rank(c.Classes, c.Probabilities(features), n), nil
}
