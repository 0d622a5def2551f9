// Package trainer fits the categorizer artifacts from a labelled dataset.
//
// Training is an offline step, the server only ever loads the artifacts
// written here.
package trainer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spendsense/backend/internal/categorizer"
)

// Options configure a training run.
type Options struct {
	Strategy string
	DataPath string

	VectorizerPath string
	ModelPath      string
	BayesPath      string

	// TestSize is the fraction of samples held out for evaluation
	TestSize float64
	Seed     int64

	Linear LinearOptions
}

// Report describes the outcome of a training run.
type Report struct {
	Strategy  string
	Samples   int
	TrainSize int
	TestSize  int
	Classes   []string

	// Accuracy on the held out samples in [0, 1]. Zero if there are none.
	Accuracy float64

	Artifacts []string

	// Checksums maps each artifact path to the SHA256 checksum of its content
	Checksums map[string]string
}

// Train reads the dataset, fits the configured strategy, evaluates it on the
// held out samples and writes the artifacts.
func Train(opts Options) (Report, error) {
	file, err := os.Open(opts.DataPath)
	if err != nil {
		return Report{}, err
	}
	defer file.Close()

	samples, err := ReadDataset(file)
	if err != nil {
		return Report{}, fmt.Errorf("reading dataset %s: %w", opts.DataPath, err)
	}

	train, test := Split(samples, opts.TestSize, opts.Seed)
	log.Debug().Int("train", len(train)).Int("test", len(test)).Msg("Split dataset")

	report := Report{
		Strategy:  opts.Strategy,
		Samples:   len(samples),
		TrainSize: len(train),
		TestSize:  len(test),
	}

	var c categorizer.Categorizer
	switch opts.Strategy {
	case categorizer.StrategyLinear, "":
		report.Strategy = categorizer.StrategyLinear

		documents := make([]string, len(train))
		labels := make([]string, len(train))
		for i, s := range train {
			documents[i] = s.Description
			labels[i] = s.Category
		}

		vectorizer := FitVectorizer(documents)
		features := make([][]float64, len(documents))
		for i, document := range documents {
			features[i] = vectorizer.Transform(document)
		}

		classifier, err := FitLinear(features, labels, opts.Linear)
		if err != nil {
			return Report{}, err
		}

		model := &categorizer.Model{Vectorizer: vectorizer, Classifier: classifier}
		if err := mkdirs(opts.VectorizerPath, opts.ModelPath); err != nil {
			return Report{}, err
		}
		if err := model.Save(opts.VectorizerPath, opts.ModelPath); err != nil {
			return Report{}, err
		}

		report.Classes = classifier.Classes
		report.Artifacts = []string{opts.VectorizerPath, opts.ModelPath}
		c = categorizer.NewLinear(model)

	case categorizer.StrategyBayes:
		classifier, err := FitBayes(train)
		if err != nil {
			return Report{}, err
		}

		if err := mkdirs(opts.BayesPath); err != nil {
			return Report{}, err
		}
		if err := classifier.WriteToFile(opts.BayesPath); err != nil {
			return Report{}, err
		}

		for _, class := range classifier.Classes {
			report.Classes = append(report.Classes, string(class))
		}
		report.Artifacts = []string{opts.BayesPath}
		c = categorizer.NewBayes(classifier)

	default:
		return Report{}, fmt.Errorf("%w: '%s' cannot be trained", categorizer.ErrUnknownStrategy, opts.Strategy)
	}

	report.Checksums, err = checksums(report.Artifacts...)
	if err != nil {
		return Report{}, err
	}

	report.Accuracy, err = Evaluate(c, test)
	if err != nil {
		return Report{}, err
	}

	return report, nil
}

// Evaluate returns the share of samples that c categorizes correctly.
func Evaluate(c categorizer.Categorizer, samples []Sample) (float64, error) {
	if len(samples) == 0 {
		return 0, nil
	}

	var correct int
	for _, s := range samples {
		result, err := c.Categorize(s.Description)
		if err != nil {
			return 0, err
		}

		if result.Label == s.Category {
			correct++
		}
	}

	return float64(correct) / float64(len(samples)), nil
}

func mkdirs(paths ...string) error {
	for _, path := range paths {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
	}

	return nil
}
