package trainer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"strings"
)

var (
	ErrMissingColumn = errors.New("the dataset needs a 'description' and a 'category' column")
	ErrEmptyDataset  = errors.New("the dataset does not contain any samples")
)

// Sample is a labelled expense description.
type Sample struct {
	Description string
	Category    string
}

// ReadDataset reads samples from CSV with a header row. The columns are
// looked up by name, additional columns are ignored. Rows with an empty
// description or category are skipped.
func ReadDataset(r io.Reader) ([]Sample, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyDataset
	} else if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	descriptionColumn, categoryColumn := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "description":
			descriptionColumn = i
		case "category":
			categoryColumn = i
		}
	}

	if descriptionColumn < 0 || categoryColumn < 0 {
		return nil, ErrMissingColumn
	}

	var samples []Sample
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, err
		}

		if len(record) <= descriptionColumn || len(record) <= categoryColumn {
			continue
		}

		sample := Sample{
			Description: strings.TrimSpace(record[descriptionColumn]),
			Category:    strings.TrimSpace(record[categoryColumn]),
		}

		if sample.Description == "" || sample.Category == "" {
			continue
		}

		samples = append(samples, sample)
	}

	if len(samples) == 0 {
		return nil, ErrEmptyDataset
	}

	return samples, nil
}

// Split shuffles the samples with the seed and returns the train and test
// sets. The test set has ceil(testSize * n) samples, but at least one
// sample always stays in the training set.
func Split(samples []Sample, testSize float64, seed int64) (train, test []Sample) {
	shuffled := make([]Sample, len(samples))
	copy(shuffled, samples)

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	n := int(math.Ceil(testSize * float64(len(shuffled))))
	if n < 0 {
		n = 0
	}
	if n >= len(shuffled) {
		n = len(shuffled) - 1
	}

	return shuffled[n:], shuffled[:n]
}
