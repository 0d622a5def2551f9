package categorizer

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Categorizations counts categorization results by strategy and label.
var Categorizations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "categorizations_total",
		Help: "Number of categorized expense descriptions.",
	},
	[]string{"strategy", "label"},
)

// Instrumented counts every successful categorization of the wrapped
// categorizer in a counter vector.
type Instrumented struct {
	Categorizer
	counter *prometheus.CounterVec
}

// Instrument wraps c so that its results are counted in counter.
func Instrument(c Categorizer, counter *prometheus.CounterVec) *Instrumented {
	return &Instrumented{Categorizer: c, counter: counter}
}

func (i *Instrumented) Categorize(description string) (Result, error) {
	result, err := i.Categorizer.Categorize(description)
	if err != nil {
		return result, err
	}

	i.counter.WithLabelValues(i.Strategy(), result.Label).Inc()
	return result, nil
}

// Rank is not counted, it does not assign a category.
func (i *Instrumented) Rank(description string, n int) ([]Result, error) {
	ranker, ok := i.Categorizer.(Ranker)
	if !ok {
		return nil, ErrRankingUnsupported
	}

	return ranker.Rank(description, n)
}
