package categorizer

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Options configure the categorizer created by New.
type Options struct {
	Strategy       string
	ModelPath      string
	VectorizerPath string
	BayesPath      string

	// RulesPath is an optional YAML file overriding DefaultRules
	RulesPath string

	// MinConfidence enables the rules fallback for statistical strategies
	MinConfidence float64
}

// New loads the artifacts for the configured strategy and returns the categorizer.
//
// Missing or invalid artifacts are returned as errors wrapping ErrModelMissing
// or ErrModelInvalid.
func New(opts Options) (Categorizer, error) {
	rules := NewRules(nil)
	if opts.RulesPath != "" {
		sets, err := LoadRules(opts.RulesPath)
		if err != nil {
			return nil, err
		}
		rules = NewRules(sets)
	}

	var c Categorizer
	switch opts.Strategy {
	case StrategyLinear, "":
		model, err := LoadModel(opts.VectorizerPath, opts.ModelPath)
		if err != nil {
			return nil, err
		}
		c = NewLinear(model)
	case StrategyBayes:
		b, err := LoadBayes(opts.BayesPath)
		if err != nil {
			return nil, err
		}
		c = b
	case StrategyRules:
		log.Info().Str("strategy", StrategyRules).Msg("Using keyword rules only")
		return rules, nil
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownStrategy, opts.Strategy)
	}

	if opts.MinConfidence > 0 {
		log.Info().Float64("min_confidence", opts.MinConfidence).Msg("Keyword rule fallback enabled")
		c = NewFallback(c, rules, opts.MinConfidence)
	}

	log.Info().Str("strategy", c.Strategy()).Msg("Categorizer loaded")
	return c, nil
}
