package categorizer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ryanuber/go-glob"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// RuleSet maps a set of keywords to a label.
//
// Keywords without a "*" match anywhere in the lowercased description.
// Keywords containing a "*" are glob patterns matched against each token.
type RuleSet struct {
	Label    string   `yaml:"label"`
	Keywords []string `yaml:"keywords"`
}

// DefaultRules are evaluated in order, the first matching set wins.
var DefaultRules = []RuleSet{
	{
		Label:    "Food",
		Keywords: []string{"food", "pizza", "burger", "restaurant", "lunch", "dinner", "breakfast", "coffee", "cafe", "grocer*", "snack", "meal", "bakery", "sushi"},
	},
	{
		Label:    "Travel",
		Keywords: []string{"travel", "taxi", "uber", "flight", "train", "bus", "hotel", "fuel", "petrol", "gas station", "airport", "ticket", "metro"},
	},
	{
		Label:    "Entertainment",
		Keywords: []string{"movie", "cinema", "netflix", "spotify", "concert", "game", "theater", "theatre", "show", "music", "party"},
	},
	{
		Label:    "Shopping",
		Keywords: []string{"shopping", "amazon", "clothes", "shoes", "shirt", "mall", "electronics", "store", "shop", "purchase"},
	},
}

type rulesFile struct {
	Rules []RuleSet `yaml:"rules"`
}

// LoadRules reads rule sets from a YAML file of the form
//
//	rules:
//	  - label: Food
//	    keywords: [pizza, "grocer*"]
func LoadRules(path string) ([]RuleSet, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrModelMissing, path)
	} else if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrModelInvalid, path, err)
	}

	if len(file.Rules) == 0 {
		return nil, fmt.Errorf("%w: %s contains no rules", ErrModelInvalid, path)
	}

	for i, set := range file.Rules {
		if strings.TrimSpace(set.Label) == "" {
			return nil, fmt.Errorf("%w: rule set %d has no label", ErrModelInvalid, i)
		}
	}

	return file.Rules, nil
}

// Rules categorizes descriptions by keyword matching.
type Rules struct {
	sets []RuleSet
}

// NewRules returns a Rules categorizer. If no sets are given, DefaultRules are used.
func NewRules(sets []RuleSet) *Rules {
	if len(sets) == 0 {
		sets = DefaultRules
	}

	lower := make([]RuleSet, len(sets))
	for i, set := range sets {
		keywords := make([]string, 0, len(set.Keywords))
		for _, keyword := range set.Keywords {
			keyword = cases.Lower(language.Und).String(strings.TrimSpace(keyword))
			if keyword != "" {
				keywords = append(keywords, keyword)
			}
		}
		lower[i] = RuleSet{Label: set.Label, Keywords: keywords}
	}

	return &Rules{sets: lower}
}

func (r *Rules) Strategy() string {
	return StrategyRules
}

// Categorize returns the label of the first matching rule set, or Other.
// The confidence is always 100 for non-blank input.
func (r *Rules) Categorize(description string) (Result, error) {
	if Blank(description) {
		return NoInputResult, nil
	}

	return Result{Label: r.match(description), Confidence: 100}, nil
}

func (r *Rules) match(description string) string {
	text := cases.Lower(language.Und).String(description)
	tokens := Tokenize(text)

	for _, set := range r.sets {
		for _, keyword := range set.Keywords {
			if !strings.Contains(keyword, "*") {
				if strings.Contains(text, keyword) {
					return set.Label
				}
				continue
			}

			for _, token := range tokens {
				if glob.Glob(keyword, token) {
					return set.Label
				}
			}
		}
	}

	return Other
}
