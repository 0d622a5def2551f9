// Package config loads the application configuration from defaults,
// an optional YAML file and environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog/log"
	"github.com/spendsense/backend/internal/categorizer"
)

// EnvPrefix is the prefix of all environment variables read into the configuration.
const EnvPrefix = "SPENDSENSE_"

type Config struct {
	Server      Server      `koanf:"server"`
	Log         Log         `koanf:"log"`
	Database    Database    `koanf:"database"`
	Categorizer Categorizer `koanf:"categorizer"`
	Budget      Budget      `koanf:"budget"`
}

type Server struct {
	Port        int      `koanf:"port"`
	URL         string   `koanf:"url"`
	Mode        string   `koanf:"mode"`
	CORSOrigins []string `koanf:"corsorigins"`
	Pprof       bool     `koanf:"pprof"`
}

type Log struct {
	Format string `koanf:"format"`
	Level  string `koanf:"level"`
}

type Database struct {
	Path  string `koanf:"path"`
	Reset bool   `koanf:"reset"`
}

type Categorizer struct {
	Strategy      string  `koanf:"strategy"`
	Model         string  `koanf:"model"`
	Vectorizer    string  `koanf:"vectorizer"`
	BayesModel    string  `koanf:"bayesmodel"`
	Rules         string  `koanf:"rules"`
	MinConfidence float64 `koanf:"minconfidence"`
}

type Budget struct {
	WarningThreshold float64 `koanf:"warningthreshold"`
}

// Default returns the configuration used when nothing else is configured.
func Default() Config {
	return Config{
		Server: Server{
			Port:        8080,
			URL:         "http://localhost:8080",
			Mode:        "release",
			CORSOrigins: []string{},
		},
		Log: Log{
			Format: "json",
			Level:  "info",
		},
		Database: Database{
			Path: "data/spendsense.db",
		},
		Categorizer: Categorizer{
			Strategy:   categorizer.StrategyLinear,
			Model:      "data/model.json",
			Vectorizer: "data/vectorizer.json",
			BayesModel: "data/bayes.model",
		},
		Budget: Budget{
			WarningThreshold: 0.2,
		},
	}
}

// Load reads the configuration. Later sources override earlier ones:
// defaults, the YAML file at path, environment variables.
//
// A .env file in the working directory is read into the environment first.
// A missing YAML file is not an error.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("Loaded environment from .env")
	}

	var k = koanf.New(".")

	err := k.Load(structs.Provider(Default(), "koanf"), nil)
	if err != nil {
		return Config{}, fmt.Errorf("error loading config defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return Config{}, fmt.Errorf("error loading config from %s: %w", path, err)
			}
			log.Debug().Str("path", path).Msg("Config file not found, using defaults and environment variables")
		} else {
			log.Debug().Str("path", path).Msg("Loaded configuration from file")
		}
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, EnvPrefix)), "_", ".")

			// Lists are separated by whitespace
			if k == "server.corsorigins" {
				return k, strings.Fields(v)
			}

			return k, v
		},
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("error loading config from environment: %w", err)
	}

	var c Config
	if err := k.Unmarshal("", &c); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks the configuration and returns all problems found.
func (c Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, is %d", c.Server.Port))
	}

	u, err := url.Parse(c.Server.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("server.url must be an absolute URL, is '%s'", c.Server.URL))
	}

	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("server.mode must be one of debug, release, test, is '%s'", c.Server.Mode))
	}

	switch c.Log.Format {
	case "json", "human":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or human, is '%s'", c.Log.Format))
	}

	if c.Database.Path == "" {
		errs = append(errs, errors.New("database.path must be set"))
	}

	switch c.Categorizer.Strategy {
	case categorizer.StrategyLinear, categorizer.StrategyBayes, categorizer.StrategyRules:
	default:
		errs = append(errs, fmt.Errorf("categorizer.strategy must be one of linear, bayes, rules, is '%s'", c.Categorizer.Strategy))
	}

	if c.Categorizer.MinConfidence < 0 || c.Categorizer.MinConfidence > 100 {
		errs = append(errs, fmt.Errorf("categorizer.minconfidence must be between 0 and 100, is %g", c.Categorizer.MinConfidence))
	}

	if c.Budget.WarningThreshold < 0 || c.Budget.WarningThreshold > 1 {
		errs = append(errs, fmt.Errorf("budget.warningthreshold must be between 0 and 1, is %g", c.Budget.WarningThreshold))
	}

	return errors.Join(errs...)
}

// CategorizerOptions returns the options to create the configured categorizer.
func (c Config) CategorizerOptions() categorizer.Options {
	return categorizer.Options{
		Strategy:       c.Categorizer.Strategy,
		ModelPath:      c.Categorizer.Model,
		VectorizerPath: c.Categorizer.Vectorizer,
		BayesPath:      c.Categorizer.BayesModel,
		RulesPath:      c.Categorizer.Rules,
		MinConfidence:  c.Categorizer.MinConfidence,
	}
}
