// Package config loads the YAML file that drives the command line tools.
package config

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"github.com/rxtech-lab/argo-indicator/internal/ratings"
	"github.com/rxtech-lab/argo-indicator/internal/solver"
	"github.com/rxtech-lab/argo-indicator/internal/version"
	"github.com/rxtech-lab/argo-indicator/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// SolverConfig bounds the bisection search.
type SolverConfig struct {
	Iterations int     `yaml:"iterations" json:"iterations" jsonschema:"title=Iterations,description=Maximum number of probes,minimum=1,default=100" validate:"min=1"`
	Tolerance  float64 `yaml:"tolerance" json:"tolerance" jsonschema:"title=Tolerance,description=Stop once the price bracket is narrower than this,minimum=0,default=0" validate:"min=0"`
}

// Options converts the config to solver options.
func (c SolverConfig) Options() []solver.Option {
	return []solver.Option{
		solver.WithIterations(c.Iterations),
		solver.WithTolerance(decimal.NewFromFloat(c.Tolerance)),
	}
}

// Config is the root of the configuration file.
type Config struct {
	Version  string         `yaml:"version" json:"version" jsonschema:"title=Version,description=Engine version the file was written for" validate:"required"`
	LogLevel string         `yaml:"log_level" json:"log_level" jsonschema:"title=Log level,enum=debug,enum=info,enum=warn,enum=error,default=info" validate:"oneof=debug info warn error"`
	Ratings  ratings.Config `yaml:"ratings" json:"ratings"`
	Solver   SolverConfig   `yaml:"solver" json:"solver"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Version:  version.GetVersion(),
		LogLevel: "info",
		Ratings:  ratings.DefaultConfig(),
		Solver:   SolverConfig{Iterations: 100},
	}
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(errors.ErrCodeConfigReadFailed, err, "failed to read config %s", path)
	}

	return Parse(data)
}

// Parse decodes data over the defaults, so a file only lists what it changes.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	// an empty document leaves the defaults untouched
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(errors.ErrCodeConfigParseFailed, "failed to parse config", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the struct tags, the ratings lookbacks and the version.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid config", err)
	}

	if err := c.Ratings.Validate(); err != nil {
		return err
	}

	return version.CheckConfigVersion(version.GetVersion(), c.Version)
}

// Schema returns the JSON schema of the configuration file.
func Schema() (string, error) {
	r := new(jsonschema.Reflector)
	r.DoNotReference = true
	schema := r.Reflect(Config{})

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", err
	}

	return string(data), nil
}
