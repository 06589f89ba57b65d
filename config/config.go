package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"

	"github.com/dhamidi/swapcheck/swap"
)

// DefaultFile is looked up in the project root when no path is given.
const DefaultFile = ".swapcheck.yaml"

// Config represents the .swapcheck.yaml configuration.
type Config struct {
	Annotation string   `yaml:"annotation"`
	Sources    []string `yaml:"sources"`
	Ignore     []string `yaml:"ignore"`
	Workers    int      `yaml:"workers"`
	Format     string   `yaml:"format"`
}

// Default returns a Config for a Gradle-style layout.
func Default() *Config {
	return &Config{
		Annotation: swap.DefaultAnnotation,
		Sources:    []string{"src/main/java"},
		Ignore: []string{
			"**/build/**",
			"**/generated/**",
		},
		Format: "text",
	}
}

// Load reads a configuration file. Missing fields are filled with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Annotation == "" {
		cfg.Annotation = swap.DefaultAnnotation
	}
	if len(cfg.Sources) == 0 {
		cfg.Sources = Default().Sources
	}
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but treats a missing file as an empty one.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv loads .env, if present, and overrides fields from SWAPCHECK_*
// environment variables.
func (c *Config) ApplyEnv() error {
	_ = godotenv.Load()

	if v := os.Getenv("SWAPCHECK_ANNOTATION"); v != "" {
		c.Annotation = v
	}
	if v := os.Getenv("SWAPCHECK_FORMAT"); v != "" {
		c.Format = v
	}
	if v := os.Getenv("SWAPCHECK_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Errorf("SWAPCHECK_WORKERS: %w", err)
		}
		c.Workers = n
	}
	return nil
}

// ValidatorOptions translates the configuration into swap options.
func (c *Config) ValidatorOptions() []swap.Option {
	return []swap.Option{
		swap.WithAnnotation(c.Annotation),
		swap.WithWorkers(c.Workers),
	}
}
