// Package config resolves CLI settings from defaults, a YAML file, a .env
// file, and JOKEFORM_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFile is read when no explicit config path is given.
	DefaultFile = "jokeform.yaml"
	// DefaultBaseURL targets a locally running joke service.
	DefaultBaseURL = "http://localhost:8000"

	envPrefix = "JOKEFORM_"
)

// Config holds resolved settings.
type Config struct {
	BaseURL  string        `yaml:"base_url"`
	Timeout  time.Duration `yaml:"timeout"`
	Contract string        `yaml:"contract"`
	Color    *bool         `yaml:"color"`
	Log      LogConfig     `yaml:"log"`
}

// LogConfig selects logger level and format.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in settings. Timeout zero leaves requests to the
// transport default.
func Default() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Options controls where Load looks.
type Options struct {
	// File is the YAML config path. Empty tries DefaultFile and tolerates
	// its absence; an explicit path must exist.
	File string
	// EnvFiles are dotenv files loaded before reading the environment.
	// Missing files are skipped.
	EnvFiles []string
	// Lookup reads environment variables; defaults to os.LookupEnv.
	Lookup func(string) (string, bool)
}

// Load resolves a Config.
func Load(opts Options) (Config, error) {
	cfg := Default()

	if err := loadFile(&cfg, opts.File); err != nil {
		return Config{}, err
	}

	if err := loadDotenv(opts.EnvFiles); err != nil {
		return Config{}, err
	}

	lookup := opts.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if err := applyEnv(&cfg, lookup); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the resolved settings.
func (c Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return errors.New("config: base_url is required")
	}
	if c.Timeout < 0 {
		return errors.New("config: timeout must not be negative")
	}
	return nil
}

func loadFile(cfg *Config, path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("config: decode %s: %w", path, err)
	}
	return nil
}

func loadDotenv(files []string) error {
	var present []string
	for _, file := range files {
		if _, err := os.Stat(file); err == nil {
			present = append(present, file)
		}
	}
	if len(present) == 0 {
		return nil
	}
	if err := godotenv.Load(present...); err != nil {
		return fmt.Errorf("config: load env files: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(envPrefix + "BASE_URL"); ok && v != "" {
		cfg.BaseURL = v
	}
	if v, ok := lookup(envPrefix + "TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: %sTIMEOUT: %w", envPrefix, err)
		}
		cfg.Timeout = d
	}
	if v, ok := lookup(envPrefix + "CONTRACT"); ok && v != "" {
		cfg.Contract = v
	}
	if v, ok := lookup(envPrefix + "COLOR"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %sCOLOR: %w", envPrefix, err)
		}
		cfg.Color = &b
	}
	if v, ok := lookup(envPrefix + "LOG_LEVEL"); ok && v != "" {
		cfg.Log.Level = v
	}
	if v, ok := lookup(envPrefix + "LOG_FORMAT"); ok && v != "" {
		cfg.Log.Format = v
	}
	return nil
}
