// Package config loads finprod settings from defaults, YAML files and the
// environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rshade/finprod/internal/listing"
	"github.com/rshade/finprod/internal/logging"
	"github.com/rshade/finprod/internal/product"
)

// Environment variables that override file settings.
const (
	EnvConfigDir = "FINPROD_HOME"
	EnvAPIURL    = "FINPROD_API_URL"
	EnvTimeout   = "FINPROD_TIMEOUT"
	EnvLogLevel  = "FINPROD_LOG_LEVEL"
	EnvLogFormat = "FINPROD_LOG_FORMAT"
)

// Defaults.
const (
	DefaultAPIURL     = "http://localhost:3002"
	DefaultTimeout    = 10 * time.Second
	DefaultServerAddr = "127.0.0.1:3002"
	DefaultLogLevel   = "warn"
	configFileName    = "config.yaml"
	configDirName     = ".finprod"
)

// Config is the complete finprod configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	List    ListConfig    `yaml:"list"`
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
}

// APIConfig points the client at the product API.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// ListConfig shapes product list views.
type ListConfig struct {
	PageSizes       []int    `yaml:"page_sizes"`
	DefaultPageSize int      `yaml:"default_page_size"`
	SearchFields    []string `yaml:"search_fields"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// ServerConfig configures the reference API started by `finprod serve`.
type ServerConfig struct {
	Addr     string `yaml:"addr"`
	SeedFile string `yaml:"seed_file"`
}

// New returns a Config holding only defaults.
func New() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: DefaultAPIURL,
			Timeout: DefaultTimeout,
		},
		List: ListConfig{
			PageSizes:       slices.Clone(listing.PageSizes),
			DefaultPageSize: listing.DefaultPageSize,
			SearchFields:    slices.Clone(product.SearchFields),
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: logging.FormatConsole,
		},
		Server: ServerConfig{
			Addr: DefaultServerAddr,
		},
	}
}

// Dir returns the finprod home directory: $FINPROD_HOME or ~/.finprod.
func Dir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return configDirName
	}
	return filepath.Join(home, configDirName)
}

// Path returns the default config file location.
func Path() string {
	return filepath.Join(Dir(), configFileName)
}

// Load builds the effective configuration: defaults, then the global config
// file if it exists, then overlayPath if set, then environment overrides.
// A missing global file is not an error; a missing overlay is.
func Load(overlayPath string) (*Config, error) {
	cfg := New()

	if _, err := os.Stat(Path()); err == nil {
		if err = ShallowMergeYAML(cfg, Path()); err != nil {
			return nil, err
		}
	}

	if overlayPath != "" {
		if err := ShallowMergeYAML(cfg, overlayPath); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// ApplyEnv applies FINPROD_* overrides read through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAPIURL); ok && v != "" {
		c.API.BaseURL = v
	}
	if v, ok := lookup(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		c.API.Timeout = d
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	return nil
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("api.base_url %q must be an absolute URL", c.API.BaseURL))
	}
	if c.API.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("api.timeout must be positive, got %s", c.API.Timeout))
	}

	if len(c.List.PageSizes) == 0 {
		errs = append(errs, errors.New("list.page_sizes must not be empty"))
	}
	for _, size := range c.List.PageSizes {
		if size <= 0 {
			errs = append(errs, fmt.Errorf("list.page_sizes entries must be positive, got %d", size))
		}
	}
	if !slices.IsSorted(c.List.PageSizes) {
		errs = append(errs, errors.New("list.page_sizes must be in ascending order"))
	}
	if !listing.ValidPageSize(c.List.DefaultPageSize, c.List.PageSizes) {
		errs = append(errs, fmt.Errorf("list.default_page_size %d is not one of list.page_sizes", c.List.DefaultPageSize))
	}
	for _, field := range c.List.SearchFields {
		if !product.IsSortField(field) {
			errs = append(errs, fmt.Errorf("list.search_fields: unknown field %q", field))
		}
	}

	switch strings.ToLower(c.Logging.Format) {
	case "", logging.FormatConsole, logging.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("logging.format must be %q or %q", logging.FormatConsole, logging.FormatJSON))
	}

	return errors.Join(errs...)
}

// LoggingSettings converts the logging section to a logging.Config.
func (c *Config) LoggingSettings() logging.Config {
	out := logging.OutputStderr
	if c.Logging.File != "" {
		out = logging.OutputFile
	}
	return logging.Config{
		Level:  c.Logging.Level,
		Format: c.Logging.Format,
		Output: out,
		File:   c.Logging.File,
	}
}

// Save writes cfg as YAML to path, creating its directory.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
