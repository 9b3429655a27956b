// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Log       LogConfig       `toml:"log"`
	Database  DatabaseConfig  `toml:"database"`
	Catalog   CatalogConfig   `toml:"catalog"`
	Recommend RecommendConfig `toml:"recommend"`
	Enrich    EnrichConfig    `toml:"enrich"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type CatalogConfig struct {
	GoogleBooks *GoogleBooksConfig `toml:"google_books"`
	OpenLibrary *OpenLibraryConfig `toml:"open_library"`
}

type GoogleBooksConfig struct {
	URL               string        `toml:"url"`
	APIKey            string        `toml:"api_key"`
	RequestsPerSecond float64       `toml:"requests_per_second"`
	CacheTTL          time.Duration `toml:"cache_ttl"`
}

type OpenLibraryConfig struct {
	URL string `toml:"url"`
}

type RecommendConfig struct {
	MaxPerAuthor    int `toml:"max_per_author"`
	Limit           int `toml:"limit"`
	ResultsPerQuery int `toml:"results_per_query"`
}

type EnrichConfig struct {
	BatchSize     int           `toml:"batch_size"`
	BatchDelay    time.Duration `toml:"batch_delay"`
	MinConfidence float64       `toml:"min_confidence"`
}

// Defaults.
const (
	DefaultLogLevel          = "info"
	DefaultDatabasePath      = "./data/shelfmatch.db"
	DefaultGoogleBooksURL    = "https://www.googleapis.com/books/v1"
	DefaultOpenLibraryURL    = "https://openlibrary.org"
	DefaultRequestsPerSecond = 2
	DefaultCacheTTL          = 24 * time.Hour
	DefaultMaxPerAuthor      = 3
	DefaultLimit             = 20
	DefaultResultsPerQuery   = 10
	DefaultBatchSize         = 5
	DefaultBatchDelay        = time.Second
	DefaultMinConfidence     = 0.5
)

// Load reads, parses and validates the configuration file.
// Unresolved environment variables and validation failures are reported
// together as a *ConfigError.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}

	cfgErr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file, applying
// defaults but skipping validation. Used by commands that inspect or repair
// a broken config.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

// Default returns the configuration used when no file exists: both
// catalogs enabled with default settings.
func Default() *Config {
	cfg := &Config{
		Catalog: CatalogConfig{
			GoogleBooks: &GoogleBooksConfig{},
			OpenLibrary: &OpenLibraryConfig{},
		},
	}
	cfg.applyDefaults()
	return cfg
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, missing, nil
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Database.Path == "" {
		c.Database.Path = DefaultDatabasePath
	}
	if gb := c.Catalog.GoogleBooks; gb != nil {
		if gb.URL == "" {
			gb.URL = DefaultGoogleBooksURL
		}
		if gb.RequestsPerSecond == 0 {
			gb.RequestsPerSecond = DefaultRequestsPerSecond
		}
		if gb.CacheTTL == 0 {
			gb.CacheTTL = DefaultCacheTTL
		}
	}
	if ol := c.Catalog.OpenLibrary; ol != nil && ol.URL == "" {
		ol.URL = DefaultOpenLibraryURL
	}
	if c.Recommend.MaxPerAuthor == 0 {
		c.Recommend.MaxPerAuthor = DefaultMaxPerAuthor
	}
	if c.Recommend.Limit == 0 {
		c.Recommend.Limit = DefaultLimit
	}
	if c.Recommend.ResultsPerQuery == 0 {
		c.Recommend.ResultsPerQuery = DefaultResultsPerQuery
	}
	if c.Enrich.BatchSize == 0 {
		c.Enrich.BatchSize = DefaultBatchSize
	}
	if c.Enrich.BatchDelay == 0 {
		c.Enrich.BatchDelay = DefaultBatchDelay
	}
	if c.Enrich.MinConfidence == 0 {
		c.Enrich.MinConfidence = DefaultMinConfidence
	}
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::([-?])([^}]*))?\}`)

// substituteEnvVars replaces environment variable references in content.
// Unresolvable references are left in place and reported in missing; a
// ${VAR:?message} reference reports "VAR: message". Comment lines are
// copied as they are.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	replace := func(match string) string {
		m := envVarPattern.FindStringSubmatch(match)
		name, op, arg := m[1], m[2], m[3]

		value, ok := os.LookupEnv(name)
		switch op {
		case "-":
			if !ok || value == "" {
				return arg
			}
			return value
		case "?":
			if !ok || value == "" {
				missing = append(missing, name+": "+arg)
				return match
			}
			return value
		}

		if !ok {
			missing = append(missing, name)
			return match
		}
		return value
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		lines[i] = envVarPattern.ReplaceAllStringFunc(line, replace)
	}
	return strings.Join(lines, "\n"), missing
}
