package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"catalogcmp/internal/model"
)

type Config struct {
	DatabaseURL string
	RedisURL    string
	CacheTTL    time.Duration
	OpenAIKey   string
	OpenAIModel string
	HTTPPort    string
	MetricsPort string
	LogLevel    string
	LogFormat   string
	SourcesFile string
	Sources     []SourceConfig
}

// SourceConfig describes where one catalog is read from and how its columns map
// onto the canonical schema.
type SourceConfig struct {
	Source  model.Source      `yaml:"source"`
	Label   string            `yaml:"label"`
	Path    string            `yaml:"path"`
	Table   string            `yaml:"table"`
	Columns map[string]string `yaml:"columns"` // source column -> canonical column
}

type sourcesFile struct {
	Sources []SourceConfig `yaml:"sources"`
}

func Load() *Config {
	// .env at the project root when run from cmd/<tool>, then the working dir
	_ = godotenv.Load("../../.env")
	_ = godotenv.Load()
	return &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		CacheTTL:    getDuration("CACHE_TTL", 10*time.Minute),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIModel: getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		MetricsPort: getEnv("METRICS_PORT", "9090"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "console"),
		SourcesFile: os.Getenv("SOURCES_FILE"),
		Sources: []SourceConfig{
			{
				Source:  model.SourceA,
				Label:   getEnv("SOURCE_A_LABEL", "Credo"),
				Path:    getEnv("SOURCE_A_PATH", "data/credoproduct_info.csv"),
				Table:   os.Getenv("SOURCE_A_TABLE"),
				Columns: DefaultColumns(model.SourceA),
			},
			{
				Source:  model.SourceB,
				Label:   getEnv("SOURCE_B_LABEL", "Sephora"),
				Path:    getEnv("SOURCE_B_PATH", "data/sephoraproduct_info.csv"),
				Table:   os.Getenv("SOURCE_B_TABLE"),
				Columns: DefaultColumns(model.SourceB),
			},
		},
	}
}

// DefaultColumns returns the built-in column mapping for a source.
func DefaultColumns(s model.Source) map[string]string {
	switch s {
	case model.SourceA:
		return map[string]string{
			"id":           model.ColProductID,
			"name":         model.ColProductName,
			"brand_name":   model.ColBrandName,
			"price":        model.ColPrice,
			"rating":       model.ColRating,
			"review_count": model.ColReviews,
		}
	case model.SourceB:
		return map[string]string{
			"product_id":   model.ColProductID,
			"product_name": model.ColProductName,
			"brand_name":   model.ColBrandName,
			"price_usd":    model.ColPrice,
			"rating":       model.ColRating,
			"reviews":      model.ColReviews,
		}
	}
	return map[string]string{}
}

// ApplySourcesFile merges a YAML sources file into c.Sources. Fields left empty in
// the file keep their current values; a non-empty columns block replaces the
// whole mapping for that source.
func (c *Config) ApplySourcesFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read sources file: %w", err)
	}
	var f sourcesFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("parse sources file %s: %w", path, err)
	}
	for _, override := range f.Sources {
		if !override.Source.Valid() {
			return fmt.Errorf("sources file %s: unknown source %q", path, override.Source)
		}
		for i := range c.Sources {
			if c.Sources[i].Source != override.Source {
				continue
			}
			if override.Label != "" {
				c.Sources[i].Label = override.Label
			}
			if override.Path != "" {
				c.Sources[i].Path = override.Path
			}
			if override.Table != "" {
				c.Sources[i].Table = override.Table
			}
			if len(override.Columns) > 0 {
				c.Sources[i].Columns = override.Columns
			}
		}
	}
	return nil
}

// Label returns the display label configured for s.
func (c *Config) Label(s model.Source) string {
	for _, sc := range c.Sources {
		if sc.Source == s {
			return sc.Label
		}
	}
	return string(s)
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getDuration(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	// bare number of seconds
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return d
}
