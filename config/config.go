// Package config loads newswire configuration from an optional YAML file
// with environment overrides. All values are immutable after Load; they are
// passed into component constructors rather than read from globals.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/fwojciec/newswire"
	"gopkg.in/yaml.v3"
)

// Environment variables recognized by Load.
const (
	ConfigPathEnv      = "NEWSWIRE_CONFIG"
	GeminiAPIKeyEnv    = "GEMINI_API_KEY"
	DBPathEnv          = "NEWSWIRE_DB"
	BigQueryProjectEnv = "BIGQUERY_PROJECT"
)

// Config holds all settings required across the application.
type Config struct {
	Source   SourceConfig     `yaml:"source"`
	Rules    newswire.RuleSet `yaml:"rules"`
	Strategy StrategyConfig   `yaml:"strategy"`
	Entities EntityConfig     `yaml:"entities"`
	Pipeline PipelineConfig   `yaml:"pipeline"`
	Sink     SinkConfig       `yaml:"sink"`
}

// SourceConfig describes the listing page scraped each run.
type SourceConfig struct {
	// URL is the single listing page fetched per run.
	URL string `yaml:"url"`

	// Origin is prepended to root-relative links and images.
	Origin string `yaml:"origin"`
}

// StrategyConfig describes the remote selector strategy.
type StrategyConfig struct {
	// APIKey is taken from the environment, never from the file.
	APIKey string `yaml:"-"`

	// Timeout bounds the remote call before falling back.
	Timeout Duration `yaml:"timeout"`
}

// EntityConfig describes entity enrichment.
type EntityConfig struct {
	// Labels maps model-native entity labels to canonical classes
	// (persons, organizations, locations).
	Labels map[string]string `yaml:"labels"`
}

// LabelTable converts the configured mapping into a newswire.LabelTable.
func (e EntityConfig) LabelTable() newswire.LabelTable {
	if len(e.Labels) == 0 {
		return newswire.DefaultLabelTable()
	}
	table := make(newswire.LabelTable, len(e.Labels))
	for label, class := range e.Labels {
		table[label] = newswire.EntityClass(class)
	}
	return table
}

// PipelineConfig describes run execution.
type PipelineConfig struct {
	// Concurrency bounds the per-record enrichment worker pool.
	Concurrency int `yaml:"concurrency"`
}

// SinkConfig describes where batches are persisted.
type SinkConfig struct {
	SQLitePath string         `yaml:"sqlitePath"`
	BigQuery   BigQueryConfig `yaml:"bigquery"`
}

// BigQueryConfig wires the warehouse destination.
type BigQueryConfig struct {
	Project string `yaml:"project"`
	Dataset string `yaml:"dataset"`
	Table   string `yaml:"table"`
}

// Duration wraps time.Duration with YAML support for strings like "15s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Default returns the built-in configuration for the Yogonet International
// listing page.
func Default() Config {
	return Config{
		Source: SourceConfig{
			URL:    "https://www.yogonet.com/international/",
			Origin: "https://www.yogonet.com",
		},
		Rules: newswire.RuleSet{
			Container: ".slot.noticia",
			Title:     ".titulo a",
			Kicker:    ".volanta",
			Link:      ".titulo a",
			Image:     ".imagen a img",
		},
		Strategy: StrategyConfig{
			Timeout: Duration(15 * time.Second),
		},
		Pipeline: PipelineConfig{
			Concurrency: 4,
		},
		Sink: SinkConfig{
			SQLitePath: "newswire.db",
			BigQuery: BigQueryConfig{
				Dataset: "yogonet",
				Table:   "articles",
			},
		},
	}
}

// Load returns the default configuration overlaid with the YAML file named
// by NEWSWIRE_CONFIG (if set) and environment overrides. A missing or
// malformed file is an error; absent keys keep their defaults.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv(ConfigPathEnv); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: cannot read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: cannot parse %s: %w", path, err)
		}
	}

	cfg.Strategy.APIKey = os.Getenv(GeminiAPIKeyEnv)
	if path := os.Getenv(DBPathEnv); path != "" {
		cfg.Sink.SQLitePath = path
	}
	if project := os.Getenv(BigQueryProjectEnv); project != "" {
		cfg.Sink.BigQuery.Project = project
	}

	return cfg, nil
}
