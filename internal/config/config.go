package config

import (
	"fmt"
	"os"

	"github.com/PandaNeatBook/analizza-log-traccia3/internal/engine"
	"github.com/PandaNeatBook/analizza-log-traccia3/internal/logging"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	DefaultInputPath  = "test_data/test_simple.json"
	DefaultOutputPath = "risultati.json"
	dfltLogLevel      = "info"
)

// Conf is the complete configuration of one run.
// Empty paths are left for the command line layer to prompt for.
type Conf struct {
	srcPath    string
	InputPath  string               `yaml:"inputPath"`
	OutputPath string               `yaml:"outputPath"`
	Columns    engine.ColumnMapping `yaml:"columns"`
	Where      string               `yaml:"where"`
	Strict     bool                 `yaml:"strict"`
	Concurrent bool                 `yaml:"concurrent"`
	Logging    logging.Conf         `yaml:"logging"`
}

// New returns a configuration with the default column mapping.
func New() *Conf {
	return &Conf{Columns: engine.DefaultColumns}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (*Conf, error) {
	conf := New()
	if path == "" {
		return conf, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}
	if err := yaml.Unmarshal(raw, conf); err != nil {
		return nil, fmt.Errorf("cannot parse config %s: %w", path, err)
	}
	conf.srcPath = path
	return conf, nil
}

// SourcePath returns the file the configuration was read from, if any.
func (c *Conf) SourcePath() string {
	return c.srcPath
}

// ValidateAndDefaults fills unset values and rejects unusable ones.
func (c *Conf) ValidateAndDefaults() error {
	if c.Logging.Level == "" {
		c.Logging.Level = dfltLogLevel
	}
	if c.Columns.User < 0 || c.Columns.Event < 0 {
		return fmt.Errorf("column indices must not be negative (user: %d, event: %d)",
			c.Columns.User, c.Columns.Event)
	}
	if c.Columns.User == c.Columns.Event {
		log.Warn().
			Int("column", c.Columns.User).
			Msg("user and event share the same column")
	}
	return nil
}

// ResolvePaths fills the paths still empty with their defaults and reports
// which ones were defaulted.
func (c *Conf) ResolvePaths() (inputDefaulted, outputDefaulted bool) {
	if c.InputPath == "" {
		c.InputPath = DefaultInputPath
		inputDefaulted = true
	}
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPath
		outputDefaulted = true
	}
	return
}

// Pipeline returns the paths handed to the engine.
func (c *Conf) Pipeline() engine.Config {
	return engine.Config{InputPath: c.InputPath, OutputPath: c.OutputPath}
}
