package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/kadanebench/internal/errors"
	"git.home.luguber.info/inful/kadanebench/internal/kadane"
)

// DefaultPath is the configuration file looked up when no flag is given.
const DefaultPath = "kadanebench.yaml"

// Config represents the harness configuration
type Config struct {
	ResultsDir string           `yaml:"results_dir"`
	Seed       uint64           `yaml:"seed"` // 0 selects a time-based seed
	Random     RandomConfig     `yaml:"random"`
	Comparison ComparisonConfig `yaml:"comparison"`
	Sweep      SweepConfig      `yaml:"sweep"`
	Logging    LoggingConfig    `yaml:"logging"`
	History    HistoryConfig    `yaml:"history"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// RandomConfig bounds the interactive random-array test
type RandomConfig struct {
	MaxSize int `yaml:"max_size"`
}

// ComparisonConfig drives the Standard vs Optimized performance comparison
type ComparisonConfig struct {
	Sizes []int `yaml:"sizes"`
	Min   int32 `yaml:"min"`
	Max   int32 `yaml:"max"`
}

// ValueRange is an inclusive [Min, Max] range for generated elements
type ValueRange struct {
	Min int32 `yaml:"min"`
	Max int32 `yaml:"max"`
}

// SweepConfig drives the comprehensive benchmark
type SweepConfig struct {
	Sizes  []int        `yaml:"sizes"`
	Ranges []ValueRange `yaml:"ranges"`
}

// LoggingConfig selects slog level and handler
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// HistoryConfig enables the SQLite run history when Path is set
type HistoryConfig struct {
	Path string `yaml:"path,omitempty"`
}

// MetricsConfig enables the Prometheus textfile dump when Textfile is set
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ResultsDir: "results",
		Random:     RandomConfig{MaxSize: 10000},
		Comparison: ComparisonConfig{
			Sizes: []int{100, 1000, 5000, 10000},
			Min:   -100,
			Max:   100,
		},
		Sweep: SweepConfig{
			Sizes:  []int{10, 50, 100, 500, 1000, 5000, 10000},
			Ranges: []ValueRange{{-10, 10}, {-100, 100}, {-1000, 1000}},
		},
		Logging: LoggingConfig{Level: string(LogLevelInfo), Format: string(LogFormatText)},
	}
}

// Load loads configuration from the specified file. A missing file yields
// the defaults; a present file is merged over them.
func Load(configPath string) (*Config, error) {
	// .env files are optional; existing variables win.
	if files := existingEnvFiles(); len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return nil, errors.ConfigLoad(files[0], err)
		}
	}

	cfg := Default()

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoad(configPath, err)
	}

	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, errors.ConfigLoad(configPath, fmt.Errorf("failed to unmarshal config: %w", err))
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.ResultsDir == "" {
		c.ResultsDir = d.ResultsDir
	}
	if c.Random.MaxSize == 0 {
		c.Random.MaxSize = d.Random.MaxSize
	}
	if c.Comparison.Min == 0 && c.Comparison.Max == 0 {
		c.Comparison.Min, c.Comparison.Max = d.Comparison.Min, d.Comparison.Max
	}
	c.Logging.Level = string(NormalizeLogLevel(c.Logging.Level))
	c.Logging.Format = string(NormalizeLogFormat(c.Logging.Format))
}

// Validate rejects configurations the harness cannot run.
func (c *Config) Validate() error {
	if c.Random.MaxSize < 1 || c.Random.MaxSize > kadane.MaxInputSize {
		return errors.ConfigInvalid("random.max_size", fmt.Sprintf("must be between 1 and %d", kadane.MaxInputSize))
	}
	if err := validateSizes("comparison.sizes", c.Comparison.Sizes); err != nil {
		return err
	}
	if c.Comparison.Min >= c.Comparison.Max {
		return errors.ConfigInvalid("comparison", "min must be less than max")
	}
	if err := validateSizes("sweep.sizes", c.Sweep.Sizes); err != nil {
		return err
	}
	if len(c.Sweep.Ranges) == 0 {
		return errors.ConfigInvalid("sweep.ranges", "must not be empty")
	}
	for i, r := range c.Sweep.Ranges {
		if r.Min >= r.Max {
			return errors.ConfigInvalid(fmt.Sprintf("sweep.ranges[%d]", i), "min must be less than max")
		}
	}
	return nil
}

func validateSizes(field string, sizes []int) error {
	if len(sizes) == 0 {
		return errors.ConfigInvalid(field, "must not be empty")
	}
	for _, n := range sizes {
		if n < 1 || n > kadane.MaxInputSize {
			return errors.ConfigInvalid(field, fmt.Sprintf("size %d outside 1..%d", n, kadane.MaxInputSize))
		}
	}
	return nil
}

// Init writes the default configuration to configPath.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.New(errors.CategoryConfig, errors.SeverityError,
			"configuration file already exists (use --force to overwrite)").WithContext("path", configPath)
	}

	cfg := Default()
	cfg.History.Path = "results/history.db"

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.InternalError("failed to marshal config", err)
	}
	data = append([]byte(initHeader), data...)

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return errors.FileSystemError("write config", configPath, err)
	}
	return nil
}

const initHeader = `# kadanebench configuration
# seed: 0 picks a time-based seed; set it for reproducible arrays.
# history.path enables the SQLite run history, metrics.textfile a Prometheus dump.
`

func existingEnvFiles() []string {
	var files []string
	for _, p := range []string{".env", ".env.local"} {
		if _, err := os.Stat(p); err == nil {
			files = append(files, p)
		}
	}
	return files
}
