package persuade

import (
	"fmt"
	"math"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/persuade/planner"
	"github.com/arloliu/persuade/strategy"
)

// SearchConfig controls the policy grid search.
type SearchConfig struct {
	// GridResolution is the number of grid points per axis over [0,1].
	// The default 11 gives a step of 0.1. Must be >= 2.
	GridResolution int `yaml:"gridResolution"`

	// Workers is the number of goroutines evaluating grid rows.
	// Default: 1 (sequential).
	Workers int `yaml:"workers"`
}

// NoiseConfig controls the noisy-oracle planner mode.
type NoiseConfig struct {
	// Enabled perturbs beliefs with Gaussian noise before planning.
	Enabled bool `yaml:"enabled"`

	// StdDev is the noise standard deviation.
	// Default: 0.02 when Enabled.
	StdDev float64 `yaml:"stdDev"`

	// Seed seeds the noise source. Required when Enabled.
	Seed *int64 `yaml:"seed"`
}

// PlannerConfig controls the budgeted threshold planner.
type PlannerConfig struct {
	// QueryBudget is the segment budget K used by PlanThresholds.
	// Must satisfy 0 <= K < n for the distribution being planned.
	QueryBudget int `yaml:"queryBudget"`

	// QueryCost is subtracted once per split. Must be >= 0.
	QueryCost float64 `yaml:"queryCost"`

	// Noise configures belief perturbation.
	Noise NoiseConfig `yaml:"noise"`
}

// Config is the configuration for the Engine.
type Config struct {
	// Search controls the policy grid search.
	Search SearchConfig `yaml:"search"`

	// Planner controls threshold planning.
	Planner PlannerConfig `yaml:"planner"`

	// Tolerance is the allowed absolute deviation of receiver weights and
	// distribution probabilities from summing to 1.
	// Default: 1e-6.
	Tolerance float64 `yaml:"tolerance"`

	// CacheResults memoizes engine results keyed by an input fingerprint.
	CacheResults bool `yaml:"cacheResults"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		Search: SearchConfig{
			GridResolution: strategy.DefaultResolution,
			Workers:        1,
		},
		Planner: PlannerConfig{
			QueryBudget: 0,
			QueryCost:   0,
		},
		Tolerance: 1e-6,
	}
}

// SetDefaults fills in zero-valued fields with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Search.GridResolution == 0 {
		cfg.Search.GridResolution = defaults.Search.GridResolution
	}
	if cfg.Search.Workers == 0 {
		cfg.Search.Workers = defaults.Search.Workers
	}
	if cfg.Planner.Noise.Enabled && cfg.Planner.Noise.StdDev == 0 {
		cfg.Planner.Noise.StdDev = planner.DefaultNoiseStdDev
	}
	if cfg.Tolerance == 0 {
		cfg.Tolerance = defaults.Tolerance
	}
}

// Validate checks configuration constraints.
//
// Rules:
//   - Search.GridResolution >= 2
//   - Search.Workers >= 1
//   - Planner.QueryBudget >= 0
//   - Planner.QueryCost finite and >= 0
//   - Planner.Noise.Seed set when noise is enabled, StdDev >= 0
//   - Tolerance in (0, 1)
//
// Returns:
//   - error: Error wrapping ErrInvalidConfig, nil if valid
func (cfg *Config) Validate() error {
	if cfg.Search.GridResolution < 2 {
		return fmt.Errorf("%w (got %d)", ErrInvalidResolution, cfg.Search.GridResolution)
	}
	if cfg.Search.Workers < 1 {
		return fmt.Errorf("%w: search workers must be >= 1, got %d", ErrInvalidConfig, cfg.Search.Workers)
	}
	if cfg.Planner.QueryBudget < 0 {
		return fmt.Errorf("%w: query budget must be >= 0, got %d", ErrInvalidConfig, cfg.Planner.QueryBudget)
	}
	if !finiteNonNegative(cfg.Planner.QueryCost) {
		return fmt.Errorf("%w: query cost must be a finite value >= 0, got %v", ErrInvalidConfig, cfg.Planner.QueryCost)
	}
	if cfg.Planner.Noise.Enabled {
		if cfg.Planner.Noise.Seed == nil {
			return ErrNoiseSeedRequired
		}
		if !finiteNonNegative(cfg.Planner.Noise.StdDev) {
			return fmt.Errorf("%w: noise standard deviation must be a finite value >= 0, got %v", ErrInvalidConfig, cfg.Planner.Noise.StdDev)
		}
	}
	if !(cfg.Tolerance > 0 && cfg.Tolerance < 1) {
		return fmt.Errorf("%w: tolerance must be in (0, 1), got %v", ErrInvalidConfig, cfg.Tolerance)
	}

	return nil
}

// ValidateWithWarnings logs warnings for values that are valid but unlikely
// to be what the operator wants.
//
// This is called after Validate() in NewEngine().
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	// Search cost grows with resolution^2 policies times the population size.
	if cfg.Search.GridResolution > 201 {
		logger.Warn(
			"grid resolution is very high, searches may be slow",
			"gridResolution", cfg.Search.GridResolution,
			"policies", cfg.Search.GridResolution*cfg.Search.GridResolution,
		)
	}

	if cpus := runtime.NumCPU(); cfg.Search.Workers > cpus {
		logger.Warn(
			"search workers exceed available CPUs",
			"workers", cfg.Search.Workers,
			"cpus", cpus,
		)
	}

	if cfg.Planner.Noise.Enabled && cfg.Planner.Noise.StdDev > 0.25 {
		logger.Warn(
			"noise standard deviation is large, most perturbed beliefs will clip to 0 or 1",
			"stdDev", cfg.Planner.Noise.StdDev,
		)
	}

	if cfg.Tolerance > 1e-2 {
		logger.Warn(
			"tolerance is loose, unnormalized inputs will be accepted",
			"tolerance", cfg.Tolerance,
		)
	}
}

// TestConfig returns a configuration for fast, deterministic tests.
//
// It keeps the default grid, enables result caching and uses a tight
// tolerance so sloppy fixtures fail early.
//
// Returns:
//   - Config: Configuration for tests
func TestConfig() Config {
	cfg := DefaultConfig()
	cfg.Tolerance = 1e-9
	cfg.CacheResults = true

	return cfg
}

// ParseConfig decodes YAML into a Config, applies defaults and validates it.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - Config: Validated configuration
//   - error: Decode error or error wrapping ErrInvalidConfig
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfig reads a YAML configuration file.
//
// Parameters:
//   - path: File path
//
// Returns:
//   - Config: Validated configuration
//   - error: Read, decode or validation error
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	return ParseConfig(data)
}

func finiteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
