package sim

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/zarena/planner"
)

// Config is the YAML-backed engine configuration. LoadConfig decodes the
// file over DefaultConfig, so fields absent from a partial file keep their
// defaults; a field the file sets explicitly, zero included, is kept as is.
type Config struct {
	// Planner selects the zombie planner kind (see planner.Kind values).
	Planner string `yaml:"planner"`
	// Ratio is the discretization ratio for grid and VG planners.
	Ratio int `yaml:"ratio"`
	// CleanThreshold is the VG vertex deduplication radius.
	CleanThreshold float64 `yaml:"cleanThreshold"`
	// SalvageThreshold is the endpoint-drift bound for path reuse.
	SalvageThreshold float64 `yaml:"salvageThreshold"`
	// RRTBestEffort keeps partial RRT extensions toward blocked samples.
	RRTBestEffort bool `yaml:"rrtBestEffort"`
	// RRTTimeoutMS bounds one RRT growth attempt, in milliseconds.
	RRTTimeoutMS int `yaml:"rrtTimeoutMs"`
	// FramePeriodMS is the physics/render tick period, in milliseconds.
	FramePeriodMS int `yaml:"framePeriodMs"`
	// PlannerPeriodMS is the planner tick period, in milliseconds.
	PlannerPeriodMS int `yaml:"plannerPeriodMs"`
	// DebugPaths draws zombie path overlays in rendered frames.
	DebugPaths bool `yaml:"debugPaths"`
	// Seed seeds the RRT sampler; zero seeds from entropy.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns the shipped tuning.
func DefaultConfig() Config {
	return Config{
		Planner:          string(planner.KindVGAStar),
		Ratio:            planner.DefaultRatio,
		CleanThreshold:   10,
		SalvageThreshold: planner.DefaultSalvageThreshold,
		RRTTimeoutMS:     int(planner.DefaultRRTTimeout / time.Millisecond),
		FramePeriodMS:    int(DefaultFramePeriod / time.Millisecond),
		PlannerPeriodMS:  int(DefaultPlannerPeriod / time.Millisecond),
	}
}

// LoadConfig reads a YAML config file over the defaults and validates it.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the configuration for nonsensical values.
func (c Config) Validate() error {
	switch planner.Kind(c.Planner) {
	case planner.KindGridDijkstra, planner.KindGridAStar,
		planner.KindVGDijkstra, planner.KindVGAStar, planner.KindRRT:
	default:
		return fmt.Errorf("%w: unknown planner %q", ErrBadConfig, c.Planner)
	}
	if c.Ratio < 1 {
		return fmt.Errorf("%w: ratio %d", ErrBadConfig, c.Ratio)
	}
	if c.FramePeriodMS <= 0 || c.PlannerPeriodMS <= 0 {
		return fmt.Errorf("%w: tick periods must be positive", ErrBadConfig)
	}

	return nil
}

// FramePeriod returns the physics tick period as a duration.
func (c Config) FramePeriod() time.Duration {
	return time.Duration(c.FramePeriodMS) * time.Millisecond
}

// PlannerPeriod returns the planner tick period as a duration.
func (c Config) PlannerPeriod() time.Duration {
	return time.Duration(c.PlannerPeriodMS) * time.Millisecond
}

// PlannerKind returns the configured planner kind.
func (c Config) PlannerKind() planner.Kind {
	return planner.Kind(c.Planner)
}

// PlannerParams folds the planner-relevant settings into construction
// parameters for the registry.
func (c Config) PlannerParams() planner.Params {
	return planner.Params{
		Ratio:            c.Ratio,
		CleanThreshold:   c.CleanThreshold,
		SalvageThreshold: c.SalvageThreshold,
		BestEffort:       c.RRTBestEffort,
		Timeout:          time.Duration(c.RRTTimeoutMS) * time.Millisecond,
		Seed:             c.Seed,
	}
}
