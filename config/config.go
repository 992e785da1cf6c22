// Package config provides configuration loading and access for the
// falling-sand simulation: screen/host settings and the tunable
// thermal/combustion/reaction constants sim.Params exposes.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/grainfall/sim"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Grid       GridConfig       `yaml:"grid"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Thermal    ThermalConfig    `yaml:"thermal"`
	Combustion CombustionConfig `yaml:"combustion"`
	Explosion  ExplosionConfig  `yaml:"explosion"`
	Reaction   ReactionConfig   `yaml:"reaction"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading.
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds the sandbox host's window settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// GridConfig holds the simulation lattice's cell size.
type GridConfig struct {
	CellSize int `yaml:"cell_size"`
}

// PhysicsConfig holds the per-tick time step.
type PhysicsConfig struct {
	DT float64 `yaml:"dt"`
}

// ThermalConfig mirrors sim.Params' diffusion-related fields.
type ThermalConfig struct {
	Ambient          float64 `yaml:"ambient"`
	HeatSourceDelta  float64 `yaml:"heat_source_delta"`
	SeedSourceDelta  float64 `yaml:"seed_source_delta"`
	HeatEmissionRate float64 `yaml:"heat_emission_rate"`
	ConductionFactor float64 `yaml:"conduction_factor"`
	AmbientRelaxRate float64 `yaml:"ambient_relax_rate"`
}

// CombustionConfig mirrors sim.Params' combustion-related fields.
type CombustionConfig struct {
	FireTemperature           float64 `yaml:"fire_temperature"`
	CombustionToNeighborScale float64 `yaml:"combustion_to_neighbor_scale"`
}

// ExplosionConfig mirrors sim.Params' explosion-related fields.
type ExplosionConfig struct {
	VelocityScale float64 `yaml:"velocity_scale"`
	FireFraction  float64 `yaml:"fire_fraction"`
	MinTemp       float64 `yaml:"min_temp"`
	MaxTemp       float64 `yaml:"max_temp"`
}

// ReactionConfig mirrors sim.Params' reaction-engine fields.
type ReactionConfig struct {
	AcidMetalProb           float64 `yaml:"acid_metal_prob"`
	AcidMetalHeat           float64 `yaml:"acid_metal_heat"`
	HydrogenIgniteTemp      float64 `yaml:"hydrogen_ignite_temp"`
	HydrogenIgniteProb      float64 `yaml:"hydrogen_ignite_prob"`
	HydrogenExplosionRadius float64 `yaml:"hydrogen_explosion_radius"`
	HydrogenExplosionPower  float64 `yaml:"hydrogen_explosion_power"`
}

// TelemetryConfig controls CSV stat export.
type TelemetryConfig struct {
	Enabled        bool   `yaml:"enabled"`
	OutputDir      string `yaml:"output_dir"`
	SampleInterval int    `yaml:"sample_interval"` // ticks between samples
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32 float32 // Physics.DT as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded
// defaults if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()
	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.Physics.DT)
}

// Params translates the loaded config into a sim.Params value for
// sim.WithParams.
func (c *Config) Params() sim.Params {
	t, cb, ex, r := c.Thermal, c.Combustion, c.Explosion, c.Reaction
	return sim.Params{
		Ambient:         float32(t.Ambient),
		HeatSourceDelta: float32(t.HeatSourceDelta),
		SeedSourceDelta: float32(t.SeedSourceDelta),

		HeatEmissionRate: float32(t.HeatEmissionRate),
		ConductionFactor: float32(t.ConductionFactor),
		AmbientRelaxRate: float32(t.AmbientRelaxRate),

		FireTemperature:           float32(cb.FireTemperature),
		CombustionToNeighborScale: float32(cb.CombustionToNeighborScale),

		ExplosionVelocityScale: float32(ex.VelocityScale),
		ExplosionFireFraction:  float32(ex.FireFraction),
		ExplosionMinTemp:       float32(ex.MinTemp),
		ExplosionMaxTemp:       float32(ex.MaxTemp),

		AcidMetalProb:           float32(r.AcidMetalProb),
		AcidMetalHeat:           float32(r.AcidMetalHeat),
		HydrogenIgniteTemp:      float32(r.HydrogenIgniteTemp),
		HydrogenIgniteProb:      float32(r.HydrogenIgniteProb),
		HydrogenExplosionRadius: float32(r.HydrogenExplosionRadius),
		HydrogenExplosionPower:  float32(r.HydrogenExplosionPower),
	}
}
