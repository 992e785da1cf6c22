package sim

// Params holds the tunable constants spec.md §4 writes as literals —
// the ambient-stack config layer (config.Config) loads these from YAML
// and hands a Params value to New; DefaultParams reproduces spec.md's
// own numbers so the simulator works the same with no config at all.
type Params struct {
	Ambient float32 // °C, relaxation target

	// Heat-source tracking thresholds (spec.md §4.4 / Glossary).
	HeatSourceDelta float32 // cell is pruned from the working set once it cools to Ambient+this or below
	SeedSourceDelta float32 // cell enters the tracked heat-source set above Ambient+this

	// Thermal pass (§4.4).
	HeatEmissionRate   float32 // multiplies heatEmission*dt
	ConductionFactor   float32 // multiplies (tA-tB)*avgConductivity*dt
	AmbientRelaxRate   float32 // multiplies (temp-ambient)*dt

	// Combustion (§4.5).
	FireTemperature   float32 // °C a newly ignited cell is set to
	CombustionToNeighborScale float32 // combustionEnergy * this = °C added to neighbors

	// Explosion (§4.5).
	ExplosionVelocityScale float32 // (1-dist/radius)*power*this
	ExplosionFireFraction  float32 // fire disk radius = radius*this
	ExplosionMinTemp       float32
	ExplosionMaxTemp       float32

	// Reaction engine (§4.6).
	AcidMetalProb      float32
	AcidMetalHeat      float32
	HydrogenIgniteTemp float32
	HydrogenIgniteProb float32
	HydrogenExplosionRadius float32
	HydrogenExplosionPower  float32
}

// DefaultParams reproduces every numeric literal spec.md §4 names.
func DefaultParams() Params {
	return Params{
		Ambient: 20,

		HeatSourceDelta: 30,
		SeedSourceDelta: 50,

		HeatEmissionRate: 0.1,
		ConductionFactor: 0.5 * 0.25,
		AmbientRelaxRate: 0.02,

		FireTemperature:           800,
		CombustionToNeighborScale: 10,

		ExplosionVelocityScale: 0.1,
		ExplosionFireFraction:  0.4,
		ExplosionMinTemp:       1000,
		ExplosionMaxTemp:       1500,

		AcidMetalProb:      0.05,
		AcidMetalHeat:      10,
		HydrogenIgniteTemp: 500,
		HydrogenIgniteProb: 0.30,
		HydrogenExplosionRadius: 30,
		HydrogenExplosionPower:  100,
	}
}
