// Package material defines the falling-sand material registry: named
// property records identified by small integer ids, looked up by the
// simulation core on every cell update.
package material

// State selects which movement kernel a material's cells fall into.
type State uint8

const (
	Solid State = iota
	Liquid
	Gas
	Powder
)

func (s State) String() string {
	switch s {
	case Solid:
		return "solid"
	case Liquid:
		return "liquid"
	case Gas:
		return "gas"
	case Powder:
		return "powder"
	default:
		return "unknown"
	}
}

// Solubility tags how a material dissolves; "" means insoluble.
type Solubility string

// Range is an inclusive [Min, Max] span, used for lifetime seeding.
type Range struct {
	Min, Max float32
}

// RGBA is one color table entry.
type RGBA struct {
	R, G, B, A uint8
}

// ID is a material's small positive integer identity. ID 0 is air.
type ID uint8

const AirID ID = 0

// Material is an immutable property record. Callers register one
// through Registry.Register; the registry assigns (or reuses) its ID.
type Material struct {
	Name  string
	State State

	Density     float32 // signed; negative = buoyant gas
	Temperature float32 // default equilibrium, °C

	MeltingPoint   *float32 // °C, nil = never melts
	BoilingPoint   *float32
	IgnitionPoint  *float32

	ThermalConductivity float32 // > 0
	SpecificHeat        float32 // > 0

	Flammability         float32 // [0,1]
	Hardness             float32
	ElectricConductivity float32
	PH                   *float32
	Reactivity           float32 // [0,1]
	Solubility           Solubility

	Viscosity float32 // [0,1], liquids
	Friction  float32 // [0,1], powders

	Color []RGBA // non-empty
	Alpha *uint8 // optional override

	Lifetime *Range // optional [min,max] seconds

	Produces string // material spawned when lifetime ends, "" = air

	SolidForm string // freeze target
	LiquidForm string // melt / condense target
	GasForm    string // boil target

	SupportsCombustion bool
	CombustionProducts string
	CombustionEnergy   float32 // MJ/kg

	Explosive       bool
	ExplosionRadius float32
	ExplosionPower  float32

	HeatEmission float32 // °C/s injected into neighbors

	Immovable bool // solids that never swap
	Metal     bool // acid/metal reaction predicate
}

// f32 unpacks an optional float: (*v, true), or (0, false) if v is nil.
func f32(v *float32) (float32, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}

// MeltingPointF returns (value, ok).
func (m *Material) MeltingPointF() (float32, bool) { return f32(m.MeltingPoint) }

// BoilingPointF returns (value, ok).
func (m *Material) BoilingPointF() (float32, bool) { return f32(m.BoilingPoint) }

// IgnitionPointF returns (value, ok).
func (m *Material) IgnitionPointF() (float32, bool) { return f32(m.IgnitionPoint) }

// HasLifetime reports whether this material is transient.
func (m *Material) HasLifetime() bool { return m.Lifetime != nil }
