package material

// fp returns a pointer to v, for the optional *float32 property fields.
func fp(v float32) *float32 { return &v }

func airPreset() Material {
	return Material{
		Name:                "air",
		State:               Gas,
		Density:             0,
		Temperature:         20,
		ThermalConductivity: 0.05,
		SpecificHeat:        1.0,
		SupportsCombustion:  true, // spec.md §9 open question: explicit, not name-inferred
		Color:               []RGBA{{0, 0, 0, 0}},
	}
}

// NewDefaultRegistry returns a Registry seeded with the default
// catalogue named in spec.md §4.1 and the Glossary's worked examples
// (water/sand/stone/lava density-and-transition chain).
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, m := range defaultCatalogue() {
		r.Register(m)
	}
	return r
}

func defaultCatalogue() []Material {
	return []Material{
		{
			Name: "water", State: Liquid,
			Density: 1000, Temperature: 20,
			MeltingPoint: fp(0), SolidForm: "ice",
			BoilingPoint: fp(100), GasForm: "steam",
			ThermalConductivity: 0.6, SpecificHeat: 4.18,
			Viscosity: 0.1,
			Color:     []RGBA{{32, 90, 200, 210}, {40, 110, 220, 210}},
		},
		{
			Name: "ice", State: Solid, Immovable: true,
			Density: 920, Temperature: -5,
			MeltingPoint: fp(0), LiquidForm: "water",
			ThermalConductivity: 2.2, SpecificHeat: 2.1,
			Hardness: 0.3,
			Color:    []RGBA{{175, 220, 255, 255}, {190, 230, 255, 255}},
		},
		{
			Name: "steam", State: Gas,
			Density: -0.6, Temperature: 110,
			BoilingPoint: fp(100), LiquidForm: "water",
			ThermalConductivity: 0.1, SpecificHeat: 2.0,
			Color: []RGBA{{225, 225, 230, 120}, {210, 210, 220, 100}},
		},
		{
			Name: "sand", State: Powder,
			Density: 1600, Temperature: 20,
			MeltingPoint: fp(1700), LiquidForm: "glass",
			ThermalConductivity: 0.3, SpecificHeat: 0.8,
			Friction: 0.25, Hardness: 0.2,
			Color: []RGBA{{194, 178, 128, 255}, {210, 190, 140, 255}, {180, 165, 120, 255}},
		},
		{
			Name: "glass", State: Solid, Immovable: true,
			Density: 2500, Temperature: 20,
			ThermalConductivity: 0.8, SpecificHeat: 0.84,
			Hardness: 0.6, ElectricConductivity: 0,
			Color: []RGBA{{200, 230, 230, 200}, {210, 235, 235, 190}},
		},
		{
			Name: "stone", State: Solid, Immovable: true,
			Density: 2700, Temperature: 20,
			MeltingPoint: fp(1200), LiquidForm: "lava",
			ThermalConductivity: 2.0, SpecificHeat: 0.84,
			Hardness: 0.9,
			Color:    []RGBA{{120, 120, 120, 255}, {110, 110, 110, 255}, {130, 130, 130, 255}},
		},
		{
			Name: "lava", State: Liquid,
			Density: 3100, Temperature: 1200,
			MeltingPoint: fp(1200), SolidForm: "obsidian",
			ThermalConductivity: 1.5, SpecificHeat: 1.6,
			Viscosity: 0.85, HeatEmission: 40,
			Color: []RGBA{{200, 60, 0, 255}, {255, 120, 0, 255}, {255, 170, 20, 255}},
		},
		{
			Name: "obsidian", State: Solid, Immovable: true,
			Density: 2600, Temperature: 20,
			ThermalConductivity: 1.3, SpecificHeat: 0.84,
			Hardness: 0.95,
			Color:    []RGBA{{20, 15, 25, 255}, {30, 22, 35, 255}},
		},
		{
			Name: "dirt", State: Powder,
			Density: 1500, Temperature: 20,
			ThermalConductivity: 0.4, SpecificHeat: 0.9,
			Friction: 0.4, Hardness: 0.15,
			Color: []RGBA{{101, 67, 33, 255}, {90, 58, 28, 255}},
		},
		{
			Name: "mud", State: Liquid,
			Density: 1800, Temperature: 20,
			ThermalConductivity: 0.5, SpecificHeat: 1.2,
			Viscosity: 0.9,
			Color:     []RGBA{{90, 60, 40, 255}, {80, 52, 34, 255}},
		},
		{
			Name: "clay", State: Powder,
			Density: 1800, Temperature: 20,
			ThermalConductivity: 0.35, SpecificHeat: 0.9,
			Friction: 0.6, Hardness: 0.3,
			Color: []RGBA{{150, 110, 90, 255}, {160, 120, 100, 255}},
		},
		{
			Name: "iron", State: Solid, Immovable: true, Metal: true,
			Density: 7870, Temperature: 20,
			MeltingPoint: fp(1538), LiquidForm: "lava",
			ThermalConductivity: 8.0, SpecificHeat: 0.45,
			Hardness: 0.8, ElectricConductivity: 1.0,
			Color: []RGBA{{180, 180, 190, 255}, {160, 160, 170, 255}},
		},
		{
			Name: "wood", State: Solid, Immovable: true,
			Density: 700, Temperature: 20,
			IgnitionPoint: fp(300),
			ThermalConductivity: 0.15, SpecificHeat: 1.76,
			Flammability: 0.8, Hardness: 0.4,
			SupportsCombustion: false, CombustionProducts: "smoke", CombustionEnergy: 15,
			Color: []RGBA{{110, 70, 40, 255}, {96, 60, 34, 255}},
		},
		{
			Name: "coal", State: Powder,
			Density: 1350, Temperature: 20,
			IgnitionPoint: fp(400),
			ThermalConductivity: 0.2, SpecificHeat: 1.0,
			Flammability: 0.7, Friction: 0.3, Hardness: 0.5,
			CombustionProducts: "smoke", CombustionEnergy: 30,
			Color: []RGBA{{40, 40, 40, 255}, {30, 30, 30, 255}},
		},
		{
			Name: "oil", State: Liquid,
			Density: 900, Temperature: 20,
			IgnitionPoint: fp(300),
			ThermalConductivity: 0.15, SpecificHeat: 2.0,
			Flammability: 0.9, Viscosity: 0.4,
			CombustionProducts: "smoke", CombustionEnergy: 42,
			Color: []RGBA{{50, 38, 22, 230}, {40, 30, 18, 230}},
		},
		{
			Name: "gunpowder", State: Powder,
			Density: 1000, Temperature: 20,
			IgnitionPoint: fp(170),
			ThermalConductivity: 0.1, SpecificHeat: 1.0,
			Flammability: 1.0, Friction: 0.2,
			Explosive: true, ExplosionRadius: 30, ExplosionPower: 100,
			Color: []RGBA{{60, 60, 60, 255}, {70, 70, 70, 255}},
		},
		{
			Name: "fire", State: Gas,
			Density: -0.5, Temperature: 800,
			Lifetime: &Range{Min: 0.2, Max: 0.6}, Produces: "smoke",
			ThermalConductivity: 0.3, SpecificHeat: 1.0,
			SupportsCombustion: true, HeatEmission: 30,
			Color: []RGBA{{255, 200, 0, 255}, {255, 120, 0, 255}, {255, 60, 0, 255}},
		},
		{
			Name: "smoke", State: Gas,
			Density: -0.3, Temperature: 150,
			Lifetime: &Range{Min: 1.5, Max: 3.0}, Produces: "",
			ThermalConductivity: 0.08, SpecificHeat: 1.0,
			Color: []RGBA{{90, 90, 90, 160}, {70, 70, 70, 140}},
		},
		{
			Name: "oxygen", State: Gas,
			Density: 0.3, Temperature: 20,
			ThermalConductivity: 0.1, SpecificHeat: 0.92,
			SupportsCombustion: true,
			Color:               []RGBA{{200, 230, 255, 40}},
		},
		{
			Name: "hydrogen", State: Gas,
			Density: -0.9, Temperature: 20,
			IgnitionPoint: fp(500),
			ThermalConductivity: 0.18, SpecificHeat: 14.3,
			Flammability: 1.0, Reactivity: 0.9,
			Color: []RGBA{{230, 240, 255, 40}},
		},
		{
			Name: "methane", State: Gas,
			Density: -0.5, Temperature: 20,
			IgnitionPoint: fp(580),
			ThermalConductivity: 0.09, SpecificHeat: 2.2,
			Flammability: 1.0,
			CombustionProducts: "co2", CombustionEnergy: 55,
			Color: []RGBA{{180, 255, 180, 50}},
		},
		{
			Name: "co2", State: Gas,
			Density: 0.8, Temperature: 20,
			ThermalConductivity: 0.07, SpecificHeat: 0.84,
			Color: []RGBA{{210, 210, 210, 50}},
		},
		{
			Name: "acid", State: Liquid,
			Density: 1200, Temperature: 20,
			PH: fp(2), Reactivity: 0.8,
			ThermalConductivity: 0.4, SpecificHeat: 2.5,
			Viscosity: 0.2,
			Color:     []RGBA{{150, 255, 60, 220}, {170, 255, 90, 220}},
		},
		{
			Name: "salt", State: Powder,
			Density: 2160, Temperature: 20,
			ThermalConductivity: 0.25, SpecificHeat: 0.88,
			Friction: 0.3, Hardness: 0.25, Solubility: "water",
			Color: []RGBA{{245, 245, 240, 255}, {235, 235, 228, 255}},
		},
		{
			Name: "sulfur", State: Powder,
			Density: 2070, Temperature: 20,
			IgnitionPoint: fp(250),
			ThermalConductivity: 0.2, SpecificHeat: 0.71,
			Flammability: 0.6, Friction: 0.35, Hardness: 0.3,
			CombustionProducts: "smoke", CombustionEnergy: 9,
			Color: []RGBA{{220, 220, 40, 255}, {210, 205, 30, 255}},
		},
	}
}
