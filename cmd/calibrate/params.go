// Package main runs CMA-ES optimization to tune material constants so
// the wood-ignition scenario (spec.md §8b) lands inside its timing
// windows. Adapted from the teacher's ecosystem-parameter optimizer:
// same ParamVector/Normalize/Denormalize/Clamp shape, re-targeted at
// sim.Params and material constants instead of energy/reproduction knobs.
package main

import "github.com/pthm-cable/grainfall/sim"

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string
	Min     float64
	Max     float64
	Default float64
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the parameter set that controls the timing of
// wood's ignite -> fire -> smoke -> air lifecycle.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "fire_lifetime_min", Min: 0.1, Max: 2.0, Default: 0.2},
			{Name: "fire_lifetime_max", Min: 0.2, Max: 3.0, Default: 0.6},
			{Name: "smoke_lifetime_min", Min: 0.5, Max: 4.0, Default: 1.5},
			{Name: "smoke_lifetime_max", Min: 1.0, Max: 6.0, Default: 3.0},
			{Name: "combustion_to_neighbor_scale", Min: 2.0, Max: 20.0, Default: 10.0},
		},
	}
}

func (pv *ParamVector) Dim() int { return len(pv.Specs) }

func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

func (pv *ParamVector) Normalize(raw []float64) []float64 {
	out := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		out[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return out
}

func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	out := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		out[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return out
}

func (pv *ParamVector) Clamp(v []float64) []float64 {
	out := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := v[i]
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		out[i] = val
	}
	return out
}

// candidate holds one denormalized parameter set applied to concrete
// material/engine knobs.
type candidate struct {
	fireLifetimeMin, fireLifetimeMax   float32
	smokeLifetimeMin, smokeLifetimeMax float32
	combustionToNeighborScale          float32
}

func (pv *ParamVector) toCandidate(values []float64) candidate {
	v := pv.Clamp(values)
	return candidate{
		fireLifetimeMin:           float32(v[0]),
		fireLifetimeMax:           float32(v[1]),
		smokeLifetimeMin:          float32(v[2]),
		smokeLifetimeMax:          float32(v[3]),
		combustionToNeighborScale: float32(v[4]),
	}
}

// params builds a sim.Params with the candidate's combustion constant
// substituted for the default.
func (c candidate) params() sim.Params {
	p := sim.DefaultParams()
	p.CombustionToNeighborScale = c.combustionToNeighborScale
	return p
}
