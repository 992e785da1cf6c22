package main

import (
	"math"

	"github.com/pthm-cable/grainfall/material"
	"github.com/pthm-cable/grainfall/sim"
)

// FitnessEvaluator scores a candidate parameter set by how closely it
// reproduces spec.md §8b's wood-ignition timing windows (fire within
// 30 ticks, smoke within 90 more, air within 300 more) across several
// seeds. Adapted from the teacher's seeds-averaged evaluator shape in
// cmd/optimize/fitness.go.
type FitnessEvaluator struct {
	params   *ParamVector
	seeds    []int64
	maxTicks int
}

// NewFitnessEvaluator builds an evaluator over the given seeds.
func NewFitnessEvaluator(params *ParamVector, seeds []int64, maxTicks int) *FitnessEvaluator {
	return &FitnessEvaluator{params: params, seeds: seeds, maxTicks: maxTicks}
}

// Evaluate runs the wood-ignition scenario once per seed and returns
// the mean squared deviation from the target windows; lower is better.
func (fe *FitnessEvaluator) Evaluate(raw []float64) float64 {
	cand := fe.params.toCandidate(raw)

	var total float64
	for _, seed := range fe.seeds {
		fireTick, smokeTick, airTick := fe.runScenario(cand, seed)
		total += fe.score(fireTick, smokeTick, airTick)
	}
	return total / float64(len(fe.seeds))
}

func (fe *FitnessEvaluator) runScenario(cand candidate, seed int64) (fireTick, smokeTick, airTick int) {
	reg := material.NewDefaultRegistry()
	fire := *reg.GetByID(reg.IDOf("fire"))
	fire.Lifetime = &material.Range{Min: cand.fireLifetimeMin, Max: cand.fireLifetimeMax}
	reg.Register(fire)

	smoke := *reg.GetByID(reg.IDOf("smoke"))
	smoke.Lifetime = &material.Range{Min: cand.smokeLifetimeMin, Max: cand.smokeLifetimeMax}
	reg.Register(smoke)

	w := sim.New(20, 20, 1, sim.WithRegistry(reg), sim.WithParams(cand.params()), sim.WithSeed(seed))
	w.Set(5, 5, "wood", 400)

	fireTick, smokeTick, airTick = -1, -1, -1
	for t := 1; t <= fe.maxTicks; t++ {
		w.Update(1)
		name := w.Get(5, 5)
		switch {
		case fireTick < 0 && name == "fire":
			fireTick = t
		case smokeTick < 0 && fireTick >= 0 && name == "smoke":
			smokeTick = t
		case airTick < 0 && smokeTick >= 0 && name == "air":
			airTick = t
		}
		if airTick >= 0 {
			break
		}
	}
	return
}

// score penalizes ticks outside their spec-defined window and, within
// the window, favors landing near its midpoint.
func (fe *FitnessEvaluator) score(fireTick, smokeTick, airTick int) float64 {
	penalty := func(tick, windowMin, windowMax int) float64 {
		if tick < 0 {
			return float64(fe.maxTicks * fe.maxTicks)
		}
		if tick < windowMin || tick > windowMax {
			d := math.Min(math.Abs(float64(tick-windowMin)), math.Abs(float64(tick-windowMax)))
			return 1000 + d*d
		}
		mid := float64(windowMin+windowMax) / 2
		return (float64(tick) - mid) * (float64(tick) - mid)
	}

	fireScore := penalty(fireTick, 1, 30)

	smokeScore := 0.0
	if fireTick >= 0 {
		smokeScore = penalty(smokeTick, fireTick, fireTick+90)
	} else {
		smokeScore = float64(fe.maxTicks * fe.maxTicks)
	}

	airScore := 0.0
	if smokeTick >= 0 {
		airScore = penalty(airTick, smokeTick, smokeTick+300)
	} else {
		airScore = float64(fe.maxTicks * fe.maxTicks)
	}

	return fireScore + smokeScore + airScore
}
