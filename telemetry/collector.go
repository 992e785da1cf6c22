package telemetry

import "github.com/pthm-cable/grainfall/material"

// Collector scans the simulation grid on demand and merges in event
// counts since the last sample, producing a Sample, per spec.md §8.
// Grounded on telemetry/collector.go's accumulate-then-Flush shape,
// generalized from entity event counters to a full grid scan because
// falling-sand state lives in the grid itself rather than in discrete
// entities.
type Collector struct {
	dt float32
}

// NewCollector creates a collector. dt is the simulation's seconds-per-tick.
func NewCollector(dt float32) *Collector {
	return &Collector{dt: dt}
}

// EventSource supplies the event tallies accumulated since the last
// sample, satisfied by *sim.World.
type EventSource interface {
	Ignitions() int
	Explosions() int
	AcidMetalEvents() int
	HydrogenIgnitions() int
}

// Sample scans the grid channel-by-channel and combines it with the
// event tallies `events` reports, producing one Sample for tick.
func (c *Collector) Sample(tick int64, width, height int, get func(x, y int) (id uint8, temp float32), reg *material.Registry, events EventSource) Sample {
	s := Sample{
		Tick:       tick,
		SimTimeSec: float64(tick) * float64(c.dt),
	}
	var tempSum float64
	s.TotalCells = width * height

	fireID := reg.IDOf("fire")

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			id, temp := get(x, y)
			tempSum += float64(temp)
			if float64(temp) > s.MaxTemperature {
				s.MaxTemperature = float64(temp)
			}
			if id == uint8(material.AirID) {
				continue
			}
			s.NonAirCells++
			if material.ID(id) == fireID {
				s.FireCells++
			}
			m := reg.GetByID(material.ID(id))
			switch m.State {
			case material.Solid:
				s.SolidCells++
			case material.Liquid:
				s.LiquidCells++
			case material.Gas:
				s.GasCells++
			case material.Powder:
				s.PowderCells++
			}
		}
	}
	if s.TotalCells > 0 {
		s.MeanTemperature = tempSum / float64(s.TotalCells)
	}

	s.Ignitions = events.Ignitions()
	s.Explosions = events.Explosions()
	s.AcidMetalEvents = events.AcidMetalEvents()
	s.HydrogenIgnitions = events.HydrogenIgnitions()

	return s
}
