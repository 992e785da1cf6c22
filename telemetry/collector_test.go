package telemetry

import (
	"testing"

	"github.com/pthm-cable/grainfall/material"
)

type fakeEvents struct {
	ignitions, explosions, acidMetal, hydrogen int
}

func (f fakeEvents) Ignitions() int         { return f.ignitions }
func (f fakeEvents) Explosions() int        { return f.explosions }
func (f fakeEvents) AcidMetalEvents() int   { return f.acidMetal }
func (f fakeEvents) HydrogenIgnitions() int { return f.hydrogen }

func TestSampleAggregatesGridAndEvents(t *testing.T) {
	reg := material.NewDefaultRegistry()
	c := NewCollector(1)

	cells := map[[2]int]uint8{
		{0, 0}: reg.IDOf("sand"),
		{1, 0}: reg.IDOf("water"),
	}
	get := func(x, y int) (uint8, float32) {
		if id, ok := cells[[2]int{x, y}]; ok {
			return id, 25
		}
		return 0, 20
	}

	s := c.Sample(5, 2, 1, get, reg, fakeEvents{ignitions: 2, explosions: 1})

	if s.Tick != 5 {
		t.Fatalf("expected tick 5, got %d", s.Tick)
	}
	if s.TotalCells != 2 {
		t.Fatalf("expected 2 total cells, got %d", s.TotalCells)
	}
	if s.NonAirCells != 2 {
		t.Fatalf("expected 2 non-air cells, got %d", s.NonAirCells)
	}
	if s.PowderCells != 1 || s.LiquidCells != 1 {
		t.Fatalf("expected 1 powder and 1 liquid cell, got powder=%d liquid=%d", s.PowderCells, s.LiquidCells)
	}
	if s.Ignitions != 2 || s.Explosions != 1 {
		t.Fatalf("expected event tallies to pass through, got %+v", s)
	}
}
