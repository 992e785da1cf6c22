package sim

// EventCounts tallies occurrences of notable simulation events between
// telemetry samples. Exposed read-only via World.EventCounts; reset via
// World.ResetEventCounts once a sample has been taken.
type EventCounts struct {
	Ignitions    int
	Explosions   int
	AcidMetal    int
	HydrogenIgnitions int
}

// EventCounts returns a copy of the accumulated event tallies.
func (w *World) EventCounts() EventCounts { return w.events }

// ResetEventCounts zeroes the event tallies, typically called right
// after a telemetry sample has been taken.
func (w *World) ResetEventCounts() { w.events = EventCounts{} }

// Ignitions, Explosions, AcidMetalEvents and HydrogenIgnitions satisfy
// telemetry.EventSource.
func (w *World) Ignitions() int         { return w.events.Ignitions }
func (w *World) Explosions() int        { return w.events.Explosions }
func (w *World) AcidMetalEvents() int   { return w.events.AcidMetal }
func (w *World) HydrogenIgnitions() int { return w.events.HydrogenIgnitions }
