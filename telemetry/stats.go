package telemetry

import "log/slog"

// Sample holds aggregated grid statistics taken at one simulation tick,
// per spec.md §8's material-population/mean-temperature tracking.
type Sample struct {
	Tick       int64   `csv:"tick"`
	SimTimeSec float64 `csv:"sim_time"`

	TotalCells  int `csv:"total_cells"`
	NonAirCells int `csv:"non_air_cells"`

	SolidCells  int `csv:"solid_cells"`
	LiquidCells int `csv:"liquid_cells"`
	GasCells    int `csv:"gas_cells"`
	PowderCells int `csv:"powder_cells"`

	FireCells       int `csv:"fire_cells"`
	HeatSourceCells int `csv:"heat_source_cells"`

	MeanTemperature float64 `csv:"mean_temp"`
	MaxTemperature  float64 `csv:"max_temp"`

	Ignitions         int `csv:"ignitions"`
	Explosions        int `csv:"explosions"`
	AcidMetalEvents   int `csv:"acid_metal_events"`
	HydrogenIgnitions int `csv:"hydrogen_ignitions"`
}

// LogValue implements slog.LogValuer for structured logging.
func (s Sample) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("tick", s.Tick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("total_cells", s.TotalCells),
		slog.Int("non_air_cells", s.NonAirCells),
		slog.Int("solid_cells", s.SolidCells),
		slog.Int("liquid_cells", s.LiquidCells),
		slog.Int("gas_cells", s.GasCells),
		slog.Int("powder_cells", s.PowderCells),
		slog.Int("fire_cells", s.FireCells),
		slog.Int("heat_source_cells", s.HeatSourceCells),
		slog.Float64("mean_temp", s.MeanTemperature),
		slog.Float64("max_temp", s.MaxTemperature),
		slog.Int("ignitions", s.Ignitions),
		slog.Int("explosions", s.Explosions),
		slog.Int("acid_metal_events", s.AcidMetalEvents),
		slog.Int("hydrogen_ignitions", s.HydrogenIgnitions),
	)
}

// LogSample logs the sample using slog.
func (s Sample) LogSample() {
	slog.Info("telemetry", "sample", s)
}
