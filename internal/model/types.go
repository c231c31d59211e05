// Package model defines shared data structures.
package model

// Package is a raw sensor reading: a workout code and its positional values.
type Package struct {
	Code string
	Data []float64
}

// Report summarizes a completed workout.
type Report struct {
	Kind          string
	DurationHours float64
	DistanceKm    float64
	SpeedKmh      float64
	CaloriesKcal  float64
}

// OutputConfig defines how reports are presented.
type OutputConfig struct {
	Format string
	Color  bool
}

// KindInfo describes a supported workout code.
type KindInfo struct {
	Code   string
	Label  string
	Fields []string
}
