package workout

const (
	strokeLengthM          = 1.38
	swimCaloriesSpeedShift = 1.1
	swimCaloriesMultiplier = 2
)

// Swimming is a pool swim measured in arm strokes.
type Swimming struct {
	base
	poolLength float64
	poolCount  float64
}

// NewSwimming builds a swim from strokes, hours, body weight in kg,
// pool length in meters and the number of pool laps.
func NewSwimming(action int, duration, weight, poolLength, poolCount float64) *Swimming {
	return &Swimming{
		base:       base{action: action, duration: duration, weight: weight},
		poolLength: poolLength,
		poolCount:  poolCount,
	}
}

// Kind implements Training.
func (s *Swimming) Kind() string {
	return KindSwimming
}

// Distance implements Training using the stroke length.
func (s *Swimming) Distance() float64 {
	return s.distance(strokeLengthM)
}

// MeanSpeed implements Training from the pool laps rather than strokes.
func (s *Swimming) MeanSpeed() float64 {
	return s.poolLength * s.poolCount / metersInKm / s.duration
}

// SpentCalories implements Training.
func (s *Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimCaloriesSpeedShift) * swimCaloriesMultiplier * s.weight
}
