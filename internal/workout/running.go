package workout

const (
	runCaloriesSpeedMultiplier = 18
	runCaloriesSpeedShift      = 20
)

// Running is a run measured in steps.
type Running struct {
	base
}

// NewRunning builds a run from steps, hours and body weight in kg.
func NewRunning(action int, duration, weight float64) *Running {
	return &Running{base: base{action: action, duration: duration, weight: weight}}
}

// Kind implements Training.
func (r *Running) Kind() string {
	return KindRunning
}

// SpentCalories implements Training.
func (r *Running) SpentCalories() float64 {
	speed := r.MeanSpeed()
	return (runCaloriesSpeedMultiplier*speed - runCaloriesSpeedShift) * r.weight /
		metersInKm * r.duration * minInHour
}
