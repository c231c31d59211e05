// Package workout implements per-activity distance, speed and calorie formulas.
package workout

import (
	"errors"
	"fmt"

	"github.com/verte-zerg/fitcalc/internal/model"
)

const (
	stepLengthM = 0.65
	metersInKm  = 1000
	minInHour   = 60
)

// Workout type labels shown in reports.
const (
	KindRunning       = "Running"
	KindSportsWalking = "SportsWalking"
	KindSwimming      = "Swimming"
)

// ErrZeroDivision is returned when a workout has a zero duration or,
// for walking, a zero height.
var ErrZeroDivision = errors.New("division by zero")

// Training is a workout built from sensor data.
type Training interface {
	// Kind returns the workout type label.
	Kind() string
	// Duration returns the workout duration in hours.
	Duration() float64
	// Distance returns the covered distance in kilometers.
	Distance() float64
	// MeanSpeed returns the average speed in km/h.
	MeanSpeed() float64
	// SpentCalories returns the burned energy in kcal.
	SpentCalories() float64

	checkDivisors() error
}

// base holds the fields shared by every workout kind and the default
// step-based distance and speed.
type base struct {
	action   int
	duration float64
	weight   float64
}

func (b base) Duration() float64 {
	return b.duration
}

func (b base) distance(stepLength float64) float64 {
	return float64(b.action) * stepLength / metersInKm
}

func (b base) Distance() float64 {
	return b.distance(stepLengthM)
}

func (b base) MeanSpeed() float64 {
	return b.Distance() / b.duration
}

func (b base) checkDivisors() error {
	if b.duration == 0 {
		return fmt.Errorf("%w: duration is zero", ErrZeroDivision)
	}
	return nil
}

// Summarize computes the report for a workout. It does not modify t.
func Summarize(t Training) (model.Report, error) {
	if err := t.checkDivisors(); err != nil {
		return model.Report{}, fmt.Errorf("failed to summarize %s: %w", t.Kind(), err)
	}
	return model.Report{
		Kind:          t.Kind(),
		DurationHours: t.Duration(),
		DistanceKm:    t.Distance(),
		SpeedKmh:      t.MeanSpeed(),
		CaloriesKcal:  t.SpentCalories(),
	}, nil
}
