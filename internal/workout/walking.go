package workout

import (
	"fmt"
	"math"
)

const (
	walkCaloriesWeightMultiplier = 0.035
	walkCaloriesSpeedMultiplier  = 0.029
)

// SportsWalking is a walk measured in steps.
type SportsWalking struct {
	base
	height float64
}

// NewSportsWalking builds a walk from steps, hours, body weight in kg and height in cm.
func NewSportsWalking(action int, duration, weight, height float64) *SportsWalking {
	return &SportsWalking{
		base:   base{action: action, duration: duration, weight: weight},
		height: height,
	}
}

// Kind implements Training.
func (w *SportsWalking) Kind() string {
	return KindSportsWalking
}

func (w *SportsWalking) checkDivisors() error {
	if err := w.base.checkDivisors(); err != nil {
		return err
	}
	if w.height == 0 {
		return fmt.Errorf("%w: height is zero", ErrZeroDivision)
	}
	return nil
}

// SpentCalories implements Training.
// The speed term is floor-divided by height, so for ordinary walking speeds
// it contributes nothing.
func (w *SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	speedTerm := math.Floor(speed * speed / w.height)
	return w.weight * (walkCaloriesWeightMultiplier + speedTerm*walkCaloriesSpeedMultiplier) *
		(w.duration * minInHour)
}
