// Package training computes distance, mean speed and calories for the supported
// workout types and renders them as a one-line summary.
package training

import (
	"fmt"
	"math"
)

const (
	// MetersPerKm converts step distance in meters to km
	MetersPerKm = 1000
	// DefaultStepLength is the meters covered by one running or walking step
	DefaultStepLength = 0.65
	// MinutesPerHour converts durations in hours to minutes
	MinutesPerHour = 60
)

// Workout is implemented by Training and its three variants only.
type Workout interface {
	// Name is the label shown in the summary line
	Name() string
	// Duration is the workout length in hours
	Duration() float64
	// Distance is the covered distance in km
	Distance() float64
	// MeanSpeed is the average speed in km/h
	MeanSpeed() (float64, error)
	// SpentCalories is the energy spent in kcal
	SpentCalories() (float64, error)

	common() *Training
}

// Training holds the inputs shared by every workout type.
// Used on its own it has no calorie formula.
type Training struct {
	action     float64 // steps or strokes
	duration   float64 // hours
	weight     float64 // kg
	stepLength float64 // meters
}

// NewTraining creates a bare Training. SpentCalories on it always fails.
func NewTraining(action, duration, weight float64) *Training {
	t := newTraining(action, duration, weight, DefaultStepLength)
	return &t
}

func newTraining(action, duration, weight, stepLength float64) Training {
	return Training{
		action:     action,
		duration:   duration,
		weight:     weight,
		stepLength: stepLength,
	}
}

func (t *Training) common() *Training { return t }

// Name returns the workout label
func (t *Training) Name() string { return "Training" }

// Duration returns the workout length in hours
func (t *Training) Duration() float64 { return t.duration }

// Distance returns the covered distance in km
func (t *Training) Distance() float64 {
	return t.action * t.stepLength / MetersPerKm
}

// MeanSpeed returns distance over duration in km/h
func (t *Training) MeanSpeed() (float64, error) {
	if err := t.checkDuration(); err != nil {
		return 0, err
	}
	return finiteQuotient(t.Distance(), t.duration, "duration")
}

// SpentCalories is only provided by the workout variants
func (t *Training) SpentCalories() (float64, error) {
	return 0, fmt.Errorf("%s calories: %w", t.Name(), ErrNotImplemented)
}

func (t *Training) checkDuration() error {
	if t.duration == 0 {
		return fmt.Errorf("%w: duration is zero", ErrDivideByZero)
	}
	return nil
}

// finiteQuotient divides and rejects results that overflowed, which happens
// when the divisor is subnormal
func finiteQuotient(num, den float64, what string) (float64, error) {
	q := num / den
	if math.IsInf(q, 0) || math.IsNaN(q) {
		return 0, fmt.Errorf("%w: %s %v is too small", ErrDivideByZero, what, den)
	}
	return q, nil
}

// ShowTrainingInfo collects the computed metrics of a workout into an InfoMessage
func ShowTrainingInfo(w Workout) (InfoMessage, error) {
	speed, err := w.MeanSpeed()
	if err != nil {
		return InfoMessage{}, fmt.Errorf("computing mean speed: %w", err)
	}

	calories, err := w.SpentCalories()
	if err != nil {
		return InfoMessage{}, fmt.Errorf("computing calories: %w", err)
	}

	return InfoMessage{
		TrainingType: w.Name(),
		Duration:     w.Duration(),
		Distance:     w.Distance(),
		Speed:        speed,
		Calories:     calories,
	}, nil
}
