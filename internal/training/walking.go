package training

import "fmt"

const (
	walkingWeightMultiplier      = 0.035
	walkingSpeedHeightMultiplier = 0.029
	kmhToMs                      = 0.278
	cmPerM                       = 100
)

// SportsWalking is a walk measured in steps. Calories depend on the walker's height.
type SportsWalking struct {
	Training
	height float64 // meters
}

// NewSportsWalking creates a walk; height is given in centimeters
func NewSportsWalking(action, duration, weight, heightCm float64) *SportsWalking {
	return &SportsWalking{
		Training: newTraining(action, duration, weight, DefaultStepLength),
		height:   heightCm / cmPerM,
	}
}

// Name returns the workout label
func (s *SportsWalking) Name() string { return "SportsWalking" }

// Height returns the walker's height in meters
func (s *SportsWalking) Height() float64 { return s.height }

// SpentCalories estimates kcal from weight, speed in m/s and height
func (s *SportsWalking) SpentCalories() (float64, error) {
	speed, err := s.MeanSpeed()
	if err != nil {
		return 0, err
	}
	if s.height == 0 {
		return 0, fmt.Errorf("%w: height is zero", ErrDivideByZero)
	}

	speedMs := speed * kmhToMs
	ratio, err := finiteQuotient(speedMs*speedMs, s.height, "height")
	if err != nil {
		return 0, err
	}
	calories := walkingWeightMultiplier*s.weight + ratio*walkingSpeedHeightMultiplier*s.weight
	return calories * s.duration * MinutesPerHour, nil
}
