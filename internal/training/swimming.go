package training

const (
	swimmingStepLength        = 1.38 // meters per stroke
	swimmingCalorieSpeedShift = 1.1
	swimmingSpeedMultiplier   = 2
)

// Swimming is a pool session. Speed comes from pool laps, distance from strokes.
type Swimming struct {
	Training
	poolLength float64 // meters
	laps       float64
}

// NewSwimming creates a pool session from strokes, duration, weight, pool length in meters and lap count
func NewSwimming(action, duration, weight, poolLength, laps float64) *Swimming {
	return &Swimming{
		Training:   newTraining(action, duration, weight, swimmingStepLength),
		poolLength: poolLength,
		laps:       laps,
	}
}

// Name returns the workout label
func (s *Swimming) Name() string { return "Swimming" }

// MeanSpeed returns the pool distance over duration in km/h
func (s *Swimming) MeanSpeed() (float64, error) {
	if err := s.checkDuration(); err != nil {
		return 0, err
	}
	return finiteQuotient(s.poolLength*s.laps/MetersPerKm, s.duration, "duration")
}

// SpentCalories estimates kcal from pool speed, weight and duration
func (s *Swimming) SpentCalories() (float64, error) {
	speed, err := s.MeanSpeed()
	if err != nil {
		return 0, err
	}
	return (speed + swimmingCalorieSpeedShift) * swimmingSpeedMultiplier * s.weight * s.duration, nil
}
