package training

const (
	runningSpeedMultiplier = 18
	runningSpeedShift      = 1.79
)

// Running is a run measured in steps
type Running struct {
	Training
}

// NewRunning creates a run from steps, duration in hours and weight in kg
func NewRunning(action, duration, weight float64) *Running {
	return &Running{Training: newTraining(action, duration, weight, DefaultStepLength)}
}

// Name returns the workout label
func (r *Running) Name() string { return "Running" }

// SpentCalories estimates kcal from mean speed, weight and duration
func (r *Running) SpentCalories() (float64, error) {
	speed, err := r.MeanSpeed()
	if err != nil {
		return 0, err
	}
	return (runningSpeedMultiplier*speed + runningSpeedShift) *
		r.weight / MetersPerKm * r.duration * MinutesPerHour, nil
}
