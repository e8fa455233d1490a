package training

const (
	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20
)

var _ Training = (*Running)(nil)

// Running is a running workout.
type Running struct {
	base
}

// NewRunning returns running workout with given number of steps,
// duration in hours and weight in kilograms.
func NewRunning(action int, duration, weight float64) (*Running, error) {
	b, err := newBase(action, duration, weight, LenStep)
	if err != nil {
		return nil, err
	}
	return &Running{base: b}, nil
}

func (r *Running) Kind() Kind {
	return KindRunning
}

func (r *Running) SpentCalories() float64 {
	rate := (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() - runningCaloriesMeanSpeedShift) * r.weight
	return rate / MInKm * r.durationInMinutes()
}
