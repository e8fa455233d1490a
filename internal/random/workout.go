package random

// Int returns random int in range [from, to)
func Int(from, to int) int {
	if to <= from {
		return from
	}
	return rnd.Intn(to-from) + from
}

// Float returns random float64 in range [from, to)
func Float(from, to float64) float64 {
	if to <= from {
		return from
	}
	return from + rnd.Float64()*(to-from)
}

// Workout holds plausible sensor readings of a single workout
type Workout struct {
	Action     int
	Duration   float64
	Weight     float64
	Height     float64
	PoolLength float64
	PoolCount  int
}

// NewWorkout returns random workout readings within the ranges real devices report
func NewWorkout() Workout {
	return Workout{
		Action:     Int(1000, 10000),
		Duration:   float64(Int(0, 3)) + Float(0.1, 1),
		Weight:     float64(Int(80, 140)),
		Height:     float64(Int(150, 220)),
		PoolLength: Float(10, 50),
		PoolCount:  Int(1, 10),
	}
}
