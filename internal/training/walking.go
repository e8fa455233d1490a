package training

import (
	"fmt"
	"math"
)

const (
	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
)

var _ Training = (*Walking)(nil)

// Walking is a sports walking workout.
type Walking struct {
	base
	height float64
}

// NewWalking returns walking workout. Height is measured in centimeters.
func NewWalking(action int, duration, weight, height float64) (*Walking, error) {
	if height == 0 {
		return nil, fmt.Errorf("height must be nonzero: %w", ErrDivisionByZero)
	}
	b, err := newBase(action, duration, weight, LenStep)
	if err != nil {
		return nil, err
	}
	return &Walking{base: b, height: height}, nil
}

func (w *Walking) Kind() Kind {
	return KindWalking
}

// SpentCalories floors squared speed divided by height, so for ordinary
// speeds and heights the speed term drops out entirely.
func (w *Walking) SpentCalories() float64 {
	speedTerm := floorDiv(math.Pow(w.MeanSpeed(), 2), w.height)
	return (walkingCaloriesWeightMultiplier*w.weight +
		speedTerm*walkingSpeedHeightMultiplier*w.weight) * w.durationInMinutes()
}

// floorDiv returns the floored quotient of x and y derived from the
// remainder, so it stays exact when x/y rounds up to a whole number:
// floorDiv(1, 0.1) is 9 while math.Floor(1/0.1) is 10.
func floorDiv(x, y float64) float64 {
	mod := math.Mod(x, y)
	div := (x - mod) / y
	if mod != 0 && (y < 0) != (mod < 0) {
		div--
	}
	if div == 0 {
		return math.Copysign(0, x/y)
	}

	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor++
	}
	return floor
}
