package training

import (
	"fmt"
)

// Code is a short workout code sent by tracking devices.
type Code string

const (
	CodeSwimming Code = "SWM"
	CodeRunning  Code = "RUN"
	CodeWalking  Code = "WLK"
)

type factory struct {
	kind  Kind
	arity int
	build func(data []float64) (Training, error)
}

// factories maps every supported code to its workout constructor.
var factories = map[Code]factory{
	CodeSwimming: {
		kind:  KindSwimming,
		arity: 5,
		build: func(data []float64) (Training, error) {
			return NewSwimming(int(data[0]), data[1], data[2], data[3], int(data[4]))
		},
	},
	CodeRunning: {
		kind:  KindRunning,
		arity: 3,
		build: func(data []float64) (Training, error) {
			return NewRunning(int(data[0]), data[1], data[2])
		},
	},
	CodeWalking: {
		kind:  KindWalking,
		arity: 4,
		build: func(data []float64) (Training, error) {
			return NewWalking(int(data[0]), data[1], data[2], data[3])
		},
	},
}

// ReadPackage builds a workout from data received from tracking device.
// Values in data follow the order: action, duration, weight, then height
// for walking or pool length and pool count for swimming.
func ReadPackage(code string, data []float64) (Training, error) {
	f, ok := factories[Code(code)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, code)
	}

	if len(data) != f.arity {
		return nil, &ArityError{Code: Code(code), Want: f.arity, Got: len(data)}
	}

	t, err := f.build(data)
	if err != nil {
		return nil, fmt.Errorf("cannot build %s workout: %w", f.kind, err)
	}
	return t, nil
}
