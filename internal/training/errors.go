package training

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownWorkoutType indicates a package with unsupported workout code
	ErrUnknownWorkoutType = errors.New("unknown workout type")
	// ErrArityMismatch indicates a package with wrong number of values
	ErrArityMismatch = errors.New("workout data length mismatch")
	// ErrDivisionByZero indicates a workout parameter used as a divisor is zero
	ErrDivisionByZero = errors.New("division by zero")
)

var errZeroDuration = fmt.Errorf("duration must be nonzero: %w", ErrDivisionByZero)

// ArityError describes package data that does not fit workout parameters.
type ArityError struct {
	Code Code
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: %s expects %d values, got %d", ErrArityMismatch, e.Code, e.Want, e.Got)
}

func (e *ArityError) Unwrap() error {
	return ErrArityMismatch
}
