package training

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownWorkoutType is returned when a package carries a type code outside the known set
	ErrUnknownWorkoutType = errors.New("unknown workout type")

	// ErrArityMismatch is returned when a package has the wrong number of values for its type
	ErrArityMismatch = errors.New("wrong number of workout values")

	// ErrNotImplemented is returned by the base Training for operations only a variant provides
	ErrNotImplemented = errors.New("operation not implemented")

	// ErrDivideByZero is returned when a formula would divide by a zero duration or height
	ErrDivideByZero = errors.New("division by zero")
)

// UnknownTypeError names the type code the dispatcher did not recognise
type UnknownTypeError struct {
	Code string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("%v %q (want one of %s)", ErrUnknownWorkoutType, e.Code, strings.Join(Codes(), ", "))
}

// Is reports ErrUnknownWorkoutType as a match so callers can use errors.Is.
func (e *UnknownTypeError) Is(target error) bool {
	return target == ErrUnknownWorkoutType
}
