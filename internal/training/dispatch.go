package training

import (
	"fmt"
	"sort"
)

// Workout type codes accepted by ReadPackage
const (
	CodeRunning       = "RUN"
	CodeSportsWalking = "WLK"
	CodeSwimming      = "SWM"
)

type constructor struct {
	arity int
	build func(v []float64) Workout
}

var constructors = map[string]constructor{
	CodeRunning: {
		arity: 3,
		build: func(v []float64) Workout { return NewRunning(v[0], v[1], v[2]) },
	},
	CodeSportsWalking: {
		arity: 4,
		build: func(v []float64) Workout { return NewSportsWalking(v[0], v[1], v[2], v[3]) },
	},
	CodeSwimming: {
		arity: 5,
		build: func(v []float64) Workout { return NewSwimming(v[0], v[1], v[2], v[3], v[4]) },
	},
}

// ReadPackage builds the workout matching code from its positional values
func ReadPackage(code string, data []float64) (Workout, error) {
	c, ok := constructors[code]
	if !ok {
		return nil, &UnknownTypeError{Code: code}
	}
	if len(data) != c.arity {
		return nil, fmt.Errorf("%w: %s expects %d values, got %d", ErrArityMismatch, code, c.arity, len(data))
	}
	return c.build(data), nil
}

// Codes returns the known type codes in sorted order
func Codes() []string {
	codes := make([]string, 0, len(constructors))
	for code := range constructors {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
