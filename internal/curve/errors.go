package curve

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates a frequency or phase outside its domain.
var ErrInvalidParameter = errors.New("curve: parameter out of valid bounds")

// ParamError wraps ErrInvalidParameter with the offending parameter.
type ParamError struct {
	Name  string
	Value float64
	Min   float64
	Max   float64
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("curve: %s=%g outside [%g, %g]", e.Name, e.Value, e.Min, e.Max)
}

func (e *ParamError) Unwrap() error {
	return ErrInvalidParameter
}
