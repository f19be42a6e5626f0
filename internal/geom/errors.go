package geom

import "errors"

var (
	// ErrInvalidArgument is returned when a constructor receives the wrong
	// number of components or a non-finite value.
	ErrInvalidArgument = errors.New("geom: invalid argument")

	// ErrNoAngle is returned when an angle is requested from the zero vector.
	ErrNoAngle = errors.New("geom: zero vector has no angle")

	// ErrDivideByZero is returned by Vector.Div for a zero divisor.
	ErrDivideByZero = errors.New("geom: division by zero")
)
