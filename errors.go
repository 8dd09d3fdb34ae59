package chartgeom

import (
	"errors"
	"fmt"
)

var (
	// ErrStep reports a configured tick step that is not strictly positive.
	ErrStep = errors.New("tick step must be greater than zero")
	// ErrCoordinates reports visible series mixing cartesian and polar
	// coordinate systems in the same chart.
	ErrCoordinates = errors.New("cartesian and polar series can not be mixed")
)

// AxisError ties a configuration error to the axis it was found on.
type AxisError struct {
	Axis string
	Err  error
}

func (e *AxisError) Error() string {
	return fmt.Sprintf("%s axis: %v", e.Axis, e.Err)
}

func (e *AxisError) Unwrap() error {
	return e.Err
}

func axisError(axis string, err error) error {
	if err == nil {
		return nil
	}
	return &AxisError{
		Axis: axis,
		Err:  err,
	}
}
