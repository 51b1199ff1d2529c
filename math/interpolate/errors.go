package interpolate

import (
	"errors"
	"fmt"
)

// AxisName identifies one of the independent variables of a table.
type AxisName string

const (
	AxisX AxisName = "X"
	AxisY AxisName = "Y"
	AxisZ AxisName = "Z"
)

var (
	// ErrEmptyAxis is returned (wrapped in an *EmptyAxisError) when an axis
	// has no breakpoints.
	ErrEmptyAxis = errors.New("empty axis")
	// ErrUnsortedAxis is returned (wrapped in an *UnsortedAxisError) when an
	// axis is not strictly ascending.
	ErrUnsortedAxis = errors.New("axis not strictly ascending")
	// ErrDimensionMismatch is returned (wrapped in a *DimensionMismatchError)
	// when the number of values does not match the grid size.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// EmptyAxisError reports an axis with zero breakpoints.
type EmptyAxisError struct {
	Axis AxisName
}

func (e *EmptyAxisError) Error() string {
	return fmt.Sprintf("%s axis cannot be empty", e.Axis)
}

func (e *EmptyAxisError) Unwrap() error { return ErrEmptyAxis }

// UnsortedAxisError reports the first breakpoint which is less than or equal
// to its predecessor. Index counts from the start of the axis, so the failing
// comparison is between Index-1 and Index.
type UnsortedAxisError struct {
	Axis  AxisName
	Index int
}

func (e *UnsortedAxisError) Error() string {
	return fmt.Sprintf(
		"%s axis is not strictly ascending at index %d", e.Axis, e.Index,
	)
}

func (e *UnsortedAxisError) Unwrap() error { return ErrUnsortedAxis }

// DimensionMismatchError reports a value slice whose length differs from the
// product of the axis lengths.
type DimensionMismatchError struct {
	Expected int
	Actual   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf(
		"data length mismatch: expected %d, got %d", e.Expected, e.Actual,
	)
}

func (e *DimensionMismatchError) Unwrap() error { return ErrDimensionMismatch }
