package layout

import "fmt"

// Axis names the dimension an error refers to.
type Axis string

// Axes referenced by layout errors.
const (
	AxisWidth  Axis = "width"
	AxisHeight Axis = "height"
)

// TooSmallError is returned when a requested size on some axis is below the
// box's minimum. The box is left unchanged.
//
// Forcing matched grid or layer members to a common size during construction
// can also fail this way when a member cannot reach the shared size.
type TooSmallError struct {
	Axis      Axis
	Min       int
	Requested int
}

// Error implements the error interface.
func (e *TooSmallError) Error() string {
	return fmt.Sprintf("requested %s %d is below minimum %d", e.Axis, e.Requested, e.Min)
}

// NotExpandableError is returned when a resize targets a locked axis of a
// fixed-size leaf with a value different from its current size. Unlike
// [TooSmallError] this rejects growth as well as shrinkage.
type NotExpandableError struct {
	Axis      Axis
	Current   int
	Requested int
}

// Error implements the error interface.
func (e *NotExpandableError) Error() string {
	return fmt.Sprintf("%s is locked at %d, cannot resize to %d", e.Axis, e.Current, e.Requested)
}
