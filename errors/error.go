package errors

import (
	"fmt"
)

// InvalidArgumentError occurs when a Frame is constructed with unusable parameters
type InvalidArgumentError struct{ Reason string }

// Error returns a textual representation of this InvalidArgumentError
func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("Invalid argument: %s", e.Reason)
}

// ShapeMismatchError occurs when a Row's width does not match the column count of a Frame
type ShapeMismatchError struct {
	Expected int
	Actual   int
}

// Error returns a textual representation of this ShapeMismatchError
func (e ShapeMismatchError) Error() string {
	return fmt.Sprintf("Row width %d is not compatible with Frame of %d columns", e.Actual, e.Expected)
}

// IndexOutOfRangeError occurs when a row or column index falls outside of a Frame
type IndexOutOfRangeError struct {
	Axis   string // "row" or "column"
	Index  int
	Length int
}

// Error returns a textual representation of this IndexOutOfRangeError
func (e IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%s index %d is out of range [0, %d)", e.Axis, e.Index, e.Length)
}

// EmptyFrameError occurs when an operation requiring at least one Row is applied to an empty Frame
type EmptyFrameError struct{}

// Error returns a textual representation of this EmptyFrameError
func (e EmptyFrameError) Error() string {
	return "Frame is empty"
}

// DestroyedFrameError occurs when a Frame is used after it has been destroyed
type DestroyedFrameError struct{ ID string }

// Error returns a textual representation of this DestroyedFrameError
func (e DestroyedFrameError) Error() string {
	return fmt.Sprintf("Frame %s has been destroyed", e.ID)
}

// UnknownColumnError occurs when a column label does not exist in a Schema
type UnknownColumnError struct{ Name string }

// Error returns a textual representation of this UnknownColumnError
func (e UnknownColumnError) Error() string {
	return fmt.Sprintf("Column %s does not exist", e.Name)
}
