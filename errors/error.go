package errors

import (
	"fmt"
)

// OutOfRangeError occurs when an index falls outside the valid bounds of a Column or Table
type OutOfRangeError struct {
	Target string // "column" or "element"
	Index  int
	Size   int
}

// Error returns a textual representation of this OutOfRangeError
func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0, %d)", e.Target, e.Index, e.Size)
}

// NotFoundError occurs when a traversal expected to land on a node finds none.
// This indicates a corrupted chain and should be unreachable.
type NotFoundError struct {
	Target string
	Index  int
}

// Error returns a textual representation of this NotFoundError
func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s at index %d not found", e.Target, e.Index)
}

// AddFailureError occurs when a Table is unable to create a new Column
type AddFailureError struct {
	Name string
	Err  error
}

// Error returns a textual representation of this AddFailureError
func (e AddFailureError) Error() string {
	return fmt.Sprintf("Failed to add column %s: %v", e.Name, e.Err)
}

// Unwrap returns the underlying cause of this AddFailureError
func (e AddFailureError) Unwrap() error {
	return e.Err
}

// CapacityError occurs when a Table has reached its maximum number of columns
type CapacityError struct{ Max int }

// Error returns a textual representation of this CapacityError
func (e CapacityError) Error() string {
	return fmt.Sprintf("Table is full (%d columns)", e.Max)
}

// InvariantError occurs when validation finds a Column or Table in an inconsistent state
type InvariantError struct {
	Name   string
	Reason string
}

// Error returns a textual representation of this InvariantError
func (e InvariantError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Reason)
}
