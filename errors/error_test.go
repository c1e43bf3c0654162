package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutOfRangeError(t *testing.T) {
	err := OutOfRangeError{Target: "column", Index: 3, Size: 2}
	require.Equal(t, "column index 3 out of range [0, 2)", err.Error())
}

func TestAddFailureErrorUnwraps(t *testing.T) {
	err := fmt.Errorf("outer: %w", AddFailureError{Name: "ID", Err: CapacityError{Max: 4}})
	var ce CapacityError
	require.True(t, errors.As(err, &ce))
	require.Equal(t, 4, ce.Max)
	var af AddFailureError
	require.True(t, errors.As(err, &af))
	require.Equal(t, "ID", af.Name)
	require.Contains(t, err.Error(), "Table is full (4 columns)")
}

func TestNotFoundAndInvariantErrors(t *testing.T) {
	require.Equal(t, "element at index 2 not found", NotFoundError{Target: "element", Index: 2}.Error())
	require.Equal(t, "ID: element chain contains a cycle", InvariantError{Name: "ID", Reason: "element chain contains a cycle"}.Error())
}
