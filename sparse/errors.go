// SPDX-License-Identifier: MIT

package sparse

import "errors"

// Sentinel errors for the sparse package. Callers match them with errors.Is;
// wrapping with fmt.Errorf("ctx: %w", ...) at outer boundaries is fine.
var (
	// ErrBadShape is returned when a matrix or vector is requested with a
	// negative dimension.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrCoordLenMismatch is returned when the rows and cols coordinate
	// arrays passed to NewBool differ in length.
	ErrCoordLenMismatch = errors.New("sparse: coordinate arrays differ in length")

	// ErrOutOfRange is returned when a coordinate or index lies outside the
	// declared dimensions.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch is returned when a vector's length is
	// incompatible with the matrix it is multiplied by.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")
)
