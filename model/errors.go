package model

import "github.com/pkg/errors"

var (
	// ErrOutOfBounds is returned when a (row, col) lies outside the grid
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrInvalidDimensions is returned when a grid cannot be built with the requested shape
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
)
