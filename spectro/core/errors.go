package core

import "errors"

var (
	// ErrShapeMismatch is returned when vector lengths or matrix shapes disagree.
	ErrShapeMismatch = errors.New("spectro: incompatible shapes")
	// ErrInvalidDegree is returned when a polynomial degree is out of range.
	ErrInvalidDegree = errors.New("spectro: invalid polynomial degree")
	// ErrInvalidBounds is returned when an extraction window is out of range.
	ErrInvalidBounds = errors.New("spectro: invalid extraction bounds")
	// ErrInterpolation is returned when a row has too few good pixels to
	// build a linear interpolant.
	ErrInterpolation = errors.New("spectro: interpolation failed")
)
