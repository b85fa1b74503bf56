// Package interp provides the linear-interpolation primitive used to repair
// bad pixels along one row of a spectral image.
//
// Pixels are addressed by their integer position in the row, so the
// interpolant assumes uniform, gap-free sampling along the row.
package interp
