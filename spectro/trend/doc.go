// Package trend fits and evaluates a smooth polynomial trend in the ratio of
// a noisy data vector to a reference spectrum.
//
// Samples with zero variance are treated as untrusted (typically masked
// upstream). Both [Fit] and [Evaluate] report the raw ratio data/spec at
// those samples instead of the polynomial value.
//
// # Usage
//
//	est, coeff, err := trend.Fit(xvals, data, variance, spec, trend.DefaultDegree)
//	...
//	again, err := trend.Evaluate(xvals, coeff, data, variance, spec)
package trend
