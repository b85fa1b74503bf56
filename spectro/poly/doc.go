// Package poly provides the polynomial primitive used by the trend fitter:
// weighted least-squares fitting and Horner evaluation.
//
// Coefficients are ordered from the highest power down to the constant term,
// matching the polyfit/polyval convention used across astronomy tooling:
//
//	p(x) = c[0]*x^deg + c[1]*x^(deg-1) + ... + c[deg]
package poly
