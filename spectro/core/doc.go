// Package core holds the pieces shared by the spectro packages: the error
// taxonomy, small numeric helpers and image shape checks.
//
// All spectro functions accept raw []float64 vectors and gonum matrices; none
// of them mutate caller-owned inputs.
package core
