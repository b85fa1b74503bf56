// Package extract implements standard box extraction of a spectrum (step 4
// of Horne 1989).
//
// A sky-subtracted image of shape [nwave, nx] is collapsed into a 1D
// spectrum and its variance by summing every wavelength row over the
// spatial columns [x1, x2). A 0/1 mask gates which pixels take part; bad
// pixels can optionally be replaced by linear interpolation along their row
// so that they contribute estimated flux instead of being dropped.
//
// # Usage
//
//	spec, variance, err := extract.Box(img, 230, 270,
//		extract.WithVariance(varImg),
//		extract.WithMask(mask),
//		extract.WithInterpolation(true),
//	)
package extract
