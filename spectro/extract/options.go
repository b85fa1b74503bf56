package extract

import "gonum.org/v1/gonum/mat"

type config struct {
	variance mat.Matrix
	mask     mat.Matrix
	interp   bool
}

// Option configures Box.
type Option func(*config)

// WithVariance sets the per-pixel variance image. A nil image keeps the
// default of unit variance everywhere.
func WithVariance(variance mat.Matrix) Option {
	return func(cfg *config) {
		if variance != nil {
			cfg.variance = variance
		}
	}
}

// WithMask sets the pixel mask (1 = good, 0 = bad). A nil mask keeps the
// default of all pixels good.
func WithMask(mask mat.Matrix) Option {
	return func(cfg *config) {
		if mask != nil {
			cfg.mask = mask
		}
	}
}

// WithInterpolation enables linear interpolation over bad pixels along each
// row before summing.
func WithInterpolation(enabled bool) Option {
	return func(cfg *config) {
		cfg.interp = enabled
	}
}

func applyOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
