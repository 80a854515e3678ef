package burg

// Options controls a Calculate invocation.
type Options struct {
	MaxOrder     int
	SubtractMean bool
	Hierarchy    bool
}

// Option mutates an Options value.
type Option func(*Options)

// DefaultOptions returns sensible defaults: order 0 (caller almost
// always wants to set this), mean subtracted, final-order-only output.
func DefaultOptions() Options {
	return Options{
		MaxOrder:     0,
		SubtractMean: true,
		Hierarchy:    false,
	}
}

// WithMaxOrder sets the desired maximum AR order. The effective order
// returned by Calculate is clamped by the sample count (see spec.md §4.2).
func WithMaxOrder(p int) Option {
	return func(o *Options) {
		if p >= 0 {
			o.MaxOrder = p
		}
	}
}

// WithSubtractMean controls whether the mean is subtracted from the
// working copy of the input before the recursion runs.
func WithSubtractMean(subtract bool) Option {
	return func(o *Options) {
		o.SubtractMean = subtract
	}
}

// WithHierarchy controls whether every intermediate AR(1)..AR(p) model
// is emitted, rather than only the final AR(p) model.
func WithHierarchy(hierarchy bool) Option {
	return func(o *Options) {
		o.Hierarchy = hierarchy
	}
}

// ApplyOptions applies zero or more options to DefaultOptions.
func ApplyOptions(opts ...Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
