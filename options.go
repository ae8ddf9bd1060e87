package numera

// Auto requests source-system detection over the priority order
// instead of naming an explicit system. It is the default for Decode
// and Translate.
const Auto System = "auto"

type options struct {
	from      System
	separator rune
}

// Option configures a single conversion call.
type Option func(*options)

// WithFrom names the source system for Decode and Translate, skipping
// auto-detection.
func WithFrom(sys System) Option {
	return func(o *options) {
		o.from = sys
	}
}

// WithSeparator sets a single-rune digit-group separator, honored by
// positional systems on both encode and decode.
func WithSeparator(sep rune) Option {
	return func(o *options) {
		o.separator = sep
	}
}

func newOptions(opts []Option) options {
	o := options{from: Auto}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
