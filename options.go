package decimalinput

// DefaultValidateDigits is the fractional-digit limit Validate applies when
// Options.Digits is unset. Parse applies no limit in that case.
const DefaultValidateDigits = 2

// Options constrains an accepted value. Nil fields are unset.
type Options struct {
	// Min is the inclusive lower bound.
	Min *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	// Max is the inclusive upper bound.
	Max *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	// Digits is the maximum number of characters after the decimal point.
	Digits *int `json:"digits,omitempty" yaml:"digits,omitempty"`
}

// Option configures Options.
type Option func(*Options)

// WithMin sets the inclusive lower bound.
func WithMin(min float64) Option {
	return func(o *Options) { o.Min = &min }
}

// WithMax sets the inclusive upper bound.
func WithMax(max float64) Option {
	return func(o *Options) { o.Max = &max }
}

// WithRange sets both bounds.
func WithRange(min, max float64) Option {
	return func(o *Options) {
		WithMin(min)(o)
		WithMax(max)(o)
	}
}

// WithDigits limits the number of fractional digits.
func WithDigits(digits int) Option {
	return func(o *Options) { o.Digits = &digits }
}

// WithOptions copies every set field of src, leaving the others untouched.
// It lets a stored record, such as a preset, seed a call that then adds
// its own options.
func WithOptions(src Options) Option {
	return func(o *Options) {
		if src.Min != nil {
			WithMin(*src.Min)(o)
		}
		if src.Max != nil {
			WithMax(*src.Max)(o)
		}
		if src.Digits != nil {
			WithDigits(*src.Digits)(o)
		}
	}
}

// NewOptions builds Options from opts.
func NewOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func (o Options) inRange(n float64) bool {
	withinMin := o.Min == nil || n >= *o.Min
	withinMax := o.Max == nil || n <= *o.Max
	return withinMin && withinMax
}
