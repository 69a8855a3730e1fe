package eef

// DependOn selects the driving signal that control-point selection is
// based on. The plain variants apply to [Extrema], the absolute-value
// variants to [Partition]; each entry point rejects the other family.
type DependOn int

const (
	// DependFirstDeriv drives extrema selection off the first
	// derivative, placing control points at inflections of the input.
	DependFirstDeriv DependOn = iota
	// DependValue drives extrema selection off the raw sample values.
	DependValue
	// DependSecondDeriv drives extrema selection off the second
	// derivative.
	DependSecondDeriv
	// DependAbsFirstDeriv weights the partition by |first derivative|.
	DependAbsFirstDeriv
	// DependAbsValue weights the partition by |value|.
	DependAbsValue
	// DependAbsSecondDeriv weights the partition by |second derivative|.
	DependAbsSecondDeriv
)

// String returns the option's flag-style name.
func (d DependOn) String() string {
	switch d {
	case DependValue:
		return "value"
	case DependFirstDeriv:
		return "first-deriv"
	case DependSecondDeriv:
		return "second-deriv"
	case DependAbsValue:
		return "abs-value"
	case DependAbsFirstDeriv:
		return "abs-first-deriv"
	case DependAbsSecondDeriv:
		return "abs-second-deriv"
	default:
		return "unknown"
	}
}

const (
	defaultPolyOrder = 3

	// MinPolyOrder and MaxPolyOrder bound the accepted polynomial order;
	// the spline degree used for fitting is the order plus one.
	MinPolyOrder = 0
	MaxPolyOrder = 4
)

type config struct {
	polyOrder int
	dependOn  DependOn
	fitter    Fitter
}

// Option configures an extraction call.
type Option func(*config)

func defaultExtremaConfig() config {
	return config{
		polyOrder: defaultPolyOrder,
		dependOn:  DependFirstDeriv,
		fitter:    SplineFitter{},
	}
}

func defaultPartitionConfig() config {
	cfg := defaultExtremaConfig()
	cfg.dependOn = DependAbsFirstDeriv
	return cfg
}

// WithPolyOrder sets the polynomial order of the extracted trend, in
// [0,4]. The default is 3.
func WithPolyOrder(order int) Option {
	return func(c *config) {
		c.polyOrder = order
	}
}

// WithDependOn selects the driving signal for control-point selection.
func WithDependOn(d DependOn) Option {
	return func(c *config) {
		c.dependOn = d
	}
}

// WithFitter replaces the default dsp/spline-backed fitter.
func WithFitter(f Fitter) Option {
	return func(c *config) {
		if f != nil {
			c.fitter = f
		}
	}
}

func applyOptions(cfg config, opts []Option) config {
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
