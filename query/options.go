package query

// Option adjusts a single traversal call.
type Option func(*Options)

// Options holds per-call traversal parameters. The zero value is the
// default: the queried term excluded from its own result, no depth limit.
type Options struct {
	// IncludeSelf keeps the queried term in its own result set. For the
	// distance variants it appears at distance 0.
	IncludeSelf bool

	// MaxDepth caps frontier expansion at that many layers. 0 means no
	// limit; negative values are rejected with ErrOptionViolation.
	MaxDepth int
}

// DefaultOptions returns the default traversal parameters.
func DefaultOptions() Options {
	return Options{IncludeSelf: false, MaxDepth: 0}
}

// WithSelf includes the queried term in its own result.
func WithSelf() Option {
	return func(o *Options) { o.IncludeSelf = true }
}

// WithMaxDepth caps expansion at d layers; 0 restores the unlimited
// default.
func WithMaxDepth(d int) Option {
	return func(o *Options) { o.MaxDepth = d }
}

func resolveOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxDepth < 0 {
		return Options{}, ErrOptionViolation
	}
	return cfg, nil
}
