package graph

// Option configures graph construction.
type Option func(*Options)

// Options holds construction-time parameters. The zero value is the
// default: obsolete terms excluded.
type Options struct {
	// IncludeObsolete keeps obsolete terms in the lookup tables and the
	// matrices. Decided once at construction and applied uniformly before
	// index assignment.
	IncludeObsolete bool
}

// DefaultOptions returns the default construction parameters.
func DefaultOptions() Options {
	return Options{IncludeObsolete: false}
}

// WithObsolete keeps obsolete terms in the compiled graph.
func WithObsolete() Option {
	return func(o *Options) { o.IncludeObsolete = true }
}
