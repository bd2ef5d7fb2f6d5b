package utf16str

// Policy decides what happens to a surrogate pair split by a substring
// boundary. Include keeps the whole pair; exclude drops it from the result.
type Policy struct {
	IncludeStart bool
	IncludeEnd   bool
}

// DefaultPolicy keeps pairs split at either boundary.
func DefaultPolicy() Policy {
	return Policy{IncludeStart: true, IncludeEnd: true}
}

// Option configures a Substring call.
type Option func(*Policy)

// WithIncludeStart sets whether a pair split by the start index is kept.
func WithIncludeStart(include bool) Option {
	return func(p *Policy) {
		p.IncludeStart = include
	}
}

// WithIncludeEnd sets whether a pair split by the end index is kept.
func WithIncludeEnd(include bool) Option {
	return func(p *Policy) {
		p.IncludeEnd = include
	}
}

// WithPolicy replaces both flags at once.
func WithPolicy(policy Policy) Option {
	return func(p *Policy) {
		*p = policy
	}
}

func buildPolicy(opts []Option) Policy {
	p := DefaultPolicy()
	for _, opt := range opts {
		opt(&p)
	}
	return p
}
