package coerce

// Options controls attribute propagation during a cast.
type Options struct {
	// KeepDimensions copies dim and dimnames onto the result.
	KeepDimensions bool
	// KeepNames copies names onto the result.
	KeepNames bool
	// KeepAttributes copies the generic attributes onto the result.
	KeepAttributes bool
	// EmptyAsNull makes a zero-length input yield NULL (a nil vector).
	EmptyAsNull bool
}

// DefaultOptions keeps dimensions and names and drops generic attributes.
func DefaultOptions() Options {
	return Options{
		KeepDimensions: true,
		KeepNames:      true,
	}
}

// Option configures a cast.
type Option func(o *Options)

// WithoutDimensions drops dim and dimnames from the result.
func WithoutDimensions() Option {
	return func(o *Options) {
		o.KeepDimensions = false
	}
}

// WithoutNames drops names from the result.
func WithoutNames() Option {
	return func(o *Options) {
		o.KeepNames = false
	}
}

// WithAttributes copies the generic attributes onto the result.
func WithAttributes() Option {
	return func(o *Options) {
		o.KeepAttributes = true
	}
}

// WithEmptyAsNull makes a zero-length input yield NULL.
func WithEmptyAsNull() Option {
	return func(o *Options) {
		o.EmptyAsNull = true
	}
}
