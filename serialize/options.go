package serialize

// Options configures encoding.
type Options struct {
	Compression Compression
	BlockSize   int
}

// Option configures encoding.
type Option func(o *Options)

// WithCompression selects the block compression.
func WithCompression(c Compression) Option {
	return func(o *Options) {
		o.Compression = c
	}
}

// WithBlockSize sets the payload size per block. Values outside
// (0, MaxBlockSize] fall back to DefaultBlockSize.
func WithBlockSize(n int) Option {
	return func(o *Options) {
		o.BlockSize = n
	}
}

func buildOptions(opts []Option) Options {
	o := Options{BlockSize: DefaultBlockSize}
	for _, fn := range opts {
		fn(&o)
	}
	if o.BlockSize <= 0 || o.BlockSize > MaxBlockSize {
		o.BlockSize = DefaultBlockSize
	}
	return o
}
