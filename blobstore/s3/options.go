package s3

import "github.com/aws/aws-sdk-go-v2/feature/s3/manager"

// Options configures a Store.
type Options struct {
	// Prefix is prepended to every key. A trailing slash is added if missing.
	Prefix string
	// Region overrides the region from the default AWS configuration. Only
	// used by New.
	Region string
	// PartSize is the multipart upload part size in bytes.
	PartSize int64
	// Concurrency is the number of parts uploaded in parallel.
	Concurrency int
}

func defaultOptions() Options {
	return Options{
		PartSize:    manager.DefaultUploadPartSize,
		Concurrency: manager.DefaultUploadConcurrency,
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) func(o *Options) {
	return func(o *Options) { o.Prefix = prefix }
}

// WithRegion sets the AWS region.
func WithRegion(region string) func(o *Options) {
	return func(o *Options) { o.Region = region }
}

// WithPartSize sets the multipart part size. Values below the S3 minimum
// are raised to it.
func WithPartSize(size int64) func(o *Options) {
	return func(o *Options) {
		if size < manager.MinUploadPartSize {
			size = manager.MinUploadPartSize
		}
		o.PartSize = size
	}
}

// WithConcurrency sets the number of parallel part uploads.
func WithConcurrency(n int) func(o *Options) {
	return func(o *Options) {
		if n > 0 {
			o.Concurrency = n
		}
	}
}
