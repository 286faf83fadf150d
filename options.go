package rvec

import (
	"time"

	"github.com/hupe1980/rvec/serialize"
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	compression      serialize.Compression
	sampleEvery      int
	sampleInterval   time.Duration
	concurrency      int
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		compression:      serialize.CompressionNone,
		sampleEvery:      1,
		concurrency:      8,
	}
}

// Option configures a Session.
type Option func(*options)

// WithConfig applies a file-based configuration. The config is assumed valid
// (see Config.Validate); invalid fields are ignored. Options given after
// WithConfig override it.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		if l, err := cfg.NewLogger(); err == nil {
			o.logger = l
		}
		if c, err := serialize.ParseCompression(cfg.Compression); err == nil {
			o.compression = c
		}
		if cfg.WarningSampleEvery > 0 {
			o.sampleEvery = cfg.WarningSampleEvery
		}
		if cfg.WarningSampleInterval > 0 {
			o.sampleInterval = cfg.WarningSampleInterval
		}
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector. If nil is passed, metrics
// are discarded.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithCompression sets the block compression used by Save.
func WithCompression(c serialize.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithWarningSampling logs every Nth coercion-warning event, and additionally
// one whenever interval has passed since the last logged event.
func WithWarningSampling(every int, interval time.Duration) Option {
	return func(o *options) {
		if every > 0 {
			o.sampleEvery = every
		}
		if interval >= 0 {
			o.sampleInterval = interval
		}
	}
}

// WithConcurrency bounds the goroutines used by SaveAll and LoadAll.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}
