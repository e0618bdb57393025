package vecbuf

import "github.com/hupe1980/vecbuf/pagealloc"

type options struct {
	allocator pagealloc.Allocator
	logger    *Logger
	metrics   MetricsCollector
}

// Option configures Vec construction.
type Option func(*options)

// WithAllocator sets the page allocator that backs the Vec. If nil is
// passed, pagealloc.Default is used.
//
// Injecting an allocator is also the seam for testing growth behavior with
// small pages or recorded reserve/release calls.
func WithAllocator(a pagealloc.Allocator) Option {
	return func(o *options) {
		if a == nil {
			a = pagealloc.Default
		}
		o.allocator = a
	}
}

// WithLogger sets the structured logger. If nil is passed, logging is
// disabled. Growth events log at Debug level.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics sets the metrics collector. If nil is passed, metrics are
// discarded.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

func defaultOptions() options {
	return options{
		allocator: pagealloc.Default,
		logger:    NoopLogger(),
		metrics:   NoopMetricsCollector{},
	}
}
