package vecbuf

// MetricsCollector receives buffer operation metrics. A Vec invokes its
// collector synchronously from the owning goroutine; implementations that
// are shared across buffers must be safe for concurrent use.
type MetricsCollector interface {
	// RecordPush is called after bytes are appended to a buffer.
	RecordPush(bytes int)

	// RecordGrow is called after a backing region is replaced, with the
	// number of occupied bytes copied to the new region.
	RecordGrow(bytesCopied int)
}

// NoopMetricsCollector discards all metrics. It is the default collector.
type NoopMetricsCollector struct{}

// RecordPush implements MetricsCollector.
func (NoopMetricsCollector) RecordPush(bytes int) {}

// RecordGrow implements MetricsCollector.
func (NoopMetricsCollector) RecordGrow(bytesCopied int) {}
