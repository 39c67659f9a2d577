package poolist

// ClearPolicy controls whether vacated slots and returned buffers are
// zeroed.
type ClearPolicy int

const (
	// ClearAuto zeroes only when the element type can hold references,
	// decided once per instantiation. This is the default.
	ClearAuto ClearPolicy = iota
	// ClearAlways zeroes unconditionally, e.g. for value types carrying
	// sensitive data.
	ClearAlways
	// ClearNever skips zeroing even for reference-holding types. The pool
	// may then keep dead data reachable; use only when profiling shows
	// the clearing cost and the retention is acceptable.
	ClearNever
)

type config[T any] struct {
	pool    Pool[T]
	logger  *Logger
	metrics MetricsCollector
	clear   ClearPolicy
}

func defaultConfig[T any]() config[T] {
	return config[T]{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
}

// Option configures a list at construction time.
type Option[T any] func(*config[T])

// WithPool sets the buffer pool the list rents from. If nil is passed,
// the process-wide shared pool for T is used.
func WithPool[T any](p Pool[T]) Option[T] {
	return func(c *config[T]) {
		c.pool = p
	}
}

// WithLogger sets the logger used for buffer lifecycle events (grow,
// shrink, release) at debug level. If nil is passed, logging is disabled.
func WithLogger[T any](l *Logger) Option[T] {
	return func(c *config[T]) {
		if l == nil {
			l = NoopLogger()
		}
		c.logger = l
	}
}

// WithMetrics sets the collector notified of buffer lifecycle events.
// If nil is passed, collection is disabled.
func WithMetrics[T any](mc MetricsCollector) Option[T] {
	return func(c *config[T]) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		c.metrics = mc
	}
}

// WithClearPolicy overrides the automatic clearing decision.
func WithClearPolicy[T any](p ClearPolicy) Option[T] {
	return func(c *config[T]) {
		c.clear = p
	}
}
