package priority

// defaultDegree is the B-tree degree used by the indices when none is configured.
const defaultDegree = 8

// options defines the configuration of a queue.
type options[K, V any] struct {
	degree    int                // B-tree degree of the indices and their multisets
	copyKey   func(K) (K, error) // copies a key into the queue
	copyValue func(V) (V, error) // copies a value into the queue
}

// Option is a function that configures a queue.
type Option[K, V any] func(*options[K, V])

// WithDegree sets the B-tree degree of the indices. Degrees below 2 are ignored.
func WithDegree[K, V any](degree int) Option[K, V] {
	return func(o *options[K, V]) {
		if degree >= 2 {
			o.degree = degree
		}
	}
}

// WithKeyCopier sets the function used to copy a key the first time it enters the
// queue. An error aborts the operation and leaves the queue unchanged.
func WithKeyCopier[K, V any](copyKey func(K) (K, error)) Option[K, V] {
	return func(o *options[K, V]) {
		if copyKey != nil {
			o.copyKey = copyKey
		}
	}
}

// WithValueCopier sets the function used to copy a value the first time it enters
// the queue. An error aborts the operation and leaves the queue unchanged.
func WithValueCopier[K, V any](copyValue func(V) (V, error)) Option[K, V] {
	return func(o *options[K, V]) {
		if copyValue != nil {
			o.copyValue = copyValue
		}
	}
}

func assign[T any](t T) (T, error) { return t, nil }

// defaultOptions returns the default configuration.
func defaultOptions[K, V any]() options[K, V] {
	return options[K, V]{
		degree:    defaultDegree,
		copyKey:   assign[K],
		copyValue: assign[V],
	}
}
