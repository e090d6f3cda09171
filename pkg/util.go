package pkg

// Option is a functional option that transforms a configuration value of
// type T and returns the result.
type Option[T any] func(T) T

// Apply applies each non-nil option to v in order and returns the result.
func Apply[T any](v T, opts ...Option[T]) T {
	for _, opt := range opts {
		if opt != nil {
			v = opt(v)
		}
	}

	return v
}
