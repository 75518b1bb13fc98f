package voe

// ValueProvider is implemented by outcomes that may carry a value.
type ValueProvider[T any] interface {
	// HasValue reports whether a value is present
	HasValue() bool
	// Value returns the value, or the error explaining its absence
	Value() (T, error)
}

// WithError extends ValueProvider with access to the failure side.
type WithError[T any] interface {
	ValueProvider[T]
	// IsError returns true if an error can be resolved
	IsError() bool
	// Error builds and returns the error, or nil
	Error() error
	// ErrorProvider returns the lazy error factory, or nil
	ErrorProvider() ErrorProvider
}

var _ WithError[int] = ValueOrError[int]{}
