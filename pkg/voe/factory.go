package voe

// Value returns a success wrapping v. Nil and zero values are valid.
func Value[T any](v T) ValueOrError[T] {
	return newValue(v)
}

// Error returns a failure carrying err. It panics if err is nil.
func Error[T any](err error) ValueOrError[T] {
	return newError[T](err)
}

// ErrorFunc returns a failure whose error is built by provider on demand.
// It panics if provider is nil.
func ErrorFunc[T any](provider ErrorProvider) ValueOrError[T] {
	return newErrorFunc[T](provider)
}

// Select returns a failure carrying err when err is not nil, otherwise a
// success wrapping value.
func Select[T any](value T, err error) ValueOrError[T] {
	if !IsNil(err) {
		return Error[T](err)
	}
	return Value(value)
}

// SelectFunc is Select for a lazy provider.
func SelectFunc[T any](value T, provider ErrorProvider) ValueOrError[T] {
	if provider != nil {
		return ErrorFunc[T](provider)
	}
	return Value(value)
}
