package voe

import (
	"fmt"
	"strings"
)

// ErrorProvider builds an error on demand.
type ErrorProvider func() error

// UndefinedValueError is the error of a ValueOrError that was never
// constructed, i.e. the zero value.
type UndefinedValueError struct{}

func (UndefinedValueError) Error() string {
	return "Value is undefined."
}

// ErrUndefinedValue is returned by the default provider.
var ErrUndefinedValue error = UndefinedValueError{}

var defaultProvider ErrorProvider = func() error { return ErrUndefinedValue }

// ValueOrError holds either a value of type T or a provider of the error
// explaining why there is none. The zero value is a failure carrying
// ErrUndefinedValue.
type ValueOrError[T any] struct {
	value    T
	provider ErrorProvider
	hasValue bool
}

func newValue[T any](v T) ValueOrError[T] {
	return ValueOrError[T]{
		value:    v,
		hasValue: true,
	}
}

func newError[T any](err error) ValueOrError[T] {
	if IsNil(err) {
		panic(invalidArgument("error"))
	}
	return ValueOrError[T]{
		provider: func() error { return err },
	}
}

func newErrorFunc[T any](provider ErrorProvider) ValueOrError[T] {
	if provider == nil {
		panic(invalidArgument("provider"))
	}
	return ValueOrError[T]{
		provider: provider,
	}
}

func (r ValueOrError[T]) HasValue() bool {
	return r.hasValue
}

// IsError reports whether an error can be resolved, which holds for every
// instance without a value, the zero value included.
func (r ValueOrError[T]) IsError() bool {
	return r.ErrorProvider() != nil
}

// Value returns the wrapped value, or the zero T and the error of a failure.
// The provider is invoked on every call.
func (r ValueOrError[T]) Value() (T, error) {
	if !r.hasValue {
		var zero T
		return zero, r.failure()
	}
	return r.value, nil
}

// MustValue returns the wrapped value. It panics with the failure's error
// when there is none.
func (r ValueOrError[T]) MustValue() T {
	v, err := r.Value()
	if err != nil {
		panic(err)
	}
	return v
}

// Unwrap is Value under the name used by (value, err) adapters.
func (r ValueOrError[T]) Unwrap() (T, error) {
	return r.Value()
}

// Error invokes the provider and returns its error, or nil on success.
func (r ValueOrError[T]) Error() error {
	if p := r.ErrorProvider(); p != nil {
		return p()
	}
	return nil
}

// ErrorProvider returns nil on success, otherwise the explicit provider or
// the default one.
func (r ValueOrError[T]) ErrorProvider() ErrorProvider {
	if r.hasValue {
		return nil
	}
	if r.provider == nil {
		return defaultProvider
	}
	return r.provider
}

// String renders "<type>: <message>" for a failure and the value itself
// for a success. A nil value renders as the empty string.
func (r ValueOrError[T]) String() string {
	if !r.hasValue {
		err := r.failure()
		return typeName(err) + ": " + err.Error()
	}
	if IsNil(r.value) {
		return ""
	}
	return fmt.Sprint(r.value)
}

// failure never returns nil, so a provider answering nil still fails.
func (r ValueOrError[T]) failure() error {
	if err := r.ErrorProvider()(); err != nil {
		return err
	}
	return ErrUndefinedValue
}

func typeName(v any) string {
	return strings.TrimLeft(fmt.Sprintf("%T", v), "*")
}
