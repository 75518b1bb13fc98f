package voe

import (
	"errors"
	"sync"

	pkgerrors "github.com/pkg/errors"
)

// Errorf returns a provider building a formatted error with a stack trace.
// Formatting and stack capture happen on every invocation, never before.
func Errorf(format string, args ...any) ErrorProvider {
	return func() error {
		return pkgerrors.Errorf(format, args...)
	}
}

// Wrapf returns a provider annotating err with a message and a stack trace
// when invoked. It panics if err is nil.
func Wrapf(err error, format string, args ...any) ErrorProvider {
	if IsNil(err) {
		panic(invalidArgument("error"))
	}
	return func() error {
		return pkgerrors.Wrapf(err, format, args...)
	}
}

// Memoize returns a provider that calls provider at most once and hands out
// the same error afterwards. It is safe for concurrent use.
func Memoize(provider ErrorProvider) ErrorProvider {
	if provider == nil {
		panic(invalidArgument("provider"))
	}
	return sync.OnceValue(func() error { return provider() })
}

// Join returns a provider joining the errors of all providers. Nil
// providers and nil errors are skipped.
func Join(providers ...ErrorProvider) ErrorProvider {
	return func() error {
		errs := make([]error, 0, len(providers))
		for _, p := range providers {
			if p == nil {
				continue
			}
			errs = append(errs, p())
		}
		return errors.Join(errs...)
	}
}
