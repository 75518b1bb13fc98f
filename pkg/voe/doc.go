// Package voe contains ValueOrError[T], a value of type T or a deferred
// description of why there is no value.
//
// The failure side is held as an ErrorProvider, a function that builds the
// error only when somebody looks at it. Building an error can be costly
// (stack capture, formatting) and many failures are never inspected.
//
// Highlights:
// - Value/Error/ErrorFunc: construct a ValueOrError[T]
// - Select/SelectFunc: "error wins" constructor for (value, err) pairs
// - Errorf/Wrapf: lazy stack-carrying providers
// - Memoize/Join: provider helpers
//
// Providers are invoked again on every observation; they must be free of
// side effects. Wrap them with Memoize to build the error only once.
package voe
