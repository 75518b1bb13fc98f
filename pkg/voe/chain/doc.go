// Package chain provides a fluent wrapper around voe.ValueOrError[T]
// for building synchronous chains using solo primitives.
//
// Every chain gets a uuid and, unless disabled through WithStepLogging,
// writes a debug entry per step to the apex/log logger set by WithLogger
// (log.Log otherwise). Entries say whether the step succeeded, failed or
// was skipped; they never build the failure's error.
//
// Key operations:
// - Start/FromValue: begin a chain from a ValueOrError[T] or value
// - Then: switch to a new ValueOrError[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
