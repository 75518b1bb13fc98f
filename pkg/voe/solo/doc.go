// Package solo contains single-value, synchronous combinators over
// voe.ValueOrError[T]. A failure flows through every step untouched and its
// error provider is not invoked until somebody reads the error.
//
// Highlights:
// - Succeed/Fail/FailFunc: construct a ValueOrError[T]
// - Validate/AndValidate/ValidateAll: turn invalid input into failures
// - Switch: move from ValueOrError[In] to ValueOrError[Out]
// - Map: transform successful values
// - Try/FailOnError: adapt (Out, error) and error-returning functions
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Collect: gather many outcomes into one
// - Finally: reduce to a concrete value via success/error handlers
package solo
