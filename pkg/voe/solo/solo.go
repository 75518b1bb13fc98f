package solo

import (
	"context"
	"errors"

	"github.com/ib-77/voe/pkg/voe"
)

func Succeed[T any](input T) voe.ValueOrError[T] {
	return voe.Value(input)
}

func Fail[T any](err error) voe.ValueOrError[T] {
	return voe.Error[T](err)
}

func FailFunc[T any](provider voe.ErrorProvider) voe.ValueOrError[T] {
	return voe.ErrorFunc[T](provider)
}

// passOn rebuilds a failure for another value type, keeping its provider
// uninvoked.
func passOn[In, Out any](input voe.ValueOrError[In]) voe.ValueOrError[Out] {
	return voe.ErrorFunc[Out](input.ErrorProvider())
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) voe.ValueOrError[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input voe.ValueOrError[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) voe.ValueOrError[T] {

	if input.HasValue() {
		v, _ := input.Value()
		if isValid, errMsg := validate(ctx, v); !isValid {
			return voe.ErrorFunc[T](func() error { return errors.New(errMsg) })
		}
	}
	return input
}

// ValidateAll runs every validator against the value of input. Failures are
// joined into one lazy error; with breakOnError the first failure is
// returned as is.
func ValidateAll[T any](
	ctx context.Context,
	input voe.ValueOrError[T],
	breakOnError bool, // exit on first error
	validators ...func(ctx context.Context, in voe.ValueOrError[T]) voe.ValueOrError[T]) voe.ValueOrError[T] {

	if !input.HasValue() || len(validators) == 0 {
		return input
	}

	var failed []voe.ErrorProvider
	for _, validate := range validators {
		if ctx.Err() != nil {
			break
		}

		current := validate(ctx, input)
		if current.HasValue() {
			continue
		}
		if breakOnError {
			return current
		}
		failed = append(failed, current.ErrorProvider())
	}

	if len(failed) == 0 {
		return input
	}
	return voe.ErrorFunc[T](voe.Join(failed...))
}

func Switch[In any, Out any](ctx context.Context,
	input voe.ValueOrError[In],
	onSuccess func(ctx context.Context, r In) voe.ValueOrError[Out]) voe.ValueOrError[Out] {

	if input.HasValue() {
		v, _ := input.Value()
		return onSuccess(ctx, v)
	}
	return passOn[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input voe.ValueOrError[In],
	onSuccess func(ctx context.Context, r In) Out) voe.ValueOrError[Out] {

	if input.HasValue() {
		v, _ := input.Value()
		return voe.Value(onSuccess(ctx, v))
	}
	return passOn[In, Out](input)
}

func Tee[T any](ctx context.Context,
	input voe.ValueOrError[T],
	onSuccess func(ctx context.Context, r voe.ValueOrError[T])) voe.ValueOrError[T] {

	if input.HasValue() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T any](ctx context.Context,
	input voe.ValueOrError[T],
	condition func(ctx context.Context, r voe.ValueOrError[T]) bool,
	onSuccessAndCondition func(ctx context.Context, r voe.ValueOrError[T])) voe.ValueOrError[T] {

	if input.HasValue() {
		if condition(ctx, input) {
			onSuccessAndCondition(ctx, input)
		}
	}

	return input
}

// DoubleTee calls onSuccess with the value or onError with the error. Only
// the failure path materializes the error.
func DoubleTee[T any](ctx context.Context, input voe.ValueOrError[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error)) voe.ValueOrError[T] {

	if v, err := input.Value(); err != nil {
		onError(ctx, err)
	} else {
		onSuccess(ctx, v)
	}

	return input
}

func Try[In any, Out any](ctx context.Context, input voe.ValueOrError[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) voe.ValueOrError[Out] {

	if input.HasValue() {
		v, _ := input.Value()
		out, err := onTryExecute(ctx, v)
		return voe.Select(out, err)
	}
	return passOn[In, Out](input)
}

func FailOnError[T any](ctx context.Context, input voe.ValueOrError[T],
	maybeErr func(ctx context.Context, in T) error) voe.ValueOrError[T] {
	if input.HasValue() {
		v, _ := input.Value()
		if err := maybeErr(ctx, v); !voe.IsNil(err) {
			return voe.Error[T](err)
		}
	}
	return input
}

// Collect gathers the values of inputs. The first failure wins and its
// provider is passed on uninvoked.
func Collect[T any](inputs ...voe.ValueOrError[T]) voe.ValueOrError[[]T] {
	values := make([]T, 0, len(inputs))
	for _, in := range inputs {
		if !in.HasValue() {
			return passOn[T, []T](in)
		}
		v, _ := in.Value()
		values = append(values, v)
	}
	return voe.Value(values)
}

func Finally[In, Out any](ctx context.Context, input voe.ValueOrError[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	v, err := input.Value()
	if err != nil {
		return onError(ctx, err)
	}
	return onSuccess(ctx, v)
}
