package chain

import (
	"context"

	"github.com/apex/log"
	"github.com/google/uuid"
	"github.com/ib-77/voe/pkg/voe"
	"github.com/ib-77/voe/pkg/voe/solo"
)

// Chain wraps a voe.ValueOrError with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	id     uuid.UUID
	result voe.ValueOrError[T]
}

// Start creates a new chain from a voe.ValueOrError
func Start[T any](ctx context.Context, result voe.ValueOrError[T]) *Chain[T] {
	c := &Chain[T]{
		ctx:    ctx,
		id:     uuid.New(),
		result: result,
	}
	c.logStep("start", outcome(result))
	return c
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, voe.Value(value))
}

func (c *Chain[T]) ID() uuid.UUID {
	return c.id
}

// Result returns the underlying voe.ValueOrError
func (c *Chain[T]) Result() voe.ValueOrError[T] {
	return c.result
}

// Then chains a function that returns voe.ValueOrError[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) voe.ValueOrError[U]) *Chain[U] {
	return next(c, "then", solo.Switch(c.ctx, c.result, onSuccess))
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return next(c, "try", solo.Try(c.ctx, c.result, tryOnSuccess))
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return next(c, "map", solo.Map(c.ctx, c.result, onSuccess))
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return next(c, "ensure", solo.Tee(c.ctx, c.result,
		func(ctx context.Context, result voe.ValueOrError[T]) {
			onSuccess(ctx, result.MustValue())
		}))
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onError func(context.Context, error) U) U {
	c.logStep("finally", outcome(c.result))
	return solo.Finally(c.ctx, c.result, onSuccess, onError)
}

func next[T, U any](c *Chain[T], step string, result voe.ValueOrError[U]) *Chain[U] {
	n := &Chain[U]{
		ctx:    c.ctx,
		id:     c.id,
		result: result,
	}
	if !c.result.HasValue() {
		n.logStep(step, "skipped")
		return n
	}
	n.logStep(step, outcome(result))
	return n
}

// outcome never reads the error, a failure stays unmaterialized.
func outcome[T any](r voe.ValueOrError[T]) string {
	if r.HasValue() {
		return "succeeded"
	}
	return "failed"
}

func (c *Chain[T]) logStep(step, msg string) {
	if !IsStepLoggingEnabled(c.ctx, true) {
		return
	}

	GetLogger(c.ctx, log.Log).WithFields(log.Fields{
		"chain": c.id.String(),
		"step":  step,
	}).Debug(msg)
}
