package chain

import (
	"context"

	"github.com/apex/log"
)

type OptionKey string

const (
	LogOptionKey OptionKey = "log_options"
)

type LogOptions struct {
	Logger   log.Interface
	LogSteps bool
}

// WithLogger stores the logger used by chains started from ctx.
func WithLogger(ctx context.Context, logger log.Interface) context.Context {
	options := getLogOptions(ctx)
	options.Logger = logger
	return context.WithValue(ctx, LogOptionKey, options)
}

// WithStepLogging turns per-step debug entries on or off.
func WithStepLogging(ctx context.Context, enabled bool) context.Context {
	options := getLogOptions(ctx)
	options.LogSteps = enabled
	return context.WithValue(ctx, LogOptionKey, options)
}

func GetLogger(ctx context.Context, defaultLogger log.Interface) log.Interface {
	if options, ok := ctx.Value(LogOptionKey).(LogOptions); ok && options.Logger != nil {
		return options.Logger
	}
	return defaultLogger
}

func IsStepLoggingEnabled(ctx context.Context, defaultLogSteps bool) bool {
	if options, ok := ctx.Value(LogOptionKey).(LogOptions); ok {
		return options.LogSteps
	}
	return defaultLogSteps
}

func getLogOptions(ctx context.Context) LogOptions {
	if options, ok := ctx.Value(LogOptionKey).(LogOptions); ok {
		return options
	}
	return LogOptions{LogSteps: true}
}
