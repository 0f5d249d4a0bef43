package log

import "context"

type noopLogger struct{}

// NewNoop returns a logger that discards everything. Intended for tests.
func NewNoop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(context.Context, ...any)           {}
func (noopLogger) Debugf(context.Context, string, ...any)  {}
func (noopLogger) Info(context.Context, ...any)            {}
func (noopLogger) Infof(context.Context, string, ...any)   {}
func (noopLogger) Warn(context.Context, ...any)            {}
func (noopLogger) Warnf(context.Context, string, ...any)   {}
func (noopLogger) Error(context.Context, ...any)           {}
func (noopLogger) Errorf(context.Context, string, ...any)  {}
func (noopLogger) Fatal(context.Context, ...any)           {}
func (noopLogger) Fatalf(context.Context, string, ...any)  {}
