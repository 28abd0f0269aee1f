package markdown

import (
	"context"

	"github.com/iw2rmb/ninja/internal/logging"
)

type countingLogger struct {
	debug int
}

func (l *countingLogger) Trace(string, ...any) {}
func (l *countingLogger) Debug(string, ...any) { l.debug++ }
func (l *countingLogger) Info(string, ...any)  {}
func (l *countingLogger) Warn(string, ...any)  {}
func (l *countingLogger) Error(string, ...any) {}
func (l *countingLogger) Fatal(string, ...any) {}

func (l *countingLogger) WithContext(context.Context) logging.Logger { return l }
