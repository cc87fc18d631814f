package logging

import (
	"context"
	"log/slog"
)

// Attr aliases slog.Attr so callers can build records through this package.
type Attr = slog.Attr

func String(key, value string) Attr { return slog.String(key, value) }

func Int(key string, value int) Attr { return slog.Int(key, value) }

// Error tags err under the "error" key. A nil error is rendered as "<nil>".
func Error(err error) Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

// Event describes a degraded outcome: the event type used for filtering,
// what the user can do about it and what the run loses.
type Event struct {
	Type   string
	Hint   string
	Impact string
}

func (e Event) attrs() []Attr {
	hint, impact := e.Hint, e.Impact
	if hint == "" {
		hint = "check logs for details"
	}
	if impact == "" {
		impact = "operation completed with warnings"
	}
	return []Attr{
		String(FieldEventType, e.Type),
		String(FieldErrorHint, hint),
		String(FieldImpact, impact),
	}
}

// Warn logs msg at warn level with the event fields appended to attrs.
func Warn(logger *slog.Logger, msg string, event Event, attrs ...Attr) {
	logEvent(logger, slog.LevelWarn, msg, event, attrs)
}

// Fail logs msg at error level with the event fields appended to attrs.
func Fail(logger *slog.Logger, msg string, event Event, attrs ...Attr) {
	logEvent(logger, slog.LevelError, msg, event, attrs)
}

func logEvent(logger *slog.Logger, level slog.Level, msg string, event Event, attrs []Attr) {
	if logger == nil {
		return
	}
	logger.LogAttrs(context.Background(), level, msg, append(attrs, event.attrs()...)...)
}

// Decision records the outcome of a choice at debug level, for example a
// cache hit or a fallback layout.
func Decision(logger *slog.Logger, kind, result, reason string, attrs ...Attr) {
	if logger == nil {
		return
	}
	logger.LogAttrs(context.Background(), slog.LevelDebug, kind+" decision", append([]Attr{
		String(FieldDecisionType, kind),
		String(FieldDecisionResult, result),
		String(FieldDecisionReason, reason),
	}, attrs...)...)
}

func NewNop() *slog.Logger {
	return slog.New(discardHandler{})
}

// NewComponentLogger tags logger with a component name. A nil logger yields
// a no-op logger.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(String(FieldComponent, component))
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }
