package logger

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/philipp01105/labellog/core"
	"github.com/philipp01105/labellog/handler"
)

// LogCallback is invoked after a line has been handed to the sink. err is
// the sink's write error, if any; meta excludes the callback itself.
type LogCallback func(err error, level Level, msg string, meta []any)

// Logger is a labeled emitter (immutable)
type Logger struct {
	handler      handler.Handler
	fastHandler  handler.FastHandler
	level        core.Level
	category     string
	callee       string
	recycleEntry bool
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler      handler.Handler
	fastHandler  handler.FastHandler
	level        core.Level
	category     string
	callee       string
	recycleEntry bool
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level: core.SillyLevel, // Default level: emit everything
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	// Pre-compute recycleEntry to avoid interface assertion in Build()
	if rc, ok := h.(interface{ CanRecycleEntry() bool }); ok {
		b.recycleEntry = rc.CanRecycleEntry()
	} else {
		b.recycleEntry = false
	}
	// Cache FastHandler for pool-free hot path
	b.fastHandler, _ = h.(handler.FastHandler)
	return b
}

// WithLevel sets the minimum level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithLabel records the category and callee the logger was built for
func (b *Builder) WithLabel(category, callee string) *Builder {
	b.category = category
	b.callee = callee
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	return &Logger{
		handler:      b.handler,
		fastHandler:  b.fastHandler,
		level:        b.level,
		category:     b.category,
		callee:       b.callee,
		recycleEntry: b.recycleEntry,
	}
}

// Category returns the logger's category
func (l *Logger) Category() string { return l.category }

// Callee returns the logger's callee, possibly empty
func (l *Logger) Callee() string { return l.callee }

// Level returns the minimum level the logger emits
func (l *Logger) Level() core.Level { return l.level }

// Handler returns the handler the logger writes to
func (l *Logger) Handler() handler.Handler { return l.handler }

// Enabled reports whether a message at level would be emitted
func (l *Logger) Enabled(level core.Level) bool {
	return level >= l.level && l.handler != nil
}

// Log writes a message at the specified level and returns the sink's
// write error. Messages below the logger's level return nil.
func (l *Logger) Log(level core.Level, msg string, meta ...any) error {
	// Level check optimization - exit early BEFORE any allocations
	if level < l.level {
		return nil
	}

	return l.log(level, msg, meta)
}

// log is the internal logging method that takes a pre-allocated slice
func (l *Logger) log(level core.Level, msg string, meta []any) error {
	meta, cb := splitCallback(meta)

	// Handler check - exit if no handler (avoid any work)
	if l.handler == nil {
		if cb != nil {
			cb(nil, level, msg, meta)
		}
		return nil
	}

	var err error
	if l.fastHandler != nil {
		err = l.fastHandler.HandleLog(time.Now(), level, msg, meta)
	} else {
		// Get entry from pool AFTER level check
		entry := core.GetEntry()
		entry.Level = level
		entry.Message = msg
		entry.Meta = meta

		err = l.handler.Handle(entry)

		// Return entry to pool if handler supports it
		if l.recycleEntry {
			core.PutEntry(entry)
		}
	}

	if cb != nil {
		cb(err, level, msg, meta)
	}
	return err
}

// splitCallback removes a trailing callback from meta.
func splitCallback(meta []any) ([]any, LogCallback) {
	if len(meta) == 0 {
		return meta, nil
	}
	switch cb := meta[len(meta)-1].(type) {
	case LogCallback:
		return meta[:len(meta)-1], cb
	case func(error, core.Level, string, []any):
		return meta[:len(meta)-1], cb
	}
	return meta, nil
}

// Silly logs a message at the most verbose level
func (l *Logger) Silly(msg string, meta ...any) {
	if core.SillyLevel < l.level {
		return
	}
	_ = l.log(core.SillyLevel, msg, meta)
}

// Trace is an alias of Silly
func (l *Logger) Trace(msg string, meta ...any) {
	if core.SillyLevel < l.level {
		return
	}
	_ = l.log(core.SillyLevel, msg, meta)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, meta ...any) {
	if core.DebugLevel < l.level {
		return
	}
	_ = l.log(core.DebugLevel, msg, meta)
}

// Verbose logs a verbose message
func (l *Logger) Verbose(msg string, meta ...any) {
	if core.VerboseLevel < l.level {
		return
	}
	_ = l.log(core.VerboseLevel, msg, meta)
}

// Info logs an info message
func (l *Logger) Info(msg string, meta ...any) {
	if core.InfoLevel < l.level {
		return
	}
	_ = l.log(core.InfoLevel, msg, meta)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, meta ...any) {
	if core.WarnLevel < l.level {
		return
	}
	_ = l.log(core.WarnLevel, msg, meta)
}

// Error logs an error message
func (l *Logger) Error(msg string, meta ...any) {
	if core.ErrorLevel < l.level {
		return
	}
	_ = l.log(core.ErrorLevel, msg, meta)
}

// Sillyf logs a message at the most verbose level with formatting
func (l *Logger) Sillyf(format string, args ...interface{}) {
	if core.SillyLevel < l.level {
		return
	}
	_ = l.log(core.SillyLevel, fmt.Sprintf(format, args...), nil)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if core.DebugLevel < l.level {
		return
	}
	_ = l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Verbosef logs a verbose message with formatting
func (l *Logger) Verbosef(format string, args ...interface{}) {
	if core.VerboseLevel < l.level {
		return
	}
	_ = l.log(core.VerboseLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if core.InfoLevel < l.level {
		return
	}
	_ = l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if core.WarnLevel < l.level {
		return
	}
	_ = l.log(core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if core.ErrorLevel < l.level {
		return
	}
	_ = l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// Slog returns a *slog.Logger that writes through this logger's handler
// with the same label and minimum level.
func (l *Logger) Slog() *slog.Logger {
	if l.handler == nil {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(handler.NewSlogHandler(l.handler, l.level))
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
