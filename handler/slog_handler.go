package handler

import (
	"context"
	"log/slog"

	"github.com/philipp01105/labellog/core"
)

// LevelVerbose and LevelSilly extend the slog levels so that every
// labellog severity has a slog counterpart.
const (
	LevelVerbose = slog.LevelInfo - 2
	LevelSilly   = slog.LevelDebug - 4
)

// SlogHandler is an adapter that implements slog.Handler using a Handler.
// Record attributes travel as entry metadata; like every other metadata
// they are not rendered into the line.
type SlogHandler struct {
	handler Handler
	level   core.Level
	attrs   []any
	group   string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Handler.
func NewSlogHandler(h Handler, level core.Level) *SlogHandler {
	return &SlogHandler{
		handler: h,
		level:   level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return SlogLevelToCore(level) >= s.level
}

// Handle processes a slog.Record by converting it to a core.Entry and passing it to the wrapped handler.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	entry := core.GetEntry()
	defer core.PutEntry(entry)

	if !record.Time.IsZero() {
		entry.Time = record.Time
	}
	entry.Level = SlogLevelToCore(record.Level)
	entry.Message = record.Message

	if n := len(s.attrs) + record.NumAttrs(); n > 0 {
		entry.Meta = make([]any, 0, n)
		entry.Meta = append(entry.Meta, s.attrs...)
		record.Attrs(func(a slog.Attr) bool {
			entry.Meta = append(entry.Meta, groupAttr(s.group, a))
			return true
		})
	}

	return s.handler.Handle(entry)
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]any, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		newAttrs = append(newAttrs, groupAttr(s.group, a))
	}
	return &SlogHandler{
		handler: s.handler,
		level:   s.level,
		attrs:   newAttrs,
		group:   s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		handler: s.handler,
		level:   s.level,
		attrs:   s.attrs,
		group:   newGroup,
	}
}

// SlogLevelToCore converts a slog.Level to a core.Level.
func SlogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= LevelVerbose:
		return core.VerboseLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.SillyLevel
	}
}

// groupAttr prefixes the attribute key with the group path, if any.
func groupAttr(group string, a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()
	if group != "" {
		a.Key = group + "." + a.Key
	}
	return a
}
