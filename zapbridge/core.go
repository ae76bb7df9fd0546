// Package zapbridge renders zap log records through a labellog logger,
// so libraries that log with zap share the labeled console format.
//
// Zap fields travel as a single map[string]any metadata value and are
// not rendered, like all labellog metadata.
package zapbridge

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/labellog/core"
	"github.com/philipp01105/labellog/logger"
)

type bridgeCore struct {
	log    *logger.Logger
	fields []zapcore.Field
}

// NewCore returns a zapcore.Core that writes through l. The core is
// enabled for the levels l emits.
func NewCore(l *logger.Logger) zapcore.Core {
	return &bridgeCore{log: l}
}

// New returns a *zap.Logger backed by NewCore(l).
func New(l *logger.Logger, opts ...zap.Option) *zap.Logger {
	return zap.New(NewCore(l), opts...)
}

// Level maps a zap level onto a labellog level. DPanic, Panic and Fatal
// collapse onto ErrorLevel.
func Level(lvl zapcore.Level) core.Level {
	switch {
	case lvl >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case lvl == zapcore.WarnLevel:
		return core.WarnLevel
	case lvl == zapcore.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

func (c *bridgeCore) Enabled(lvl zapcore.Level) bool {
	return c.log.Enabled(Level(lvl))
}

func (c *bridgeCore) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	merged = append(merged, fields...)
	return &bridgeCore{log: c.log, fields: merged}
}

func (c *bridgeCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *bridgeCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	if len(c.fields) == 0 && len(fields) == 0 {
		return c.log.Log(Level(ent.Level), ent.Message)
	}

	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}
	return c.log.Log(Level(ent.Level), ent.Message, enc.Fields)
}

func (c *bridgeCore) Sync() error {
	return nil
}
