package logger

import (
	"strings"

	"github.com/philipp01105/labellog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	SillyLevel   = core.SillyLevel
	TraceLevel   = core.TraceLevel
	DebugLevel   = core.DebugLevel
	VerboseLevel = core.VerboseLevel
	InfoLevel    = core.InfoLevel
	WarnLevel    = core.WarnLevel
	ErrorLevel   = core.ErrorLevel
)

// ParseLevel converts a string to a Level. Unknown names map to SillyLevel.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "silly", "trace":
		return SillyLevel
	case "debug":
		return DebugLevel
	case "verbose":
		return VerboseLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return SillyLevel
	}
}
