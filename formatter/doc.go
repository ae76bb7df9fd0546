// Package formatter defines how log entries are rendered into bytes.
//
// It exposes three interfaces: Formatter, which returns a []byte,
// WriterFormatter, which writes directly to an io.Writer, and
// BufferFormatter, which appends into a caller-owned buffer. Handlers
// check for the optional interfaces at construction time and prefer
// them when available.
//
// LabelFormatter renders the labeled line layout
//
//	2026-01-15 01:04:05.123 [INFO]              --- [svc:worker]: message
//
// The level token and the bracketed label are computed once per
// formatter, so the per-entry work is a timestamp append plus a few
// WriteString calls into a pooled bytes.Buffer.
//
// Colors come from lipgloss styles bound to a renderer pinned to the
// ANSI profile; whether a formatter colorizes is decided once at
// construction by Config.Colorize, never by probing the terminal.
package formatter
