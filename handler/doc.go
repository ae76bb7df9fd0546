// Package handler provides the Handler interface that connects emitters
// to their sinks, plus the adapters built on top of it.
//
// Handlers in this module are synchronous: Handle formats and writes the
// entry before returning, and the write error (if any) is returned to
// the caller unchanged. There is no queue, no overflow policy and no
// background goroutine.
//
// Built-in handlers and adapters:
//
//   - consolehandler.ConsoleHandler writes formatted entries to any
//     io.Writer (default: os.Stdout).
//   - SlogHandler adapts a Handler to log/slog.Handler so that code using
//     the standard library logger renders through the same sink.
//
// Handlers track processed and failed writes via the Stats type.
package handler
