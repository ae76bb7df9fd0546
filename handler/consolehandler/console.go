package consolehandler

import (
	"bytes"
	"io"
	"os"
	"sync"
	"time"

	"github.com/philipp01105/labellog/core"
	"github.com/philipp01105/labellog/formatter"
	"github.com/philipp01105/labellog/handler"
)

// lockedWriter wraps an io.Writer with a mutex, acquiring the lock only
// for Write calls.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	n, err = lw.w.Write(p)
	lw.mu.Unlock()
	return
}

// NewLockedWriter returns a writer that serializes Write calls on w.
// Writers that are already safe for concurrent use are returned as is.
func NewLockedWriter(w io.Writer) io.Writer {
	if isConcurrentSafeWriter(w) {
		return w
	}
	return &lockedWriter{w: w}
}

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing the handler to skip write-level locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	switch w.(type) {
	case *os.File, *lockedWriter:
		return true
	}
	return false
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: LabelFormatter with an empty label)
	Formatter formatter.Formatter
	// ConcurrentWriter indicates the Writer supports concurrent Write calls.
	// Automatically detected for io.Discard, *os.File and writers returned
	// by NewLockedWriter.
	ConcurrentWriter bool
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewLabelFormatter("", "", formatter.Config{})
	}
}

// ConsoleHandler is a synchronous handler: every Handle call formats the
// entry and writes it to the writer before returning.
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	bufferFormatter formatter.BufferFormatter
	concurrentSafe  bool
	stats           *handler.Stats
	mu              sync.Mutex // protects syncBuf and, for unsafe writers, writer
	syncBuf         bytes.Buffer
	closed          chan struct{}
	closeOnce       sync.Once
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)

	h := &ConsoleHandler{
		writer:         cfg.Writer,
		formatter:      cfg.Formatter,
		concurrentSafe: cfg.ConcurrentWriter || isConcurrentSafeWriter(cfg.Writer),
		stats:          handler.NewStats(),
		closed:         make(chan struct{}),
	}

	// Cache optional formatter interfaces for the write path
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)

	if h.bufferFormatter != nil {
		h.syncBuf.Grow(256)
	}

	return h
}

// HandleLog processes log data directly without requiring a pooled Entry.
func (h *ConsoleHandler) HandleLog(t time.Time, level core.Level, msg string, meta []any) error {
	entry := core.Entry{
		Time:    t,
		Level:   level,
		Message: msg,
		Meta:    meta,
	}
	return h.Handle(&entry)
}

// Handle formats and writes an entry.
// Uses TryLock on mu to format into the handler-owned buffer when
// uncontended. When contended, formats outside the lock through the
// formatter's own pooled path.
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	select {
	case <-h.closed:
		return ErrClosed
	default:
	}

	if h.bufferFormatter != nil && h.mu.TryLock() {
		h.syncBuf.Reset()
		h.bufferFormatter.FormatEntry(entry, &h.syncBuf)
		_, err := h.writer.Write(h.syncBuf.Bytes())
		h.mu.Unlock()
		return h.record(entry.Level, err)
	}

	if h.writerFormatter != nil {
		var err error
		if h.concurrentSafe {
			err = h.writerFormatter.FormatTo(entry, h.writer)
		} else {
			h.mu.Lock()
			err = h.writerFormatter.FormatTo(entry, h.writer)
			h.mu.Unlock()
		}
		return h.record(entry.Level, err)
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		return h.record(entry.Level, err)
	}

	if h.concurrentSafe {
		_, err = h.writer.Write(data)
	} else {
		h.mu.Lock()
		_, err = h.writer.Write(data)
		h.mu.Unlock()
	}
	return h.record(entry.Level, err)
}

func (h *ConsoleHandler) record(level core.Level, err error) error {
	if err != nil {
		h.stats.IncrementFailed()
		return err
	}
	h.stats.IncrementProcessed(level)
	return nil
}

// CanRecycleEntry returns true because the handler processes entries immediately.
func (h *ConsoleHandler) CanRecycleEntry() bool {
	return true
}

// Formatter returns the formatter used by the handler.
func (h *ConsoleHandler) Formatter() formatter.Formatter {
	return h.formatter
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close closes the handler. Subsequent Handle calls return ErrClosed.
// The underlying writer is not closed.
func (h *ConsoleHandler) Close() error {
	h.closeOnce.Do(func() { close(h.closed) })
	return nil
}
