package formatter

import (
	"bytes"
	"io"

	"github.com/philipp01105/labellog/core"
)

// LabelFormatter renders entries as
// "<timestamp> <[LEVEL] padded> --- [<category>[:<callee>]]: <message>".
// Entry metadata is not rendered.
type LabelFormatter struct {
	Config
	category string
	callee   string
	label    string
	levels   [core.ErrorLevel + 1]string
}

// NewLabelFormatter creates a formatter bound to the given category and
// callee. Either may be empty; an empty callee drops the ":callee"
// suffix.
func NewLabelFormatter(category, callee string, cfg Config) *LabelFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = TimestampLayout
	}
	f := &LabelFormatter{
		Config:   cfg,
		category: category,
		callee:   callee,
	}

	label := FormatCategory(category, cfg.Colorize)
	if c := FormatCategory(callee, cfg.Colorize); c != "" {
		label += ":" + c
	}
	f.label = "[" + label + "]"

	for l := core.SillyLevel; l <= core.ErrorLevel; l++ {
		f.levels[l] = FormatLevel(l.String(), cfg.Colorize)
	}
	return f
}

// Category returns the category this formatter labels lines with.
func (f *LabelFormatter) Category() string { return f.category }

// Callee returns the callee this formatter labels lines with.
func (f *LabelFormatter) Callee() string { return f.callee }

// Label returns the pre-rendered "[category:callee]" segment.
func (f *LabelFormatter) Label() string { return f.label }

// Format formats an entry as a labeled line
func (f *LabelFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *LabelFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatEntry formats an entry into the given buffer (implements BufferFormatter).
func (f *LabelFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	f.formatToBuffer(entry, buf)
}

// formatToBuffer writes the formatted entry into the given buffer
func (f *LabelFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteByte(' ')

	if entry.Level.Valid() {
		buf.WriteString(f.levels[entry.Level])
	}

	buf.WriteString(" --- ")
	buf.WriteString(f.label)
	buf.WriteString(": ")
	buf.WriteString(entry.Message)
	buf.WriteByte('\n')
}
