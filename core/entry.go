package core

import (
	"sync"
	"time"
)

// Level represents the severity level of a log entry
type Level int8

const (
	// SillyLevel is the most verbose level
	SillyLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// VerboseLevel for chatty operational detail
	VerboseLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
)

// TraceLevel is an alias of SillyLevel.
const TraceLevel = SillyLevel

var levelNames = [...]string{
	SillyLevel:   "silly",
	DebugLevel:   "debug",
	VerboseLevel: "verbose",
	InfoLevel:    "info",
	WarnLevel:    "warn",
	ErrorLevel:   "error",
}

// String returns the lower-case name of the level. Unknown levels
// return the empty string.
func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return ""
	}
	return levelNames[l]
}

// Valid reports whether l is one of the six known levels.
func (l Level) Valid() bool {
	return l >= SillyLevel && l <= ErrorLevel
}

// Entry represents a log entry with all its metadata
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
	// Meta is carried through to callbacks and adapters; it is never
	// rendered into the output line.
	Meta []any
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	e.Meta = nil
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Message = ""
	e.Meta = nil
	entryPool.Put(e)
}
