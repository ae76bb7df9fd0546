// Package consolehandler provides the console sink: a synchronous handler
// that writes one formatted line per entry to an io.Writer (default:
// os.Stdout).
//
// Several handlers may share one writer. Wrap such a writer with
// NewLockedWriter so that lines from different handlers never
// interleave; writers known to be safe for concurrent Write calls
// (*os.File, io.Discard) are returned unwrapped.
package consolehandler
