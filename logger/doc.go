// Package logger provides Logger, the labeled emitter handed out by the
// registry package.
//
// A Logger is immutable after construction: its handler, label and
// minimum level are set once via the Builder and never modified. This
// makes Logger safe for concurrent use without locking on the read
// path.
//
// Each of the six leveled methods writes exactly one line:
//
//	log.Info("listening", 8080)
//	log.Warnf("retry %d/%d", n, max)
//
// Trailing arguments are metadata. They are carried to callbacks and
// adapters but never rendered into the line. When the last argument is a
// LogCallback it is removed from the metadata and invoked once the line
// has been written:
//
//	log.Error("flush failed", err, logger.LogCallback(func(err error, _ logger.Level, _ string, _ []any) {
//		if err != nil {
//			// the sink could not write the line
//		}
//	}))
//
// Level checks happen before any allocation, so filtered-out messages
// cost only a single integer comparison. By default every level is
// emitted.
package logger
