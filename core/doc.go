// Package core defines the shared types used across labellog.
//
// It provides the Level type for the six supported severities and the
// Entry type that represents a single log event on its way from an
// emitter to its sink.
//
// Entry objects are pooled via sync.Pool. Callers get an Entry with
// GetEntry and return it with PutEntry once the handler has consumed
// it. Entry.Time is stamped by GetEntry, so the timestamp always
// reflects the moment of emission.
package core
