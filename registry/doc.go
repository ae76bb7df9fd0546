// Package registry hands out labeled loggers, one per identity.
//
// A Registry maps an identity, derived from a category and an optional
// callee as category + "-" + callee, to the logger built the first time
// that identity was requested. Later requests for the same identity get
// the same *logger.Logger, whatever options they pass: the options of
// the first request are frozen into the cached logger.
//
// A Registry is an explicit value. Build one at startup and pass it to
// the code that needs loggers:
//
//	reg := registry.New(registry.Config{})
//	log := reg.GetLabeledInstance("billing", "invoice", nil)
//	log.Info("sent")
//
// GetLabeledInstance is safe for concurrent use; the lookup and the
// insertion of a new logger happen under one lock, so two concurrent
// first requests for an identity still produce a single logger.
package registry
