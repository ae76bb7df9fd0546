package registry

import (
	"io"
	"os"
	"sync"

	"github.com/philipp01105/labellog/core"
	"github.com/philipp01105/labellog/formatter"
	"github.com/philipp01105/labellog/handler/consolehandler"
	"github.com/philipp01105/labellog/logger"
)

// DefaultCategory is used when a request carries an empty category.
const DefaultCategory = "main"

// Config holds configuration for a Registry
type Config struct {
	// Writer every logger writes to (default: os.Stdout)
	Writer io.Writer
	// TimestampFormat is the time layout (default: formatter.TimestampLayout)
	TimestampFormat string
	// Level is the minimum level of built loggers (default: SillyLevel)
	Level core.Level
}

// Registry caches one logger per identity. The zero value is not usable;
// create registries with New.
type Registry struct {
	mu        sync.Mutex
	instances map[string]*logger.Logger
	writer    io.Writer
	timestamp string
	level     core.Level
}

// New creates an empty registry.
func New(cfg Config) *Registry {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = formatter.TimestampLayout
	}
	if !cfg.Level.Valid() {
		cfg.Level = core.SillyLevel
	}

	return &Registry{
		instances: make(map[string]*logger.Logger),
		// All loggers share the writer; serialize their lines on it.
		writer:    consolehandler.NewLockedWriter(cfg.Writer),
		timestamp: cfg.TimestampFormat,
		level:     cfg.Level,
	}
}

// normalize applies the category and callee defaults.
func normalize(category, callee string) (string, string) {
	if category == "" {
		category = DefaultCategory
	}
	return category, callee
}

// Identity returns the cache key for category and callee after defaults
// are applied: category + "-" + callee.
func Identity(category, callee string) string {
	category, callee = normalize(category, callee)
	return category + "-" + callee
}

// GetLabeledInstance returns the logger for (category, callee), building
// it on first use. An empty category means "main"; an empty callee
// omits the ":callee" label suffix. opts only affect the first request
// of an identity; nil opts mean colors on.
func (r *Registry) GetLabeledInstance(category, callee string, opts *Options) *logger.Logger {
	category, callee = normalize(category, callee)
	colorize := opts.ColorizeEnabled()
	identity := category + "-" + callee

	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.instances[identity]; ok {
		return l
	}

	l := r.build(category, callee, colorize)
	r.instances[identity] = l
	return l
}

// build constructs a logger bound to a fresh console sink.
func (r *Registry) build(category, callee string, colorize bool) *logger.Logger {
	f := formatter.NewLabelFormatter(category, callee, formatter.Config{
		Colorize:        colorize,
		TimestampFormat: r.timestamp,
	})
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    r.writer,
		Formatter: f,
	})
	return logger.NewBuilder().
		WithHandler(h).
		WithLabel(category, callee).
		WithLevel(r.level).
		Build()
}

// Lookup returns the cached logger for (category, callee) without
// building one.
func (r *Registry) Lookup(category, callee string) (*logger.Logger, bool) {
	identity := Identity(category, callee)

	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.instances[identity]
	return l, ok
}

// Len returns the number of cached loggers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.instances)
}

// Identities returns the cached identities in no particular order.
func (r *Registry) Identities() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0, len(r.instances))
	for id := range r.instances {
		ids = append(ids, id)
	}
	return ids
}
