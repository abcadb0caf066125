package internal

import (
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Config holds the process-wide defaults a runtime reads when it is created.
type Config struct {
	// LogHandler receives unhandled rejections when no catcher is registered.
	// Default: slog.Default().Handler()
	LogHandler slog.Handler

	// Registerer is where runtime metrics are registered.
	// Default: nil (metrics are collected but not registered)
	Registerer prometheus.Registerer

	// Namespace is the metrics namespace (default: "signals").
	Namespace string
}

// Option configures the process-wide runtime defaults.
type Option func(*Config)

// WithLogHandler sets the handler unhandled rejections are logged to.
// A nil handler restores the default.
func WithLogHandler(h slog.Handler) Option {
	return func(c *Config) {
		c.LogHandler = h
	}
}

// WithRegisterer sets the Prometheus registerer for runtime metrics.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registerer = r
	}
}

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		if namespace == "" {
			namespace = defaultNamespace
		}
		c.Namespace = namespace
	}
}

const defaultNamespace = "signals"

var (
	configMu      sync.Mutex
	config        = Config{Namespace: defaultNamespace}
	globalMetrics *metrics
)

// Configure applies opts to the defaults. Only runtimes created afterwards see the change.
func Configure(opts ...Option) {
	configMu.Lock()
	defer configMu.Unlock()

	prev := config
	for _, opt := range opts {
		opt(&config)
	}

	// a registerer rejects a second registration of the same collectors
	if globalMetrics == nil || config.Registerer != prev.Registerer || config.Namespace != prev.Namespace {
		globalMetrics = newMetrics(config)
	}
}

func loadConfig() (Config, *metrics) {
	configMu.Lock()
	defer configMu.Unlock()

	if globalMetrics == nil {
		globalMetrics = newMetrics(config)
	}
	return config, globalMetrics
}

func (c Config) logger() *slog.Logger {
	if c.LogHandler == nil {
		return slog.Default()
	}
	return slog.New(c.LogHandler)
}
