package internal

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus collectors shared by every runtime.
type metrics struct {
	tasksExecuted prometheus.Counter
	taskPanics    prometheus.Counter
	unhandled     prometheus.Counter
	workersActive prometheus.Gauge
}

func newMetrics(cfg Config) *metrics {
	// promauto skips registration for a nil registerer
	factory := promauto.With(cfg.Registerer)

	return &metrics{
		tasksExecuted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: "runtime",
			Name:      "tasks_executed_total",
			Help:      "Total number of scheduled continuations run",
		}),

		taskPanics: factory.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: "runtime",
			Name:      "task_panics_total",
			Help:      "Total number of continuations that panicked",
		}),

		unhandled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: "runtime",
			Name:      "unhandled_rejections_total",
			Help:      "Total number of rejections no continuation handled",
		}),

		workersActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: cfg.Namespace,
			Subsystem: "runtime",
			Name:      "workers_active",
			Help:      "Number of runtimes currently draining their task queue",
		}),
	}
}
