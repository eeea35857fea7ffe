package flowpipe

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsConfig configures the metrics plugin.
type MetricsConfig struct {
	// Namespace and Subsystem prefix all metric names.
	// Subsystem defaults to "flowpipe".
	Namespace string
	Subsystem string

	// Name identifies the wrapped transform; it becomes the value of the
	// "transform" label. Defaults to "transform".
	Name string

	// Registerer receives the plugin's collectors.
	// Defaults to prometheus.DefaultRegisterer.
	Registerer prometheus.Registerer

	// DurationBuckets are the histogram buckets for run duration.
	// Defaults to prometheus.DefBuckets.
	DurationBuckets []float64
}

func (c MetricsConfig) parse() MetricsConfig {
	if c.Subsystem == "" {
		c.Subsystem = "flowpipe"
	}
	if c.Name == "" {
		c.Name = "transform"
	}
	if c.Registerer == nil {
		c.Registerer = prometheus.DefaultRegisterer
	}
	if c.DurationBuckets == nil {
		c.DurationBuckets = prometheus.DefBuckets
	}
	return c
}

type metricsPlugin[In, Out any] struct {
	elements prometheus.Counter
	runs     *prometheus.CounterVec
	duration prometheus.Observer
}

// UseMetrics returns a value-transparent plugin that records Prometheus
// metrics for the wrapped transform: elements produced, runs by status,
// and run duration. Collector registration errors are returned rather
// than causing a panic on first use.
func UseMetrics[In, Out any](cfg MetricsConfig) (Plugin[In, Out], error) {
	cfg = cfg.parse()
	labels := prometheus.Labels{"transform": cfg.Name}

	elements := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   cfg.Namespace,
		Subsystem:   cfg.Subsystem,
		Name:        "elements_total",
		Help:        "Elements produced by the wrapped transform.",
		ConstLabels: labels,
	})
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   cfg.Namespace,
		Subsystem:   cfg.Subsystem,
		Name:        "runs_total",
		Help:        "Runs of the wrapped transform by terminal status.",
		ConstLabels: labels,
	}, []string{"status"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   cfg.Namespace,
		Subsystem:   cfg.Subsystem,
		Name:        "run_duration_seconds",
		Help:        "Wall-clock duration of runs of the wrapped transform.",
		ConstLabels: labels,
		Buckets:     cfg.DurationBuckets,
	})

	for _, c := range []prometheus.Collector{elements, runs, duration} {
		if err := cfg.Registerer.Register(c); err != nil {
			return nil, err
		}
	}

	return &metricsPlugin[In, Out]{
		elements: elements,
		runs:     runs,
		duration: duration,
	}, nil
}

func (m *metricsPlugin[In, Out]) Wrap(target Transform[In, Out]) Transform[In, Out] {
	return TransformFunc[In, Out](func(ctx context.Context, in Stream[In]) Stream[Out] {
		// Per-run state lives in this closure; the plugin itself is
		// shared across runs.
		var started time.Time
		hooks := Hooks[Out]{
			OnStart: func(_ context.Context) {
				started = time.Now()
			},
			OnElement: func(_ context.Context, _ Out) {
				m.elements.Inc()
			},
			OnComplete: func(_ context.Context, err error) {
				m.duration.Observe(time.Since(started).Seconds())
				status := "completed"
				if err != nil {
					status = "failed"
				}
				m.runs.WithLabelValues(status).Inc()
			},
		}
		return NewHookPlugin[In, Out](hooks).Wrap(target).Apply(ctx, in)
	})
}
