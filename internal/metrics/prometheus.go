package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder backed by Prometheus. Collectors are
// registered lazily on first use.
type PrometheusRecorder struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	generations        *prometheus.CounterVec
	generationDuration prometheus.Histogram
	batchSize          prometheus.Histogram
	assignments        prometheus.Counter
}

var _ Recorder = (*PrometheusRecorder)(nil)

// NewPrometheus creates a recorder registering into reg (prometheus.DefaultRegisterer
// if nil) under namespace ("assistea" if empty).
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusRecorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "assistea"
	}
	return &PrometheusRecorder{reg: reg, namespace: namespace}
}

func (p *PrometheusRecorder) ensureRegistered() {
	p.once.Do(func() {
		p.generations = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Name:      "schedule_generations_total",
			Help:      "Schedule generation attempts by outcome.",
		}, []string{"outcome"})

		p.generationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Name:      "schedule_generation_duration_seconds",
			Help:      "End-to-end schedule generation latency in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms .. ~20s
		})

		p.batchSize = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Name:      "predictor_batch_size",
			Help:      "Number of worker-field combinations sent per prediction call.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		})

		p.assignments = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Name:      "schedule_assignments_total",
			Help:      "Worker assignments produced by successful generations.",
		})

		p.reg.MustRegister(p.generations, p.generationDuration, p.batchSize, p.assignments)
	})
}

func (p *PrometheusRecorder) ObserveGeneration(outcome string, elapsed time.Duration) {
	p.ensureRegistered()
	p.generations.WithLabelValues(outcome).Inc()
	p.generationDuration.Observe(elapsed.Seconds())
}

func (p *PrometheusRecorder) ObservePredictorBatch(size int) {
	p.ensureRegistered()
	p.batchSize.Observe(float64(size))
}

func (p *PrometheusRecorder) AddAssignments(n int) {
	p.ensureRegistered()
	p.assignments.Add(float64(n))
}
