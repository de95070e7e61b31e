package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kubev2v/threadpool/pkg/threadpool"
)

const namespace = "threadpool"

// Metrics exports pool activity as Prometheus collectors. It implements
// threadpool.Observer.
type Metrics struct {
	jobsSubmitted     prometheus.Counter
	jobsCompleted     prometheus.Counter
	jobsPanicked      prometheus.Counter
	busyWorkers       prometheus.Gauge
	workersTerminated prometheus.Counter
	jobDuration       prometheus.Histogram
}

var _ threadpool.Observer = (*Metrics)(nil)

// New creates the pool collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		jobsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jobs_submitted_total",
			Help:      "Total number of jobs accepted by the pool",
		}),
		jobsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jobs_completed_total",
			Help:      "Total number of jobs that returned normally",
		}),
		jobsPanicked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jobs_panicked_total",
			Help:      "Total number of jobs that panicked",
		}),
		busyWorkers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "busy_workers",
			Help:      "Number of workers currently executing a job",
		}),
		workersTerminated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "workers_terminated_total",
			Help:      "Total number of workers that consumed their terminate message",
		}),
		jobDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "job_duration_seconds",
			Help:      "Histogram of job execution time",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	for _, c := range []prometheus.Collector{
		m.jobsSubmitted,
		m.jobsCompleted,
		m.jobsPanicked,
		m.busyWorkers,
		m.workersTerminated,
		m.jobDuration,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) JobSubmitted() {
	m.jobsSubmitted.Inc()
}

func (m *Metrics) JobStarted(int) {
	m.busyWorkers.Inc()
}

func (m *Metrics) JobFinished(_ int, elapsed time.Duration, err error) {
	m.busyWorkers.Dec()
	m.jobDuration.Observe(elapsed.Seconds())
	if err != nil {
		m.jobsPanicked.Inc()
		return
	}
	m.jobsCompleted.Inc()
}

func (m *Metrics) WorkerTerminated(int) {
	m.workersTerminated.Inc()
}

// RegisterQueueGauge exports the pool backlog and size, read at scrape time.
func RegisterQueueGauge(reg prometheus.Registerer, p *threadpool.Pool) error {
	pending := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "queue_pending",
		Help:      "Number of messages waiting in the pool queue",
	}, func() float64 {
		return float64(p.Pending())
	})
	size := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "workers",
		Help:      "Number of workers in the pool",
	}, func() float64 {
		return float64(p.Size())
	})

	if err := reg.Register(pending); err != nil {
		return err
	}
	return reg.Register(size)
}
