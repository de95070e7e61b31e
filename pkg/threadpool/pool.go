package threadpool

import (
	"sync"

	"go.uber.org/zap"

	srvErrors "github.com/kubev2v/threadpool/pkg/errors"
)

// Pool runs submitted jobs on a fixed set of workers.
type Pool struct {
	workers  []*worker
	queue    *sharedQueue
	log      *zap.Logger
	observer Observer
	counters *counters
	mu       sync.RWMutex
	closed   bool
	once     sync.Once
}

// New starts a pool of size workers. size must be at least 1.
func New(size int, opts ...Option) (*Pool, error) {
	if size < 1 {
		return nil, srvErrors.NewInvalidPoolSizeError(size)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	o.logger = o.logger.Named("threadpool")

	p := &Pool{
		workers:  make([]*worker, 0, size),
		queue:    newSharedQueue(),
		log:      o.logger,
		observer: o.observer,
		counters: &counters{},
	}
	for id := range size {
		p.workers = append(p.workers, newWorker(id, p.queue, o, p.counters))
	}

	p.log.Debug("pool started", zap.Int("size", size))
	return p, nil
}

// MustNew is like New but panics if the pool cannot be created.
func MustNew(size int, opts ...Option) *Pool {
	p, err := New(size, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Submit queues job for execution and returns without waiting for it.
// Once Close has been called every Submit fails with PoolClosedError.
func (p *Pool) Submit(job Job) error {
	if job == nil {
		return srvErrors.NewInvalidJobError()
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return srvErrors.NewPoolClosedError()
	}

	p.counters.submitted.Add(1)
	p.queue.send(newJobMessage(job))
	p.notifySubmitted()
	return nil
}

func (p *Pool) notifySubmitted() {
	defer func() {
		if rec := recover(); rec != nil {
			p.log.Error("observer panicked", zap.Any("panic", rec))
		}
	}()
	p.observer.JobSubmitted()
}

// Close stops the pool. Jobs already queued run first, then every worker
// is joined. Close blocks until the last in-flight job has returned and is
// safe to call more than once.
//
// Close must not be called from inside a job: the worker running that job
// would wait for itself and Close would never return.
func (p *Pool) Close() {
	p.once.Do(func() {
		p.mu.Lock()
		p.closed = true
		p.mu.Unlock()

		// All terminations go out before the first join: a worker can only
		// exit after it dequeues its own Terminate.
		for range p.workers {
			p.queue.send(terminateMessage())
		}

		for _, w := range p.workers {
			p.log.Info("shutting down worker", zap.Int("worker_id", w.id))
			w.join()
		}

		p.queue.release()
		p.log.Debug("pool stopped")
	})
}

func (p *Pool) Size() int {
	return len(p.workers)
}

// Pending returns the number of messages waiting in the queue.
func (p *Pool) Pending() int {
	return p.queue.len()
}

func (p *Pool) Stats() Stats {
	return Stats{
		Size:       p.Size(),
		Pending:    p.Pending(),
		Submitted:  p.counters.submitted.Load(),
		Completed:  p.counters.completed.Load(),
		Panicked:   p.counters.panicked.Load(),
		Busy:       p.counters.busy.Load(),
		Terminated: p.counters.terminated.Load(),
	}
}
