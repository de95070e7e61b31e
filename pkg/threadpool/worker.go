package threadpool

import (
	"fmt"
	"runtime/debug"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	srvErrors "github.com/kubev2v/threadpool/pkg/errors"
)

type counters struct {
	submitted  atomic.Int64
	completed  atomic.Int64
	panicked   atomic.Int64
	busy       atomic.Int64
	terminated atomic.Int64
}

type worker struct {
	id       int
	done     chan struct{}
	queue    *sharedQueue
	log      *zap.Logger
	observer Observer
	onPanic  PanicHandler
	counters *counters
}

func newWorker(id int, q *sharedQueue, o *options, c *counters) *worker {
	w := &worker{
		id:       id,
		done:     make(chan struct{}),
		queue:    q,
		log:      o.logger.With(zap.Int("worker_id", id)),
		observer: o.observer,
		onPanic:  o.onPanic,
		counters: c,
	}
	go w.run(w.done)
	return w
}

// run consumes messages until a Terminate. done is closed only then: if a
// job ends the goroutine with runtime.Goexit, a new goroutine takes over
// the loop and keeps the same done channel.
func (w *worker) run(done chan struct{}) {
	terminated := false
	defer func() {
		if terminated {
			close(done)
			return
		}
		w.log.Warn("worker goroutine exited by a job; restarting")
		go w.run(done)
	}()

	for {
		msg := w.queue.receive()
		switch msg.kind {
		case msgNewJob:
			w.log.Debug("worker got a job; executing")
			w.execute(msg.job)
		case msgTerminate:
			w.log.Debug("worker terminating")
			w.counters.terminated.Add(1)
			w.notify(func(o Observer) { o.WorkerTerminated(w.id) })
			terminated = true
			return
		}
	}
}

// execute runs the job and turns a panic into a JobPanicError so the
// worker loop survives it. The bookkeeping is deferred so it also runs
// when the job calls runtime.Goexit.
func (w *worker) execute(job Job) {
	w.counters.busy.Add(1)
	w.notify(func(o Observer) { o.JobStarted(w.id) })
	start := time.Now()

	returned := false
	defer func() {
		var fault *srvErrors.JobPanicError
		if rec := recover(); rec != nil {
			fault = srvErrors.NewJobPanicError(w.id, rec, debug.Stack())
		} else if !returned {
			fault = srvErrors.NewJobPanicError(w.id, srvErrors.NewJobExitError(), debug.Stack())
		}
		w.finish(fault, time.Since(start))
	}()

	job()
	returned = true
}

func (w *worker) finish(fault *srvErrors.JobPanicError, elapsed time.Duration) {
	w.counters.busy.Add(-1)
	if fault != nil {
		w.counters.panicked.Add(1)
		w.report(fault)
		w.notify(func(o Observer) { o.JobFinished(w.id, elapsed, fault) })
		return
	}
	w.counters.completed.Add(1)
	w.notify(func(o Observer) { o.JobFinished(w.id, elapsed, nil) })
}

func (w *worker) report(fault *srvErrors.JobPanicError) {
	w.log.Error("job panicked", zap.Any("panic", fault.Value), zap.ByteString("stack", fault.Stack))

	if w.onPanic == nil {
		return
	}

	defer func() {
		if rec := recover(); rec != nil {
			w.log.Error("panic handler panicked", zap.Any("panic", rec))
		}
	}()
	w.onPanic(fault)
}

// notify calls the observer. Observer panics are logged and dropped.
func (w *worker) notify(fn func(Observer)) {
	defer func() {
		if rec := recover(); rec != nil {
			w.log.Error("observer panicked", zap.Any("panic", rec))
		}
	}()
	fn(w.observer)
}

// join waits for the worker goroutine to return. A worker is joined once.
func (w *worker) join() {
	if w.done == nil {
		panic(fmt.Sprintf("threadpool: worker %d joined twice", w.id))
	}
	<-w.done
	w.done = nil
}
