package threadpool

import (
	"time"

	"go.uber.org/zap"

	srvErrors "github.com/kubev2v/threadpool/pkg/errors"
)

// Job is a unit of work. The pool invokes each submitted Job exactly once.
type Job func()

type messageKind int

const (
	msgNewJob messageKind = iota
	msgTerminate
)

type message struct {
	kind messageKind
	job  Job
}

func newJobMessage(job Job) message {
	return message{kind: msgNewJob, job: job}
}

func terminateMessage() message {
	return message{kind: msgTerminate}
}

// Observer is notified of pool lifecycle events. Calls are made from the
// submitting goroutine (JobSubmitted) or from the worker goroutines, so
// implementations must be safe for concurrent use. A panicking Observer
// is logged and ignored.
type Observer interface {
	JobSubmitted()
	JobStarted(workerID int)
	JobFinished(workerID int, elapsed time.Duration, err error)
	WorkerTerminated(workerID int)
}

type noopObserver struct{}

func (noopObserver) JobSubmitted()                         {}
func (noopObserver) JobStarted(int)                        {}
func (noopObserver) JobFinished(int, time.Duration, error) {}
func (noopObserver) WorkerTerminated(int)                  {}

// PanicHandler receives the fault of a job that panicked. It runs on the
// worker goroutine that executed the job.
type PanicHandler func(err *srvErrors.JobPanicError)

// Stats is a point-in-time snapshot of the pool counters.
type Stats struct {
	Size       int   `json:"size"`
	Pending    int   `json:"pending"`
	Submitted  int64 `json:"submitted"`
	Completed  int64 `json:"completed"`
	Panicked   int64 `json:"panicked"`
	Busy       int64 `json:"busy"`
	Terminated int64 `json:"terminated"`
}

type Option func(*options)

type options struct {
	logger   *zap.Logger
	onPanic  PanicHandler
	observer Observer
}

func defaultOptions() *options {
	return &options{
		logger:   zap.L(),
		observer: noopObserver{},
	}
}

// WithLogger sets the logger used by the pool and its workers.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithPanicHandler sets the sink for job faults. Faults are always logged,
// the handler is an additional report channel.
func WithPanicHandler(h PanicHandler) Option {
	return func(o *options) {
		o.onPanic = h
	}
}

func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}
