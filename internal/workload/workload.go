package workload

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kubev2v/threadpool/pkg/threadpool"
)

var errFlaky = errors.New("flaky operation failed")

// MaxRetries bounds Spec.Retries. backoff treats zero max tries as
// unlimited, so Retries+1 must not wrap.
const MaxRetries = 10

// Submitter is the part of the pool used by the runner.
type Submitter interface {
	Submit(job threadpool.Job) error
}

// Spec describes a batch of synthetic jobs.
type Spec struct {
	Count     int
	Duration  time.Duration
	FailRate  float64
	PanicRate float64
	Retries   uint
}

func (s Spec) Validate() error {
	if s.Count < 0 {
		return fmt.Errorf("invalid job count %d", s.Count)
	}
	if s.Duration < 0 {
		return fmt.Errorf("invalid job duration %s", s.Duration)
	}
	if s.FailRate < 0 || s.FailRate > 1 {
		return fmt.Errorf("invalid fail rate %v: must be in [0, 1]", s.FailRate)
	}
	if s.PanicRate < 0 || s.PanicRate > 1 {
		return fmt.Errorf("invalid panic rate %v: must be in [0, 1]", s.PanicRate)
	}
	if s.Retries > MaxRetries {
		return fmt.Errorf("invalid retries %d: must be at most %d", s.Retries, MaxRetries)
	}
	return nil
}

// Summary counts the outcome of the jobs run so far.
type Summary struct {
	Submitted int64 `json:"submitted"`
	Succeeded int64 `json:"succeeded"`
	Failed    int64 `json:"failed"`
	Retried   int64 `json:"retried"`
}

// Runner turns a Spec into jobs and submits them to a pool.
type Runner struct {
	pool      Submitter
	chance    func() float64
	backoff   func() backoff.BackOff
	submitted atomic.Int64
	succeeded atomic.Int64
	failed    atomic.Int64
	retried   atomic.Int64
}

type Option func(*Runner)

// WithChance replaces the random source deciding failures and panics.
func WithChance(fn func() float64) Option {
	return func(r *Runner) {
		r.chance = fn
	}
}

// WithBackOff replaces the retry policy of the flaky operation.
func WithBackOff(fn func() backoff.BackOff) Option {
	return func(r *Runner) {
		r.backoff = fn
	}
}

func NewRunner(pool Submitter, opts ...Option) *Runner {
	r := &Runner{
		pool:    pool,
		chance:  rand.Float64,
		backoff: defaultBackOff,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 5 * time.Millisecond
	b.MaxInterval = 200 * time.Millisecond
	return b
}

// Submit queues spec.Count jobs and returns their ids. It stops at the first
// job the pool refuses and returns the ids accepted so far with the error.
func (r *Runner) Submit(ctx context.Context, spec Spec) ([]uuid.UUID, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	// jobs outlive the request that created them
	ctx = context.WithoutCancel(ctx)

	ids := make([]uuid.UUID, 0, spec.Count)
	for range spec.Count {
		id := uuid.New()
		if err := r.pool.Submit(r.job(ctx, id, spec)); err != nil {
			return ids, fmt.Errorf("failed to submit job %s: %w", id, err)
		}
		r.submitted.Add(1)
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *Runner) job(ctx context.Context, id uuid.UUID, spec Spec) threadpool.Job {
	willPanic := spec.PanicRate > 0 && r.chance() < spec.PanicRate

	return func() {
		log := zap.S().Named("workload").With("job_id", id.String())

		if willPanic {
			panic(fmt.Sprintf("job %s: injected fault", id))
		}

		_, err := backoff.Retry(ctx, func() (struct{}, error) {
			time.Sleep(spec.Duration)
			if spec.FailRate > 0 && r.chance() < spec.FailRate {
				return struct{}{}, errFlaky
			}
			return struct{}{}, nil
		},
			backoff.WithBackOff(r.backoff()),
			backoff.WithMaxTries(spec.Retries+1),
			backoff.WithNotify(func(err error, next time.Duration) {
				r.retried.Add(1)
				log.Debugw("retrying job", "error", err, "next", next)
			}),
		)
		if err != nil {
			r.failed.Add(1)
			log.Warnw("job failed", "error", err)
			return
		}

		r.succeeded.Add(1)
		log.Debugw("job done")
	}
}

func (r *Runner) Summary() Summary {
	return Summary{
		Submitted: r.submitted.Load(),
		Succeeded: r.succeeded.Load(),
		Failed:    r.failed.Load(),
		Retried:   r.retried.Load(),
	}
}
