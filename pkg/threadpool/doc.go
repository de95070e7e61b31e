// Package threadpool implements a fixed-size pool of workers executing
// fire-and-forget jobs.
//
// A Pool owns N worker goroutines created once at construction. Jobs are
// submitted with Submit and travel through a single shared FIFO queue to
// whichever worker is idle. There are no results, no cancellation and no
// backpressure: the queue is unbounded and Submit never waits for a job.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────────┐
//	│                              Pool                                   │
//	│                                                                     │
//	│   Submit(job) ──► send(NewJob)          Close() ──► send(Terminate) │
//	│                        │                         × N, then join     │
//	│                        ▼                                            │
//	│  ┌─────────────────────────────────────────────────────────┐        │
//	│  │              Shared Queue (mutex + cond)                │        │
//	│  │  [NewJob] [NewJob] [NewJob] ... [Terminate] [Terminate] │        │
//	│  └─────────────────────────────────────────────────────────┘        │
//	│         │ receive()             │ receive()           │ receive()   │
//	│         ▼                       ▼                     ▼             │
//	│  ┌──────────────┐      ┌──────────────┐      ┌──────────────┐       │
//	│  │   Worker 0   │      │   Worker 1   │      │  Worker N-1  │       │
//	│  └──────────────┘      └──────────────┘      └──────────────┘       │
//	└─────────────────────────────────────────────────────────────────────┘
//
// # Shared Queue
//
// The queue is the only shared mutable state of the pool. It exposes two
// operations:
//
//   - send: appends a message at the tail, never blocks
//   - receive: blocks while the queue is empty, then removes the head
//
// Workers compete for messages: a message is delivered to exactly one
// worker. Dequeue order is FIFO across all submitters, completion order
// is not guaranteed when the pool has more than one worker.
//
// # Worker Lifecycle
//
//	┌───────────┐   NewJob: invoke job   ┌───────────┐
//	│  Running  │ ─────────────────────► │  Running  │
//	└─────┬─────┘                        └───────────┘
//	      │ Terminate
//	      ▼
//	┌────────────┐
//	│ Terminated │  goroutine returns, join unblocks
//	└────────────┘
//
// Each worker consumes exactly one Terminate in its lifetime and is joined
// exactly once.
//
// # Panic Recovery
//
// A job that panics does not take its worker down. The panic is recovered
// at the loop boundary, wrapped in a JobPanicError, logged and passed to the
// PanicHandler configured with WithPanicHandler. The worker then goes back
// to the queue. Failed jobs are never retried by the pool.
//
// # Graceful Shutdown
//
// Close performs the shutdown:
//
//  1. Marks the pool closed, later Submit calls return PoolClosedError
//  2. Sends one Terminate per worker
//  3. Joins the workers in id order
//
// Every job accepted before Close is dequeued before any Terminate, so it
// runs before the pool stops. Close blocks while in-flight jobs run and is
// idempotent.
//
// Submit and the start of Close are serialized: a Submit racing with Close
// either lands in the queue ahead of the terminations or is rejected.
//
// # Usage Example
//
//	pool, err := threadpool.New(4, threadpool.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	for _, item := range items {
//	    if err := pool.Submit(func() { process(item) }); err != nil {
//	        return err
//	    }
//	}
package threadpool
