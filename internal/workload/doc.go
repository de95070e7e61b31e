// Package workload generates synthetic jobs for the threadpool command.
//
// Each job sleeps for the configured duration, then succeeds or fails with
// the configured probability. A failed attempt is retried inside the job with
// an exponential backoff, the pool itself never retries. A job can also be
// made to panic to exercise the pool's fault isolation.
package workload
