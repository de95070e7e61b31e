package errors

import (
	"errors"
	"fmt"
)

type InvalidPoolSizeError struct {
	Size int
}

func NewInvalidPoolSizeError(size int) *InvalidPoolSizeError {
	return &InvalidPoolSizeError{Size: size}
}

func (e *InvalidPoolSizeError) Error() string {
	return fmt.Sprintf("invalid pool size %d: a pool needs at least one worker", e.Size)
}

func IsInvalidPoolSizeError(err error) bool {
	var e *InvalidPoolSizeError
	return errors.As(err, &e)
}

type PoolClosedError struct{}

func NewPoolClosedError() *PoolClosedError {
	return &PoolClosedError{}
}

func (e *PoolClosedError) Error() string {
	return "pool is closed: no job can be submitted after shutdown has started"
}

func IsPoolClosedError(err error) bool {
	var e *PoolClosedError
	return errors.As(err, &e)
}

type InvalidJobError struct{}

func NewInvalidJobError() *InvalidJobError {
	return &InvalidJobError{}
}

func (e *InvalidJobError) Error() string {
	return "invalid job: nil function"
}

func IsInvalidJobError(err error) bool {
	var e *InvalidJobError
	return errors.As(err, &e)
}

// JobExitError is the panic value recorded when a job ends its goroutine
// with runtime.Goexit instead of returning.
type JobExitError struct{}

func NewJobExitError() *JobExitError {
	return &JobExitError{}
}

func (e *JobExitError) Error() string {
	return "job called runtime.Goexit"
}

func IsJobExitError(err error) bool {
	var e *JobExitError
	return errors.As(err, &e)
}

// JobPanicError is reported when a job panics inside a worker.
type JobPanicError struct {
	WorkerID int
	Value    any
	Stack    []byte
}

func NewJobPanicError(workerID int, value any, stack []byte) *JobPanicError {
	return &JobPanicError{WorkerID: workerID, Value: value, Stack: stack}
}

func (e *JobPanicError) Error() string {
	return fmt.Sprintf("worker %d: job panicked: %v", e.WorkerID, e.Value)
}

// Unwrap exposes the panic value when the job panicked with an error.
func (e *JobPanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

func IsJobPanicError(err error) bool {
	var e *JobPanicError
	return errors.As(err, &e)
}
