package threadpool

import (
	"runtime"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	srvErrors "github.com/kubev2v/threadpool/pkg/errors"
)

var _ = Describe("worker", func() {
	var (
		q *sharedQueue
		c *counters
		o *options
	)

	BeforeEach(func() {
		q = newSharedQueue()
		c = &counters{}
		o = defaultOptions()
	})

	It("should run jobs until it receives a terminate message", func() {
		var ran atomic.Int32
		w := newWorker(0, q, o, c)

		q.send(newJobMessage(func() { ran.Add(1) }))
		q.send(newJobMessage(func() { ran.Add(1) }))
		q.send(terminateMessage())
		w.join()

		Expect(ran.Load()).To(Equal(int32(2)))
		Expect(c.completed.Load()).To(Equal(int64(2)))
		Expect(c.terminated.Load()).To(Equal(int64(1)))
	})

	It("should leave messages sent after its terminate to other workers", func() {
		w := newWorker(0, q, o, c)

		q.send(terminateMessage())
		w.join()
		q.send(newJobMessage(func() {}))

		Expect(q.len()).To(Equal(1))
	})

	It("should survive a panicking job and report it", func() {
		faults := make(chan *srvErrors.JobPanicError, 1)
		o.onPanic = func(err *srvErrors.JobPanicError) { faults <- err }
		w := newWorker(3, q, o, c)

		done := make(chan struct{})
		q.send(newJobMessage(func() { panic("boom") }))
		q.send(newJobMessage(func() { close(done) }))

		Eventually(done, time.Second).Should(BeClosed())
		var fault *srvErrors.JobPanicError
		Eventually(faults, time.Second).Should(Receive(&fault))
		Expect(fault.WorkerID).To(Equal(3))
		Expect(fault.Value).To(Equal("boom"))
		Expect(fault.Stack).NotTo(BeEmpty())
		Expect(c.panicked.Load()).To(Equal(int64(1)))

		q.send(terminateMessage())
		w.join()
	})

	It("should survive a panicking panic handler", func() {
		o.onPanic = func(*srvErrors.JobPanicError) { panic("handler boom") }
		w := newWorker(0, q, o, c)

		done := make(chan struct{})
		q.send(newJobMessage(func() { panic("boom") }))
		q.send(newJobMessage(func() { close(done) }))

		Eventually(done, time.Second).Should(BeClosed())

		q.send(terminateMessage())
		w.join()
	})

	// Given a job that ends its goroutine with runtime.Goexit
	// When more jobs follow it in the queue
	// Then the worker keeps consuming them and stops only on its terminate
	It("should survive a job calling runtime.Goexit", func() {
		faults := make(chan *srvErrors.JobPanicError, 1)
		o.onPanic = func(err *srvErrors.JobPanicError) { faults <- err }
		w := newWorker(2, q, o, c)

		var ran atomic.Int32
		q.send(newJobMessage(func() { runtime.Goexit() }))
		for range 5 {
			q.send(newJobMessage(func() { ran.Add(1) }))
		}
		q.send(terminateMessage())
		w.join()

		Expect(ran.Load()).To(Equal(int32(5)))
		Expect(c.completed.Load()).To(Equal(int64(5)))
		Expect(c.panicked.Load()).To(Equal(int64(1)))
		Expect(c.busy.Load()).To(BeZero())
		Expect(c.terminated.Load()).To(Equal(int64(1)))
		Expect(q.len()).To(BeZero())

		var fault *srvErrors.JobPanicError
		Expect(faults).To(Receive(&fault))
		Expect(fault.WorkerID).To(Equal(2))
		Expect(srvErrors.IsJobExitError(fault)).To(BeTrue())
	})

	It("should survive a panicking observer", func() {
		o.observer = panickingObserver{}
		w := newWorker(0, q, o, c)

		done := make(chan struct{})
		q.send(newJobMessage(func() {}))
		q.send(newJobMessage(func() { close(done) }))

		Eventually(done, time.Second).Should(BeClosed())
		q.send(terminateMessage())
		w.join()

		Expect(c.completed.Load()).To(Equal(int64(2)))
		Expect(c.terminated.Load()).To(Equal(int64(1)))
	})

	It("should panic when joined twice", func() {
		w := newWorker(7, q, o, c)
		q.send(terminateMessage())
		w.join()

		Expect(w.join).To(PanicWith(ContainSubstring("worker 7 joined twice")))
	})
})

type panickingObserver struct{}

func (panickingObserver) JobSubmitted()                         { panic("observer boom") }
func (panickingObserver) JobStarted(int)                        { panic("observer boom") }
func (panickingObserver) JobFinished(int, time.Duration, error) { panic("observer boom") }
func (panickingObserver) WorkerTerminated(int)                  { panic("observer boom") }
