package threadpool

import (
	"sync"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("sharedQueue", func() {
	var q *sharedQueue

	BeforeEach(func() {
		q = newSharedQueue()
	})

	It("should deliver messages in the order they were sent", func() {
		for i := range 10 {
			n := i
			q.send(newJobMessage(func() { _ = n }))
		}
		q.send(terminateMessage())

		Expect(q.len()).To(Equal(11))
		for range 10 {
			Expect(q.receive().kind).To(Equal(msgNewJob))
		}
		Expect(q.receive().kind).To(Equal(msgTerminate))
		Expect(q.len()).To(BeZero())
	})

	It("should block receive until a message is sent", func() {
		got := make(chan message, 1)
		go func() {
			got <- q.receive()
		}()

		Consistently(got, 100*time.Millisecond).ShouldNot(Receive())

		q.send(terminateMessage())
		Eventually(got, time.Second).Should(Receive(WithTransform(func(m message) messageKind {
			return m.kind
		}, Equal(msgTerminate))))
	})

	It("should hand every message to exactly one receiver", func() {
		const total = 1000
		var received atomic.Int64
		seen := make([]atomic.Int32, total)

		var wg sync.WaitGroup
		for range 4 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for {
					m := q.receive()
					if m.kind == msgTerminate {
						return
					}
					m.job()
					received.Add(1)
				}
			}()
		}

		for i := range total {
			idx := i
			q.send(newJobMessage(func() { seen[idx].Add(1) }))
		}
		for range 4 {
			q.send(terminateMessage())
		}
		wg.Wait()

		Expect(received.Load()).To(Equal(int64(total)))
		for i := range total {
			Expect(seen[i].Load()).To(Equal(int32(1)), "message %d", i)
		}
	})

	It("should clear the slot of a dequeued job", func() {
		q.send(newJobMessage(func() {}))
		backing := q.items[:1]

		_ = q.receive()

		Expect(backing[0].job).To(BeNil())
	})

	It("should panic when sending after the receivers are released", func() {
		q.release()

		Expect(func() { q.send(terminateMessage()) }).To(PanicWith(ContainSubstring("joined")))
	})
})
