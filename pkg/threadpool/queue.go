package threadpool

import "sync"

type queue[T any] []T

func (q *queue[T]) Len() int { return len(*q) }

func (q *queue[T]) Pop() T {
	var zero T
	old := *q
	x := old[0]
	old[0] = zero
	*q = old[1:]
	return x
}

func (q *queue[T]) Push(t T) {
	*q = append(*q, t)
}

// sharedQueue is the unbounded FIFO between submitters and workers.
// Every worker receives from the same queue; a message is handed to
// exactly one of them.
type sharedQueue struct {
	mu       sync.Mutex
	nonEmpty *sync.Cond
	items    queue[message]
	released bool
}

func newSharedQueue() *sharedQueue {
	q := &sharedQueue{}
	q.nonEmpty = sync.NewCond(&q.mu)
	return q
}

// send appends m to the tail of the queue. It never blocks.
// Sending once the receivers are gone is a programming error.
func (q *sharedQueue) send(m message) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.released {
		panic("threadpool: send on a queue whose workers have all been joined")
	}
	q.items.Push(m)
	q.nonEmpty.Signal()
}

// receive blocks until a message is available and removes it from the head.
func (q *sharedQueue) receive() message {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.items.Len() == 0 {
		q.nonEmpty.Wait()
	}
	return q.items.Pop()
}

func (q *sharedQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Len()
}

// release marks the receiving side as gone.
func (q *sharedQueue) release() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.released = true
}
