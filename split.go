// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

// Split divides the queue into its producer and consumer end points.
//
// Elements already queued stay queued and are delivered to the consumer
// first. The Producer semantically owns tail and the Consumer owns head;
// each may be handed to a different goroutine, or one may be driven from
// an interrupt handler in [SingleCore] mode.
//
// The queue stays split until both handles call Release. Until then Split
// panics with [ErrSplit], as do the direct operations on q. The handles
// reference q, so q must outlive them; copying a handle to obtain a
// second producer or consumer breaks the single-producer single-consumer
// contract, and releasing the same side twice panics with [ErrReleased].
func (q *Queue[T, U]) Split() (*Producer[T, U], *Consumer[T, U]) {
	if !q.state.casAcqRel(stateUnsplit, stateSplit) {
		panic(ErrSplit)
	}
	return &Producer[T, U]{q: q}, &Consumer[T, U]{q: q}
}

// release clears the state bit of one handle. Releasing a side that is
// already released, e.g. through a copy of its handle, panics with
// [ErrReleased] and leaves the other side's bit in place.
func (q *Queue[T, U]) release(side uintptr) {
	for {
		s := q.state.loadAcquire()
		if s&side == 0 {
			panic(ErrReleased)
		}
		if q.state.casAcqRel(s, s&^side) {
			return
		}
	}
}

// Producer is the enqueueing end of a split [Queue].
// Only one goroutine may use a Producer at a time.
type Producer[T any, U Index] struct {
	q *Queue[T, U]
}

func (p *Producer[T, U]) queue() *Queue[T, U] {
	if p.q == nil {
		panic(ErrReleased)
	}
	return p.q
}

// Ready reports whether there is a free slot. When it returns true, at
// least the next Enqueue succeeds.
func (p *Producer[T, U]) Ready() bool {
	return p.queue().producerReady()
}

// Enqueue adds an element to the queue.
// Returns ErrWouldBlock if the queue is full; *elem is left as it was.
func (p *Producer[T, U]) Enqueue(elem *T) error {
	if !p.queue().tryEnqueue(elem) {
		return ErrWouldBlock
	}
	return nil
}

// EnqueueUnchecked adds an element without checking for a free slot.
//
// The caller must know a slot is free, for example from a preceding
// Ready or from element accounting of its own. On a full queue it writes
// a slot the consumer may still own: an element can be lost or delivered
// twice, and the queue length stops meaning anything. That is a contract
// violation, not a recoverable error.
func (p *Producer[T, U]) EnqueueUnchecked(elem *T) {
	q := p.queue()
	q.put(q.tail.load(orderRelaxed), elem)
}

// Cap returns the number of elements the queue can hold.
func (p *Producer[T, U]) Cap() int {
	return p.queue().Cap()
}

// Len returns a snapshot of the number of queued elements.
func (p *Producer[T, U]) Len() int {
	return p.queue().Len()
}

// Release ends the producer's use of the queue. The producer must not be
// used afterwards. Once the consumer is also released, the queue accepts
// direct operations and may be split again.
func (p *Producer[T, U]) Release() {
	p.queue().release(stateProducer)
	p.q = nil
}

// Consumer is the dequeueing end of a split [Queue].
// Only one goroutine may use a Consumer at a time.
type Consumer[T any, U Index] struct {
	q *Queue[T, U]
}

func (c *Consumer[T, U]) queue() *Queue[T, U] {
	if c.q == nil {
		panic(ErrReleased)
	}
	return c.q
}

// Ready reports whether an element is queued. When it returns true, at
// least the next Dequeue succeeds.
func (c *Consumer[T, U]) Ready() bool {
	return c.queue().consumerReady()
}

// Dequeue removes and returns the oldest element.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (c *Consumer[T, U]) Dequeue() (T, error) {
	return c.queue().tryDequeue()
}

// DequeueUnchecked removes and returns the oldest element without
// checking that one is queued.
//
// The caller must know the queue is non-empty, for example from a
// preceding Ready. On an empty queue it returns whatever the slot holds,
// usually the zero value or a stale element, and advances head past tail,
// after which the queue reports garbage lengths and may deliver elements
// twice. That is a contract violation, not a recoverable error.
func (c *Consumer[T, U]) DequeueUnchecked() T {
	q := c.queue()
	return q.take(q.head.load(orderRelaxed))
}

// Cap returns the number of elements the queue can hold.
func (c *Consumer[T, U]) Cap() int {
	return c.queue().Cap()
}

// Len returns a snapshot of the number of queued elements.
func (c *Consumer[T, U]) Len() int {
	return c.queue().Len()
}

// Release ends the consumer's use of the queue. The consumer must not be
// used afterwards. Once the producer is also released, the queue accepts
// direct operations and may be split again.
func (c *Consumer[T, U]) Release() {
	c.queue().release(stateConsumer)
	c.q = nil
}
