// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import (
	"iter"

	"golang.org/x/sys/cpu"
)

// split state bits
const (
	stateUnsplit  uintptr = 0
	stateProducer uintptr = 1 << 0 // Producer alive
	stateConsumer uintptr = 1 << 1 // Consumer alive
	stateSplit            = stateProducer | stateConsumer
)

// Queue is a bounded single-producer single-consumer ring buffer.
//
// Based on Lamport's ring buffer. head and tail grow monotonically and
// wrap at the width of U; the slot for counter value c is c mod S, where
// S is the power-of-two slot count. A queue created with capacity N holds
// at most N-1 elements, so at least one slot always stays free and
// head == tail means empty without a separate flag.
//
// A Queue is used directly from a single context, or split once into a
// [Producer] and a [Consumer] that run in two contexts without locks.
// While the pair is alive the direct operations panic with [ErrSplit].
//
// The backing slice is allocated once by [NewQueue] or supplied by the
// caller through [Queue.Init]; it is never resized.
//
// A Queue must not be copied after first use.
type Queue[T any, U Index] struct {
	_      cpu.CacheLinePad
	head   counter[U] // Consumer reads from here
	_      cpu.CacheLinePad
	tail   counter[U] // Producer writes here
	_      cpu.CacheLinePad
	state  word
	buffer []T
	mask   U // slot count - 1
	limit  U // elements that fit: capacity - 1
	core   Core
}

// NewQueue creates a multi-core queue with native-word counters.
// The queue holds capacity-1 elements; the slot array rounds up to the
// next power of 2.
//
// Panics if capacity < 2.
func NewQueue[T any](capacity int) *Queue[T, uint] {
	return NewQueueOf[T, uint](capacity, MultiCore)
}

// NewQueueOf creates a queue with counters of width U in the given core mode.
// The queue holds capacity-1 elements; the slot array rounds up to the
// next power of 2.
//
// Panics if capacity < 2 or capacity > MaxSlots[U]().
func NewQueueOf[T any, U Index](capacity int, core Core) *Queue[T, U] {
	if capacity < 2 {
		panic("spsc: capacity must be >= 2")
	}
	if capacity > MaxSlots[U]() {
		panic("spsc: capacity exceeds counter width")
	}
	q := &Queue[T, U]{}
	q.Init(make([]T, roundToPow2(capacity)), core)
	q.limit = U(capacity - 1)
	return q
}

// Init prepares q to use buf as its backing storage, discarding any
// previous content. It lets a queue live in static storage without
// allocation:
//
//	var (
//	    storage [64]Sample
//	    samples spsc.Queue[Sample, uint8]
//	)
//
//	func init() { samples.Init(storage[:], spsc.SingleCore) }
//
// len(buf) is the slot count and must be a power of 2 in [2, MaxSlots[U]()];
// the queue then holds len(buf)-1 elements.
// The caller must not touch buf while the queue uses it.
//
// Panics with [ErrSplit] if q is split.
func (q *Queue[T, U]) Init(buf []T, core Core) {
	n := len(buf)
	if n < 2 || n&(n-1) != 0 {
		panic("spsc: buffer length must be a power of 2 >= 2")
	}
	if n > MaxSlots[U]() {
		panic("spsc: buffer length exceeds counter width")
	}
	if !core.valid() {
		panic("spsc: invalid core mode")
	}
	q.direct()

	clear(buf)
	q.buffer = buf
	q.mask = U(n - 1)
	q.limit = q.mask
	q.core = core
	q.head.store(0, orderRelaxed)
	q.tail.store(0, core.release())
}

// Enqueue adds an element to the queue.
// Returns ErrWouldBlock if the queue is full; *elem is left as it was.
//
// Panics with [ErrSplit] if q is split.
func (q *Queue[T, U]) Enqueue(elem *T) error {
	q.direct()
	if !q.tryEnqueue(elem) {
		return ErrWouldBlock
	}
	return nil
}

// Dequeue removes and returns the oldest element.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
//
// Panics with [ErrSplit] if q is split.
func (q *Queue[T, U]) Dequeue() (T, error) {
	q.direct()
	return q.tryDequeue()
}

// All returns an iterator over the queued elements, oldest first,
// without removing them.
//
// Panics with [ErrSplit] if q is split.
func (q *Queue[T, U]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		q.direct()
		head := q.head.load(orderRelaxed)
		tail := q.tail.load(orderRelaxed)
		for i := head; i != tail; i++ {
			if !yield(q.buffer[i&q.mask]) {
				return
			}
		}
	}
}

// Drain returns an iterator that dequeues elements until the queue is
// empty or the loop stops.
//
// Panics with [ErrSplit] if q is split.
func (q *Queue[T, U]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			elem, err := q.Dequeue()
			if err != nil {
				return
			}
			if !yield(elem) {
				return
			}
		}
	}
}

// Clear drops every queued element and empties the queue.
// Occupied slots are zeroed so referenced memory can be collected.
//
// Panics with [ErrSplit] if q is split.
func (q *Queue[T, U]) Clear() {
	q.direct()
	head := q.head.load(orderRelaxed)
	tail := q.tail.load(orderRelaxed)
	var zero T
	for i := head; i != tail; i++ {
		q.buffer[i&q.mask] = zero
	}
	q.head.store(tail, q.core.release())
}

// Cap returns the number of elements the queue can hold: one less than
// the capacity it was created with.
func (q *Queue[T, U]) Cap() int {
	return int(q.limit)
}

// Slots returns the slot count of the ring, the capacity rounded up to a
// power of 2.
func (q *Queue[T, U]) Slots() int {
	return len(q.buffer)
}

// Len returns the number of queued elements.
//
// While the queue is split the result is a snapshot that may already be
// stale when it returns.
func (q *Queue[T, U]) Len() int {
	head := q.head.load(q.core.acquire())
	tail := q.tail.load(q.core.acquire())
	n := tail - head
	if n > q.limit {
		// head moved past the tail we read earlier.
		return int(q.limit)
	}
	return int(n)
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T, U]) IsEmpty() bool {
	return q.Len() == 0
}

// IsFull reports whether the queue holds Cap() elements.
func (q *Queue[T, U]) IsFull() bool {
	return q.Len() == q.Cap()
}

// Core returns the core mode the queue was created with.
func (q *Queue[T, U]) Core() Core {
	return q.core
}

// IsSplit reports whether a Producer/Consumer pair from Split is alive.
func (q *Queue[T, U]) IsSplit() bool {
	return q.state.loadAcquire() != stateUnsplit
}

// direct panics if a split pair owns the queue.
// The acquire load orders direct use after both handles' Release.
func (q *Queue[T, U]) direct() {
	if q.state.loadAcquire() != stateUnsplit {
		panic(ErrSplit)
	}
}

// producerReady reports whether at least one slot is free.
func (q *Queue[T, U]) producerReady() bool {
	tail := q.tail.load(orderRelaxed)
	head := q.head.load(q.core.acquire())
	return tail-head < q.limit
}

// consumerReady reports whether at least one element is queued.
func (q *Queue[T, U]) consumerReady() bool {
	head := q.head.load(orderRelaxed)
	tail := q.tail.load(q.core.acquire())
	return head != tail
}

func (q *Queue[T, U]) tryEnqueue(elem *T) bool {
	tail := q.tail.load(orderRelaxed)
	head := q.head.load(q.core.acquire())
	if tail-head >= q.limit {
		return false
	}
	q.put(tail, elem)
	return true
}

func (q *Queue[T, U]) tryDequeue() (T, error) {
	head := q.head.load(orderRelaxed)
	tail := q.tail.load(q.core.acquire())
	if head == tail {
		var zero T
		return zero, ErrWouldBlock
	}
	return q.take(head), nil
}

// put writes the slot at tail and publishes it.
// The slot belongs to the producer until the release store of tail.
func (q *Queue[T, U]) put(tail U, elem *T) {
	q.buffer[tail&q.mask] = *elem
	q.tail.store(tail+1, q.core.release())
}

// take moves the element out of the slot at head and frees the slot.
// The slot belongs to the consumer until the release store of head.
func (q *Queue[T, U]) take(head U) T {
	i := head & q.mask
	elem := q.buffer[i]
	var zero T
	q.buffer[i] = zero
	q.head.store(head+1, q.core.release())
	return elem
}
