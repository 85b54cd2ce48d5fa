// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

// Enqueuer is the interface for enqueueing elements.
//
// The element is passed by pointer to avoid copying large structs. The
// queue stores a copy of the pointed-to value, so the original can be
// modified after Enqueue returns. *[Queue] and *[Producer] implement it.
type Enqueuer[T any] interface {
	// Enqueue adds an element to the queue (non-blocking).
	// Returns nil on success, ErrWouldBlock if the queue is full.
	Enqueue(elem *T) error
}

// Dequeuer is the interface for dequeueing elements.
//
// The element is moved out of the queue: its slot is cleared to allow
// garbage collection of referenced objects. *[Queue] and *[Consumer]
// implement it.
type Dequeuer[T any] interface {
	// Dequeue removes and returns an element from the queue (non-blocking).
	// Returns (zero-value, ErrWouldBlock) if the queue is empty.
	Dequeue() (T, error)
}

// Ring is the combined interface of an unsplit [Queue].
// Len may be stale when a split pair is running.
type Ring[T any] interface {
	Enqueuer[T]
	Dequeuer[T]
	Cap() int
	Len() int
}

var (
	_ Ring[int]     = (*Queue[int, uint])(nil)
	_ Ring[int]     = (*Queue[int, uint8])(nil)
	_ Enqueuer[int] = (*Producer[int, uint16])(nil)
	_ Dequeuer[int] = (*Consumer[int, uint16])(nil)
)
