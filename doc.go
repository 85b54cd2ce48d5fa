// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package spsc provides a bounded, lock-free, single-producer
// single-consumer ring buffer that never allocates after construction.
//
// A [Queue] owns a fixed power-of-two array of slots and two counters:
// head, advanced only by the consumer, and tail, advanced only by the
// producer. It can be used directly from one context, or split into a
// [Producer] and a [Consumer] that are handed to two contexts (two
// goroutines, or a main loop and an interrupt handler) and run without
// locks.
//
// # Quick Start
//
//	q := spsc.NewQueue[Event](1024) // 1024 slots, 1023 usable
//
//	// Direct use from a single goroutine
//	ev := Event{ID: 1}
//	if err := q.Enqueue(&ev); spsc.IsWouldBlock(err) {
//	    // Queue is full
//	}
//	ev, err := q.Dequeue()
//
//	// Split into end points for two goroutines
//	p, c := q.Split()
//
// # Pipeline Stage
//
//	q := spsc.NewQueue[Data](1024)
//	p, c := q.Split()
//
//	go func() { // Producer
//	    defer p.Release()
//	    backoff := iox.Backoff{}
//	    for data := range input {
//	        for p.Enqueue(&data) != nil {
//	            backoff.Wait()
//	        }
//	        backoff.Reset()
//	    }
//	}()
//
//	go func() { // Consumer
//	    defer c.Release()
//	    backoff := iox.Backoff{}
//	    for {
//	        data, err := c.Dequeue()
//	        if err != nil {
//	            backoff.Wait()
//	            continue
//	        }
//	        backoff.Reset()
//	        process(data)
//	    }
//	}()
//
// # Interrupt Handler
//
// On a single-core target the producer may run in an interrupt handler
// and the consumer in the main loop. [SingleCore] drops all fences, and
// 8-bit counters keep the wraparound period short:
//
//	var (
//	    rxBuf [64]byte
//	    rx    spsc.Queue[byte, uint8]
//	    rxP   *spsc.Producer[byte, uint8]
//	    rxC   *spsc.Consumer[byte, uint8]
//	)
//
//	func init() {
//	    rx.Init(rxBuf[:], spsc.SingleCore)
//	    rxP, rxC = rx.Split()
//	}
//
//	func onRxInterrupt(b byte) { rxP.Enqueue(&b) } // drops on overflow
//
// # Capacity
//
// A queue created with capacity N holds exactly N-1 elements, reported
// by [Queue.Cap]. The slot array rounds up to the next power of 2
// ([Queue.Slots]) so slot indexing stays consistent when the counters
// wrap; at least one slot is always free, so head == tail unambiguously
// means empty. The counters wrap at the width of the index type U
// (uint8, uint16 or uint); [MaxSlots] bounds the capacity per width.
//
// # Memory Ordering
//
// Each side stores its own counter with release semantics and loads the
// other side's counter with acquire semantics. A producer writes the slot
// and then releases tail; the consumer acquires tail and then reads the
// slot. The same edge runs back through head when the consumer frees a
// slot. Loads of a side's own counter are relaxed. In [SingleCore] mode
// every access is relaxed.
//
// Under the race detector the counters use sync/atomic so the detector
// sees these edges.
//
// # Errors
//
// A full Enqueue and an empty Dequeue return [ErrWouldBlock]; they are
// control flow signals and change nothing. Misuse of the split protocol
// panics with [ErrSplit] or [ErrReleased]. EnqueueUnchecked and
// DequeueUnchecked skip the full and empty checks; calling them when the
// checked variant would fail is a contract violation with undefined
// results, never reported.
//
// # Thread Safety
//
// Exactly one goroutine may use a [Producer] and exactly one a
// [Consumer] at any time. A [Queue] used directly must be confined to
// one goroutine, or handed between goroutines with proper
// synchronization.
package spsc
