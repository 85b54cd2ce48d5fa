// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

// Options configures queue creation.
type Options struct {
	// Memory ordering strategy
	core Core

	// Elements that fit plus one; slots round up to next power of 2
	capacity int
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// Default: multi-core, native-word counters
//	q := spsc.Build[Event](spsc.New(1024))
//
//	// Main loop and interrupt handler on one core, 8-bit counters
//	rx := spsc.BuildU8[byte](spsc.New(64).SingleCore())
type Builder struct {
	opts Options
}

// New creates a queue builder with the given capacity.
//
// The queue holds capacity-1 elements; the slot array rounds up to the
// next power of 2. For example, capacity=4 holds 3 elements in 4 slots,
// capacity=1000 holds 999 elements in 1024 slots.
//
// Panics if capacity < 2.
func New(capacity int) *Builder {
	if capacity < 2 {
		panic("spsc: capacity must be >= 2")
	}
	return &Builder{opts: Options{capacity: capacity}}
}

// SingleCore declares that producer and consumer never run in parallel.
// See [SingleCore] for the contract.
func (b *Builder) SingleCore() *Builder {
	b.opts.core = SingleCore
	return b
}

// MultiCore declares that producer and consumer may run in parallel.
// This is the default.
func (b *Builder) MultiCore() *Builder {
	b.opts.core = MultiCore
	return b
}

// Build creates a queue with native-word counters.
func Build[T any](b *Builder) *Queue[T, uint] {
	return BuildIndex[T, uint](b)
}

// BuildU8 creates a queue with 8-bit counters.
// Panics if the capacity exceeds 256 slots.
func BuildU8[T any](b *Builder) *Queue[T, uint8] {
	return BuildIndex[T, uint8](b)
}

// BuildU16 creates a queue with 16-bit counters.
// Panics if the capacity exceeds 65536 slots.
func BuildU16[T any](b *Builder) *Queue[T, uint16] {
	return BuildIndex[T, uint16](b)
}

// BuildIndex creates a queue with counters of width U.
// Panics if the capacity exceeds MaxSlots[U]().
func BuildIndex[T any, U Index](b *Builder) *Queue[T, U] {
	return NewQueueOf[T, U](b.opts.capacity, b.opts.core)
}

// roundToPow2 rounds n up to the next power of 2.
func roundToPow2(n int) int {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}
