// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import "math"

// Index is the set of integer widths usable as head and tail counters.
//
// The width sets the wraparound period of the counters and bounds the
// number of slots a queue may have (see [MaxSlots]). Counters are kept in
// a machine word because Go has no 8-bit or 16-bit atomics; every load
// truncates back to the index type so arithmetic wraps at the index width.
type Index interface {
	~uint8 | ~uint16 | ~uint
}

// MaxSlots returns the largest slot count a queue indexed by U may have.
//
// The ring keeps one slot free, so tail-head never exceeds the slot count
// minus one and stays unambiguous in U arithmetic: 256 slots for uint8,
// 65536 for uint16. Native-word queues are bounded by int instead.
func MaxSlots[U Index]() int {
	m := uint64(^U(0))
	if m >= math.MaxInt {
		return math.MaxInt>>1 + 1
	}
	return int(m) + 1
}

// ordering selects the memory ordering of a counter access.
type ordering uint8

const (
	orderRelaxed ordering = iota
	orderAcquire
	orderRelease
)

func (o ordering) String() string {
	switch o {
	case orderRelaxed:
		return "relaxed"
	case orderAcquire:
		return "acquire"
	case orderRelease:
		return "release"
	default:
		return "invalid"
	}
}

// counter is a head or tail index of width U.
// Only one side of the queue ever stores to a given counter.
type counter[U Index] struct {
	w word
}

// load reads the counter. Valid orderings are relaxed and acquire.
func (c *counter[U]) load(o ordering) U {
	switch o {
	case orderRelaxed:
		return U(c.w.loadRelaxed())
	case orderAcquire:
		return U(c.w.loadAcquire())
	}
	panic("spsc: invalid load ordering: " + o.String())
}

// store writes the counter. Valid orderings are relaxed and release.
func (c *counter[U]) store(v U, o ordering) {
	switch o {
	case orderRelaxed:
		c.w.storeRelaxed(uintptr(v))
		return
	case orderRelease:
		c.w.storeRelease(uintptr(v))
		return
	}
	panic("spsc: invalid store ordering: " + o.String())
}
