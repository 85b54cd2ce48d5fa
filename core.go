// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

// Core describes how many hardware threads may touch a queue at once.
//
// The zero value is [MultiCore].
type Core uint8

const (
	// MultiCore assumes producer and consumer may run truly in parallel.
	// Each side publishes its counter with a release store and observes
	// the other side's counter with an acquire load.
	MultiCore Core = iota

	// SingleCore assumes producer and consumer only ever interleave on
	// one hardware thread, such as a main loop and an interrupt handler
	// on a single-core MCU. The context switch orders memory, so every
	// counter access is relaxed and no fences are emitted.
	//
	// Using SingleCore with goroutines that may run on different threads
	// is a data race.
	SingleCore
)

func (c Core) String() string {
	switch c {
	case MultiCore:
		return "multi-core"
	case SingleCore:
		return "single-core"
	default:
		return "invalid"
	}
}

// acquire is the ordering used to observe the other side's counter.
func (c Core) acquire() ordering {
	if c == SingleCore {
		return orderRelaxed
	}
	return orderAcquire
}

// release is the ordering used to publish this side's counter.
func (c Core) release() ordering {
	if c == SingleCore {
		return orderRelaxed
	}
	return orderRelease
}

func (c Core) valid() bool {
	return c == MultiCore || c == SingleCore
}
