// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package spsc

import "sync/atomic"

// word is the machine-word cell behind every counter and the split state.
//
// The race detector only tracks happens-before edges created through
// sync/atomic, so race builds route every ordering through it. Sequential
// consistency is stronger than acquire/release; the protocol is unchanged.
type word struct {
	v atomic.Uintptr
}

func (w *word) loadRelaxed() uintptr { return w.v.Load() }

func (w *word) loadAcquire() uintptr { return w.v.Load() }

func (w *word) storeRelaxed(x uintptr) { w.v.Store(x) }

func (w *word) storeRelease(x uintptr) { w.v.Store(x) }

func (w *word) casAcqRel(old, val uintptr) bool {
	return w.v.CompareAndSwap(old, val)
}
