// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

package spsc

import "code.hybscloud.com/atomix"

// word is the machine-word cell behind every counter and the split state.
//
// Normal builds use atomix, whose relaxed operations compile to plain
// loads and stores and whose acquire/release operations carry only the
// fences the target needs.
type word struct {
	v atomix.Uintptr
}

func (w *word) loadRelaxed() uintptr { return w.v.LoadRelaxed() }

func (w *word) loadAcquire() uintptr { return w.v.LoadAcquire() }

func (w *word) storeRelaxed(x uintptr) { w.v.StoreRelaxed(x) }

func (w *word) storeRelease(x uintptr) { w.v.StoreRelease(x) }

func (w *word) casAcqRel(old, val uintptr) bool {
	return w.v.CompareAndSwapAcqRel(old, val)
}
