// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc_test

import (
	"errors"
	"fmt"
	"testing"

	"code.hybscloud.com/spsc"
)

// TestErrorClassification tests that full and empty signals classify as
// control flow, and split misuse does not.
func TestErrorClassification(t *testing.T) {
	q := spsc.NewQueue[int](2)
	v := 1
	q.Enqueue(&v)
	full := q.Enqueue(&v)
	q.Dequeue()
	_, empty := q.Dequeue()

	for name, err := range map[string]error{"full": full, "empty": empty} {
		if !spsc.IsWouldBlock(err) {
			t.Fatalf("%s: IsWouldBlock(%v) = false", name, err)
		}
		if !spsc.IsSemantic(err) {
			t.Fatalf("%s: IsSemantic(%v) = false", name, err)
		}
		if !spsc.IsNonFailure(err) {
			t.Fatalf("%s: IsNonFailure(%v) = false", name, err)
		}
	}

	wrapped := fmt.Errorf("rx ring: %w", full)
	if !spsc.IsWouldBlock(wrapped) {
		t.Fatalf("IsWouldBlock(wrapped) = false")
	}
	if !spsc.IsNonFailure(nil) {
		t.Fatal("IsNonFailure(nil) = false")
	}
	for _, err := range []error{spsc.ErrSplit, spsc.ErrReleased} {
		if spsc.IsWouldBlock(err) || spsc.IsNonFailure(err) {
			t.Fatalf("%v classified as non-failure", err)
		}
	}
	if errors.Is(spsc.ErrSplit, spsc.ErrReleased) {
		t.Fatal("ErrSplit matches ErrReleased")
	}
}
