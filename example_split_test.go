// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc_test

import (
	"fmt"
	"sync"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/spsc"
)

// ExampleQueue_Split demonstrates a producer and a consumer goroutine
// sharing one queue without locks.
func ExampleQueue_Split() {
	q := spsc.NewQueue[int](8)
	p, c := q.Split()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() { // Producer
		defer wg.Done()
		defer p.Release()
		backoff := iox.Backoff{}
		for i := 1; i <= 100; i++ {
			for p.Enqueue(&i) != nil {
				backoff.Wait()
			}
			backoff.Reset()
		}
	}()

	sum := 0
	go func() { // Consumer
		defer wg.Done()
		defer c.Release()
		backoff := iox.Backoff{}
		for received := 0; received < 100; {
			v, err := c.Dequeue()
			if err != nil {
				backoff.Wait()
				continue
			}
			backoff.Reset()
			sum += v
			received++
		}
	}()

	wg.Wait()
	fmt.Println(sum, q.IsSplit())

	// Output:
	// 5050 false
}

// ExampleProducer_Ready demonstrates checking for space before taking an
// unchecked fast path.
func ExampleProducer_Ready() {
	q := spsc.NewQueue[int](4)
	p, c := q.Split()
	defer p.Release()
	defer c.Release()

	n := 0
	for p.Ready() {
		p.EnqueueUnchecked(&n)
		n++
	}
	fmt.Println("enqueued", n)

	for c.Ready() {
		fmt.Println(c.DequeueUnchecked())
	}

	// Output:
	// enqueued 3
	// 0
	// 1
	// 2
}
