// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package uniflow

import (
	"sync"
	"testing"
)

func TestLoopCallerRunsWhenIdle(t *testing.T) {
	var l loop
	ran := false
	l.do(func() { ran = true })
	if !ran {
		t.Fatal("idle loop must run the task before do returns")
	}
}

func TestLoopReentrantTasksRunFIFO(t *testing.T) {
	var l loop
	var order []int
	l.do(func() {
		order = append(order, 1)
		l.do(func() { order = append(order, 3) })
		order = append(order, 2)
	})
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("got order %v, want [1 2 3]", order)
	}
}

func TestLoopSerializesConcurrentTasks(t *testing.T) {
	const n = 200
	var l loop
	var wg sync.WaitGroup
	wg.Add(n)

	// count is only ever touched inside loop tasks.
	count := 0
	for range n {
		go l.do(func() {
			count++
			wg.Done()
		})
	}
	wg.Wait()

	got := 0
	l.do(func() { got = count })
	if got != n {
		t.Fatalf("got %d increments, want %d", got, n)
	}
}

func TestLoopNestedEnqueueDepth(t *testing.T) {
	var l loop
	depth := 0
	var nest func()
	nest = func() {
		depth++
		if depth < 100 {
			l.do(nest)
		}
	}
	l.do(nest)
	if depth != 100 {
		t.Fatalf("got depth %d, want 100", depth)
	}
}
