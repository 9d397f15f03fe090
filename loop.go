// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package uniflow

import "sync"

// Run loop: the single logical owner context of a store tree.
//
// Every state transition in a tree — dispatch, direct update, publication,
// upward propagation — executes as a task on the tree's loop, one task at a
// time. There is no dedicated goroutine: the first caller to find the loop
// idle becomes its runner and drains the queue; callers that find it busy
// enqueue and return. Effect completions marshal their follow-up dispatch in
// from arbitrary goroutines the same way.
//
// Reentrancy: a task that posts another task (a subscriber calling Send,
// an effect yielding while the loop is draining) enqueues it for the current
// runner rather than nesting, so the sequence of state values a subscriber
// observes is exactly the serialized task order.

var taskPool = sync.Pool{
	New: func() any { return new(task) },
}

type task struct {
	run  func()
	next *task
}

func acquireTask(run func()) *task {
	t := taskPool.Get().(*task)
	t.run = run
	return t
}

func releaseTask(t *task) {
	t.run = nil
	t.next = nil
	taskPool.Put(t)
}

// loop is a mutex-guarded FIFO of tasks with caller-runs draining.
// One loop is shared by every store in a tree.
type loop struct {
	mu      sync.Mutex
	head    *task
	tail    *task
	running bool
}

// do runs fn serialized with every other task on the loop.
// If the loop is idle the calling goroutine runs fn (and anything enqueued
// meanwhile) before returning; if the loop is busy fn is enqueued and do
// returns immediately.
func (l *loop) do(fn func()) {
	t := acquireTask(fn)
	l.mu.Lock()
	if l.tail != nil {
		l.tail.next = t
		l.tail = t
	} else {
		l.head = t
		l.tail = t
	}
	if l.running {
		l.mu.Unlock()
		return
	}
	l.running = true
	for l.head != nil {
		t := l.head
		l.head = t.next
		if l.head == nil {
			l.tail = nil
		}
		l.mu.Unlock()
		t.run()
		releaseTask(t)
		l.mu.Lock()
	}
	l.running = false
	l.mu.Unlock()
}
