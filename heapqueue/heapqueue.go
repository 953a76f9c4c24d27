// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package heapqueue

import (
	"cmp"

	"github.com/ava-labs/avalanchego/utils/set"

	"github.com/ava-labs/eventqueue/heap"
	"github.com/ava-labs/eventqueue/queue"
)

var _ queue.Queue[int, float64] = (*Queue[int, float64])(nil)

// Queue wraps a binary min-heap keyed by time.
//
// Enqueue and Dequeue are O(log n) and Min is O(1). The heap has no index
// by event, so Remove, Time and DequeueAllAt scan the heap storage in O(n).
// The heap property only orders times, so ties come out in an unspecified
// order. If an event was enqueued more than once, Remove and Time act on
// whichever association the scan reaches first.
//
// This data structure does not perform any synchronization and is not
// safe to use concurrently without external locking.
type Queue[E comparable, T cmp.Ordered] struct {
	identity queue.Identity
	match    queue.Matcher[E]
	h        *heap.Heap[E, T]
}

// New returns an empty Queue with room for [size] events.
func New[E comparable, T cmp.Ordered](size int, identity queue.Identity) *Queue[E, T] {
	return &Queue[E, T]{
		identity: identity,
		match:    queue.NewMatcher[E](identity),
		h:        heap.New[E, T](size, true),
	}
}

func (q *Queue[E, T]) Behavior() queue.Behavior {
	return queue.Behavior{Identity: q.identity, Ordering: queue.Unspecified}
}

func (q *Queue[E, T]) find(event E) (*heap.Entry[E, T], bool) {
	return q.h.Find(func(e *heap.Entry[E, T]) bool {
		return q.match(e.Item, event)
	})
}

func (q *Queue[E, T]) Enqueue(event E, time T) {
	q.h.Push(&heap.Entry[E, T]{Item: event, Val: time})
}

func (q *Queue[E, T]) Dequeue() (queue.Entry[E, T], bool) {
	e := q.h.Pop()
	if e == nil {
		return queue.Entry[E, T]{}, false
	}
	return queue.Entry[E, T]{Event: e.Item, Time: e.Val}, true
}

func (q *Queue[E, T]) Remove(event E) (T, bool) {
	e, ok := q.find(event)
	if !ok {
		return *new(T), false
	}
	q.h.Remove(e.Index)
	return e.Val, true
}

func (q *Queue[E, T]) DequeueAll() []E {
	events := []E{}
	first := q.h.First()
	if first == nil {
		return events
	}
	t := first.Val
	for e := q.h.First(); e != nil && queue.Equal(e.Val, t); e = q.h.First() {
		events = append(events, q.h.Pop().Item)
	}
	return events
}

// DequeueAllAt removes every match in one pass and re-heapifies once.
func (q *Queue[E, T]) DequeueAllAt(time T) []E {
	removed := q.h.RemoveFunc(func(e *heap.Entry[E, T]) bool {
		return queue.Equal(e.Val, time)
	})
	events := make([]E, 0, len(removed))
	for _, e := range removed {
		events = append(events, e.Item)
	}
	return events
}

func (q *Queue[E, T]) DequeueAllSet() set.Set[E] {
	return queue.SetOf(q.DequeueAll())
}

func (q *Queue[E, T]) DequeueAllSetAt(time T) set.Set[E] {
	return queue.SetOf(q.DequeueAllAt(time))
}

func (q *Queue[E, T]) Requeue(event E, newTime T) {
	if e, ok := q.find(event); ok {
		q.h.Remove(e.Index)
	}
	q.Enqueue(event, newTime)
}

// RequeueHint prefers the association at [oldTime] when [event] was
// enqueued more than once. The scan is O(n) either way.
func (q *Queue[E, T]) RequeueHint(event E, oldTime T, newTime T) {
	e, ok := q.h.Find(func(e *heap.Entry[E, T]) bool {
		return queue.Equal(e.Val, oldTime) && q.match(e.Item, event)
	})
	if !ok {
		q.Requeue(event, newTime)
		return
	}
	q.h.Remove(e.Index)
	q.Enqueue(event, newTime)
}

func (q *Queue[E, T]) Min() (T, bool) {
	first := q.h.First()
	if first == nil {
		return *new(T), false
	}
	return first.Val, true
}

func (q *Queue[E, T]) Time(event E) (T, bool) {
	e, ok := q.find(event)
	if !ok {
		return *new(T), false
	}
	return e.Val, true
}

func (q *Queue[E, T]) Len() int { return q.h.Len() }

func (q *Queue[E, T]) IsEmpty() bool { return q.h.Len() == 0 }

// SetSize grows the heap storage to hold [n] events without reallocating.
func (q *Queue[E, T]) SetSize(n int) {
	if n > q.h.Len() {
		q.h.Grow(n - q.h.Len())
	}
}
