// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package unsorted is the baseline event queue: a flat slice in insertion
// order. Enqueue is an O(1) append and everything else is a full scan.
//
// Removal preserves the order of the remaining entries, so ties come out
// FIFO. That makes Queue a simple correctness oracle for the other
// implementations.
package unsorted

import (
	"cmp"

	"github.com/ava-labs/avalanchego/utils/set"
	"golang.org/x/exp/slices"

	"github.com/ava-labs/eventqueue/queue"
)

var _ queue.Queue[int, float64] = (*Queue[int, float64])(nil)

type Queue[E comparable, T cmp.Ordered] struct {
	identity queue.Identity
	match    queue.Matcher[E]
	entries  []queue.Entry[E, T]
}

func New[E comparable, T cmp.Ordered](identity queue.Identity) *Queue[E, T] {
	return &Queue[E, T]{
		identity: identity,
		match:    queue.NewMatcher[E](identity),
	}
}

func (q *Queue[E, T]) Behavior() queue.Behavior {
	return queue.Behavior{Identity: q.identity, Ordering: queue.FIFO}
}

func (q *Queue[E, T]) Enqueue(event E, time T) {
	q.entries = append(q.entries, queue.Entry[E, T]{Event: event, Time: time})
}

// minIndex returns the index of the first entry holding the minimum time.
func (q *Queue[E, T]) minIndex() int {
	idx := -1
	for i, entry := range q.entries {
		if idx < 0 || queue.Less(entry.Time, q.entries[idx].Time) {
			idx = i
		}
	}
	return idx
}

func (q *Queue[E, T]) indexOf(event E) int {
	for i, entry := range q.entries {
		if q.match(entry.Event, event) {
			return i
		}
	}
	return -1
}

func (q *Queue[E, T]) removeAt(i int) queue.Entry[E, T] {
	entry := q.entries[i]
	q.entries = slices.Delete(q.entries, i, i+1)
	return entry
}

func (q *Queue[E, T]) Dequeue() (queue.Entry[E, T], bool) {
	i := q.minIndex()
	if i < 0 {
		return queue.Entry[E, T]{}, false
	}
	return q.removeAt(i), true
}

func (q *Queue[E, T]) Remove(event E) (T, bool) {
	i := q.indexOf(event)
	if i < 0 {
		return *new(T), false
	}
	return q.removeAt(i).Time, true
}

func (q *Queue[E, T]) DequeueAll() []E {
	i := q.minIndex()
	if i < 0 {
		return []E{}
	}
	return q.DequeueAllAt(q.entries[i].Time)
}

func (q *Queue[E, T]) DequeueAllAt(time T) []E {
	var (
		events = []E{}
		kept   = q.entries[:0]
	)
	for _, entry := range q.entries {
		if queue.Equal(entry.Time, time) {
			events = append(events, entry.Event)
			continue
		}
		kept = append(kept, entry)
	}
	clear(q.entries[len(kept):])
	q.entries = kept
	return events
}

func (q *Queue[E, T]) DequeueAllSet() set.Set[E] {
	return queue.SetOf(q.DequeueAll())
}

func (q *Queue[E, T]) DequeueAllSetAt(time T) set.Set[E] {
	return queue.SetOf(q.DequeueAllAt(time))
}

func (q *Queue[E, T]) Requeue(event E, newTime T) {
	if i := q.indexOf(event); i >= 0 {
		q.removeAt(i)
	}
	q.Enqueue(event, newTime)
}

// RequeueHint ignores [oldTime]; an unsorted slice cannot use it.
func (q *Queue[E, T]) RequeueHint(event E, _ T, newTime T) {
	q.Requeue(event, newTime)
}

func (q *Queue[E, T]) Min() (T, bool) {
	i := q.minIndex()
	if i < 0 {
		return *new(T), false
	}
	return q.entries[i].Time, true
}

func (q *Queue[E, T]) Time(event E) (T, bool) {
	i := q.indexOf(event)
	if i < 0 {
		return *new(T), false
	}
	return q.entries[i].Time, true
}

func (q *Queue[E, T]) Len() int { return len(q.entries) }

func (q *Queue[E, T]) IsEmpty() bool { return len(q.entries) == 0 }

func (q *Queue[E, T]) SetSize(n int) {
	if n > len(q.entries) {
		q.entries = slices.Grow(q.entries, n-len(q.entries))
	}
}
