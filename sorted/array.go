// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sorted

import (
	"cmp"

	"github.com/ava-labs/avalanchego/utils/set"
	"golang.org/x/exp/slices"

	"github.com/ava-labs/eventqueue/queue"
)

var _ queue.Queue[int, float64] = (*ArrayQueue[int, float64])(nil)

// ArrayQueue keeps every entry in a slice in ascending time order.
//
// Enqueue binary searches for the leftmost position whose time is not
// before the new time (O(log n)) and shifts the tail to make room (O(n)
// worst case). Because a new entry goes in front of the entries it ties
// with, ties come out LIFO. Min and Dequeue read the front in O(1).
//
// DequeueAllAt and RequeueHint binary search to the start of the run at the
// requested time and only scan that run.
type ArrayQueue[E comparable, T cmp.Ordered] struct {
	identity queue.Identity
	match    queue.Matcher[E]
	entries  []queue.Entry[E, T]
}

func NewArray[E comparable, T cmp.Ordered](identity queue.Identity) *ArrayQueue[E, T] {
	return &ArrayQueue[E, T]{
		identity: identity,
		match:    queue.NewMatcher[E](identity),
	}
}

func (q *ArrayQueue[E, T]) Behavior() queue.Behavior {
	return queue.Behavior{Identity: q.identity, Ordering: queue.LIFO}
}

// search returns the index of the first entry whose time is not before
// [time].
func (q *ArrayQueue[E, T]) search(time T) int {
	i, _ := slices.BinarySearchFunc(q.entries, time, func(e queue.Entry[E, T], t T) int {
		return cmp.Compare(e.Time, t)
	})
	return i
}

func (q *ArrayQueue[E, T]) indexOf(event E) int {
	for i, entry := range q.entries {
		if q.match(entry.Event, event) {
			return i
		}
	}
	return -1
}

func (q *ArrayQueue[E, T]) removeAt(i int) queue.Entry[E, T] {
	entry := q.entries[i]
	if i == 0 {
		q.entries[0] = queue.Entry[E, T]{}
		q.entries = q.entries[1:]
		return entry
	}
	q.entries = slices.Delete(q.entries, i, i+1)
	return entry
}

func (q *ArrayQueue[E, T]) Enqueue(event E, time T) {
	q.entries = slices.Insert(q.entries, q.search(time), queue.Entry[E, T]{Event: event, Time: time})
}

func (q *ArrayQueue[E, T]) Dequeue() (queue.Entry[E, T], bool) {
	if len(q.entries) == 0 {
		return queue.Entry[E, T]{}, false
	}
	return q.removeAt(0), true
}

func (q *ArrayQueue[E, T]) Remove(event E) (T, bool) {
	i := q.indexOf(event)
	if i < 0 {
		return *new(T), false
	}
	return q.removeAt(i).Time, true
}

func (q *ArrayQueue[E, T]) DequeueAll() []E {
	if len(q.entries) == 0 {
		return []E{}
	}
	return q.DequeueAllAt(q.entries[0].Time)
}

func (q *ArrayQueue[E, T]) DequeueAllAt(time T) []E {
	i := q.search(time)
	j := i
	for j < len(q.entries) && queue.Equal(q.entries[j].Time, time) {
		j++
	}
	events := make([]E, 0, j-i)
	for _, entry := range q.entries[i:j] {
		events = append(events, entry.Event)
	}
	if i == 0 {
		clear(q.entries[:j])
		q.entries = q.entries[j:]
	} else {
		q.entries = slices.Delete(q.entries, i, j)
	}
	return events
}

func (q *ArrayQueue[E, T]) DequeueAllSet() set.Set[E] {
	return queue.SetOf(q.DequeueAll())
}

func (q *ArrayQueue[E, T]) DequeueAllSetAt(time T) set.Set[E] {
	return queue.SetOf(q.DequeueAllAt(time))
}

func (q *ArrayQueue[E, T]) Requeue(event E, newTime T) {
	if i := q.indexOf(event); i >= 0 {
		q.removeAt(i)
	}
	q.Enqueue(event, newTime)
}

// RequeueHint binary searches the run at [oldTime]. If [event] is not in
// that run the hint is stale and Requeue takes over.
func (q *ArrayQueue[E, T]) RequeueHint(event E, oldTime T, newTime T) {
	for i := q.search(oldTime); i < len(q.entries) && queue.Equal(q.entries[i].Time, oldTime); i++ {
		if q.match(q.entries[i].Event, event) {
			q.removeAt(i)
			q.Enqueue(event, newTime)
			return
		}
	}
	q.Requeue(event, newTime)
}

func (q *ArrayQueue[E, T]) Min() (T, bool) {
	if len(q.entries) == 0 {
		return *new(T), false
	}
	return q.entries[0].Time, true
}

func (q *ArrayQueue[E, T]) Time(event E) (T, bool) {
	i := q.indexOf(event)
	if i < 0 {
		return *new(T), false
	}
	return q.entries[i].Time, true
}

func (q *ArrayQueue[E, T]) Len() int { return len(q.entries) }

func (q *ArrayQueue[E, T]) IsEmpty() bool { return len(q.entries) == 0 }

func (q *ArrayQueue[E, T]) SetSize(n int) {
	if n > len(q.entries) {
		q.entries = slices.Grow(q.entries, n-len(q.entries))
	}
}
