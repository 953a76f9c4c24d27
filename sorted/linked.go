// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sorted

import (
	"cmp"

	"github.com/ava-labs/avalanchego/utils/set"

	"github.com/ava-labs/eventqueue/internal/list"
	"github.com/ava-labs/eventqueue/queue"
)

var _ queue.Queue[int, float64] = (*LinkedQueue[int, float64])(nil)

// LinkedQueue keeps every entry in a doubly linked list in ascending time
// order.
//
// Min and Dequeue read the front of the list in O(1). Enqueue walks back
// from the tail to the last entry not after the new time, which is O(n) in
// the worst case but O(1) when new events are scheduled after everything
// already queued. A new entry goes after every entry with the same time, so
// ties come out FIFO.
type LinkedQueue[E comparable, T cmp.Ordered] struct {
	identity queue.Identity
	match    queue.Matcher[E]
	entries  list.List[queue.Entry[E, T]]
}

func NewLinked[E comparable, T cmp.Ordered](identity queue.Identity) *LinkedQueue[E, T] {
	return &LinkedQueue[E, T]{
		identity: identity,
		match:    queue.NewMatcher[E](identity),
	}
}

func (q *LinkedQueue[E, T]) Behavior() queue.Behavior {
	return queue.Behavior{Identity: q.identity, Ordering: queue.FIFO}
}

func (q *LinkedQueue[E, T]) Enqueue(event E, time T) {
	entry := queue.Entry[E, T]{Event: event, Time: time}
	for el := q.entries.Last(); el != nil; el = el.Prev() {
		if !queue.Less(time, el.Value().Time) {
			q.entries.InsertAfter(entry, el)
			return
		}
	}
	q.entries.PushFront(entry)
}

// find returns the first element holding [event], which is also the one
// with the earliest time.
func (q *LinkedQueue[E, T]) find(event E) *list.Element[queue.Entry[E, T]] {
	for el := q.entries.First(); el != nil; el = el.Next() {
		if q.match(el.Value().Event, event) {
			return el
		}
	}
	return nil
}

func (q *LinkedQueue[E, T]) Dequeue() (queue.Entry[E, T], bool) {
	first := q.entries.First()
	if first == nil {
		return queue.Entry[E, T]{}, false
	}
	return q.entries.Remove(first), true
}

func (q *LinkedQueue[E, T]) Remove(event E) (T, bool) {
	el := q.find(event)
	if el == nil {
		return *new(T), false
	}
	return q.entries.Remove(el).Time, true
}

func (q *LinkedQueue[E, T]) DequeueAll() []E {
	first := q.entries.First()
	if first == nil {
		return []E{}
	}
	return q.DequeueAllAt(first.Value().Time)
}

// DequeueAllAt stops at the first entry after [time].
func (q *LinkedQueue[E, T]) DequeueAllAt(time T) []E {
	events := []E{}
	el := q.entries.First()
	for el != nil && queue.Less(el.Value().Time, time) {
		el = el.Next()
	}
	for el != nil && queue.Equal(el.Value().Time, time) {
		next := el.Next()
		events = append(events, q.entries.Remove(el).Event)
		el = next
	}
	return events
}

func (q *LinkedQueue[E, T]) DequeueAllSet() set.Set[E] {
	return queue.SetOf(q.DequeueAll())
}

func (q *LinkedQueue[E, T]) DequeueAllSetAt(time T) set.Set[E] {
	return queue.SetOf(q.DequeueAllAt(time))
}

func (q *LinkedQueue[E, T]) Requeue(event E, newTime T) {
	if el := q.find(event); el != nil {
		q.entries.Remove(el)
	}
	q.Enqueue(event, newTime)
}

// RequeueHint only walks the list up to the end of the run at [oldTime]. If
// [event] is not in that run the hint is stale and Requeue takes over.
func (q *LinkedQueue[E, T]) RequeueHint(event E, oldTime T, newTime T) {
	for el := q.entries.First(); el != nil && !queue.Less(oldTime, el.Value().Time); el = el.Next() {
		entry := el.Value()
		if queue.Equal(entry.Time, oldTime) && q.match(entry.Event, event) {
			q.entries.Remove(el)
			q.Enqueue(event, newTime)
			return
		}
	}
	q.Requeue(event, newTime)
}

func (q *LinkedQueue[E, T]) Min() (T, bool) {
	first := q.entries.First()
	if first == nil {
		return *new(T), false
	}
	return first.Value().Time, true
}

func (q *LinkedQueue[E, T]) Time(event E) (T, bool) {
	el := q.find(event)
	if el == nil {
		return *new(T), false
	}
	return el.Value().Time, true
}

func (q *LinkedQueue[E, T]) Len() int { return q.entries.Size() }

func (q *LinkedQueue[E, T]) IsEmpty() bool { return q.entries.Size() == 0 }

// SetSize is a no-op; list elements are allocated one at a time.
func (*LinkedQueue[E, T]) SetSize(int) {}
