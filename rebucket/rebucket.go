// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rebucket

import (
	"cmp"

	"github.com/ava-labs/avalanchego/utils/set"

	"github.com/ava-labs/eventqueue/internal/list"
	"github.com/ava-labs/eventqueue/queue"
)

var _ queue.Queue[int, float64] = (*Queue[int, float64])(nil)

// Queue is a bucket map with an auxiliary event index.
//
// Buckets are linked lists keyed by time, as in package bucket. The index
// maps each event to its list element so that Remove, Time and Requeue are
// O(1) instead of a scan over every bucket. Min and Dequeue still scan the
// bucket keys.
//
// Both maps are only modified through insert, remove and take, which
// update them together.
//
// Negative and NaN times are dropped by Enqueue. An event is stored at most
// once; enqueueing a present event moves it.
//
// This data structure does not perform any synchronization and is not
// safe to use concurrently without external locking.
type Queue[E comparable, T cmp.Ordered] struct {
	buckets map[T]*list.List[queue.Entry[E, T]]
	index   map[E]*list.Element[queue.Entry[E, T]]
}

// New returns an empty Queue with room for [buckets] distinct times.
func New[E comparable, T cmp.Ordered](buckets int) *Queue[E, T] {
	return &Queue[E, T]{
		buckets: make(map[T]*list.List[queue.Entry[E, T]], buckets),
		index:   make(map[E]*list.Element[queue.Entry[E, T]]),
	}
}

func (*Queue[E, T]) Behavior() queue.Behavior {
	return queue.Behavior{
		Identity: queue.IdentityMatch,
		Ordering: queue.FIFO,
		Dedupe:   true,
	}
}

func (q *Queue[E, T]) insert(event E, time T) {
	if el, ok := q.index[event]; ok {
		q.remove(el)
	}
	b, ok := q.buckets[time]
	if !ok {
		b = &list.List[queue.Entry[E, T]]{}
		q.buckets[time] = b
	}
	q.index[event] = b.PushBack(queue.Entry[E, T]{Event: event, Time: time})
}

func (q *Queue[E, T]) remove(el *list.Element[queue.Entry[E, T]]) queue.Entry[E, T] {
	entry := el.Value()
	b := q.buckets[entry.Time]
	b.Remove(el)
	if b.Size() == 0 {
		delete(q.buckets, entry.Time)
	}
	delete(q.index, entry.Event)
	return entry
}

func (q *Queue[E, T]) take(time T) []E {
	b, ok := q.buckets[time]
	if !ok {
		return []E{}
	}
	delete(q.buckets, time)
	events := make([]E, 0, b.Size())
	for _, entry := range b.Drain() {
		delete(q.index, entry.Event)
		events = append(events, entry.Event)
	}
	return events
}

func (q *Queue[E, T]) Enqueue(event E, time T) {
	if !queue.ValidTime(time) {
		return
	}
	q.insert(event, time)
}

func (q *Queue[E, T]) Min() (T, bool) {
	var (
		min   T
		found bool
	)
	for t := range q.buckets {
		if !found || queue.Less(t, min) {
			min = t
			found = true
		}
	}
	return min, found
}

func (q *Queue[E, T]) Dequeue() (queue.Entry[E, T], bool) {
	t, ok := q.Min()
	if !ok {
		return queue.Entry[E, T]{}, false
	}
	return q.remove(q.buckets[t].First()), true
}

func (q *Queue[E, T]) Remove(event E) (T, bool) {
	el, ok := q.index[event]
	if !ok {
		return *new(T), false
	}
	return q.remove(el).Time, true
}

func (q *Queue[E, T]) DequeueAll() []E {
	t, ok := q.Min()
	if !ok {
		return []E{}
	}
	return q.take(t)
}

func (q *Queue[E, T]) DequeueAllAt(time T) []E {
	return q.take(time)
}

func (q *Queue[E, T]) DequeueAllSet() set.Set[E] {
	return queue.SetOf(q.DequeueAll())
}

func (q *Queue[E, T]) DequeueAllSetAt(time T) set.Set[E] {
	return queue.SetOf(q.DequeueAllAt(time))
}

func (q *Queue[E, T]) Requeue(event E, newTime T) {
	if el, ok := q.index[event]; ok {
		q.remove(el)
	}
	q.Enqueue(event, newTime)
}

// RequeueHint ignores [oldTime]: the index already locates [event] in O(1).
func (q *Queue[E, T]) RequeueHint(event E, _ T, newTime T) {
	q.Requeue(event, newTime)
}

func (q *Queue[E, T]) Time(event E) (T, bool) {
	el, ok := q.index[event]
	if !ok {
		return *new(T), false
	}
	return el.Value().Time, true
}

func (q *Queue[E, T]) Len() int { return len(q.index) }

func (q *Queue[E, T]) IsEmpty() bool { return len(q.index) == 0 }

// SetSize re-allocates the event index with room for [n] events. It is
// ignored once the queue holds events.
func (q *Queue[E, T]) SetSize(n int) {
	if len(q.index) == 0 && n > 0 {
		q.index = make(map[E]*list.Element[queue.Entry[E, T]], n)
	}
}
