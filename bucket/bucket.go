// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bucket

import (
	"cmp"

	"github.com/ava-labs/avalanchego/utils/set"
	"golang.org/x/exp/slices"

	"github.com/ava-labs/eventqueue/queue"
)

var _ queue.Queue[int, float64] = (*Queue[int, float64])(nil)

type bucket[E comparable, T cmp.Ordered] struct {
	t      T   // Timestamp
	events []E // Events in insertion order
}

// Queue maps each distinct time to a bucket of the events scheduled at it.
//
// Enqueue appends to a bucket in O(1). DequeueAllAt removes a whole bucket
// in O(1) plus the size of the result. Min and Dequeue scan the bucket keys
// and are O(number of distinct times). Remove and Time have no event index
// and scan every bucket.
//
// Times must not be negative: negative and NaN times are dropped by
// Enqueue. Empty buckets never persist.
//
// This data structure does not perform any synchronization and is not
// safe to use concurrently without external locking.
type Queue[E comparable, T cmp.Ordered] struct {
	identity queue.Identity
	match    queue.Matcher[E]

	buckets map[T]*bucket[E, T]
	size    int
}

// New returns an empty Queue with room for [buckets] distinct times.
func New[E comparable, T cmp.Ordered](buckets int, identity queue.Identity) *Queue[E, T] {
	return &Queue[E, T]{
		identity: identity,
		match:    queue.NewMatcher[E](identity),
		buckets:  make(map[T]*bucket[E, T], buckets),
	}
}

func (q *Queue[E, T]) Behavior() queue.Behavior {
	return queue.Behavior{Identity: q.identity, Ordering: queue.FIFO}
}

// Enqueue adds [event] to the bucket for [time], creating the bucket if
// needed.
func (q *Queue[E, T]) Enqueue(event E, time T) {
	if !queue.ValidTime(time) {
		return
	}
	b, ok := q.buckets[time]
	if !ok {
		b = &bucket[E, T]{t: time}
		q.buckets[time] = b
	}
	b.events = append(b.events, event)
	q.size++
}

func (q *Queue[E, T]) minBucket() *bucket[E, T] {
	var min *bucket[E, T]
	for _, b := range q.buckets {
		if min == nil || queue.Less(b.t, min.t) {
			min = b
		}
	}
	return min
}

// find returns the earliest bucket holding [event] and its position there.
func (q *Queue[E, T]) find(event E) (*bucket[E, T], int) {
	var (
		found *bucket[E, T]
		pos   = -1
	)
	for _, b := range q.buckets {
		if found != nil && !queue.Less(b.t, found.t) {
			continue
		}
		if i := q.indexIn(b, event); i >= 0 {
			found, pos = b, i
		}
	}
	return found, pos
}

func (q *Queue[E, T]) indexIn(b *bucket[E, T], event E) int {
	for i, e := range b.events {
		if q.match(e, event) {
			return i
		}
	}
	return -1
}

func (q *Queue[E, T]) removeAt(b *bucket[E, T], i int) E {
	event := b.events[i]
	if i == 0 {
		b.events[0] = *new(E)
		b.events = b.events[1:]
	} else {
		b.events = slices.Delete(b.events, i, i+1)
	}
	if len(b.events) == 0 {
		delete(q.buckets, b.t)
	}
	q.size--
	return event
}

func (q *Queue[E, T]) take(b *bucket[E, T]) []E {
	delete(q.buckets, b.t)
	q.size -= len(b.events)
	return b.events
}

func (q *Queue[E, T]) Dequeue() (queue.Entry[E, T], bool) {
	b := q.minBucket()
	if b == nil {
		return queue.Entry[E, T]{}, false
	}
	return queue.Entry[E, T]{Event: q.removeAt(b, 0), Time: b.t}, true
}

func (q *Queue[E, T]) Remove(event E) (T, bool) {
	b, i := q.find(event)
	if b == nil {
		return *new(T), false
	}
	q.removeAt(b, i)
	return b.t, true
}

func (q *Queue[E, T]) DequeueAll() []E {
	b := q.minBucket()
	if b == nil {
		return []E{}
	}
	return q.take(b)
}

func (q *Queue[E, T]) DequeueAllAt(time T) []E {
	b, ok := q.buckets[time]
	if !ok {
		return []E{}
	}
	return q.take(b)
}

func (q *Queue[E, T]) DequeueAllSet() set.Set[E] {
	return queue.SetOf(q.DequeueAll())
}

func (q *Queue[E, T]) DequeueAllSetAt(time T) set.Set[E] {
	return queue.SetOf(q.DequeueAllAt(time))
}

func (q *Queue[E, T]) Requeue(event E, newTime T) {
	q.Remove(event)
	q.Enqueue(event, newTime)
}

// RequeueHint looks for [event] in the bucket for [oldTime] before falling
// back to a scan of every bucket.
func (q *Queue[E, T]) RequeueHint(event E, oldTime T, newTime T) {
	if b, ok := q.buckets[oldTime]; ok {
		if i := q.indexIn(b, event); i >= 0 {
			q.removeAt(b, i)
			q.Enqueue(event, newTime)
			return
		}
	}
	q.Requeue(event, newTime)
}

func (q *Queue[E, T]) Min() (T, bool) {
	b := q.minBucket()
	if b == nil {
		return *new(T), false
	}
	return b.t, true
}

// Time returns the earliest time [event] is scheduled at.
func (q *Queue[E, T]) Time(event E) (T, bool) {
	b, _ := q.find(event)
	if b == nil {
		return *new(T), false
	}
	return b.t, true
}

func (q *Queue[E, T]) Len() int { return q.size }

func (q *Queue[E, T]) IsEmpty() bool { return q.size == 0 }

// SetSize is a no-op: buckets are sized by distinct times, not by events.
func (*Queue[E, T]) SetSize(int) {}
