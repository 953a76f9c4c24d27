// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hashqueue

import (
	"cmp"

	"github.com/ava-labs/avalanchego/utils/set"

	"github.com/ava-labs/eventqueue/queue"
)

var _ queue.Queue[int, float64] = (*HashQueue[int, float64])(nil)

// HashQueue keeps a single event -> time map.
//
// Enqueue, Requeue, Remove and Time are O(1). Min, Dequeue and DequeueAll
// scan every entry and are O(n), so HashQueue suits small queues and
// workloads dominated by point updates.
//
// Ties come out in map iteration order.
//
// This data structure does not perform any synchronization and is not
// safe to use concurrently without external locking.
type HashQueue[E comparable, T cmp.Ordered] struct {
	times map[E]T
}

// New returns an empty HashQueue sized for [size] events.
func New[E comparable, T cmp.Ordered](size int) *HashQueue[E, T] {
	return &HashQueue[E, T]{times: make(map[E]T, size)}
}

func (*HashQueue[E, T]) Behavior() queue.Behavior {
	return queue.Behavior{
		Identity: queue.IdentityMatch,
		Ordering: queue.Unspecified,
		Dedupe:   true,
	}
}

// Enqueue associates [event] with [time], replacing any previous time.
func (q *HashQueue[E, T]) Enqueue(event E, time T) {
	q.times[event] = time
}

func (q *HashQueue[E, T]) Dequeue() (queue.Entry[E, T], bool) {
	var (
		best  queue.Entry[E, T]
		found bool
	)
	for e, t := range q.times {
		if !found || queue.Less(t, best.Time) {
			best = queue.Entry[E, T]{Event: e, Time: t}
			found = true
		}
	}
	if found {
		delete(q.times, best.Event)
	}
	return best, found
}

func (q *HashQueue[E, T]) Remove(event E) (T, bool) {
	t, ok := q.times[event]
	if ok {
		delete(q.times, event)
	}
	return t, ok
}

func (q *HashQueue[E, T]) DequeueAll() []E {
	var (
		events = []E{}
		min    T
	)
	for e, t := range q.times {
		switch {
		case len(events) == 0 || queue.Less(t, min):
			events = append(events[:0], e)
			min = t
		case queue.Equal(t, min):
			events = append(events, e)
		}
	}
	for _, e := range events {
		delete(q.times, e)
	}
	return events
}

func (q *HashQueue[E, T]) DequeueAllAt(time T) []E {
	events := []E{}
	for e, t := range q.times {
		if queue.Equal(t, time) {
			events = append(events, e)
		}
	}
	for _, e := range events {
		delete(q.times, e)
	}
	return events
}

func (q *HashQueue[E, T]) DequeueAllSet() set.Set[E] {
	return queue.SetOf(q.DequeueAll())
}

func (q *HashQueue[E, T]) DequeueAllSetAt(time T) set.Set[E] {
	return queue.SetOf(q.DequeueAllAt(time))
}

// Requeue overwrites the time of [event].
func (q *HashQueue[E, T]) Requeue(event E, newTime T) {
	q.times[event] = newTime
}

// RequeueHint ignores [oldTime]: the map locates [event] in O(1) anyway.
func (q *HashQueue[E, T]) RequeueHint(event E, _ T, newTime T) {
	q.times[event] = newTime
}

func (q *HashQueue[E, T]) Min() (T, bool) {
	var (
		min   T
		found bool
	)
	for _, t := range q.times {
		if !found || queue.Less(t, min) {
			min = t
			found = true
		}
	}
	return min, found
}

func (q *HashQueue[E, T]) Time(event E) (T, bool) {
	t, ok := q.times[event]
	return t, ok
}

func (q *HashQueue[E, T]) Len() int { return len(q.times) }

func (q *HashQueue[E, T]) IsEmpty() bool { return len(q.times) == 0 }

// SetSize re-allocates the map with room for [n] events. It is ignored once
// the queue holds events.
func (q *HashQueue[E, T]) SetSize(n int) {
	if len(q.times) == 0 && n > 0 {
		q.times = make(map[E]T, n)
	}
}
