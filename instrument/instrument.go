// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package instrument wraps a queue with prometheus counters.
package instrument

import (
	"cmp"

	"github.com/ava-labs/avalanchego/utils/set"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/eventqueue/queue"
)

var _ queue.Queue[int, float64] = (*Queue[int, float64])(nil)

// Queue forwards every call to the wrapped queue and records it. The size
// gauge is refreshed from the wrapped queue after every mutation, so it is
// correct for deduplicating queues and for variants that drop invalid
// times.
type Queue[E comparable, T cmp.Ordered] struct {
	q       queue.Queue[E, T]
	metrics *metrics
}

// New registers the queue metrics under [namespace] with [r].
func New[E comparable, T cmp.Ordered](q queue.Queue[E, T], r prometheus.Registerer, namespace string) (*Queue[E, T], error) {
	m, err := newMetrics(namespace, r)
	if err != nil {
		return nil, err
	}
	i := &Queue[E, T]{q: q, metrics: m}
	i.updateSize()
	return i, nil
}

// Unwrap returns the wrapped queue.
func (i *Queue[E, T]) Unwrap() queue.Queue[E, T] { return i.q }

func (i *Queue[E, T]) updateSize() {
	i.metrics.size.Set(float64(i.q.Len()))
}

func (i *Queue[E, T]) Behavior() queue.Behavior { return i.q.Behavior() }

func (i *Queue[E, T]) Enqueue(event E, time T) {
	i.q.Enqueue(event, time)
	i.metrics.enqueued.Inc()
	i.updateSize()
}

func (i *Queue[E, T]) Dequeue() (queue.Entry[E, T], bool) {
	entry, ok := i.q.Dequeue()
	if !ok {
		i.metrics.misses.Inc()
		return entry, false
	}
	i.metrics.dequeued.Inc()
	i.updateSize()
	return entry, true
}

func (i *Queue[E, T]) Remove(event E) (T, bool) {
	t, ok := i.q.Remove(event)
	if !ok {
		i.metrics.misses.Inc()
		return t, false
	}
	i.metrics.removed.Inc()
	i.updateSize()
	return t, true
}

func (i *Queue[E, T]) dequeued(n int) {
	i.metrics.dequeued.Add(float64(n))
	i.updateSize()
}

func (i *Queue[E, T]) DequeueAll() []E {
	events := i.q.DequeueAll()
	i.dequeued(len(events))
	return events
}

func (i *Queue[E, T]) DequeueAllAt(time T) []E {
	events := i.q.DequeueAllAt(time)
	i.dequeued(len(events))
	return events
}

func (i *Queue[E, T]) DequeueAllSet() set.Set[E] {
	events := i.q.DequeueAllSet()
	i.dequeued(events.Len())
	return events
}

func (i *Queue[E, T]) DequeueAllSetAt(time T) set.Set[E] {
	events := i.q.DequeueAllSetAt(time)
	i.dequeued(events.Len())
	return events
}

func (i *Queue[E, T]) Requeue(event E, newTime T) {
	i.q.Requeue(event, newTime)
	i.metrics.requeued.Inc()
	i.updateSize()
}

func (i *Queue[E, T]) RequeueHint(event E, oldTime T, newTime T) {
	i.q.RequeueHint(event, oldTime, newTime)
	i.metrics.requeued.Inc()
	i.metrics.hintedRequeue.Inc()
	i.updateSize()
}

func (i *Queue[E, T]) Min() (T, bool) {
	t, ok := i.q.Min()
	if !ok {
		i.metrics.misses.Inc()
	}
	return t, ok
}

func (i *Queue[E, T]) Time(event E) (T, bool) { return i.q.Time(event) }

func (i *Queue[E, T]) Len() int { return i.q.Len() }

func (i *Queue[E, T]) IsEmpty() bool { return i.q.IsEmpty() }

func (i *Queue[E, T]) SetSize(n int) { i.q.SetSize(n) }
