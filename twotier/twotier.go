// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package twotier

import (
	"cmp"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/set"
	"go.uber.org/zap"

	"github.com/ava-labs/eventqueue/internal/list"
	"github.com/ava-labs/eventqueue/queue"
)

var _ queue.Queue[int, float64] = (*Queue[int, float64])(nil)

// Stats counts the structural work done by a Queue.
type Stats struct {
	// Reorganizations is the number of times the far tier was scanned to
	// refill an empty near tier.
	Reorganizations uint64
	// Promoted is the number of events moved from the far to the near tier.
	Promoted uint64
	// Evictions is the number of near-tier buckets pushed to the far tier.
	Evictions uint64
	// Evicted is the number of events those buckets held.
	Evicted uint64
}

// Queue splits pending events into a near and a far future tier.
//
// The near tier holds at most [threshold] distinct times, each with a FIFO
// bucket, plus an event index into those buckets. The far tier is a flat
// event -> time map holding everything else. Every far time is after the
// largest near time, so the minimum is always found in the near tier.
//
// When the near tier runs dry, the next Min or Dequeue reorganizes: one
// scan of the far tier finds its minimum and promotes every event at that
// time into a fresh near bucket. The O(n) scan is paid once for all the
// events it promotes, which makes Queue efficient when only a handful of
// distinct times are about to happen.
//
// Promoted events come out in map iteration order, so ties are unspecified.
// Negative and NaN times are dropped. An event is stored at most once;
// enqueueing a present event moves it.
//
// This data structure does not perform any synchronization and is not
// safe to use concurrently without external locking.
type Queue[E comparable, T cmp.Ordered] struct {
	log       logging.Logger
	threshold int

	near      map[T]*list.List[queue.Entry[E, T]]
	nearIndex map[E]*list.Element[queue.Entry[E, T]]
	nearMax   T // only meaningful if near is not empty

	far map[E]T

	stats Stats
}

// New returns an empty Queue whose near tier holds at most [threshold]
// distinct times. A threshold below 1 is treated as 1.
func New[E comparable, T cmp.Ordered](log logging.Logger, threshold int) *Queue[E, T] {
	threshold = max(threshold, 1)
	return &Queue[E, T]{
		log:       log,
		threshold: threshold,
		near:      make(map[T]*list.List[queue.Entry[E, T]], threshold),
		nearIndex: make(map[E]*list.Element[queue.Entry[E, T]]),
		far:       make(map[E]T),
	}
}

func (*Queue[E, T]) Behavior() queue.Behavior {
	return queue.Behavior{
		Identity: queue.IdentityMatch,
		Ordering: queue.Unspecified,
		Dedupe:   true,
	}
}

// Threshold returns the maximum number of distinct times in the near tier.
func (q *Queue[E, T]) Threshold() int { return q.threshold }

// Stats returns the structural work done so far.
func (q *Queue[E, T]) Stats() Stats { return q.stats }

func (q *Queue[E, T]) insertNear(event E, time T) {
	b, ok := q.near[time]
	if !ok {
		b = &list.List[queue.Entry[E, T]]{}
		q.near[time] = b
		if len(q.near) == 1 || queue.Less(q.nearMax, time) {
			q.nearMax = time
		}
	}
	q.nearIndex[event] = b.PushBack(queue.Entry[E, T]{Event: event, Time: time})
}

func (q *Queue[E, T]) removeNear(el *list.Element[queue.Entry[E, T]]) queue.Entry[E, T] {
	entry := el.Value()
	b := q.near[entry.Time]
	b.Remove(el)
	delete(q.nearIndex, entry.Event)
	if b.Size() == 0 {
		delete(q.near, entry.Time)
		q.resetMax(entry.Time)
	}
	return entry
}

// takeNear removes the whole near bucket at [time].
func (q *Queue[E, T]) takeNear(time T) []E {
	b := q.near[time]
	delete(q.near, time)
	events := make([]E, 0, b.Size())
	for _, entry := range b.Drain() {
		delete(q.nearIndex, entry.Event)
		events = append(events, entry.Event)
	}
	q.resetMax(time)
	return events
}

// resetMax recomputes nearMax after the bucket at [removed] went away.
func (q *Queue[E, T]) resetMax(removed T) {
	if !queue.Equal(removed, q.nearMax) {
		return
	}
	first := true
	for t := range q.near {
		if first || queue.Less(q.nearMax, t) {
			q.nearMax = t
			first = false
		}
	}
}

func (q *Queue[E, T]) nearMin() T {
	var (
		min   T
		first = true
	)
	for t := range q.near {
		if first || queue.Less(t, min) {
			min = t
			first = false
		}
	}
	return min
}

// evictMax moves the bucket holding the largest near time to the far tier.
func (q *Queue[E, T]) evictMax() {
	time := q.nearMax
	b := q.near[time]
	delete(q.near, time)
	n := b.Size()
	for _, entry := range b.Drain() {
		delete(q.nearIndex, entry.Event)
		q.far[entry.Event] = entry.Time
	}
	q.resetMax(time)

	q.stats.Evictions++
	q.stats.Evicted += uint64(n)
	q.log.Verbo("evicted near bucket",
		zap.Any("time", time),
		zap.Int("events", n),
		zap.Int("far", len(q.far)),
	)
}

// reorganize refills an empty near tier from the far tier. It returns
// false if both tiers are empty.
func (q *Queue[E, T]) reorganize() bool {
	if len(q.near) > 0 {
		return true
	}
	if len(q.far) == 0 {
		return false
	}

	var (
		min   T
		first = true
	)
	for _, t := range q.far {
		if first || queue.Less(t, min) {
			min = t
			first = false
		}
	}
	promoted := 0
	for e, t := range q.far {
		if queue.Equal(t, min) {
			delete(q.far, e)
			q.insertNear(e, t)
			promoted++
		}
	}

	q.stats.Reorganizations++
	q.stats.Promoted += uint64(promoted)
	q.log.Verbo("reorganized far tier",
		zap.Any("time", min),
		zap.Int("promoted", promoted),
		zap.Int("far", len(q.far)),
	)
	return true
}

func (q *Queue[E, T]) remove(event E) (T, bool) {
	if el, ok := q.nearIndex[event]; ok {
		return q.removeNear(el).Time, true
	}
	if t, ok := q.far[event]; ok {
		delete(q.far, event)
		return t, true
	}
	return *new(T), false
}

// Enqueue places [event] in the near tier if [time] already has a bucket,
// or if there is room and doing so keeps every far time after the near
// maximum. A full near tier gives up its largest bucket to the far tier
// when [time] is before the near maximum. Anything else goes to the far
// tier.
func (q *Queue[E, T]) Enqueue(event E, time T) {
	if !queue.ValidTime(time) {
		return
	}
	q.remove(event)

	if _, ok := q.near[time]; ok {
		q.insertNear(event, time)
		return
	}
	beforeMax := len(q.near) > 0 && queue.Less(time, q.nearMax)
	switch {
	case len(q.near) < q.threshold && (beforeMax || len(q.far) == 0):
		q.insertNear(event, time)
	case beforeMax:
		q.evictMax()
		q.insertNear(event, time)
	default:
		q.far[event] = time
	}
}

func (q *Queue[E, T]) Dequeue() (queue.Entry[E, T], bool) {
	if !q.reorganize() {
		return queue.Entry[E, T]{}, false
	}
	return q.removeNear(q.near[q.nearMin()].First()), true
}

func (q *Queue[E, T]) Remove(event E) (T, bool) {
	return q.remove(event)
}

func (q *Queue[E, T]) DequeueAll() []E {
	if !q.reorganize() {
		return []E{}
	}
	return q.takeNear(q.nearMin())
}

// DequeueAllAt only scans the far tier when [time] is after the near
// maximum; earlier times without a near bucket cannot be in the far tier.
func (q *Queue[E, T]) DequeueAllAt(time T) []E {
	if _, ok := q.near[time]; ok {
		return q.takeNear(time)
	}
	events := []E{}
	if len(q.near) > 0 && !queue.Less(q.nearMax, time) {
		return events
	}
	for e, t := range q.far {
		if queue.Equal(t, time) {
			events = append(events, e)
		}
	}
	for _, e := range events {
		delete(q.far, e)
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
	q.remove(event)
	q.Enqueue(event, newTime)
}

// RequeueHint ignores [oldTime]: both tiers locate [event] in O(1).
func (q *Queue[E, T]) RequeueHint(event E, _ T, newTime T) {
	q.Requeue(event, newTime)
}

// Min returns the smallest time. If the near tier is empty this
// reorganizes, which moves events between tiers without changing any
// event's time.
func (q *Queue[E, T]) Min() (T, bool) {
	if !q.reorganize() {
		return *new(T), false
	}
	return q.nearMin(), true
}

func (q *Queue[E, T]) Time(event E) (T, bool) {
	if el, ok := q.nearIndex[event]; ok {
		return el.Value().Time, true
	}
	t, ok := q.far[event]
	return t, ok
}

func (q *Queue[E, T]) Len() int { return len(q.nearIndex) + len(q.far) }

func (q *Queue[E, T]) IsEmpty() bool { return q.Len() == 0 }

// SetSize re-allocates the far tier with room for [n] events. It is ignored
// once the far tier holds events.
func (q *Queue[E, T]) SetSize(n int) {
	if len(q.far) == 0 && n > 0 {
		q.far = make(map[E]T, n)
	}
}
