// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package queuetest is the conformance suite every queue.Queue
// implementation runs in its own tests.
package queuetest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/ava-labs/eventqueue/queue"
)

type Queue = queue.Queue[*Event, float64]

// Suite describes the implementation under test.
type Suite struct {
	// New returns an empty queue.
	New func() Queue
	// RejectsInvalidTimes is true for bucket-based implementations, which
	// silently drop negative and NaN times.
	RejectsInvalidTimes bool
	// Seed drives the randomized differential test.
	Seed uint64
}

// Run runs every conformance test against [s].
func (s Suite) Run(t *testing.T) {
	tests := []struct {
		name string
		f    func(*testing.T, Suite)
	}{
		{"Empty", testEmpty},
		{"ZeroTime", testZeroTime},
		{"SizeInvariant", testSizeInvariant},
		{"MinCorrectness", testMinCorrectness},
		{"RoundTrip", testRoundTrip},
		{"RequeueEquivalence", testRequeueEquivalence},
		{"RequeueAbsent", testRequeueAbsent},
		{"StaleHint", testStaleHint},
		{"TieBreak", testTieBreak},
		{"InvalidTimes", testInvalidTimes},
		{"Buckets", testBuckets},
		{"DequeueAllAt", testDequeueAllAt},
		{"DequeueAllSet", testDequeueAllSet},
		{"Duplicates", testDuplicates},
		{"Identity", testIdentity},
		{"Randomized", testRandomized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.f(t, s)
		})
	}
}

// Group is every event dequeued together at one time.
type Group struct {
	Time   float64
	Events []string
}

// Drain empties [q] with DequeueAll and returns what came out.
func Drain(q Queue) []Group {
	var groups []Group
	for {
		t, ok := q.Min()
		if !ok {
			return groups
		}
		groups = append(groups, Group{Time: t, Events: Names(q.DequeueAll())})
	}
}

// RequireSameState drains [a] and [b] and requires them to match. Groups
// must come out in the same order unless [ordering] is unspecified.
func RequireSameState(t *testing.T, ordering queue.Ordering, a, b Queue) {
	require := require.New(t)
	require.Equal(b.Len(), a.Len())
	ga, gb := Drain(a), Drain(b)
	require.Len(ga, len(gb))
	for i := range ga {
		require.Equal(gb[i].Time, ga[i].Time)
		switch ordering {
		case queue.FIFO, queue.LIFO:
			require.Equal(gb[i].Events, ga[i].Events)
		default:
			require.ElementsMatch(gb[i].Events, ga[i].Events)
		}
	}
}

// RequireOrder requires [got] to be the tie [want], given in insertion
// order, as [ordering] returns it.
func RequireOrder(t *testing.T, ordering queue.Ordering, want, got []string) {
	require := require.New(t)
	switch ordering {
	case queue.FIFO:
		require.Equal(want, got)
	case queue.LIFO:
		reversed := make([]string, len(want))
		for i, name := range want {
			reversed[len(want)-1-i] = name
		}
		require.Equal(reversed, got)
	default:
		require.ElementsMatch(want, got)
	}
}

func fill(q Queue, events []*Event, times []float64) {
	for i, e := range events {
		q.Enqueue(e, times[i])
	}
}

func testEmpty(t *testing.T, s Suite) {
	require := require.New(t)
	q := s.New()

	require.Zero(q.Len())
	require.True(q.IsEmpty())
	_, ok := q.Min()
	require.False(ok)
	_, ok = q.Dequeue()
	require.False(ok)

	all := q.DequeueAll()
	require.NotNil(all)
	require.Empty(all)
	require.Empty(q.DequeueAllAt(1))
	require.Zero(q.DequeueAllSet().Len())
	require.Zero(q.DequeueAllSetAt(1).Len())

	e := NewEvent("a")
	_, ok = q.Remove(e)
	require.False(ok)
	_, ok = q.Time(e)
	require.False(ok)

	q.SetSize(16)
	require.True(q.IsEmpty())
}

func testZeroTime(t *testing.T, s Suite) {
	require := require.New(t)
	q := s.New()
	e := NewEvent("a")

	q.Enqueue(e, 0)
	min, ok := q.Min()
	require.True(ok)
	require.Zero(min)

	entry, ok := q.Dequeue()
	require.True(ok)
	require.Equal(e, entry.Event)
	require.Zero(entry.Time)
	require.True(q.IsEmpty())
}

func testSizeInvariant(t *testing.T, s Suite) {
	require := require.New(t)
	q := s.New()
	events := NewEvents(10)

	check := func(want int) {
		require.Equal(want, q.Len())
		require.Equal(want == 0, q.IsEmpty())
	}

	for i, e := range events {
		q.Enqueue(e, float64(i%3))
		check(i + 1)
	}
	q.Requeue(events[0], 7)
	check(10)
	q.RequeueHint(events[1], 1, 8)
	check(10)
	_, ok := q.Remove(events[2])
	require.True(ok)
	check(9)
	_, ok = q.Remove(events[2])
	require.False(ok)
	check(9)

	// 0: e3 e6 e9, 1: e4 e7, 2: e5 e8, 7: e0, 8: e1
	require.Len(q.DequeueAll(), 3)
	check(6)
	_, ok = q.Dequeue()
	require.True(ok)
	check(5)
	require.Len(q.DequeueAllAt(2), 2)
	check(3)
	require.Equal(2, q.DequeueAllSet().Len()+q.DequeueAllSetAt(8).Len())
	check(1)
	require.Len(q.DequeueAll(), 1)
	check(0)
}

func testMinCorrectness(t *testing.T, s Suite) {
	require := require.New(t)
	q := s.New()
	times := []float64{5, 3, 8, 3, 1, 9, 1.5}

	running := math.Inf(1)
	for i, tm := range times {
		q.Enqueue(NewEvents(1)[0], tm)
		running = min(running, tm)
		got, ok := q.Min()
		require.True(ok, "enqueue %d", i)
		require.Equal(running, got, "enqueue %d", i)
	}

	prev := math.Inf(-1)
	for !q.IsEmpty() {
		want, ok := q.Min()
		require.True(ok)
		entry, ok := q.Dequeue()
		require.True(ok)
		require.Equal(want, entry.Time)
		require.GreaterOrEqual(entry.Time, prev)
		prev = entry.Time
	}
}

func testRoundTrip(t *testing.T, s Suite) {
	for _, tm := range []float64{0, 1, 1.5, 2, 10} {
		require := require.New(t)
		events := NewEvents(3)
		times := []float64{1, 2, 2}

		q := s.New()
		fill(q, events, times)
		e := NewEvent("x")
		q.Enqueue(e, tm)
		got, ok := q.Remove(e)
		require.True(ok)
		require.Equal(tm, got)
		_, ok = q.Time(e)
		require.False(ok)

		want := s.New()
		fill(want, events, times)
		for i, ev := range events {
			got, ok := q.Time(ev)
			require.True(ok)
			require.Equal(times[i], got)
		}
		RequireSameState(t, q.Behavior().Ordering, q, want)
	}
}

func testRequeueEquivalence(t *testing.T, s Suite) {
	type requeue func(q Queue, e *Event, oldTime, newTime float64)
	modes := map[string]requeue{
		"none": func(q Queue, e *Event, _, newTime float64) {
			q.Requeue(e, newTime)
		},
		"hint": func(q Queue, e *Event, oldTime, newTime float64) {
			q.RequeueHint(e, oldTime, newTime)
		},
		"stale": func(q Queue, e *Event, oldTime, newTime float64) {
			q.RequeueHint(e, oldTime+99, newTime)
		},
	}
	times := []float64{1, 2, 2, 3, 3, 3}
	for name, f := range modes {
		for _, target := range []int{0, 1, 2, 4} {
			for _, newTime := range []float64{0.5, 2, 3, 7} {
				require := require.New(t)
				events := NewEvents(len(times))
				e := events[target]

				got := s.New()
				fill(got, events, times)
				f(got, e, times[target], newTime)

				want := s.New()
				fill(want, events, times)
				_, ok := want.Remove(e)
				require.True(ok)
				want.Enqueue(e, newTime)

				tm, ok := got.Time(e)
				require.True(ok, "%s: e%d -> %v", name, target, newTime)
				require.Equal(newTime, tm)
				require.Equal(len(times), got.Len())
				RequireSameState(t, got.Behavior().Ordering, got, want)
			}
		}
	}
}

func testRequeueAbsent(t *testing.T, s Suite) {
	require := require.New(t)
	events := NewEvents(3)
	times := []float64{1, 2, 3}
	e := NewEvent("x")

	got := s.New()
	fill(got, events, times)
	got.Requeue(e, 2)
	got.RequeueHint(NewEvent("y"), 1, 4)
	require.Equal(5, got.Len())

	tm, ok := got.Time(e)
	require.True(ok)
	require.Equal(2.0, tm)

	// The absent events were enqueued, so draining yields them where a
	// plain enqueue would have put them.
	groups := Drain(got)
	require.Len(groups, 4)
	RequireOrder(t, got.Behavior().Ordering, []string{"e1", "x"}, groups[1].Events)
	require.Equal([]string{"y"}, groups[3].Events)
}

func testStaleHint(t *testing.T, s Suite) {
	require := require.New(t)
	q := s.New()
	e := NewEvent("e")
	other := NewEvent("other")
	q.Enqueue(e, 2)
	q.Enqueue(other, 99)

	q.RequeueHint(e, 99, 5)
	tm, ok := q.Time(e)
	require.True(ok)
	require.Equal(5.0, tm)
	tm, ok = q.Time(other)
	require.True(ok)
	require.Equal(99.0, tm)
	require.Equal(2, q.Len())

	entry, ok := q.Dequeue()
	require.True(ok)
	require.Equal(e, entry.Event)
	require.Equal(5.0, entry.Time)
}

func testTieBreak(t *testing.T, s Suite) {
	require := require.New(t)
	events := NewEvents(3)
	early, late := NewEvent("early"), NewEvent("late")

	q := s.New()
	ordering := q.Behavior().Ordering
	q.Enqueue(late, 2)
	fill(q, events, []float64{1, 1, 1})
	q.Enqueue(early, 0.5)

	require.Equal([]string{"early"}, Names(q.DequeueAll()))
	RequireOrder(t, ordering, []string{"e0", "e1", "e2"}, Names(q.DequeueAll()))
	require.Equal([]string{"late"}, Names(q.DequeueAll()))

	q = s.New()
	fill(q, events, []float64{1, 1, 1})
	var got []string
	for !q.IsEmpty() {
		entry, ok := q.Dequeue()
		require.True(ok)
		require.Equal(1.0, entry.Time)
		got = append(got, entry.Event.Name)
	}
	RequireOrder(t, ordering, []string{"e0", "e1", "e2"}, got)
}

func testInvalidTimes(t *testing.T, s Suite) {
	require := require.New(t)
	q := s.New()
	a, e := NewEvent("a"), NewEvent("e")
	q.Enqueue(a, 1)

	if !s.RejectsInvalidTimes {
		q.Enqueue(e, -1)
		require.Equal(2, q.Len())
		min, ok := q.Min()
		require.True(ok)
		require.Equal(-1.0, min)
		return
	}

	q.Enqueue(e, -1)
	require.Equal(1, q.Len())
	_, ok := q.Time(e)
	require.False(ok)

	q.Enqueue(e, math.NaN())
	require.Equal(1, q.Len())
	_, ok = q.Time(e)
	require.False(ok)

	// Requeue is Remove followed by Enqueue, so the dropped enqueue leaves
	// the event unscheduled.
	q.Requeue(a, -2)
	require.True(q.IsEmpty())

	q.Enqueue(e, math.Inf(1))
	require.Equal(1, q.Len())
}

func testBuckets(t *testing.T, s Suite) {
	require := require.New(t)
	q := s.New()
	x, y, z := NewEvent("x"), NewEvent("y"), NewEvent("z")
	q.Enqueue(x, 5)
	q.Enqueue(y, 5)
	q.Enqueue(z, 3)

	min, ok := q.Min()
	require.True(ok)
	require.Equal(3.0, min)
	require.Equal([]string{"z"}, Names(q.DequeueAll()))

	min, ok = q.Min()
	require.True(ok)
	require.Equal(5.0, min)
	RequireOrder(t, q.Behavior().Ordering, []string{"x", "y"}, Names(q.DequeueAllAt(5)))
	require.True(q.IsEmpty())
}

func testDequeueAllAt(t *testing.T, s Suite) {
	require := require.New(t)
	q := s.New()
	events := NewEvents(5)
	fill(q, events, []float64{1, 2, 2, 3, 2})

	RequireOrder(t, q.Behavior().Ordering, []string{"e1", "e2", "e4"}, Names(q.DequeueAllAt(2)))
	require.Equal(2, q.Len())
	min, ok := q.Min()
	require.True(ok)
	require.Equal(1.0, min)

	require.Empty(q.DequeueAllAt(2.5))
	require.Empty(q.DequeueAllAt(2))
	require.Equal(2, q.Len())

	require.Equal([]string{"e3"}, Names(q.DequeueAllAt(3)))
	require.Equal([]string{"e0"}, Names(q.DequeueAll()))
	require.True(q.IsEmpty())
}

func testDequeueAllSet(t *testing.T, s Suite) {
	require := require.New(t)
	q := s.New()
	a, b, c := NewEvent("a"), NewEvent("b"), NewEvent("c")
	q.Enqueue(a, 1)
	q.Enqueue(b, 1)
	q.Enqueue(c, 2)

	first := q.DequeueAllSet()
	require.Equal(2, first.Len())
	require.True(first.Contains(a))
	require.True(first.Contains(b))
	require.False(first.Contains(c))

	require.Zero(q.DequeueAllSetAt(1).Len())
	second := q.DequeueAllSetAt(2)
	require.Equal(1, second.Len())
	require.True(second.Contains(c))
	require.True(q.IsEmpty())
}

func testDuplicates(t *testing.T, s Suite) {
	require := require.New(t)
	q := s.New()
	e := NewEvent("e")
	q.Enqueue(e, 1)
	q.Enqueue(e, 2)

	if q.Behavior().Dedupe {
		require.Equal(1, q.Len())
		tm, ok := q.Time(e)
		require.True(ok)
		require.Equal(2.0, tm)
		min, ok := q.Min()
		require.True(ok)
		require.Equal(2.0, min)
		return
	}

	require.Equal(2, q.Len())
	tm, ok := q.Remove(e)
	require.True(ok)
	require.Equal(1.0, tm)
	tm, ok = q.Remove(e)
	require.True(ok)
	require.Equal(2.0, tm)
	_, ok = q.Remove(e)
	require.False(ok)
}

func testIdentity(t *testing.T, s Suite) {
	require := require.New(t)
	q := s.New()
	e := NewEvent("e")
	clone := e.Clone()
	q.Enqueue(e, 1)

	if q.Behavior().Identity == queue.IdentityMatch {
		_, ok := q.Time(clone)
		require.False(ok)
		_, ok = q.Remove(clone)
		require.False(ok)
		require.Equal(1, q.Len())
		return
	}

	tm, ok := q.Time(clone)
	require.True(ok)
	require.Equal(1.0, tm)
	q.Requeue(clone, 3)
	require.Equal(1, q.Len())
	tm, ok = q.Remove(clone)
	require.True(ok)
	require.Equal(3.0, tm)
	require.True(q.IsEmpty())
}

// testRandomized runs a random mix of operations against the queue and the
// reference model and requires them to agree after every step.
func testRandomized(t *testing.T, s Suite) {
	const (
		steps  = 4_000
		events = 64
	)
	require := require.New(t)
	r := rand.New(rand.NewSource(s.Seed + 1))
	q := s.New()
	ref := newReference()
	pool := NewEvents(events)

	randomTime := func() float64 {
		tm := float64(r.Intn(16))
		if r.Intn(4) == 0 {
			tm += 0.5
		}
		return tm
	}
	pickLive := func() (*Event, bool) {
		live := ref.live()
		if len(live) == 0 {
			return nil, false
		}
		return live[r.Intn(len(live))], true
	}

	for step := 0; step < steps; step++ {
		switch r.Intn(8) {
		case 0, 1:
			e := pool[r.Intn(events)]
			if _, ok := ref.times[e]; ok {
				continue
			}
			tm := randomTime()
			if s.RejectsInvalidTimes && r.Intn(20) == 0 {
				tm = -1
			}
			q.Enqueue(e, tm)
			ref.enqueue(e, tm, s.RejectsInvalidTimes)
		case 2:
			e, ok := pickLive()
			if !ok {
				continue
			}
			oldTime, newTime := ref.times[e], randomTime()
			switch r.Intn(3) {
			case 0:
				q.Requeue(e, newTime)
			case 1:
				q.RequeueHint(e, oldTime, newTime)
			default:
				q.RequeueHint(e, oldTime+100, newTime)
			}
			ref.remove(e)
			ref.enqueue(e, newTime, s.RejectsInvalidTimes)
		case 3:
			e := pool[r.Intn(events)]
			want, wantOK := ref.remove(e)
			got, ok := q.Remove(e)
			require.Equal(wantOK, ok, "step %d", step)
			require.Equal(want, got, "step %d", step)
		case 4:
			want, wantOK := ref.min()
			entry, ok := q.Dequeue()
			require.Equal(wantOK, ok, "step %d", step)
			if !ok {
				continue
			}
			require.Equal(want, entry.Time, "step %d", step)
			tm, live := ref.remove(entry.Event)
			require.True(live, "step %d", step)
			require.Equal(want, tm, "step %d", step)
		case 5:
			want, _ := ref.min()
			got := q.DequeueAll()
			require.ElementsMatch(Names(ref.takeAt(want)), Names(got), "step %d", step)
		case 6:
			tm := randomTime()
			got := q.DequeueAllAt(tm)
			require.ElementsMatch(Names(ref.takeAt(tm)), Names(got), "step %d", step)
		default:
			e := pool[r.Intn(events)]
			want, wantOK := ref.times[e]
			got, ok := q.Time(e)
			require.Equal(wantOK, ok, "step %d", step)
			require.Equal(want, got, "step %d", step)
		}

		require.Equal(len(ref.times), q.Len(), "step %d", step)
		require.Equal(len(ref.times) == 0, q.IsEmpty(), "step %d", step)
		want, wantOK := ref.min()
		got, ok := q.Min()
		require.Equal(wantOK, ok, "step %d", step)
		require.Equal(want, got, "step %d", step)
	}
}
