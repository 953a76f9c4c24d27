// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rebucket

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/eventqueue/queue/queuetest"
)

func TestQueue(t *testing.T) {
	queuetest.Suite{
		New: func() queuetest.Queue {
			return New[*queuetest.Event, float64](8)
		},
		RejectsInvalidTimes: true,
		Seed:                4,
	}.Run(t)
}

// requireConsistent checks that the event index and the buckets describe
// the same associations.
func requireConsistent(t *testing.T, q *Queue[*queuetest.Event, float64]) {
	require := require.New(t)
	n := 0
	for tm, b := range q.buckets {
		require.NotZero(b.Size(), "empty bucket at %v", tm)
		for el := b.First(); el != nil; el = el.Next() {
			entry := el.Value()
			require.Equal(tm, entry.Time)
			require.Same(el, q.index[entry.Event])
			n++
		}
	}
	require.Len(q.index, n)
	require.Equal(n, q.Len())
}

func TestQueueIndexConsistency(t *testing.T) {
	require := require.New(t)
	q := New[*queuetest.Event, float64](0)
	events := queuetest.NewEvents(6)
	for i, e := range events {
		q.Enqueue(e, float64(i%3))
	}
	requireConsistent(t, q)

	q.Requeue(events[0], 5)
	q.RequeueHint(events[1], 1, 5)
	q.RequeueHint(events[2], 42, 0)
	requireConsistent(t, q)

	_, ok := q.Remove(events[3])
	require.True(ok)
	requireConsistent(t, q)

	require.Len(q.DequeueAllAt(5), 2)
	requireConsistent(t, q)

	entry, ok := q.Dequeue()
	require.True(ok)
	require.Zero(entry.Time)
	requireConsistent(t, q)

	q.DequeueAll()
	requireConsistent(t, q)
	for !q.IsEmpty() {
		q.DequeueAll()
	}
	require.Empty(q.buckets)
	require.Empty(q.index)
}

func TestQueueMove(t *testing.T) {
	require := require.New(t)
	q := New[*queuetest.Event, float64](0)
	e := queuetest.NewEvent("e")
	q.Enqueue(e, 1)
	q.Enqueue(e, 2)
	require.Equal(1, q.Len())
	require.NotContains(q.buckets, 1.0)

	tm, ok := q.Time(e)
	require.True(ok)
	require.Equal(2.0, tm)
}
