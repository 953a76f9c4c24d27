// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package heapqueue

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/eventqueue/queue"
	"github.com/ava-labs/eventqueue/queue/queuetest"
)

func TestQueue(t *testing.T) {
	for _, identity := range []queue.Identity{queue.IdentityMatch, queue.EqualsMatch} {
		t.Run(identity.String(), func(t *testing.T) {
			queuetest.Suite{
				New: func() queuetest.Queue {
					return New[*queuetest.Event, float64](0, identity)
				},
				Seed: 7,
			}.Run(t)
		})
	}
}

func TestQueueHeapOrder(t *testing.T) {
	require := require.New(t)
	q := New[*queuetest.Event, float64](16, queue.IdentityMatch)
	times := []float64{9, 3, 7, 1, 8, 2, 6, 4, 5, 0}
	events := queuetest.NewEvents(len(times))
	for i, tm := range times {
		q.Enqueue(events[i], tm)
	}
	_, ok := q.Remove(events[3])
	require.True(ok)
	require.Len(q.DequeueAllAt(7), 1)

	var got []float64
	for {
		entry, ok := q.Dequeue()
		if !ok {
			break
		}
		got = append(got, entry.Time)
	}
	require.Equal([]float64{0, 2, 3, 4, 5, 6, 8, 9}, got)
}

func TestQueueRequeueHintDuplicates(t *testing.T) {
	require := require.New(t)
	q := New[*queuetest.Event, float64](0, queue.IdentityMatch)
	e := queuetest.NewEvent("e")
	q.Enqueue(e, 1)
	q.Enqueue(e, 4)

	q.RequeueHint(e, 4, 0.5)
	require.Equal(2, q.Len())
	entry, ok := q.Dequeue()
	require.True(ok)
	require.Equal(0.5, entry.Time)
	entry, ok = q.Dequeue()
	require.True(ok)
	require.Equal(1.0, entry.Time)
}
