// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package unsorted

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
					return New[*queuetest.Event, float64](identity)
				},
				Seed: 2,
			}.Run(t)
		})
	}
}

func TestQueueKeepsInsertionOrder(t *testing.T) {
	require := require.New(t)
	q := New[*queuetest.Event, float64](queue.IdentityMatch)
	events := queuetest.NewEvents(4)
	for i, e := range events {
		q.Enqueue(e, float64(3-i))
	}
	q.SetSize(32)
	require.Equal(4, q.Len())

	_, ok := q.Remove(events[1])
	require.True(ok)
	require.Equal([]string{"e0", "e2", "e3"}, queuetest.Names([]*queuetest.Event{
		q.entries[0].Event,
		q.entries[1].Event,
		q.entries[2].Event,
	}))
}
