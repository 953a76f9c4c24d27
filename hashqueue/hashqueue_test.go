// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hashqueue

import (
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/eventqueue/queue"
	"github.com/ava-labs/eventqueue/queue/queuetest"
)

func TestHashQueue(t *testing.T) {
	queuetest.Suite{
		New: func() queuetest.Queue {
			return New[*queuetest.Event, float64](0)
		},
		Seed: 1,
	}.Run(t)
}

func TestHashQueueBehavior(t *testing.T) {
	require := require.New(t)
	q := New[*queuetest.Event, float64](0)
	require.Equal(queue.Behavior{
		Identity: queue.IdentityMatch,
		Ordering: queue.Unspecified,
		Dedupe:   true,
	}, q.Behavior())
}

func TestHashQueueValueEvents(t *testing.T) {
	// ids.ID is a value type, so == is structural equality.
	require := require.New(t)
	q := New[ids.ID, float64](0)
	id := ids.GenerateTestID()
	q.Enqueue(id, 3)
	q.Enqueue(ids.ID(id), 4)
	require.Equal(1, q.Len())

	tm, ok := q.Time(id)
	require.True(ok)
	require.Equal(4.0, tm)
}

func TestHashQueueSetSize(t *testing.T) {
	require := require.New(t)
	q := New[*queuetest.Event, float64](0)
	e := queuetest.NewEvent("e")

	q.SetSize(64)
	q.Enqueue(e, 1)
	// Ignored once the queue holds events.
	q.SetSize(128)
	tm, ok := q.Time(e)
	require.True(ok)
	require.Equal(1.0, tm)
}
