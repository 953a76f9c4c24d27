// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hold

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/eventqueue/factory"
	"github.com/ava-labs/eventqueue/queue"
)

func newQueue(t *testing.T, kind factory.Kind) queue.Queue[*Event, float64] {
	c := factory.NewConfig()
	c.Kind = kind
	c.Threshold = 8
	q, err := factory.NewFloat[*Event](logging.NoLog{}, c)
	require.NoError(t, err)
	return q
}

func TestRunAllKinds(t *testing.T) {
	require := require.New(t)
	c := NewConfig()
	c.Initial = 64
	c.Holds = 5_000
	c.RequeueRatio = 0.25

	var reference *Result
	for _, kind := range factory.Kinds() {
		result, err := Run(context.Background(), logging.NoLog{}, newQueue(t, kind), c, nil)
		require.NoError(err, kind)
		require.Zero(result.Violations, kind)
		require.Equal(c.Holds, result.Holds, kind)
		require.Equal(c.Initial, result.Size, kind)
		require.Positive(result.Requeues, kind)

		// Continuous increments never tie, so every kind replays the same
		// schedule.
		if reference == nil {
			reference = &result
			continue
		}
		require.Equal(reference.Time, result.Time, kind)
		require.Equal(reference.Requeues, result.Requeues, kind)
	}
}

func TestRunDistributions(t *testing.T) {
	for _, d := range []Distribution{Exponential, Uniform, Bimodal, Constant} {
		t.Run(d.String(), func(t *testing.T) {
			require := require.New(t)
			c := NewConfig()
			c.Initial = 32
			c.Holds = 2_000
			c.Distribution = d
			c.RequeueRatio = 0.1

			result, err := Run(context.Background(), logging.NoLog{}, newQueue(t, factory.TwoTier), c, nil)
			require.NoError(err)
			require.Zero(result.Violations)
			require.Equal(c.Initial, result.Size)
			require.Positive(result.Time)
		})
	}
}

func TestRunConstantTies(t *testing.T) {
	require := require.New(t)
	c := NewConfig()
	c.Initial = 10
	c.Holds = 95
	c.Distribution = Constant
	c.Mean = 2

	result, err := Run(context.Background(), logging.NoLog{}, newQueue(t, factory.Bucket), c, nil)
	require.NoError(err)
	// Every event is seeded at 2 and each round of 10 holds advances the
	// clock by 2.
	require.Equal(20.0, result.Time)
	require.Zero(result.Violations)
}

func TestRunLatency(t *testing.T) {
	require := require.New(t)
	latency, err := metric.NewAverager(
		"",
		"hold_latency",
		"time spent per hold",
		prometheus.NewRegistry(),
	)
	require.NoError(err)

	c := NewConfig()
	c.Initial = 16
	c.Holds = 100
	_, err = Run(context.Background(), logging.NoLog{}, newQueue(t, factory.Heap), c, latency)
	require.NoError(err)
}

func TestRunCanceled(t *testing.T) {
	require := require.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewConfig()
	c.Initial = 4
	result, err := Run(ctx, logging.NoLog{}, newQueue(t, factory.HashMap), c, nil)
	require.ErrorIs(err, context.Canceled)
	require.Zero(result.Holds)
	require.Equal(4, result.Size)
}

// droppingQueue forgets every enqueue after the first [keep].
type droppingQueue struct {
	queue.Queue[*Event, float64]
	keep int
}

func (q *droppingQueue) Enqueue(e *Event, t float64) {
	if q.keep == 0 {
		return
	}
	q.keep--
	q.Queue.Enqueue(e, t)
}

func TestRunDrained(t *testing.T) {
	require := require.New(t)
	c := NewConfig()
	c.Initial = 2
	c.Holds = 10
	c.Distribution = Constant

	// Both seeds land at 1. The first hold moves one event to 2 and every
	// later enqueue is lost, so the queue runs dry after three holds.
	q := &droppingQueue{Queue: newQueue(t, factory.Unsorted), keep: 3}
	result, err := Run(context.Background(), logging.NoLog{}, q, c, nil)
	require.ErrorIs(err, ErrQueueDrained)
	require.Equal(3, result.Holds)
	require.Zero(result.Size)
	require.Equal(2.0, result.Time)
}

func TestRunInvalidConfig(t *testing.T) {
	require := require.New(t)
	c := NewConfig()
	c.Initial = 0
	_, err := Run(context.Background(), logging.NoLog{}, newQueue(t, factory.Heap), c, nil)
	require.ErrorIs(err, ErrNoEvents)
}

func TestResultHoldsPerSecond(t *testing.T) {
	require := require.New(t)
	require.Zero(Result{Holds: 10}.HoldsPerSecond())
	require.Equal(5.0, Result{Holds: 10, Duration: 2_000_000_000}.HoldsPerSecond())
}
