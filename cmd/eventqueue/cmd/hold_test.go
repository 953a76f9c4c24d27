// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/eventqueue/factory"
	"github.com/ava-labs/eventqueue/hold"
)

func TestRunHolds(t *testing.T) {
	require := require.New(t)
	parallel = 2

	holdConfig := hold.NewConfig()
	holdConfig.Initial = 32
	holdConfig.Holds = 1_000
	holdConfig.RequeueRatio = 0.2
	selected := []factory.Kind{factory.Heap, factory.TwoTier, factory.SortedArray}

	reports, err := runHolds(context.Background(), selected, holdConfig, factory.NewConfig())
	require.NoError(err)
	require.Len(reports, len(selected))
	for i, r := range reports {
		require.Equal(selected[i], r.kind)
		require.Zero(r.result.Violations)
		require.Equal(holdConfig.Holds, r.result.Holds)
		require.Positive(r.latency)
		// Seeding plus one enqueue per hold.
		require.Equal(float64(holdConfig.Initial+holdConfig.Holds), r.enqueued)
	}
	require.Equal(reports[0].result.Time, reports[1].result.Time)
}

func TestRunHoldsInvalidQueueConfig(t *testing.T) {
	require := require.New(t)
	parallel = 1

	queueConfig := factory.NewConfig()
	queueConfig.Threshold = 0
	_, err := runHolds(context.Background(), []factory.Kind{factory.TwoTier}, hold.NewConfig(), queueConfig)
	require.ErrorIs(err, factory.ErrInvalidThreshold)
}
