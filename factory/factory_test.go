// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package factory

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/eventqueue/queue"
	"github.com/ava-labs/eventqueue/queue/queuetest"
)

func TestFactories(t *testing.T) {
	require := require.New(t)
	fs := Factories[*queuetest.Event, float64](logging.NoLog{})
	require.Len(fs, len(Kinds()))
	for i, f := range fs {
		require.Equal(Kinds()[i], f.Kind())
		require.Positive(f.EfficiencyIndex())

		c := NewConfig()
		c.Kind = f.Kind()
		q, err := f.New(c)
		require.NoError(err)
		require.Equal(f.Behavior(), q.Behavior(), f.Kind())
		require.True(q.IsEmpty())
	}
}

func TestFactoriesConform(t *testing.T) {
	for _, f := range Factories[*queuetest.Event, float64](logging.NoLog{}) {
		t.Run(f.Kind().String(), func(t *testing.T) {
			c := NewConfig()
			c.Kind = f.Kind()
			c.Threshold = 4
			c.SizeHint = 16
			queuetest.Suite{
				New: func() queuetest.Queue {
					q, err := f.New(c)
					require.NoError(t, err)
					return q
				},
				RejectsInvalidTimes: f.Kind() == Bucket || f.Kind() == Rebucket || f.Kind() == TwoTier,
				Seed:                11,
			}.Run(t)
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		config      func(*Config)
		expectedErr error
	}{
		{
			name:   "default",
			config: func(*Config) {},
		},
		{
			name:        "unknown kind",
			config:      func(c *Config) { c.Kind = "splay" },
			expectedErr: ErrUnknownKind,
		},
		{
			name: "zero threshold",
			config: func(c *Config) {
				c.Kind = TwoTier
				c.Threshold = 0
			},
			expectedErr: ErrInvalidThreshold,
		},
		{
			name: "zero bucket threshold",
			config: func(c *Config) {
				c.Kind = Bucket
				c.Threshold = 0
			},
		},
		{
			name: "negative bucket threshold",
			config: func(c *Config) {
				c.Kind = Rebucket
				c.Threshold = -1
			},
			expectedErr: ErrInvalidThreshold,
		},
		{
			name: "threshold ignored",
			config: func(c *Config) {
				c.Kind = Heap
				c.Threshold = -1
			},
		},
		{
			name:        "negative size hint",
			config:      func(c *Config) { c.SizeHint = -1 },
			expectedErr: ErrInvalidSizeHint,
		},
		{
			name: "equals on map keyed kind",
			config: func(c *Config) {
				c.Kind = HashMap
				c.Identity = queue.EqualsMatch
			},
			expectedErr: ErrUnsupportedIdentity,
		},
		{
			name: "equals on scanning kind",
			config: func(c *Config) {
				c.Kind = SortedList
				c.Identity = queue.EqualsMatch
			},
		},
		{
			name:        "unknown identity",
			config:      func(c *Config) { c.Identity = queue.Identity(9) },
			expectedErr: queue.ErrUnknownIdentity,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)
			c := NewConfig()
			test.config(&c)
			q, err := NewFloat[*queuetest.Event](logging.NoLog{}, c)
			require.ErrorIs(err, test.expectedErr)
			if test.expectedErr != nil {
				require.Nil(q)
				return
			}
			require.Equal(c.Identity, q.Behavior().Identity)
		})
	}
}

type bufferCloser struct {
	bytes.Buffer
}

func (*bufferCloser) Close() error { return nil }

func TestNewThreshold(t *testing.T) {
	tests := []struct {
		kind      Kind
		threshold int
		logged    bool
	}{
		{kind: Bucket, threshold: 8, logged: true},
		{kind: Rebucket, threshold: 8, logged: true},
		{kind: TwoTier, threshold: 3, logged: true},
		{kind: Heap, threshold: 8},
	}
	for _, test := range tests {
		t.Run(test.kind.String(), func(t *testing.T) {
			require := require.New(t)
			w := &bufferCloser{}
			log := logging.NewLogger("", logging.NewWrappedCore(logging.Debug, w, logging.JSON.FileEncoder()))

			c := NewConfig()
			c.Kind = test.kind
			c.Threshold = test.threshold
			_, err := NewFloat[*queuetest.Event](log, c)
			require.NoError(err)

			line := strings.TrimSpace(w.String())
			require.NotEmpty(line)
			fields := map[string]any{}
			require.NoError(json.Unmarshal([]byte(line), &fields))
			require.Equal(test.kind.String(), fields["kind"])
			threshold, ok := fields["threshold"]
			require.Equal(test.logged, ok)
			if test.logged {
				require.InDelta(float64(test.threshold), threshold, 0)
			}
		})
	}
}

func TestByEfficiency(t *testing.T) {
	require := require.New(t)
	fs := ByEfficiency[string, int64](logging.NoLog{})
	require.Len(fs, len(Kinds()))
	require.Equal(TwoTier, fs[0].Kind())
	require.Equal(Unsorted, fs[len(fs)-1].Kind())
	for i := 1; i < len(fs); i++ {
		require.GreaterOrEqual(fs[i-1].EfficiencyIndex(), fs[i].EfficiencyIndex())
	}
}

func TestGet(t *testing.T) {
	require := require.New(t)
	f, err := Get[string, float64](logging.NoLog{}, Rebucket)
	require.NoError(err)
	require.Equal(Rebucket, f.Kind())
	require.True(f.Behavior().Dedupe)
	require.Equal(queue.FIFO, f.Behavior().Ordering)

	_, err = Get[string, float64](logging.NoLog{}, "calendar")
	require.ErrorIs(err, ErrUnknownKind)
}

func TestParseKinds(t *testing.T) {
	require := require.New(t)
	all, err := ParseKinds(" ")
	require.NoError(err)
	require.Equal(Kinds(), all)

	some, err := ParseKinds("Heap, twotier")
	require.NoError(err)
	require.Equal([]Kind{Heap, TwoTier}, some)

	_, err = ParseKinds("heap,ladder")
	require.ErrorIs(err, ErrUnknownKind)
}
