// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hold

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigVerify(t *testing.T) {
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
			name:        "unknown distribution",
			config:      func(c *Config) { c.Distribution = "pareto" },
			expectedErr: ErrUnknownDistribution,
		},
		{
			name:        "negative holds",
			config:      func(c *Config) { c.Holds = -1 },
			expectedErr: ErrInvalidCount,
		},
		{
			name:        "no events",
			config:      func(c *Config) { c.Initial = 0 },
			expectedErr: ErrNoEvents,
		},
		{
			name: "no events no holds",
			config: func(c *Config) {
				c.Initial = 0
				c.Holds = 0
			},
		},
		{
			name:        "zero mean",
			config:      func(c *Config) { c.Mean = 0 },
			expectedErr: ErrInvalidMean,
		},
		{
			name:        "nan mean",
			config:      func(c *Config) { c.Mean = math.NaN() },
			expectedErr: ErrInvalidMean,
		},
		{
			name:        "ratio above one",
			config:      func(c *Config) { c.RequeueRatio = 1.5 },
			expectedErr: ErrInvalidRequeueRatio,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := NewConfig()
			test.config(&c)
			require.ErrorIs(t, c.Verify(), test.expectedErr)
		})
	}
}

func TestParseConfig(t *testing.T) {
	require := require.New(t)

	c, err := ParseConfig([]byte(`{"holds": 10, "distribution": "bimodal"}`))
	require.NoError(err)
	require.Equal(10, c.Holds)
	require.Equal(Bimodal, c.Distribution)
	require.Equal(NewConfig().Initial, c.Initial)

	c, err = ParseConfig([]byte("initial: 3\nrequeue_ratio: 0.5\n"))
	require.NoError(err)
	require.Equal(3, c.Initial)
	require.Equal(0.5, c.RequeueRatio)

	_, err = ParseConfig([]byte("mean: -1\n"))
	require.ErrorIs(err, ErrInvalidMean)
}

func TestLoadConfig(t *testing.T) {
	require := require.New(t)
	path := filepath.Join(t.TempDir(), "hold.json")
	require.NoError(os.WriteFile(path, []byte(`{"seed": 42}`), 0o600))

	c, err := LoadConfig(path)
	require.NoError(err)
	require.Equal(uint64(42), c.Seed)
}
