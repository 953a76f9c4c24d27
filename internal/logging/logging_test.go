// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesFile(t *testing.T) {
	require := require.New(t)
	c := NewConfig("eventqueue")
	c.Directory = filepath.Join(t.TempDir(), "logs")
	c.Quiet = true

	log, err := New(c)
	require.NoError(err)
	log.Info("hello", zap.Int("answer", 42))
	log.Debug("below the level")
	log.Stop()

	bytes, err := os.ReadFile(filepath.Join(c.Directory, "eventqueue.log"))
	require.NoError(err)
	require.Contains(string(bytes), `"answer":42`)
	require.NotContains(string(bytes), "below the level")
}

func TestNewConsoleOnly(t *testing.T) {
	require := require.New(t)
	c := NewConfig("console")
	c.Quiet = true
	c.Level = logging.Verbo

	log, err := New(c)
	require.NoError(err)
	require.True(log.Enabled(logging.Verbo))
	log.Stop()
}

func TestParseLevel(t *testing.T) {
	require := require.New(t)
	level, err := ParseLevel("debug")
	require.NoError(err)
	require.Equal(logging.Debug, level)

	_, err = ParseLevel("chatty")
	require.Error(err)
}
