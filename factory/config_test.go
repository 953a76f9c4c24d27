// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package factory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/eventqueue/internal/config"
	"github.com/ava-labs/eventqueue/queue"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    Config
		expectedErr error
	}{
		{
			name:     "empty",
			input:    "",
			expected: NewConfig(),
		},
		{
			name:  "json",
			input: `{"kind":"twotier","threshold":8,"identity":"identity"}`,
			expected: Config{
				Kind:      TwoTier,
				Threshold: 8,
				Identity:  queue.IdentityMatch,
			},
		},
		{
			name:  "yaml",
			input: "kind: sortedarray\nsize_hint: 1024\nidentity: equals\n",
			expected: Config{
				Kind:      SortedArray,
				Threshold: defaultThreshold,
				SizeHint:  1024,
				Identity:  queue.EqualsMatch,
			},
		},
		{
			name:        "unknown kind",
			input:       `{"kind":"ladder"}`,
			expectedErr: ErrUnknownKind,
		},
		{
			name:        "unknown identity",
			input:       `{"identity":"shape"}`,
			expectedErr: queue.ErrUnknownIdentity,
		},
		{
			name:        "negative size hint",
			input:       "size_hint: -3\n",
			expectedErr: ErrInvalidSizeHint,
		},
		{
			name:        "not a document",
			input:       "- just\n- a list\n",
			expectedErr: config.ErrInvalidFormat,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)
			c, err := ParseConfig([]byte(test.input))
			require.ErrorIs(err, test.expectedErr)
			if test.expectedErr == nil {
				require.Equal(test.expected, c)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "queue.yaml")
	require.NoError(os.WriteFile(path, []byte("kind: bucket\n"), 0o600))

	c, err := LoadConfig(path)
	require.NoError(err)
	require.Equal(Bucket, c.Kind)
	require.Equal(defaultThreshold, c.Threshold)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(err, os.ErrNotExist)
}
