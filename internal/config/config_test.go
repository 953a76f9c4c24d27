// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var errNegative = errors.New("negative")

type testConfig struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

func (c testConfig) Verify() error {
	if c.Count < 0 {
		return errNegative
	}
	return nil
}

func TestParse(t *testing.T) {
	defaults := testConfig{Name: "default", Count: 1}
	tests := []struct {
		name        string
		input       string
		expected    testConfig
		expectedErr error
	}{
		{
			name:     "empty",
			expected: defaults,
		},
		{
			name:     "json",
			input:    `{"count": 5}`,
			expected: testConfig{Name: "default", Count: 5},
		},
		{
			name:     "yaml",
			input:    "name: other\n",
			expected: testConfig{Name: "other", Count: 1},
		},
		{
			name:        "verified",
			input:       `{"count": -1}`,
			expectedErr: errNegative,
		},
		{
			name:        "not a document",
			input:       "- a\n- b\n",
			expectedErr: ErrInvalidFormat,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)
			c, err := Parse([]byte(test.input), defaults)
			require.ErrorIs(err, test.expectedErr)
			if test.expectedErr != nil {
				require.Zero(c)
				return
			}
			require.Equal(test.expected, c)
		})
	}
}

func TestParseUnknownYAMLKey(t *testing.T) {
	_, err := Parse([]byte("name: x\nextra: 1\n"), testConfig{})
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(os.WriteFile(path, []byte("count: 7\n"), 0o600))

	c, err := Load(path, testConfig{Name: "default"})
	require.NoError(err)
	require.Equal(testConfig{Name: "default", Count: 7}, c)

	_, err = Load(filepath.Join(dir, "missing.yaml"), testConfig{})
	require.ErrorIs(err, os.ErrNotExist)
}
