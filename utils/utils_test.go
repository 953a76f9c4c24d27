// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFprintf(t *testing.T) {
	require := require.New(t)
	var b bytes.Buffer
	Fprintf(&b, "{{green}}%d holds{{/}}", 12)
	require.Contains(b.String(), "12 holds")
}

func TestMap(t *testing.T) {
	require := require.New(t)
	require.Equal([]string{"1", "2"}, Map(strconv.Itoa, []int{1, 2}))
	require.Empty(Map(strconv.Itoa, nil))
}
