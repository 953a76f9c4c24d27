// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseIdentity(t *testing.T) {
	tests := []struct {
		input       string
		expected    Identity
		expectedErr error
	}{
		{input: "", expected: IdentityMatch},
		{input: "identity", expected: IdentityMatch},
		{input: " Identity ", expected: IdentityMatch},
		{input: "equals", expected: EqualsMatch},
		{input: "EQUALITY", expected: EqualsMatch},
		{input: "pointer", expectedErr: ErrUnknownIdentity},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			require := require.New(t)
			identity, err := ParseIdentity(test.input)
			require.ErrorIs(err, test.expectedErr)
			require.Equal(test.expected, identity)
		})
	}
}

func TestIdentityText(t *testing.T) {
	require := require.New(t)

	b, err := json.Marshal(map[string]Identity{"identity": EqualsMatch})
	require.NoError(err)
	require.JSONEq(`{"identity":"equals"}`, string(b))

	var decoded map[string]Identity
	require.NoError(json.Unmarshal(b, &decoded))
	require.Equal(EqualsMatch, decoded["identity"])

	_, err = Identity(9).MarshalText()
	require.ErrorIs(err, ErrUnknownIdentity)

	var i Identity
	require.ErrorIs(i.UnmarshalText([]byte("nope")), ErrUnknownIdentity)
}

func TestBehaviorString(t *testing.T) {
	require := require.New(t)
	require.Equal("identity/fifo/dedupe=true", Behavior{
		Identity: IdentityMatch,
		Ordering: FIFO,
		Dedupe:   true,
	}.String())
	require.Equal("equals/lifo/dedupe=false", Behavior{
		Identity: EqualsMatch,
		Ordering: LIFO,
	}.String())
	require.Equal("unspecified", Unspecified.String())
	require.Equal("ordering(7)", Ordering(7).String())
	require.Equal("identity(7)", Identity(7).String())
}
