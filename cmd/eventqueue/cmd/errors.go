// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import "errors"

var (
	ErrInvalidArgs     = errors.New("invalid args")
	ErrInvalidParallel = errors.New("parallel must be at least 1")
)
