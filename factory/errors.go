// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package factory

import "errors"

var (
	ErrUnknownKind         = errors.New("unknown queue kind")
	ErrInvalidThreshold    = errors.New("threshold out of range")
	ErrInvalidSizeHint     = errors.New("size hint must not be negative")
	ErrUnsupportedIdentity = errors.New("identity behavior not supported by queue kind")
)
