// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package factory

import (
	"fmt"
	"strings"
)

// Kind names a queue implementation.
type Kind string

const (
	HashMap     Kind = "hashmap"
	Bucket      Kind = "bucket"
	Rebucket    Kind = "rebucket"
	SortedList  Kind = "sortedlist"
	SortedArray Kind = "sortedarray"
	Heap        Kind = "heap"
	Unsorted    Kind = "unsorted"
	TwoTier     Kind = "twotier"
)

var kinds = []Kind{
	HashMap,
	Bucket,
	Rebucket,
	SortedList,
	SortedArray,
	Heap,
	Unsorted,
	TwoTier,
}

// Kinds returns every known kind in a stable order.
func Kinds() []Kind {
	return append([]Kind(nil), kinds...)
}

func (k Kind) String() string { return string(k) }

// ParseKind is case insensitive.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// ParseKinds parses a comma separated list. An empty list selects every
// kind.
func ParseKinds(s string) ([]Kind, error) {
	if strings.TrimSpace(s) == "" {
		return Kinds(), nil
	}
	parts := strings.Split(s, ",")
	parsed := make([]Kind, 0, len(parts))
	for _, part := range parts {
		k, err := ParseKind(part)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, k)
	}
	return parsed, nil
}
