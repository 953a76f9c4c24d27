// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queue

import (
	"cmp"

	"github.com/ava-labs/avalanchego/utils/set"
)

// Equaler is implemented by events that define structural equality.
type Equaler[E any] interface {
	Equal(other E) bool
}

// Matcher reports whether two events are the same event.
type Matcher[E comparable] func(a, b E) bool

// NewMatcher returns the Matcher for [identity].
func NewMatcher[E comparable](identity Identity) Matcher[E] {
	if identity == EqualsMatch {
		return equals[E]
	}
	return same[E]
}

func same[E comparable](a, b E) bool {
	return a == b
}

func equals[E comparable](a, b E) bool {
	if eq, ok := any(a).(Equaler[E]); ok {
		return eq.Equal(b)
	}
	return a == b
}

// Equal reports whether [a] and [b] are the same time under the total order.
func Equal[T cmp.Ordered](a, b T) bool {
	return cmp.Compare(a, b) == 0
}

// Less reports whether [a] is strictly before [b]. NaN sorts before every
// other value.
func Less[T cmp.Ordered](a, b T) bool {
	return cmp.Less(a, b)
}

// ValidTime reports whether [t] is an acceptable time for bucket-based
// implementations: not negative and not NaN.
func ValidTime[T cmp.Ordered](t T) bool {
	var zero T
	// NaN is the only value not equal to itself.
	if t != t { //nolint:gocritic
		return false
	}
	return !(t < zero)
}

// SetOf collects [events] into a set.
func SetOf[E comparable](events []E) set.Set[E] {
	s := set.NewSet[E](len(events))
	s.Add(events...)
	return s
}
