// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queue

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownIdentity = errors.New("unknown identity behavior")

// Identity decides when two events are "the same event".
type Identity uint8

const (
	// IdentityMatch matches events with ==. For pointer events this is reference
	// identity; map-keyed implementations only support this behavior.
	IdentityMatch Identity = iota
	// EqualsMatch matches events with [Equaler.Equal] when the event type
	// implements it and falls back to == otherwise.
	EqualsMatch
)

func (i Identity) String() string {
	switch i {
	case IdentityMatch:
		return "identity"
	case EqualsMatch:
		return "equals"
	default:
		return fmt.Sprintf("identity(%d)", uint8(i))
	}
}

func (i Identity) MarshalText() ([]byte, error) {
	switch i {
	case IdentityMatch, EqualsMatch:
		return []byte(i.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownIdentity, uint8(i))
	}
}

func (i *Identity) UnmarshalText(text []byte) error {
	v, err := ParseIdentity(string(text))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// ParseIdentity parses the textual form produced by [Identity.String]. The
// empty string parses as [IdentityMatch].
func ParseIdentity(s string) (Identity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "identity":
		return IdentityMatch, nil
	case "equals", "equality":
		return EqualsMatch, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownIdentity, s)
	}
}

// Ordering is the order in which entries that share a time are retrieved.
type Ordering uint8

const (
	// Unspecified means ties come out in an implementation-defined order
	// that callers must not rely on.
	Unspecified Ordering = iota
	// FIFO means ties come out in insertion order.
	FIFO
	// LIFO means ties come out in reverse insertion order.
	LIFO
)

func (o Ordering) String() string {
	switch o {
	case Unspecified:
		return "unspecified"
	case FIFO:
		return "fifo"
	case LIFO:
		return "lifo"
	default:
		return fmt.Sprintf("ordering(%d)", uint8(o))
	}
}

// Behavior is the set of semantics an implementation declares.
type Behavior struct {
	Identity Identity
	Ordering Ordering
	// Dedupe is true if an event can be associated with at most one time.
	// Enqueueing a present event then behaves like Requeue.
	Dedupe bool
}

func (b Behavior) String() string {
	return fmt.Sprintf("%s/%s/dedupe=%t", b.Identity, b.Ordering, b.Dedupe)
}
