// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queuetest

import (
	"fmt"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/eventqueue/utils"
)

// Event is a test event. Pointers to Event are matched by reference under
// [queue.IdentityMatch] and by ID under [queue.EqualsMatch].
type Event struct {
	ID   ids.ID
	Name string
}

func NewEvent(name string) *Event {
	return &Event{
		ID:   ids.GenerateTestID(),
		Name: name,
	}
}

// NewEvents returns [n] events named e0...e[n-1].
func NewEvents(n int) []*Event {
	events := make([]*Event, n)
	for i := range events {
		events[i] = NewEvent(fmt.Sprintf("e%d", i))
	}
	return events
}

// Clone returns a distinct pointer to an equal event.
func (e *Event) Clone() *Event {
	c := *e
	return &c
}

func (e *Event) Equal(other *Event) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.ID == other.ID
}

func (e *Event) String() string {
	return e.Name
}

// Names returns the names of [events] in order.
func Names(events []*Event) []string {
	return utils.Map((*Event).String, events)
}
