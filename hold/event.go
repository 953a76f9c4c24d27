// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hold

import "github.com/ava-labs/avalanchego/ids"

// Event is a simulated activity. Hold runs schedule pointers to Event, so
// every kind of queue can hold them.
type Event struct {
	ID    ids.ID
	index int // position in the run's event table
}

func newEvents(n int) []*Event {
	events := make([]*Event, n)
	for i := range events {
		events[i] = &Event{
			ID:    ids.Empty.Prefix(uint64(i)),
			index: i,
		}
	}
	return events
}

func (e *Event) Equal(other *Event) bool {
	return other != nil && e.ID == other.ID
}
