// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queuetest

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/ava-labs/eventqueue/queue"
)

// reference is the model the randomized tests compare against. It only
// supports distinct events, which is all the randomized tests generate.
type reference struct {
	times map[*Event]float64
}

func newReference() *reference {
	return &reference{times: make(map[*Event]float64)}
}

func (r *reference) enqueue(e *Event, t float64, rejectsInvalid bool) {
	if rejectsInvalid && !queue.ValidTime(t) {
		return
	}
	r.times[e] = t
}

func (r *reference) remove(e *Event) (float64, bool) {
	t, ok := r.times[e]
	delete(r.times, e)
	return t, ok
}

func (r *reference) min() (float64, bool) {
	var (
		min   float64
		found bool
	)
	for _, t := range r.times {
		if !found || queue.Less(t, min) {
			min = t
			found = true
		}
	}
	return min, found
}

func (r *reference) at(t float64) []*Event {
	var events []*Event
	for e, et := range r.times {
		if queue.Equal(et, t) {
			events = append(events, e)
		}
	}
	return events
}

func (r *reference) takeAt(t float64) []*Event {
	events := r.at(t)
	for _, e := range events {
		delete(r.times, e)
	}
	return events
}

// live returns the stored events sorted by name so that random picks are
// reproducible for a given seed.
func (r *reference) live() []*Event {
	events := maps.Keys(r.times)
	slices.SortFunc(events, func(a, b *Event) int {
		return strings.Compare(a.Name, b.Name)
	})
	return events
}
