// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package queue defines the contract shared by every pending-event store
// (the "future event list") a discrete-event scheduler can run on.
//
// Implementations live in sibling packages and are peers: none of them
// embeds another and each one is chosen once per simulation run.
//
// None of the implementations perform any synchronization. A queue instance
// is owned by the scheduler that created it for the lifetime of a run and
// must not be shared between goroutines without external locking.
package queue

import (
	"cmp"

	"github.com/ava-labs/avalanchego/utils/set"
)

// Entry pairs an event with the time it is scheduled for.
//
// Entries are never modified once they are stored. Rescheduling an event
// removes its entry and inserts a new one.
type Entry[E comparable, T cmp.Ordered] struct {
	Event E
	Time  T
}

// Queue is a priority structure keyed by simulation time.
//
// Methods that can find nothing return the comma-ok idiom so that an empty
// queue can never be confused with a minimum of zero.
type Queue[E comparable, T cmp.Ordered] interface {
	// Enqueue schedules [event] at [time]. It never fails. Depending on
	// [Behavior.Dedupe], enqueueing an event that is already present either
	// creates an independent association or moves the existing one.
	//
	// Bucket-based implementations silently drop negative and NaN times.
	Enqueue(event E, time T)

	// Dequeue removes and returns the entry with the smallest time. Ties are
	// broken according to [Behavior.Ordering].
	Dequeue() (Entry[E, T], bool)

	// Remove removes the association for [event] and returns its time.
	Remove(event E) (T, bool)

	// DequeueAll removes and returns every event scheduled at the current
	// minimum time. It returns an empty, non-nil slice if the queue is
	// empty.
	DequeueAll() []E

	// DequeueAllAt removes and returns every event scheduled at exactly
	// [time].
	DequeueAllAt(time T) []E

	// DequeueAllSet is DequeueAll returning a set for callers that test
	// membership on the result.
	DequeueAllSet() set.Set[E]

	// DequeueAllSetAt is DequeueAllAt returning a set.
	DequeueAllSetAt(time T) set.Set[E]

	// Requeue moves [event] to [newTime]. If [event] is not present it is
	// enqueued.
	Requeue(event E, newTime T)

	// RequeueHint is Requeue where [oldTime] is the time the caller believes
	// [event] is currently scheduled at. Implementations may use it to find
	// the entry faster. A wrong hint is never an error: it degrades to
	// Requeue.
	RequeueHint(event E, oldTime T, newTime T)

	// Min returns the smallest time in the queue.
	Min() (T, bool)

	// Time returns the time [event] is scheduled at.
	Time(event E) (T, bool)

	// Len returns the number of associations in the queue.
	Len() int

	// IsEmpty reports whether Len is 0.
	IsEmpty() bool

	// SetSize hints at the number of entries the queue will hold. It may be
	// a no-op.
	SetSize(n int)

	// Behavior reports the identity, ordering and deduplication semantics
	// fixed for the lifetime of the queue.
	Behavior() Behavior
}
