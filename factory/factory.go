// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package factory

import (
	"cmp"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/ava-labs/eventqueue/bucket"
	"github.com/ava-labs/eventqueue/hashqueue"
	"github.com/ava-labs/eventqueue/heapqueue"
	"github.com/ava-labs/eventqueue/queue"
	"github.com/ava-labs/eventqueue/rebucket"
	"github.com/ava-labs/eventqueue/sorted"
	"github.com/ava-labs/eventqueue/twotier"
	"github.com/ava-labs/eventqueue/unsorted"
)

// Factory builds queues of one kind.
type Factory[E comparable, T cmp.Ordered] interface {
	Kind() Kind
	// EfficiencyIndex is a static, hand assigned figure of merit used to
	// rank peers. Higher is better for a typical hold workload. It is not
	// measured.
	EfficiencyIndex() float64
	// Behavior is the behavior of queues built with the default identity.
	Behavior() queue.Behavior
	New(Config) (queue.Queue[E, T], error)
}

type factory[E comparable, T cmp.Ordered] struct {
	log            logging.Logger
	kind           Kind
	index          float64
	ordering       queue.Ordering
	dedupe         bool
	supportsEquals bool
	minThreshold   int // -1 when the kind ignores Threshold
	build          func(Config) queue.Queue[E, T]
}

func (f *factory[E, T]) Kind() Kind { return f.kind }

func (f *factory[E, T]) EfficiencyIndex() float64 { return f.index }

func (f *factory[E, T]) Behavior() queue.Behavior {
	return queue.Behavior{
		Identity: queue.IdentityMatch,
		Ordering: f.ordering,
		Dedupe:   f.dedupe,
	}
}

func (f *factory[E, T]) New(c Config) (queue.Queue[E, T], error) {
	if c.SizeHint < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSizeHint, c.SizeHint)
	}
	switch c.Identity {
	case queue.IdentityMatch:
	case queue.EqualsMatch:
		if !f.supportsEquals {
			return nil, fmt.Errorf("%w: %s does not support %s", ErrUnsupportedIdentity, f.kind, c.Identity)
		}
	default:
		return nil, fmt.Errorf("%w: %s", queue.ErrUnknownIdentity, c.Identity)
	}
	fields := []zap.Field{zap.Stringer("kind", f.kind)}
	if f.minThreshold >= 0 {
		if c.Threshold < f.minThreshold {
			return nil, fmt.Errorf("%w: %s needs at least %d, got %d", ErrInvalidThreshold, f.kind, f.minThreshold, c.Threshold)
		}
		fields = append(fields, zap.Int("threshold", c.Threshold))
	}

	q := f.build(c)
	if c.SizeHint > 0 {
		q.SetSize(c.SizeHint)
	}
	f.log.Debug("created queue", append(fields,
		zap.Stringer("behavior", q.Behavior()),
		zap.Int("sizeHint", c.SizeHint),
	)...)
	return q, nil
}

// Factories returns a factory for every kind, in [Kinds] order. [log] is
// handed to the queues that log structural work.
func Factories[E comparable, T cmp.Ordered](log logging.Logger) []Factory[E, T] {
	return []Factory[E, T]{
		&factory[E, T]{
			log:          log,
			kind:         HashMap,
			index:        0.6,
			ordering:     queue.Unspecified,
			dedupe:       true,
			minThreshold: -1,
			build: func(c Config) queue.Queue[E, T] {
				return hashqueue.New[E, T](c.SizeHint)
			},
		},
		&factory[E, T]{
			log:            log,
			kind:           Bucket,
			index:          1.2,
			ordering:       queue.FIFO,
			supportsEquals: true,
			minThreshold:   0,
			build: func(c Config) queue.Queue[E, T] {
				return bucket.New[E, T](c.Threshold, c.Identity)
			},
		},
		&factory[E, T]{
			log:          log,
			kind:         Rebucket,
			index:        1.1,
			ordering:     queue.FIFO,
			dedupe:       true,
			minThreshold: 0,
			build: func(c Config) queue.Queue[E, T] {
				return rebucket.New[E, T](c.Threshold)
			},
		},
		&factory[E, T]{
			log:            log,
			kind:           SortedList,
			index:          0.8,
			ordering:       queue.FIFO,
			supportsEquals: true,
			minThreshold:   -1,
			build: func(c Config) queue.Queue[E, T] {
				return sorted.NewLinked[E, T](c.Identity)
			},
		},
		&factory[E, T]{
			log:            log,
			kind:           SortedArray,
			index:          0.9,
			ordering:       queue.LIFO,
			supportsEquals: true,
			minThreshold:   -1,
			build: func(c Config) queue.Queue[E, T] {
				return sorted.NewArray[E, T](c.Identity)
			},
		},
		&factory[E, T]{
			log:            log,
			kind:           Heap,
			index:          1.0,
			ordering:       queue.Unspecified,
			supportsEquals: true,
			minThreshold:   -1,
			build: func(c Config) queue.Queue[E, T] {
				return heapqueue.New[E, T](0, c.Identity)
			},
		},
		&factory[E, T]{
			log:            log,
			kind:           Unsorted,
			index:          0.1,
			ordering:       queue.FIFO,
			supportsEquals: true,
			minThreshold:   -1,
			build: func(c Config) queue.Queue[E, T] {
				return unsorted.New[E, T](c.Identity)
			},
		},
		&factory[E, T]{
			log:          log,
			kind:         TwoTier,
			index:        1.5,
			ordering:     queue.Unspecified,
			dedupe:       true,
			minThreshold: 1,
			build: func(c Config) queue.Queue[E, T] {
				return twotier.New[E, T](log, c.Threshold)
			},
		},
	}
}

func Get[E comparable, T cmp.Ordered](log logging.Logger, kind Kind) (Factory[E, T], error) {
	for _, f := range Factories[E, T](log) {
		if f.Kind() == kind {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// New builds the queue described by [c].
func New[E comparable, T cmp.Ordered](log logging.Logger, c Config) (queue.Queue[E, T], error) {
	f, err := Get[E, T](log, c.Kind)
	if err != nil {
		return nil, err
	}
	return f.New(c)
}

// NewFloat builds a queue keyed by float64 simulation time.
func NewFloat[E comparable](log logging.Logger, c Config) (queue.Queue[E, float64], error) {
	return New[E, float64](log, c)
}

// ByEfficiency returns every factory sorted by descending efficiency index.
func ByEfficiency[E comparable, T cmp.Ordered](log logging.Logger) []Factory[E, T] {
	fs := Factories[E, T](log)
	slices.SortStableFunc(fs, func(a, b Factory[E, T]) int {
		return cmp.Compare(b.EfficiencyIndex(), a.EfficiencyIndex())
	})
	return fs
}
