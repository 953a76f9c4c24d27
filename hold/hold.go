// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package hold drives a queue the way a discrete-event engine does.
//
// A run seeds the queue with events at random times and then performs
// holds: dequeue the earliest event, advance the clock to its time and
// schedule it again a random increment later. After a hold the run may also
// requeue a random pending event, which models an activity whose scheduled
// time changes.
package hold

import (
	"context"
	"errors"
	"time"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/metric"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"

	"github.com/ava-labs/eventqueue/queue"
)

// checkEvery is how many holds run between context checks.
const checkEvery = 1_024

var ErrQueueDrained = errors.New("queue drained during hold")

type Result struct {
	Holds    int
	Requeues int
	Duration time.Duration
	// Size is the number of pending events at the end of the run.
	Size int
	// Time is the simulation clock at the end of the run.
	Time float64
	// Violations counts dequeued times earlier than the previous one. Any
	// value other than zero means the queue broke time order.
	Violations int
}

// HoldsPerSecond is the hold throughput of the run.
func (r Result) HoldsPerSecond() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Holds) / r.Duration.Seconds()
}

type runner struct {
	config Config
	rand   *rand.Rand
}

func (r *runner) increment() float64 {
	mean := r.config.Mean
	switch r.config.Distribution {
	case Uniform:
		return r.rand.Float64() * 2 * mean
	case Bimodal:
		// 90% short increments averaging mean/10 and 10% long ones
		// averaging 9.1*mean.
		if r.rand.Float64() < 0.9 {
			return r.rand.Float64() * 0.2 * mean
		}
		return r.rand.Float64() * 18.2 * mean
	case Constant:
		return mean
	default:
		return r.rand.ExpFloat64() * mean
	}
}

// Run performs [c.Holds] holds on [q], which must be empty. [latency] may be
// nil; otherwise it observes the duration of every hold in nanoseconds.
func Run(
	ctx context.Context,
	log logging.Logger,
	q queue.Queue[*Event, float64],
	c Config,
	latency metric.Averager,
) (Result, error) {
	if err := c.Verify(); err != nil {
		return Result{}, err
	}
	r := &runner{
		config: c,
		rand:   rand.New(rand.NewSource(c.Seed)),
	}

	events := newEvents(c.Initial)
	times := make([]float64, len(events))
	q.SetSize(len(events))
	for i, e := range events {
		times[i] = r.increment()
		q.Enqueue(e, times[i])
	}
	log.Debug("seeded queue",
		zap.Int("events", len(events)),
		zap.Stringer("distribution", c.Distribution),
		zap.Stringer("behavior", q.Behavior()),
	)

	var (
		result = Result{}
		now    float64
		start  = time.Now()
	)
	stop := func() {
		result.Duration = time.Since(start)
		result.Size = q.Len()
		result.Time = now
	}
	for i := 0; i < c.Holds; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				stop()
				return result, err
			}
		}

		holdStart := time.Now()
		entry, ok := q.Dequeue()
		if !ok {
			stop()
			return result, ErrQueueDrained
		}
		if entry.Time < now {
			result.Violations++
		}
		now = entry.Time

		e := entry.Event
		times[e.index] = now + r.increment()
		q.Enqueue(e, times[e.index])
		result.Holds++

		if c.RequeueRatio > 0 && r.rand.Float64() < c.RequeueRatio {
			moved := events[r.rand.Intn(len(events))]
			newTime := now + r.increment()
			q.RequeueHint(moved, times[moved.index], newTime)
			times[moved.index] = newTime
			result.Requeues++
		}
		if latency != nil {
			latency.Observe(float64(time.Since(holdStart)))
		}
	}

	stop()
	log.Info("hold run finished",
		zap.Int("holds", result.Holds),
		zap.Int("requeues", result.Requeues),
		zap.Duration("duration", result.Duration),
		zap.Int("violations", result.Violations),
	)
	return result, nil
}
