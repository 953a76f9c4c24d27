// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package instrument

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	enqueued      prometheus.Counter
	dequeued      prometheus.Counter // events, not calls
	removed       prometheus.Counter
	requeued      prometheus.Counter
	hintedRequeue prometheus.Counter
	misses        prometheus.Counter // lookups on an empty queue or an absent event
	size          prometheus.Gauge
}

func newMetrics(namespace string, r prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		enqueued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enqueued",
			Help:      "number of events enqueued",
		}),
		dequeued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dequeued",
			Help:      "number of events dequeued in time order",
		}),
		removed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "removed",
			Help:      "number of events removed by identity",
		}),
		requeued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requeued",
			Help:      "number of requeues",
		}),
		hintedRequeue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hinted_requeued",
			Help:      "number of requeues that carried the previous time",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "misses",
			Help:      "number of lookups that found nothing",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "size",
			Help:      "number of pending events",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.enqueued),
		r.Register(m.dequeued),
		r.Register(m.removed),
		r.Register(m.requeued),
		r.Register(m.hintedRequeue),
		r.Register(m.misses),
		r.Register(m.size),
	)
	return m, errs.Err
}
