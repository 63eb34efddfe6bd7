// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bag

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/marblebag/utils/wrappers"
)

const (
	opLabel = "op"

	insertOp      = "insert"
	removeOp      = "remove"
	drawReplaceOp = "draw_with_replacement"
	drawWithoutOp = "draw_without_replacement"
)

var opLabels = []string{opLabel}

type metrics struct {
	calls  *prometheus.CounterVec
	errors *prometheus.CounterVec
	total  prometheus.Gauge
}

func (m *metrics) Initialize(namespace string, registerer prometheus.Registerer) error {
	m.calls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calls",
			Help:      "Number of bag operations that succeeded",
		},
		opLabels,
	)
	m.errors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors",
			Help:      "Number of bag operations that returned an error",
		},
		opLabels,
	)
	m.total = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "items",
		Help:      "Number of items currently in the bag",
	})

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.calls),
		registerer.Register(m.errors),
		registerer.Register(m.total),
	)
	return errs.Err
}

func (m *metrics) observe(op string, err error) {
	if err != nil {
		m.errors.WithLabelValues(op).Inc()
		return
	}
	m.calls.WithLabelValues(op).Inc()
}
