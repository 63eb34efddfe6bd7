// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bag

import "github.com/prometheus/client_golang/prometheus"

var _ Interface[string] = (*meteredBag[string])(nil)

// NewMetered returns a bag that reports the operations performed on [b] to
// [registerer] under [namespace].
func NewMetered[T comparable](
	namespace string,
	registerer prometheus.Registerer,
	b Interface[T],
) (Interface[T], error) {
	m := &meteredBag[T]{Interface: b}
	if err := m.metrics.Initialize(namespace, registerer); err != nil {
		return nil, err
	}
	m.metrics.total.Set(float64(b.Total()))
	return m, nil
}

type meteredBag[T comparable] struct {
	Interface[T]
	metrics
}

func (m *meteredBag[T]) Insert(category T) error {
	err := m.Interface.Insert(category)
	m.done(insertOp, err)
	return err
}

func (m *meteredBag[T]) Remove(category T) error {
	err := m.Interface.Remove(category)
	m.done(removeOp, err)
	return err
}

func (m *meteredBag[T]) DrawWithReplacement() (T, error) {
	category, err := m.Interface.DrawWithReplacement()
	m.observe(drawReplaceOp, err)
	return category, err
}

func (m *meteredBag[T]) DrawWithoutReplacement() (T, error) {
	category, err := m.Interface.DrawWithoutReplacement()
	m.done(drawWithoutOp, err)
	return category, err
}

func (m *meteredBag[T]) done(op string, err error) {
	m.observe(op, err)
	m.metrics.total.Set(float64(m.Interface.Total()))
}
