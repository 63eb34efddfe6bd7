// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bag

import "sync"

var _ Interface[string] = (*lockedBag[string])(nil)

// NewLocked returns a bag that serializes every call to [b] behind a single
// lock.
func NewLocked[T comparable](b Interface[T]) Interface[T] {
	return &lockedBag[T]{bag: b}
}

type lockedBag[T comparable] struct {
	lock sync.Mutex
	bag  Interface[T]
}

func (l *lockedBag[T]) Insert(category T) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.bag.Insert(category)
}

func (l *lockedBag[T]) Remove(category T) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.bag.Remove(category)
}

func (l *lockedBag[T]) DrawWithReplacement() (T, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.bag.DrawWithReplacement()
}

func (l *lockedBag[T]) DrawWithoutReplacement() (T, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.bag.DrawWithoutReplacement()
}

func (l *lockedBag[T]) Count(category T) (uint64, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.bag.Count(category)
}

func (l *lockedBag[T]) Total() uint64 {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.bag.Total()
}

func (l *lockedBag[T]) Len() int {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.bag.Len()
}

func (l *lockedBag[T]) Cumulative() []uint64 {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.bag.Cumulative()
}

func (l *lockedBag[T]) Snapshot() []Entry[T] {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.bag.Snapshot()
}
