// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bag

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/ava-labs/marblebag/utils/logging"
	"github.com/ava-labs/marblebag/utils/sampler"

	safemath "github.com/ava-labs/marblebag/utils/math"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrUnderflow         = errors.New("category count underflow")
	ErrEmptyBag          = errors.New("bag is empty")
	ErrInconsistentState = errors.New("inconsistent bag state")

	errNoUniform = errors.New("no uniform sampler provided")

	_ Interface[string] = (*Bag[string])(nil)
)

// Bag holds a count of items for each of a fixed, ordered list of categories.
//
// The categories are never reordered. Each category i owns the half open range
// [cumulative[i], cumulative[i+1]) of the item indices [0, total), so a
// category with no items owns an empty range and can never be drawn.
//
// Bag is not safe for concurrent use. See NewLocked.
type Bag[T comparable] struct {
	log     logging.Logger
	uniform sampler.Uniform

	categories []T
	counts     []uint64
	// cumulative has len(categories)+1 entries. cumulative[0] is 0 and
	// cumulative[i+1] = cumulative[i] + counts[i].
	cumulative []uint64
	total      uint64
	indices    map[T]int
}

// New returns a bag holding counts[i] items of categories[i].
//
// [categories] must be unique and the same length as [counts]. Both slices are
// copied.
func New[T comparable](
	uniform sampler.Uniform,
	log logging.Logger,
	categories []T,
	counts []uint64,
) (*Bag[T], error) {
	if uniform == nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, errNoUniform)
	}
	if log == nil {
		log = logging.NoLog{}
	}
	if len(categories) != len(counts) {
		return nil, fmt.Errorf("%w: %d categories but %d counts",
			ErrInvalidInput,
			len(categories),
			len(counts),
		)
	}

	indices := make(map[T]int, len(categories))
	cumulative := make([]uint64, len(counts)+1)
	for i, category := range categories {
		if _, ok := indices[category]; ok {
			return nil, fmt.Errorf("%w: duplicate category %v", ErrInvalidInput, category)
		}
		indices[category] = i

		next, err := safemath.Add64(cumulative[i], counts[i])
		if err != nil {
			return nil, fmt.Errorf("%w: total count: %w", ErrInvalidInput, err)
		}
		cumulative[i+1] = next
	}

	return &Bag[T]{
		log:        log,
		uniform:    uniform,
		categories: slices.Clone(categories),
		counts:     slices.Clone(counts),
		cumulative: cumulative,
		total:      cumulative[len(counts)],
		indices:    indices,
	}, nil
}

func (b *Bag[T]) Insert(category T) error {
	index, ok := b.indices[category]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownCategory, category)
	}
	total, err := safemath.Add64(b.total, 1)
	if err != nil {
		return fmt.Errorf("couldn't insert into %v: %w", category, err)
	}

	b.counts[index]++
	for i := index + 1; i < len(b.cumulative); i++ {
		b.cumulative[i]++
	}
	b.total = total

	b.log.Debug("inserted item",
		zap.Any("category", category),
		zap.Uint64("count", b.counts[index]),
		zap.Uint64("total", b.total),
	)
	return nil
}

func (b *Bag[T]) Remove(category T) error {
	index, ok := b.indices[category]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownCategory, category)
	}
	return b.remove(index)
}

func (b *Bag[T]) remove(index int) error {
	count, err := safemath.Sub(b.counts[index], 1)
	if err != nil {
		return fmt.Errorf("%w: %v has no items", ErrUnderflow, b.categories[index])
	}

	b.counts[index] = count
	for i := index + 1; i < len(b.cumulative); i++ {
		b.cumulative[i]--
	}
	b.total--

	b.log.Debug("removed item",
		zap.Any("category", b.categories[index]),
		zap.Uint64("count", count),
		zap.Uint64("total", b.total),
	)
	return nil
}

func (b *Bag[T]) Count(category T) (uint64, error) {
	index, ok := b.indices[category]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownCategory, category)
	}
	return b.counts[index], nil
}

func (b *Bag[T]) Total() uint64 {
	return b.total
}

func (b *Bag[T]) Len() int {
	return len(b.categories)
}

func (b *Bag[T]) Cumulative() []uint64 {
	return slices.Clone(b.cumulative)
}

func (b *Bag[T]) Snapshot() []Entry[T] {
	entries := make([]Entry[T], len(b.categories))
	for i, category := range b.categories {
		entries[i] = Entry[T]{
			Category: category,
			Count:    b.counts[i],
		}
	}
	return entries
}
