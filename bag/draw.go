// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bag

import (
	"fmt"

	"go.uber.org/zap"
)

// DrawWithReplacement binary searches the cumulative counts for the category
// owning a uniformly drawn item index. It takes O(log(C)) time.
func (b *Bag[T]) DrawWithReplacement() (T, error) {
	value, err := b.drawValue()
	if err != nil {
		return *new(T), err
	}

	index, ok := b.search(value)
	if !ok {
		return *new(T), b.inconsistent("no category owns drawn value", value)
	}

	category := b.categories[index]
	b.log.Verbo("drew with replacement",
		zap.Uint64("value", value),
		zap.Any("category", category),
	)
	return category, nil
}

// DrawWithoutReplacement scans the counts in category order for the category
// owning a uniformly drawn item index, and removes one item from it. It takes
// O(C) time.
func (b *Bag[T]) DrawWithoutReplacement() (T, error) {
	value, err := b.drawValue()
	if err != nil {
		return *new(T), err
	}

	remaining := value
	for index, count := range b.counts {
		if remaining >= count {
			remaining -= count
			continue
		}

		if err := b.remove(index); err != nil {
			return *new(T), err
		}
		category := b.categories[index]
		b.log.Verbo("drew without replacement",
			zap.Uint64("value", value),
			zap.Any("category", category),
		)
		return category, nil
	}
	return *new(T), b.inconsistent("counts exhausted before drawn value", value)
}

// drawValue returns a uniform value in [0, total).
func (b *Bag[T]) drawValue() (uint64, error) {
	if b.total == 0 {
		return 0, ErrEmptyBag
	}
	value := b.uniform.Uint64Inclusive(b.total - 1)
	if value >= b.total {
		return 0, b.inconsistent("drawn value out of range", value)
	}
	return value, nil
}

// search returns the index k such that
// cumulative[k] <= value < cumulative[k+1].
//
// A category with no items has cumulative[k] == cumulative[k+1], so one of the
// two narrowing cases always applies to it and it is never returned.
func (b *Bag[T]) search(value uint64) (int, bool) {
	start := 0
	end := len(b.categories) - 1
	for start <= end {
		mid := int(uint(start+end) >> 1)
		switch {
		case value < b.cumulative[mid]:
			end = mid - 1
		case value >= b.cumulative[mid+1]:
			start = mid + 1
		default:
			return mid, true
		}
	}
	return 0, false
}

func (b *Bag[T]) inconsistent(msg string, value uint64) error {
	b.log.Error(msg,
		zap.Uint64("value", value),
		zap.Uint64("total", b.total),
		zap.Uint64s("counts", b.counts),
		zap.Uint64s("cumulative", b.cumulative),
	)
	return fmt.Errorf("%w: %s: value %d with total %d", ErrInconsistentState, msg, value, b.total)
}
