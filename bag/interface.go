// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bag

// Entry is one category and the number of items it currently holds.
type Entry[T comparable] struct {
	Category T
	Count    uint64
}

// Interface is a weighted multiset over a fixed, ordered set of categories.
//
// Categories are drawn with probability proportional to their current count.
type Interface[T comparable] interface {
	// Insert adds one item to [category].
	Insert(category T) error
	// Remove takes one item out of [category].
	Remove(category T) error

	// DrawWithReplacement returns a random category without changing any
	// counts.
	DrawWithReplacement() (T, error)
	// DrawWithoutReplacement returns a random category and removes one item
	// from it.
	DrawWithoutReplacement() (T, error)

	// Count returns the number of items in [category].
	Count(category T) (uint64, error)
	// Total returns the number of items across all categories.
	Total() uint64
	// Len returns the number of categories.
	Len() int
	// Cumulative returns the prefix sums of the counts. The first entry is
	// always 0 and the last entry is always Total().
	Cumulative() []uint64
	// Snapshot returns every category with its count, in insertion order.
	Snapshot() []Entry[T]
}
