// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bag

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/ava-labs/marblebag/utils/logging"
	"github.com/ava-labs/marblebag/utils/sampler"
)

const numPropertyCategories = 6

var propertyCategories = []string{"a", "b", "c", "d", "e", "f"}

func countsGenerator() gopter.Gen {
	return gen.SliceOfN(numPropertyCategories, gen.UInt64Range(0, 8))
}

// opsGenerator encodes each operation as an int. op%numPropertyCategories is
// the category and op/numPropertyCategories selects insert, remove, draw with
// replacement or draw without replacement.
func opsGenerator() gopter.Gen {
	return gen.SliceOf(gen.IntRange(0, 4*numPropertyCategories-1))
}

func newPropertyBag(counts []uint64, seed uint64) (*Bag[string], error) {
	return New(
		sampler.NewDeterministicUniform(sampler.NewSource(seed)),
		logging.NoLog{},
		propertyCategories,
		counts,
	)
}

// checkInvariants returns a non-empty description of the first violated
// bookkeeping invariant.
func checkInvariants(b *Bag[string]) string {
	cumulative := b.Cumulative()
	if len(cumulative) != b.Len()+1 {
		return fmt.Sprintf("cumulative has %d entries for %d categories", len(cumulative), b.Len())
	}
	if cumulative[0] != 0 {
		return fmt.Sprintf("cumulative starts at %d", cumulative[0])
	}
	sum := uint64(0)
	for i, entry := range b.Snapshot() {
		sum += entry.Count
		if cumulative[i+1] != sum {
			return fmt.Sprintf("cumulative[%d] = %d but prefix sum is %d", i+1, cumulative[i+1], sum)
		}
	}
	if b.Total() != sum {
		return fmt.Sprintf("total %d but counts sum to %d", b.Total(), sum)
	}
	return ""
}

func TestBagProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("construction keeps cumulative, total and counts in sync", prop.ForAll(
		func(counts []uint64) string {
			b, err := newPropertyBag(counts, 0)
			if err != nil {
				return err.Error()
			}
			return checkInvariants(b)
		},
		countsGenerator(),
	))

	properties.Property("operation sequences keep cumulative, total and counts in sync", prop.ForAll(
		func(counts []uint64, ops []int, seed uint64) string {
			b, err := newPropertyBag(counts, seed)
			if err != nil {
				return err.Error()
			}

			for _, op := range ops {
				category := propertyCategories[op%numPropertyCategories]
				before, _ := b.Count(category)

				switch op / numPropertyCategories {
				case 0:
					err = b.Insert(category)
				case 1:
					err = b.Remove(category)
					if before == 0 {
						if !errors.Is(err, ErrUnderflow) {
							return fmt.Sprintf("removing from empty %s returned %v", category, err)
						}
						err = nil
					}
				case 2:
					_, err = b.DrawWithReplacement()
					if errors.Is(err, ErrEmptyBag) && b.Total() == 0 {
						err = nil
					}
				default:
					_, err = b.DrawWithoutReplacement()
					if errors.Is(err, ErrEmptyBag) && b.Total() == 0 {
						err = nil
					}
				}
				if err != nil {
					return err.Error()
				}
				if msg := checkInvariants(b); msg != "" {
					return msg
				}
			}
			return ""
		},
		countsGenerator(),
		opsGenerator(),
		gen.UInt64(),
	))

	properties.Property("draw with replacement never returns an empty category or mutates", prop.ForAll(
		func(counts []uint64, seed uint64) string {
			b, err := newPropertyBag(counts, seed)
			if err != nil {
				return err.Error()
			}
			snapshot := b.Snapshot()
			cumulative := b.Cumulative()
			total := b.Total()

			for i := 0; i < 50; i++ {
				category, err := b.DrawWithReplacement()
				if total == 0 {
					if !errors.Is(err, ErrEmptyBag) {
						return fmt.Sprintf("expected %v but got %v", ErrEmptyBag, err)
					}
					continue
				}
				if err != nil {
					return err.Error()
				}
				count, err := b.Count(category)
				if err != nil {
					return err.Error()
				}
				if count == 0 {
					return fmt.Sprintf("drew empty category %s", category)
				}
			}

			if !reflect.DeepEqual(snapshot, b.Snapshot()) {
				return fmt.Sprintf("counts changed from %v to %v", snapshot, b.Snapshot())
			}
			if !reflect.DeepEqual(cumulative, b.Cumulative()) {
				return fmt.Sprintf("cumulative changed from %v to %v", cumulative, b.Cumulative())
			}
			if total != b.Total() {
				return fmt.Sprintf("total changed from %d to %d", total, b.Total())
			}
			return ""
		},
		countsGenerator(),
		gen.UInt64(),
	))

	properties.Property("draw without replacement removes exactly one item from the drawn category", prop.ForAll(
		func(counts []uint64, seed uint64) string {
			b, err := newPropertyBag(counts, seed)
			if err != nil {
				return err.Error()
			}

			for b.Total() > 0 {
				before := b.Snapshot()
				total := b.Total()

				category, err := b.DrawWithoutReplacement()
				if err != nil {
					return err.Error()
				}
				if b.Total() != total-1 {
					return fmt.Sprintf("total went from %d to %d", total, b.Total())
				}
				for i, entry := range b.Snapshot() {
					expected := before[i].Count
					if entry.Category == category {
						if expected == 0 {
							return fmt.Sprintf("drew empty category %s", category)
						}
						expected--
					}
					if entry.Count != expected {
						return fmt.Sprintf("%s has %d items, expected %d", entry.Category, entry.Count, expected)
					}
				}
			}

			if _, err := b.DrawWithoutReplacement(); !errors.Is(err, ErrEmptyBag) {
				return fmt.Sprintf("expected %v but got %v", ErrEmptyBag, err)
			}
			if _, err := b.DrawWithReplacement(); !errors.Is(err, ErrEmptyBag) {
				return fmt.Sprintf("expected %v but got %v", ErrEmptyBag, err)
			}
			return ""
		},
		countsGenerator(),
		gen.UInt64(),
	))

	properties.Property("failed removals leave counts unchanged", prop.ForAll(
		func(counts []uint64, index int) string {
			b, err := newPropertyBag(counts, 0)
			if err != nil {
				return err.Error()
			}
			category := propertyCategories[index]
			for i := uint64(0); i < counts[index]; i++ {
				if err := b.Remove(category); err != nil {
					return err.Error()
				}
			}

			before := b.Snapshot()
			if err := b.Remove(category); !errors.Is(err, ErrUnderflow) {
				return fmt.Sprintf("expected %v but got %v", ErrUnderflow, err)
			}
			if !reflect.DeepEqual(before, b.Snapshot()) {
				return fmt.Sprintf("counts changed from %v to %v", before, b.Snapshot())
			}
			return checkInvariants(b)
		},
		countsGenerator(),
		gen.IntRange(0, numPropertyCategories-1),
	))

	properties.TestingRun(t)
}
