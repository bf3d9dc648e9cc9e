package multiset

import "sort"

// Bag is an ordered pool of values identified by a key function.
type Bag[K comparable, T any] struct {
	items []T
	key   func(T) K
}

// NewBag copies items into a new Bag keyed by key.
func NewBag[K comparable, T any](items []T, key func(T) K) *Bag[K, T] {
	owned := make([]T, len(items))
	copy(owned, items)
	return &Bag[K, T]{items: owned, key: key}
}

// Len returns the number of values left in the bag.
func (b *Bag[K, T]) Len() int {
	return len(b.items)
}

// Take removes the first value whose key equals k and hands it to the caller.
// ok is false when no such value is left.
func (b *Bag[K, T]) Take(k K) (item T, ok bool) {
	for i, candidate := range b.items {
		if b.key(candidate) != k {
			continue
		}
		b.items = append(b.items[:i:i], b.items[i+1:]...)
		return candidate, true
	}
	return item, false
}

// TakeFirst removes and returns the value at the front of the bag.
func (b *Bag[K, T]) TakeFirst() (item T, ok bool) {
	if len(b.items) == 0 {
		return item, false
	}
	item = b.items[0]
	b.items = b.items[1:]
	return item, true
}

// SortStable reorders the remaining values; equal values keep their order.
func (b *Bag[K, T]) SortStable(less func(a, b T) bool) {
	sort.SliceStable(b.items, func(i, j int) bool {
		return less(b.items[i], b.items[j])
	})
}

// Counter snapshots the keys currently in the bag.
func (b *Bag[K, T]) Counter() Counter[K] {
	return New(b.Keys()...)
}

// Keys returns the keys of the remaining values in bag order.
func (b *Bag[K, T]) Keys() []K {
	keys := make([]K, len(b.items))
	for i, item := range b.items {
		keys[i] = b.key(item)
	}
	return keys
}

// Items returns a copy of the remaining values in bag order.
func (b *Bag[K, T]) Items() []T {
	out := make([]T, len(b.items))
	copy(out, b.items)
	return out
}
