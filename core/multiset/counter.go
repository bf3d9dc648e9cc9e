package multiset

// Counter holds the number of occurrences of each key.
// The zero value is an empty multiset.
type Counter[K comparable] struct {
	counts map[K]int
	total  int
}

// New builds a Counter from keys.
func New[K comparable](keys ...K) Counter[K] {
	c := Counter[K]{counts: make(map[K]int, len(keys))}
	for _, k := range keys {
		c.counts[k]++
	}
	c.total = len(keys)
	return c
}

// Count returns how many times key occurs.
func (c Counter[K]) Count(key K) int {
	return c.counts[key]
}

// Len returns the total number of elements, duplicates included.
func (c Counter[K]) Len() int {
	return c.total
}

// Distinct returns the number of distinct keys.
func (c Counter[K]) Distinct() int {
	return len(c.counts)
}

// Contains reports whether c holds at least as many of every key as other.
func (c Counter[K]) Contains(other Counter[K]) bool {
	if other.total > c.total {
		return false
	}
	for k, n := range other.counts {
		if c.counts[k] < n {
			return false
		}
	}
	return true
}

// ContainsAll is Contains for a raw collection of keys.
func (c Counter[K]) ContainsAll(keys []K) bool {
	return c.Contains(New(keys...))
}

// Equal reports whether both multisets hold exactly the same keys with the
// same multiplicities.
func (c Counter[K]) Equal(other Counter[K]) bool {
	if c.total != other.total || len(c.counts) != len(other.counts) {
		return false
	}
	for k, n := range c.counts {
		if other.counts[k] != n {
			return false
		}
	}
	return true
}
