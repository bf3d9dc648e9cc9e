// Package multiset provides the two small collections the reconcile engine
// does its bookkeeping with.
//
// # Counter
//
// Counter is an immutable multiset of comparable keys. It answers containment
// questions ("does this pool hold at least these stones?") and equality
// questions ("do these two loadouts hold the same items?") without caring
// about order.
//
// # Bag
//
// Bag is an ordered pool of values that are identified by a key. Values leave
// the pool through Take, which transfers ownership of the first value with a
// matching key to the caller. A Bag always owns its backing slice; the slice
// passed to NewBag is copied so callers never see it spliced.
//
// # Usage
//
//	pool := multiset.NewBag(stones, artifact.Item.Identity)
//	if !pool.Counter().ContainsAll(keys) {
//	    return
//	}
//	stone, ok := pool.Take(key)
package multiset
