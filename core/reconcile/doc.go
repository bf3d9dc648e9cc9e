// Package reconcile turns an optimizer recommendation into a concrete,
// wearable artifact set.
//
// The optimizer (see package contender) only says which hosts and which stones
// to wear. Reconstruct decides which stone goes into which host, reusing
// artifacts the player already has assembled, and labels every resulting
// artifact with how far it is from being worn.
//
// # Algorithm
//
//  1. Fast path: if the equipped set already flattens to the recommendation it
//     is returned as is, every artifact EQUIPPED.
//  2. Hosts are processed cheapest first by (slots, base crafting price,
//     quality). For each host the assembled artifact with the most stones that
//     still fits the remaining stone pool is reused, looking at the equipped
//     set first and the inventory second. Otherwise a bare host is used.
//  3. Stones left in the pool go, cheapest first, into the first artifacts
//     with free sockets.
//  4. The result is realigned so that artifacts stay in the slot the player
//     already wears their family in.
//  5. The result is flattened again and checked against the recommendation.
//
// # Errors
//
// Every failure of Reconstruct wraps ErrInvariantViolation. Such an error means
// the recommendation and the reconstruction disagree, which is a bug in one of
// them. Callers should report it, not retry it.
//
// # Plans
//
// BuildPlan summarizes a Result as per-slot entries and the actions a player
// has to take (keep, equip, assemble, unequip). Actions count physical copies,
// so one worn artifact reused for two identical slots is kept only once.
package reconcile
