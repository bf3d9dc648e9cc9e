// Package artifact defines the equipment model the planner works on.
//
// An Item is an immutable catalog identity (a host artifact or a stone). An
// Artifact is a host Item with the stones socketed into it, in socket order.
// A Set is the ordered collection of equipped artifacts; its order is the
// in-game slot order.
//
// # Identities
//
//   - Item.Key distinguishes family, tier and rarity; two items with the same
//     Key are interchangeable.
//   - Item.Family is the coarser identity used to keep an artifact in the slot
//     the player already has it in.
//   - Artifact.CompleteKey combines the host key with the multiset of stone
//     keys; stone order does not matter for it.
//
// Equal and SetEqual are the order-sensitive structural comparisons.
package artifact
