package artifact

import "strings"

// Set is an ordered collection of equipped artifacts. Position is the slot.
type Set struct {
	Artifacts []Artifact `json:"artifacts"`
}

// NewSet returns a set owning deep copies of artifacts.
func NewSet(artifacts ...Artifact) Set {
	owned := make([]Artifact, len(artifacts))
	for i, a := range artifacts {
		owned[i] = a.Clone()
	}
	return Set{Artifacts: owned}
}

// Len returns the number of artifacts in the set.
func (s Set) Len() int {
	return len(s.Artifacts)
}

// CompleteKeys returns the set of complete keys of every artifact.
func (s Set) CompleteKeys() map[string]struct{} {
	return completeKeys(s.Artifacts)
}

// Clone returns a deep copy of the set.
func (s Set) Clone() Set {
	return NewSet(s.Artifacts...)
}

func (s Set) String() string {
	parts := make([]string, len(s.Artifacts))
	for i, a := range s.Artifacts {
		parts[i] = a.String()
	}
	return "[" + strings.Join(parts, "; ") + "]"
}

// SetEqual reports whether both sets hold pairwise Equal artifacts in the
// same slot order.
func SetEqual(s1, s2 Set) bool {
	if len(s1.Artifacts) != len(s2.Artifacts) {
		return false
	}
	for i := range s1.Artifacts {
		if !Equal(s1.Artifacts[i], s2.Artifacts[i]) {
			return false
		}
	}
	return true
}

// Inventory exposes the spare assembled artifacts a player owns.
type Inventory interface {
	// Stoned returns the assembled artifacts that are not equipped.
	Stoned() []Artifact
}

// StaticInventory is an Inventory backed by a slice.
type StaticInventory []Artifact

// Stoned implements Inventory.
func (inv StaticInventory) Stoned() []Artifact {
	return inv
}

// InventoryKeys returns the complete keys of every spare artifact in inv.
// A nil inventory has no keys.
func InventoryKeys(inv Inventory) map[string]struct{} {
	if inv == nil {
		return map[string]struct{}{}
	}
	return completeKeys(inv.Stoned())
}

func completeKeys(artifacts []Artifact) map[string]struct{} {
	keys := make(map[string]struct{}, len(artifacts))
	for _, a := range artifacts {
		keys[a.CompleteKey()] = struct{}{}
	}
	return keys
}
